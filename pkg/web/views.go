// Package web renders server-side HTML pages from embedded Go templates
// and serves embedded static assets.
package web

import (
	"bytes"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
)

// ViewDef names a page template and its title.
type ViewDef struct {
	Template string
	Title    string
}

// ViewData is passed to every page template. BasePath lets templates build
// portable URLs via {{ .BasePath }}.
type ViewData struct {
	Title    string
	BasePath string
	Data     any
}

// TemplateSet holds templates parsed once at startup, one clone of the
// layouts per view.
type TemplateSet struct {
	views    map[string]*template.Template
	layout   string
	basePath string
}

// NewTemplateSet parses the layout templates matching layoutGlob and then
// each view under viewDir on top of a clone of the layouts. Parse failures
// are returned immediately so a broken template stops startup.
func NewTemplateSet(fsys fs.FS, layoutGlob, viewDir, layout, basePath string, funcs template.FuncMap, views ...ViewDef) (*TemplateSet, error) {
	layouts, err := template.New("").Funcs(funcs).ParseFS(fsys, layoutGlob)
	if err != nil {
		return nil, fmt.Errorf("parse layouts: %w", err)
	}

	viewFS, err := fs.Sub(fsys, viewDir)
	if err != nil {
		return nil, err
	}

	parsed := make(map[string]*template.Template, len(views))
	for _, v := range views {
		t, err := layouts.Clone()
		if err != nil {
			return nil, fmt.Errorf("clone layouts for %s: %w", v.Template, err)
		}
		if _, err := t.ParseFS(viewFS, v.Template); err != nil {
			return nil, fmt.Errorf("parse template %s: %w", v.Template, err)
		}
		parsed[v.Template] = t
	}

	return &TemplateSet{
		views:    parsed,
		layout:   layout,
		basePath: basePath,
	}, nil
}

// BasePath returns the URL prefix the set was created with.
func (ts *TemplateSet) BasePath() string {
	return ts.basePath
}

// Render executes view into a buffer and writes it with status. Rendering
// into a buffer first keeps a template error from producing half a page.
func (ts *TemplateSet) Render(w http.ResponseWriter, status int, view ViewDef, data any) error {
	t, ok := ts.views[view.Template]
	if !ok {
		return fmt.Errorf("template not found: %s", view.Template)
	}

	var buf bytes.Buffer
	vd := ViewData{
		Title:    view.Title,
		BasePath: ts.basePath,
		Data:     data,
	}
	if err := t.ExecuteTemplate(&buf, ts.layout, vd); err != nil {
		return fmt.Errorf("execute %s: %w", view.Template, err)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, err := buf.WriteTo(w)
	return err
}

// PageHandler returns a handler that renders view with data produced per request.
func (ts *TemplateSet) PageHandler(view ViewDef, load func(*http.Request) (any, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var data any
		if load != nil {
			d, err := load(r)
			if err != nil {
				http.Error(w, err.Error(), http.StatusInternalServerError)
				return
			}
			data = d
		}
		if err := ts.Render(w, http.StatusOK, view, data); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	}
}
