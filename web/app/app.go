// Package app serves the student insight dashboard: a name picker and the
// generated summary, rendered server-side.
package app

import (
	"embed"
	"errors"
	"html/template"
	"log/slog"
	"net/http"
	"slices"
	"strings"

	"github.com/JaimeStill/studize/internal/analysis"
	"github.com/JaimeStill/studize/internal/summary"
	"github.com/JaimeStill/studize/pkg/module"
	"github.com/JaimeStill/studize/pkg/web"
)

//go:embed templates static
var assets embed.FS

// NoSelectionWarning is shown when the form is submitted without names.
const NoSelectionWarning = "Please select at least one student."

var dashboardView = web.ViewDef{Template: "dashboard.html", Title: "B2B Dashboard"}

var funcs = template.FuncMap{
	"contains": slices.Contains[[]string],
	"join":     strings.Join,
	"listSize": func(names []string) int { return min(max(len(names), 4), 12) },
}

// Dashboard is the data rendered by the dashboard view.
type Dashboard struct {
	BasePath string
	Students []string
	Selected []string
	Warning  string
	Error    string
	Result   *analysis.Result
}

type handler struct {
	views    *web.TemplateSet
	tables   analysis.TableLoader
	analyzer analysis.System
	logger   *slog.Logger
}

// NewModule creates the dashboard module mounted at basePath.
func NewModule(basePath string, tables analysis.TableLoader, analyzer analysis.System, logger *slog.Logger) (*module.Module, error) {
	views, err := web.NewTemplateSet(
		assets,
		"templates/*.html",
		"templates/views",
		"layout",
		basePath,
		funcs,
		dashboardView,
	)
	if err != nil {
		return nil, err
	}

	h := &handler{
		views:    views,
		tables:   tables,
		analyzer: analyzer,
		logger:   logger.With("handler", "app"),
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", h.dashboard)
	mux.HandleFunc("POST /analyze", h.analyze)
	mux.Handle("GET /static/", web.Static(assets, "static", "/static/"))

	return module.New(basePath, mux), nil
}

func (h *handler) dashboard(w http.ResponseWriter, r *http.Request) {
	page, err := h.page(r)
	if err != nil {
		h.logger.Error("roster unavailable", "error", err)
		page.Error = "Student data is unavailable: " + err.Error()
		h.render(w, http.StatusInternalServerError, page)
		return
	}
	h.render(w, http.StatusOK, page)
}

func (h *handler) analyze(w http.ResponseWriter, r *http.Request) {
	page, err := h.page(r)
	if err != nil {
		h.logger.Error("roster unavailable", "error", err)
		page.Error = "Student data is unavailable: " + err.Error()
		h.render(w, http.StatusInternalServerError, page)
		return
	}

	if err := r.ParseForm(); err != nil {
		page.Error = err.Error()
		h.render(w, http.StatusBadRequest, page)
		return
	}

	page.Selected = r.PostForm["names"]
	if len(page.Selected) == 0 {
		page.Warning = NoSelectionWarning
		h.render(w, http.StatusOK, page)
		return
	}

	result, err := h.analyzer.Process(r.Context(), analysis.Multi{Names: page.Selected})
	switch {
	case errors.Is(err, analysis.ErrNoSelection):
		page.Warning = NoSelectionWarning
		h.render(w, http.StatusOK, page)
	case errors.Is(err, summary.ErrGeneration):
		h.logger.Error("summary generation failed", "error", err)
		page.Error = "The summary could not be generated. Please try again."
		h.render(w, http.StatusBadGateway, page)
	case err != nil:
		h.logger.Error("analysis failed", "error", err)
		page.Error = err.Error()
		h.render(w, analysis.MapHTTPStatus(err), page)
	default:
		page.Result = result
		h.render(w, http.StatusOK, page)
	}
}

// page loads the student names. On error the returned Dashboard is still
// usable for rendering the failure.
func (h *handler) page(r *http.Request) (*Dashboard, error) {
	page := &Dashboard{BasePath: h.views.BasePath(), Students: []string{}}

	table, err := h.tables.Load(r.Context())
	if err != nil {
		return page, err
	}
	page.Students = table.Names()
	return page, nil
}

func (h *handler) render(w http.ResponseWriter, status int, page *Dashboard) {
	if err := h.views.Render(w, status, dashboardView, page); err != nil {
		h.logger.Error("render failed", "error", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
