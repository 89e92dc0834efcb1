// Package module mounts self-contained HTTP handlers under single-level
// path prefixes, each with its own middleware stack.
package module

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/JaimeStill/studize/pkg/middleware"
)

// Module strips its prefix and delegates to an inner handler wrapped in
// the module's middleware.
type Module struct {
	prefix     string
	router     http.Handler
	middleware middleware.System
}

// New creates a Module for a single-level prefix such as "/api".
// It panics on an empty, relative, or multi-level prefix.
func New(prefix string, router http.Handler) *Module {
	if err := validatePrefix(prefix); err != nil {
		panic(err)
	}
	return &Module{
		prefix:     prefix,
		router:     router,
		middleware: middleware.New(),
	}
}

// Prefix returns the module's path prefix.
func (m *Module) Prefix() string {
	return m.prefix
}

// Use appends middleware to the module's stack.
func (m *Module) Use(mw func(http.Handler) http.Handler) {
	m.middleware.Use(mw)
}

// Handler returns the inner router wrapped with the module's middleware.
func (m *Module) Handler() http.Handler {
	return m.middleware.Apply(m.router)
}

// Serve rewrites the request path relative to the prefix and dispatches it.
func (m *Module) Serve(w http.ResponseWriter, req *http.Request) {
	m.Handler().ServeHTTP(w, withPath(req, trimPrefix(req.URL.Path, m.prefix)))
}

func withPath(req *http.Request, path string) *http.Request {
	r := req.Clone(req.Context())
	r.URL.Path = path
	r.URL.RawPath = ""
	return r
}

func trimPrefix(full, prefix string) string {
	path := strings.TrimPrefix(full, prefix)
	if path == "" {
		return "/"
	}
	return path
}

func validatePrefix(prefix string) error {
	switch {
	case prefix == "":
		return fmt.Errorf("module prefix cannot be empty")
	case !strings.HasPrefix(prefix, "/"):
		return fmt.Errorf("module prefix must start with /: %s", prefix)
	case strings.Count(prefix, "/") != 1:
		return fmt.Errorf("module prefix must be single-level sub-path: %s", prefix)
	}
	return nil
}
