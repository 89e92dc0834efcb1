// Package routes declares HTTP routes as data and registers them on a ServeMux.
package routes

import (
	"net/http"

	"github.com/JaimeStill/studize/pkg/middleware"
	"github.com/JaimeStill/studize/pkg/openapi"
)

// Route binds an HTTP method and pattern to a handler. Middleware wraps
// only this route, first entry outermost. OpenAPI, when set, documents the
// route in the generated spec.
type Route struct {
	Method     string
	Pattern    string
	Handler    http.HandlerFunc
	Middleware []func(http.Handler) http.Handler
	OpenAPI    *openapi.Operation
}

// Group organizes routes under a common prefix. Tags apply to documented
// routes that declare none of their own.
type Group struct {
	Prefix   string
	Tags     []string
	Routes   []Route
	Children []Group
}

// Register adds all routes from the given groups to the mux.
func Register(mux *http.ServeMux, groups ...Group) {
	for _, group := range groups {
		register(mux, "", group)
	}
}

func register(mux *http.ServeMux, parent string, group Group) {
	prefix := parent + group.Prefix
	for _, route := range group.Routes {
		pattern := route.Method + " " + prefix + route.Pattern
		mux.Handle(pattern, middleware.Chain(route.Handler, route.Middleware...))
	}
	for _, child := range group.Children {
		register(mux, prefix, child)
	}
}

// Describe adds every documented route in groups to spec.
func Describe(spec *openapi.Spec, groups ...Group) error {
	for _, group := range groups {
		if err := describe(spec, "", nil, group); err != nil {
			return err
		}
	}
	return nil
}

func describe(spec *openapi.Spec, parent string, tags []string, group Group) error {
	prefix := parent + group.Prefix
	if len(group.Tags) > 0 {
		tags = group.Tags
	}

	for _, route := range group.Routes {
		if route.OpenAPI == nil {
			continue
		}
		op := *route.OpenAPI
		if len(op.Tags) == 0 {
			op.Tags = tags
		}
		if err := spec.AddOperation(route.Method, prefix+route.Pattern, &op); err != nil {
			return err
		}
	}
	for _, child := range group.Children {
		if err := describe(spec, prefix, tags, child); err != nil {
			return err
		}
	}
	return nil
}
