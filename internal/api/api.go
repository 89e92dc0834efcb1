// Package api assembles the JSON API module from the domain systems.
package api

import (
	"net/http"

	"github.com/JaimeStill/studize/internal/config"
	"github.com/JaimeStill/studize/internal/infrastructure"
	"github.com/JaimeStill/studize/pkg/middleware"
	"github.com/JaimeStill/studize/pkg/module"
)

// NewModule creates the API module with all domain handlers, the OpenAPI
// document at /openapi.json, and the module middleware.
func NewModule(cfg *config.Config, infra *infrastructure.Infrastructure) (*module.Module, *Domain, error) {
	runtime := NewRuntime(cfg, infra)
	domain := NewDomain(runtime)
	groups := domain.groups()

	spec, err := newSpec(&cfg.API.OpenAPI, cfg.Version, cfg.API.BasePath, groups)
	if err != nil {
		return nil, nil, err
	}
	serveSpec, err := spec.Handler()
	if err != nil {
		return nil, nil, err
	}

	mux := http.NewServeMux()
	registerRoutes(mux, groups)
	mux.HandleFunc("GET /openapi.json", serveSpec)

	m := module.New(cfg.API.BasePath, mux)
	m.Use(middleware.CORS(&cfg.API.CORS))
	m.Use(middleware.Logger(runtime.Logger))

	return m, domain, nil
}
