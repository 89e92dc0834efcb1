package api

import (
	"net/http"

	"github.com/JaimeStill/studize/internal/analysis"
	"github.com/JaimeStill/studize/internal/history"
	"github.com/JaimeStill/studize/internal/prompts"
	"github.com/JaimeStill/studize/internal/roster"
	"github.com/JaimeStill/studize/pkg/openapi"
	"github.com/JaimeStill/studize/pkg/routes"
)

func (d *Domain) groups() []routes.Group {
	groups := d.Roster.Routes()
	return append(groups,
		d.Prompts.Routes(),
		d.Analysis.Handler().Routes(),
		d.History.Handler().Routes(),
	)
}

func registerRoutes(mux *http.ServeMux, groups []routes.Group) {
	routes.Register(mux, groups...)
}

// newSpec documents groups as served under basePath.
func newSpec(cfg *openapi.Config, version, basePath string, groups []routes.Group) (*openapi.Spec, error) {
	spec := openapi.NewSpec(cfg, version)
	spec.AddServer(basePath)

	spec.Components.AddSchemas(roster.Schemas())
	spec.Components.AddSchemas(prompts.Schemas())
	spec.Components.AddSchemas(analysis.Schemas())
	spec.Components.AddSchemas(history.Schemas())

	if err := routes.Describe(spec, groups...); err != nil {
		return nil, err
	}
	return spec, nil
}
