package api

import (
	"github.com/JaimeStill/studize/internal/analysis"
	"github.com/JaimeStill/studize/internal/history"
	"github.com/JaimeStill/studize/internal/prompts"
	"github.com/JaimeStill/studize/internal/roster"
	"github.com/JaimeStill/studize/pkg/middleware"
)

// Domain holds all domain systems that comprise the API.
type Domain struct {
	Roster   *roster.Handler
	Prompts  *prompts.Handler
	Analysis analysis.System
	History  history.System
}

// NewDomain creates all domain systems from the API runtime.
func NewDomain(runtime *Runtime) *Domain {
	historySystem := NewHistory(runtime)

	analysisSystem := analysis.New(
		runtime.Roster,
		runtime.Generator,
		historySystem,
		analysis.Config{
			Timeout:   runtime.Analysis.TimeoutDuration(),
			RateLimit: middleware.RateLimit(&runtime.RateLimit),
		},
		runtime.Logger,
	)

	return &Domain{
		Roster:   roster.NewHandler(runtime.Roster, runtime.Logger),
		Prompts:  prompts.NewHandler(runtime.Logger),
		Analysis: analysisSystem,
		History:  historySystem,
	}
}

// NewHistory returns the PostgreSQL history when a database is configured
// and the disabled history otherwise.
func NewHistory(runtime *Runtime) history.System {
	if runtime.Database == nil {
		return history.Disabled(runtime.Logger, runtime.Pagination)
	}
	return history.New(runtime.Database.Connection(), runtime.Logger, runtime.Pagination)
}
