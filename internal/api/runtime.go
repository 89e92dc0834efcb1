package api

import (
	"github.com/JaimeStill/studize/internal/config"
	"github.com/JaimeStill/studize/internal/infrastructure"
	"github.com/JaimeStill/studize/pkg/middleware"
	"github.com/JaimeStill/studize/pkg/pagination"
)

// Runtime extends Infrastructure with API-specific configuration.
type Runtime struct {
	*infrastructure.Infrastructure
	Pagination pagination.Config
	RateLimit  middleware.RateLimitConfig
	Analysis   config.AnalysisConfig
}

// NewRuntime creates an API runtime with a module-scoped logger.
func NewRuntime(cfg *config.Config, infra *infrastructure.Infrastructure) *Runtime {
	scoped := *infra
	scoped.Logger = infra.Logger.With("module", "api")

	return &Runtime{
		Infrastructure: &scoped,
		Pagination:     cfg.API.Pagination,
		RateLimit:      cfg.API.RateLimit,
		Analysis:       cfg.Analysis,
	}
}
