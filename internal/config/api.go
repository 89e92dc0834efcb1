package config

import (
	"fmt"
	"os"

	"github.com/JaimeStill/studize/pkg/middleware"
	"github.com/JaimeStill/studize/pkg/openapi"
	"github.com/JaimeStill/studize/pkg/pagination"
)

var openAPIEnv = &openapi.ConfigEnv{
	Title:       "STUDIZE_OPENAPI_TITLE",
	Description: "STUDIZE_OPENAPI_DESCRIPTION",
}

var corsEnv = &middleware.CORSEnv{
	Enabled:          "STUDIZE_CORS_ENABLED",
	Origins:          "STUDIZE_CORS_ORIGINS",
	AllowedMethods:   "STUDIZE_CORS_ALLOWED_METHODS",
	AllowedHeaders:   "STUDIZE_CORS_ALLOWED_HEADERS",
	AllowCredentials: "STUDIZE_CORS_ALLOW_CREDENTIALS",
	MaxAge:           "STUDIZE_CORS_MAX_AGE",
}

var paginationEnv = &pagination.ConfigEnv{
	DefaultPageSize: "STUDIZE_PAGINATION_DEFAULT_PAGE_SIZE",
	MaxPageSize:     "STUDIZE_PAGINATION_MAX_PAGE_SIZE",
}

var rateLimitEnv = &middleware.RateLimitEnv{
	Requests: "STUDIZE_RATE_LIMIT_REQUESTS",
	Window:   "STUDIZE_RATE_LIMIT_WINDOW",
}

// APIConfig holds JSON API routing, CORS, pagination, and the analyze
// endpoint's rate limit.
type APIConfig struct {
	BasePath   string                     `toml:"base_path"`
	CORS       middleware.CORSConfig      `toml:"cors"`
	Pagination pagination.Config          `toml:"pagination"`
	RateLimit  middleware.RateLimitConfig `toml:"rate_limit"`
	OpenAPI    openapi.Config             `toml:"openapi"`
}

// Finalize applies defaults, environment variable overrides, and validation
// for the API config and its nested configs.
func (c *APIConfig) Finalize() error {
	if c.BasePath == "" {
		c.BasePath = "/api"
	}
	if v := os.Getenv("STUDIZE_API_BASE_PATH"); v != "" {
		c.BasePath = v
	}

	if err := c.CORS.Finalize(corsEnv); err != nil {
		return fmt.Errorf("cors: %w", err)
	}
	if err := c.Pagination.Finalize(paginationEnv); err != nil {
		return fmt.Errorf("pagination: %w", err)
	}
	if err := c.RateLimit.Finalize(rateLimitEnv); err != nil {
		return fmt.Errorf("rate_limit: %w", err)
	}
	if err := c.OpenAPI.Finalize(openAPIEnv); err != nil {
		return fmt.Errorf("openapi: %w", err)
	}
	return nil
}

// Merge overwrites non-zero fields from overlay across nested configs.
func (c *APIConfig) Merge(overlay *APIConfig) {
	if overlay.BasePath != "" {
		c.BasePath = overlay.BasePath
	}
	c.CORS.Merge(&overlay.CORS)
	c.Pagination.Merge(&overlay.Pagination)
	c.RateLimit.Merge(&overlay.RateLimit)
	c.OpenAPI.Merge(&overlay.OpenAPI)
}
