package middleware

import (
	"net/http"

	"github.com/go-chi/httprate"
)

// RateLimit returns middleware that limits requests per client IP using a
// sliding window. When cfg.Requests is zero the returned middleware is a no-op.
func RateLimit(cfg *RateLimitConfig) func(http.Handler) http.Handler {
	if cfg == nil || cfg.Requests <= 0 {
		return func(next http.Handler) http.Handler { return next }
	}
	return httprate.LimitByIP(cfg.Requests, cfg.WindowDuration())
}
