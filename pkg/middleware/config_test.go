package middleware_test

import (
	"testing"
	"time"

	"github.com/JaimeStill/studize/pkg/middleware"
)

func TestCORSConfigFinalizeDefaults(t *testing.T) {
	cfg := middleware.CORSConfig{}
	if err := cfg.Finalize(nil); err != nil {
		t.Fatalf("finalize failed: %v", err)
	}

	if len(cfg.AllowedMethods) != 3 {
		t.Errorf("allowed_methods: got %d, want 3", len(cfg.AllowedMethods))
	}
	if len(cfg.AllowedHeaders) != 1 {
		t.Errorf("allowed_headers: got %d, want 1", len(cfg.AllowedHeaders))
	}
	if cfg.MaxAge != 3600 {
		t.Errorf("max_age: got %d, want 3600", cfg.MaxAge)
	}
}

func TestCORSConfigFinalizeEnv(t *testing.T) {
	t.Setenv("TEST_CORS_ENABLED", "true")
	t.Setenv("TEST_CORS_ORIGINS", "http://a.com, http://b.com")
	t.Setenv("TEST_CORS_CREDS", "true")

	env := &middleware.CORSEnv{
		Enabled:          "TEST_CORS_ENABLED",
		Origins:          "TEST_CORS_ORIGINS",
		AllowCredentials: "TEST_CORS_CREDS",
	}

	cfg := middleware.CORSConfig{}
	if err := cfg.Finalize(env); err != nil {
		t.Fatalf("finalize failed: %v", err)
	}

	if !cfg.Enabled {
		t.Error("enabled should be true")
	}
	if len(cfg.Origins) != 2 || cfg.Origins[0] != "http://a.com" || cfg.Origins[1] != "http://b.com" {
		t.Errorf("origins: got %v", cfg.Origins)
	}
	if !cfg.AllowCredentials {
		t.Error("allow_credentials should be true")
	}
}

func TestCORSConfigMerge(t *testing.T) {
	base := middleware.CORSConfig{
		Origins:        []string{"http://base.com"},
		AllowedMethods: []string{"GET"},
		MaxAge:         3600,
	}
	overlay := middleware.CORSConfig{
		Enabled: true,
		Origins: []string{"http://overlay.com"},
		MaxAge:  7200,
	}

	base.Merge(&overlay)

	if !base.Enabled {
		t.Error("enabled should be true after merge")
	}
	if len(base.Origins) != 1 || base.Origins[0] != "http://overlay.com" {
		t.Errorf("origins: got %v", base.Origins)
	}
	if len(base.AllowedMethods) != 1 || base.AllowedMethods[0] != "GET" {
		t.Errorf("allowed_methods should be preserved: got %v", base.AllowedMethods)
	}
	if base.MaxAge != 7200 {
		t.Errorf("max_age: got %d, want 7200", base.MaxAge)
	}
}

func TestRateLimitConfigFinalize(t *testing.T) {
	t.Setenv("TEST_RL_REQUESTS", "5")

	cfg := middleware.RateLimitConfig{}
	if err := cfg.Finalize(&middleware.RateLimitEnv{Requests: "TEST_RL_REQUESTS"}); err != nil {
		t.Fatalf("finalize failed: %v", err)
	}

	if cfg.Requests != 5 {
		t.Errorf("requests: got %d, want 5", cfg.Requests)
	}
	if cfg.WindowDuration() != time.Minute {
		t.Errorf("window: got %v, want 1m", cfg.WindowDuration())
	}
}

func TestRateLimitConfigValidation(t *testing.T) {
	tests := []struct {
		name string
		cfg  middleware.RateLimitConfig
	}{
		{"negative requests", middleware.RateLimitConfig{Requests: -1}},
		{"bad window", middleware.RateLimitConfig{Requests: 1, Window: "soon"}},
		{"zero window", middleware.RateLimitConfig{Requests: 1, Window: "0s"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.cfg.Finalize(nil); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}
