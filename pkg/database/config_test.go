package database_test

import (
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/JaimeStill/studize/pkg/database"
)

func TestFinalizeDefaults(t *testing.T) {
	cfg := database.Config{Enabled: true, Name: "studize", User: "studize"}
	if err := cfg.Finalize(nil); err != nil {
		t.Fatalf("finalize failed: %v", err)
	}

	tests := []struct {
		name     string
		got      any
		expected any
	}{
		{"host", cfg.Host, "localhost"},
		{"port", cfg.Port, 5432},
		{"ssl_mode", cfg.SSLMode, "disable"},
		{"max_open_conns", cfg.MaxOpenConns, 10},
		{"max_idle_conns", cfg.MaxIdleConns, 2},
		{"conn_max_lifetime", cfg.ConnMaxLifetimeDuration(), 15 * time.Minute},
		{"conn_timeout", cfg.ConnTimeoutDuration(), 5 * time.Second},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.expected {
				t.Errorf("got %v, want %v", tt.got, tt.expected)
			}
		})
	}
}

func TestFinalizeDisabledSkipsValidation(t *testing.T) {
	cfg := database.Config{}
	if err := cfg.Finalize(nil); err != nil {
		t.Errorf("disabled database should not validate: %v", err)
	}
}

func TestFinalizeEnabledValidation(t *testing.T) {
	tests := []struct {
		name    string
		cfg     database.Config
		wantErr string
	}{
		{"missing name", database.Config{Enabled: true, User: "u"}, "name required"},
		{"missing user", database.Config{Enabled: true, Name: "db"}, "user required"},
		{"bad timeout", database.Config{Enabled: true, Name: "db", User: "u", ConnTimeout: "soon"}, "invalid conn_timeout"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Finalize(nil)
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error %q does not contain %q", err, tt.wantErr)
			}
		})
	}
}

func TestFinalizeEnvOverrides(t *testing.T) {
	t.Setenv("TEST_DB_ENABLED", "true")
	t.Setenv("TEST_DB_HOST", "remotehost")
	t.Setenv("TEST_DB_PORT", "5433")
	t.Setenv("TEST_DB_NAME", "envdb")
	t.Setenv("TEST_DB_USER", "envuser")

	cfg := database.Config{}
	err := cfg.Finalize(&database.Env{
		Enabled: "TEST_DB_ENABLED",
		Host:    "TEST_DB_HOST",
		Port:    "TEST_DB_PORT",
		Name:    "TEST_DB_NAME",
		User:    "TEST_DB_USER",
	})
	if err != nil {
		t.Fatalf("finalize failed: %v", err)
	}

	if !cfg.Enabled {
		t.Error("enabled should be true")
	}
	if cfg.Host != "remotehost" || cfg.Port != 5433 {
		t.Errorf("host/port: got %s:%d", cfg.Host, cfg.Port)
	}
}

func TestURL(t *testing.T) {
	cfg := database.Config{
		Host: "db", Port: 5432, Name: "studize",
		User: "app", Password: "p@ss word", SSLMode: "require",
	}

	u, err := url.Parse(cfg.URL())
	if err != nil {
		t.Fatalf("parse url: %v", err)
	}
	if u.Scheme != "postgres" || u.Host != "db:5432" || u.Path != "/studize" {
		t.Errorf("url: got %s", u)
	}
	if pw, _ := u.User.Password(); pw != "p@ss word" {
		t.Errorf("password: got %q", pw)
	}
	if got := u.Query().Get("sslmode"); got != "require" {
		t.Errorf("sslmode: got %s", got)
	}
}
