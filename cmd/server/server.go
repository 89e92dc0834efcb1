package main

import (
	"fmt"
	"time"

	"github.com/JaimeStill/studize/internal/config"
	"github.com/JaimeStill/studize/internal/infrastructure"
)

// Server owns the infrastructure, the mounted modules, and the HTTP listener.
type Server struct {
	infra   *infrastructure.Infrastructure
	modules *Modules
	http    *httpServer
}

// NewServer builds every system and module without starting them.
func NewServer(cfg *config.Config) (*Server, error) {
	infra, err := infrastructure.New(cfg)
	if err != nil {
		return nil, err
	}

	modules, err := NewModules(infra, cfg)
	if err != nil {
		return nil, err
	}

	router := buildRouter(infra)
	modules.Mount(router)

	infra.Logger.Info(
		"server initialized",
		"addr", cfg.Server.Addr(),
		"version", cfg.Version,
		"env", cfg.Env(),
		"roster", infra.Roster.Source().Name(),
		"model", infra.Generator.Model(),
	)

	return &Server{
		infra:   infra,
		modules: modules,
		http:    newHTTPServer(&cfg.Server, router, infra.Logger),
	}, nil
}

// Start preloads the roster, runs the startup hooks, and begins listening.
// Any startup failure is returned and the server should not keep running.
func (s *Server) Start() error {
	s.infra.Logger.Info("starting service")

	if err := s.infra.Start(s.infra.Lifecycle.Context()); err != nil {
		return err
	}

	if err := s.infra.Lifecycle.WaitForStartup(); err != nil {
		return fmt.Errorf("startup failed: %w", err)
	}

	if err := s.http.Start(s.infra.Lifecycle); err != nil {
		return err
	}

	s.infra.Logger.Info("all subsystems ready")
	return nil
}

// Shutdown stops the listener and releases every subsystem.
func (s *Server) Shutdown(timeout time.Duration) error {
	s.infra.Logger.Info("initiating shutdown")
	return s.infra.Lifecycle.Shutdown(timeout)
}
