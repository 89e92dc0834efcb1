// Package infrastructure assembles the shared systems domain packages
// depend on: lifecycle, logging, the roster loader, the summary generator,
// and the optional blob storage and database.
package infrastructure

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/JaimeStill/studize/internal/config"
	"github.com/JaimeStill/studize/internal/roster"
	"github.com/JaimeStill/studize/internal/summary"
	"github.com/JaimeStill/studize/pkg/database"
	"github.com/JaimeStill/studize/pkg/lifecycle"
	"github.com/JaimeStill/studize/pkg/storage"
)

// Infrastructure holds the systems shared by every module. Storage is nil
// unless the roster is read from blob storage; Database is nil unless
// history is enabled.
type Infrastructure struct {
	Lifecycle *lifecycle.Coordinator
	Logger    *slog.Logger
	Roster    *roster.Loader
	Generator summary.Generator
	Storage   storage.System
	Database  database.System
}

// New creates an Infrastructure from the application configuration. It
// initializes all systems but does not start them; call Start separately.
func New(cfg *config.Config) (*Infrastructure, error) {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	return NewWithLogger(cfg, logger)
}

// NewWithLogger is New with a caller-supplied logger.
func NewWithLogger(cfg *config.Config, logger *slog.Logger) (*Infrastructure, error) {
	infra := &Infrastructure{
		Lifecycle: lifecycle.New(),
		Logger:    logger,
	}

	var source roster.Source
	switch cfg.Roster.Source {
	case config.SourceBlob:
		store, err := storage.New(&cfg.Storage, logger)
		if err != nil {
			return nil, fmt.Errorf("storage init failed: %w", err)
		}
		infra.Storage = store
		source = roster.BlobSource{Store: store, Key: cfg.Roster.BlobKey}
	default:
		source = roster.FileSource{Path: cfg.Roster.Path}
	}

	infra.Roster = roster.NewLoader(source, roster.LoaderConfig{
		Parse: roster.ParseOptions{
			Sheet:      cfg.Roster.Sheet,
			NameColumn: cfg.Roster.NameColumn,
		},
		MaxSize: cfg.Roster.MaxSizeBytes(),
	}, logger)

	gen, err := summary.New(&cfg.Agent, logger)
	if err != nil {
		return nil, fmt.Errorf("summary init failed: %w", err)
	}
	infra.Generator = gen

	if cfg.Database.Enabled {
		db, err := database.New(&cfg.Database, logger)
		if err != nil {
			return nil, fmt.Errorf("database init failed: %w", err)
		}
		infra.Database = db
	}

	return infra, nil
}

// Start registers the optional systems with the lifecycle coordinator and
// loads the roster. A roster that cannot be loaded fails startup.
func (i *Infrastructure) Start(ctx context.Context) error {
	if i.Database != nil {
		if err := i.Database.Start(i.Lifecycle); err != nil {
			return fmt.Errorf("database start failed: %w", err)
		}
	}
	if i.Storage != nil {
		if err := i.Storage.Start(i.Lifecycle); err != nil {
			return fmt.Errorf("storage start failed: %w", err)
		}
	}

	table, err := i.Roster.Load(ctx)
	if err != nil {
		return fmt.Errorf("roster preload failed: %w", err)
	}

	i.Logger.Info("roster preloaded",
		"source", table.Source,
		"rows", table.Len(),
		"students", len(table.Names()),
	)
	return nil
}
