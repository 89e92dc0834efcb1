package roster

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/JaimeStill/studize/pkg/formatting"
)

// LoaderConfig configures a Loader.
type LoaderConfig struct {
	Parse ParseOptions
	// MaxSize caps the workbook size in bytes; zero means unlimited.
	MaxSize int64
}

// Loader owns the cached Table for one Source. The cache is keyed by the
// source's version stamp: Load re-reads the workbook only when the stamp
// changes or after Invalidate. Concurrent loads of the same version share
// a single read.
type Loader struct {
	source Source
	cfg    LoaderConfig
	logger *slog.Logger
	now    func() time.Time

	mu     sync.RWMutex
	cached *Table
	group  singleflight.Group
}

// NewLoader creates a Loader. Nothing is read until Load is called.
func NewLoader(source Source, cfg LoaderConfig, logger *slog.Logger) *Loader {
	return &Loader{
		source: source,
		cfg:    cfg,
		logger: logger.With("system", "roster", "source", source.Name()),
		now:    time.Now,
	}
}

// Source returns the loader's workbook source.
func (l *Loader) Source() Source {
	return l.source
}

// Load returns the table for the source's current version, reading it if
// the cache is empty or stale. If the source cannot be inspected or its new
// version cannot be read while a table is cached, the cached table is
// returned and the failure is logged. Errors wrap ErrDataSource.
func (l *Loader) Load(ctx context.Context) (*Table, error) {
	stamp, err := l.source.Stat(ctx)
	if err != nil {
		if cached := l.Cached(); cached != nil {
			l.logger.Warn("source unavailable, serving cached table", "error", err)
			return cached, nil
		}
		return nil, err
	}

	if cached := l.Cached(); cached != nil && cached.Identity == stamp.Identity {
		return cached, nil
	}

	t, err := l.read(ctx, stamp)
	if err != nil {
		if cached := l.Cached(); cached != nil {
			l.logger.Warn(
				"new workbook version unreadable, serving cached table",
				"identity", stamp.Identity,
				"cached_identity", cached.Identity,
				"error", err,
			)
			return cached, nil
		}
		return nil, err
	}
	return t, nil
}

// Reload reads the source regardless of the cache. On failure the
// previously cached table, if any, stays in place.
func (l *Loader) Reload(ctx context.Context) (*Table, error) {
	stamp, err := l.source.Stat(ctx)
	if err != nil {
		return nil, err
	}
	l.group.Forget(stamp.Identity)
	return l.read(ctx, stamp)
}

// Invalidate drops the cached table so the next Load reads the source.
func (l *Loader) Invalidate() {
	l.mu.Lock()
	l.cached = nil
	l.mu.Unlock()
	l.logger.Info("roster cache invalidated")
}

// Cached returns the cached table without touching the source, or nil.
func (l *Loader) Cached() *Table {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.cached
}

func (l *Loader) read(ctx context.Context, stamp Stamp) (*Table, error) {
	v, err, _ := l.group.Do(stamp.Identity, func() (any, error) {
		t, err := l.fetch(ctx, stamp)
		if err != nil {
			return nil, err
		}

		l.mu.Lock()
		l.cached = t
		l.mu.Unlock()

		l.logger.Info(
			"roster loaded",
			"rows", t.Len(),
			"columns", len(t.Columns),
			"students", len(t.Names()),
			"size", formatting.FormatBytes(stamp.Size, 1),
		)
		return t, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*Table), nil
}

func (l *Loader) fetch(ctx context.Context, stamp Stamp) (*Table, error) {
	if l.cfg.MaxSize > 0 && stamp.Size > l.cfg.MaxSize {
		return nil, fmt.Errorf(
			"%w: workbook is %s, limit %s", ErrDataSource,
			formatting.FormatBytes(stamp.Size, 1),
			formatting.FormatBytes(l.cfg.MaxSize, 1),
		)
	}

	body, err := l.source.Open(ctx)
	if err != nil {
		return nil, err
	}
	defer body.Close()

	var r io.Reader = body
	if l.cfg.MaxSize > 0 {
		r = io.LimitReader(body, l.cfg.MaxSize+1)
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w: read workbook: %w", ErrDataSource, err)
	}
	if l.cfg.MaxSize > 0 && int64(len(data)) > l.cfg.MaxSize {
		return nil, fmt.Errorf("%w: workbook exceeds %s", ErrDataSource, formatting.FormatBytes(l.cfg.MaxSize, 1))
	}

	t, err := Parse(data, l.source.Format(), l.cfg.Parse)
	if err != nil {
		return nil, err
	}

	t.Source = l.source.Name()
	t.Identity = stamp.Identity
	t.LoadedAt = l.now()
	return t, nil
}
