// Package analysis turns a student selection into a generated summary:
// select rows, format them, fill the mode's template, and call the
// generator once.
package analysis

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"slices"
	"time"

	"github.com/JaimeStill/studize/internal/history"
	"github.com/JaimeStill/studize/internal/prompts"
	"github.com/JaimeStill/studize/internal/roster"
	"github.com/JaimeStill/studize/internal/summary"
)

// TableLoader provides the current student table.
type TableLoader interface {
	Load(ctx context.Context) (*roster.Table, error)
}

// Recorder persists completed summaries.
type Recorder interface {
	Record(ctx context.Context, cmd history.RecordCommand) (*history.Record, error)
}

// Config holds orchestration settings.
type Config struct {
	// Timeout bounds each generation call. Zero means no bound beyond the
	// caller's context.
	Timeout time.Duration
	// RateLimit wraps the analyze endpoint.
	RateLimit func(http.Handler) http.Handler
}

// System defines the analysis operations.
type System interface {
	Handler() *Handler
	Process(ctx context.Context, sel Selection) (*Result, error)
}

type analyzer struct {
	tables    TableLoader
	generator summary.Generator
	recorder  Recorder
	cfg       Config
	logger    *slog.Logger
}

// New creates the analysis System. recorder may be nil.
func New(tables TableLoader, generator summary.Generator, recorder Recorder, cfg Config, logger *slog.Logger) System {
	return &analyzer{
		tables:    tables,
		generator: generator,
		recorder:  recorder,
		cfg:       cfg,
		logger:    logger.With("system", "analysis"),
	}
}

func (a *analyzer) Handler() *Handler {
	return NewHandler(a, a.logger, a.cfg.RateLimit)
}

// Process runs one selection through the pipeline. A selection with no
// matching rows is a normal result carrying the not-found message, and no
// generation call is made for it.
func (a *analyzer) Process(ctx context.Context, sel Selection) (*Result, error) {
	if sel == nil {
		return nil, ErrNoSelection
	}
	if err := sel.validate(); err != nil {
		return nil, err
	}

	table, err := a.tables.Load(ctx)
	if err != nil {
		return nil, err
	}

	rows, missing := sel.selectRows(table)
	requested := sel.Requested()

	result := &Result{
		Mode:      sel.Mode(),
		Requested: requested,
		Matched:   matched(requested, missing),
		Missing:   missing,
		Rows:      len(rows.Rows),
	}

	if rows.Empty() {
		result.Outcome = OutcomeNotFound
		result.Message = sel.notFound()
		a.logger.InfoContext(ctx, "no rows matched", "mode", result.Mode, "requested", requested)
		return result, nil
	}

	block, err := roster.Format(rows)
	if err != nil {
		return nil, err
	}

	prompt, err := prompts.Assemble(sel.Mode(), block)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	text, err := a.generate(ctx, prompt)
	if err != nil {
		return nil, err
	}

	result.Outcome = OutcomeSummary
	result.Summary = text
	result.Model = a.generator.Model()
	result.Duration = time.Since(start)

	a.logger.InfoContext(ctx, "summary generated",
		"mode", result.Mode,
		"matched", len(result.Matched),
		"missing", len(result.Missing),
		"rows", result.Rows,
		"duration", result.Duration,
	)

	a.record(ctx, result)
	return result, nil
}

func (a *analyzer) generate(ctx context.Context, prompt string) (string, error) {
	if a.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, a.cfg.Timeout)
		defer cancel()
	}

	text, err := a.generator.Generate(ctx, prompt)
	if err != nil {
		if !errors.Is(err, summary.ErrGeneration) {
			err = fmt.Errorf("%w: %w", summary.ErrGeneration, err)
		}
		return "", err
	}
	return text, nil
}

func (a *analyzer) record(ctx context.Context, result *Result) {
	if a.recorder == nil {
		return
	}

	rec, err := a.recorder.Record(ctx, history.RecordCommand{
		Mode:      string(result.Mode),
		Requested: result.Requested,
		Matched:   result.Matched,
		Missing:   result.Missing,
		RowCount:  result.Rows,
		Model:     result.Model,
		Summary:   result.Summary,
		Duration:  result.Duration,
	})
	if err != nil {
		a.logger.WarnContext(ctx, "analysis not recorded", "error", err)
		return
	}
	if rec != nil {
		result.RecordID = &rec.ID
	}
}

// matched returns the distinct requested names absent from missing, in
// request order.
func matched(requested, missing []string) []string {
	out := make([]string, 0, len(requested))
	for _, n := range requested {
		if slices.Contains(missing, n) || slices.Contains(out, n) {
			continue
		}
		out = append(out, n)
	}
	return out
}
