package history

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/JaimeStill/studize/pkg/pagination"
	"github.com/JaimeStill/studize/pkg/query"
	"github.com/JaimeStill/studize/pkg/repository"
)

type repo struct {
	db         *sql.DB
	logger     *slog.Logger
	pagination pagination.Config
	now        func() time.Time
}

// New creates a PostgreSQL-backed System.
func New(db *sql.DB, logger *slog.Logger, pagination pagination.Config) System {
	return &repo{
		db:         db,
		logger:     logger.With("system", "history"),
		pagination: pagination,
		now:        time.Now,
	}
}

func (r *repo) Handler() *Handler {
	return NewHandler(r, r.logger, r.pagination)
}

func (r *repo) Enabled() bool {
	return true
}

func (r *repo) List(ctx context.Context, page pagination.PageRequest, filters Filters) (*pagination.PageResult[Record], error) {
	page.Normalize(r.pagination)

	qb := query.
		NewBuilder(projection, defaultSort).
		WhereSearch(page.Search, "summary", "requested_text")

	filters.Apply(qb)

	if len(page.Sort) > 0 {
		qb.OrderBy(page.Sort)
	}

	countSQL, countArgs := qb.BuildCount()
	var total int
	if err := r.db.QueryRowContext(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, fmt.Errorf("count analyses: %w", err)
	}

	pageSQL, pageArgs := qb.BuildPage(page.Page, page.PageSize)
	items, err := repository.QueryMany(ctx, r.db, pageSQL, pageArgs, scanRecord)
	if err != nil {
		return nil, fmt.Errorf("query analyses: %w", err)
	}

	result := pagination.NewPageResult(items, total, page.Page, page.PageSize)
	return &result, nil
}

func (r *repo) Find(ctx context.Context, id uuid.UUID) (*Record, error) {
	q, args := query.NewBuilder(projection).BuildSingle("id", id)

	rec, err := repository.QueryOne(ctx, r.db, q, args, scanRecord)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}
	return &rec, nil
}

func (r *repo) Record(ctx context.Context, cmd RecordCommand) (*Record, error) {
	requested, err := json.Marshal(nonNil(cmd.Requested))
	if err != nil {
		return nil, err
	}
	matched, err := json.Marshal(nonNil(cmd.Matched))
	if err != nil {
		return nil, err
	}
	missing, err := json.Marshal(nonNil(cmd.Missing))
	if err != nil {
		return nil, err
	}

	q := `INSERT INTO analyses (id, mode, requested, matched, missing, row_count, model, summary, duration_ms, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id, mode, requested, matched, missing, row_count, model, summary, duration_ms, created_at`

	args := []any{
		uuid.New(), cmd.Mode, requested, matched, missing,
		cmd.RowCount, cmd.Model, cmd.Summary, cmd.Duration.Milliseconds(), r.now(),
	}

	rec, err := repository.QueryOne(ctx, r.db, q, args, scanRecord)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.logger.InfoContext(ctx, "analysis recorded", "id", rec.ID, "mode", rec.Mode)
	return &rec, nil
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
