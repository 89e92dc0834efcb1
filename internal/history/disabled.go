package history

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/JaimeStill/studize/pkg/pagination"
)

type disabled struct {
	logger     *slog.Logger
	pagination pagination.Config
}

// Disabled returns a System that persists nothing: List is always empty,
// Find always fails with ErrNotFound, and Record returns (nil, nil).
func Disabled(logger *slog.Logger, pagination pagination.Config) System {
	return &disabled{
		logger:     logger.With("system", "history"),
		pagination: pagination,
	}
}

func (d *disabled) Handler() *Handler {
	return NewHandler(d, d.logger, d.pagination)
}

func (d *disabled) Enabled() bool {
	return false
}

func (d *disabled) List(ctx context.Context, page pagination.PageRequest, filters Filters) (*pagination.PageResult[Record], error) {
	page.Normalize(d.pagination)
	result := pagination.NewPageResult[Record](nil, 0, page.Page, page.PageSize)
	return &result, nil
}

func (d *disabled) Find(ctx context.Context, id uuid.UUID) (*Record, error) {
	return nil, ErrNotFound
}

func (d *disabled) Record(ctx context.Context, cmd RecordCommand) (*Record, error) {
	return nil, nil
}
