// Package history keeps a record of generated summaries in PostgreSQL.
// When no database is configured the package provides a disabled System
// that records nothing.
package history

import (
	"context"

	"github.com/google/uuid"

	"github.com/JaimeStill/studize/pkg/pagination"
)

// System defines the history operations.
type System interface {
	Handler() *Handler
	// Enabled reports whether records are persisted.
	Enabled() bool
	List(ctx context.Context, page pagination.PageRequest, filters Filters) (*pagination.PageResult[Record], error)
	Find(ctx context.Context, id uuid.UUID) (*Record, error)
	Record(ctx context.Context, cmd RecordCommand) (*Record, error)
}
