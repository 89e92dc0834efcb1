package history

import (
	"time"

	"github.com/google/uuid"
)

// Record is one generated summary kept for later review.
type Record struct {
	ID        uuid.UUID `json:"id"`
	Mode      string    `json:"mode"`
	Requested []string  `json:"requested"`
	Matched   []string  `json:"matched"`
	Missing   []string  `json:"missing"`
	RowCount  int       `json:"row_count"`
	Model     string    `json:"model"`
	Summary   string    `json:"summary"`
	Duration  int64     `json:"duration_ms"`
	CreatedAt time.Time `json:"created_at"`
}

// RecordCommand carries the fields for a new Record.
type RecordCommand struct {
	Mode      string
	Requested []string
	Matched   []string
	Missing   []string
	RowCount  int
	Model     string
	Summary   string
	Duration  time.Duration
}
