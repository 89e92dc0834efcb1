package analysis

import (
	"time"

	"github.com/google/uuid"

	"github.com/JaimeStill/studize/internal/prompts"
)

// Outcome distinguishes a generated summary from a not-found result.
type Outcome string

const (
	OutcomeSummary  Outcome = "summary"
	OutcomeNotFound Outcome = "not_found"
)

// Result is the outcome of one Process call. Summary is set for
// OutcomeSummary, Message for OutcomeNotFound. Missing lists requested
// names that matched no rows; the summary covers Matched only.
type Result struct {
	Outcome   Outcome       `json:"outcome"`
	Mode      prompts.Mode  `json:"mode"`
	Requested []string      `json:"requested"`
	Matched   []string      `json:"matched"`
	Missing   []string      `json:"missing"`
	Rows      int           `json:"rows"`
	Summary   string        `json:"summary,omitempty"`
	Message   string        `json:"message,omitempty"`
	Model     string        `json:"model,omitempty"`
	Duration  time.Duration `json:"duration_ns,omitempty"`
	RecordID  *uuid.UUID    `json:"record_id,omitempty"`
}

// Partial reports whether some requested names were dropped from a summary.
func (r *Result) Partial() bool {
	return r.Outcome == OutcomeSummary && len(r.Missing) > 0
}
