package analysis

import (
	"errors"
	"net/http"

	"github.com/JaimeStill/studize/internal/roster"
	"github.com/JaimeStill/studize/internal/summary"
)

var (
	// ErrNoSelection indicates a request named no students.
	ErrNoSelection = errors.New("please select at least one student")
	// ErrInvalidRequest indicates a malformed analyze request body.
	ErrInvalidRequest = errors.New("invalid analyze request")
)

// MapHTTPStatus maps analysis errors, and the roster and summary errors
// Process passes through, to HTTP status codes.
func MapHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrNoSelection), errors.Is(err, ErrInvalidRequest):
		return http.StatusBadRequest
	case errors.Is(err, summary.ErrGeneration):
		return summary.MapHTTPStatus(err)
	default:
		return roster.MapHTTPStatus(err)
	}
}
