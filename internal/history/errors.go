package history

import (
	"errors"
	"net/http"
)

var (
	// ErrNotFound indicates no record has the requested ID.
	ErrNotFound = errors.New("analysis record not found")
	// ErrDuplicate indicates a record ID collision.
	ErrDuplicate = errors.New("analysis record already exists")
	// ErrInvalidID indicates a malformed record ID.
	ErrInvalidID = errors.New("invalid analysis id")
)

// MapHTTPStatus maps history errors to HTTP status codes.
func MapHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrInvalidID):
		return http.StatusBadRequest
	case errors.Is(err, ErrDuplicate):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
