package prompts

import (
	"errors"
	"net/http"
)

// ErrInvalidMode indicates an unrecognized template mode.
var ErrInvalidMode = errors.New("mode must be single or multi")

// MapHTTPStatus maps prompt errors to HTTP status codes.
func MapHTTPStatus(err error) int {
	if errors.Is(err, ErrInvalidMode) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
