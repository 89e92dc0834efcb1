package roster

import (
	"errors"
	"net/http"
)

var (
	// ErrDataSource indicates the workbook is missing, unreadable, or malformed.
	ErrDataSource = errors.New("student data source unavailable")
	// ErrEmptyInput indicates an empty row set was passed to Format.
	ErrEmptyInput = errors.New("cannot format an empty row set")
	// ErrStudentNotFound indicates no rows match the requested name.
	ErrStudentNotFound = errors.New("student not found")
)

// MapHTTPStatus maps roster errors to HTTP status codes.
func MapHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrStudentNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrDataSource):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}
