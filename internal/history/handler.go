package history

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/JaimeStill/studize/pkg/handlers"
	"github.com/JaimeStill/studize/pkg/pagination"
	"github.com/JaimeStill/studize/pkg/routes"
)

// Handler provides HTTP endpoints for analysis history.
type Handler struct {
	sys        System
	logger     *slog.Logger
	pagination pagination.Config
}

// NewHandler creates a Handler.
func NewHandler(sys System, logger *slog.Logger, pagination pagination.Config) *Handler {
	return &Handler{
		sys:        sys,
		logger:     logger.With("handler", "history"),
		pagination: pagination,
	}
}

// Routes returns the route group for history endpoints.
func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix: "/analyses",
		Tags:   []string{"History"},
		Routes: []routes.Route{
			{Method: "GET", Pattern: "", Handler: h.List, OpenAPI: spec.List},
			{Method: "GET", Pattern: "/{id}", Handler: h.Find, OpenAPI: spec.Find},
		},
	}
}

// List returns a page of records, newest first unless ?sort= says
// otherwise. ?search=, ?mode=, and ?student= narrow the results.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	values := r.URL.Query()
	page := pagination.PageRequestFromQuery(values, h.pagination)

	result, err := h.sys.List(r.Context(), page, FiltersFromQuery(values))
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusInternalServerError, err)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, result)
}

// Find returns one record by its UUID path parameter.
func (h *Handler) Find(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, fmt.Errorf("%w: %w", ErrInvalidID, err))
		return
	}

	rec, err := h.sys.Find(r.Context(), id)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, rec)
}
