package analysis

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/JaimeStill/studize/pkg/handlers"
	"github.com/JaimeStill/studize/pkg/routes"
)

const maxRequestBody = 1 << 20

// AnalyzeRequest is the body of POST /analyze. Exactly one of Name or
// Names is set: Name selects a Single, Names a Multi.
type AnalyzeRequest struct {
	Name  *string  `json:"name,omitempty"`
	Names []string `json:"names,omitempty"`
}

// Selection converts the request to its Selection variant.
func (r AnalyzeRequest) Selection() (Selection, error) {
	switch {
	case r.Name != nil && r.Names != nil:
		return nil, fmt.Errorf("%w: name and names are mutually exclusive", ErrInvalidRequest)
	case r.Name != nil:
		return Single{Name: *r.Name}, nil
	case r.Names != nil:
		return Multi{Names: r.Names}, nil
	default:
		return nil, ErrNoSelection
	}
}

// Handler provides the analyze endpoint.
type Handler struct {
	sys    System
	logger *slog.Logger
	limit  func(http.Handler) http.Handler
}

// NewHandler creates a Handler. limit may be nil.
func NewHandler(sys System, logger *slog.Logger, limit func(http.Handler) http.Handler) *Handler {
	return &Handler{
		sys:    sys,
		logger: logger.With("handler", "analysis"),
		limit:  limit,
	}
}

// Routes returns the route group for the analyze endpoint.
func (h *Handler) Routes() routes.Group {
	route := routes.Route{Method: "POST", Pattern: "", Handler: h.Analyze, OpenAPI: spec.Analyze}
	if h.limit != nil {
		route.Middleware = append(route.Middleware, h.limit)
	}

	return routes.Group{
		Prefix: "/analyze",
		Tags:   []string{"Analysis"},
		Routes: []routes.Route{route},
	}
}

// Analyze runs one selection and returns the Result. Not-found outcomes
// are returned with 200.
func (h *Handler) Analyze(w http.ResponseWriter, r *http.Request) {
	var req AnalyzeRequest
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBody)
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, fmt.Errorf("%w: %w", ErrInvalidRequest, err))
		return
	}

	sel, err := req.Selection()
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	result, err := h.sys.Process(r.Context(), sel)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
