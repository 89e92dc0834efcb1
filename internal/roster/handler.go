package roster

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/JaimeStill/studize/pkg/handlers"
	"github.com/JaimeStill/studize/pkg/routes"
)

// Info summarizes the loaded table.
type Info struct {
	Source     string    `json:"source"`
	Identity   string    `json:"identity"`
	LoadedAt   time.Time `json:"loaded_at"`
	NameColumn string    `json:"name_column"`
	Columns    []string  `json:"columns"`
	Rows       int       `json:"rows"`
	Students   int       `json:"students"`
}

// InfoOf describes t.
func InfoOf(t *Table) Info {
	return Info{
		Source:     t.Source,
		Identity:   t.Identity,
		LoadedAt:   t.LoadedAt,
		NameColumn: t.NameColumn,
		Columns:    t.Columns,
		Rows:       t.Len(),
		Students:   len(t.Names()),
	}
}

// Handler provides HTTP endpoints for the roster and its students.
type Handler struct {
	loader *Loader
	logger *slog.Logger
}

// NewHandler creates a Handler over loader.
func NewHandler(loader *Loader, logger *slog.Logger) *Handler {
	return &Handler{
		loader: loader,
		logger: logger.With("handler", "roster"),
	}
}

// Routes returns the roster and student route groups.
func (h *Handler) Routes() []routes.Group {
	return []routes.Group{
		{
			Prefix: "/roster",
			Tags:   []string{"Roster"},
			Routes: []routes.Route{
				{Method: "GET", Pattern: "", Handler: h.Info, OpenAPI: spec.Info},
				{Method: "POST", Pattern: "/reload", Handler: h.Reload, OpenAPI: spec.Reload},
			},
		},
		{
			Prefix: "/students",
			Tags:   []string{"Students"},
			Routes: []routes.Route{
				{Method: "GET", Pattern: "", Handler: h.Students, OpenAPI: spec.Students},
				{Method: "GET", Pattern: "/{name}", Handler: h.Rows, OpenAPI: spec.Rows},
			},
		},
	}
}

// Info returns metadata for the current table.
func (h *Handler) Info(w http.ResponseWriter, r *http.Request) {
	t, err := h.loader.Load(r.Context())
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, InfoOf(t))
}

// Reload re-reads the workbook. A failed reload leaves the previous table in place.
func (h *Handler) Reload(w http.ResponseWriter, r *http.Request) {
	t, err := h.loader.Reload(r.Context())
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, InfoOf(t))
}

// Students returns the distinct student names in first-appearance order.
func (h *Handler) Students(w http.ResponseWriter, r *http.Request) {
	t, err := h.loader.Load(r.Context())
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, t.Names())
}

// Rows returns every row recorded for the named student.
func (h *Handler) Rows(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")

	t, err := h.loader.Load(r.Context())
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	rs := Select(t, name)
	if rs.Empty() {
		err := fmt.Errorf("%w: %s", ErrStudentNotFound, name)
		handlers.RespondError(w, h.logger, http.StatusNotFound, err)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, rs)
}
