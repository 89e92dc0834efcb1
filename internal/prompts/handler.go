package prompts

import (
	"log/slog"
	"net/http"

	"github.com/JaimeStill/studize/pkg/handlers"
	"github.com/JaimeStill/studize/pkg/routes"
)

// ModeTemplate is the response body for a template lookup.
type ModeTemplate struct {
	Mode     Mode   `json:"mode"`
	Template string `json:"template"`
}

// Handler exposes the templates read-only.
type Handler struct {
	logger *slog.Logger
}

// NewHandler creates a Handler.
func NewHandler(logger *slog.Logger) *Handler {
	return &Handler{logger: logger.With("handler", "prompts")}
}

// Routes returns the route group for template endpoints.
func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix: "/modes",
		Tags:   []string{"Prompts"},
		Routes: []routes.Route{
			{Method: "GET", Pattern: "", Handler: h.Modes, OpenAPI: spec.Modes},
			{Method: "GET", Pattern: "/{mode}/template", Handler: h.Template, OpenAPI: spec.Template},
		},
	}
}

// Modes lists the template modes.
func (h *Handler) Modes(w http.ResponseWriter, r *http.Request) {
	handlers.RespondJSON(w, http.StatusOK, Modes())
}

// Template returns the raw template for the mode path parameter.
func (h *Handler) Template(w http.ResponseWriter, r *http.Request) {
	mode, err := ParseMode(r.PathValue("mode"))
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	text, err := Template(mode)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, ModeTemplate{Mode: mode, Template: text})
}
