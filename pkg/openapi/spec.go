// Package openapi builds an OpenAPI 3.1 document from route metadata and
// serves it as JSON.
package openapi

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
)

// Spec is an OpenAPI 3.1 document.
type Spec struct {
	OpenAPI    string               `json:"openapi"`
	Info       *Info                `json:"info"`
	Servers    []*Server            `json:"servers,omitempty"`
	Paths      map[string]*PathItem `json:"paths"`
	Components *Components          `json:"components,omitempty"`
}

// NewSpec creates a Spec titled from cfg with the shared components.
func NewSpec(cfg *Config, version string) *Spec {
	return &Spec{
		OpenAPI: "3.1.0",
		Info: &Info{
			Title:       cfg.Title,
			Version:     version,
			Description: cfg.Description,
		},
		Paths:      make(map[string]*PathItem),
		Components: NewComponents(),
	}
}

// AddServer appends a server URL.
func (s *Spec) AddServer(url string) {
	s.Servers = append(s.Servers, &Server{URL: url})
}

// AddOperation documents op at method and path. Registering the same
// method and path twice is an error.
func (s *Spec) AddOperation(method, path string, op *Operation) error {
	item, ok := s.Paths[path]
	if !ok {
		item = &PathItem{}
		s.Paths[path] = item
	}

	var slot **Operation
	switch strings.ToUpper(method) {
	case http.MethodGet:
		slot = &item.Get
	case http.MethodPost:
		slot = &item.Post
	default:
		return fmt.Errorf("openapi: unsupported method %s for %s", method, path)
	}

	if *slot != nil {
		return fmt.Errorf("openapi: %s %s documented twice", method, path)
	}
	*slot = op
	return nil
}

// Handler serializes the spec once and returns a handler serving the bytes.
func (s *Spec) Handler() (http.HandlerFunc, error) {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal openapi spec: %w", err)
	}

	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		w.Write(data)
	}, nil
}
