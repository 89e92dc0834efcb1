// Package summary sends assembled prompts to a hosted text-generation
// service and returns the generated narrative.
package summary

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	gaconfig "github.com/JaimeStill/go-agents/pkg/config"
)

// Provider names served by the OpenAI-compatible backend. Every other
// provider name is handed to go-agents.
const (
	ProviderGroq   = "groq"
	ProviderOpenAI = "openai"
)

// OptionToken is the provider option key that carries the API credential.
const OptionToken = "token"

// ErrGeneration indicates the generation call failed: transport error,
// rejected credentials, rate limiting, timeout, or a malformed response.
var ErrGeneration = errors.New("summary generation failed")

// Generator produces text for a prompt in one blocking round trip.
// Implementations do not retry.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
	Model() string
}

// New selects a backend for cfg's provider.
func New(cfg *gaconfig.AgentConfig, logger *slog.Logger) (Generator, error) {
	if cfg.Provider == nil || cfg.Model == nil {
		return nil, fmt.Errorf("agent provider and model required")
	}

	logger = logger.With("system", "summary", "provider", cfg.Provider.Name, "model", cfg.Model.Name)

	switch strings.ToLower(cfg.Provider.Name) {
	case ProviderGroq, ProviderOpenAI:
		token, _ := cfg.Provider.Options[OptionToken].(string)
		return NewOpenAI(OpenAIConfig{
			BaseURL: cfg.Provider.BaseURL,
			Token:   token,
			Model:   cfg.Model.Name,
		}, logger)
	default:
		return NewAgent(cfg, logger)
	}
}

// MapHTTPStatus maps generation errors to HTTP status codes.
func MapHTTPStatus(err error) int {
	if errors.Is(err, ErrGeneration) {
		return http.StatusBadGateway
	}
	return http.StatusInternalServerError
}

func generationError(stage string, err error) error {
	return fmt.Errorf("%w: %s: %w", ErrGeneration, stage, err)
}
