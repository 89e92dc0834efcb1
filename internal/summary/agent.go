package summary

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/JaimeStill/go-agents/pkg/agent"
	gaconfig "github.com/JaimeStill/go-agents/pkg/config"
)

type agentGenerator struct {
	agent  agent.Agent
	model  string
	logger *slog.Logger
}

// NewAgent creates a generator backed by a go-agents agent, used for
// providers such as ollama and azure.
func NewAgent(cfg *gaconfig.AgentConfig, logger *slog.Logger) (Generator, error) {
	a, err := agent.New(cfg)
	if err != nil {
		return nil, fmt.Errorf("create agent: %w", err)
	}
	return &agentGenerator{
		agent:  a,
		model:  cfg.Model.Name,
		logger: logger,
	}, nil
}

func (g *agentGenerator) Model() string {
	return g.model
}

func (g *agentGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	start := time.Now()

	resp, err := g.agent.Chat(ctx, prompt, map[string]any{"temperature": 0.0})
	if err != nil {
		return "", generationError("agent chat", err)
	}

	text := strings.TrimSpace(resp.Content())
	if text == "" {
		return "", generationError("agent chat", errors.New("response content is empty"))
	}

	g.logger.DebugContext(ctx, "summary generated", "duration", time.Since(start))
	return text, nil
}
