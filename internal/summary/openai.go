package summary

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/sashabaranov/go-openai"
)

// OpenAIConfig configures an OpenAI-compatible chat completions backend.
type OpenAIConfig struct {
	BaseURL string
	Token   string
	Model   string
}

type openAIGenerator struct {
	client *openai.Client
	model  string
	logger *slog.Logger
}

// NewOpenAI creates a generator for any OpenAI-compatible endpoint,
// including Groq's.
func NewOpenAI(cfg OpenAIConfig, logger *slog.Logger) (Generator, error) {
	if cfg.Token == "" {
		return nil, fmt.Errorf("api token required")
	}
	if cfg.Model == "" {
		return nil, fmt.Errorf("model name required")
	}

	oc := openai.DefaultConfig(cfg.Token)
	if cfg.BaseURL != "" {
		oc.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	}
	oc.HTTPClient = &http.Client{Transport: zeroTemperature{base: http.DefaultTransport}}

	return &openAIGenerator{
		client: openai.NewClientWithConfig(oc),
		model:  cfg.Model,
		logger: logger,
	}, nil
}

func (g *openAIGenerator) Model() string {
	return g.model
}

func (g *openAIGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	start := time.Now()

	resp, err := g.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: g.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	})
	if err != nil {
		var apiErr *openai.APIError
		if errors.As(err, &apiErr) {
			return "", generationError(fmt.Sprintf("status %d", apiErr.HTTPStatusCode), err)
		}
		return "", generationError("chat completion", err)
	}

	if len(resp.Choices) == 0 {
		return "", generationError("chat completion", errors.New("response has no choices"))
	}

	text := strings.TrimSpace(resp.Choices[0].Message.Content)
	if text == "" {
		return "", generationError("chat completion", errors.New("response content is empty"))
	}

	g.logger.DebugContext(
		ctx, "summary generated",
		"prompt_tokens", resp.Usage.PromptTokens,
		"completion_tokens", resp.Usage.CompletionTokens,
		"duration", time.Since(start),
	)
	return text, nil
}

// zeroTemperature sets "temperature": 0 on chat completion request bodies.
// go-openai omits a zero Temperature from the JSON it sends, which leaves
// the provider default in effect.
type zeroTemperature struct {
	base http.RoundTripper
}

func (t zeroTemperature) RoundTrip(req *http.Request) (*http.Response, error) {
	if req.Method != http.MethodPost || req.Body == nil || !strings.HasSuffix(req.URL.Path, "/chat/completions") {
		return t.base.RoundTrip(req)
	}

	data, err := io.ReadAll(req.Body)
	req.Body.Close()
	if err != nil {
		return nil, fmt.Errorf("read request body: %w", err)
	}

	var body map[string]json.RawMessage
	if err := json.Unmarshal(data, &body); err != nil {
		return nil, fmt.Errorf("decode request body: %w", err)
	}
	body["temperature"] = json.RawMessage("0")

	data, err = json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("encode request body: %w", err)
	}

	out := req.Clone(req.Context())
	out.Body = io.NopCloser(bytes.NewReader(data))
	out.ContentLength = int64(len(data))
	out.GetBody = func() (io.ReadCloser, error) {
		return io.NopCloser(bytes.NewReader(data)), nil
	}
	return t.base.RoundTrip(out)
}
