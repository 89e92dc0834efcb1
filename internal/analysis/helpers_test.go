package analysis_test

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/JaimeStill/studize/internal/history"
	"github.com/JaimeStill/studize/internal/roster"
)

const rosterCSV = "Name,Subject,Score\n" +
	"Alice,Math,90\n" +
	"Bob,Math,72\n" +
	"Alice,Science,85\n"

func discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func parseRoster(t *testing.T) *roster.Table {
	t.Helper()
	table, err := roster.Parse([]byte(rosterCSV), roster.FormatCSV, roster.ParseOptions{NameColumn: "Name"})
	if err != nil {
		t.Fatalf("parse roster: %v", err)
	}
	return table
}

type mockTables struct {
	table *roster.Table
	err   error
}

func (m *mockTables) Load(ctx context.Context) (*roster.Table, error) {
	return m.table, m.err
}

type mockGenerator struct {
	mu       sync.Mutex
	prompts  []string
	deadline []bool
	model    string
	generate func(ctx context.Context, prompt string) (string, error)
}

func (m *mockGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	m.mu.Lock()
	m.prompts = append(m.prompts, prompt)
	_, ok := ctx.Deadline()
	m.deadline = append(m.deadline, ok)
	m.mu.Unlock()

	if m.generate != nil {
		return m.generate(ctx, prompt)
	}
	return "generated summary", nil
}

func (m *mockGenerator) Model() string {
	if m.model == "" {
		return "test-model"
	}
	return m.model
}

func (m *mockGenerator) calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.prompts)
}

type mockRecorder struct {
	commands []history.RecordCommand
	err      error
}

func (m *mockRecorder) Record(ctx context.Context, cmd history.RecordCommand) (*history.Record, error) {
	m.commands = append(m.commands, cmd)
	if m.err != nil {
		return nil, m.err
	}
	return &history.Record{
		ID:        uuid.New(),
		Mode:      cmd.Mode,
		Summary:   cmd.Summary,
		CreatedAt: time.Now(),
	}, nil
}
