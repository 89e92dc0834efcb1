package roster_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"

	"github.com/JaimeStill/studize/internal/roster"
)

const sampleCSV = "Name,Subject,Score\n" +
	"Alice,Math,90\n" +
	"Bob,Math,72\n" +
	"Alice,Science,85\n"

func discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// fakeSource serves data from memory. Changing identity simulates a new
// version of the workbook.
type fakeSource struct {
	mu       sync.Mutex
	identity string
	data     []byte
	statErr  error
	opens    int
}

func newFakeSource(data string) *fakeSource {
	return &fakeSource{identity: "v1", data: []byte(data)}
}

func (s *fakeSource) Name() string   { return "fake:roster.csv" }
func (s *fakeSource) Format() string { return roster.FormatCSV }

func (s *fakeSource) Stat(ctx context.Context) (roster.Stamp, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.statErr != nil {
		return roster.Stamp{}, s.statErr
	}
	return roster.Stamp{Identity: s.identity, Size: int64(len(s.data))}, nil
}

func (s *fakeSource) Open(ctx context.Context) (io.ReadCloser, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.opens++
	return io.NopCloser(bytes.NewReader(s.data)), nil
}

func (s *fakeSource) set(identity, data string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.identity = identity
	s.data = []byte(data)
}

func (s *fakeSource) fail(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.statErr = err
}

func (s *fakeSource) openCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.opens
}

var errOffline = errors.New("offline")

func newLoader(src roster.Source) *roster.Loader {
	return roster.NewLoader(src, roster.LoaderConfig{
		Parse: roster.ParseOptions{NameColumn: "Name"},
	}, discard())
}

func sampleTable(t *testing.T) *roster.Table {
	t.Helper()
	table, err := roster.Parse([]byte(sampleCSV), roster.FormatCSV, roster.ParseOptions{NameColumn: "Name"})
	if err != nil {
		t.Fatalf("parse sample: %v", err)
	}
	return table
}

func names(rs roster.RowSet, column string) []string {
	out := make([]string, len(rs.Rows))
	for i, row := range rs.Rows {
		out[i] = row.Value(column)
	}
	return out
}
