package history_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/JaimeStill/studize/internal/history"
	"github.com/JaimeStill/studize/pkg/pagination"
	"github.com/JaimeStill/studize/pkg/routes"
)

var pageCfg = pagination.Config{DefaultPageSize: 20, MaxPageSize: 100}

func discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type mockSystem struct {
	records     map[uuid.UUID]history.Record
	lastPage    pagination.PageRequest
	lastFilters history.Filters
}

func (m *mockSystem) Handler() *history.Handler {
	return history.NewHandler(m, discard(), pageCfg)
}

func (m *mockSystem) Enabled() bool { return true }

func (m *mockSystem) List(ctx context.Context, page pagination.PageRequest, filters history.Filters) (*pagination.PageResult[history.Record], error) {
	m.lastPage = page
	m.lastFilters = filters
	data := make([]history.Record, 0, len(m.records))
	for _, r := range m.records {
		data = append(data, r)
	}
	result := pagination.NewPageResult(data, len(data), page.Page, page.PageSize)
	return &result, nil
}

func (m *mockSystem) Find(ctx context.Context, id uuid.UUID) (*history.Record, error) {
	r, ok := m.records[id]
	if !ok {
		return nil, history.ErrNotFound
	}
	return &r, nil
}

func (m *mockSystem) Record(ctx context.Context, cmd history.RecordCommand) (*history.Record, error) {
	return nil, nil
}

func serve(sys history.System, path string) *httptest.ResponseRecorder {
	mux := http.NewServeMux()
	routes.Register(mux, sys.Handler().Routes())

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest("GET", path, nil))
	return rec
}

func TestHandlerFind(t *testing.T) {
	id := uuid.New()
	sys := &mockSystem{records: map[uuid.UUID]history.Record{
		id: {
			ID:        id,
			Mode:      "single",
			Requested: []string{"Alice"},
			Matched:   []string{"Alice"},
			Missing:   []string{},
			RowCount:  2,
			Model:     "gemma2-9b-it",
			Summary:   "Alice is doing well.",
			CreatedAt: time.Now(),
		},
	}}

	tests := []struct {
		name   string
		path   string
		status int
	}{
		{"found", "/analyses/" + id.String(), http.StatusOK},
		{"unknown", "/analyses/" + uuid.NewString(), http.StatusNotFound},
		{"invalid id", "/analyses/not-a-uuid", http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(sys, tt.path)
			if rec.Code != tt.status {
				t.Fatalf("status: got %d, want %d", rec.Code, tt.status)
			}
			if tt.status != http.StatusOK {
				return
			}

			var got history.Record
			if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
				t.Fatalf("unmarshal: %v", err)
			}
			if got.ID != id || got.Summary != "Alice is doing well." {
				t.Errorf("record: %+v", got)
			}
		})
	}
}

func TestHandlerListQuery(t *testing.T) {
	sys := &mockSystem{records: map[uuid.UUID]history.Record{}}

	rec := serve(sys, "/analyses?page=2&page_size=500&search=+Alice+&mode=multi&student=Bo&sort=-row_count")
	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d, want 200", rec.Code)
	}

	if sys.lastPage.Page != 2 {
		t.Errorf("page: got %d, want 2", sys.lastPage.Page)
	}
	if sys.lastPage.PageSize != 100 {
		t.Errorf("page size: got %d, want 100", sys.lastPage.PageSize)
	}
	if sys.lastPage.Search != "Alice" {
		t.Errorf("search: got %q, want Alice", sys.lastPage.Search)
	}
	if len(sys.lastPage.Sort) != 1 || sys.lastPage.Sort[0].Field != "row_count" || !sys.lastPage.Sort[0].Descending {
		t.Errorf("sort: got %v, want -row_count", sys.lastPage.Sort)
	}
	if f := sys.lastFilters; f.Mode == nil || *f.Mode != "multi" || f.Student == nil || *f.Student != "Bo" {
		t.Errorf("filters: got %+v", f)
	}
}

func TestFiltersFromQuery(t *testing.T) {
	f := history.FiltersFromQuery(url.Values{})
	if f.Mode != nil || f.Student != nil {
		t.Errorf("empty query should give no filters: %+v", f)
	}
}

func TestDisabled(t *testing.T) {
	sys := history.Disabled(discard(), pageCfg)

	if sys.Enabled() {
		t.Error("disabled system reports enabled")
	}

	rec, err := sys.Record(t.Context(), history.RecordCommand{Mode: "single", Summary: "x"})
	if err != nil || rec != nil {
		t.Errorf("Record: got (%v, %v), want (nil, nil)", rec, err)
	}

	t.Run("list is empty", func(t *testing.T) {
		resp := serve(sys, "/analyses")
		if resp.Code != http.StatusOK {
			t.Fatalf("status: got %d, want 200", resp.Code)
		}

		var page pagination.PageResult[history.Record]
		if err := json.Unmarshal(resp.Body.Bytes(), &page); err != nil {
			t.Fatalf("unmarshal: %v", err)
		}
		if page.Total != 0 || len(page.Data) != 0 || page.PageSize != 20 {
			t.Errorf("page: %+v", page)
		}
	})

	t.Run("find is not found", func(t *testing.T) {
		resp := serve(sys, "/analyses/"+uuid.NewString())
		if resp.Code != http.StatusNotFound {
			t.Errorf("status: got %d, want 404", resp.Code)
		}
	})
}
