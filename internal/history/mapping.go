package history

import (
	"encoding/json"
	"net/url"

	"github.com/JaimeStill/studize/pkg/query"
	"github.com/JaimeStill/studize/pkg/repository"
)

var projection = query.
	NewProjection("analyses", "a").
	Project("id", "id").
	Project("mode", "mode").
	Project("requested", "requested").
	Project("matched", "matched").
	Project("missing", "missing").
	Project("row_count", "row_count").
	Project("model", "model").
	Project("summary", "summary").
	Project("duration_ms", "duration_ms").
	Project("created_at", "created_at").
	Filter("requested::text", "requested_text")

var defaultSort = query.SortField{Field: "created_at", Descending: true}

// Filters narrows a history listing. Nil fields are ignored. Mode matches
// exactly; Student matches any requested name containing the value.
type Filters struct {
	Mode    *string `json:"mode,omitempty"`
	Student *string `json:"student,omitempty"`
}

// Apply adds the filter conditions to b.
func (f Filters) Apply(b *query.Builder) *query.Builder {
	return b.
		WhereEquals("mode", f.Mode).
		WhereContains("requested_text", f.Student)
}

// FiltersFromQuery reads mode and student from query values.
func FiltersFromQuery(values url.Values) Filters {
	var f Filters
	if m := values.Get("mode"); m != "" {
		f.Mode = &m
	}
	if s := values.Get("student"); s != "" {
		f.Student = &s
	}
	return f
}

func scanRecord(s repository.Scanner) (Record, error) {
	var (
		r                          Record
		requested, matched, missed []byte
	)
	err := s.Scan(
		&r.ID, &r.Mode, &requested, &matched, &missed,
		&r.RowCount, &r.Model, &r.Summary, &r.Duration, &r.CreatedAt,
	)
	if err != nil {
		return r, err
	}

	for _, f := range []struct {
		raw []byte
		dst *[]string
	}{
		{requested, &r.Requested},
		{matched, &r.Matched},
		{missed, &r.Missing},
	} {
		if err := json.Unmarshal(f.raw, f.dst); err != nil {
			return r, err
		}
	}
	return r, nil
}
