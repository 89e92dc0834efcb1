// Package roster loads the student workbook into an immutable in-memory
// table, selects rows by student name, and renders row sets as the text
// context embedded in prompts.
package roster

import "time"

// Row is one record of the workbook. Position is the zero-based index of
// the row within the table's data rows.
type Row struct {
	Position int               `json:"position"`
	Values   map[string]string `json:"values"`
}

// Value returns the cell for column, or "" when the row has none.
func (r Row) Value(column string) string {
	return r.Values[column]
}

// Table is the parsed workbook. A Table is never modified after the
// loader publishes it; callers share it read-only.
type Table struct {
	Source     string    `json:"source"`
	Identity   string    `json:"identity"`
	LoadedAt   time.Time `json:"loaded_at"`
	NameColumn string    `json:"name_column"`
	Columns    []string  `json:"columns"`
	Rows       []Row     `json:"-"`
}

// Len returns the number of data rows.
func (t *Table) Len() int {
	return len(t.Rows)
}

// Names returns the distinct non-empty student names in order of first
// appearance.
func (t *Table) Names() []string {
	seen := make(map[string]struct{}, len(t.Rows))
	names := make([]string, 0, len(t.Rows))
	for _, row := range t.Rows {
		name := row.Value(t.NameColumn)
		if name == "" {
			continue
		}
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		names = append(names, name)
	}
	return names
}

// RowSet is a subset of a table's rows in table order, carrying the
// table's columns so it can be rendered on its own. An empty RowSet means
// no data was found.
type RowSet struct {
	Columns []string `json:"columns"`
	Rows    []Row    `json:"rows"`
}

// Empty reports whether the set has no rows.
func (rs RowSet) Empty() bool {
	return len(rs.Rows) == 0
}
