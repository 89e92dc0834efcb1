// Package query builds parameterized PostgreSQL SELECT statements over a
// projection of logical field names onto table columns.
package query

import (
	"fmt"
	"strings"
)

// Projection maps logical field names to alias-qualified column expressions.
// Projected fields are selected; filter fields are usable in WHERE and
// ORDER BY clauses only.
type Projection struct {
	table   string
	alias   string
	fields  map[string]string
	columns []string
}

// NewProjection creates a Projection over table, referenced as alias.
func NewProjection(table, alias string) *Projection {
	return &Projection{
		table:  table,
		alias:  alias,
		fields: make(map[string]string),
	}
}

// Project selects column and exposes it as field. Columns are selected in
// the order they are projected.
func (p *Projection) Project(column, field string) *Projection {
	qualified := p.qualify(column)
	p.fields[field] = qualified
	p.columns = append(p.columns, qualified)
	return p
}

// Filter exposes expr as field without selecting it, e.g. a cast of a
// JSONB column for text search.
func (p *Projection) Filter(expr, field string) *Projection {
	p.fields[field] = p.qualify(expr)
	return p
}

// Column returns the expression for field and whether field is known.
func (p *Projection) Column(field string) (string, bool) {
	col, ok := p.fields[field]
	return col, ok
}

// Columns returns the selected columns as a comma-separated list.
func (p *Projection) Columns() string {
	return strings.Join(p.columns, ", ")
}

// From returns the table reference with its alias.
func (p *Projection) From() string {
	return p.table + " " + p.alias
}

func (p *Projection) qualify(column string) string {
	return fmt.Sprintf("%s.%s", p.alias, column)
}

func (p *Projection) mustColumn(field string) string {
	col, ok := p.fields[field]
	if !ok {
		panic(fmt.Sprintf("query: field %q is not projected on %s", field, p.table))
	}
	return col
}
