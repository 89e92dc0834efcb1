package query

import (
	"fmt"
	"reflect"
	"strings"
)

// SortField is one ORDER BY term over a logical field name.
type SortField struct {
	Field      string `json:"field"`
	Descending bool   `json:"descending"`
}

// ParseSortFields parses "mode,-created_at" into sort fields. A leading "-"
// sorts descending. Empty input yields nil.
func ParseSortFields(s string) []SortField {
	if strings.TrimSpace(s) == "" {
		return nil
	}

	var fields []SortField
	for part := range strings.SplitSeq(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		field, desc := strings.CutPrefix(part, "-")
		fields = append(fields, SortField{Field: field, Descending: desc})
	}
	return fields
}

type condition struct {
	clause string
	args   []any
}

// Builder accumulates conditions and ordering for one projection and renders
// them with sequential $n placeholders. Filter methods panic on fields the
// projection does not know; sort fields from requests are checked instead.
type Builder struct {
	projection  *Projection
	conditions  []condition
	order       []SortField
	defaultSort []SortField
}

// NewBuilder creates a Builder. defaultSort applies when no valid sort is set.
func NewBuilder(projection *Projection, defaultSort ...SortField) *Builder {
	return &Builder{
		projection:  projection,
		defaultSort: defaultSort,
	}
}

// WhereEquals adds field = value. Nil values are ignored.
func (b *Builder) WhereEquals(field string, value any) *Builder {
	if isNil(value) {
		return b
	}
	b.add(b.projection.mustColumn(field)+" = ?", value)
	return b
}

// WhereContains adds a case-insensitive substring match. The value is
// matched literally: LIKE wildcards in it are escaped. Nil or empty values
// are ignored.
func (b *Builder) WhereContains(field string, value *string) *Builder {
	if value == nil || *value == "" {
		return b
	}
	b.add(b.projection.mustColumn(field)+" ILIKE ?", containsPattern(*value))
	return b
}

// WhereSearch matches search case-insensitively and literally against any
// of fields. An empty search is ignored.
func (b *Builder) WhereSearch(search string, fields ...string) *Builder {
	if search == "" || len(fields) == 0 {
		return b
	}

	pattern := containsPattern(search)
	clauses := make([]string, len(fields))
	args := make([]any, len(fields))
	for i, f := range fields {
		clauses[i] = b.projection.mustColumn(f) + " ILIKE ?"
		args[i] = pattern
	}

	b.add("("+strings.Join(clauses, " OR ")+")", args...)
	return b
}

// OrderBy sets the sort order. Fields the projection does not know are
// dropped, so request input never reaches the SQL text.
func (b *Builder) OrderBy(fields []SortField) *Builder {
	b.order = b.order[:0]
	for _, f := range fields {
		if _, ok := b.projection.Column(f.Field); ok {
			b.order = append(b.order, f)
		}
	}
	return b
}

// BuildCount returns a COUNT(*) statement for the current conditions.
func (b *Builder) BuildCount() (string, []any) {
	where, args := b.where()
	return fmt.Sprintf("SELECT COUNT(*) FROM %s%s", b.projection.From(), where), args
}

// BuildPage returns a SELECT for one page. LIMIT and OFFSET are parameters.
func (b *Builder) BuildPage(page, pageSize int) (string, []any) {
	where, args := b.where()
	n := len(args)
	args = append(args, pageSize, max(page-1, 0)*pageSize)

	sql := fmt.Sprintf(
		"SELECT %s FROM %s%s%s LIMIT $%d OFFSET $%d",
		b.projection.Columns(),
		b.projection.From(),
		where,
		b.orderBy(),
		n+1, n+2,
	)
	return sql, args
}

// BuildSingle returns a SELECT for the row whose field equals value.
func (b *Builder) BuildSingle(field string, value any) (string, []any) {
	sql := fmt.Sprintf(
		"SELECT %s FROM %s WHERE %s = $1",
		b.projection.Columns(),
		b.projection.From(),
		b.projection.mustColumn(field),
	)
	return sql, []any{value}
}

func (b *Builder) add(clause string, args ...any) {
	b.conditions = append(b.conditions, condition{clause: clause, args: args})
}

func (b *Builder) where() (string, []any) {
	if len(b.conditions) == 0 {
		return "", nil
	}

	var (
		clauses = make([]string, len(b.conditions))
		args    []any
	)
	for i, c := range b.conditions {
		clause := c.clause
		for _, arg := range c.args {
			args = append(args, arg)
			clause = strings.Replace(clause, "?", fmt.Sprintf("$%d", len(args)), 1)
		}
		clauses[i] = clause
	}
	return " WHERE " + strings.Join(clauses, " AND "), args
}

func (b *Builder) orderBy() string {
	fields := b.order
	if len(fields) == 0 {
		fields = b.defaultSort
	}
	if len(fields) == 0 {
		return ""
	}

	parts := make([]string, len(fields))
	for i, f := range fields {
		dir := "ASC"
		if f.Descending {
			dir = "DESC"
		}
		parts[i] = b.projection.mustColumn(f.Field) + " " + dir
	}
	return " ORDER BY " + strings.Join(parts, ", ")
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, "%", `\%`, "_", `\_`)

// containsPattern wraps value in % wildcards after escaping the LIKE
// metacharacters with backslash, PostgreSQL's default ESCAPE character.
func containsPattern(value string) string {
	return "%" + likeEscaper.Replace(value) + "%"
}

func isNil(value any) bool {
	if value == nil {
		return true
	}
	v := reflect.ValueOf(value)
	switch v.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Interface:
		return v.IsNil()
	}
	return false
}
