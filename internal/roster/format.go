package roster

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

const columnGap = "  "

var cellEscaper = strings.NewReplacer("\r\n", `\n`, "\n", `\n`, "\r", `\n`, "\t", " ")

// Format renders rs as a right-aligned text table: a header line with the
// column names followed by one line per row, without an index column.
// Output is deterministic and never truncates cell content. Line breaks
// inside cells are written as a literal \n so each row stays on one line.
func Format(rs RowSet) (string, error) {
	if rs.Empty() {
		return "", ErrEmptyInput
	}

	cells := make([][]string, len(rs.Rows)+1)
	cells[0] = make([]string, len(rs.Columns))
	for i, col := range rs.Columns {
		cells[0][i] = cellEscaper.Replace(col)
	}
	for r, row := range rs.Rows {
		line := make([]string, len(rs.Columns))
		for i, col := range rs.Columns {
			line[i] = cellEscaper.Replace(row.Value(col))
		}
		cells[r+1] = line
	}

	widths := make([]int, len(rs.Columns))
	for _, line := range cells {
		for i, cell := range line {
			widths[i] = max(widths[i], runewidth.StringWidth(cell))
		}
	}

	var sb strings.Builder
	for r, line := range cells {
		if r > 0 {
			sb.WriteByte('\n')
		}
		for i, cell := range line {
			if i > 0 {
				sb.WriteString(columnGap)
			}
			sb.WriteString(runewidth.FillLeft(cell, widths[i]))
		}
	}
	return sb.String(), nil
}
