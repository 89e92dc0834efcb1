package roster

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"path"
	"slices"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Format identifiers for workbook content.
const (
	FormatXLSX = "xlsx"
	FormatCSV  = "csv"
)

// ParseOptions controls how workbook content becomes a Table.
type ParseOptions struct {
	// Sheet names the worksheet to read; empty selects the first sheet.
	Sheet string
	// NameColumn is the header of the student-name column.
	NameColumn string
}

// DetectFormat infers the workbook format from a file name or blob key.
// Anything other than .csv is read as xlsx.
func DetectFormat(name string) string {
	if strings.EqualFold(path.Ext(name), ".csv") {
		return FormatCSV
	}
	return FormatXLSX
}

// Parse converts workbook bytes into a Table with columns and rows
// populated. Source metadata is left for the caller to fill. Errors wrap
// ErrDataSource.
func Parse(data []byte, format string, opts ParseOptions) (*Table, error) {
	var (
		records [][]string
		err     error
	)
	switch format {
	case FormatCSV:
		records, err = readCSV(data)
	default:
		records, err = readXLSX(data, opts.Sheet)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDataSource, err)
	}

	t, err := build(records, opts.NameColumn)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDataSource, err)
	}
	return t, nil
}

func readXLSX(data []byte, sheet string) ([][]string, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, fmt.Errorf("workbook has no sheets")
		}
		sheet = sheets[0]
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheet, err)
	}
	return rows, nil
}

func readCSV(data []byte) ([][]string, error) {
	r := csv.NewReader(bytes.NewReader(bytes.TrimPrefix(data, []byte("\xef\xbb\xbf"))))
	r.FieldsPerRecord = -1

	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}
	return records, nil
}

func build(records [][]string, nameColumn string) (*Table, error) {
	header := -1
	for i, rec := range records {
		if !blank(rec) {
			header = i
			break
		}
	}
	if header < 0 {
		return nil, fmt.Errorf("workbook has no header row")
	}

	width := 0
	for _, rec := range records[header:] {
		width = max(width, len(rec))
	}

	columns := headerColumns(records[header], width)
	if !slices.Contains(columns, nameColumn) {
		return nil, fmt.Errorf("missing name column %q", nameColumn)
	}

	t := &Table{
		NameColumn: nameColumn,
		Columns:    columns,
		Rows:       make([]Row, 0, len(records)-header-1),
	}
	for _, rec := range records[header+1:] {
		if blank(rec) {
			continue
		}
		values := make(map[string]string, len(columns))
		for i, col := range columns {
			if i < len(rec) {
				values[col] = rec[i]
			} else {
				values[col] = ""
			}
		}
		t.Rows = append(t.Rows, Row{Position: len(t.Rows), Values: values})
	}
	return t, nil
}

// headerColumns trims header cells and pads them to width, naming empty
// ones "Unnamed: <i>". Repeats get ".1", ".2", ... suffixes, skipping any
// suffixed name that is already taken, so every column key is unique.
func headerColumns(rec []string, width int) []string {
	columns := make([]string, width)
	counts := make(map[string]int, width)
	for i := range columns {
		var name string
		if i < len(rec) {
			name = strings.TrimSpace(rec[i])
		}
		if name == "" {
			name = fmt.Sprintf("Unnamed: %d", i)
		}

		n := counts[name]
		for n > 0 {
			counts[name] = n + 1
			name = fmt.Sprintf("%s.%d", name, n)
			n = counts[name]
		}
		counts[name] = n + 1
		columns[i] = name
	}
	return columns
}

func blank(rec []string) bool {
	for _, cell := range rec {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
