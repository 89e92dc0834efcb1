package roster_test

import (
	"errors"
	"slices"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/JaimeStill/studize/internal/roster"
)

func TestParseCSV(t *testing.T) {
	data := "\xef\xbb\xbf\n" +
		" Name ,Score,,Score\n" +
		"Alice,90,x,91\n" +
		",,,\n" +
		"Bob,72\n"

	table, err := roster.Parse([]byte(data), roster.FormatCSV, roster.ParseOptions{NameColumn: "Name"})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	wantCols := []string{"Name", "Score", "Unnamed: 2", "Score.1"}
	if !slices.Equal(table.Columns, wantCols) {
		t.Errorf("columns: got %v, want %v", table.Columns, wantCols)
	}
	if table.Len() != 2 {
		t.Fatalf("rows: got %d, want 2", table.Len())
	}
	if got := table.Rows[0].Value("Score.1"); got != "91" {
		t.Errorf("duplicate header cell: got %q, want 91", got)
	}
	if got := table.Rows[1].Value("Score.1"); got != "" {
		t.Errorf("short row padding: got %q, want empty", got)
	}
	if table.Rows[1].Position != 1 {
		t.Errorf("position after skipped blank row: got %d, want 1", table.Rows[1].Position)
	}
}

func TestParseHeaderColumns(t *testing.T) {
	tests := []struct {
		name string
		data string
		want []string
	}{
		{"suffix already a header", "Name,A,A.1,A\nAlice,x,y,z\n", []string{"Name", "A", "A.1", "A.1.1"}},
		{"repeated suffix collision", "Name,A,A,A.1\nAlice,x,y,z\n", []string{"Name", "A", "A.1", "A.1.1"}},
		{"row wider than header", "Name,Score\nAlice,90,needs help with fractions\n", []string{"Name", "Score", "Unnamed: 2"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table, err := roster.Parse([]byte(tt.data), roster.FormatCSV, roster.ParseOptions{NameColumn: "Name"})
			if err != nil {
				t.Fatalf("Parse: %v", err)
			}
			if !slices.Equal(table.Columns, tt.want) {
				t.Errorf("columns: got %v, want %v", table.Columns, tt.want)
			}
			if len(table.Rows[0].Values) != len(tt.want) {
				t.Errorf("row keys: got %d, want %d", len(table.Rows[0].Values), len(tt.want))
			}
		})
	}
}

func TestParseKeepsCellsBeyondHeader(t *testing.T) {
	data := "Name,Score\nAlice,90,needs help with fractions\nBob,72\n"

	table, err := roster.Parse([]byte(data), roster.FormatCSV, roster.ParseOptions{NameColumn: "Name"})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	text, err := roster.Format(roster.Select(table, "Alice"))
	if err != nil {
		t.Fatalf("Format: %v", err)
	}
	if !strings.Contains(text, "needs help with fractions") {
		t.Errorf("context missing trailing cell:\n%s", text)
	}
	if got := table.Rows[1].Value("Unnamed: 2"); got != "" {
		t.Errorf("short row padding: got %q, want empty", got)
	}
}

func TestParseDuplicateHeadersKeepEveryCell(t *testing.T) {
	data := "Name,A,A.1,A\nAlice,x,y,z\n"

	table, err := roster.Parse([]byte(data), roster.FormatCSV, roster.ParseOptions{NameColumn: "Name"})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	row := table.Rows[0]
	for col, want := range map[string]string{"A": "x", "A.1": "y", "A.1.1": "z"} {
		if got := row.Value(col); got != want {
			t.Errorf("%s: got %q, want %q", col, got, want)
		}
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
		opts roster.ParseOptions
	}{
		{"missing name column", "Student,Score\nAlice,90\n", roster.ParseOptions{NameColumn: "Name"}},
		{"no header", "\n\n", roster.ParseOptions{NameColumn: "Name"}},
		{"malformed csv", "Name,Score\n\"Alice,90\n", roster.ParseOptions{NameColumn: "Name"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := roster.Parse([]byte(tt.data), roster.FormatCSV, tt.opts)
			if !errors.Is(err, roster.ErrDataSource) {
				t.Errorf("error: got %v, want ErrDataSource", err)
			}
		})
	}
}

func workbook(t *testing.T, sheets map[string][][]any) []byte {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	for sheet, rows := range sheets {
		if sheet != "Sheet1" {
			if _, err := f.NewSheet(sheet); err != nil {
				t.Fatalf("new sheet: %v", err)
			}
		}
		for i, row := range rows {
			cell, err := excelize.CoordinatesToCellName(1, i+1)
			if err != nil {
				t.Fatalf("cell name: %v", err)
			}
			if err := f.SetSheetRow(sheet, cell, &row); err != nil {
				t.Fatalf("set row: %v", err)
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		t.Fatalf("write workbook: %v", err)
	}
	return buf.Bytes()
}

func TestParseXLSX(t *testing.T) {
	data := workbook(t, map[string][][]any{
		"Sheet1": {
			{"Name", "Subject", "Score"},
			{"Alice", "Math", 90},
			{"Bob", "Math", 72},
		},
		"Term2": {
			{"Student", "Score"},
			{"Carol", 88},
		},
	})

	table, err := roster.Parse(data, roster.FormatXLSX, roster.ParseOptions{NameColumn: "Name"})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if table.Len() != 2 {
		t.Fatalf("rows: got %d, want 2", table.Len())
	}
	if got := table.Rows[0].Value("Score"); got != "90" {
		t.Errorf("score: got %q, want 90", got)
	}

	term2, err := roster.Parse(data, roster.FormatXLSX, roster.ParseOptions{Sheet: "Term2", NameColumn: "Student"})
	if err != nil {
		t.Fatalf("Parse Term2: %v", err)
	}
	if got := term2.Names(); !slices.Equal(got, []string{"Carol"}) {
		t.Errorf("names: got %v, want [Carol]", got)
	}
}

func TestParseXLSXInvalid(t *testing.T) {
	_, err := roster.Parse([]byte("not a zip"), roster.FormatXLSX, roster.ParseOptions{NameColumn: "Name"})
	if !errors.Is(err, roster.ErrDataSource) {
		t.Errorf("error: got %v, want ErrDataSource", err)
	}
}

func TestDetectFormat(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"students.csv", roster.FormatCSV},
		{"students.CSV", roster.FormatCSV},
		{"students.xlsx", roster.FormatXLSX},
		{"rosters/2024/students", roster.FormatXLSX},
	}

	for _, tt := range tests {
		if got := roster.DetectFormat(tt.name); got != tt.want {
			t.Errorf("DetectFormat(%q) = %s, want %s", tt.name, got, tt.want)
		}
	}
}
