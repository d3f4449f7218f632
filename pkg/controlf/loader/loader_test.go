package loader

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/xuri/excelize/v2"

	"github.com/controlf/controlf-go/pkg/controlf/models"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}
	return path
}

func TestOpenDelimitedInfersSemicolon(t *testing.T) {
	path := writeFile(t, "people.csv", "id;name;score\n1;Alice;90\n2;Bob;85\n")

	src, err := Open(path, DefaultOptions())
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer src.Close()

	if src.Kind != KindDelimited {
		t.Errorf("Kind = %v, expected delimited", src.Kind)
	}
	if src.Delimiter != ';' {
		t.Errorf("Delimiter = %q, expected ';'", src.Delimiter)
	}
	if diff := cmp.Diff([]string{"people"}, src.Sheets()); diff != "" {
		t.Errorf("Sheets mismatch (-want +got):\n%s", diff)
	}
}

func TestOpenDelimitedForcedDelimiter(t *testing.T) {
	path := writeFile(t, "data.txt", "a|b\n1|2\n")
	opts := DefaultOptions()
	opts.Delimiter = '|'

	src, err := Open(path, opts)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer src.Close()
	if src.Delimiter != '|' {
		t.Errorf("Delimiter = %q, expected '|'", src.Delimiter)
	}
}

func TestOpenMissingFile(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "absent.csv"), DefaultOptions())
	if !errors.Is(err, models.ErrFileAccess) {
		t.Fatalf("expected ErrFileAccess, got %v", err)
	}
}

func TestOpenUnknownExtensionUnparseable(t *testing.T) {
	path := writeFile(t, "blob.dat", "no delimiters here\njust words\n")
	_, err := Open(path, DefaultOptions())
	if !errors.Is(err, models.ErrUnsupportedFormat) {
		t.Fatalf("expected ErrUnsupportedFormat, got %v", err)
	}
}

func TestOpenCSVNoDelimiter(t *testing.T) {
	path := writeFile(t, "one.csv", "single\ncolumn\nfile\n")
	_, err := Open(path, DefaultOptions())
	if !errors.Is(err, models.ErrDelimiterInference) {
		t.Fatalf("expected ErrDelimiterInference, got %v", err)
	}
}

func TestDelimitedCursor(t *testing.T) {
	path := writeFile(t, "people.csv", "\ufeffid,name,score\n1,Alice,90\n2,Bob\n")
	src, err := Open(path, DefaultOptions())
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer src.Close()

	cur, err := src.Rows("people")
	if err != nil {
		t.Fatalf("Rows failed: %v", err)
	}
	defer cur.Close()

	if diff := cmp.Diff([]string{"id", "name", "score"}, cur.Columns()); diff != "" {
		t.Fatalf("Columns mismatch (-want +got):\n%s", diff)
	}

	row, num, err := cur.Next()
	if err != nil {
		t.Fatalf("Next failed: %v", err)
	}
	if num != 2 {
		t.Errorf("first data row number = %d, expected 2", num)
	}
	if row[0] != models.NumberCell(1) || row[1] != models.TextCell("Alice") || row[2] != models.NumberCell(90) {
		t.Errorf("unexpected first row: %+v", row)
	}

	row, num, err = cur.Next()
	if err != nil {
		t.Fatalf("Next failed: %v", err)
	}
	if num != 3 {
		t.Errorf("second data row number = %d, expected 3", num)
	}
	if !row[2].IsMissing() {
		t.Errorf("short row third cell = %+v, expected missing", row[2])
	}

	if _, _, err := cur.Next(); err != io.EOF {
		t.Fatalf("expected io.EOF at end, got %v", err)
	}
}

func TestSheetNotFound(t *testing.T) {
	path := writeFile(t, "people.csv", "a,b\n1,2\n")
	src, err := Open(path, DefaultOptions())
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer src.Close()

	_, err = src.Rows("Sheet1")
	if !errors.Is(err, models.ErrSheetNotFound) {
		t.Fatalf("expected ErrSheetNotFound, got %v", err)
	}
}

func TestOpenWorkbook(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()
	f.SetCellValue("Sheet1", "A1", "Name")
	f.SetCellValue("Sheet1", "B1", "Age")
	f.SetCellValue("Sheet1", "A2", "Alice")
	f.SetCellValue("Sheet1", "B2", 30)
	f.NewSheet("Cities")
	f.SetCellValue("Cities", "A1", "Name")
	f.SetCellValue("Cities", "B1", "City")
	f.SetCellValue("Cities", "A2", "Bob")
	f.SetCellValue("Cities", "B2", "Paris")

	path := filepath.Join(t.TempDir(), "test.xlsx")
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("failed to save fixture: %v", err)
	}

	src, err := Open(path, DefaultOptions())
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer src.Close()

	if src.Kind != KindWorkbook {
		t.Fatalf("Kind = %v, expected workbook", src.Kind)
	}
	if diff := cmp.Diff([]string{"Sheet1", "Cities"}, src.Sheets()); diff != "" {
		t.Fatalf("Sheets mismatch (-want +got):\n%s", diff)
	}

	table, err := src.Sheet("Sheet1")
	if err != nil {
		t.Fatalf("Sheet failed: %v", err)
	}
	if diff := cmp.Diff([]string{"Name", "Age"}, table.Columns); diff != "" {
		t.Errorf("Columns mismatch (-want +got):\n%s", diff)
	}
	if len(table.Rows) != 1 {
		t.Fatalf("expected 1 data row, got %d", len(table.Rows))
	}
	if table.Cell(0, 1) != models.NumberCell(30) {
		t.Errorf("Age cell = %+v, expected number 30", table.Cell(0, 1))
	}
}

func TestDedupeColumns(t *testing.T) {
	tests := []struct {
		name     string
		header   []string
		expected []string
	}{
		{"unique", []string{"a", "b"}, []string{"a", "b"}},
		{"repeat", []string{"Name", "Name", "Name"}, []string{"Name", "Name2", "Name3"}},
		{"collision with existing suffix", []string{"Name", "Name2", "Name"}, []string{"Name", "Name2", "Name3"}},
		{"blank header cell", []string{"a", "", "c"}, []string{"a", "Column2", "c"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.expected, dedupeColumns(tt.header)); diff != "" {
				t.Errorf("dedupeColumns mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestSourceCloseIdempotent(t *testing.T) {
	f := excelize.NewFile()
	f.SetCellValue("Sheet1", "A1", "x")
	path := filepath.Join(t.TempDir(), "close.xlsx")
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("failed to save fixture: %v", err)
	}
	f.Close()

	src, err := Open(path, DefaultOptions())
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	if err := src.Close(); err != nil {
		t.Fatalf("first Close failed: %v", err)
	}
	if err := src.Close(); err != nil {
		t.Fatalf("second Close failed: %v", err)
	}
}
