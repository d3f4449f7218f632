// Package output serializes projections to JSON, CSV, and xlsx
// workbook files.
package output

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/controlf/controlf-go/pkg/controlf/models"
)

// Format is an export target format.
type Format string

const (
	// FormatJSON writes an ordered array of objects, one per row.
	FormatJSON Format = "json"
	// FormatCSV writes comma-delimited text with standard quoting.
	FormatCSV Format = "csv"
	// FormatWorkbook writes a single-sheet xlsx workbook with typed cells.
	FormatWorkbook Format = "xlsx"
)

// ParseFormat converts a format name to a Format. "excel" and
// "workbook" are accepted aliases for xlsx.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "json":
		return FormatJSON, nil
	case "csv":
		return FormatCSV, nil
	case "xlsx", "excel", "workbook":
		return FormatWorkbook, nil
	}
	return "", fmt.Errorf("%w: unknown export format %q", models.ErrValidation, s)
}

// Export writes the projection to path in the given format. The file
// is written to a temporary sibling first and renamed into place on
// success, so a failed export never leaves a partial artifact behind.
// Exporting an empty projection is rejected rather than producing an
// empty file.
func Export(p *models.Projection, format Format, path string) error {
	if p == nil || len(p.Rows) == 0 {
		return fmt.Errorf("%w: nothing to export", models.ErrValidation)
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), ".controlf-*")
	if err != nil {
		return fmt.Errorf("%w: %s: %v", models.ErrExportIO, path, err)
	}
	defer os.Remove(tmp.Name())

	switch format {
	case FormatJSON:
		err = writeJSON(tmp, p)
	case FormatCSV:
		err = writeCSV(tmp, p)
	case FormatWorkbook:
		err = writeWorkbook(tmp, p)
	default:
		tmp.Close()
		return fmt.Errorf("%w: unknown export format %q", models.ErrValidation, format)
	}
	if err != nil {
		tmp.Close()
		return fmt.Errorf("%w: %s: %v", models.ErrExportIO, path, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("%w: %s: %v", models.ErrExportIO, path, err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("%w: %s: %v", models.ErrExportIO, path, err)
	}
	return nil
}
