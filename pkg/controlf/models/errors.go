package models

import (
	"errors"
	"fmt"
)

// ErrFileAccess indicates the input file could not be opened or read.
var ErrFileAccess = errors.New("file access")

// ErrUnsupportedFormat indicates the input is neither a recognized
// workbook format nor parseable as delimited text.
var ErrUnsupportedFormat = errors.New("unsupported format")

// ErrDelimiterInference indicates no delimiter candidate produced a
// consistent multi-column layout on the sampled lines.
var ErrDelimiterInference = errors.New("delimiter inference failed")

// ErrSheetNotFound indicates the named sheet does not exist in the source.
var ErrSheetNotFound = errors.New("sheet not found")

// ErrValidation indicates a rejected argument: an empty search term,
// an empty or unknown column selection, or an empty export set.
var ErrValidation = errors.New("validation")

// ErrExportIO indicates the destination file could not be created or written.
var ErrExportIO = errors.New("export io")

// SheetError wraps a failure scoped to one sheet of a source.
type SheetError struct {
	Sheet string
	Op    string // "open", "header", "row"
	Err   error
}

func (e *SheetError) Error() string {
	return fmt.Sprintf("sheet %q: %s: %v", e.Sheet, e.Op, e.Err)
}

func (e *SheetError) Unwrap() error {
	return e.Err
}

// NewSheetError creates a new SheetError.
func NewSheetError(sheet, op string, err error) *SheetError {
	return &SheetError{Sheet: sheet, Op: op, Err: err}
}
