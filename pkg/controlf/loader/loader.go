// Package loader opens workbook and delimited-text sources and
// exposes their sheets as uniform, lazily streamed tables.
package loader

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"github.com/controlf/controlf-go/pkg/controlf/models"
)

// Kind is the container format family of a source.
type Kind int

const (
	// KindWorkbook is an Excel workbook (xlsx family).
	KindWorkbook Kind = iota
	// KindDelimited is a delimited text file with a single implicit sheet.
	KindDelimited
)

func (k Kind) String() string {
	if k == KindWorkbook {
		return "workbook"
	}
	return "delimited"
}

// Options configures source loading.
type Options struct {
	// SampleLines is how many leading lines the delimiter sniff reads.
	SampleLines int
	// Delimiter forces the field delimiter for delimited text and
	// skips the sniff. Zero means infer.
	Delimiter rune
}

// DefaultOptions returns the default load options.
func DefaultOptions() Options {
	return Options{SampleLines: 10}
}

var workbookExtensions = map[string]bool{
	".xlsx": true,
	".xlsm": true,
	".xltx": true,
	".xltm": true,
}

var textExtensions = map[string]bool{
	".csv": true,
	".tsv": true,
	".txt": true,
}

// Source is one loaded input file. It is immutable after Open and
// must be closed to release the underlying workbook handle.
// Delimited sources hold no handle between reads.
type Source struct {
	// ID identifies this load for log correlation in the shell.
	ID uuid.UUID
	// Path is the file path the source was opened from.
	Path string
	// Kind is the inferred container format.
	Kind Kind
	// Delimiter is the inferred or forced field delimiter.
	// Meaningful only for delimited sources.
	Delimiter rune

	sheets []string
	book   *excelize.File
}

// Open loads the file at path, inferring its container kind and, for
// delimited text, its field delimiter.
func Open(path string, opts Options) (*Source, error) {
	if opts.SampleLines <= 0 {
		opts.SampleLines = DefaultOptions().SampleLines
	}

	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", models.ErrFileAccess, path, err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%w: %s is a directory", models.ErrFileAccess, path)
	}

	ext := strings.ToLower(filepath.Ext(path))
	if workbookExtensions[ext] {
		return openWorkbook(path)
	}
	return openDelimited(path, ext, opts)
}

func openWorkbook(path string) (*Source, error) {
	book, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", models.ErrUnsupportedFormat, path, err)
	}
	return &Source{
		ID:     uuid.New(),
		Path:   path,
		Kind:   KindWorkbook,
		sheets: book.GetSheetList(),
		book:   book,
	}, nil
}

func openDelimited(path, ext string, opts Options) (*Source, error) {
	delim := opts.Delimiter
	if delim == 0 {
		sample, err := readSample(path, opts.SampleLines)
		if err != nil {
			return nil, err
		}
		delim, err = sniffDelimiter(sample)
		if err != nil {
			if !textExtensions[ext] {
				// Unknown extension and no consistent delimiter:
				// this is not a format we can read at all.
				return nil, fmt.Errorf("%w: %s: %v", models.ErrUnsupportedFormat, path, err)
			}
			return nil, err
		}
	}

	base := filepath.Base(path)
	name := strings.TrimSuffix(base, filepath.Ext(base))
	return &Source{
		ID:        uuid.New(),
		Path:      path,
		Kind:      KindDelimited,
		Delimiter: delim,
		sheets:    []string{name},
	}, nil
}

// Sheets returns the sheet names in source order. A delimited source
// has one implicit sheet named after the file.
func (s *Source) Sheets() []string {
	out := make([]string, len(s.sheets))
	copy(out, s.sheets)
	return out
}

// HasSheet reports whether the source contains the named sheet.
func (s *Source) HasSheet(name string) bool {
	for _, sh := range s.sheets {
		if sh == name {
			return true
		}
	}
	return false
}

// Rows opens a streaming cursor over the named sheet. The first row
// of the sheet becomes the column names; data rows are read one at a
// time. The cursor must be closed.
func (s *Source) Rows(name string) (*SheetCursor, error) {
	if !s.HasSheet(name) {
		return nil, fmt.Errorf("%w: %q", models.ErrSheetNotFound, name)
	}
	if s.Kind == KindWorkbook {
		return newWorkbookCursor(s.book, name)
	}
	return newDelimitedCursor(s.Path, name, s.Delimiter)
}

// Sheet reads the named sheet in full and returns it as a table.
func (s *Source) Sheet(name string) (*models.Table, error) {
	cur, err := s.Rows(name)
	if err != nil {
		return nil, err
	}
	defer cur.Close()

	table := &models.Table{Columns: cur.Columns()}
	for {
		row, _, err := cur.Next()
		if err == io.EOF {
			return table, nil
		}
		if err != nil {
			return nil, err
		}
		table.Rows = append(table.Rows, row)
	}
}

// Close releases the workbook handle. It is a no-op for delimited
// sources and safe to call more than once.
func (s *Source) Close() error {
	if s.book == nil {
		return nil
	}
	book := s.book
	s.book = nil
	return book.Close()
}

// dedupeColumns makes header names unique by appending a numeric
// suffix to repeats: Name, Name2, Name3. Blank header cells get a
// positional name so lookups stay well-defined.
func dedupeColumns(header []string) []string {
	out := make([]string, len(header))
	seen := make(map[string]int, len(header))
	for i, name := range header {
		if name == "" {
			name = fmt.Sprintf("Column%d", i+1)
		}
		if n, ok := seen[name]; ok {
			base := name
			for {
				n++
				name = fmt.Sprintf("%s%d", base, n)
				if _, taken := seen[name]; !taken {
					break
				}
			}
			seen[base] = n
		}
		seen[name] = 1
		out[i] = name
	}
	return out
}
