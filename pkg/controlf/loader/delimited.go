package loader

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/controlf/controlf-go/pkg/controlf/models"
)

// newDelimitedCursor opens the file and positions the cursor past the
// header line. The file handle is owned by the cursor and released on
// Close, or immediately when opening fails.
func newDelimitedCursor(path, sheet string, delim rune) (*SheetCursor, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", models.ErrFileAccess, path, err)
	}

	r := csv.NewReader(skipBOM(f))
	r.Comma = delim
	r.FieldsPerRecord = -1
	r.LazyQuotes = true

	header, err := r.Read()
	if err != nil {
		f.Close()
		if err == io.EOF {
			return nil, models.NewSheetError(sheet, "header", fmt.Errorf("%w: empty file", models.ErrUnsupportedFormat))
		}
		return nil, models.NewSheetError(sheet, "header", err)
	}

	return &SheetCursor{
		sheet: sheet,
		cols:  dedupeColumns(trimHeader(header)),
		next: func() ([]string, int, error) {
			rec, err := r.Read()
			if err != nil {
				return nil, 0, err
			}
			// FieldPos tracks physical lines, so blank lines the
			// csv reader skips still count toward the row number.
			line, _ := r.FieldPos(0)
			return rec, line, nil
		},
		close: f.Close,
	}, nil
}

// skipBOM strips a leading UTF-8 byte order mark, common in files
// saved by Windows tools.
func skipBOM(r io.Reader) io.Reader {
	br := bufio.NewReader(r)
	if b, err := br.Peek(3); err == nil && b[0] == 0xEF && b[1] == 0xBB && b[2] == 0xBF {
		br.Discard(3)
	}
	return br
}

func trimHeader(header []string) []string {
	out := make([]string, len(header))
	for i, h := range header {
		out[i] = strings.TrimSpace(h)
	}
	return out
}
