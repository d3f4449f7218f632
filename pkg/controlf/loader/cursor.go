package loader

import "github.com/controlf/controlf-go/pkg/controlf/models"

// SheetCursor streams one sheet row by row. The header has already
// been consumed when the cursor is returned; Next yields data rows
// only. Cursors are not safe for concurrent use.
type SheetCursor struct {
	sheet string
	cols  []string

	// next yields the raw fields and 1-based file row number of the
	// following data row, or io.EOF when the sheet is exhausted.
	next  func() ([]string, int, error)
	close func() error
}

// Sheet returns the sheet name the cursor reads.
func (c *SheetCursor) Sheet() string { return c.sheet }

// Columns returns the disambiguated header in source order.
func (c *SheetCursor) Columns() []string {
	out := make([]string, len(c.cols))
	copy(out, c.cols)
	return out
}

// Next returns the next data row and its 1-based file row number
// (the header is row 1). Rows wider than the header are truncated;
// shorter rows are padded with missing cells. Next returns io.EOF
// when the sheet is exhausted.
func (c *SheetCursor) Next() ([]models.Cell, int, error) {
	fields, rowNum, err := c.next()
	if err != nil {
		return nil, 0, err
	}
	row := make([]models.Cell, len(c.cols))
	for i := range row {
		if i < len(fields) {
			row[i] = models.ParseCell(fields[i])
		} else {
			row[i] = models.MissingCell()
		}
	}
	return row, rowNum, nil
}

// Close releases the resources held by the cursor.
func (c *SheetCursor) Close() error {
	if c.close == nil {
		return nil
	}
	return c.close()
}
