package loader

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/controlf/controlf-go/pkg/controlf/models"
)

// newWorkbookCursor opens a streaming row iterator over one worksheet
// so large workbooks never have to be materialized whole.
func newWorkbookCursor(book *excelize.File, sheet string) (*SheetCursor, error) {
	rows, err := book.Rows(sheet)
	if err != nil {
		return nil, models.NewSheetError(sheet, "open", err)
	}

	if !rows.Next() {
		err := rows.Close()
		if err == nil {
			err = fmt.Errorf("%w: empty sheet", models.ErrUnsupportedFormat)
		}
		return nil, models.NewSheetError(sheet, "header", err)
	}
	header, err := rows.Columns()
	if err != nil {
		rows.Close()
		return nil, models.NewSheetError(sheet, "header", err)
	}

	rowNum := 1 // header row
	return &SheetCursor{
		sheet: sheet,
		cols:  dedupeColumns(trimHeader(header)),
		next: func() ([]string, int, error) {
			for rows.Next() {
				rowNum++
				fields, err := rows.Columns()
				if err != nil {
					return nil, 0, models.NewSheetError(sheet, "row", err)
				}
				if isEmptyRow(fields) {
					continue
				}
				return fields, rowNum, nil
			}
			if err := rows.Error(); err != nil {
				return nil, 0, models.NewSheetError(sheet, "row", err)
			}
			return nil, 0, io.EOF
		},
		close: rows.Close,
	}, nil
}

func isEmptyRow(fields []string) bool {
	for _, f := range fields {
		if f != "" {
			return false
		}
	}
	return true
}
