package output

import (
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/controlf/controlf-go/pkg/controlf/models"
)

const exportSheet = "Results"

// writeWorkbook emits a single-sheet xlsx workbook. Cell types are
// preserved: numbers as numeric cells, booleans as boolean cells,
// missing cells left blank.
func writeWorkbook(w io.Writer, p *models.Projection) error {
	book := excelize.NewFile()
	defer book.Close()

	if err := book.SetSheetName("Sheet1", exportSheet); err != nil {
		return err
	}

	header := make([]interface{}, len(p.Columns))
	for i, c := range p.Columns {
		header[i] = c
	}
	if err := book.SetSheetRow(exportSheet, "A1", &header); err != nil {
		return err
	}

	for i, row := range p.Rows {
		values := make([]interface{}, len(row))
		for j, cell := range row {
			values[j] = cell.Value() // nil leaves the cell blank
		}
		cellRef, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := book.SetSheetRow(exportSheet, cellRef, &values); err != nil {
			return err
		}
	}

	_, err := book.WriteTo(w)
	return err
}
