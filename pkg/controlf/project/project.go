// Package project reduces a result set to a user-chosen, ordered
// subset of columns for export.
package project

import (
	"fmt"

	"github.com/controlf/controlf-go/pkg/controlf/models"
)

// Project builds a projection of the result set onto the chosen
// columns, in the given order. Row order is preserved verbatim; rows
// are never deduplicated. Columns absent from a match's sheet render
// as missing cells. When trace is set, two synthetic leading columns
// carry the originating sheet name and the original row number.
func Project(rs *models.ResultSet, columns []string, trace bool) (*models.Projection, error) {
	if rs == nil {
		return nil, fmt.Errorf("%w: nil result set", models.ErrValidation)
	}
	if len(columns) == 0 {
		return nil, fmt.Errorf("%w: empty column selection", models.ErrValidation)
	}
	for _, c := range columns {
		if !rs.HasColumn(c) {
			return nil, fmt.Errorf("%w: unknown column %q", models.ErrValidation, c)
		}
	}

	header := make([]string, 0, len(columns)+2)
	if trace {
		header = append(header, models.TraceSheetColumn, models.TraceRowColumn)
	}
	header = append(header, columns...)

	p := &models.Projection{
		Columns: header,
		Rows:    make([][]models.Cell, 0, len(rs.Matches)),
	}
	for _, m := range rs.Matches {
		row := make([]models.Cell, 0, len(header))
		if trace {
			row = append(row, models.TextCell(m.Sheet), models.NumberCell(float64(m.Row)))
		}
		for _, c := range columns {
			cell, ok := m.Cells[c]
			if !ok {
				cell = models.MissingCell()
			}
			row = append(row, cell)
		}
		p.Rows = append(p.Rows, row)
	}
	return p, nil
}
