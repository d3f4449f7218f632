package output

import (
	"encoding/csv"
	"io"

	"github.com/controlf/controlf-go/pkg/controlf/models"
)

// writeCSV emits a header row followed by one line per match. The
// output delimiter is always a comma, independent of the delimiter
// the source was read with. Missing cells become empty fields.
func writeCSV(w io.Writer, p *models.Projection) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(p.Columns); err != nil {
		return err
	}
	record := make([]string, len(p.Columns))
	for _, row := range p.Rows {
		for i, cell := range row {
			record[i] = cell.String()
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
