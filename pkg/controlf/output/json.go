package output

import (
	"bufio"
	"encoding/json"
	"io"

	"github.com/controlf/controlf-go/pkg/controlf/models"
)

// writeJSON emits an array of objects, one per row, with keys in
// projection column order. encoding/json sorts map keys, so objects
// are assembled by hand to keep the user's column order. Values keep
// their native type; missing cells become null.
func writeJSON(w io.Writer, p *models.Projection) error {
	bw := bufio.NewWriter(w)
	bw.WriteString("[\n")
	for i, row := range p.Rows {
		bw.WriteString("  {")
		for j, col := range p.Columns {
			if j > 0 {
				bw.WriteString(",")
			}
			key, err := json.Marshal(col)
			if err != nil {
				return err
			}
			val, err := json.Marshal(row[j].Value())
			if err != nil {
				return err
			}
			bw.Write(key)
			bw.WriteString(":")
			bw.Write(val)
		}
		bw.WriteString("}")
		if i < len(p.Rows)-1 {
			bw.WriteString(",")
		}
		bw.WriteString("\n")
	}
	bw.WriteString("]\n")
	return bw.Flush()
}
