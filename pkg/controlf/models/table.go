package models

// Table is one fully materialized sheet: an ordered header and the
// data rows below it. Column order never changes after load.
type Table struct {
	// Columns is the header in source order, already disambiguated
	// so every name is unique within the table.
	Columns []string
	// Rows holds the data rows in source order. A row may be shorter
	// than the header; absent trailing cells are missing.
	Rows [][]Cell
}

// Cell returns the cell at the given data row and column index,
// or a missing cell when the row is shorter than the header.
func (t *Table) Cell(row, col int) Cell {
	if row < 0 || row >= len(t.Rows) {
		return MissingCell()
	}
	r := t.Rows[row]
	if col < 0 || col >= len(r) {
		return MissingCell()
	}
	return r[col]
}
