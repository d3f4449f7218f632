package models

// Match is one row that satisfied the search predicate, tagged with
// enough identity to trace it back to its origin.
type Match struct {
	// Sheet is the name of the sheet the row came from.
	Sheet string
	// Row is the 1-based row number as counted in the source file,
	// header included (the first data row is row 2).
	Row int
	// Column is the name of the first column whose cell matched.
	Column string
	// Value is the canonical text of the matching cell.
	Value string
	// Cells maps column name to cell value for the full row.
	Cells map[string]Cell
}

// ResultSet is the ordered outcome of one search invocation.
type ResultSet struct {
	// Term is the search term the set was built from.
	Term string
	// Columns is the union of column names across all scanned sheets,
	// in first-seen order. It is extended during the scan and never
	// reordered afterwards.
	Columns []string
	// Matches holds the matching rows in (sheet order, row order).
	Matches []Match
}

// HasColumn reports whether name is part of the column union.
func (rs *ResultSet) HasColumn(name string) bool {
	for _, c := range rs.Columns {
		if c == name {
			return true
		}
	}
	return false
}

// Projection is a column-reduced, row-order-preserving view of a
// ResultSet prepared for export. It does not alias the ResultSet's
// internals and never mutates it.
type Projection struct {
	// Columns is the full output header, trace columns included.
	Columns []string
	// Rows holds one cell slice per match, aligned with Columns.
	Rows [][]Cell
}

// TraceSheetColumn and TraceRowColumn are the synthetic leading
// columns added when a projection is built with tracing enabled.
const (
	TraceSheetColumn = "sheet"
	TraceRowColumn   = "row"
)
