// Package search scans loaded sheets for a term and collects the
// matching rows into an ordered result set.
package search

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/controlf/controlf-go/pkg/controlf/loader"
	"github.com/controlf/controlf-go/pkg/controlf/models"
)

// Mode selects the match predicate.
type Mode int

const (
	// ModeSubstring matches when the cell text contains the term,
	// ignoring case.
	ModeSubstring Mode = iota
	// ModeExact matches when the cell text equals the term exactly.
	ModeExact
)

func (m Mode) String() string {
	if m == ModeExact {
		return "exact"
	}
	return "substring"
}

// ParseMode converts a mode name ("substring", "exact") to a Mode.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "substring":
		return ModeSubstring, nil
	case "exact":
		return ModeExact, nil
	}
	return 0, fmt.Errorf("%w: unknown match mode %q", models.ErrValidation, s)
}

// Scope is the set of sheets a search runs over.
type Scope struct {
	// Sheet names a single sheet. Ignored when All is set.
	Sheet string
	// All scans every sheet of the source in sheet order.
	All bool
}

// SheetScope scopes a search to one named sheet.
func SheetScope(name string) Scope { return Scope{Sheet: name} }

// AllSheets scans every sheet of the source.
var AllSheets = Scope{All: true}

// Search scans every row of the scoped sheets, in sheet order then
// row order, and returns the rows with at least one matching cell.
// Cells are compared through their canonical text form, so numeric
// and textual terms behave uniformly. The context is checked between
// rows; a cancelled search returns the context error and no partial
// result. The source is never mutated.
func Search(ctx context.Context, src *loader.Source, scope Scope, term string, mode Mode) (*models.ResultSet, error) {
	term = strings.TrimSpace(term)
	if term == "" {
		return nil, fmt.Errorf("%w: empty search term", models.ErrValidation)
	}

	var sheets []string
	if scope.All {
		sheets = src.Sheets()
	} else {
		sheets = []string{scope.Sheet}
	}

	rs := &models.ResultSet{Term: term}
	lowered := strings.ToLower(term)
	for _, sheet := range sheets {
		if err := scanSheet(ctx, src, sheet, term, lowered, mode, rs); err != nil {
			return nil, err
		}
	}
	return rs, nil
}

func scanSheet(ctx context.Context, src *loader.Source, sheet, term, lowered string, mode Mode, rs *models.ResultSet) error {
	cur, err := src.Rows(sheet)
	if err != nil {
		return err
	}
	defer cur.Close()

	cols := cur.Columns()
	extendUnion(rs, cols)

	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		row, rowNum, err := cur.Next()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		if col, val, ok := matchRow(cols, row, term, lowered, mode); ok {
			rs.Matches = append(rs.Matches, models.Match{
				Sheet:  sheet,
				Row:    rowNum,
				Column: col,
				Value:  val,
				Cells:  rowMap(cols, row),
			})
		}
	}
}

// matchRow scans the cells in column order and returns the first
// matching column and its canonical text.
func matchRow(cols []string, row []models.Cell, term, lowered string, mode Mode) (string, string, bool) {
	for i, cell := range row {
		text := cell.String()
		var hit bool
		switch mode {
		case ModeExact:
			hit = text == term
		default:
			hit = strings.Contains(strings.ToLower(text), lowered)
		}
		if hit {
			return cols[i], text, true
		}
	}
	return "", "", false
}

func rowMap(cols []string, row []models.Cell) map[string]models.Cell {
	m := make(map[string]models.Cell, len(cols))
	for i, c := range cols {
		m[c] = row[i]
	}
	return m
}

// extendUnion appends the columns not yet part of the result set's
// union, preserving first-seen order across sheets.
func extendUnion(rs *models.ResultSet, cols []string) {
	for _, c := range cols {
		if !rs.HasColumn(c) {
			rs.Columns = append(rs.Columns, c)
		}
	}
}
