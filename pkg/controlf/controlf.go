// Package controlf is the shell-facing surface of the search-and-
// projection engine: load a spreadsheet-like source, search its
// sheets for a term, project the matches onto chosen columns, and
// export the result. It holds no presentation state and produces no
// output besides return values and errors.
package controlf

import (
	"context"

	"github.com/controlf/controlf-go/pkg/controlf/loader"
	"github.com/controlf/controlf-go/pkg/controlf/models"
	"github.com/controlf/controlf-go/pkg/controlf/output"
	"github.com/controlf/controlf-go/pkg/controlf/project"
	"github.com/controlf/controlf-go/pkg/controlf/search"
)

// Source is a loaded input file. Close it when done.
type Source = loader.Source

// Cell, Match, ResultSet and Projection are the engine's data model.
type (
	Cell       = models.Cell
	Match      = models.Match
	ResultSet  = models.ResultSet
	Projection = models.Projection
	Table      = models.Table
)

// Scope selects the sheets a search runs over.
type Scope = search.Scope

// Mode selects the match predicate.
type Mode = search.Mode

// Format is an export target format.
type Format = output.Format

const (
	ModeSubstring = search.ModeSubstring
	ModeExact     = search.ModeExact

	FormatJSON     = output.FormatJSON
	FormatCSV      = output.FormatCSV
	FormatWorkbook = output.FormatWorkbook
)

// AllSheets scans every sheet of the source in sheet order.
var AllSheets = search.AllSheets

// SheetScope scopes a search to one named sheet.
func SheetScope(name string) Scope { return search.SheetScope(name) }

// ParseMode converts a mode name ("substring", "exact") to a Mode.
func ParseMode(s string) (Mode, error) { return search.ParseMode(s) }

// ParseFormat converts a format name ("json", "csv", "xlsx") to a Format.
func ParseFormat(s string) (Format, error) { return output.ParseFormat(s) }

// Load opens the file at path, inferring its container kind and, for
// delimited text, its field delimiter.
func Load(path string, opts LoadOptions) (*Source, error) {
	return loader.Open(path, opts)
}

// Search scans the scoped sheets for term and returns the matching
// rows in (sheet order, row order). The context cancels the scan
// between rows.
func Search(ctx context.Context, src *Source, scope Scope, term string, mode Mode) (*ResultSet, error) {
	return search.Search(ctx, src, scope, term, mode)
}

// Project reduces the result set to the chosen columns, optionally
// prepending sheet-name and row-number trace columns.
func Project(rs *ResultSet, columns []string, trace bool) (*Projection, error) {
	return project.Project(rs, columns, trace)
}

// Export writes the projection to path in the given format. Writes
// are atomic: a failed export leaves no partial file.
func Export(p *Projection, format Format, path string) error {
	return output.Export(p, format, path)
}
