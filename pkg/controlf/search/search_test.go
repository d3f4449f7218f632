package search

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/controlf/controlf-go/pkg/controlf/loader"
	"github.com/controlf/controlf-go/pkg/controlf/models"
)

func csvSource(t *testing.T, name, content string) *loader.Source {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	src, err := loader.Open(path, loader.DefaultOptions())
	require.NoError(t, err)
	t.Cleanup(func() { src.Close() })
	return src
}

func TestSearchEmptyTermRejected(t *testing.T) {
	src := csvSource(t, "people.csv", "id;name\n1;Alice\n")

	for _, term := range []string{"", "   ", "\t"} {
		_, err := Search(context.Background(), src, SheetScope("people"), term, ModeSubstring)
		assert.ErrorIs(t, err, models.ErrValidation, "term %q must be rejected", term)
	}
}

func TestSearchSubstringCaseInsensitive(t *testing.T) {
	src := csvSource(t, "people.csv", "id;name;score\n1;Alice;90\n2;Bob;85\n")

	rs, err := Search(context.Background(), src, SheetScope("people"), "bob", ModeSubstring)
	require.NoError(t, err)

	require.Len(t, rs.Matches, 1)
	m := rs.Matches[0]
	assert.Equal(t, "people", m.Sheet)
	assert.Equal(t, 3, m.Row)
	assert.Equal(t, "name", m.Column)
	assert.Equal(t, "Bob", m.Value)
	assert.Equal(t, models.NumberCell(2), m.Cells["id"])
	assert.Equal(t, models.NumberCell(85), m.Cells["score"])
	assert.Equal(t, []string{"id", "name", "score"}, rs.Columns)
}

func TestSearchNumericTerm(t *testing.T) {
	src := csvSource(t, "people.csv", "id,name,score\n1,Alice,90\n2,Bob,85\n")

	rs, err := Search(context.Background(), src, SheetScope("people"), "85", ModeSubstring)
	require.NoError(t, err)
	require.Len(t, rs.Matches, 1)
	assert.Equal(t, "score", rs.Matches[0].Column)
}

func TestSearchExactMode(t *testing.T) {
	src := csvSource(t, "people.csv", "id,name\n1,Bob\n2,Bobby\n")

	rs, err := Search(context.Background(), src, SheetScope("people"), "Bob", ModeExact)
	require.NoError(t, err)
	require.Len(t, rs.Matches, 1)
	assert.Equal(t, 2, rs.Matches[0].Row)

	// Exact is case-sensitive.
	rs, err = Search(context.Background(), src, SheetScope("people"), "bob", ModeExact)
	require.NoError(t, err)
	assert.Empty(t, rs.Matches)
}

func TestSearchUnknownSheet(t *testing.T) {
	src := csvSource(t, "people.csv", "a,b\n1,2\n")

	_, err := Search(context.Background(), src, SheetScope("missing"), "x", ModeSubstring)
	assert.ErrorIs(t, err, models.ErrSheetNotFound)
}

func TestSearchAllSheetsUnion(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()
	f.SetSheetName("Sheet1", "A")
	f.SetCellValue("A", "A1", "Name")
	f.SetCellValue("A", "B1", "Age")
	f.SetCellValue("A", "A2", "carol")
	f.SetCellValue("A", "B2", 40)
	f.NewSheet("B")
	f.SetCellValue("B", "A1", "Name")
	f.SetCellValue("B", "B1", "City")
	f.SetCellValue("B", "A2", "Carol")
	f.SetCellValue("B", "B2", "Lisbon")

	path := filepath.Join(t.TempDir(), "union.xlsx")
	require.NoError(t, f.SaveAs(path))

	src, err := loader.Open(path, loader.DefaultOptions())
	require.NoError(t, err)
	defer src.Close()

	rs, err := Search(context.Background(), src, AllSheets, "carol", ModeSubstring)
	require.NoError(t, err)

	assert.Equal(t, []string{"Name", "Age", "City"}, rs.Columns)
	require.Len(t, rs.Matches, 2)

	// Sheet order first, then row order.
	assert.Equal(t, "A", rs.Matches[0].Sheet)
	assert.Equal(t, "B", rs.Matches[1].Sheet)

	// Columns absent from a match's sheet are absent from its cells.
	_, hasCity := rs.Matches[0].Cells["City"]
	assert.False(t, hasCity)
	_, hasAge := rs.Matches[1].Cells["Age"]
	assert.False(t, hasAge)
}

func TestSearchCancelled(t *testing.T) {
	src := csvSource(t, "people.csv", "id,name\n1,Alice\n2,Bob\n")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	rs, err := Search(ctx, src, SheetScope("people"), "bob", ModeSubstring)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, rs)
}

func TestParseMode(t *testing.T) {
	m, err := ParseMode("exact")
	require.NoError(t, err)
	assert.Equal(t, ModeExact, m)

	m, err = ParseMode("")
	require.NoError(t, err)
	assert.Equal(t, ModeSubstring, m)

	_, err = ParseMode("fuzzy")
	assert.ErrorIs(t, err, models.ErrValidation)
}
