package tui

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/controlf/controlf-go/pkg/controlf"
)

func TestColumnSelectorDefaultsToAll(t *testing.T) {
	sel := newColumnSelector([]string{"Name", "Age", "City"})
	if diff := cmp.Diff([]string{"Name", "Age", "City"}, sel.chosen()); diff != "" {
		t.Errorf("chosen mismatch (-want +got):\n%s", diff)
	}
}

func TestColumnSelectorToggleKeepsUnionOrder(t *testing.T) {
	sel := newColumnSelector([]string{"Name", "Age", "City"})
	sel.setAll(false)
	// Select City before Name; chosen order must follow the union,
	// not the click order.
	sel.cursor = 2
	sel.toggleCurrent()
	sel.cursor = 0
	sel.toggleCurrent()

	if diff := cmp.Diff([]string{"Name", "City"}, sel.chosen()); diff != "" {
		t.Errorf("chosen mismatch (-want +got):\n%s", diff)
	}
}

func TestColumnSelectorFilter(t *testing.T) {
	sel := newColumnSelector([]string{"Name", "Age", "AgeGroup", "City"})
	sel.filter = "age"

	if diff := cmp.Diff([]string{"Age", "AgeGroup"}, sel.visible()); diff != "" {
		t.Errorf("visible mismatch (-want +got):\n%s", diff)
	}

	// setAll with a filter active only touches the visible columns.
	sel.setAll(false)
	if diff := cmp.Diff([]string{"Name", "City"}, sel.chosen()); diff != "" {
		t.Errorf("chosen mismatch (-want +got):\n%s", diff)
	}
}

func TestColumnSelectorCursorClamped(t *testing.T) {
	sel := newColumnSelector([]string{"a", "b"})
	sel.moveCursor(10)
	if sel.cursor != 1 {
		t.Errorf("cursor = %d, expected 1", sel.cursor)
	}
	sel.moveCursor(-10)
	if sel.cursor != 0 {
		t.Errorf("cursor = %d, expected 0", sel.cursor)
	}
}

func TestFormatForPath(t *testing.T) {
	tests := []struct {
		path     string
		expected controlf.Format
	}{
		{"out.json", controlf.FormatJSON},
		{"out.XLSX", controlf.FormatWorkbook},
		{"out.csv", controlf.FormatCSV},
		{"out", controlf.FormatCSV},
	}
	for _, tt := range tests {
		if got := formatForPath(tt.path); got != tt.expected {
			t.Errorf("formatForPath(%q) = %q, expected %q", tt.path, got, tt.expected)
		}
	}
}
