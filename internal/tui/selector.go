package tui

import "strings"

// columnSelector is the state behind the column-selection overlay:
// which columns of the result set's union are chosen for export,
// with an optional name filter narrowing the visible list.
type columnSelector struct {
	columns  []string
	selected map[string]bool
	cursor   int
	filter   string
	trace    bool
}

func newColumnSelector(columns []string) *columnSelector {
	sel := &columnSelector{
		columns:  columns,
		selected: make(map[string]bool, len(columns)),
	}
	// Everything selected by default: exporting full rows is the
	// common case, narrowing is the exception.
	for _, c := range columns {
		sel.selected[c] = true
	}
	return sel
}

// visible returns the columns passing the name filter, in union order.
func (s *columnSelector) visible() []string {
	if s.filter == "" {
		return s.columns
	}
	needle := strings.ToLower(s.filter)
	var out []string
	for _, c := range s.columns {
		if strings.Contains(strings.ToLower(c), needle) {
			out = append(out, c)
		}
	}
	return out
}

func (s *columnSelector) clampCursor() {
	if n := len(s.visible()); s.cursor >= n {
		s.cursor = n - 1
	}
	if s.cursor < 0 {
		s.cursor = 0
	}
}

func (s *columnSelector) moveCursor(delta int) {
	s.cursor += delta
	s.clampCursor()
}

// toggleCurrent flips the column under the cursor.
func (s *columnSelector) toggleCurrent() {
	vis := s.visible()
	if len(vis) == 0 {
		return
	}
	c := vis[s.cursor]
	s.selected[c] = !s.selected[c]
}

// setAll selects or deselects the currently visible columns. With no
// filter active that is every column.
func (s *columnSelector) setAll(state bool) {
	for _, c := range s.visible() {
		s.selected[c] = state
	}
}

// chosen returns the selected columns in union order.
func (s *columnSelector) chosen() []string {
	var out []string
	for _, c := range s.columns {
		if s.selected[c] {
			out = append(out, c)
		}
	}
	return out
}
