package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const (
	sheetsPaneWidth = 28
	logPaneLines    = 5
)

func (a *App) resultsHeight() int {
	// Window height minus title, search pane, log pane, status bar
	// and pane borders.
	h := a.height - logPaneLines - 12
	if h < 4 {
		h = 10
	}
	return h
}

func (a *App) View() string {
	if a.width == 0 {
		return "loading..."
	}

	title := styleTitle.Render(fmt.Sprintf("controlf — %s", a.path))

	var right string
	switch a.overlay {
	case overlayColumns:
		right = a.viewColumns()
	case overlayExport:
		right = a.viewExport()
	default:
		right = lipgloss.JoinVertical(lipgloss.Left, a.viewSearch(), a.viewResults())
	}

	body := lipgloss.JoinHorizontal(lipgloss.Top, a.viewSheets(), right)
	return lipgloss.JoinVertical(lipgloss.Left, title, body, a.viewLog(), a.viewStatus())
}

func (a *App) viewSheets() string {
	var b strings.Builder
	b.WriteString(styleHeaderRow.Render("Sheets"))
	b.WriteString("\n")
	entries := append([]string{"[all sheets]"}, a.sheets...)
	for i, name := range entries {
		line := "  " + name
		if i == a.sheetCursor {
			line = styleSelected.Render("> " + name)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	style := stylePane
	if a.focus == paneSheets {
		style = stylePaneFocused
	}
	return style.Width(sheetsPaneWidth).Render(b.String())
}

func (a *App) viewSearch() string {
	scope := "[all sheets]"
	if a.sheetCursor > 0 && a.sheetCursor <= len(a.sheets) {
		scope = a.sheets[a.sheetCursor-1]
	}
	state := ""
	if a.searching {
		state = styleMuted.Render("  searching... (esc cancels)")
	}
	line := fmt.Sprintf("%s  mode:%s  scope:%s%s", a.termInput.View(), a.mode, scope, state)
	style := stylePane
	if a.focus == paneSearch {
		style = stylePaneFocused
	}
	return style.Width(a.rightWidth()).Render(line)
}

func (a *App) viewResults() string {
	style := stylePane
	if a.focus == paneResults {
		style = stylePaneFocused
	}
	if a.results == nil {
		return style.Width(a.rightWidth()).Render(styleMuted.Render("no search yet — press / and type a term"))
	}

	var b strings.Builder
	b.WriteString(styleHeaderRow.Render(fmt.Sprintf("%-16s %6s  %-16s %s", "Sheet", "Row", "Column", "Value")))
	b.WriteString("\n")
	h := a.resultsHeight()
	end := a.resOffset + h
	if end > len(a.results.Matches) {
		end = len(a.results.Matches)
	}
	for i := a.resOffset; i < end; i++ {
		m := a.results.Matches[i]
		line := fmt.Sprintf("%-16s %6d  %-16s %s", clip(m.Sheet, 16), m.Row, clip(m.Column, 16), clip(m.Value, 40))
		if i == a.resCursor && a.focus == paneResults {
			line = styleSelected.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	b.WriteString(styleMuted.Render(fmt.Sprintf("%d matches", len(a.results.Matches))))
	return style.Width(a.rightWidth()).Render(b.String())
}

func (a *App) viewColumns() string {
	var b strings.Builder
	b.WriteString(styleHeaderRow.Render("Columns for export"))
	b.WriteString("\n")
	if a.filtering {
		b.WriteString(a.filterInput.View())
	} else if a.selector.filter != "" {
		b.WriteString(styleMuted.Render("filter: " + a.selector.filter))
	}
	b.WriteString("\n")
	for i, c := range a.selector.visible() {
		mark := "[ ]"
		if a.selector.selected[c] {
			mark = "[x]"
		}
		line := fmt.Sprintf("  %s %s", mark, c)
		if i == a.selector.cursor && !a.filtering {
			line = styleSelected.Render(fmt.Sprintf("> %s %s", mark, c))
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	traceMark := "off"
	if a.selector.trace {
		traceMark = "on"
	}
	b.WriteString("\n")
	b.WriteString(styleMuted.Render(fmt.Sprintf("trace columns: %s   space toggle  a all  n none  f filter  t trace  enter done", traceMark)))
	return stylePaneFocused.Width(a.rightWidth()).Render(b.String())
}

func (a *App) viewExport() string {
	var b strings.Builder
	b.WriteString(styleHeaderRow.Render("Export"))
	b.WriteString("\n")
	b.WriteString(a.exportInput.View())
	b.WriteString("\n\n")
	cols := len(a.results.Columns)
	if a.selector != nil {
		cols = len(a.selector.chosen())
	}
	b.WriteString(styleMuted.Render(fmt.Sprintf("%d rows, %d columns — format from extension (.csv, .json, .xlsx)", len(a.results.Matches), cols)))
	return stylePaneFocused.Width(a.rightWidth()).Render(b.String())
}

func (a *App) viewLog() string {
	start := 0
	if len(a.logLines) > logPaneLines {
		start = len(a.logLines) - logPaneLines
	}
	body := strings.Join(a.logLines[start:], "\n")
	if body == "" {
		body = styleMuted.Render("log")
	}
	return stylePane.Width(a.totalWidth()).Render(body)
}

func (a *App) viewStatus() string {
	hints := "/ search  A all sheets  m mode  c columns  e export  tab pane  q quit"
	return styleMuted.Render(fmt.Sprintf(" %s   •   %s", a.status, hints))
}

func (a *App) rightWidth() int {
	w := a.width - sheetsPaneWidth - 6
	if w < 40 {
		w = 40
	}
	return w
}

func (a *App) totalWidth() int {
	w := a.width - 4
	if w < 40 {
		w = 40
	}
	return w
}

func clip(s string, n int) string {
	if len(s) <= n {
		return s
	}
	if n <= 3 {
		return s[:n]
	}
	return s[:n-3] + "..."
}
