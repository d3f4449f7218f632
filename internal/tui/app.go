// Package tui is the interactive shell over the controlf engine: it
// owns all presentation state and drives load, search, projection and
// export through the engine's API, logging every outcome to an
// append-only pane. No engine logic lives here.
package tui

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/controlf/controlf-go/pkg/controlf"
)

type pane int

const (
	paneSheets pane = iota
	paneSearch
	paneResults
)

type overlay int

const (
	overlayNone overlay = iota
	overlayColumns
	overlayExport
)

const maxLogLines = 100

// App is the bubbletea model for the shell.
type App struct {
	path string
	opts controlf.LoadOptions

	src    *controlf.Source
	sheets []string

	focus   pane
	overlay overlay

	// sheetCursor 0 is the "all sheets" entry; 1..n are the sheets.
	sheetCursor int

	termInput   textinput.Model
	mode        controlf.Mode
	searching   bool
	cancelScan  context.CancelFunc
	results     *controlf.ResultSet
	resCursor   int
	resOffset   int
	selector    *columnSelector
	filterInput textinput.Model
	filtering   bool
	exportInput textinput.Model

	logLines []string
	status   string
	width    int
	height   int
}

// Run opens the shell over the file at path and blocks until quit.
func Run(path string, opts controlf.LoadOptions) error {
	app := newApp(path, opts)
	p := tea.NewProgram(app, tea.WithAltScreen())
	final, err := p.Run()
	if a, ok := final.(*App); ok && a.src != nil {
		a.src.Close()
	}
	return err
}

func newApp(path string, opts controlf.LoadOptions) *App {
	term := textinput.New()
	term.Placeholder = "search term"
	term.CharLimit = 256

	filter := textinput.New()
	filter.Placeholder = "filter columns"

	export := textinput.New()
	export.Placeholder = "export path (.csv, .json, .xlsx)"

	return &App{
		path:        path,
		opts:        opts,
		termInput:   term,
		filterInput: filter,
		exportInput: export,
		status:      "loading...",
	}
}

func (a *App) Init() tea.Cmd {
	return a.loadCmd()
}

func (a *App) loadCmd() tea.Cmd {
	path, opts := a.path, a.opts
	return func() tea.Msg {
		src, err := controlf.Load(path, opts)
		return sourceLoadedMsg{Src: src, Err: err}
	}
}

func (a *App) searchCmd(scope controlf.Scope, term string) tea.Cmd {
	ctx, cancel := context.WithCancel(context.Background())
	a.cancelScan = cancel
	src, mode := a.src, a.mode
	return func() tea.Msg {
		rs, err := controlf.Search(ctx, src, scope, term, mode)
		cancel()
		return searchDoneMsg{Results: rs, Err: err}
	}
}

func (a *App) exportCmd(path string) tea.Cmd {
	rs := a.results
	cols := rs.Columns
	trace := false
	if a.selector != nil {
		cols = a.selector.chosen()
		trace = a.selector.trace
	}
	return func() tea.Msg {
		format := formatForPath(path)
		p, err := controlf.Project(rs, cols, trace)
		if err != nil {
			return exportDoneMsg{Path: path, Err: err}
		}
		if err := controlf.Export(p, format, path); err != nil {
			return exportDoneMsg{Path: path, Err: err}
		}
		return exportDoneMsg{Path: path, Rows: len(p.Rows)}
	}
}

// formatForPath derives the export format from the file extension,
// defaulting to CSV.
func formatForPath(path string) controlf.Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return controlf.FormatJSON
	case ".xlsx":
		return controlf.FormatWorkbook
	default:
		return controlf.FormatCSV
	}
}

func (a *App) log(format string, args ...interface{}) {
	line := fmt.Sprintf("%s  %s", time.Now().Format("15:04:05"), fmt.Sprintf(format, args...))
	a.logLines = append(a.logLines, line)
	if len(a.logLines) > maxLogLines {
		a.logLines = a.logLines[len(a.logLines)-maxLogLines:]
	}
	a.status = fmt.Sprintf(format, args...)
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = msg.Width, msg.Height
		return a, nil

	case sourceLoadedMsg:
		if msg.Err != nil {
			a.log("load failed: %v", msg.Err)
			return a, nil
		}
		a.src = msg.Src
		a.sheets = msg.Src.Sheets()
		a.sheetCursor = 1
		a.log("loaded %s (%s, %d sheets)", filepath.Base(a.path), a.src.Kind, len(a.sheets))
		return a, nil

	case searchDoneMsg:
		a.searching = false
		a.cancelScan = nil
		if msg.Err != nil {
			if errors.Is(msg.Err, context.Canceled) {
				a.log("search cancelled")
			} else {
				a.log("search failed: %v", msg.Err)
			}
			return a, nil
		}
		a.results = msg.Results
		a.resCursor, a.resOffset = 0, 0
		a.selector = newColumnSelector(msg.Results.Columns)
		a.log("%d matches for %q", len(msg.Results.Matches), msg.Results.Term)
		a.focus = paneResults
		return a, nil

	case exportDoneMsg:
		if msg.Err != nil {
			a.log("export failed: %v", msg.Err)
		} else {
			a.log("exported %d rows to %s", msg.Rows, msg.Path)
		}
		return a, nil

	case tea.KeyMsg:
		return a.handleKey(msg)
	}
	return a, nil
}

func (a *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if a.overlay == overlayColumns {
		return a.handleColumnsKey(msg)
	}
	if a.overlay == overlayExport {
		return a.handleExportKey(msg)
	}

	if a.termInput.Focused() {
		switch {
		case key.Matches(msg, keys.Enter):
			return a.startSearch(a.currentScope())
		case key.Matches(msg, keys.Back):
			a.termInput.Blur()
			return a, nil
		case key.Matches(msg, keys.Tab):
			a.termInput.Blur()
			a.focus = paneResults
			return a, nil
		}
		var cmd tea.Cmd
		a.termInput, cmd = a.termInput.Update(msg)
		return a, cmd
	}

	switch {
	case key.Matches(msg, keys.Quit):
		return a, tea.Quit

	case key.Matches(msg, keys.Back):
		if a.searching && a.cancelScan != nil {
			a.cancelScan()
			return a, nil
		}
		return a, nil

	case key.Matches(msg, keys.Tab):
		a.focus = (a.focus + 1) % 3
		if a.focus == paneSearch {
			a.termInput.Focus()
		}
		return a, nil

	case key.Matches(msg, keys.Search):
		a.focus = paneSearch
		a.termInput.Focus()
		return a, nil

	case key.Matches(msg, keys.AllSheets):
		return a.startSearch(controlf.AllSheets)

	case key.Matches(msg, keys.Mode):
		if a.mode == controlf.ModeSubstring {
			a.mode = controlf.ModeExact
		} else {
			a.mode = controlf.ModeSubstring
		}
		a.status = fmt.Sprintf("match mode: %s", a.mode)
		return a, nil

	case key.Matches(msg, keys.Columns):
		if a.results == nil {
			a.log("run a search first")
			return a, nil
		}
		a.overlay = overlayColumns
		return a, nil

	case key.Matches(msg, keys.Export):
		if a.results == nil || len(a.results.Matches) == 0 {
			a.log("nothing to export")
			return a, nil
		}
		a.overlay = overlayExport
		a.exportInput.Focus()
		return a, nil

	case key.Matches(msg, keys.Up):
		a.moveCursor(-1)
		return a, nil

	case key.Matches(msg, keys.Down):
		a.moveCursor(1)
		return a, nil

	case key.Matches(msg, keys.Enter):
		if a.focus == paneSheets {
			a.focus = paneSearch
			a.termInput.Focus()
		}
		return a, nil
	}
	return a, nil
}

func (a *App) currentScope() controlf.Scope {
	if a.sheetCursor == 0 {
		return controlf.AllSheets
	}
	return controlf.SheetScope(a.sheets[a.sheetCursor-1])
}

func (a *App) startSearch(scope controlf.Scope) (tea.Model, tea.Cmd) {
	if a.src == nil {
		a.log("no source loaded")
		return a, nil
	}
	term := strings.TrimSpace(a.termInput.Value())
	if term == "" {
		a.log("type a search term first")
		return a, nil
	}
	a.searching = true
	a.termInput.Blur()
	if scope.All {
		a.log("searching all sheets for %q (%s)", term, a.mode)
	} else {
		a.log("searching %q in %s (%s)", term, scope.Sheet, a.mode)
	}
	return a, a.searchCmd(scope, term)
}

func (a *App) moveCursor(delta int) {
	switch a.focus {
	case paneSheets:
		a.sheetCursor += delta
		if a.sheetCursor < 0 {
			a.sheetCursor = 0
		}
		if a.sheetCursor > len(a.sheets) {
			a.sheetCursor = len(a.sheets)
		}
	case paneResults:
		if a.results == nil {
			return
		}
		a.resCursor += delta
		if a.resCursor < 0 {
			a.resCursor = 0
		}
		if n := len(a.results.Matches); a.resCursor >= n {
			a.resCursor = n - 1
		}
		if a.resCursor < 0 {
			a.resCursor = 0
		}
		h := a.resultsHeight()
		if a.resCursor < a.resOffset {
			a.resOffset = a.resCursor
		}
		if a.resCursor >= a.resOffset+h {
			a.resOffset = a.resCursor - h + 1
		}
	}
}

func (a *App) handleColumnsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if a.filtering {
		switch {
		case key.Matches(msg, keys.Enter), key.Matches(msg, keys.Back):
			a.filtering = false
			a.filterInput.Blur()
			return a, nil
		}
		var cmd tea.Cmd
		a.filterInput, cmd = a.filterInput.Update(msg)
		a.selector.filter = a.filterInput.Value()
		a.selector.clampCursor()
		return a, cmd
	}

	switch {
	case key.Matches(msg, keys.Back), key.Matches(msg, keys.Enter):
		a.overlay = overlayNone
		a.log("%d of %d columns selected", len(a.selector.chosen()), len(a.selector.columns))
		return a, nil
	case key.Matches(msg, keys.Up):
		a.selector.moveCursor(-1)
	case key.Matches(msg, keys.Down):
		a.selector.moveCursor(1)
	case key.Matches(msg, keys.Toggle):
		a.selector.toggleCurrent()
	case key.Matches(msg, keys.All):
		a.selector.setAll(true)
	case key.Matches(msg, keys.None):
		a.selector.setAll(false)
	case key.Matches(msg, keys.Trace):
		a.selector.trace = !a.selector.trace
	case key.Matches(msg, keys.Filter):
		a.filtering = true
		a.filterInput.Focus()
	}
	return a, nil
}

func (a *App) handleExportKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Back):
		a.overlay = overlayNone
		a.exportInput.Blur()
		return a, nil
	case key.Matches(msg, keys.Enter):
		path := strings.TrimSpace(a.exportInput.Value())
		if path == "" {
			a.log("type a destination path")
			return a, nil
		}
		if a.selector != nil && len(a.selector.chosen()) == 0 {
			a.log("no columns selected")
			return a, nil
		}
		a.overlay = overlayNone
		a.exportInput.Blur()
		return a, a.exportCmd(path)
	}
	var cmd tea.Cmd
	a.exportInput, cmd = a.exportInput.Update(msg)
	return a, cmd
}
