package tui

import "github.com/controlf/controlf-go/pkg/controlf"

// sourceLoadedMsg carries the result of the initial load.
type sourceLoadedMsg struct {
	Src *controlf.Source
	Err error
}

// searchDoneMsg carries the outcome of one search invocation.
type searchDoneMsg struct {
	Results *controlf.ResultSet
	Err     error
}

// exportDoneMsg carries the outcome of an export.
type exportDoneMsg struct {
	Path string
	Rows int
	Err  error
}
