// Package models defines the tabular data structures shared by the
// loader, search engine, projector and export writers.
package models

import (
	"strconv"
	"strings"
)

// CellKind discriminates the variants of a Cell.
type CellKind int

const (
	// KindMissing marks a cell that is absent from the source row.
	// Missing is distinct from an empty text cell.
	KindMissing CellKind = iota
	// KindText is a textual cell value.
	KindText
	// KindNumber is a numeric cell value.
	KindNumber
	// KindBoolean is a boolean cell value.
	KindBoolean
)

// Cell is a tagged variant holding one cell value.
// The zero value is a missing cell.
type Cell struct {
	// Kind selects which of the value fields is meaningful.
	Kind CellKind
	// Text holds the value when Kind is KindText.
	Text string
	// Number holds the value when Kind is KindNumber.
	Number float64
	// Bool holds the value when Kind is KindBoolean.
	Bool bool
}

// TextCell returns a text cell.
func TextCell(s string) Cell { return Cell{Kind: KindText, Text: s} }

// NumberCell returns a numeric cell.
func NumberCell(f float64) Cell { return Cell{Kind: KindNumber, Number: f} }

// BoolCell returns a boolean cell.
func BoolCell(b bool) Cell { return Cell{Kind: KindBoolean, Bool: b} }

// MissingCell returns a missing cell.
func MissingCell() Cell { return Cell{Kind: KindMissing} }

// ParseCell converts a raw source field into a typed Cell.
// Numbers are tried first (integer, then decimal), then the literal
// booleans "true"/"false" ignoring case. Everything else stays text,
// including the empty string.
func ParseCell(s string) Cell {
	if s == "" {
		return TextCell("")
	}
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return NumberCell(float64(i))
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return NumberCell(f)
	}
	switch strings.ToLower(s) {
	case "true":
		return BoolCell(true)
	case "false":
		return BoolCell(false)
	}
	return TextCell(s)
}

// IsMissing reports whether the cell is absent.
func (c Cell) IsMissing() bool { return c.Kind == KindMissing }

// String returns the canonical text form used for matching and for
// CSV output: numbers without trailing zeros, booleans as
// "true"/"false", missing as the empty string.
func (c Cell) String() string {
	switch c.Kind {
	case KindText:
		return c.Text
	case KindNumber:
		return strconv.FormatFloat(c.Number, 'f', -1, 64)
	case KindBoolean:
		return strconv.FormatBool(c.Bool)
	default:
		return ""
	}
}

// Value returns the native Go value for typed serialization:
// string, float64, bool, or nil for a missing cell.
func (c Cell) Value() interface{} {
	switch c.Kind {
	case KindText:
		return c.Text
	case KindNumber:
		return c.Number
	case KindBoolean:
		return c.Bool
	default:
		return nil
	}
}
