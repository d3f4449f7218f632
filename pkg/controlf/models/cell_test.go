package models

import "testing"

func TestParseCell(t *testing.T) {
	tests := []struct {
		input    string
		expected Cell
	}{
		{"123", NumberCell(123)},
		{"123.45", NumberCell(123.45)},
		{"-100", NumberCell(-100)},
		{"true", BoolCell(true)},
		{"FALSE", BoolCell(false)},
		{"hello", TextCell("hello")},
		{"", TextCell("")},
		{"t", TextCell("t")},
		{"1e3", NumberCell(1000)},
	}

	for _, tt := range tests {
		result := ParseCell(tt.input)
		if result != tt.expected {
			t.Errorf("ParseCell(%q) = %+v, expected %+v", tt.input, result, tt.expected)
		}
	}
}

func TestCellString(t *testing.T) {
	tests := []struct {
		cell     Cell
		expected string
	}{
		{NumberCell(85), "85"},
		{NumberCell(200.5), "200.5"},
		{BoolCell(true), "true"},
		{TextCell("Bob"), "Bob"},
		{MissingCell(), ""},
	}

	for _, tt := range tests {
		if got := tt.cell.String(); got != tt.expected {
			t.Errorf("String() of %+v = %q, expected %q", tt.cell, got, tt.expected)
		}
	}
}

func TestCellValue(t *testing.T) {
	if v := MissingCell().Value(); v != nil {
		t.Errorf("missing cell value = %v, expected nil", v)
	}
	if v := NumberCell(85).Value(); v != float64(85) {
		t.Errorf("number cell value = %v (%T), expected 85.0", v, v)
	}
	if v := BoolCell(true).Value(); v != true {
		t.Errorf("bool cell value = %v, expected true", v)
	}
	if v := TextCell("x").Value(); v != "x" {
		t.Errorf("text cell value = %v, expected x", v)
	}
}
