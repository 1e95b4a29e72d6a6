// Package model defines the tabular data types shared across the
// reconciliation pipeline.
package model

import (
	"strings"

	"golang.org/x/text/cases"
)

var foldCaser = cases.Fold()

// Fold returns a case-folded form of s for case-insensitive comparison.
func Fold(s string) string {
	return foldCaser.String(s)
}

// Table is an in-memory tabular dataset: a header row plus data rows,
// addressable by column name. Column presence, not position, selects
// behavior downstream.
type Table struct {
	Header []string
	Rows   [][]string
}

// NewTable builds a Table from a header and data rows. Short rows are
// padded and long rows truncated so every row has exactly one cell per
// header column; stray cells with no header would otherwise shift any
// column appended later.
func NewTable(header []string, rows [][]string) *Table {
	t := &Table{Header: header, Rows: rows}
	for i, row := range t.Rows {
		switch {
		case len(row) < len(header):
			padded := make([]string, len(header))
			copy(padded, row)
			t.Rows[i] = padded
		case len(row) > len(header):
			t.Rows[i] = row[:len(header)]
		}
	}
	return t
}

// ColumnIndex returns the index of the named column, matched
// case-insensitively with surrounding whitespace ignored, or -1.
func (t *Table) ColumnIndex(name string) int {
	want := Fold(strings.TrimSpace(name))
	for i, h := range t.Header {
		if Fold(strings.TrimSpace(h)) == want {
			return i
		}
	}
	return -1
}

// HasColumn reports whether the named column exists.
func (t *Table) HasColumn(name string) bool {
	return t.ColumnIndex(name) >= 0
}

// Cell returns the value at (row, col), or "" when either index is out
// of range. Missing cells read as empty rather than failing.
func (t *Table) Cell(row, col int) string {
	if row < 0 || row >= len(t.Rows) || col < 0 {
		return ""
	}
	r := t.Rows[row]
	if col >= len(r) {
		return ""
	}
	return r[col]
}

// SetCell overwrites the value at (row, col). Out-of-range writes are
// ignored; rows shorter than col are extended first.
func (t *Table) SetCell(row, col int, val string) {
	if row < 0 || row >= len(t.Rows) || col < 0 {
		return
	}
	r := t.Rows[row]
	for len(r) <= col {
		r = append(r, "")
	}
	r[col] = val
	t.Rows[row] = r
}

// AddColumn appends a column with the given header and per-row values
// and returns its index. Values beyond len(Rows) are dropped; missing
// values read as empty.
func (t *Table) AddColumn(name string, values []string) int {
	idx := len(t.Header)
	t.Header = append(t.Header, name)
	for i := range t.Rows {
		v := ""
		if i < len(values) {
			v = values[i]
		}
		for len(t.Rows[i]) <= idx {
			t.Rows[i] = append(t.Rows[i], "")
		}
		// write at the column's index, not past the row's current end
		t.Rows[i][idx] = v
	}
	return idx
}

// Column returns a copy of the values in the named column, or nil when
// the column is absent.
func (t *Table) Column(name string) []string {
	idx := t.ColumnIndex(name)
	if idx < 0 {
		return nil
	}
	vals := make([]string, len(t.Rows))
	for i := range t.Rows {
		vals[i] = t.Cell(i, idx)
	}
	return vals
}

// NumRows returns the number of data rows.
func (t *Table) NumRows() int {
	return len(t.Rows)
}
