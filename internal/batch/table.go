// Package batch reads and writes the tables used for batch conversion.
package batch

import (
	"errors"
	"strings"
)

// ErrUnparseableFile is returned when an upload is neither valid CSV nor a readable workbook.
var ErrUnparseableFile = errors.New("batch: unparseable file")

// Table is a header plus rows of string cells. Every row has len(Columns) cells.
type Table struct {
	Columns []string   `json:"columns"`
	Rows    [][]string `json:"rows"`
}

// NewTable builds a table, padding or truncating rows to the header width.
func NewTable(columns []string, rows [][]string) *Table {
	t := &Table{Columns: columns, Rows: make([][]string, 0, len(rows))}
	for _, r := range rows {
		t.Rows = append(t.Rows, fit(r, len(columns)))
	}
	return t
}

// Index returns the position of the first column whose normalised name matches
// one of names, or -1.
func (t *Table) Index(names ...string) int {
	for _, name := range names {
		for i, c := range t.Columns {
			if normalize(c) == name {
				return i
			}
		}
	}
	return -1
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func fit(row []string, width int) []string {
	out := make([]string, width)
	copy(out, row)
	return out
}

func blank(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
