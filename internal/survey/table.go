package survey

import (
	"fmt"
	"strings"
)

// Table is a rectangular survey grid. Headers identify columns; every row holds
// exactly len(Headers) cells.
type Table struct {
	Headers []string
	Rows    [][]string
}

// NewTable builds a Table from a raw grid whose first row is the header row.
// Duplicate headers are disambiguated with an occurrence suffix ("Q", "Q_1",
// "Q_2"), short rows are padded with empty cells and surplus cells are dropped.
// An empty grid yields a table with no headers and no rows.
func NewTable(grid [][]string) *Table {
	if len(grid) == 0 {
		return &Table{}
	}

	headers := UniqueHeaders(grid[0])
	rows := make([][]string, 0, len(grid)-1)
	for _, raw := range grid[1:] {
		row := make([]string, len(headers))
		copy(row, raw)
		rows = append(rows, row)
	}

	return &Table{Headers: headers, Rows: rows}
}

// UniqueHeaders keeps the first occurrence of a header unchanged and suffixes
// later occurrences with their occurrence index. A suffix that would collide
// with an existing header is skipped.
func UniqueHeaders(raw []string) []string {
	taken := make(map[string]bool, len(raw))
	for _, h := range raw {
		taken[h] = true
	}

	seen := make(map[string]int, len(raw))
	out := make([]string, len(raw))
	for i, h := range raw {
		n, dup := seen[h]
		if !dup {
			seen[h] = 0
			out[i] = h
			continue
		}

		var candidate string
		for {
			n++
			candidate = fmt.Sprintf("%s_%d", h, n)
			if !taken[candidate] {
				break
			}
		}
		seen[h] = n
		taken[candidate] = true
		out[i] = candidate
	}
	return out
}

// Len returns the number of data rows.
func (t *Table) Len() int {
	return len(t.Rows)
}

// ColumnIndex returns the index of the column with the given header, or -1.
func (t *Table) ColumnIndex(name string) int {
	for i, h := range t.Headers {
		if h == name {
			return i
		}
	}
	return -1
}

// Column returns the cells of column idx in row order.
func (t *Table) Column(idx int) []string {
	if idx < 0 || idx >= len(t.Headers) {
		return nil
	}
	out := make([]string, len(t.Rows))
	for i, row := range t.Rows {
		out[i] = row[idx]
	}
	return out
}

// Values returns the cells of the named column, or nil when it does not exist.
func (t *Table) Values(name string) []string {
	return t.Column(t.ColumnIndex(name))
}

// Filter returns the rows whose named column equals value once both are
// trimmed. The comparison is case-sensitive. The result shares headers with t.
// A missing column yields an empty table.
func (t *Table) Filter(column, value string) *Table {
	out := &Table{Headers: t.Headers}
	idx := t.ColumnIndex(column)
	if idx < 0 {
		return out
	}
	value = strings.TrimSpace(value)
	for _, row := range t.Rows {
		if strings.TrimSpace(row[idx]) == value {
			out.Rows = append(out.Rows, row)
		}
	}
	return out
}

// Distinct returns the trimmed non-blank values of the named column in
// first-seen order. Each value is accepted by Filter.
func (t *Table) Distinct(column string) []string {
	var out []string
	seen := make(map[string]bool)
	for _, v := range t.Values(column) {
		v = strings.TrimSpace(v)
		if v == "" || seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}
	return out
}

// WithHeaders returns a shallow copy of t using the given headers, which must
// have the same length as t.Headers.
func (t *Table) WithHeaders(headers []string) *Table {
	return &Table{Headers: headers, Rows: t.Rows}
}
