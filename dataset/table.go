package dataset

import (
	"strconv"
	"strings"
)

// ============================================================================
// TABLE — immutable in-memory dataset
// ============================================================================
// A Table keeps the original cell text of every column so that export
// reproduces the input, plus parsed numeric values for Int/Float columns so
// the engine never re-parses in aggregation loops. Tables are never mutated
// after construction; filtering produces new Tables.
// ============================================================================

// Table is an ordered sequence of records sharing one Schema.
type Table struct {
	schema Schema
	cols   []columnData
	nrows  int
	comma  rune
}

type columnData struct {
	raw    []string
	ints   []int64   // populated when Kind == Int
	floats []float64 // populated when Kind is numeric
}

func newTable(schema Schema, rows [][]string, comma rune) *Table {
	t := &Table{
		schema: schema,
		cols:   make([]columnData, len(schema)),
		nrows:  len(rows),
		comma:  comma,
	}
	for c := range schema {
		cd := columnData{raw: make([]string, len(rows))}
		for r, row := range rows {
			cd.raw[r] = row[c]
		}
		if schema[c].Kind.Numeric() {
			cd.floats = make([]float64, len(rows))
			if schema[c].Kind == Int {
				cd.ints = make([]int64, len(rows))
			}
			for r, cell := range cd.raw {
				cell = strings.TrimSpace(cell)
				if cell == "" {
					continue
				}
				f, _ := strconv.ParseFloat(cell, 64)
				cd.floats[r] = f
				if cd.ints != nil {
					n, _ := strconv.ParseInt(cell, 10, 64)
					cd.ints[r] = n
				}
			}
		}
		t.cols[c] = cd
	}
	return t
}

// Schema returns the table's column descriptors.
func (t *Table) Schema() Schema { return t.schema }

// NumRows returns the record count.
func (t *Table) NumRows() int { return t.nrows }

// NumCols returns the column count.
func (t *Table) NumCols() int { return len(t.schema) }

// ColumnIndex resolves a column name, or -1 when absent.
func (t *Table) ColumnIndex(name string) int { return t.schema.Index(name) }

// String returns the original cell text at (row, col).
func (t *Table) String(row, col int) string {
	if row < 0 || row >= t.nrows || col < 0 || col >= len(t.cols) {
		return ""
	}
	return t.cols[col].raw[row]
}

// Int returns the parsed integer at (row, col). Zero for non-Int columns.
func (t *Table) Int(row, col int) int64 {
	if row < 0 || row >= t.nrows || col < 0 || col >= len(t.cols) {
		return 0
	}
	if t.cols[col].ints == nil {
		return 0
	}
	return t.cols[col].ints[row]
}

// Float returns the parsed numeric value at (row, col).
// Zero for non-numeric columns.
func (t *Table) Float(row, col int) float64 {
	if row < 0 || row >= t.nrows || col < 0 || col >= len(t.cols) {
		return 0
	}
	if t.cols[col].floats == nil {
		return 0
	}
	return t.cols[col].floats[row]
}

// Row returns the original cells of one record in column order.
func (t *Table) Row(row int) []string {
	cells := make([]string, len(t.cols))
	for c := range t.cols {
		cells[c] = t.cols[c].raw[row]
	}
	return cells
}

// Select derives a new Table containing the given rows in the given order.
// The schema is shared; cell data is copied row-wise.
func (t *Table) Select(rows []int) *Table {
	sel := &Table{
		schema: t.schema,
		cols:   make([]columnData, len(t.cols)),
		nrows:  len(rows),
		comma:  t.comma,
	}
	for c := range t.cols {
		src := t.cols[c]
		cd := columnData{raw: make([]string, len(rows))}
		if src.floats != nil {
			cd.floats = make([]float64, len(rows))
		}
		if src.ints != nil {
			cd.ints = make([]int64, len(rows))
		}
		for i, r := range rows {
			cd.raw[i] = src.raw[r]
			if cd.floats != nil {
				cd.floats[i] = src.floats[r]
			}
			if cd.ints != nil {
				cd.ints[i] = src.ints[r]
			}
		}
		sel.cols[c] = cd
	}
	return sel
}
