// Package dataset holds the labelled grids that become data table worksheets.
package dataset

import (
	"fmt"
	"math"
)

// Value is a single cell. nil marks a missing value; numbers are int64 or float64.
type Value = any

// Table is a 2-D grid with a named row index.
type Table struct {
	IndexName string
	Columns   []string
	Index     []Value
	Rows      [][]Value
}

func New(indexName string, columns ...string) *Table {
	return &Table{
		IndexName: indexName,
		Columns:   columns,
	}
}

// AddRow appends one row. The number of values must match the column count.
func (t *Table) AddRow(index Value, values ...Value) error {
	if len(values) != len(t.Columns) {
		return fmt.Errorf("row %v has %d values, table has %d columns", index, len(values), len(t.Columns))
	}
	row := make([]Value, len(values))
	copy(row, values)
	t.Index = append(t.Index, index)
	t.Rows = append(t.Rows, row)
	return nil
}

// Shape returns rows x columns.
func (t *Table) Shape() (int, int) {
	return len(t.Rows), len(t.Columns)
}

// Cell returns the value at a zero-based position, nil when out of range.
func (t *Table) Cell(row, col int) Value {
	if row < 0 || row >= len(t.Rows) || col < 0 || col >= len(t.Rows[row]) {
		return nil
	}
	return t.Rows[row][col]
}

// Rounded returns a copy with every float cell rounded to places decimals.
// Integer and text cells are copied unchanged.
func (t *Table) Rounded(places int) *Table {
	out := &Table{
		IndexName: t.IndexName,
		Columns:   append([]string(nil), t.Columns...),
		Index:     append([]Value(nil), t.Index...),
		Rows:      make([][]Value, len(t.Rows)),
	}
	for i, row := range t.Rows {
		out.Rows[i] = make([]Value, len(row))
		for j, v := range row {
			out.Rows[i][j] = RoundValue(v, places)
		}
	}
	return out
}

// RoundValue rounds half away from zero. Non-float values are returned as is.
func RoundValue(v Value, places int) Value {
	var f float64
	switch x := v.(type) {
	case float64:
		f = x
	case float32:
		f = float64(x)
	default:
		return v
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return v
	}
	scale := math.Pow(10, float64(places))
	if scale == 0 || math.IsInf(scale, 0) || math.IsInf(f*scale, 0) {
		return v
	}
	return math.Round(f*scale) / scale
}

// IsMissing reports whether a cell counts as missing data.
func IsMissing(v Value) bool {
	switch x := v.(type) {
	case nil:
		return true
	case float64:
		return math.IsNaN(x)
	case float32:
		return math.IsNaN(float64(x))
	}
	return false
}

// MissingColumns lists, in column order, the columns with at least one missing cell.
func (t *Table) MissingColumns() []string {
	var cols []string
	for j, name := range t.Columns {
		for i := range t.Rows {
			if IsMissing(t.Cell(i, j)) {
				cols = append(cols, name)
				break
			}
		}
	}
	return cols
}
