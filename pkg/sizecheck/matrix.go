package sizecheck

import (
	"fmt"
	"strings"

	"overcheck/pkg/check"
)

// Dimensions holds the observed shape of a matrix.
type Dimensions struct {
	Rows int
	Cols int // width of the widest row
}

// Matrix verifies that a matrix does not exceed maximum dimensions.
// Widths holds the length of each row; ragged rows are allowed and the
// column count is the widest row.
type Matrix struct {
	Widths  []int
	MaxRows int
	MaxCols int
}

// Shape returns the observed dimensions.
func (m *Matrix) Shape() Dimensions {
	d := Dimensions{Rows: len(m.Widths)}
	for _, w := range m.Widths {
		if w > d.Cols {
			d.Cols = w
		}
	}
	return d
}

// Run executes the dimension check. When both dimensions are exceeded the
// message reports both conditions.
func (m *Matrix) Run() check.Result {
	result := check.Result{
		Name: "matrix",
	}

	for _, w := range m.Widths {
		if w < 0 {
			return result.Failf("invalid row width: %d", w)
		}
	}

	d := m.Shape()
	result.AddDetailf("dimensions: %dx%d", d.Rows, d.Cols)
	result.AddDetailf("max allowed: %dx%d", m.MaxRows, m.MaxCols)

	var over []string
	if d.Rows > m.MaxRows {
		over = append(over, fmt.Sprintf("%d rows > maximum %d", d.Rows, m.MaxRows))
	}
	if d.Cols > m.MaxCols {
		over = append(over, fmt.Sprintf("%d columns > maximum %d", d.Cols, m.MaxCols))
	}
	if len(over) > 0 {
		return result.Overflowf("matrix overflow: %s", strings.Join(over, " and "))
	}

	result.Status = check.StatusOK
	return result
}
