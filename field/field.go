// SPDX-License-Identifier: MIT
// Package: terra/field
//
// field.go — Field type, constructors and indexed access.
//
// Contract:
//   • rows ≥ 1 and cols ≥ 1, fixed for the lifetime of a Field.
//   • Storage is row-major: element (r, c) lives at data[r*cols+c].
//   • Public indexers return ErrOutOfRange instead of panicking.
//   • Accessors that expose data (Values, ToRows) return copies.

package field

import (
	"fmt"
	"strings"
)

// Field is a dense row-major 2D array of float64 values.
type Field struct {
	r, c int       // number of rows and columns
	data []float64 // flat backing storage, len == r*c
}

// New creates a rows×cols Field initialized to zeros.
// Stage 1 (Validate): ensure rows and cols > 0.
// Stage 2 (Prepare): allocate flat backing slice.
// Complexity: O(rows*cols) time and memory.
func New(rows, cols int) (*Field, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("New(%d,%d): %w", rows, cols, ErrBadShape)
	}

	return &Field{r: rows, c: cols, data: make([]float64, rows*cols)}, nil
}

// Fill creates a rows×cols Field with every element set to v.
func Fill(rows, cols int, v float64) (*Field, error) {
	f, err := New(rows, cols)
	if err != nil {
		return nil, err
	}
	for i := range f.data {
		f.data[i] = v
	}

	return f, nil
}

// FromRows deep-copies a rectangular [][]float64 into a new Field.
// Returns ErrBadShape for empty input and ErrNonRectangular for ragged rows.
// Complexity: O(r*c).
func FromRows(rows [][]float64) (*Field, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("FromRows: %w", ErrBadShape)
	}
	h, w := len(rows), len(rows[0])
	for i, row := range rows {
		if len(row) != w {
			return nil, fmt.Errorf("FromRows: row %d has %d values, want %d: %w", i, len(row), w, ErrNonRectangular)
		}
	}
	f := &Field{r: h, c: w, data: make([]float64, h*w)}
	for i, row := range rows {
		copy(f.data[i*w:(i+1)*w], row) // one contiguous copy per row
	}

	return f, nil
}

// Rows returns the number of rows.
func (f *Field) Rows() int { return f.r }

// Cols returns the number of columns.
func (f *Field) Cols() int { return f.c }

// Shape returns (rows, cols).
func (f *Field) Shape() (int, int) { return f.r, f.c }

// Len returns rows*cols.
func (f *Field) Len() int { return len(f.data) }

// SameShape reports whether g has the same dimensions as f.
func (f *Field) SameShape(g *Field) bool {
	return g != nil && f.r == g.r && f.c == g.c
}

// indexOf computes the flat index for (row, col) or returns ErrOutOfRange.
func (f *Field) indexOf(method string, row, col int) (int, error) {
	if row < 0 || row >= f.r || col < 0 || col >= f.c {
		return 0, fmt.Errorf("Field.%s(%d,%d): %w", method, row, col, ErrOutOfRange)
	}

	return row*f.c + col, nil
}

// At retrieves the element at (row, col).
// Complexity: O(1).
func (f *Field) At(row, col int) (float64, error) {
	idx, err := f.indexOf("At", row, col)
	if err != nil {
		return 0, err
	}

	return f.data[idx], nil
}

// Set assigns v at (row, col). This is the only mutating method; kernels
// never call it on their receiver.
// Complexity: O(1).
func (f *Field) Set(row, col int, v float64) error {
	idx, err := f.indexOf("Set", row, col)
	if err != nil {
		return err
	}
	f.data[idx] = v

	return nil
}

// Clone returns a deep copy of the Field.
// Complexity: O(r*c) time and memory.
func (f *Field) Clone() *Field {
	data := make([]float64, len(f.data))
	copy(data, f.data)

	return &Field{r: f.r, c: f.c, data: data}
}

// Values returns a copy of the row-major backing slice.
func (f *Field) Values() []float64 {
	out := make([]float64, len(f.data))
	copy(out, f.data)

	return out
}

// ToRows returns the Field as a freshly allocated [][]float64.
func (f *Field) ToRows() [][]float64 {
	out := make([][]float64, f.r)
	for i := 0; i < f.r; i++ {
		out[i] = make([]float64, f.c)
		copy(out[i], f.data[i*f.c:(i+1)*f.c])
	}

	return out
}

// String implements fmt.Stringer for debugging.
// Complexity: O(r*c).
func (f *Field) String() string {
	var sb strings.Builder
	for i := 0; i < f.r; i++ {
		sb.WriteByte('[')
		for j := 0; j < f.c; j++ {
			if j > 0 {
				sb.WriteString(", ")
			}
			fmt.Fprintf(&sb, "%g", f.data[i*f.c+j])
		}
		sb.WriteString("]\n")
	}

	return sb.String()
}
