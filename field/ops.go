// SPDX-License-Identifier: MIT
// Package: terra/field
//
// ops.go — pure element-wise kernels and summary statistics.
//
// Determinism & Performance:
//   • Every kernel allocates exactly one output Field and walks the flat
//     buffer once (0..n-1); the receiver is read-only.
//   • Vector arithmetic and reductions go through gonum/floats.

package field

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Map returns a new Field with out[r,c] = fn(r, c, f[r,c]).
// Complexity: O(r*c).
func (f *Field) Map(fn func(row, col int, v float64) float64) *Field {
	out := &Field{r: f.r, c: f.c, data: make([]float64, len(f.data))}
	for i := 0; i < f.r; i++ {
		base := i * f.c // cache the row offset
		for j := 0; j < f.c; j++ {
			out.data[base+j] = fn(i, j, f.data[base+j])
		}
	}

	return out
}

// AddScalar returns a new Field with v added to every element.
func (f *Field) AddScalar(v float64) *Field {
	out := f.Clone()
	floats.AddConst(v, out.data)

	return out
}

// Scale returns a new Field with every element multiplied by k.
func (f *Field) Scale(k float64) *Field {
	out := f.Clone()
	floats.Scale(k, out.data)

	return out
}

// Clamp returns a new Field with every element limited to [lo, hi].
// If lo > hi the bounds are swapped.
func (f *Field) Clamp(lo, hi float64) *Field {
	if lo > hi {
		lo, hi = hi, lo
	}
	out := f.Clone()
	for i, v := range out.data {
		out.data[i] = math.Min(math.Max(v, lo), hi)
	}

	return out
}

// MinMax returns the smallest and largest element.
func (f *Field) MinMax() (lo, hi float64) {
	return floats.Min(f.data), floats.Max(f.data)
}

// Sum returns the sum of all elements.
func (f *Field) Sum() float64 {
	return floats.Sum(f.data)
}

// Mean returns the arithmetic mean of all elements.
func (f *Field) Mean() float64 {
	return floats.Sum(f.data) / float64(len(f.data))
}

// Rescale maps noise values from [-1, 1] onto [lo, hi]:
//
//	out = lo + (v+1)/2 * (hi-lo)
//
// Values outside [-1, 1] extrapolate linearly; no clamping is applied.
func (f *Field) Rescale(lo, hi float64) *Field {
	span := hi - lo
	out := f.Clone()
	for i, v := range out.data {
		out.data[i] = lo + (v+1)/2*span
	}

	return out
}

// Normalize returns a new Field linearly mapped onto [0, 1] using the
// field's own min and max.
// Returns ErrFlat when every element is equal (division by zero).
func (f *Field) Normalize() (*Field, error) {
	lo, hi := f.MinMax()
	if hi == lo {
		return nil, fieldErrorf("Normalize", ErrFlat)
	}
	span := hi - lo
	out := f.Clone()
	for i, v := range out.data {
		out.data[i] = (v - lo) / span
	}

	return out, nil
}

// Add returns f+g element-wise. Returns ErrDimensionMismatch on shape mismatch.
func (f *Field) Add(g *Field) (*Field, error) {
	if !f.SameShape(g) {
		return nil, fieldErrorf("Add", ErrDimensionMismatch)
	}
	out := f.Clone()
	floats.Add(out.data, g.data)

	return out, nil
}
