// SPDX-License-Identifier: MIT
// Package: terra/grid
//
// attributes.go — moving climate values between cells and fields.
//
// Contract:
//   • Field rows map to grid rows, field columns to grid columns.
//   • Assign overwrites the attribute on every cell; Extract requires every
//     cell to have it (else ErrNotComputed).

package grid

import (
	"fmt"

	"github.com/katalvlaran/terra/field"
)

// Assign copies f into attribute a of every cell.
// Returns ErrDimensionMismatch if f is not height×width.
func (g *Grid) Assign(a Attribute, f *field.Field) error {
	if f == nil || f.Rows() != g.height || f.Cols() != g.width {
		return fmt.Errorf("Assign(%s): %w", a, ErrDimensionMismatch)
	}
	for _, c := range g.cells {
		v, err := f.At(c.Row, c.Col)
		if err != nil {
			return fmt.Errorf("Assign(%s): %w", a, err)
		}
		c.SetAttr(a, v)
	}

	return nil
}

// Extract builds a height×width field from attribute a.
// Returns ErrNotComputed if any cell lacks the attribute.
func (g *Grid) Extract(a Attribute) (*field.Field, error) {
	f, err := field.New(g.height, g.width)
	if err != nil {
		return nil, fmt.Errorf("Extract(%s): %w", a, err)
	}
	for _, c := range g.cells {
		v, ok := c.Attr(a).Get()
		if !ok {
			return nil, fmt.Errorf("Extract(%s): cell %s: %w", a, c.Name, ErrNotComputed)
		}
		_ = f.Set(c.Row, c.Col, v) // in bounds by construction
	}

	return f, nil
}
