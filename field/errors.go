// SPDX-License-Identifier: MIT
// Package field: sentinel error set.
// Every message is prefixed with "field: ..." so it can be grepped in logs.
// Sentinels are returned as-is or wrapped with method context via %w;
// callers match with errors.Is.

package field

import (
	"errors"
	"fmt"
)

var (
	// ErrBadShape is returned when a requested shape is invalid (rows<=0 or cols<=0).
	ErrBadShape = errors.New("field: invalid shape")

	// ErrNonRectangular indicates input rows of differing lengths.
	ErrNonRectangular = errors.New("field: all rows must have the same length")

	// ErrOutOfRange indicates that a row or column index is outside valid bounds.
	ErrOutOfRange = errors.New("field: index out of range")

	// ErrDimensionMismatch indicates incompatible shapes between operands or chunks.
	ErrDimensionMismatch = errors.New("field: dimension mismatch")

	// ErrFlat signals a normalization over a field with zero value spread.
	ErrFlat = errors.New("field: value range has zero width")
)

// fieldErrorf wraps err with the Field method name for context.
func fieldErrorf(method string, err error) error {
	return fmt.Errorf("Field.%s: %w", method, err)
}
