// SPDX-License-Identifier: MIT
// Package pack: sentinel errors.

package pack

import "errors"

var (
	// ErrNilGrid indicates New was called without a grid.
	ErrNilGrid = errors.New("pack: nil grid")

	// ErrNotClassified indicates a grid cell without a terrain type.
	ErrNotClassified = errors.New("pack: cell has no terrain")

	// ErrOutOfRange indicates a pack index outside [0, Len()).
	ErrOutOfRange = errors.New("pack: index out of range")

	// ErrCellNotFound indicates a grid id absent from the pack.
	ErrCellNotFound = errors.New("pack: cell not found")

	// ErrFeatureNotFound indicates a feature id absent from the pack.
	ErrFeatureNotFound = errors.New("pack: feature not found")
)
