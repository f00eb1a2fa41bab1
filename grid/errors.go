// SPDX-License-Identifier: MIT
// Package grid: sentinel error set.
// Callers MUST branch with errors.Is; methods attach context with %w.

package grid

import "errors"

var (
	// ErrBadShape indicates a grid with a non-positive width or height.
	ErrBadShape = errors.New("grid: width and height must be at least 1")

	// ErrOutOfRange indicates a (row, col) coordinate outside the grid.
	ErrOutOfRange = errors.New("grid: coordinate out of range")

	// ErrCellNotFound indicates an identifier (or cell) that is not part of the grid.
	ErrCellNotFound = errors.New("grid: cell not found")

	// ErrIDCollision indicates two coordinates produced the same identifier.
	ErrIDCollision = errors.New("grid: cell identifier collision")

	// ErrCorruptAdjacency indicates a neighbor list with a self reference,
	// a duplicate, an unknown identifier, or too many entries.
	ErrCorruptAdjacency = errors.New("grid: corrupt adjacency")

	// ErrDimensionMismatch indicates a field whose shape differs from the grid.
	ErrDimensionMismatch = errors.New("grid: field shape does not match grid")

	// ErrNotComputed indicates an attribute read before it was populated.
	ErrNotComputed = errors.New("grid: attribute not computed")
)
