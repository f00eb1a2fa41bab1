// SPDX-License-Identifier: MIT
// Package world: sentinel errors.

package world

import "errors"

var (
	// ErrBadShape indicates a world narrower or shorter than one cell.
	ErrBadShape = errors.New("world: width and height must be >= 1")

	// ErrNotInitialized indicates a stage that needs a grid, map or catalog
	// that has not been set up yet.
	ErrNotInitialized = errors.New("world: not initialized")

	// ErrDimensionMismatch indicates a map whose shape differs from the grid.
	ErrDimensionMismatch = errors.New("world: map shape does not match grid")
)
