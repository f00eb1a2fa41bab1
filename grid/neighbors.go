// SPDX-License-Identifier: MIT
// Package: terra/grid
//
// neighbors.go — adjacency computation.
//
// Contract:
//   • Offsets are precomputed once per grid; all traversals use them.
//   • InitializeNeighbors resets each list before appending, so calling it
//     again never duplicates entries.
//   • Computation order does not affect the resulting neighbor sets.

package grid

import "fmt"

// Offsets are (dRow, dCol). The first four are orthogonal, the last four diagonal.
var (
	orthogonalOffsets = [][2]int{
		{0, -1}, // left
		{0, 1},  // right
		{-1, 0}, // up
		{1, 0},  // down
	}
	diagonalOffsets = [][2]int{
		{-1, -1}, // top-left
		{-1, 1},  // top-right
		{1, 1},   // bottom-right
		{1, -1},  // bottom-left
	}
)

// neighborOffsets returns the direction list for the given connectivity.
func neighborOffsets(conn Connectivity) [][2]int {
	out := make([][2]int, 0, 8)
	out = append(out, orthogonalOffsets...)
	if conn == Conn8 {
		out = append(out, diagonalOffsets...)
	}

	return out
}

// NeighborOffsets returns a copy of the (dRow, dCol) offsets in neighbor order.
func (g *Grid) NeighborOffsets() [][2]int {
	out := make([][2]int, len(g.offsets))
	copy(out, g.offsets)

	return out
}

// neighborIDs collects the in-bounds neighbor identifiers of (row, col).
func (g *Grid) neighborIDs(row, col int) []int64 {
	ids := make([]int64, 0, len(g.offsets))
	for _, d := range g.offsets {
		nr, nc := row+d[0], col+d[1]
		if !g.InBounds(nr, nc) {
			continue
		}
		ids = append(ids, g.cells[g.position(nr, nc)].ID)
	}

	return ids
}

// InitializeNeighbors recomputes every cell's neighbor list from scratch.
// Complexity: O(W×H×d).
func (g *Grid) InitializeNeighbors() {
	for _, c := range g.cells {
		c.Neighbors = g.neighborIDs(c.Row, c.Col)
	}
}

// NeighborsOf returns the ordered neighbor identifiers of c, computed from
// its coordinates. It does not read or modify c.Neighbors.
// Returns ErrCellNotFound if c does not belong to this grid.
func (g *Grid) NeighborsOf(c *Cell) ([]int64, error) {
	if c == nil {
		return nil, fmt.Errorf("NeighborsOf(nil): %w", ErrCellNotFound)
	}
	owned, err := g.GetCell(c.ID)
	if err != nil || owned != c {
		return nil, fmt.Errorf("NeighborsOf(%s): %w", c.Name, ErrCellNotFound)
	}

	return g.neighborIDs(c.Row, c.Col), nil
}
