// SPDX-License-Identifier: MIT
// Package: terra/grid
//
// grid.go — Grid construction and lookup.
//
// Contract:
//   • width ≥ 1 and height ≥ 1 (else ErrBadShape).
//   • Cells are created in row-major order (row asc, then col asc) with
//     ID = CellID(row, col) and Name = "row-col".
//   • Neighbor lists are populated before Build returns.
//   • GetCell fails fast with ErrCellNotFound; it never returns a nil cell
//     with a nil error.
//
// Complexity:
//   • Build: O(W×H×d) time, O(W×H) memory.

package grid

import (
	"fmt"

	"github.com/brentp/intintmap"
)

// indexFillFactor is the load factor of the id→index table.
const indexFillFactor = 0.6

// Grid is a fixed width×height arrangement of Cells.
type Grid struct {
	width, height int
	cfg           buildConfig
	offsets       [][2]int       // (dRow, dCol) in documented neighbor order
	cells         []*Cell        // row-major
	index         *intintmap.Map // Cell.ID → position in cells
}

// Build constructs a width×height grid and computes adjacency.
// Stage 1 (Validate): dimensions.
// Stage 2 (Prepare): cells in row-major order, id→index table.
// Stage 3 (Finalize): neighbor lists.
func Build(width, height int, opts ...Option) (*Grid, error) {
	if width < 1 || height < 1 {
		return nil, fmt.Errorf("Build(%d,%d): %w", width, height, ErrBadShape)
	}
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	g := &Grid{
		width:   width,
		height:  height,
		cfg:     cfg,
		offsets: neighborOffsets(cfg.conn),
		cells:   make([]*Cell, 0, width*height),
		index:   intintmap.New(width*height, indexFillFactor),
	}
	for r := 0; r < height; r++ {
		for c := 0; c < width; c++ {
			id := CellID(r, c)
			if _, dup := g.index.Get(id); dup {
				return nil, fmt.Errorf("Build: cell %s: %w", CellName(r, c), ErrIDCollision)
			}
			g.index.Put(id, int64(len(g.cells)))
			g.cells = append(g.cells, &Cell{ID: id, Name: CellName(r, c), Row: r, Col: c})
		}
	}
	g.InitializeNeighbors()

	return g, nil
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// Len returns the number of cells.
func (g *Grid) Len() int { return len(g.cells) }

// Connectivity returns the neighbor model the grid was built with.
func (g *Grid) Connectivity() Connectivity { return g.cfg.conn }

// InBounds reports whether (row, col) lies within the grid.
// Complexity: O(1).
func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.height && col >= 0 && col < g.width
}

// position maps (row, col) to the row-major slice position.
func (g *Grid) position(row, col int) int {
	return row*g.width + col
}

// CellAt returns the cell at (row, col), or ErrOutOfRange.
func (g *Grid) CellAt(row, col int) (*Cell, error) {
	if !g.InBounds(row, col) {
		return nil, fmt.Errorf("CellAt(%d,%d): %w", row, col, ErrOutOfRange)
	}

	return g.cells[g.position(row, col)], nil
}

// GetCell resolves a cell by identifier, or returns ErrCellNotFound.
// Complexity: O(1) expected.
func (g *Grid) GetCell(id int64) (*Cell, error) {
	pos, ok := g.index.Get(id)
	if !ok {
		return nil, fmt.Errorf("GetCell(%d): %w", id, ErrCellNotFound)
	}

	return g.cells[pos], nil
}

// Has reports whether id belongs to the grid.
func (g *Grid) Has(id int64) bool {
	_, ok := g.index.Get(id)
	return ok
}

// Cells returns the cells in row-major order.
// The slice is a copy; the cells themselves are shared.
func (g *Grid) Cells() []*Cell {
	out := make([]*Cell, len(g.cells))
	copy(out, g.cells)

	return out
}

// Each calls fn for every cell in row-major order.
func (g *Grid) Each(fn func(c *Cell)) {
	for _, c := range g.cells {
		fn(c)
	}
}
