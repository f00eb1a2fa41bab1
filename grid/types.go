// SPDX-License-Identifier: MIT
// Package grid defines the Cell record, terrain and attribute enums, and
// connectivity modes.

package grid

import (
	"fmt"

	"github.com/cespare/xxhash/v2"
)

// TerrainType classifies a cell as land or water.
type TerrainType string

const (
	// Land marks a cell at or above sea level.
	Land TerrainType = "land"
	// Water marks a cell below sea level.
	Water TerrainType = "water"
)

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: left, right, up, down.
	Conn4 Connectivity = iota
	// Conn8 adds the four diagonals.
	Conn8
)

// String returns "conn4" or "conn8".
func (c Connectivity) String() string {
	if c == Conn4 {
		return "conn4"
	}
	return "conn8"
}

// Attribute names one of the per-cell climate values.
type Attribute int

const (
	// Height is the elevation of a cell.
	Height Attribute = iota
	// Temperature is the temperature of a cell.
	Temperature
	// Moisture is the moisture of a cell.
	Moisture
)

// String returns the lowercase attribute name.
func (a Attribute) String() string {
	switch a {
	case Height:
		return "height"
	case Temperature:
		return "temperature"
	case Moisture:
		return "moisture"
	default:
		return fmt.Sprintf("attribute(%d)", int(a))
	}
}

// Cell is a single grid unit.
//
// ID is unique within its Grid and stable for the same (Row, Col).
// Neighbors is populated once by the adjacency pass; climate values by the
// generation pipeline; Biome and Terrain last, by classification.
type Cell struct {
	ID   int64
	Name string // "row-col"
	Row  int
	Col  int

	Height      Optional[float64]
	Temperature Optional[float64]
	Moisture    Optional[float64]

	Neighbors []int64

	Biome   Optional[string]
	Terrain Optional[TerrainType]

	// Extra stores attributes outside the fixed schema.
	Extra map[string]any
}

// Attr returns the optional value of attribute a.
func (c *Cell) Attr(a Attribute) Optional[float64] {
	switch a {
	case Height:
		return c.Height
	case Temperature:
		return c.Temperature
	default:
		return c.Moisture
	}
}

// SetAttr stores v as attribute a.
func (c *Cell) SetAttr(a Attribute, v float64) {
	switch a {
	case Height:
		c.Height.Set(v)
	case Temperature:
		c.Temperature.Set(v)
	default:
		c.Moisture.Set(v)
	}
}

// CellName formats the display name for (row, col).
func CellName(row, col int) string {
	return fmt.Sprintf("%d-%d", row, col)
}

// CellID derives the identifier for (row, col) by hashing its name.
// The result is non-negative and depends on nothing but the coordinates.
func CellID(row, col int) int64 {
	return int64(xxhash.Sum64String(CellName(row, col)) >> 1)
}
