// SPDX-License-Identifier: MIT
// Package: terra/biome
//
// matrix.go — temperature × moisture lookup table.
//
// Contract:
//   • rows index moisture, columns index temperature.
//   • index(v) = trunc(normalize(v) · (axis−1)) against the live global range,
//     so only v == max reaches the last row/column.
//   • AddBiome widens the global ranges monotonically and commits nothing on
//     error.
//
// Complexity:
//   • AddBiome: O(area of the painted rectangle). GetBiome: O(1).

package biome

import (
	"fmt"
	"strings"
)

// Default matrix shape.
const (
	DefaultRows    = 26
	DefaultColumns = 5
)

// Matrix maps a (temperature, moisture) point to a biome name.
// Not safe for concurrent mutation; Catalog guards its own Matrix.
type Matrix struct {
	rows, cols int
	cells      []string // row-major, "" = empty
	temp       Range
	moisture   Range
}

// NewMatrix returns an empty rows×cols matrix with empty global ranges.
// Returns ErrBadShape if rows < 1 or cols < 1.
func NewMatrix(rows, cols int) (*Matrix, error) {
	if rows < 1 || cols < 1 {
		return nil, fmt.Errorf("NewMatrix(%d,%d): %w", rows, cols, ErrBadShape)
	}
	return &Matrix{
		rows:     rows,
		cols:     cols,
		cells:    make([]string, rows*cols),
		temp:     EmptyRange(),
		moisture: EmptyRange(),
	}, nil
}

// Rows returns the number of moisture rows.
func (m *Matrix) Rows() int { return m.rows }

// Cols returns the number of temperature columns.
func (m *Matrix) Cols() int { return m.cols }

// TempRange returns the global temperature range seen so far.
func (m *Matrix) TempRange() Range { return m.temp }

// MoistureRange returns the global moisture range seen so far.
func (m *Matrix) MoistureRange() Range { return m.moisture }

// AddBiome paints name over the index rectangle of temp × moisture.
//
// Stage 1 (Validate): non-empty name, valid ranges → ErrInvalidBiome.
// Stage 2 (Widen): tentative union of global ranges; zero width on either
// axis → ErrDivisionUndefined with nothing committed.
// Stage 3 (Paint): rows [mi(min), mi(max)] × cols [ti(min), ti(max)],
// overwriting earlier occupants.
func (m *Matrix) AddBiome(name string, temp, moisture Range) error {
	if name == "" {
		return fmt.Errorf("AddBiome: empty name: %w", ErrInvalidBiome)
	}
	if !temp.Valid() || !moisture.Valid() {
		return fmt.Errorf("AddBiome(%q): temp %s moisture %s: %w", name, temp, moisture, ErrInvalidBiome)
	}

	t := m.temp.Union(temp)
	mo := m.moisture.Union(moisture)

	c0, err := axisIndex(temp.Min(), t, m.cols)
	if err != nil {
		return fmt.Errorf("AddBiome(%q): temperature %s: %w", name, t, err)
	}
	c1, _ := axisIndex(temp.Max(), t, m.cols)
	r0, err := axisIndex(moisture.Min(), mo, m.rows)
	if err != nil {
		return fmt.Errorf("AddBiome(%q): moisture %s: %w", name, mo, err)
	}
	r1, _ := axisIndex(moisture.Max(), mo, m.rows)

	m.temp, m.moisture = t, mo
	for r := r0; r <= r1; r++ {
		for c := c0; c <= c1; c++ {
			m.cells[r*m.cols+c] = name
		}
	}

	return nil
}

// GetBiome returns the name at the cell the point normalizes to.
// Returns ErrDivisionUndefined if no insertion has established non-degenerate
// ranges, ErrNoBiome if the point lies outside them or the cell is empty.
func (m *Matrix) GetBiome(temp, moisture float64) (string, error) {
	col, err := axisIndex(temp, m.temp, m.cols)
	if err != nil {
		return "", fmt.Errorf("GetBiome: temperature %s: %w", m.temp, err)
	}
	row, err := axisIndex(moisture, m.moisture, m.rows)
	if err != nil {
		return "", fmt.Errorf("GetBiome: moisture %s: %w", m.moisture, err)
	}
	if !m.temp.Contains(temp) || !m.moisture.Contains(moisture) {
		return "", fmt.Errorf("GetBiome(%g,%g): outside %s×%s: %w", temp, moisture, m.temp, m.moisture, ErrNoBiome)
	}
	name := m.cells[row*m.cols+col]
	if name == "" {
		return "", fmt.Errorf("GetBiome(%g,%g): cell (%d,%d) empty: %w", temp, moisture, row, col, ErrNoBiome)
	}

	return name, nil
}

// At returns the occupant of (row, col); ok is false if empty or out of range.
func (m *Matrix) At(row, col int) (name string, ok bool) {
	if row < 0 || row >= m.rows || col < 0 || col >= m.cols {
		return "", false
	}
	name = m.cells[row*m.cols+col]
	return name, name != ""
}

// Clone returns a deep copy.
func (m *Matrix) Clone() *Matrix {
	out := *m
	out.cells = append([]string(nil), m.cells...)
	return &out
}

// render writes one line per row; label maps an occupant to its token.
func (m *Matrix) render(label func(name string) string) string {
	var sb strings.Builder
	for r := 0; r < m.rows; r++ {
		for c := 0; c < m.cols; c++ {
			if c > 0 {
				sb.WriteString(", ")
			}
			name := m.cells[r*m.cols+c]
			if name == "" {
				sb.WriteString(".")
			} else {
				sb.WriteString(label(name))
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// String renders one line per moisture row with "." for empty cells.
func (m *Matrix) String() string {
	return m.render(func(name string) string { return name })
}

// axisIndex returns trunc(normalize(v, r) · (size−1)).
// Indices are clamped into [0, size); callers check Contains first.
func axisIndex(v float64, r Range, size int) (int, error) {
	n, err := r.normalize(v)
	if err != nil {
		return 0, err
	}
	idx := int(n * float64(size-1))
	if idx < 0 {
		idx = 0
	}
	if idx > size-1 {
		idx = size - 1
	}
	return idx, nil
}
