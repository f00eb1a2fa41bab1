// Package grid models the raw world surface as a rectangular grid of cells
// with explicit adjacency lists.
//
// What:
//
//   - Grid owns width×height Cells in row-major order.
//   - Each Cell carries optional climate attributes (height, temperature,
//     moisture), an optional biome name and terrain class, and the ordered
//     identifiers of its neighbors.
//   - Identifiers are derived from (row, col) alone via CellID, so they are
//     stable across runs and independent of traversal order.
//   - Conn8 (default) links the eight surrounding cells; Conn4 only the
//     orthogonal ones. Neighbors never leave the grid.
//
// Neighbor order (Conn8):
//
//	left, right, up, down, top-left, top-right, bottom-right, bottom-left
//
// Under Conn4 only the first four are considered.
//
// Complexity:
//
//   - Build / InitializeNeighbors: O(W×H×d), d = 4 or 8.
//   - GetCell: O(1) through an int→int open-addressing table.
//   - Components: O(W×H×d).
//
// Errors:
//
//   - ErrBadShape: width or height < 1.
//   - ErrOutOfRange: (row, col) outside the grid.
//   - ErrCellNotFound: identifier or cell not part of the grid.
//   - ErrIDCollision: two coordinates hashed to the same identifier.
//   - ErrCorruptAdjacency: a neighbor list violates the grid invariants.
//   - ErrDimensionMismatch: a field does not match the grid shape.
//   - ErrNotComputed: an attribute was read before it was populated.
package grid
