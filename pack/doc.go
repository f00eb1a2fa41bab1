// Package pack repacks a classified grid into flat arrays.
//
// A Pack is a read-only snapshot: one Cell per grid cell in row-major order,
// neighbor lists in compressed sparse row form (one offsets array, one
// adjacency array of pack indices) and the terrain features found by
// connected components:
//
//   - Ocean:  water component touching the grid border
//   - Lake:   water component enclosed by land
//   - Island: land component
//
// Feature ids start at 1 and follow the row-major order of each feature's
// first cell. Every grid cell must carry a terrain (ErrNotClassified).
package pack
