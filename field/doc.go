// Package field provides the dense 2D numeric array that every terrain stage
// reads and writes: height, temperature and moisture maps.
//
// What:
//
//   - Field is a rows×cols row-major float64 array backed by one flat slice.
//   - All transforming kernels (Map, AddScalar, Scale, Clamp, Rescale,
//     Normalize) return a NEW Field; the receiver is never mutated.
//   - Split / Stitch cut a Field into disjoint row bands and back, so a caller
//     can fan work out across goroutines without locking.
//
// Why:
//
//   - Noise operations are pure array→array transforms; a single concrete
//     array type keeps them composable and shape-checkable.
//
// Complexity:
//
//   - At/Set: O(1). Kernels and stats: O(r×c) time, O(r×c) memory for output.
//
// Errors:
//
//   - ErrBadShape: requested shape has a non-positive dimension.
//   - ErrNonRectangular: input rows differ in length.
//   - ErrOutOfRange: row or column index outside bounds.
//   - ErrDimensionMismatch: operands or chunks do not line up.
//   - ErrFlat: normalization over a field whose min equals its max.
package field
