// Package noise is a named dispatch table of field transformations.
//
// What:
//
//   - Operation transforms a *field.Field given Settings and Params.
//   - Registry maps names to Operations, lists them in registration order
//     and executes them by name; Run chains steps and keeps the history.
//   - Built-ins cover fills, arithmetic, smoothing and two coherent noise
//     generators (perlin, simplex).
//
// Contract:
//
//   - Execute hands each operation a private copy of its input, so the
//     caller's field is never mutated and concurrent Execute calls over
//     disjoint chunks need no extra locking.
//   - The registry does not check the output shape; that belongs to the
//     operation.
//   - Workers() is an advisory hint for callers that split a field into
//     row bands (see field.Split); the registry itself never spawns work.
//
// Coordinates:
//
//   - Generators sample ((col+col_offset)/scale, (row+row_offset)/scale),
//     so chunks cut with field.Split and given row_offset = Chunk.Offset
//     stitch into the same field a single call would produce.
package noise
