// SPDX-License-Identifier: MIT
// Package: terra/field
//
// chunk.go — row-band partitioning for caller-side parallel execution.
//
// Contract:
//   • Split never shares memory between chunks and the source Field.
//   • Chunks are disjoint, ordered by Offset, and cover every row exactly once.
//   • Stitch accepts chunks in any order and rejects gaps, overlaps, and
//     width mismatches with ErrDimensionMismatch.

package field

import (
	"fmt"
	"sort"
)

// Chunk is a band of consecutive rows cut from a larger Field.
// Offset is the index of the band's first row in the source.
type Chunk struct {
	Offset int
	Field  *Field
}

// Split cuts f into at most n disjoint row bands of near-equal height.
// n is clamped to [1, f.Rows()].
// Complexity: O(r*c) for the copies.
func Split(f *Field, n int) []Chunk {
	if n < 1 {
		n = 1
	}
	if n > f.r {
		n = f.r
	}
	base, extra := f.r/n, f.r%n // first `extra` bands get one more row
	chunks := make([]Chunk, 0, n)
	row := 0
	for i := 0; i < n; i++ {
		h := base
		if i < extra {
			h++
		}
		band := &Field{r: h, c: f.c, data: make([]float64, h*f.c)}
		copy(band.data, f.data[row*f.c:(row+h)*f.c])
		chunks = append(chunks, Chunk{Offset: row, Field: band})
		row += h
	}

	return chunks
}

// Stitch reassembles chunks into a rows×cols Field.
// Stage 1 (Validate): shape, widths, and contiguous coverage.
// Stage 2 (Execute): copy each band into place.
func Stitch(chunks []Chunk, rows, cols int) (*Field, error) {
	out, err := New(rows, cols)
	if err != nil {
		return nil, err
	}
	sorted := make([]Chunk, len(chunks))
	copy(sorted, chunks)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Offset < sorted[j].Offset })

	next := 0
	for _, ch := range sorted {
		if ch.Field == nil || ch.Field.c != cols || ch.Offset != next || next+ch.Field.r > rows {
			return nil, fmt.Errorf("Stitch: chunk at row %d: %w", ch.Offset, ErrDimensionMismatch)
		}
		copy(out.data[next*cols:], ch.Field.data)
		next += ch.Field.r
	}
	if next != rows {
		return nil, fmt.Errorf("Stitch: covered %d of %d rows: %w", next, rows, ErrDimensionMismatch)
	}

	return out, nil
}
