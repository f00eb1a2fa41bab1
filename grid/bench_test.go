package grid_test

import (
	"testing"

	"github.com/katalvlaran/terra/grid"
)

// BenchmarkBuild measures construction plus adjacency of a 256×256 grid.
func BenchmarkBuild(b *testing.B) {
	for i := 0; i < b.N; i++ {
		if _, err := grid.Build(256, 256); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkGetCell measures identifier lookup.
func BenchmarkGetCell(b *testing.B) {
	g, err := grid.Build(256, 256)
	if err != nil {
		b.Fatal(err)
	}
	id := grid.CellID(128, 128)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = g.GetCell(id)
	}
}
