package grid_test

import (
	"fmt"

	"github.com/katalvlaran/terra/grid"
)

// ExampleBuild shows the neighbor counts of a 3×3 grid: corners see three
// cells, edges five, and the centre all eight.
func ExampleBuild() {
	g, _ := grid.Build(3, 3)
	for r := 0; r < 3; r++ {
		row := make([]int, 0, 3)
		for c := 0; c < 3; c++ {
			cell, _ := g.CellAt(r, c)
			row = append(row, len(cell.Neighbors))
		}
		fmt.Println(row)
	}
	// Output:
	// [3 5 3]
	// [5 8 5]
	// [3 5 3]
}
