package grid

import (
	"fmt"

	"github.com/zyedidia/generic/mapset"
)

// Validate checks every neighbor list against the grid invariants:
// no self reference, no duplicates, every identifier known, and at most
// len(NeighborOffsets()) entries.
// Returns the first violation wrapped in ErrCorruptAdjacency.
// Complexity: O(W×H×d).
func (g *Grid) Validate() error {
	limit := len(g.offsets)
	for _, c := range g.cells {
		if len(c.Neighbors) > limit {
			return fmt.Errorf("Validate: cell %s has %d neighbors (max %d): %w",
				c.Name, len(c.Neighbors), limit, ErrCorruptAdjacency)
		}
		seen := mapset.New[int64]()
		for _, id := range c.Neighbors {
			switch {
			case id == c.ID:
				return fmt.Errorf("Validate: cell %s lists itself: %w", c.Name, ErrCorruptAdjacency)
			case seen.Has(id):
				return fmt.Errorf("Validate: cell %s lists %d twice: %w", c.Name, id, ErrCorruptAdjacency)
			case !g.Has(id):
				return fmt.Errorf("Validate: cell %s lists unknown %d: %w", c.Name, id, ErrCorruptAdjacency)
			}
			seen.Put(id)
		}
	}

	return nil
}
