package grid

import (
	"math/rand"

	"github.com/go-gl/mathgl/mgl64"
)

// Points returns one centre point per cell in row-major order.
// The unjittered centre of (row, col) is ((col+0.5)·s, (row+0.5)·s) for
// spacing s. With WithJitter the centres are displaced deterministically.
func (g *Grid) Points() []mgl64.Vec2 {
	s := g.cfg.spacing
	maxShift := g.cfg.jitter * s / 2
	rng := rand.New(rand.NewSource(g.cfg.seed))

	pts := make([]mgl64.Vec2, 0, len(g.cells))
	for _, c := range g.cells {
		p := mgl64.Vec2{(float64(c.Col) + 0.5) * s, (float64(c.Row) + 0.5) * s}
		if maxShift > 0 {
			p = p.Add(mgl64.Vec2{(rng.Float64()*2 - 1) * maxShift, (rng.Float64()*2 - 1) * maxShift})
		}
		pts = append(pts, p)
	}

	return pts
}

// Boundary returns a ring of points half a spacing outside the grid
// rectangle, one per spacing step, for edge approximation.
// Order: a (top, bottom) pair per column left→right, then a (left, right)
// pair per row top→bottom.
func (g *Grid) Boundary() []mgl64.Vec2 {
	s := g.cfg.spacing
	w, h := float64(g.width)*s, float64(g.height)*s
	pts := make([]mgl64.Vec2, 0, 2*(g.width+g.height))

	for c := 0; c < g.width; c++ {
		x := (float64(c) + 0.5) * s
		pts = append(pts, mgl64.Vec2{x, -s / 2}, mgl64.Vec2{x, h + s/2})
	}
	for r := 0; r < g.height; r++ {
		y := (float64(r) + 0.5) * s
		pts = append(pts, mgl64.Vec2{-s / 2, y}, mgl64.Vec2{w + s/2, y})
	}

	return pts
}
