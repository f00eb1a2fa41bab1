// SPDX-License-Identifier: MIT
// Package: terra/pack
//
// pack.go — snapshot construction, CSR adjacency and feature detection.
//
// Complexity:
//   • New: O(W·H·d) for adjacency and components, d = 4 or 8.
//   • Cell, Neighbors, Feature, ByGridID: O(1).

package pack

import (
	"fmt"
	"log/slog"
	"slices"

	"github.com/brentp/intintmap"
	"github.com/katalvlaran/terra/grid"
)

// FeatureType classifies a connected terrain region.
type FeatureType string

// Feature types.
const (
	Ocean  FeatureType = "ocean"
	Lake   FeatureType = "lake"
	Island FeatureType = "island"
)

// Cell is the packed view of one grid cell.
type Cell struct {
	Index       int // position in the pack
	GridID      int64
	Row, Col    int
	Height      grid.Optional[float64]
	Temperature grid.Optional[float64]
	Moisture    grid.Optional[float64]
	Biome       string // "" if unclassified
	Terrain     grid.TerrainType
	Feature     int // id of the owning Feature
}

// Feature is a connected region of equal terrain.
type Feature struct {
	ID      int
	Type    FeatureType
	Terrain grid.TerrainType
	Border  bool  // touches the grid edge
	Cells   []int // pack indices, BFS order
}

// Option configures New.
type Option func(*options)

type options struct {
	log *slog.Logger
}

// WithLogger sets the logger; nil selects slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(o *options) { o.log = l }
}

// Pack is an immutable repacking of a grid.
type Pack struct {
	cells    []Cell
	offsets  []int // len(cells)+1; neighbors of i are adj[offsets[i]:offsets[i+1]]
	adj      []int
	features []Feature
	byGrid   *intintmap.Map // grid id → pack index
}

// New snapshots g.
//
// Stage 1 (Validate): every cell has a terrain, else ErrNotClassified.
// Stage 2 (Pack): copy cells, translate neighbor ids into pack indices.
// Stage 3 (Features): water and land components, then Ocean/Lake/Island.
func New(g *grid.Grid, opts ...Option) (*Pack, error) {
	if g == nil {
		return nil, fmt.Errorf("New: %w", ErrNilGrid)
	}
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.log == nil {
		o.log = slog.Default()
	}

	src := g.Cells()
	p := &Pack{
		cells:   make([]Cell, len(src)),
		offsets: make([]int, len(src)+1),
		byGrid:  intintmap.New(len(src), 0.6),
	}
	for i, c := range src {
		terrain, ok := c.Terrain.Get()
		if !ok {
			return nil, fmt.Errorf("New: cell %s: %w", c.Name, ErrNotClassified)
		}
		p.cells[i] = Cell{
			Index:       i,
			GridID:      c.ID,
			Row:         c.Row,
			Col:         c.Col,
			Height:      c.Height,
			Temperature: c.Temperature,
			Moisture:    c.Moisture,
			Biome:       c.Biome.OrElse(""),
			Terrain:     terrain,
		}
		p.byGrid.Put(c.ID, int64(i))
	}

	for i, c := range src {
		for _, nid := range c.Neighbors {
			j, ok := p.byGrid.Get(nid)
			if !ok {
				return nil, fmt.Errorf("New: cell %s: neighbor %d: %w", c.Name, nid, grid.ErrCorruptAdjacency)
			}
			p.adj = append(p.adj, int(j))
		}
		p.offsets[i+1] = len(p.adj)
	}

	p.detectFeatures(g)
	o.log.Debug("pack built", "cells", len(p.cells), "edges", len(p.adj), "features", len(p.features))

	return p, nil
}

// detectFeatures labels water and land components and orders them by
// their first cell.
func (p *Pack) detectFeatures(g *grid.Grid) {
	var comps [][]int64
	for _, t := range []grid.TerrainType{grid.Water, grid.Land} {
		terrain := t
		comps = append(comps, g.Components(func(c *grid.Cell) bool {
			v, _ := c.Terrain.Get()
			return v == terrain
		})...)
	}

	idx := func(id int64) int {
		i, _ := p.byGrid.Get(id)
		return int(i)
	}
	slices.SortFunc(comps, func(a, b []int64) int { return idx(a[0]) - idx(b[0]) })

	p.features = make([]Feature, 0, len(comps))
	for k, comp := range comps {
		f := Feature{ID: k + 1, Cells: make([]int, len(comp))}
		for n, id := range comp {
			i := idx(id)
			f.Cells[n] = i
			p.cells[i].Feature = f.ID
			if gc, err := g.GetCell(id); err == nil && g.OnBorder(gc) {
				f.Border = true
			}
		}
		f.Terrain = p.cells[f.Cells[0]].Terrain
		switch {
		case f.Terrain == grid.Land:
			f.Type = Island
		case f.Border:
			f.Type = Ocean
		default:
			f.Type = Lake
		}
		p.features = append(p.features, f)
	}
}

// Len returns the number of cells.
func (p *Pack) Len() int { return len(p.cells) }

// Cell returns the cell at pack index i.
func (p *Pack) Cell(i int) (Cell, error) {
	if i < 0 || i >= len(p.cells) {
		return Cell{}, fmt.Errorf("Cell(%d): %w", i, ErrOutOfRange)
	}
	return p.cells[i], nil
}

// Neighbors returns the pack indices adjacent to i. The slice aliases
// internal storage and must not be modified.
func (p *Pack) Neighbors(i int) ([]int, error) {
	if i < 0 || i >= len(p.cells) {
		return nil, fmt.Errorf("Neighbors(%d): %w", i, ErrOutOfRange)
	}
	return p.adj[p.offsets[i]:p.offsets[i+1]:p.offsets[i+1]], nil
}

// ByGridID returns the cell snapshot of grid cell id.
func (p *Pack) ByGridID(id int64) (Cell, error) {
	i, ok := p.byGrid.Get(id)
	if !ok {
		return Cell{}, fmt.Errorf("ByGridID(%d): %w", id, ErrCellNotFound)
	}
	return p.cells[i], nil
}

// Feature returns the feature with the given id.
func (p *Pack) Feature(id int) (Feature, error) {
	if id < 1 || id > len(p.features) {
		return Feature{}, fmt.Errorf("Feature(%d): %w", id, ErrFeatureNotFound)
	}
	return p.features[id-1], nil
}

// Features returns every feature ordered by id.
func (p *Pack) Features() []Feature { return slices.Clone(p.features) }

// FeatureCounts returns the number of features per type.
func (p *Pack) FeatureCounts() map[FeatureType]int {
	out := make(map[FeatureType]int, 3)
	for _, f := range p.features {
		out[f.Type]++
	}
	return out
}

// BiomeCounts returns the number of cells per biome name; unclassified
// cells are omitted.
func (p *Pack) BiomeCounts() map[string]int {
	out := make(map[string]int)
	for _, c := range p.cells {
		if c.Biome != "" {
			out[c.Biome]++
		}
	}
	return out
}
