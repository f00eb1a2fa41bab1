// SPDX-License-Identifier: MIT
// Package: terra/world
//
// world.go — the World type, grid/pack setup and climate map storage.
//
// Contract:
//   • Maps are stored as private copies and returned as copies.
//   • Setting a map also assigns it to every grid cell.
//   • InitializeGrid discards maps and pack from a previous run.

package world

import (
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/katalvlaran/terra/biome"
	"github.com/katalvlaran/terra/field"
	"github.com/katalvlaran/terra/grid"
	"github.com/katalvlaran/terra/noise"
	"github.com/katalvlaran/terra/pack"
)

// World is one generated surface.
type World struct {
	id         uuid.UUID
	name       string
	width      int
	height     int
	seed       int64
	seaLevel   float64
	waterBiome string
	gridOpts   []grid.Option

	registry *noise.Registry
	catalog  *biome.Catalog
	log      *slog.Logger

	grid *grid.Grid
	pack *pack.Pack
	maps map[grid.Attribute]*field.Field
}

// New returns a World of width×height cells. The grid is not built until
// InitializeGrid or Generate.
// Returns ErrBadShape if width < 1 or height < 1.
func New(width, height int, opts ...Option) (*World, error) {
	if width < 1 || height < 1 {
		return nil, fmt.Errorf("New(%d,%d): %w", width, height, ErrBadShape)
	}
	w := &World{
		name:   DefaultName,
		width:  width,
		height: height,
		maps:   make(map[grid.Attribute]*field.Field, 3),
	}
	for _, opt := range opts {
		opt(w)
	}
	if w.log == nil {
		w.log = slog.Default()
	}
	if w.id == uuid.Nil {
		w.id = uuid.New()
	}
	if w.registry == nil {
		w.registry = noise.NewDefaultRegistry(noise.WithLogger(w.log))
	}
	w.log = w.log.With("world", w.name)

	return w, nil
}

// ID returns the world identifier.
func (w *World) ID() uuid.UUID { return w.id }

// Name returns the display name.
func (w *World) Name() string { return w.name }

// Seed returns the base seed.
func (w *World) Seed() int64 { return w.seed }

// Width returns the number of columns.
func (w *World) Width() int { return w.width }

// Height returns the number of rows.
func (w *World) Height() int { return w.height }

// SeaLevel returns the land/water threshold.
func (w *World) SeaLevel() float64 { return w.seaLevel }

// Registry returns the noise registry.
func (w *World) Registry() *noise.Registry { return w.registry }

// Catalog returns the biome catalog, or nil if none was configured.
func (w *World) Catalog() *biome.Catalog { return w.catalog }

// InitializeGrid builds the grid and its adjacency, resetting maps and pack.
func (w *World) InitializeGrid() error {
	g, err := grid.Build(w.width, w.height, w.gridOpts...)
	if err != nil {
		return fmt.Errorf("InitializeGrid: %w", err)
	}
	w.grid = g
	w.pack = nil
	clear(w.maps)
	w.log.Info("grid initialized", "width", w.width, "height", w.height,
		"cells", g.Len(), "connectivity", g.Connectivity().String())
	return nil
}

// Grid returns the grid. Returns ErrNotInitialized before InitializeGrid.
func (w *World) Grid() (*grid.Grid, error) {
	if w.grid == nil {
		return nil, fmt.Errorf("Grid: %w", ErrNotInitialized)
	}
	return w.grid, nil
}

// InitializePack snapshots the classified grid.
// Returns ErrNotInitialized without a grid, pack.ErrNotClassified before
// Classify.
func (w *World) InitializePack() error {
	if w.grid == nil {
		return fmt.Errorf("InitializePack: grid: %w", ErrNotInitialized)
	}
	p, err := pack.New(w.grid, pack.WithLogger(w.log))
	if err != nil {
		return fmt.Errorf("InitializePack: %w", err)
	}
	w.pack = p
	w.log.Info("pack initialized", "cells", p.Len(), "features", len(p.Features()))
	return nil
}

// Pack returns the pack. Returns ErrNotInitialized before InitializePack.
func (w *World) Pack() (*pack.Pack, error) {
	if w.pack == nil {
		return nil, fmt.Errorf("Pack: %w", ErrNotInitialized)
	}
	return w.pack, nil
}

// setMap stores a copy of f as attribute a and assigns it to the cells.
func (w *World) setMap(method string, a grid.Attribute, f *field.Field) error {
	if w.grid == nil {
		return fmt.Errorf("%s: grid: %w", method, ErrNotInitialized)
	}
	if f == nil || f.Rows() != w.height || f.Cols() != w.width {
		return fmt.Errorf("%s: %w", method, ErrDimensionMismatch)
	}
	stored := f.Clone()
	if err := w.grid.Assign(a, stored); err != nil {
		return fmt.Errorf("%s: %w", method, err)
	}
	w.maps[a] = stored
	w.pack = nil
	return nil
}

// getMap returns a copy of attribute a's map.
func (w *World) getMap(method string, a grid.Attribute) (*field.Field, error) {
	f, ok := w.maps[a]
	if !ok {
		return nil, fmt.Errorf("%s: %s map: %w", method, a, ErrNotInitialized)
	}
	return f.Clone(), nil
}

// SetHeightMap stores an externally computed height map.
// Returns ErrNotInitialized without a grid, ErrDimensionMismatch on shape.
func (w *World) SetHeightMap(f *field.Field) error {
	return w.setMap("SetHeightMap", grid.Height, f)
}

// SetTemperatureMap stores an externally computed temperature map.
func (w *World) SetTemperatureMap(f *field.Field) error {
	return w.setMap("SetTemperatureMap", grid.Temperature, f)
}

// SetMoistureMap stores an externally computed moisture map.
func (w *World) SetMoistureMap(f *field.Field) error {
	return w.setMap("SetMoistureMap", grid.Moisture, f)
}

// HeightMap returns a copy of the height map.
func (w *World) HeightMap() (*field.Field, error) { return w.getMap("HeightMap", grid.Height) }

// TemperatureMap returns a copy of the temperature map.
func (w *World) TemperatureMap() (*field.Field, error) {
	return w.getMap("TemperatureMap", grid.Temperature)
}

// MoistureMap returns a copy of the moisture map.
func (w *World) MoistureMap() (*field.Field, error) { return w.getMap("MoistureMap", grid.Moisture) }

// UpdateTemperatureMap adds mod to every temperature.
// Returns ErrNotInitialized if the temperature map is absent.
func (w *World) UpdateTemperatureMap(mod float64) error {
	return w.update("UpdateTemperatureMap", grid.Temperature, mod)
}

// UpdateMoistureMap adds mod to every moisture value.
// Returns ErrNotInitialized if the moisture map is absent.
func (w *World) UpdateMoistureMap(mod float64) error {
	return w.update("UpdateMoistureMap", grid.Moisture, mod)
}

func (w *World) update(method string, a grid.Attribute, mod float64) error {
	f, ok := w.maps[a]
	if !ok {
		return fmt.Errorf("%s: %s map: %w", method, a, ErrNotInitialized)
	}
	return w.setMap(method, a, f.AddScalar(mod))
}

// String summarizes the world.
func (w *World) String() string {
	return fmt.Sprintf("World(%s, id=%s, %dx%d, seed=%d)", w.name, w.id, w.width, w.height, w.seed)
}
