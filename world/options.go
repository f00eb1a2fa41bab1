// SPDX-License-Identifier: MIT
// Package: terra/world
//
// options.go — functional options for New.
//
// Contract:
//   • Option constructors panic on nonsensical values; World methods never do.

package world

import (
	"fmt"
	"log/slog"
	"math"

	"github.com/google/uuid"
	"github.com/katalvlaran/terra/biome"
	"github.com/katalvlaran/terra/config"
	"github.com/katalvlaran/terra/grid"
	"github.com/katalvlaran/terra/noise"
)

// DefaultName is used when WithName is not given.
const DefaultName = "Unnamed World"

// Option configures a World.
type Option func(*World)

// WithName sets the display name. Panics on an empty name.
func WithName(name string) Option {
	if name == "" {
		panic("world: WithName: empty name")
	}
	return func(w *World) { w.name = name }
}

// WithSeed sets the base seed for DefaultPlan and derived generators.
func WithSeed(seed int64) Option {
	return func(w *World) { w.seed = seed }
}

// WithID fixes the world identifier. Panics on uuid.Nil.
func WithID(id uuid.UUID) Option {
	if id == uuid.Nil {
		panic("world: WithID: nil uuid")
	}
	return func(w *World) { w.id = id }
}

// WithRegistry sets the noise registry. Panics on nil.
func WithRegistry(r *noise.Registry) Option {
	if r == nil {
		panic("world: WithRegistry: nil registry")
	}
	return func(w *World) { w.registry = r }
}

// WithCatalog sets the biome catalog used by Classify. Panics on nil.
func WithCatalog(c *biome.Catalog) Option {
	if c == nil {
		panic("world: WithCatalog: nil catalog")
	}
	return func(w *World) { w.catalog = c }
}

// WithLogger sets the logger; nil selects slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(w *World) { w.log = l }
}

// WithSeaLevel sets the height below which cells are water.
// Panics on NaN or infinite values.
func WithSeaLevel(level float64) Option {
	if math.IsNaN(level) || math.IsInf(level, 0) {
		panic(fmt.Sprintf("world: WithSeaLevel(%g): must be finite", level))
	}
	return func(w *World) { w.seaLevel = level }
}

// WithWaterBiome assigns the named biome to every water cell instead of
// classifying it by climate. An empty name restores climate classification.
func WithWaterBiome(name string) Option {
	return func(w *World) { w.waterBiome = name }
}

// WithGridOptions forwards options to grid.Build.
func WithGridOptions(opts ...grid.Option) Option {
	return func(w *World) { w.gridOpts = append(w.gridOpts, opts...) }
}

// WithConfig applies the World and Biomes sections: name, seed, sea level,
// connectivity and water biome.
func WithConfig(c config.Config) Option {
	return func(w *World) {
		if c.World.Name != "" {
			w.name = c.World.Name
		}
		w.seed = c.World.Seed
		w.seaLevel = c.World.SeaLevel
		w.waterBiome = c.Biomes.WaterBiome
		conn := grid.Conn8
		if c.World.Connectivity == 4 {
			conn = grid.Conn4
		}
		w.gridOpts = append(w.gridOpts, grid.WithConnectivity(conn))
	}
}
