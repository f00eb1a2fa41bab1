// SPDX-License-Identifier: MIT
// Package: terra/world
//
// generate.go — noise pipelines per map, classification and the full run.

package world

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/terra/biome"
	"github.com/katalvlaran/terra/field"
	"github.com/katalvlaran/terra/grid"
	"github.com/katalvlaran/terra/noise"
)

// GenerateHeight runs steps over a zero field and stores the result as the
// height map.
func (w *World) GenerateHeight(steps ...noise.Step) (noise.Result, error) {
	return w.generate("GenerateHeight", grid.Height, steps)
}

// GenerateTemperature runs steps over a zero field and stores the result
// as the temperature map.
func (w *World) GenerateTemperature(steps ...noise.Step) (noise.Result, error) {
	return w.generate("GenerateTemperature", grid.Temperature, steps)
}

// GenerateMoisture runs steps over a zero field and stores the result as
// the moisture map.
func (w *World) GenerateMoisture(steps ...noise.Step) (noise.Result, error) {
	return w.generate("GenerateMoisture", grid.Moisture, steps)
}

func (w *World) generate(method string, a grid.Attribute, steps []noise.Step) (noise.Result, error) {
	if w.grid == nil {
		return noise.Result{}, fmt.Errorf("%s: grid: %w", method, ErrNotInitialized)
	}
	zero, err := field.New(w.height, w.width)
	if err != nil {
		return noise.Result{}, fmt.Errorf("%s: %w", method, err)
	}
	res, err := w.registry.Run(zero, steps...)
	if err != nil {
		return res, fmt.Errorf("%s: %w", method, err)
	}
	if err := w.setMap(method, a, res.Final); err != nil {
		return res, err
	}
	lo, hi := res.Final.MinMax()
	w.log.Info("map generated", "map", a.String(), "steps", len(steps), "min", lo, "max", hi)
	return res, nil
}

// Classify sets every cell's terrain (height ≥ sea level → Land) and biome.
// Water cells take the water biome when one is configured; every other cell
// is classified by climate through the catalog (clamped into its ranges).
// Returns ErrNotInitialized for a missing grid, map or catalog.
func (w *World) Classify() error {
	if w.grid == nil {
		return fmt.Errorf("Classify: grid: %w", ErrNotInitialized)
	}
	if w.catalog == nil {
		return fmt.Errorf("Classify: catalog: %w", ErrNotInitialized)
	}
	for _, a := range []grid.Attribute{grid.Height, grid.Temperature, grid.Moisture} {
		if _, ok := w.maps[a]; !ok {
			return fmt.Errorf("Classify: %s map: %w", a, ErrNotInitialized)
		}
	}
	if w.waterBiome != "" {
		if _, err := w.catalog.Lookup(w.waterBiome); err != nil {
			return fmt.Errorf("Classify: water biome: %w", err)
		}
	}

	var errs []error
	w.grid.Each(func(c *grid.Cell) {
		h, _ := c.Height.Get()
		terrain := grid.Land
		if h < w.seaLevel {
			terrain = grid.Water
		}
		c.Terrain.Set(terrain)

		if terrain == grid.Water && w.waterBiome != "" {
			c.Biome.Set(w.waterBiome)
			return
		}
		t, _ := c.Temperature.Get()
		m, _ := c.Moisture.Get()
		b, err := w.catalog.Classify(t, m)
		if err != nil {
			c.Biome.Clear()
			errs = append(errs, fmt.Errorf("cell %s: %w", c.Name, err))
			return
		}
		c.Biome.Set(b.Name)
	})
	w.pack = nil
	if len(errs) > 0 {
		return fmt.Errorf("Classify: %d cells: %w", len(errs), errors.Join(errs...))
	}

	w.log.Info("cells classified", "cells", w.grid.Len(), "sea_level", w.seaLevel)
	return nil
}

// Plan lists the noise steps for each map.
type Plan struct {
	Height      []noise.Step
	Temperature []noise.Step
	Moisture    []noise.Step
}

// Default map ranges produced by DefaultPlan.
var (
	DefaultTemperatureRange = biome.NewRange(-30, 40)
	DefaultMoistureRange    = biome.NewRange(0, 100)
)

// DefaultPlan builds a plan from the built-in operations. Each map draws
// from its own seed derived from seed.
//
//	height:      perlin (5 octaves) → clamp [-1, 1]
//	temperature: perlin (3 octaves) → clamp → rescale onto DefaultTemperatureRange
//	moisture:    simplex (4 octaves) → clamp → rescale onto DefaultMoistureRange
func DefaultPlan(seed int64) Plan {
	clamp := noise.Step{Name: noise.OpClamp, Params: noise.Params{noise.ParamMin: -1.0, noise.ParamMax: 1.0}}
	rescale := func(r biome.Range) noise.Step {
		return noise.Step{Name: noise.OpRescale, Params: noise.Params{noise.ParamMin: r.Min(), noise.ParamMax: r.Max()}}
	}
	return Plan{
		Height: []noise.Step{
			{Name: noise.OpPerlin, Settings: noise.Settings{
				Scale: 32, Amplitude: 1, Octaves: 5, Persistence: 0.5, Lacunarity: 2,
				Seed: noise.DeriveSeed(seed, "height"),
			}},
			clamp,
		},
		Temperature: []noise.Step{
			{Name: noise.OpPerlin, Settings: noise.Settings{
				Scale: 64, Amplitude: 1, Octaves: 3, Persistence: 0.5, Lacunarity: 2,
				Seed: noise.DeriveSeed(seed, "temperature"),
			}},
			clamp,
			rescale(DefaultTemperatureRange),
		},
		Moisture: []noise.Step{
			{Name: noise.OpSimplex, Settings: noise.Settings{
				Scale: 48, Amplitude: 1, Octaves: 4, Persistence: 0.5, Lacunarity: 2,
				Seed: noise.DeriveSeed(seed, "moisture"),
			}},
			clamp,
			rescale(DefaultMoistureRange),
		},
	}
}

// Generate builds the grid if it does not exist yet, runs every non-empty
// map pipeline of plan, then classifies and packs. A map set beforehand
// with Set*Map is kept when its plan entry is empty.
func (w *World) Generate(plan Plan) error {
	if w.grid == nil {
		if err := w.InitializeGrid(); err != nil {
			return fmt.Errorf("Generate: %w", err)
		}
	}
	stages := []struct {
		steps []noise.Step
		run   func(...noise.Step) (noise.Result, error)
	}{
		{plan.Height, w.GenerateHeight},
		{plan.Temperature, w.GenerateTemperature},
		{plan.Moisture, w.GenerateMoisture},
	}
	for _, st := range stages {
		if len(st.steps) == 0 {
			continue
		}
		if _, err := st.run(st.steps...); err != nil {
			return fmt.Errorf("Generate: %w", err)
		}
	}
	if err := w.Classify(); err != nil {
		return fmt.Errorf("Generate: %w", err)
	}
	if err := w.InitializePack(); err != nil {
		return fmt.Errorf("Generate: %w", err)
	}
	w.log.Info("world generated", "id", w.id.String())
	return nil
}
