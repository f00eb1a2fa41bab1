package world_test

import (
	"bytes"
	"log/slog"
	"math"
	"testing"

	"github.com/google/uuid"
	"github.com/katalvlaran/terra/biome"
	"github.com/katalvlaran/terra/config"
	"github.com/katalvlaran/terra/field"
	"github.com/katalvlaran/terra/grid"
	"github.com/katalvlaran/terra/noise"
	"github.com/katalvlaran/terra/pack"
	"github.com/katalvlaran/terra/world"
	"github.com/stretchr/testify/require"
)

func quiet() *slog.Logger { return slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil)) }

// constantOp fills its input with v.
func constantOp(v float64) noise.Operation {
	return noise.OperationFunc(func(in *field.Field, _ noise.Settings, _ noise.Params) (*field.Field, error) {
		return in.Map(func(_, _ int, _ float64) float64 { return v }), nil
	})
}

func singleBiomeCatalog(t *testing.T, name string) *biome.Catalog {
	t.Helper()
	c := biome.NewCatalog(biome.WithLogger(quiet()))
	require.NoError(t, c.Add(biome.Biome{
		ID: 1, Name: name, Type: biome.Basic,
		Temp: biome.NewRange(0, 10), Moisture: biome.NewRange(0, 10),
	}))
	return c
}

// TestEndToEnd_ConstantFill builds a 3×3 grid, fills the height map with 5.0
// through a registered operation and classifies against a single biome
// spanning the full range.
func TestEndToEnd_ConstantFill(t *testing.T) {
	reg := noise.NewRegistry(noise.WithLogger(quiet()))
	require.NoError(t, reg.Register("five", constantOp(5)))

	w, err := world.New(3, 3, world.WithRegistry(reg),
		world.WithCatalog(singleBiomeCatalog(t, "Everywhere")), world.WithLogger(quiet()))
	require.NoError(t, err)
	require.NoError(t, w.InitializeGrid())

	_, err = w.GenerateHeight(noise.Step{Name: "five"})
	require.NoError(t, err)
	h, err := w.HeightMap()
	require.NoError(t, err)
	for _, v := range h.Values() {
		require.Equal(t, 5.0, v)
	}

	// Matrix-level classification of every height value.
	m, err := biome.NewMatrix(biome.DefaultRows, biome.DefaultColumns)
	require.NoError(t, err)
	require.NoError(t, m.AddBiome("Everywhere", biome.NewRange(0, 10), biome.NewRange(0, 10)))
	g, err := w.Grid()
	require.NoError(t, err)
	g.Each(func(c *grid.Cell) {
		v, ok := c.Height.Get()
		require.True(t, ok)
		require.Equal(t, 5.0, v)
		name, err := m.GetBiome(v, v)
		require.NoError(t, err)
		require.Equal(t, "Everywhere", name)
	})

	// World-level classification with the same climate.
	_, err = w.GenerateTemperature(noise.Step{Name: "five"})
	require.NoError(t, err)
	_, err = w.GenerateMoisture(noise.Step{Name: "five"})
	require.NoError(t, err)
	require.NoError(t, w.Classify())
	g.Each(func(c *grid.Cell) {
		b, ok := c.Biome.Get()
		require.True(t, ok)
		require.Equal(t, "Everywhere", b)
		terrain, _ := c.Terrain.Get()
		require.Equal(t, grid.Land, terrain)
	})
}

func TestNew(t *testing.T) {
	_, err := world.New(0, 4)
	require.ErrorIs(t, err, world.ErrBadShape)

	w, err := world.New(4, 2, world.WithLogger(quiet()))
	require.NoError(t, err)
	require.Equal(t, world.DefaultName, w.Name())
	require.NotEqual(t, uuid.Nil, w.ID())
	require.NotNil(t, w.Registry())
	require.Nil(t, w.Catalog())

	id := uuid.New()
	w, err = world.New(4, 2, world.WithID(id), world.WithName("Pangaea"), world.WithSeed(9), world.WithLogger(quiet()))
	require.NoError(t, err)
	require.Equal(t, id, w.ID())
	require.Equal(t, "Pangaea", w.Name())
	require.Equal(t, int64(9), w.Seed())
	require.Contains(t, w.String(), "Pangaea")
}

func TestOptions_Panic(t *testing.T) {
	require.Panics(t, func() { world.WithName("") })
	require.Panics(t, func() { world.WithID(uuid.Nil) })
	require.Panics(t, func() { world.WithSeaLevel(math.NaN()) })
	require.Panics(t, func() { world.WithRegistry(nil) })
	require.Panics(t, func() { world.WithCatalog(nil) })
}

func TestNotInitialized(t *testing.T) {
	w, err := world.New(3, 3, world.WithLogger(quiet()))
	require.NoError(t, err)

	_, err = w.Grid()
	require.ErrorIs(t, err, world.ErrNotInitialized)
	_, err = w.Pack()
	require.ErrorIs(t, err, world.ErrNotInitialized)
	require.ErrorIs(t, w.InitializePack(), world.ErrNotInitialized)
	_, err = w.GenerateHeight()
	require.ErrorIs(t, err, world.ErrNotInitialized)
	require.ErrorIs(t, w.Classify(), world.ErrNotInitialized)

	require.NoError(t, w.InitializeGrid())
	require.ErrorIs(t, w.UpdateTemperatureMap(1), world.ErrNotInitialized)
	require.ErrorIs(t, w.UpdateMoistureMap(-1), world.ErrNotInitialized)
	_, err = w.TemperatureMap()
	require.ErrorIs(t, err, world.ErrNotInitialized)
	require.ErrorIs(t, w.Classify(), world.ErrNotInitialized, "no catalog")

	require.ErrorIs(t, w.InitializePack(), pack.ErrNotClassified)
}

func TestUpdateModifiers(t *testing.T) {
	w, err := world.New(2, 2, world.WithLogger(quiet()))
	require.NoError(t, err)
	require.NoError(t, w.InitializeGrid())

	ones, _ := field.Fill(2, 2, 1)
	require.NoError(t, w.SetTemperatureMap(ones))
	require.NoError(t, w.SetMoistureMap(ones))
	require.NoError(t, ones.Set(0, 0, 99)) // stored map is a copy

	require.NoError(t, w.UpdateTemperatureMap(2))
	require.NoError(t, w.UpdateMoistureMap(-0.5))

	tm, err := w.TemperatureMap()
	require.NoError(t, err)
	require.Equal(t, []float64{3, 3, 3, 3}, tm.Values())
	mm, err := w.MoistureMap()
	require.NoError(t, err)
	require.Equal(t, []float64{0.5, 0.5, 0.5, 0.5}, mm.Values())

	g, _ := w.Grid()
	c, _ := g.CellAt(1, 1)
	v, _ := c.Temperature.Get()
	require.Equal(t, 3.0, v)
}

func TestSetMap_DimensionMismatch(t *testing.T) {
	w, err := world.New(3, 2, world.WithLogger(quiet()))
	require.NoError(t, err)
	f, _ := field.New(2, 3)
	require.ErrorIs(t, w.SetHeightMap(f), world.ErrNotInitialized)

	require.NoError(t, w.InitializeGrid())
	require.NoError(t, w.SetHeightMap(f))
	wrong, _ := field.New(3, 2)
	require.ErrorIs(t, w.SetHeightMap(wrong), world.ErrDimensionMismatch)
	require.ErrorIs(t, w.SetHeightMap(nil), world.ErrDimensionMismatch)
}

func TestClassify_SeaLevelAndWaterBiome(t *testing.T) {
	cat, err := biome.Defaults(biome.WithLogger(quiet()))
	require.NoError(t, err)

	w, err := world.New(2, 1, world.WithCatalog(cat), world.WithSeaLevel(0.5),
		world.WithWaterBiome(biome.DefaultWaterBiome), world.WithLogger(quiet()))
	require.NoError(t, err)
	require.NoError(t, w.InitializeGrid())

	h, _ := field.FromRows([][]float64{{0.2, 0.9}})
	t0, _ := field.FromRows([][]float64{{40, 40}})
	m0, _ := field.FromRows([][]float64{{0, 0}})
	require.NoError(t, w.SetHeightMap(h))
	require.NoError(t, w.SetTemperatureMap(t0))
	require.NoError(t, w.SetMoistureMap(m0))
	require.NoError(t, w.Classify())

	g, _ := w.Grid()
	water, _ := g.CellAt(0, 0)
	land, _ := g.CellAt(0, 1)
	require.Equal(t, grid.Water, water.Terrain.OrElse(""))
	require.Equal(t, "Marine", water.Biome.OrElse(""))
	require.Equal(t, grid.Land, land.Terrain.OrElse(""))
	require.Equal(t, "Hot desert", land.Biome.OrElse(""))

	bad, err := world.New(2, 1, world.WithCatalog(cat), world.WithWaterBiome("Atlantis"), world.WithLogger(quiet()))
	require.NoError(t, err)
	require.NoError(t, bad.InitializeGrid())
	require.NoError(t, bad.SetHeightMap(h))
	require.NoError(t, bad.SetTemperatureMap(t0))
	require.NoError(t, bad.SetMoistureMap(m0))
	require.ErrorIs(t, bad.Classify(), biome.ErrBiomeNotFound)
}

func TestGenerate_DefaultPlan(t *testing.T) {
	cat, err := biome.Defaults(biome.WithLogger(quiet()))
	require.NoError(t, err)

	build := func(seed int64) *world.World {
		w, err := world.New(24, 16, world.WithSeed(seed), world.WithCatalog(cat),
			world.WithWaterBiome(biome.DefaultWaterBiome), world.WithLogger(quiet()))
		require.NoError(t, err)
		require.NoError(t, w.Generate(world.DefaultPlan(w.Seed())))
		return w
	}
	a, b := build(7), build(7)

	ha, err := a.HeightMap()
	require.NoError(t, err)
	hb, _ := b.HeightMap()
	require.Equal(t, ha.Values(), hb.Values(), "same seed, same terrain")
	require.NotEqual(t, a.ID(), b.ID())

	lo, hi := ha.MinMax()
	require.GreaterOrEqual(t, lo, -1.0)
	require.LessOrEqual(t, hi, 1.0)

	p, err := a.Pack()
	require.NoError(t, err)
	require.Equal(t, 24*16, p.Len())
	total := 0
	for _, n := range p.BiomeCounts() {
		total += n
	}
	require.Equal(t, p.Len(), total, "every cell has a biome")
	for i := 0; i < p.Len(); i++ {
		c, _ := p.Cell(i)
		if c.Terrain == grid.Water {
			require.Equal(t, "Marine", c.Biome)
		}
		require.NotZero(t, c.Feature)
	}

	tm, _ := a.TemperatureMap()
	tlo, thi := tm.MinMax()
	require.GreaterOrEqual(t, tlo, world.DefaultTemperatureRange.Min())
	require.LessOrEqual(t, thi, world.DefaultTemperatureRange.Max())
}

func TestGenerate_KeepsPresetMaps(t *testing.T) {
	w, err := world.New(3, 3, world.WithCatalog(singleBiomeCatalog(t, "Flat")), world.WithLogger(quiet()))
	require.NoError(t, err)
	require.NoError(t, w.InitializeGrid())

	fives, _ := field.Fill(3, 3, 5)
	require.NoError(t, w.SetTemperatureMap(fives))
	require.NoError(t, w.SetMoistureMap(fives))

	plan := world.Plan{Height: []noise.Step{{Name: noise.OpConstant, Params: noise.Params{noise.ParamValue: 1.0}}}}
	require.NoError(t, w.Generate(plan))
	p, err := w.Pack()
	require.NoError(t, err)
	require.Equal(t, map[string]int{"Flat": 9}, p.BiomeCounts())
	require.Equal(t, map[pack.FeatureType]int{pack.Island: 1}, p.FeatureCounts())
}

func TestWithConfig(t *testing.T) {
	cfg := config.Default()
	cfg.World.Name = "Configured"
	cfg.World.Connectivity = 4
	cfg.World.Seed = 5

	w, err := world.New(3, 3, world.WithConfig(cfg), world.WithLogger(quiet()))
	require.NoError(t, err)
	require.NoError(t, w.InitializeGrid())
	g, _ := w.Grid()
	require.Equal(t, grid.Conn4, g.Connectivity())
	require.Equal(t, "Configured", w.Name())
	require.Equal(t, int64(5), w.Seed())
}
