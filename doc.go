// Package terra is the core of a procedural world-surface generator: a
// rectangular grid of cells, noise pipelines that fill elevation and climate
// maps, and a temperature × moisture matrix that classifies every cell into
// a biome.
//
// What is in the box?
//
//	field/  — dense row-major float64 maps, element-wise kernels, row-band chunking
//	grid/   — Cell, Grid, Conn4/Conn8 adjacency, components, jittered points
//	biome/  — Biome, Matrix (classification), Catalog (loading, lookup, export)
//	noise/  — Operation registry, built-in generators, pipelines with history
//	pack/   — immutable CSR snapshot with ocean, lake and island features
//	world/  — World orchestrator: grid → height → climate → classify → pack
//	config/ — TOML configuration and slog logger construction
//
// A minimal run:
//
//	cat, _ := biome.Defaults()
//	w, _ := world.New(64, 48, world.WithSeed(42), world.WithCatalog(cat),
//		world.WithWaterBiome(biome.DefaultWaterBiome))
//	_ = w.Generate(world.DefaultPlan(w.Seed()))
//	p, _ := w.Pack()
//	fmt.Println(p.BiomeCounts())
//
// Every package reports failures through sentinel errors wrapped with
// method context; match them with errors.Is. Nothing logs through a global
// except when no *slog.Logger is supplied, in which case slog.Default()
// is used.
//
// See cmd/worldgen for a command-line driver.
package terra
