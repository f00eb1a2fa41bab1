// SPDX-License-Identifier: MIT
// Command worldgen generates one world surface and prints a summary.
//
//	worldgen -config terra.toml -biomes biomes.json -seed 42
//
// The height map is computed in disjoint row bands, one goroutine per
// configured worker; the climate maps, classification and packing follow.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"slices"

	"github.com/katalvlaran/terra/biome"
	"github.com/katalvlaran/terra/config"
	"github.com/katalvlaran/terra/field"
	"github.com/katalvlaran/terra/noise"
	"github.com/katalvlaran/terra/world"
	"golang.org/x/sync/errgroup"
)

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, "worldgen:", err)
		os.Exit(1)
	}
}

func run(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("worldgen", flag.ContinueOnError)
	var (
		cfgPath     = fs.String("config", "terra.toml", "TOML configuration file")
		biomesPath  = fs.String("biomes", "", "biome source (YAML/JSON); embedded defaults if empty")
		width       = fs.Int("width", 0, "override World.width")
		height      = fs.Int("height", 0, "override World.height")
		seed        = fs.Int64("seed", 0, "override World.seed")
		writeConfig = fs.Bool("write-config", false, "write the effective configuration back to -config")
	)
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		return err
	}
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "width":
			cfg.World.Width = *width
		case "height":
			cfg.World.Height = *height
		case "seed":
			cfg.World.Seed = *seed
		case "biomes":
			cfg.Biomes.Source = *biomesPath
		}
	})
	if err := cfg.Validate(); err != nil {
		return err
	}
	if *writeConfig {
		if err := config.Write(*cfgPath, cfg); err != nil {
			return err
		}
	}

	log, closer, err := cfg.Logger.New(os.Stderr)
	if err != nil {
		return err
	}
	defer closer.Close()

	cat, err := loadCatalog(cfg, log)
	if err != nil {
		return err
	}
	reg := noise.NewDefaultRegistry(noise.WithConfig(cfg.NoiseGenerator), noise.WithLogger(log))

	w, err := world.New(cfg.World.Width, cfg.World.Height,
		world.WithConfig(cfg), world.WithCatalog(cat), world.WithRegistry(reg), world.WithLogger(log))
	if err != nil {
		return err
	}
	if err := w.InitializeGrid(); err != nil {
		return err
	}

	plan := world.DefaultPlan(w.Seed())
	h, err := chunkedRun(context.Background(), reg, cfg.World.Height, cfg.World.Width, plan.Height)
	if err != nil {
		return err
	}
	if err := w.SetHeightMap(h); err != nil {
		return err
	}
	plan.Height = nil
	if err := w.Generate(plan); err != nil {
		return err
	}

	return summarize(out, w, cat)
}

// loadCatalog reads cfg.Biomes.Source, or the embedded defaults when unset.
func loadCatalog(cfg config.Config, log *slog.Logger) (*biome.Catalog, error) {
	opts := []biome.CatalogOption{
		biome.WithMatrixShape(cfg.Biomes.MatrixRows, cfg.Biomes.MatrixColumns),
		biome.WithLogger(log),
	}
	if cfg.Biomes.Source == "" {
		return biome.Defaults(opts...)
	}
	data, err := os.ReadFile(cfg.Biomes.Source)
	if err != nil {
		return nil, fmt.Errorf("read biomes: %w", err)
	}
	cat := biome.NewCatalog(opts...)
	if err := cat.LoadBytes(data); err != nil {
		return nil, err
	}
	return cat, nil
}

// chunkedRun runs steps over a zero rows×cols field split into one band per
// registry worker. Position-aware operations receive the band's row offset,
// so the stitched result equals a single-band run.
func chunkedRun(ctx context.Context, reg *noise.Registry, rows, cols int, steps []noise.Step) (*field.Field, error) {
	zero, err := field.New(rows, cols)
	if err != nil {
		return nil, err
	}
	chunks := field.Split(zero, reg.Workers())

	g, ctx := errgroup.WithContext(ctx)
	for i := range chunks {
		ch := &chunks[i]
		g.Go(func() error {
			cur := ch.Field
			for _, st := range steps {
				if err := ctx.Err(); err != nil {
					return err
				}
				next, err := reg.Execute(st.Name, cur, st.Settings, st.Params.With(noise.ParamRowOffset, ch.Offset))
				if err != nil {
					return fmt.Errorf("band at row %d: %w", ch.Offset, err)
				}
				cur = next
			}
			ch.Field = cur
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return field.Stitch(chunks, rows, cols)
}

func summarize(out io.Writer, w *world.World, cat *biome.Catalog) error {
	p, err := w.Pack()
	if err != nil {
		return err
	}
	fmt.Fprintln(out, w)
	fmt.Fprintf(out, "\nbiome matrix (%dx%d, ids):\n%s", cat.Matrix().Rows(), cat.Matrix().Cols(), cat.IndexString())

	fmt.Fprintln(out, "\nbiomes:")
	counts := p.BiomeCounts()
	names := make([]string, 0, len(counts))
	for name := range counts {
		names = append(names, name)
	}
	slices.Sort(names)
	for _, name := range names {
		fmt.Fprintf(out, "  %-28s %6d\n", name, counts[name])
	}

	fmt.Fprintln(out, "\nfeatures:")
	for _, f := range p.Features() {
		fmt.Fprintf(out, "  #%-4d %-7s cells=%-6d border=%t\n", f.ID, f.Type, len(f.Cells), f.Border)
	}
	return nil
}
