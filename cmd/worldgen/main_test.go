package main

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/katalvlaran/terra/config"
	"github.com/katalvlaran/terra/field"
	"github.com/katalvlaran/terra/noise"
	"github.com/katalvlaran/terra/world"
	"github.com/stretchr/testify/require"
)

func TestChunkedRun_MatchesSingleBand(t *testing.T) {
	quiet := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
	steps := world.DefaultPlan(11).Height

	single := noise.NewDefaultRegistry(noise.WithLogger(quiet))
	want, err := single.Run(mustZero(t, 10, 7), steps...)
	require.NoError(t, err)

	banded := noise.NewDefaultRegistry(noise.WithWorkers(3), noise.WithLogger(quiet))
	got, err := chunkedRun(context.Background(), banded, 10, 7, steps)
	require.NoError(t, err)
	require.InDeltaSlice(t, want.Final.Values(), got.Values(), 1e-12)
}

func TestChunkedRun_UnknownOperation(t *testing.T) {
	reg := noise.NewRegistry(noise.WithWorkers(2), noise.WithLogger(slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))))
	_, err := chunkedRun(context.Background(), reg, 4, 4, []noise.Step{{Name: "missing"}})
	require.ErrorIs(t, err, noise.ErrUnknownOperation)
}

func TestRun_WritesConfigAndSummary(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "terra.toml")
	cfg := config.Default()
	cfg.Logger.Level = "ERROR"
	cfg.NoiseGenerator.NumProcesses = 2
	require.NoError(t, config.Write(cfgPath, cfg))

	var out bytes.Buffer
	err := run([]string{"-config", cfgPath, "-width", "12", "-height", "8", "-seed", "3", "-write-config"}, &out)
	require.NoError(t, err)
	require.Contains(t, out.String(), "biome matrix (26x5, ids):")
	require.Contains(t, out.String(), "biomes:")
	require.Contains(t, out.String(), "features:")

	written, err := config.Load(cfgPath)
	require.NoError(t, err)
	require.Equal(t, 12, written.World.Width)
	require.Equal(t, 8, written.World.Height)
	require.Equal(t, int64(3), written.World.Seed)
}

func TestRun_Errors(t *testing.T) {
	dir := t.TempDir()
	var out bytes.Buffer

	err := run([]string{"-config", filepath.Join(dir, "none.toml"), "-width", "-1"}, &out)
	require.ErrorIs(t, err, config.ErrInvalidConfig)

	bad := filepath.Join(dir, "biomes.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("- not a mapping\n"), 0o644))
	err = run([]string{"-config", filepath.Join(dir, "none.toml"), "-biomes", bad}, &out)
	require.Error(t, err)
}

func mustZero(t *testing.T, rows, cols int) *field.Field {
	t.Helper()
	f, err := field.New(rows, cols)
	require.NoError(t, err)
	return f
}
