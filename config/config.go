// SPDX-License-Identifier: MIT
// Package: terra/config
//
// config.go — Config sections, defaults, TOML load/write and validation.
//
// Contract:
//   • Load never returns a partially filled Config: zero fields are
//     back-filled from Default after decoding.
//   • Write creates parent directories as needed.

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"math"
	"os"
	"path/filepath"
	"time"

	"github.com/pelletier/go-toml"
)

// Config is the root of the configuration file.
type Config struct {
	Logger         Logger `toml:"Logger"`
	NoiseGenerator Noise  `toml:"NoiseGenerator"`
	World          World  `toml:"World"`
	Biomes         Biomes `toml:"Biomes"`
}

// Logger configures the slog logger built by Logger.New.
type Logger struct {
	Level      string `toml:"log_level"`
	File       string `toml:"log_file"`
	Timezone   string `toml:"timezone"`
	ClockStyle string `toml:"clock_style"`
}

// Noise configures the noise registry.
type Noise struct {
	// NumProcesses is the advisory worker count for chunked execution.
	NumProcesses int `toml:"num_processes"`
}

// Workers returns NumProcesses, at least 1.
func (n Noise) Workers() int {
	if n.NumProcesses < 1 {
		return 1
	}
	return n.NumProcesses
}

// World configures the generated world.
type World struct {
	Name         string  `toml:"name"`
	Width        int     `toml:"width"`
	Height       int     `toml:"height"`
	Seed         int64   `toml:"seed"`
	SeaLevel     float64 `toml:"sea_level"`
	Connectivity int     `toml:"connectivity"`
}

// Biomes configures the biome catalog.
type Biomes struct {
	Source        string `toml:"source"`
	MatrixRows    int    `toml:"matrix_rows"`
	MatrixColumns int    `toml:"matrix_columns"`
	WaterBiome    string `toml:"water_biome"`
}

// Clock styles.
const (
	Clock12 = "12"
	Clock24 = "24"
)

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Logger: Logger{
			Level:      "INFO",
			Timezone:   "UTC",
			ClockStyle: Clock12,
		},
		NoiseGenerator: Noise{NumProcesses: 1},
		World: World{
			Name:         "Unnamed World",
			Width:        64,
			Height:       48,
			Connectivity: 8,
		},
		Biomes: Biomes{
			MatrixRows:    26,
			MatrixColumns: 5,
			WaterBiome:    "Marine",
		},
	}
}

// Load reads the TOML file at path. A missing file yields Default.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Default(), nil
		}
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	return Parse(data)
}

// Parse decodes TOML text and back-fills zero fields from Default.
func Parse(data []byte) (Config, error) {
	var cfg Config
	if len(data) != 0 {
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("decode config: %w", err)
		}
	}
	cfg.backfill(Default())
	return cfg, nil
}

// backfill copies d into every zero field of c. Seed and SeaLevel have
// meaningful zero values and are left alone.
func (c *Config) backfill(d Config) {
	setStr := func(dst *string, v string) {
		if *dst == "" {
			*dst = v
		}
	}
	setInt := func(dst *int, v int) {
		if *dst == 0 {
			*dst = v
		}
	}
	setStr(&c.Logger.Level, d.Logger.Level)
	setStr(&c.Logger.Timezone, d.Logger.Timezone)
	setStr(&c.Logger.ClockStyle, d.Logger.ClockStyle)
	setInt(&c.NoiseGenerator.NumProcesses, d.NoiseGenerator.NumProcesses)
	setStr(&c.World.Name, d.World.Name)
	setInt(&c.World.Width, d.World.Width)
	setInt(&c.World.Height, d.World.Height)
	setInt(&c.World.Connectivity, d.World.Connectivity)
	setInt(&c.Biomes.MatrixRows, d.Biomes.MatrixRows)
	setInt(&c.Biomes.MatrixColumns, d.Biomes.MatrixColumns)
	setStr(&c.Biomes.WaterBiome, d.Biomes.WaterBiome)
}

// Write encodes cfg as TOML to path.
func Write(path string, cfg Config) error {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o777); err != nil {
			return fmt.Errorf("create config directory: %w", err)
		}
	}
	encoded, err := toml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	if err := os.WriteFile(path, encoded, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// Validate reports the first invalid value, wrapped in ErrInvalidConfig.
func (c Config) Validate() error {
	if _, err := parseLevel(c.Logger.Level); err != nil {
		return fmt.Errorf("Logger.log_level %q: %w", c.Logger.Level, ErrInvalidConfig)
	}
	if c.Logger.ClockStyle != Clock12 && c.Logger.ClockStyle != Clock24 {
		return fmt.Errorf("Logger.clock_style %q: %w", c.Logger.ClockStyle, ErrInvalidConfig)
	}
	if _, err := time.LoadLocation(c.Logger.Timezone); err != nil {
		return fmt.Errorf("Logger.timezone %q: %w", c.Logger.Timezone, ErrInvalidConfig)
	}
	if c.NoiseGenerator.NumProcesses < 0 {
		return fmt.Errorf("NoiseGenerator.num_processes %d: %w", c.NoiseGenerator.NumProcesses, ErrInvalidConfig)
	}
	if c.World.Width < 1 || c.World.Height < 1 {
		return fmt.Errorf("World size %dx%d: %w", c.World.Width, c.World.Height, ErrInvalidConfig)
	}
	if c.World.Connectivity != 4 && c.World.Connectivity != 8 {
		return fmt.Errorf("World.connectivity %d: %w", c.World.Connectivity, ErrInvalidConfig)
	}
	if math.IsNaN(c.World.SeaLevel) || math.IsInf(c.World.SeaLevel, 0) {
		return fmt.Errorf("World.sea_level %g: %w", c.World.SeaLevel, ErrInvalidConfig)
	}
	if c.Biomes.MatrixRows < 1 || c.Biomes.MatrixColumns < 1 {
		return fmt.Errorf("Biomes matrix %dx%d: %w", c.Biomes.MatrixRows, c.Biomes.MatrixColumns, ErrInvalidConfig)
	}
	return nil
}
