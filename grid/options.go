// SPDX-License-Identifier: MIT
// Package: terra/grid
//
// options.go — functional options for Build.
//
// Contract:
//   • Option constructors panic on meaningless values (programmer error);
//     Build itself only returns sentinel errors.
//   • Defaults: Conn8, spacing 1, no jitter.

package grid

import "math"

const (
	// DefaultSpacing is the distance between neighboring cell centres.
	DefaultSpacing = 1.0

	// DefaultConnectivity is the neighbor model used when none is given.
	DefaultConnectivity = Conn8
)

type buildConfig struct {
	conn    Connectivity
	spacing float64
	jitter  float64 // fraction of half-spacing, in [0,1]
	seed    int64
}

func defaultConfig() buildConfig {
	return buildConfig{conn: DefaultConnectivity, spacing: DefaultSpacing}
}

// Option customizes grid construction.
type Option func(*buildConfig)

// WithConnectivity selects Conn4 or Conn8 adjacency.
func WithConnectivity(c Connectivity) Option {
	if c != Conn4 && c != Conn8 {
		panic("grid: WithConnectivity: unknown connectivity")
	}
	return func(cfg *buildConfig) { cfg.conn = c }
}

// WithSpacing sets the distance between cell centres used by Points and Boundary.
func WithSpacing(s float64) Option {
	if !(s > 0) || math.IsInf(s, 0) {
		panic("grid: WithSpacing: spacing must be finite and > 0")
	}
	return func(cfg *buildConfig) { cfg.spacing = s }
}

// WithJitter displaces each cell centre by up to amount×spacing/2 on each
// axis, using a deterministic source seeded with seed.
func WithJitter(seed int64, amount float64) Option {
	if amount < 0 || amount > 1 || math.IsNaN(amount) {
		panic("grid: WithJitter: amount must be in [0,1]")
	}
	return func(cfg *buildConfig) {
		cfg.seed = seed
		cfg.jitter = amount
	}
}
