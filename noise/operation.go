// SPDX-License-Identifier: MIT
// Package: terra/noise
//
// operation.go — the Operation contract, Settings and Params.
//
// Contract:
//   • Settings carries the recognized generator knobs; zero fields fall back
//     to DefaultSettings when an operation calls Resolve.
//   • Params and Settings.Extra are free-form; typed accessors accept any Go
//     numeric type and fail with ErrBadSettings on anything else.

package noise

import (
	"fmt"
	"math"

	"github.com/katalvlaran/terra/field"
)

// Operation transforms a field. in is a private copy; an Operation may
// modify and return it.
type Operation interface {
	Apply(in *field.Field, s Settings, p Params) (*field.Field, error)
}

// OperationFunc adapts a plain function to Operation.
type OperationFunc func(in *field.Field, s Settings, p Params) (*field.Field, error)

// Apply calls f.
func (f OperationFunc) Apply(in *field.Field, s Settings, p Params) (*field.Field, error) {
	return f(in, s, p)
}

// Settings is the recognized-options bundle.
type Settings struct {
	Scale       float64 // feature size in cells; larger → smoother
	Amplitude   float64 // weight of the generated noise
	Octaves     int     // summed layers
	Persistence float64 // amplitude ratio between octaves
	Lacunarity  float64 // frequency ratio between octaves
	Seed        int64
	Extra       map[string]any // operation-specific extensions
}

// DefaultSettings returns the values Resolve substitutes for zero fields.
func DefaultSettings() Settings {
	return Settings{
		Scale:       100,
		Amplitude:   1,
		Octaves:     1,
		Persistence: 0.5,
		Lacunarity:  2,
	}
}

// Resolve fills zero fields from DefaultSettings and validates the rest.
// Returns ErrBadSettings for negative or non-finite values.
func (s Settings) Resolve() (Settings, error) {
	d := DefaultSettings()
	if s.Scale == 0 {
		s.Scale = d.Scale
	}
	if s.Amplitude == 0 {
		s.Amplitude = d.Amplitude
	}
	if s.Octaves == 0 {
		s.Octaves = d.Octaves
	}
	if s.Persistence == 0 {
		s.Persistence = d.Persistence
	}
	if s.Lacunarity == 0 {
		s.Lacunarity = d.Lacunarity
	}

	switch {
	case !positive(s.Scale):
		return s, fmt.Errorf("scale %g: %w", s.Scale, ErrBadSettings)
	case math.IsNaN(s.Amplitude) || math.IsInf(s.Amplitude, 0):
		return s, fmt.Errorf("amplitude %g: %w", s.Amplitude, ErrBadSettings)
	case s.Octaves < 1:
		return s, fmt.Errorf("octaves %d: %w", s.Octaves, ErrBadSettings)
	case !positive(s.Persistence):
		return s, fmt.Errorf("persistence %g: %w", s.Persistence, ErrBadSettings)
	case !positive(s.Lacunarity):
		return s, fmt.Errorf("lacunarity %g: %w", s.Lacunarity, ErrBadSettings)
	}

	return s, nil
}

func positive(v float64) bool { return v > 0 && !math.IsInf(v, 1) }

// Float reads Extra[key]; def if absent.
func (s Settings) Float(key string, def float64) (float64, error) { return floatOf(s.Extra, key, def) }

// Int reads Extra[key]; def if absent.
func (s Settings) Int(key string, def int) (int, error) { return intOf(s.Extra, key, def) }

// Bool reads Extra[key]; def if absent.
func (s Settings) Bool(key string, def bool) (bool, error) { return boolOf(s.Extra, key, def) }

// Params are named extra parameters (row_offset, col_offset, value, ...).
type Params map[string]any

// Recognized parameter keys.
const (
	ParamRowOffset = "row_offset"
	ParamColOffset = "col_offset"
	ParamValue     = "value"
	ParamMin       = "min"
	ParamMax       = "max"
	ParamPasses    = "passes"
)

// Float reads p[key]; def if absent.
func (p Params) Float(key string, def float64) (float64, error) { return floatOf(p, key, def) }

// Int reads p[key]; def if absent.
func (p Params) Int(key string, def int) (int, error) { return intOf(p, key, def) }

// Bool reads p[key]; def if absent.
func (p Params) Bool(key string, def bool) (bool, error) { return boolOf(p, key, def) }

// With returns a copy of p with key set to v.
func (p Params) With(key string, v any) Params {
	out := make(Params, len(p)+1)
	for k, x := range p {
		out[k] = x
	}
	out[key] = v
	return out
}

func floatOf(m map[string]any, key string, def float64) (float64, error) {
	v, ok := m[key]
	if !ok {
		return def, nil
	}
	switch x := v.(type) {
	case float64:
		return x, nil
	case float32:
		return float64(x), nil
	case int:
		return float64(x), nil
	case int32:
		return float64(x), nil
	case int64:
		return float64(x), nil
	case uint:
		return float64(x), nil
	case uint64:
		return float64(x), nil
	}
	return def, fmt.Errorf("%s: %T is not a number: %w", key, v, ErrBadSettings)
}

func intOf(m map[string]any, key string, def int) (int, error) {
	v, ok := m[key]
	if !ok {
		return def, nil
	}
	switch x := v.(type) {
	case int:
		return x, nil
	case int32:
		return int(x), nil
	case int64:
		return int(x), nil
	case uint:
		return int(x), nil
	case uint64:
		return int(x), nil
	case float64:
		if x == math.Trunc(x) {
			return int(x), nil
		}
	}
	return def, fmt.Errorf("%s: %v is not an integer: %w", key, v, ErrBadSettings)
}

func boolOf(m map[string]any, key string, def bool) (bool, error) {
	v, ok := m[key]
	if !ok {
		return def, nil
	}
	b, ok := v.(bool)
	if !ok {
		return def, fmt.Errorf("%s: %T is not a bool: %w", key, v, ErrBadSettings)
	}
	return b, nil
}
