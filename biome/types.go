// SPDX-License-Identifier: MIT
// Package: terra/biome
//
// types.go — Range, Type, Options and the Biome definition.
//
// Contract:
//   • Range is inclusive on both ends; the empty range is (+Inf, −Inf) and
//     is the identity for Union.
//   • A Biome is immutable once added to a Catalog; accessors return copies
//     of its maps.

package biome

import (
	"fmt"
	"maps"
	"math"
)

// Range is an inclusive [min, max] interval.
type Range [2]float64

// NewRange returns [min, max] as given (no reordering).
func NewRange(min, max float64) Range { return Range{min, max} }

// EmptyRange returns the identity for Union.
func EmptyRange() Range { return Range{math.Inf(1), math.Inf(-1)} }

// Min returns the lower bound.
func (r Range) Min() float64 { return r[0] }

// Max returns the upper bound.
func (r Range) Max() float64 { return r[1] }

// Width returns max − min; negative for the empty range.
func (r Range) Width() float64 { return r[1] - r[0] }

// IsEmpty reports whether the range contains no value.
func (r Range) IsEmpty() bool { return !(r[0] <= r[1]) }

// Valid reports whether both bounds are finite and min ≤ max.
func (r Range) Valid() bool {
	return !math.IsInf(r[0], 0) && !math.IsInf(r[1], 0) &&
		!math.IsNaN(r[0]) && !math.IsNaN(r[1]) && r[0] <= r[1]
}

// Contains reports min ≤ v ≤ max. NaN is never contained.
func (r Range) Contains(v float64) bool { return r[0] <= v && v <= r[1] }

// Union returns the smallest range covering r and o.
func (r Range) Union(o Range) Range {
	return Range{math.Min(r[0], o[0]), math.Max(r[1], o[1])}
}

// Clamp pins v into r. The result for an empty range is undefined.
func (r Range) Clamp(v float64) float64 {
	if v < r[0] {
		return r[0]
	}
	if v > r[1] {
		return r[1]
	}
	return v
}

// normalize maps v into [0,1] relative to r.
// Returns ErrDivisionUndefined when r is empty or has zero width.
func (r Range) normalize(v float64) (float64, error) {
	w := r.Width()
	if r.IsEmpty() || w == 0 || math.IsInf(w, 0) {
		return 0, ErrDivisionUndefined
	}
	return (v - r[0]) / w, nil
}

// String renders "[min, max]".
func (r Range) String() string { return fmt.Sprintf("[%g, %g]", r[0], r[1]) }

// Type partitions the catalog.
type Type string

const (
	// Basic biomes always participate in matrix classification.
	Basic Type = "basic"
	// Special biomes are named-lookup only unless their options mark them climactic.
	Special Type = "special"
)

// SpecialCategory is the source category that selects Special.
const SpecialCategory = "Special"

// TypeOf maps a source category name to a Type.
func TypeOf(category string) Type {
	if category == SpecialCategory {
		return Special
	}
	return Basic
}

// Options is the free-form option bag of a biome definition.
type Options map[string]any

// OptHasOptions and OptClimactic are the option keys the package interprets.
const (
	OptHasOptions = "has_options"
	OptClimactic  = "climactic"
)

// Climactic reports whether the "climactic" option is boolean true.
func (o Options) Climactic() bool {
	v, ok := o[OptClimactic].(bool)
	return ok && v
}

// HasOptions reports false only for the absent-options placeholder.
func (o Options) HasOptions() bool {
	if len(o) == 0 {
		return false
	}
	if v, ok := o[OptHasOptions].(bool); ok && len(o) == 1 {
		return v
	}
	return true
}

// noOptions is stored for records whose source omits "options".
func noOptions() Options { return Options{OptHasOptions: false} }

// Biome is a named climate class.
type Biome struct {
	ID           int
	Name         string
	Type         Type
	Category     string // source category, "" when added directly
	Color        string
	Cost         int
	Habitability int
	Temp         Range
	Moisture     Range
	Icons        map[string]int
	Options      Options
	Extra        map[string]any // unknown source fields, preserved for Export
}

// AvgTemp returns the midpoint of Temp truncated toward zero.
func (b Biome) AvgTemp() int { return int((b.Temp[0] + b.Temp[1]) / 2) }

// AvgMoisture returns the midpoint of Moisture truncated toward zero.
func (b Biome) AvgMoisture() int { return int((b.Moisture[0] + b.Moisture[1]) / 2) }

// Climactic reports whether b participates in matrix classification.
func (b Biome) Climactic() bool { return b.Type == Basic || b.Options.Climactic() }

// Validate checks name and ranges. Returns ErrInvalidBiome.
func (b Biome) Validate() error {
	if b.Name == "" {
		return fmt.Errorf("Validate: empty name: %w", ErrInvalidBiome)
	}
	if !b.Temp.Valid() {
		return fmt.Errorf("Validate(%q): temperature %s: %w", b.Name, b.Temp, ErrInvalidBiome)
	}
	if !b.Moisture.Valid() {
		return fmt.Errorf("Validate(%q): moisture %s: %w", b.Name, b.Moisture, ErrInvalidBiome)
	}
	if b.Type != Basic && b.Type != Special {
		return fmt.Errorf("Validate(%q): type %q: %w", b.Name, b.Type, ErrInvalidBiome)
	}
	return nil
}

// clone deep-copies the maps so a stored Biome cannot be mutated through
// the caller's references.
func (b Biome) clone() Biome {
	b.Icons = maps.Clone(b.Icons)
	b.Options = maps.Clone(b.Options)
	b.Extra = maps.Clone(b.Extra)
	return b
}

// String renders a one-line summary.
func (b Biome) String() string {
	return fmt.Sprintf("Biome(id=%d, name=%q, type=%s, temp=%s, moisture=%s, cost=%d, habitability=%d)",
		b.ID, b.Name, b.Type, b.Temp, b.Moisture, b.Cost, b.Habitability)
}
