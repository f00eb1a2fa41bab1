// SPDX-License-Identifier: MIT
// Package: terra/noise
//
// builtins.go — the stock operations and their registration.
//
// Operations (Params in parentheses):
//   • constant  (value=0)        fill every element with value
//   • offset    (value=0)        add value
//   • scale     (value=1)        multiply by value
//   • clamp     (min=-1, max=1)  pin into [min, max]
//   • rescale   (min=0, max=1)   map [-1, 1] onto [min, max]
//   • normalize ()               map own min/max onto [0, 1]
//   • smooth    (passes=1)       5×5 gaussian blur
//   • perlin    (row_offset, col_offset)  add amplitude × Perlin noise
//   • simplex   (row_offset, col_offset)  add amplitude × OpenSimplex noise

package noise

import (
	"fmt"
	"log/slog"

	"github.com/katalvlaran/terra/field"
)

// Built-in operation names.
const (
	OpConstant  = "constant"
	OpOffset    = "offset"
	OpScale     = "scale"
	OpClamp     = "clamp"
	OpRescale   = "rescale"
	OpNormalize = "normalize"
	OpSmooth    = "smooth"
	OpPerlin    = "perlin"
	OpSimplex   = "simplex"
)

// Builtin pairs a stock operation with its registry name.
type Builtin struct {
	Name string
	Op   Operation
}

// Builtins returns the stock operations in registration order.
func Builtins() []Builtin {
	return []Builtin{
		{OpConstant, OperationFunc(constantOp)},
		{OpOffset, OperationFunc(offsetOp)},
		{OpScale, OperationFunc(scaleOp)},
		{OpClamp, OperationFunc(clampOp)},
		{OpRescale, OperationFunc(rescaleOp)},
		{OpNormalize, OperationFunc(normalizeOp)},
		{OpSmooth, OperationFunc(smoothOp)},
		{OpPerlin, OperationFunc(perlinOp)},
		{OpSimplex, OperationFunc(simplexOp)},
	}
}

// RegisterBuiltins adds every stock operation to r.
func RegisterBuiltins(r *Registry) {
	for _, b := range Builtins() {
		_ = r.Register(b.Name, b.Op) // names and ops are non-empty
	}
}

// NewDefaultRegistry returns a registry preloaded with the built-ins.
func NewDefaultRegistry(opts ...Option) *Registry {
	r := NewRegistry(opts...)
	RegisterBuiltins(r)
	r.log.Debug("noise registry ready", slog.Any("ops", r.List()), slog.Int("workers", r.Workers()))
	return r
}

func constantOp(in *field.Field, _ Settings, p Params) (*field.Field, error) {
	v, err := p.Float(ParamValue, 0)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", OpConstant, err)
	}
	return in.Map(func(_, _ int, _ float64) float64 { return v }), nil
}

func offsetOp(in *field.Field, _ Settings, p Params) (*field.Field, error) {
	v, err := p.Float(ParamValue, 0)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", OpOffset, err)
	}
	return in.AddScalar(v), nil
}

func scaleOp(in *field.Field, _ Settings, p Params) (*field.Field, error) {
	k, err := p.Float(ParamValue, 1)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", OpScale, err)
	}
	return in.Scale(k), nil
}

func bounds(op string, p Params, lo, hi float64) (float64, float64, error) {
	lo, err := p.Float(ParamMin, lo)
	if err != nil {
		return 0, 0, fmt.Errorf("%s: %w", op, err)
	}
	hi, err = p.Float(ParamMax, hi)
	if err != nil {
		return 0, 0, fmt.Errorf("%s: %w", op, err)
	}
	return lo, hi, nil
}

func clampOp(in *field.Field, _ Settings, p Params) (*field.Field, error) {
	lo, hi, err := bounds(OpClamp, p, -1, 1)
	if err != nil {
		return nil, err
	}
	return in.Clamp(lo, hi), nil
}

func rescaleOp(in *field.Field, _ Settings, p Params) (*field.Field, error) {
	lo, hi, err := bounds(OpRescale, p, 0, 1)
	if err != nil {
		return nil, err
	}
	return in.Rescale(lo, hi), nil
}

func normalizeOp(in *field.Field, _ Settings, _ Params) (*field.Field, error) {
	out, err := in.Normalize()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", OpNormalize, err)
	}
	return out, nil
}
