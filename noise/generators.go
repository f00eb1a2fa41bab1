// SPDX-License-Identifier: MIT
// Package: terra/noise
//
// generators.go — coherent noise (perlin, simplex) and gaussian smoothing.
//
// Contract:
//   • Generators add Amplitude × n(x, y) to the input, where n is the octave
//     sum normalized by its total weight, so |n| stays within the base
//     generator's range.
//   • Sample point of (row, col) is ((col+col_offset)/Scale, (row+row_offset)/Scale).
//   • Output depends only on Settings, Params and global coordinates, never
//     on the field's own extent.

package noise

import (
	"encoding/binary"
	"fmt"

	"github.com/aquilax/go-perlin"
	"github.com/cespare/xxhash/v2"
	"github.com/katalvlaran/terra/field"
	"github.com/ojrac/opensimplex-go"
)

// offsets reads row_offset and col_offset (default 0).
func offsets(op string, p Params) (row, col int, err error) {
	if row, err = p.Int(ParamRowOffset, 0); err != nil {
		return 0, 0, fmt.Errorf("%s: %w", op, err)
	}
	if col, err = p.Int(ParamColOffset, 0); err != nil {
		return 0, 0, fmt.Errorf("%s: %w", op, err)
	}
	return row, col, nil
}

// octaveWeight returns Σ persistence^i for i < octaves.
func octaveWeight(s Settings) float64 {
	w, amp := 0.0, 1.0
	for i := 0; i < s.Octaves; i++ {
		w += amp
		amp *= s.Persistence
	}
	return w
}

func perlinOp(in *field.Field, s Settings, p Params) (*field.Field, error) {
	s, err := s.Resolve()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", OpPerlin, err)
	}
	rowOff, colOff, err := offsets(OpPerlin, p)
	if err != nil {
		return nil, err
	}

	// go-perlin weights octave i by 1/alpha^i and multiplies frequency by beta.
	gen := perlin.NewPerlin(1/s.Persistence, s.Lacunarity, int32(s.Octaves), s.Seed)
	norm := octaveWeight(s)

	return in.Map(func(r, c int, v float64) float64 {
		x := float64(c+colOff) / s.Scale
		y := float64(r+rowOff) / s.Scale
		return v + s.Amplitude*gen.Noise2D(x, y)/norm
	}), nil
}

func simplexOp(in *field.Field, s Settings, p Params) (*field.Field, error) {
	s, err := s.Resolve()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", OpSimplex, err)
	}
	rowOff, colOff, err := offsets(OpSimplex, p)
	if err != nil {
		return nil, err
	}

	gen := opensimplex.New(s.Seed)
	norm := octaveWeight(s)

	return in.Map(func(r, c int, v float64) float64 {
		x := float64(c+colOff) / s.Scale
		y := float64(r+rowOff) / s.Scale
		sum, amp, freq := 0.0, 1.0, 1.0
		for o := 0; o < s.Octaves; o++ {
			sum += amp * gen.Eval2(x*freq, y*freq)
			amp *= s.Persistence
			freq *= s.Lacunarity
		}
		return v + s.Amplitude*sum/norm
	}), nil
}

// smoothRadius is the half-width of gaussianKernel.
const smoothRadius = 2

// gaussianKernel is a 5×5 gaussian with peak 4 at the centre.
var gaussianKernel = [5][5]float64{
	{1.4715177646858, 2.141045714076, 2.4261226388505, 2.141045714076, 1.4715177646858},
	{2.141045714076, 3.1152031322856, 3.5299876103384, 3.1152031322856, 2.141045714076},
	{2.4261226388505, 3.5299876103384, 4, 3.5299876103384, 2.4261226388505},
	{2.141045714076, 3.1152031322856, 3.5299876103384, 3.1152031322856, 2.141045714076},
	{1.4715177646858, 2.141045714076, 2.4261226388505, 2.141045714076, 1.4715177646858},
}

// smoothOp blurs with gaussianKernel; weights are renormalized over the
// in-bounds window so edges do not darken. A constant field is a fixed point.
// The window reads neighbouring rows, so smooth is not seamless across chunks.
func smoothOp(in *field.Field, _ Settings, p Params) (*field.Field, error) {
	passes, err := p.Int(ParamPasses, 1)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", OpSmooth, err)
	}
	if passes < 0 {
		return nil, fmt.Errorf("%s: passes %d: %w", OpSmooth, passes, ErrBadSettings)
	}

	rows, cols := in.Shape()
	cur := in
	for ; passes > 0; passes-- {
		src := cur
		cur = src.Map(func(r, c int, _ float64) float64 {
			var sum, weight float64
			for dr := -smoothRadius; dr <= smoothRadius; dr++ {
				rr := r + dr
				if rr < 0 || rr >= rows {
					continue
				}
				for dc := -smoothRadius; dc <= smoothRadius; dc++ {
					cc := c + dc
					if cc < 0 || cc >= cols {
						continue
					}
					v, _ := src.At(rr, cc)
					w := gaussianKernel[dr+smoothRadius][dc+smoothRadius]
					sum += w * v
					weight += w
				}
			}
			return sum / weight
		})
	}

	return cur, nil
}

// DeriveSeed mixes base and label into an independent seed, so one world
// seed can drive separate height, temperature and moisture maps.
func DeriveSeed(base int64, label string) int64 {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], uint64(base))
	d := xxhash.New()
	_, _ = d.Write(buf[:])
	_, _ = d.WriteString(label)
	return int64(d.Sum64())
}
