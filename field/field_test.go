package field_test

import (
	"testing"

	"github.com/katalvlaran/terra/field"
	"github.com/stretchr/testify/require"
)

func TestNew_Errors(t *testing.T) {
	cases := []struct {
		name       string
		rows, cols int
	}{
		{"ZeroRows", 0, 3},
		{"ZeroCols", 3, 0},
		{"Negative", -1, 2},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := field.New(tc.rows, tc.cols)
			require.ErrorIs(t, err, field.ErrBadShape)
		})
	}
}

func TestFromRows(t *testing.T) {
	src := [][]float64{{1, 2, 3}, {4, 5, 6}}
	f, err := field.FromRows(src)
	require.NoError(t, err)
	require.Equal(t, 2, f.Rows())
	require.Equal(t, 3, f.Cols())

	// Deep copy: mutating the source must not leak into the field.
	src[0][0] = 99
	v, err := f.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, 1.0, v)
	require.Equal(t, [][]float64{{1, 2, 3}, {4, 5, 6}}, f.ToRows())

	_, err = field.FromRows([][]float64{{1, 2}, {3}})
	require.ErrorIs(t, err, field.ErrNonRectangular)
	_, err = field.FromRows(nil)
	require.ErrorIs(t, err, field.ErrBadShape)
}

func TestAtSet_OutOfRange(t *testing.T) {
	f, err := field.New(2, 2)
	require.NoError(t, err)
	require.NoError(t, f.Set(1, 1, 7))
	v, err := f.At(1, 1)
	require.NoError(t, err)
	require.Equal(t, 7.0, v)

	_, err = f.At(2, 0)
	require.ErrorIs(t, err, field.ErrOutOfRange)
	require.ErrorIs(t, f.Set(0, -1, 1), field.ErrOutOfRange)
}

func TestKernels_DoNotMutateReceiver(t *testing.T) {
	f, err := field.FromRows([][]float64{{-1, 0}, {0.5, 1}})
	require.NoError(t, err)
	before := f.Values()

	_ = f.AddScalar(3)
	_ = f.Scale(2)
	_ = f.Clamp(0, 0.5)
	_ = f.Rescale(0, 100)
	_, _ = f.Normalize()
	_ = f.Map(func(_, _ int, v float64) float64 { return v * v })

	require.Equal(t, before, f.Values())
}

func TestKernels_Values(t *testing.T) {
	f, err := field.FromRows([][]float64{{-1, 0}, {0.5, 1}})
	require.NoError(t, err)

	require.Equal(t, []float64{2, 3, 3.5, 4}, f.AddScalar(3).Values())
	require.Equal(t, []float64{-2, 0, 1, 2}, f.Scale(2).Values())
	require.Equal(t, []float64{0, 0, 0.5, 0.5}, f.Clamp(0.5, 0).Values())
	require.Equal(t, []float64{0, 50, 75, 100}, f.Rescale(0, 100).Values())

	n, err := f.Normalize()
	require.NoError(t, err)
	require.Equal(t, []float64{0, 0.5, 0.75, 1}, n.Values())

	lo, hi := f.MinMax()
	require.Equal(t, -1.0, lo)
	require.Equal(t, 1.0, hi)
	require.Equal(t, 0.5, f.Sum())
	require.Equal(t, 0.125, f.Mean())
}

func TestNormalize_Flat(t *testing.T) {
	f, err := field.Fill(3, 3, 5)
	require.NoError(t, err)
	_, err = f.Normalize()
	require.ErrorIs(t, err, field.ErrFlat)
}

func TestAdd_DimensionMismatch(t *testing.T) {
	a, _ := field.New(2, 2)
	b, _ := field.New(2, 3)
	_, err := a.Add(b)
	require.ErrorIs(t, err, field.ErrDimensionMismatch)

	c, _ := field.Fill(2, 2, 1)
	sum, err := a.Add(c)
	require.NoError(t, err)
	require.Equal(t, []float64{1, 1, 1, 1}, sum.Values())
}
