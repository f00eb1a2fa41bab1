package noise_test

import (
	"bytes"
	"errors"
	"log/slog"
	"sync"
	"testing"

	"github.com/katalvlaran/terra/config"
	"github.com/katalvlaran/terra/field"
	"github.com/katalvlaran/terra/noise"
	"github.com/stretchr/testify/require"
)

func quietRegistry(opts ...noise.Option) *noise.Registry {
	opts = append([]noise.Option{noise.WithLogger(slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil)))}, opts...)
	return noise.NewRegistry(opts...)
}

func mustField(t *testing.T, rows, cols int, v float64) *field.Field {
	t.Helper()
	f, err := field.Fill(rows, cols, v)
	require.NoError(t, err)
	return f
}

// fillOp returns an operation that overwrites its input with v in place.
func fillOp(v float64) noise.Operation {
	return noise.OperationFunc(func(in *field.Field, _ noise.Settings, _ noise.Params) (*field.Field, error) {
		for r := 0; r < in.Rows(); r++ {
			for c := 0; c < in.Cols(); c++ {
				_ = in.Set(r, c, v)
			}
		}
		return in, nil
	})
}

func TestExecute_UnknownOperation(t *testing.T) {
	r := quietRegistry()
	_, err := r.Execute("nonexistent", mustField(t, 2, 2, 0), noise.Settings{}, nil)
	require.ErrorIs(t, err, noise.ErrUnknownOperation)
}

func TestExecute_ReturnsOutputAndKeepsInput(t *testing.T) {
	r := quietRegistry()
	require.NoError(t, r.Register("five", fillOp(5)))

	in := mustField(t, 3, 3, 1)
	out, err := r.Execute("five", in, noise.Settings{}, nil)
	require.NoError(t, err)
	require.True(t, out.SameShape(in))
	for _, v := range out.Values() {
		require.Equal(t, 5.0, v)
	}
	for _, v := range in.Values() {
		require.Equal(t, 1.0, v, "input must not be mutated")
	}
}

func TestExecute_ShapeNotValidated(t *testing.T) {
	r := quietRegistry()
	wrong := noise.OperationFunc(func(_ *field.Field, _ noise.Settings, _ noise.Params) (*field.Field, error) {
		return field.New(1, 7)
	})
	require.NoError(t, r.Register("wrong", wrong))
	out, err := r.Execute("wrong", mustField(t, 3, 3, 0), noise.Settings{}, nil)
	require.NoError(t, err)
	require.Equal(t, 7, out.Cols())
}

func TestExecute_NilAndFailures(t *testing.T) {
	r := quietRegistry()
	require.NoError(t, r.Register("five", fillOp(5)))
	_, err := r.Execute("five", nil, noise.Settings{}, nil)
	require.ErrorIs(t, err, noise.ErrNilField)

	require.NoError(t, r.Register("nil", noise.OperationFunc(
		func(*field.Field, noise.Settings, noise.Params) (*field.Field, error) { return nil, nil })))
	_, err = r.Execute("nil", mustField(t, 1, 1, 0), noise.Settings{}, nil)
	require.ErrorIs(t, err, noise.ErrNilField)

	boom := errors.New("boom")
	require.NoError(t, r.Register("fail", noise.OperationFunc(
		func(*field.Field, noise.Settings, noise.Params) (*field.Field, error) { return nil, boom })))
	_, err = r.Execute("fail", mustField(t, 1, 1, 0), noise.Settings{}, nil)
	require.ErrorIs(t, err, boom)
}

func TestRegister_OrderAndIdempotence(t *testing.T) {
	r := quietRegistry()
	require.NoError(t, r.Register("a", fillOp(1)))
	require.NoError(t, r.Register("b", fillOp(2)))
	require.NoError(t, r.Register("c", fillOp(3)))
	require.NoError(t, r.Register("a", fillOp(9)))
	require.Equal(t, []string{"a", "b", "c"}, r.List())

	out, err := r.Execute("a", mustField(t, 1, 1, 0), noise.Settings{}, nil)
	require.NoError(t, err)
	require.Equal(t, []float64{9}, out.Values(), "re-registering overwrites")

	r.Deregister("b")
	r.Deregister("b")
	r.Deregister("never")
	require.Equal(t, []string{"a", "c"}, r.List())
	require.False(t, r.Has("b"))

	require.ErrorIs(t, r.Register("", fillOp(1)), noise.ErrInvalidOperation)
	require.ErrorIs(t, r.Register("x", nil), noise.ErrInvalidOperation)
}

func TestRegistry_Workers(t *testing.T) {
	require.Equal(t, 1, quietRegistry().Workers())
	require.Equal(t, 4, quietRegistry(noise.WithConfig(config.Noise{NumProcesses: 4})).Workers())
	require.Equal(t, 1, quietRegistry(noise.WithConfig(config.Noise{NumProcesses: 0})).Workers())
	require.Panics(t, func() { noise.WithWorkers(0) })
}

func TestExecute_Logged(t *testing.T) {
	var buf bytes.Buffer
	r := noise.NewRegistry(noise.WithLogger(slog.New(slog.NewTextHandler(&buf, nil))))
	require.NoError(t, r.Register("five", fillOp(5)))

	_, _ = r.Execute("five", mustField(t, 1, 1, 0), noise.Settings{}, nil)
	_, _ = r.Execute("ghost", mustField(t, 1, 1, 0), noise.Settings{}, nil)
	out := buf.String()
	require.Contains(t, out, "op=five")
	require.Contains(t, out, "op=ghost")
	require.Contains(t, out, "level=ERROR")
}

func TestRun_History(t *testing.T) {
	r := noise.NewDefaultRegistry(noise.WithLogger(slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))))
	in := mustField(t, 2, 2, 0)

	res, err := r.Run(in,
		noise.Step{Name: noise.OpConstant, Params: noise.Params{noise.ParamValue: 2.0}},
		noise.Step{Name: noise.OpOffset, Params: noise.Params{noise.ParamValue: 3}},
		noise.Step{Name: noise.OpScale, Params: noise.Params{noise.ParamValue: 10}},
	)
	require.NoError(t, err)
	require.Len(t, res.History, 3)
	require.Equal(t, []float64{2, 2, 2, 2}, res.History[0].Values())
	require.Equal(t, []float64{5, 5, 5, 5}, res.History[1].Values())
	require.Equal(t, []float64{50, 50, 50, 50}, res.Final.Values())
	require.Equal(t, []float64{0, 0, 0, 0}, in.Values())

	empty, err := r.Run(in)
	require.NoError(t, err)
	require.Empty(t, empty.History)
	require.Equal(t, in.Values(), empty.Final.Values())

	partial, err := r.Run(in,
		noise.Step{Name: noise.OpOffset, Params: noise.Params{noise.ParamValue: 1}},
		noise.Step{Name: "missing"},
	)
	require.ErrorIs(t, err, noise.ErrUnknownOperation)
	require.Len(t, partial.History, 1)

	_, err = r.Run(nil)
	require.ErrorIs(t, err, noise.ErrNilField)
}

func TestExecute_Concurrent(t *testing.T) {
	r := noise.NewDefaultRegistry(noise.WithLogger(slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))))
	src := mustField(t, 16, 16, 0)
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, err := r.Execute(noise.OpPerlin, src, noise.Settings{Scale: 8, Seed: int64(i)}, nil)
			require.NoError(t, err)
		}(i)
	}
	wg.Wait()
	require.Equal(t, 0.0, src.Sum())
}
