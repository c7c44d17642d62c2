package optim

import (
	"context"
	"testing"

	"github.com/23skdu/fwdad/dual"
	"github.com/23skdu/fwdad/internal/objective"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lookup(t *testing.T, name string) objective.Objective {
	t.Helper()
	o, err := objective.Default().Lookup(name)
	require.NoError(t, err)
	return o
}

func TestParseMethod(t *testing.T) {
	for _, m := range Methods() {
		got, err := ParseMethod(string(m))
		require.NoError(t, err)
		assert.Equal(t, m, got)
	}
	got, err := ParseMethod(" LBFGS ")
	require.NoError(t, err)
	assert.Equal(t, LBFGS, got)

	_, err = ParseMethod("newton")
	assert.ErrorIs(t, err, ErrUnknownMethod)
}

func TestDescend(t *testing.T) {
	ctx := context.Background()

	t.Run("RosenbrockDecreases", func(t *testing.T) {
		o := lookup(t, "rosenbrock")
		cfg := DefaultConfig()

		cfg.MaxIter = 100
		early, err := Descend(ctx, o, []float64{0, 0}, cfg)
		require.NoError(t, err)

		cfg.MaxIter = 10000
		late, err := Descend(ctx, o, []float64{0, 0}, cfg)
		require.NoError(t, err)

		assert.Less(t, early.Value, 1.0)
		assert.Less(t, late.Value, early.Value)
		assert.Equal(t, 10000, late.Iterations)
		assert.False(t, late.Converged)
		assert.Equal(t, "IterationLimit", late.Status)
	})

	t.Run("SphereConverges", func(t *testing.T) {
		cfg := Config{Alpha: 0.25, MaxIter: 1000, Tol: 1e-8}
		res, err := Descend(ctx, lookup(t, "sphere"), []float64{4, -2, 1}, cfg)
		require.NoError(t, err)
		assert.True(t, res.Converged)
		assert.Less(t, res.Iterations, 100)
		assert.InDeltaSlice(t, []float64{0, 0, 0}, res.X, 1e-8)
	})

	t.Run("ZeroIterations", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.MaxIter = 0
		res, err := Descend(ctx, lookup(t, "rosenbrock"), []float64{0, 0}, cfg)
		require.NoError(t, err)
		assert.Equal(t, []float64{0, 0}, res.X)
		assert.Equal(t, 1.0, res.Value)
		assert.Equal(t, []float64{-2, 0}, res.Gradient)
	})

	t.Run("GradientIsDetached", func(t *testing.T) {
		// f(x) = x returns its own variable, so the result dual shares
		// storage with the variable set.
		var last dual.Owning64
		o := objective.Objective{
			Name:   "identity",
			MinDim: 1,
			Eval: func(x []dual.Owning64) dual.Owning64 {
				last = x[0]
				return x[0]
			},
		}
		res, err := Descend(ctx, o, []float64{3}, Config{Alpha: 0.5, MaxIter: 4})
		require.NoError(t, err)
		assert.Equal(t, []float64{1}, res.Gradient)
		assert.Equal(t, []float64{1}, res.X)

		last.DiffsMut()[0] = 42
		assert.Equal(t, []float64{1}, res.Gradient)
	})

	t.Run("StartIsNotModified", func(t *testing.T) {
		start := []float64{0, 0}
		_, err := Descend(ctx, lookup(t, "rosenbrock"), start, Config{Alpha: 1e-3, MaxIter: 10})
		require.NoError(t, err)
		assert.Equal(t, []float64{0, 0}, start)
	})

	t.Run("Cancelled", func(t *testing.T) {
		cctx, cancel := context.WithCancel(ctx)
		cancel()
		_, err := Descend(cctx, lookup(t, "sphere"), []float64{1}, DefaultConfig())
		assert.ErrorIs(t, err, context.Canceled)
	})

	t.Run("InvalidInput", func(t *testing.T) {
		o := lookup(t, "himmelblau")
		_, err := Descend(ctx, o, []float64{1, 2, 3}, DefaultConfig())
		assert.ErrorIs(t, err, objective.ErrDimension)

		_, err = Descend(ctx, o, []float64{1, 2}, Config{Alpha: 0, MaxIter: 1})
		assert.Error(t, err)
		_, err = Descend(ctx, o, []float64{1, 2}, Config{Alpha: 1, MaxIter: -1})
		assert.Error(t, err)
	})
}

func TestMinimize(t *testing.T) {
	ctx := context.Background()

	t.Run("RosenbrockBFGS", func(t *testing.T) {
		res, err := Minimize(ctx, lookup(t, "rosenbrock"), []float64{-1.2, 1}, BFGS, DefaultConfig())
		require.NoError(t, err)
		assert.True(t, res.Converged, res.Status)
		assert.InDeltaSlice(t, []float64{1, 1}, res.X, 1e-4)
		assert.InDelta(t, 0.0, res.Value, 1e-8)
	})

	for _, m := range []Method{LBFGS, CG} {
		t.Run("Booth"+string(m), func(t *testing.T) {
			res, err := Minimize(ctx, lookup(t, "booth"), []float64{0, 0}, m, DefaultConfig())
			require.NoError(t, err)
			assert.InDeltaSlice(t, []float64{1, 3}, res.X, 1e-4)
		})
	}

	for _, m := range []Method{BFGS, LBFGS, CG} {
		t.Run("ZeroIterations"+string(m), func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.MaxIter = 0
			start := []float64{0, 0}
			res, err := Minimize(ctx, lookup(t, "rosenbrock"), start, m, cfg)
			require.NoError(t, err)
			assert.Equal(t, []float64{0, 0}, res.X)
			assert.Equal(t, 1.0, res.Value)
			assert.Equal(t, []float64{-2, 0}, res.Gradient)
			assert.Equal(t, 0, res.Iterations)
			assert.Equal(t, "IterationLimit", res.Status)

			res.X[0] = 5
			assert.Equal(t, []float64{0, 0}, start)
		})
	}

	t.Run("NegativeIterations", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.MaxIter = -1
		_, err := Minimize(ctx, lookup(t, "sphere"), []float64{1}, BFGS, cfg)
		assert.Error(t, err)
	})

	t.Run("DescentDelegates", func(t *testing.T) {
		cfg := Config{Alpha: 0.25, MaxIter: 1000, Tol: 1e-10}
		res, err := Minimize(ctx, lookup(t, "sphere"), []float64{1, 1}, Descent, cfg)
		require.NoError(t, err)
		assert.Equal(t, "GradientThreshold", res.Status)
	})

	t.Run("Cancelled", func(t *testing.T) {
		cctx, cancel := context.WithCancel(ctx)
		cancel()
		_, err := Minimize(cctx, lookup(t, "rosenbrock"), []float64{-1.2, 1}, LBFGS, DefaultConfig())
		assert.ErrorIs(t, err, context.Canceled)
	})

	t.Run("UnknownMethod", func(t *testing.T) {
		_, err := Minimize(ctx, lookup(t, "sphere"), []float64{1}, Method("newton"), DefaultConfig())
		assert.ErrorIs(t, err, ErrUnknownMethod)
	})
}
