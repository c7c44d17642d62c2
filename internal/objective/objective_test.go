package objective

import (
	"testing"

	"github.com/23skdu/fwdad/dual"
	"github.com/23skdu/fwdad/vars"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func eval(t *testing.T, o Objective, point ...float64) dual.Owning64 {
	t.Helper()
	require.NoError(t, o.CheckDim(len(point)))
	x := vars.Declare(point...)
	res := o.Eval(x)
	// inputs are never modified
	for i, xi := range x {
		assert.Equal(t, point[i], xi.Val())
		assert.Equal(t, 1.0, xi.Diffs()[i])
	}
	return res
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"rosenbrock", "rosenbrock"},
		{"Rosenbröck", "rosenbrock"},
		{"  Styblinski_Tang ", "styblinski-tang"},
		{"LOG sum   exp", "log-sum-exp"},
		{"--", ""},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.in))
		})
	}
}

func TestCheckDim(t *testing.T) {
	r := Default()

	h, err := r.Lookup("himmelblau")
	require.NoError(t, err)
	assert.NoError(t, h.CheckDim(2))
	assert.ErrorIs(t, h.CheckDim(3), ErrDimension)

	rb, err := r.Lookup("rosenbrock")
	require.NoError(t, err)
	assert.NoError(t, rb.CheckDim(5))
	assert.ErrorIs(t, rb.CheckDim(1), ErrDimension)

	s, err := r.Lookup("sphere")
	require.NoError(t, err)
	assert.ErrorIs(t, s.CheckDim(0), ErrDimension)
}

func TestRegistry(t *testing.T) {
	r := Default()
	assert.Equal(t, len(Builtins()), r.Size())
	assert.Contains(t, r.Names(), "rosenbrock")
	assert.IsNonDecreasing(t, r.Names())

	t.Run("LookupAnySpelling", func(t *testing.T) {
		o, err := r.Lookup("Styblinski Tang")
		require.NoError(t, err)
		assert.Equal(t, "styblinski-tang", o.Name)
	})

	t.Run("Unknown", func(t *testing.T) {
		_, err := r.Lookup("nope")
		assert.ErrorIs(t, err, ErrUnknown)
	})

	t.Run("Duplicate", func(t *testing.T) {
		err := r.Register(Objective{Name: "SPHERE", Eval: sphere})
		assert.ErrorIs(t, err, ErrDuplicate)
	})

	t.Run("Invalid", func(t *testing.T) {
		assert.Error(t, r.Register(Objective{Name: "__", Eval: sphere}))
		assert.Error(t, r.Register(Objective{Name: "noeval"}))
	})
}

func TestRosenbrock(t *testing.T) {
	o, err := Default().Lookup("rosenbrock")
	require.NoError(t, err)

	t.Run("Origin", func(t *testing.T) {
		res := eval(t, o, 0, 0)
		assert.Equal(t, []float64{1, -2, 0}, res.Slice())
	})

	t.Run("ThreeDims", func(t *testing.T) {
		// f = 100(y-x^2)^2 + (1-x)^2 + 100(z-y^2)^2 + (1-y)^2 at (0, 1, 1)
		res := eval(t, o, 0, 1, 1)
		assert.InDelta(t, 101.0, res.Val(), 1e-12)
		// df/dx = -2, df/dy = 200, df/dz = 0
		assert.InDeltaSlice(t, []float64{-2, 200, 0}, res.Diffs(), 1e-12)
	})
}

func TestMinimizers(t *testing.T) {
	for _, o := range Builtins() {
		if o.Minimizer == nil {
			continue
		}
		t.Run(o.Name, func(t *testing.T) {
			res := eval(t, o, o.Minimizer...)
			assert.InDelta(t, 0.0, res.Val(), 1e-12)
			if o.Nonsmooth {
				return
			}
			for i, d := range res.Diffs() {
				assert.InDelta(t, 0.0, d, 1e-12, "derivative %d", i)
			}
		})
	}
}

func TestNonsmoothMinimizer(t *testing.T) {
	o, err := Default().Lookup("l1")
	require.NoError(t, err)
	require.True(t, o.Nonsmooth)

	t.Run("Origin", func(t *testing.T) {
		// |0| keeps the positive branch, so each partial is +1
		res := eval(t, o, 0, 0)
		assert.Equal(t, 0.0, res.Val())
		assert.Equal(t, []float64{1, 1}, res.Diffs())
	})

	t.Run("Mixed", func(t *testing.T) {
		res := eval(t, o, -2, 0, 3)
		assert.Equal(t, 5.0, res.Val())
		assert.Equal(t, []float64{-1, 1, 1}, res.Diffs())
	})
}

func TestElementaryObjectives(t *testing.T) {
	r := Default()

	t.Run("LogSumExp", func(t *testing.T) {
		o, _ := r.Lookup("log-sum-exp")
		res := eval(t, o, 0, 0)
		// ln 2, softmax gradient
		assert.InDelta(t, 0.6931471805599453, res.Val(), 1e-12)
		assert.InDeltaSlice(t, []float64{0.5, 0.5}, res.Diffs(), 1e-12)
	})

	t.Run("L1", func(t *testing.T) {
		o, _ := r.Lookup("l1")
		res := eval(t, o, -2, 3)
		assert.Equal(t, []float64{5, -1, 1}, res.Slice())
	})

	t.Run("StyblinskiTang", func(t *testing.T) {
		o, _ := r.Lookup("styblinski-tang")
		res := eval(t, o, 1)
		// (1 - 16 + 5)/2 and (4 - 32 + 5)/2
		assert.InDelta(t, -5.0, res.Val(), 1e-12)
		assert.InDelta(t, -11.5, res.Diffs()[0], 1e-12)
	})

	t.Run("PseudoHuber", func(t *testing.T) {
		o, _ := r.Lookup("pseudo-huber")
		res := eval(t, o, 1)
		assert.InDelta(t, 0.41421356237309515, res.Val(), 1e-12)
		assert.InDelta(t, 0.7071067811865476, res.Diffs()[0], 1e-12)
	})
}
