package vars

import (
	"testing"

	"github.com/23skdu/fwdad/dual"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeclare(t *testing.T) {
	vs := Declare(17.0, 42.0)
	require.Len(t, vs, 2)
	x, y := vs[0], vs[1]

	assert.Equal(t, []float64{17, 1, 0}, x.Slice())
	assert.Equal(t, []float64{42, 0, 1}, y.Slice())

	getdx := Getter[float64](0)
	assert.Equal(t, 1.0, getdx(x.View()))
	assert.Equal(t, 0.0, getdx(y.View()))
	assert.Equal(t, 0.0, getdx(y))

	assert.Empty(t, Declare[float32]())
}

func TestGetterPanics(t *testing.T) {
	assert.Panics(t, func() { Getter[float64](-1) })

	get := Getter[float64](2)
	assert.PanicsWithValue(t, "vars: derivative index 2 out of range [0, 2)", func() {
		get(dual.Constant(1.0, 2))
	})
}

func TestSeed(t *testing.T) {
	x := dual.New[float64](&dual.Array3[float64]{5, 7, 7})
	Seed(x, 2.5, 1)
	assert.Equal(t, &dual.Array3[float64]{2.5, 0, 1}, x.Storage())

	assert.Panics(t, func() { Seed(x, 1.0, 2) })
}

func TestSet(t *testing.T) {
	s, err := NewSet([]string{"x", "y"}, []float64{0, 0})
	require.NoError(t, err)
	assert.Equal(t, 2, s.Len())
	assert.Equal(t, []string{"x", "y"}, s.Names())

	t.Run("Var", func(t *testing.T) {
		y, err := s.Var("y")
		require.NoError(t, err)
		assert.Equal(t, []float64{0, 0, 1}, y.Slice())

		_, err = s.Var("z")
		assert.ErrorIs(t, err, ErrUnknownVariable)
	})

	t.Run("Getter", func(t *testing.T) {
		x, _ := s.Var("x")
		y, _ := s.Var("y")
		// x*y at (3, 4)
		require.NoError(t, s.Reseed([]float64{3, 4}))
		res := x.Clone().Mul(y)

		getdx, err := s.Getter("x")
		require.NoError(t, err)
		getdy, err := s.Getter("y")
		require.NoError(t, err)
		assert.Equal(t, 4.0, getdx(res))
		assert.Equal(t, 3.0, getdy(res))

		_, err = s.Getter("nope")
		assert.ErrorIs(t, err, ErrUnknownVariable)
	})

	t.Run("ReseedRepairsBuffers", func(t *testing.T) {
		x, _ := s.Var("x")
		x.MulScalar(10)
		require.NoError(t, s.Reseed([]float64{1, 2}))
		assert.Equal(t, []float64{1, 1, 0}, x.Slice())
		assert.Equal(t, []float64{1, 2}, s.Values())

		assert.ErrorIs(t, s.Reseed([]float64{1}), ErrLengthMismatch)
	})

	t.Run("Gradient", func(t *testing.T) {
		g, err := s.Gradient(dual.FromSlice([]float64{0, 5, 6}))
		require.NoError(t, err)
		assert.Equal(t, map[string]float64{"x": 5, "y": 6}, g)

		_, err = s.Gradient(dual.Constant(0.0, 3))
		assert.ErrorIs(t, err, ErrLengthMismatch)
	})
}

func TestNewSetErrors(t *testing.T) {
	_, err := NewSet([]string{"x"}, []float64{1, 2})
	assert.ErrorIs(t, err, ErrLengthMismatch)

	_, err = NewSet([]string{"x", "x"}, []float64{1, 2})
	assert.ErrorIs(t, err, ErrDuplicateName)
	assert.Contains(t, err.Error(), `"x"`)
}
