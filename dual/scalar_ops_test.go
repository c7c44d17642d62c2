package dual

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScalarOps(t *testing.T) {
	x := func() Owning64 { return FromSlice([]float64{42, 1, -2}) }

	t.Run("AddSubOnlyTouchValue", func(t *testing.T) {
		assert.Equal(t, []float64{45, 1, -2}, x().AddScalar(3).Slice())
		assert.Equal(t, []float64{39, 1, -2}, x().SubScalar(3).Slice())
	})

	t.Run("MulDivScaleEverySlot", func(t *testing.T) {
		assert.Equal(t, []float64{84, 2, -4}, x().MulScalar(2).Slice())
		assert.Equal(t, []float64{21, 0.5, -1}, x().DivScalar(2).Slice())
	})

	t.Run("MatchesConstantOperand", func(t *testing.T) {
		c := Constant(float64(3), 2)
		assert.True(t, x().AddScalar(3).Equal(x().Add(c)))
		assert.True(t, x().SubScalar(3).Equal(x().Sub(c)))
		assert.True(t, x().MulScalar(3).Equal(x().Mul(c)))
	})

	t.Run("ScalarLeft", func(t *testing.T) {
		assert.Equal(t, []float64{59, 1, -2}, ScalarAdd(17.0, x()).Slice())
		assert.Equal(t, []float64{84, 2, -4}, ScalarMul(2.0, x()).Slice())

		r := ScalarSub(17.0, x())
		assert.Equal(t, []float64{-25, -1, 2}, r.Slice())
		assert.True(t, r.Equal(Constant(float64(17), 2).Sub(x())))
	})

	t.Run("FixedStorage", func(t *testing.T) {
		a := New[float32](&Array2[float32]{4, 1})
		ScalarSub(float32(1), a.MulScalar(2))
		assert.Equal(t, &Array2[float32]{-7, -2}, a.Storage())
	})
}
