package dual

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestArrays(t *testing.T) {
	t.Run("CloneIsIndependent", func(t *testing.T) {
		a := &Array3[float64]{1, 2, 3}
		c := a.Clone()
		c[0] = 9
		assert.Equal(t, 1.0, a[0])
		assert.Equal(t, []float64{9, 2, 3}, c.RO())
	})

	t.Run("RefReadsThrough", func(t *testing.T) {
		a := &Array4[float32]{1, 2, 3, 4}
		r := a.View()
		a.RW()[3] = 8
		assert.Equal(t, []float32{1, 2, 3, 8}, r.RO())
		assert.Equal(t, r, r.View())

		o := r.ToOwning()
		o[0] = -1
		assert.Equal(t, float32(1), a[0])
	})

	t.Run("SizesKeepDiffCount", func(t *testing.T) {
		assert.Equal(t, 0, New[float64](&Array1[float64]{3}).Ndiffs())
		assert.Equal(t, 15, New[float64](&Array16[float64]{}).Ndiffs())
		assert.Equal(t, 31, New[float32](&Array32[float32]{}).Ndiffs())
	})

	t.Run("DualOnArrays", func(t *testing.T) {
		var x Array3F64 = New[float64](&Array3[float64]{42, 1, 0})
		var y Array3F64 = New[float64](&Array3[float64]{17, 0, 1})
		res := x.Add(y).Mul(y)
		assert.Equal(t, &Array3[float64]{1003, 17, 76}, res.Storage())
	})

	t.Run("CloneOfArrayDual", func(t *testing.T) {
		x := New[float64](&Array2[float64]{2, 1})
		c := x.Clone().Exp2()
		assert.Equal(t, 2.0, x.Val())
		assert.Equal(t, 4.0, c.Val())
	})
}
