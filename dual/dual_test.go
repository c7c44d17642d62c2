package dual

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstant(t *testing.T) {
	t.Run("ValueAndZeroDiffs", func(t *testing.T) {
		c := Constant(float64(42), 2)
		assert.Equal(t, []float64{42, 0, 0}, c.Slice())
		assert.Equal(t, 2, c.Ndiffs())
	})

	t.Run("ManyDiffs", func(t *testing.T) {
		c := Constant(float64(0), 42)
		assert.Equal(t, 42, c.Ndiffs())
		assert.Len(t, c.Diffs(), 42)
	})

	t.Run("NoDiffs", func(t *testing.T) {
		c := Constant(float32(1.5), 0)
		assert.Equal(t, float32(1.5), c.Val())
		assert.Empty(t, c.Diffs())
	})

	t.Run("NegativePanics", func(t *testing.T) {
		assert.Panics(t, func() { Constant(float64(1), -1) })
	})

	t.Run("InStorage", func(t *testing.T) {
		c := ConstantIn(&Array3[float64]{9, 9, 9}, 2.0)
		assert.Equal(t, []float64{2, 0, 0}, c.Slice())
	})

	t.Run("InEmptyStoragePanics", func(t *testing.T) {
		assert.PanicsWithValue(t, "dual: storage must hold at least the value slot", func() {
			ConstantIn(Vec[float64]{}, 1.0)
		})
	})
}

func TestConstruction(t *testing.T) {
	t.Run("FromSliceSharesMemory", func(t *testing.T) {
		buf := []float64{1, 2, 3}
		x := FromSlice(buf)
		x.SetVal(10)
		assert.Equal(t, 10.0, buf[0])
		assert.Equal(t, RW, x.Mode())
	})

	t.Run("NewWithArray", func(t *testing.T) {
		x := New[float64](&Array3[float64]{17, 1, 0})
		assert.Equal(t, 17.0, x.Val())
		assert.Equal(t, []float64{1, 0}, x.Diffs())
	})

	t.Run("EmptyPanics", func(t *testing.T) {
		msg := "dual: storage must hold at least the value slot"
		assert.PanicsWithValue(t, msg, func() { FromSlice([]float64{}) })
		assert.PanicsWithValue(t, msg, func() { Borrow([]float32(nil)) })
		assert.PanicsWithValue(t, msg, func() { New[float64](Vec[float64]{}) })
	})
}

func TestAccessors(t *testing.T) {
	x := FromSlice([]float64{1, 2, 3})

	*x.ValPtr() = 4
	x.DiffsMut()[1] = 5
	x.SliceMut()[1] = 6

	assert.Equal(t, 4.0, x.Val())
	assert.Equal(t, []float64{6, 5}, x.Diffs())
	assert.Equal(t, []float64{4, 6, 5}, x.Slice())
	assert.Equal(t, Vec[float64]{4, 6, 5}, x.Storage())
	assert.Equal(t, "4 [6 5]", x.String())
}

func TestClone(t *testing.T) {
	x := FromSlice([]float64{42, 1, 0})
	c := x.Clone()
	c.Neg()

	assert.Equal(t, []float64{42, 1, 0}, x.Slice())
	assert.Equal(t, []float64{-42, -1, 0}, c.Slice())
	assert.True(t, x.Clone().Neg().Neg().Equal(x))
}

func TestIsClose(t *testing.T) {
	x := FromSlice([]float64{1, 2, 3})
	y := FromSlice([]float64{1 + 1e-10, 2, 3 - 1e-10})

	assert.True(t, x.IsClose(y, 1e-9))
	assert.False(t, x.IsClose(y, 1e-11))
	assert.False(t, x.Equal(y))

	assert.PanicsWithError(t, "dual: duals have different numbers of diffs: 2 =/= 1", func() {
		x.IsClose(FromSlice([]float64{1, 2}), 1)
	})
}

func TestElementary(t *testing.T) {
	const atol = 1e-12

	t.Run("Neg", func(t *testing.T) {
		x := FromSlice([]float64{3, -1, 0.5}).Neg()
		assert.Equal(t, []float64{-3, 1, -0.5}, x.Slice())
	})

	t.Run("Exp", func(t *testing.T) {
		x := FromSlice([]float64{2, 1, 3}).Exp()
		e := math.Exp(2)
		assert.InDelta(t, e, x.Val(), atol)
		assert.InDeltaSlice(t, []float64{e, 3 * e}, x.Diffs(), atol)
	})

	t.Run("Exp2", func(t *testing.T) {
		x := FromSlice([]float64{3, 1}).Exp2()
		assert.Equal(t, 8.0, x.Val())
		assert.InDelta(t, 8*math.Ln2, x.Diffs()[0], atol)
	})

	t.Run("ExpBase", func(t *testing.T) {
		x := FromSlice([]float64{2, 1}).ExpBase(10)
		assert.InDelta(t, 100.0, x.Val(), 1e-10)
		assert.InDelta(t, 100*math.Log(10), x.Diffs()[0], 1e-10)
	})

	t.Run("Ln", func(t *testing.T) {
		x := FromSlice([]float64{4, 2, -1}).Ln()
		assert.InDelta(t, math.Log(4), x.Val(), atol)
		assert.Equal(t, []float64{0.5, -0.25}, x.Diffs())
	})

	t.Run("Inv", func(t *testing.T) {
		x := FromSlice([]float64{4, 2}).Inv()
		assert.Equal(t, []float64{0.25, -0.125}, x.Slice())
	})

	t.Run("Powf", func(t *testing.T) {
		x := FromSlice([]float64{2, 1, 0}).Powf(3)
		assert.Equal(t, []float64{8, 12, 0}, x.Slice())
	})

	t.Run("PowfMatchesMul", func(t *testing.T) {
		x := FromSlice([]float64{1.7, 0.3, -2})
		sq := x.Clone().Mul(x)
		assert.True(t, sq.IsClose(x.Clone().Powf(2), 1e-12))
	})

	t.Run("InvMatchesPowf", func(t *testing.T) {
		y := FromSlice([]float64{17, 0, 1})
		assert.True(t, y.Clone().Inv().IsClose(y.Clone().Powf(-1), 1e-12))
	})

	t.Run("AbsNegative", func(t *testing.T) {
		x := FromSlice([]float64{-2, 1, -3}).Abs()
		assert.Equal(t, []float64{2, -1, 3}, x.Slice())
	})

	t.Run("AbsAtZeroKeepsSign", func(t *testing.T) {
		x := FromSlice([]float64{0, 1, -2}).Abs()
		assert.Equal(t, []float64{0, 1, -2}, x.Slice())
	})

	t.Run("DomainErrorsPropagate", func(t *testing.T) {
		x := FromSlice([]float64{-1, 1}).Ln()
		assert.True(t, math.IsNaN(x.Val()))

		y := FromSlice([]float64{0, 1}).Inv()
		assert.True(t, math.IsInf(y.Val(), 1))
	})
}

func TestRoundTrips(t *testing.T) {
	for _, s := range [][]float64{
		{42, 1, 0},
		{17, 0, 1},
		{0.5, -3, 2},
	} {
		x := FromSlice(s)
		assert.True(t, x.Clone().Exp().Ln().IsClose(x, 1e-8), "exp then ln of %v", s)
		assert.True(t, x.Clone().Ln().Exp().IsClose(x, 1e-8), "ln then exp of %v", s)
	}
}

func TestPowDual(t *testing.T) {
	t.Run("SelfPower", func(t *testing.T) {
		x := FromSlice([]float64{3, 1})
		r := x.Clone().PowDual(x)
		assert.InDelta(t, 27.0, r.Val(), 1e-12)
		assert.InDelta(t, 27*(math.Log(3)+1), r.Diffs()[0], 1e-10)
	})

	t.Run("MinusOneIsInv", func(t *testing.T) {
		x := FromSlice([]float64{42, 1, 0})
		r := x.Clone().PowDual(Constant(float64(-1), 2))
		assert.True(t, r.IsClose(x.Clone().Inv(), 1e-8))
	})

	t.Run("ZeroBase", func(t *testing.T) {
		x := FromSlice([]float64{0, 1, 2})
		y := FromSlice([]float64{17, 3, 4})
		r := x.PowDual(y)
		assert.Equal(t, []float64{0, 0, 0}, r.Slice())
	})

	t.Run("Mismatch", func(t *testing.T) {
		assert.PanicsWithError(t, "dual: duals have different numbers of diffs: 1 =/= 2", func() {
			FromSlice([]float64{2, 1}).PowDual(Constant(float64(1), 2))
		})
	})
}

func TestFloat32(t *testing.T) {
	x := FromSlice([]float32{42, 1, 0})
	y := FromSlice([]float32{17, 0, 1})
	res := x.Add(y).Mul(y)
	assert.Equal(t, []float32{1003, 17, 76}, res.Slice())

	var o Owning32 = Constant(float32(1), 2)
	require.Equal(t, 2, o.Ndiffs())
}

func TestMode(t *testing.T) {
	assert.True(t, RW.Writable())
	assert.False(t, RO.Writable())
	assert.Equal(t, "RO", RO.String())
	assert.Equal(t, "RW", RW.String())
	assert.Equal(t, "unknown", Mode(7).String())
}
