package simd

import (
	"math"
	"testing"
)

func TestVecAdd(t *testing.T) {
	dst := []float64{1, 2, 3, 4, 5}
	src := []float64{10, 20, 30, 40, 50}
	expected := []float64{11, 22, 33, 44, 55}

	VecAdd(dst, src)

	for i, v := range dst {
		if v != expected[i] {
			t.Errorf("VecAdd(%d) = %f, want %f", i, v, expected[i])
		}
	}
}

func TestVecSub(t *testing.T) {
	dst := []float32{11, 22, 33, 44, 55}
	src := []float32{10, 20, 30, 40, 50}
	expected := []float32{1, 2, 3, 4, 5}

	VecSub(dst, src)

	for i, v := range dst {
		if v != expected[i] {
			t.Errorf("VecSub(%d) = %f, want %f", i, v, expected[i])
		}
	}
}

func TestVecRSub(t *testing.T) {
	dst := []float64{1, 2, 3, 4, 5}
	src := []float64{10, 20, 30, 40, 50}
	expected := []float64{9, 18, 27, 36, 45}

	VecRSub(dst, src)

	for i, v := range dst {
		if v != expected[i] {
			t.Errorf("VecRSub(%d) = %f, want %f", i, v, expected[i])
		}
	}
}

func TestVecAddScaled(t *testing.T) {
	dst := []float64{1, 2, 3, 4, 5}
	src := []float64{10, 20, 30, 40, 50}
	scale := 0.5
	expected := []float64{6, 12, 18, 24, 30}

	VecAddScaled(dst, src, scale)

	for i, v := range dst {
		if v != expected[i] {
			t.Errorf("VecAddScaled(%d) = %f, want %f", i, v, expected[i])
		}
	}
}

func TestVecAxpby(t *testing.T) {
	dst := []float64{1, 2, 3, 4, 5}
	src := []float64{1, 0, 1, 0, 1}
	// 3*src + 2*dst
	expected := []float64{5, 4, 9, 8, 13}

	VecAxpby(dst, src, 3, 2)

	for i, v := range dst {
		if v != expected[i] {
			t.Errorf("VecAxpby(%d) = %f, want %f", i, v, expected[i])
		}
	}
}

func TestVecScaleNegDiv(t *testing.T) {
	dst := []float64{2, -4, 6, -8, 10}

	VecScale(dst, 0.5)
	VecNeg(dst)
	VecDivScalar(dst, -1)

	expected := []float64{1, -2, 3, -4, 5}
	for i, v := range dst {
		if v != expected[i] {
			t.Errorf("Scale/Neg/Div(%d) = %f, want %f", i, v, expected[i])
		}
	}
}

func TestAllClose(t *testing.T) {
	a := []float64{17, 1, 2}
	b := []float64{17 + 1e-10, 1 - 1e-10, 2}

	if !AllClose(a, b, 1e-9) {
		t.Error("AllClose should accept differences below atol")
	}
	if AllClose(a, b, 1e-11) {
		t.Error("AllClose should reject differences above atol")
	}
	if AllClose([]float64{math.NaN()}, []float64{math.NaN()}, 1) {
		t.Error("NaN must never be close")
	}
}

func TestFill(t *testing.T) {
	dst := make([]float32, 7)
	Fill(dst, 3)
	for i, v := range dst {
		if v != 3 {
			t.Errorf("Fill(%d) = %f, want 3", i, v)
		}
	}
}

// Benchmarks

func BenchmarkVecAdd(b *testing.B) {
	size := 128
	v1 := make([]float64, size)
	v2 := make([]float64, size)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		VecAdd(v1, v2)
	}
}

func BenchmarkVecAxpby(b *testing.B) {
	size := 16
	v1 := make([]float64, size)
	v2 := make([]float64, size)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		VecAxpby(v1, v2, 0.5, 0.25)
	}
}
