package dual

import "github.com/23skdu/fwdad/internal/simd"

// AddScalar adds s to the value. A constant has no derivatives, so the
// derivatives are unchanged.
func (d Dual[S, F]) AddScalar(s F) Dual[S, F] {
	d.content.RW()[0] += s
	return d
}

// SubScalar subtracts s from the value.
func (d Dual[S, F]) SubScalar(s F) Dual[S, F] {
	d.content.RW()[0] -= s
	return d
}

// MulScalar scales the value and every derivative by s.
func (d Dual[S, F]) MulScalar(s F) Dual[S, F] {
	simd.VecScale(d.content.RW(), s)
	return d
}

// DivScalar divides the value and every derivative by s.
func (d Dual[S, F]) DivScalar(s F) Dual[S, F] {
	simd.VecDivScalar(d.content.RW(), s)
	return d
}

// ScalarAdd computes s + x into x.
func ScalarAdd[S Owned[S, F], F Scalar](s F, x Dual[S, F]) Dual[S, F] {
	return x.AddScalar(s)
}

// ScalarMul computes s * x into x.
func ScalarMul[S Owned[S, F], F Scalar](s F, x Dual[S, F]) Dual[S, F] {
	return x.MulScalar(s)
}

// ScalarSub computes s - x into x: the value becomes s - v and every
// derivative is negated.
func ScalarSub[S Owned[S, F], F Scalar](s F, x Dual[S, F]) Dual[S, F] {
	sl := x.content.RW()
	sl[0] = s - sl[0]
	simd.VecNeg(sl[1:])
	return x
}
