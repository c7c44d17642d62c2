package dual

import "github.com/23skdu/fwdad/internal/simd"

// kernel combines src into dst in place. Both slices hold a full dual
// number, value first, and have the same length.
type kernel[F Scalar] func(dst, src []F)

func addKernel[F Scalar](dst, src []F) {
	simd.VecAdd(dst, src)
}

func subKernel[F Scalar](dst, src []F) {
	simd.VecSub(dst, src)
}

// rsubKernel computes dst = src - dst.
func rsubKernel[F Scalar](dst, src []F) {
	simd.VecRSub(dst, src)
}

func mulKernel[F Scalar](dst, src []F) {
	vs, vr := dst[0], src[0]
	dst[0] = vs * vr
	// d = vs*dr + vr*ds
	simd.VecAxpby(dst[1:], src[1:], vs, vr)
}

func divKernel[F Scalar](dst, src []F) {
	vs, vr := dst[0], src[0]
	dst[0] = vs / vr
	for i := 1; i < len(dst); i++ {
		dst[i] = (dst[i] - src[i]*vs/vr) / vr
	}
}

// rdivKernel computes dst = src / dst.
func rdivKernel[F Scalar](dst, src []F) {
	vs, vr := src[0], dst[0]
	dst[0] = vs / vr
	for i := 1; i < len(dst); i++ {
		dst[i] = (src[i] - dst[i]*vs/vr) / vr
	}
}

// apply runs k with dst as the destination. dst is the left operand of the
// check, rhs the right one.
func apply[S Owned[S, F], F Scalar](dst Dual[S, F], rhs Operand[F], k kernel[F]) Dual[S, F] {
	checkSameNdiffs(dst.Ndiffs(), rhs.Ndiffs())
	k(dst.content.RW(), rhs.Slice())
	return dst
}

// applyInto runs k with the right operand as the destination.
func applyInto[S Owned[S, F], F Scalar](lhs Operand[F], dst Dual[S, F], k kernel[F]) Dual[S, F] {
	checkSameNdiffs(lhs.Ndiffs(), dst.Ndiffs())
	k(dst.content.RW(), lhs.Slice())
	return dst
}

// Add computes d + o into d.
func (d Dual[S, F]) Add(o Operand[F]) Dual[S, F] {
	return apply(d, o, addKernel[F])
}

// Sub computes d - o into d.
func (d Dual[S, F]) Sub(o Operand[F]) Dual[S, F] {
	return apply(d, o, subKernel[F])
}

// Mul computes d * o into d.
func (d Dual[S, F]) Mul(o Operand[F]) Dual[S, F] {
	return apply(d, o, mulKernel[F])
}

// Div computes d / o into d.
func (d Dual[S, F]) Div(o Operand[F]) Dual[S, F] {
	return apply(d, o, divKernel[F])
}

// AddTo computes lhs + rhs into rhs and returns it. lhs is left untouched,
// which makes it the cheap form when only the right operand is owned.
func AddTo[S Owned[S, F], F Scalar](lhs Operand[F], rhs Dual[S, F]) Dual[S, F] {
	return applyInto(lhs, rhs, addKernel[F])
}

// MulTo computes lhs * rhs into rhs and returns it.
func MulTo[S Owned[S, F], F Scalar](lhs Operand[F], rhs Dual[S, F]) Dual[S, F] {
	return applyInto(lhs, rhs, mulKernel[F])
}

// SubTo computes lhs - rhs into rhs and returns it.
func SubTo[S Owned[S, F], F Scalar](lhs Operand[F], rhs Dual[S, F]) Dual[S, F] {
	return applyInto(lhs, rhs, rsubKernel[F])
}

// DivTo computes lhs / rhs into rhs and returns it.
func DivTo[S Owned[S, F], F Scalar](lhs Operand[F], rhs Dual[S, F]) Dual[S, F] {
	return applyInto(lhs, rhs, rdivKernel[F])
}
