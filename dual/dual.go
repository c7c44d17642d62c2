package dual

import (
	"fmt"

	"github.com/23skdu/fwdad/internal/simd"
)

// Operand is the read access shared by Dual and View. Binary operations
// accept any Operand as their right-hand side, whatever its storage or mode.
type Operand[F Scalar] interface {
	Slice() []F
	Val() F
	Diffs() []F
	Ndiffs() int
	Mode() Mode
}

// Dual is a read-write dual number backed by storage S.
//
// A Dual is a handle: copying it shares the storage. Every arithmetic method
// writes its result into the receiver's storage and returns the receiver.
// Use Clone to keep the original.
type Dual[S Owned[S, F], F Scalar] struct {
	content S
}

// ensure interface compliance
var (
	_ Operand[float64] = Dual[Vec[float64], float64]{}
	_ Operand[float32] = Dual[Vec[float32], float32]{}
)

// New wraps s without copying. s must hold at least the value slot.
// Because F cannot be inferred from a method set, callers name it:
//
//	x := dual.New[float64](&dual.Array3[float64]{17, 1, 0})
func New[F Scalar, S Owned[S, F]](s S) Dual[S, F] {
	checkNotEmpty(len(s.RO()))
	return Dual[S, F]{content: s}
}

// FromSlice wraps s as a Vec-backed dual without copying: s[0] is the value
// and s[1:] the derivatives.
func FromSlice[F Scalar](s []F) Dual[Vec[F], F] {
	checkNotEmpty(len(s))
	return Dual[Vec[F], F]{content: Vec[F](s)}
}

// Constant returns a Vec-backed dual with value v and ndiffs derivatives,
// all zero.
func Constant[F Scalar](v F, ndiffs int) Dual[Vec[F], F] {
	if ndiffs < 0 {
		panic(fmt.Sprintf("dual: negative number of diffs: %d", ndiffs))
	}
	s := make(Vec[F], ndiffs+1)
	s[0] = v
	return Dual[Vec[F], F]{content: s}
}

// ConstantIn overwrites s with value v and zero derivatives and wraps it.
// The number of derivatives is len(s.RO())-1.
func ConstantIn[S Owned[S, F], F Scalar](s S, v F) Dual[S, F] {
	sl := s.RW()
	checkNotEmpty(len(sl))
	simd.Fill(sl, 0)
	sl[0] = v
	return Dual[S, F]{content: s}
}

// Storage returns the backing container.
func (d Dual[S, F]) Storage() S {
	return d.content
}

// Slice returns value and derivatives as one slice.
func (d Dual[S, F]) Slice() []F {
	return d.content.RO()
}

// SliceMut returns value and derivatives as one writable slice.
func (d Dual[S, F]) SliceMut() []F {
	return d.content.RW()
}

// Val returns the value.
func (d Dual[S, F]) Val() F {
	return d.content.RO()[0]
}

// ValPtr returns a pointer to the value slot.
func (d Dual[S, F]) ValPtr() *F {
	return &d.content.RW()[0]
}

// SetVal overwrites the value, leaving the derivatives untouched.
func (d Dual[S, F]) SetVal(v F) {
	d.content.RW()[0] = v
}

// Diffs returns the derivatives.
func (d Dual[S, F]) Diffs() []F {
	return d.content.RO()[1:]
}

// DiffsMut returns the derivatives as a writable slice.
func (d Dual[S, F]) DiffsMut() []F {
	return d.content.RW()[1:]
}

// Ndiffs returns the number of derivatives.
func (d Dual[S, F]) Ndiffs() int {
	return len(d.content.RO()) - 1
}

// Mode always returns RW.
func (d Dual[S, F]) Mode() Mode {
	return RW
}

// Clone returns a dual backed by an independent copy of the storage.
func (d Dual[S, F]) Clone() Dual[S, F] {
	return Dual[S, F]{content: d.content.Clone()}
}

// View returns a read-only dual over the same memory.
func (d Dual[S, F]) View() View[Slice[F], F] {
	return View[Slice[F], F]{content: Slice[F]{s: d.content.RO()}}
}

// IsClose reports whether every slot of d is within atol of the matching
// slot of other. It panics if the derivative counts differ.
func (d Dual[S, F]) IsClose(other Operand[F], atol F) bool {
	return isClose[F](d, other, atol)
}

// Equal reports whether d and other hold exactly the same scalars.
func (d Dual[S, F]) Equal(other Operand[F]) bool {
	return equal[F](d, other)
}

func (d Dual[S, F]) String() string {
	return format[F](d)
}

// Neg negates the value and every derivative.
func (d Dual[S, F]) Neg() Dual[S, F] {
	simd.VecNeg(d.content.RW())
	return d
}

// Exp returns e^d.
func (d Dual[S, F]) Exp() Dual[S, F] {
	s := d.content.RW()
	e := exp(s[0])
	s[0] = e
	simd.VecScale(s[1:], e)
	return d
}

// Exp2 returns 2^d.
func (d Dual[S, F]) Exp2() Dual[S, F] {
	s := d.content.RW()
	e := exp2(s[0])
	s[0] = e
	simd.VecScale(s[1:], ln2[F]()*e)
	return d
}

// ExpBase returns base^d. base must be positive.
func (d Dual[S, F]) ExpBase(base F) Dual[S, F] {
	s := d.content.RW()
	e := powf(base, s[0])
	s[0] = e
	simd.VecScale(s[1:], ln(base)*e)
	return d
}

// Ln returns the natural logarithm of d.
func (d Dual[S, F]) Ln() Dual[S, F] {
	s := d.content.RW()
	v := s[0]
	s[0] = ln(v)
	simd.VecDivScalar(s[1:], v)
	return d
}

// Inv returns 1/d.
func (d Dual[S, F]) Inv() Dual[S, F] {
	s := d.content.RW()
	v := s[0]
	sq := v * v
	s[0] = 1 / v
	simd.VecScale(s[1:], -1/sq)
	return d
}

// Powf returns d^e for a constant exponent.
func (d Dual[S, F]) Powf(e F) Dual[S, F] {
	s := d.content.RW()
	v := s[0]
	s[0] = powf(v, e)
	simd.VecScale(s[1:], e*powf(v, e-1))
	return d
}

// PowDual returns d^e where the exponent is itself a dual number.
//
// A zero base yields an all-zero result, value and derivatives, instead of
// the NaN the general rule would produce through ln(0).
func (d Dual[S, F]) PowDual(e Operand[F]) Dual[S, F] {
	checkSameNdiffs(d.Ndiffs(), e.Ndiffs())
	s := d.content.RW()
	v := s[0]
	if v == 0 {
		simd.Fill(s, 0)
		return d
	}
	ve := e.Val()
	de := e.Diffs()
	c := powf(v, ve-1)
	lnv := ln(v)
	s[0] = powf(v, ve)
	for i, ds := range s[1:] {
		s[i+1] = c * (v*de[i]*lnv + ve*ds)
	}
	return d
}

// Abs returns |d|. At a zero value the derivatives are kept as they are,
// i.e. the positive branch is taken.
func (d Dual[S, F]) Abs() Dual[S, F] {
	if d.Val() < 0 {
		return d.Neg()
	}
	return d
}

func isClose[F Scalar](a, b Operand[F], atol F) bool {
	checkSameNdiffs(a.Ndiffs(), b.Ndiffs())
	return simd.AllClose(a.Slice(), b.Slice(), atol)
}

func equal[F Scalar](a, b Operand[F]) bool {
	sa, sb := a.Slice(), b.Slice()
	if len(sa) != len(sb) {
		return false
	}
	for i := range sa {
		if sa[i] != sb[i] {
			return false
		}
	}
	return true
}

func format[F Scalar](d Operand[F]) string {
	return fmt.Sprintf("%v %v", d.Val(), d.Diffs())
}
