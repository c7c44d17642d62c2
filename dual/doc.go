// Package dual implements forward-mode automatic differentiation with dual
// numbers.
//
// A dual number is a flat sequence of scalars [v, d1, d2, ..., dn]: index 0
// holds the value and indices 1..n hold the partial derivatives of that value
// with respect to n independent variables, in an order chosen by the caller.
// Arithmetic and elementary functions propagate the derivatives alongside the
// value with the usual sum, product, quotient, power, exp and log rules, so a
// single evaluation yields the value and the full gradient.
//
// Storage and ownership:
//
// The same algorithm runs over any container that can be read as a flat
// sequence of scalars. Two types select the capability statically:
//
//   - Dual[S, F] is read-write. S must implement Owned (for example Vec, or
//     *Array3). Arithmetic methods overwrite the receiver's storage and return
//     the receiver, so x.Add(y).Mul(y) allocates nothing.
//   - View[S, F] is read-only. S only has to implement Reader (for example
//     Slice, or ArrayRef3). A view never writes to the memory it references.
//
// Computing from a View requires an owned copy first: v.ToOwning().Exp().
// Unless the package is built with the noimplicitclone tag, View also carries
// the arithmetic methods directly, each of which clones into a Vec.
//
// Mismatched derivative counts between the operands of a binary operation are
// a programming error and panic with a *MismatchError.
//
// Basic usage:
//
//	x := dual.FromSlice([]float64{42, 1, 0})
//	y := dual.FromSlice([]float64{17, 0, 1})
//	res := x.Add(y).Mul(y) // x is overwritten with (x+y)*y
//	fmt.Println(res.Val(), res.Diffs())
package dual

//go:generate go run ../cmd/dualgen -max 32 -out arrays_gen.go
