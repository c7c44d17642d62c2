// Package vars declares the independent variables of a computation.
//
// Each variable is a dual number whose derivative vector is a basis vector:
// variable i has a 1 at derivative index i and 0 elsewhere. Evaluating an
// expression built from such variables yields, in the result's derivative
// slots, the partial derivative with respect to each variable in turn.
package vars

import (
	"errors"
	"fmt"

	"github.com/23skdu/fwdad/dual"
)

var (
	ErrLengthMismatch  = errors.New("vars: names and values differ in length")
	ErrDuplicateName   = errors.New("vars: duplicate variable name")
	ErrUnknownVariable = errors.New("vars: unknown variable")
)

// Declare returns one variable per value. All variables share the same
// number of derivatives, len(values).
func Declare[F dual.Scalar](values ...F) []dual.Dual[dual.Vec[F], F] {
	n := len(values)
	out := make([]dual.Dual[dual.Vec[F], F], n)
	for i, v := range values {
		out[i] = dual.Constant(v, n)
		out[i].DiffsMut()[i] = 1
	}
	return out
}

// Seed overwrites d with the variable of value v and index i.
// It panics if i is not a valid derivative index of d.
func Seed[S dual.Owned[S, F], F dual.Scalar](d dual.Dual[S, F], v F, i int) dual.Dual[S, F] {
	checkIndex(i, d.Ndiffs())
	d = dual.ConstantIn(d.Storage(), v)
	d.DiffsMut()[i] = 1
	return d
}

// Getter returns a function reading derivative i of a dual number. The
// returned function panics if its argument has no derivative i.
func Getter[F dual.Scalar](i int) func(dual.Operand[F]) F {
	if i < 0 {
		panic(fmt.Sprintf("vars: negative derivative index %d", i))
	}
	return func(d dual.Operand[F]) F {
		checkIndex(i, d.Ndiffs())
		return d.Diffs()[i]
	}
}

func checkIndex(i, ndiffs int) {
	if i < 0 || i >= ndiffs {
		panic(fmt.Sprintf("vars: derivative index %d out of range [0, %d)", i, ndiffs))
	}
}
