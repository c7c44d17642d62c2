package vars

import (
	"fmt"

	"github.com/23skdu/fwdad/dual"
)

// Set is a named group of variables. The variables returned by Var share
// storage with the set, so Reseed updates them in place; Clone a variable
// before computing on it.
type Set[F dual.Scalar] struct {
	names []string
	index map[string]int
	vars  []dual.Dual[dual.Vec[F], F]
}

// NewSet declares one variable per name, in order.
func NewSet[F dual.Scalar](names []string, values []F) (*Set[F], error) {
	if len(names) != len(values) {
		return nil, fmt.Errorf("%w: %d names, %d values", ErrLengthMismatch, len(names), len(values))
	}
	index := make(map[string]int, len(names))
	for i, name := range names {
		if _, ok := index[name]; ok {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateName, name)
		}
		index[name] = i
	}
	return &Set[F]{
		names: append([]string(nil), names...),
		index: index,
		vars:  Declare(values...),
	}, nil
}

// Len returns the number of variables, which is also the number of
// derivatives of each of them.
func (s *Set[F]) Len() int {
	return len(s.vars)
}

// Names returns the variable names in derivative order.
func (s *Set[F]) Names() []string {
	return append([]string(nil), s.names...)
}

// Vars returns the variables in derivative order.
func (s *Set[F]) Vars() []dual.Dual[dual.Vec[F], F] {
	return s.vars
}

// Var returns the named variable.
func (s *Set[F]) Var(name string) (dual.Dual[dual.Vec[F], F], error) {
	i, ok := s.index[name]
	if !ok {
		return dual.Dual[dual.Vec[F], F]{}, fmt.Errorf("%w: %q", ErrUnknownVariable, name)
	}
	return s.vars[i], nil
}

// Getter returns a function reading the derivative with respect to the
// named variable.
func (s *Set[F]) Getter(name string) (func(dual.Operand[F]) F, error) {
	i, ok := s.index[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownVariable, name)
	}
	return Getter[F](i), nil
}

// Values returns the current value of every variable.
func (s *Set[F]) Values() []F {
	out := make([]F, len(s.vars))
	for i, v := range s.vars {
		out[i] = v.Val()
	}
	return out
}

// Gradient maps each variable name to the matching derivative of d.
func (s *Set[F]) Gradient(d dual.Operand[F]) (map[string]F, error) {
	if d.Ndiffs() != len(s.vars) {
		return nil, fmt.Errorf("%w: %d derivatives for %d variables", ErrLengthMismatch, d.Ndiffs(), len(s.vars))
	}
	out := make(map[string]F, len(s.names))
	for i, name := range s.names {
		out[name] = d.Diffs()[i]
	}
	return out, nil
}

// Reseed rewrites every variable with a new value and its basis derivative
// vector, reusing the existing buffers.
func (s *Set[F]) Reseed(values []F) error {
	if len(values) != len(s.vars) {
		return fmt.Errorf("%w: %d values for %d variables", ErrLengthMismatch, len(values), len(s.vars))
	}
	for i, v := range values {
		s.vars[i] = Seed(s.vars[i], v, i)
	}
	return nil
}
