// Package objective holds the scalar functions the gradient service and the
// optimizer work on. Every objective is written against the dual API, so
// evaluating it on declared variables yields its exact gradient.
package objective

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/23skdu/fwdad/dual"
	"golang.org/x/text/cases"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	ErrUnknown   = errors.New("unknown objective")
	ErrDimension = errors.New("dimension mismatch")
	ErrDuplicate = errors.New("objective already registered")
)

// Func evaluates an objective. The arguments are the declared variables
// and must not be modified; the result is a fresh dual number.
type Func func(x []dual.Owning64) dual.Owning64

// Objective is a named scalar function of a point.
type Objective struct {
	Name        string
	Description string
	// Dim is the required dimension. Zero accepts any dimension of at
	// least MinDim.
	Dim    int
	MinDim int
	// Minimizer is a known global minimum for the default dimension, if any.
	Minimizer []float64
	// Nonsmooth marks objectives with no derivative at Minimizer. The
	// derivative reported there is the one-sided convention of dual.Abs.
	Nonsmooth bool
	Eval      Func
}

// CheckDim reports whether the objective accepts points of dimension n.
func (o Objective) CheckDim(n int) error {
	switch {
	case o.Dim > 0 && n != o.Dim:
		return fmt.Errorf("%w: %s takes %d variables, got %d", ErrDimension, o.Name, o.Dim, n)
	case n < max(o.MinDim, 1):
		return fmt.Errorf("%w: %s takes at least %d variables, got %d", ErrDimension, o.Name, max(o.MinDim, 1), n)
	}
	return nil
}

// Normalize folds an objective name to its registry key: accents are
// stripped, case is folded and runs of spaces or underscores become a
// single dash. "Styblinski Tang" and "styblinski-tang" are the same key.
func Normalize(name string) string {
	tform := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC, cases.Fold())
	s, _, err := transform.String(tform, strings.TrimSpace(name))
	if err != nil {
		s = strings.ToLower(strings.TrimSpace(name))
	}
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == '-' || r == '_' || unicode.IsSpace(r)
	})
	return strings.Join(fields, "-")
}
