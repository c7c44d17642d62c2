// Package grad evaluates gradients and Jacobians with dual numbers and
// cross-checks them against finite differences.
package grad

import (
	"errors"
	"fmt"
	"time"

	"github.com/23skdu/fwdad/dual"
	"github.com/23skdu/fwdad/internal/objective"
	"github.com/23skdu/fwdad/vars"
	"gonum.org/v1/gonum/mat"
)

var ErrEmptyOutput = errors.New("function returned no outputs")

// Result is the value and gradient of an objective at one point.
type Result struct {
	Value    float64   `cbor:"value" json:"value"`
	Gradient []float64 `cbor:"gradient" json:"gradient"`
}

// Gradient evaluates f at point with one variable per coordinate and
// returns the value and the gradient.
func Gradient(f objective.Func, point []float64) (float64, []float64) {
	res := f(vars.Declare(point...))
	return res.Val(), res.Diffs()
}

// Value evaluates f at point without derivatives.
func Value(f objective.Func, point []float64) float64 {
	return f(constants(point)).Val()
}

func constants(point []float64) []dual.Owning64 {
	x := make([]dual.Owning64, len(point))
	for i, v := range point {
		x[i] = dual.Constant(v, 0)
	}
	return x
}

// Evaluate checks the dimension of point against o and evaluates it.
func Evaluate(o objective.Objective, point []float64) (Result, error) {
	if err := o.CheckDim(len(point)); err != nil {
		return Result{}, err
	}
	start := time.Now()
	v, g := Gradient(o.Eval, point)
	evalDuration.WithLabelValues(o.Name).Observe(time.Since(start).Seconds())
	evaluations.WithLabelValues(o.Name).Inc()
	return Result{Value: v, Gradient: g}, nil
}

// VecFunc is a vector-valued function of dual variables.
type VecFunc func(x []dual.Owning64) []dual.Owning64

// Jacobian evaluates f at point and returns its values and its Jacobian,
// with one row per output and one column per coordinate.
func Jacobian(f VecFunc, point []float64) ([]float64, *mat.Dense, error) {
	if len(point) == 0 {
		return nil, nil, fmt.Errorf("jacobian of a function of no variables")
	}
	out := f(vars.Declare(point...))
	if len(out) == 0 {
		return nil, nil, ErrEmptyOutput
	}
	values := make([]float64, len(out))
	jac := mat.NewDense(len(out), len(point), nil)
	for i, o := range out {
		if o.Ndiffs() != len(point) {
			return nil, nil, fmt.Errorf("output %d has %d derivatives, want %d", i, o.Ndiffs(), len(point))
		}
		values[i] = o.Val()
		jac.SetRow(i, o.Diffs())
	}
	return values, jac, nil
}
