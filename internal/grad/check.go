package grad

import (
	"errors"
	"fmt"
	"math"

	"github.com/23skdu/fwdad/internal/objective"
	"gonum.org/v1/gonum/diff/fd"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

var ErrGradientMismatch = errors.New("gradient does not match finite differences")

// CheckResult compares a dual-number gradient with a central finite
// difference estimate.
type CheckResult struct {
	AD []float64
	FD []float64
	// MaxErr is the largest |AD[i]-FD[i]| / max(1, |FD[i]|).
	MaxErr float64
}

// Check differentiates f at point both ways and returns
// ErrGradientMismatch when MaxErr exceeds tol.
func Check(f objective.Func, point []float64, tol float64) (CheckResult, error) {
	_, ad := Gradient(f, point)
	est := fd.Gradient(nil, func(x []float64) float64 {
		return Value(f, x)
	}, point, &fd.Settings{Formula: fd.Central})

	res := CheckResult{AD: ad, FD: est, MaxErr: maxRelErr(ad, est)}
	if !(res.MaxErr <= tol) {
		return res, fmt.Errorf("%w: max error %g above %g (distance %g)",
			ErrGradientMismatch, res.MaxErr, tol, floats.Distance(ad, est, math.Inf(1)))
	}
	return res, nil
}

// CheckJacobian is Check for vector-valued functions.
func CheckJacobian(f VecFunc, point []float64, tol float64) (*mat.Dense, error) {
	values, jac, err := Jacobian(f, point)
	if err != nil {
		return nil, err
	}
	est := mat.NewDense(len(values), len(point), nil)
	fd.Jacobian(est, func(y, x []float64) {
		out := f(constants(x))
		for i, o := range out {
			y[i] = o.Val()
		}
	}, point, &fd.JacobianSettings{Formula: fd.Central})

	rows, _ := jac.Dims()
	worst := 0.0
	for i := 0; i < rows; i++ {
		worst = max(worst, maxRelErr(jac.RawRowView(i), est.RawRowView(i)))
	}
	if !(worst <= tol) {
		return jac, fmt.Errorf("%w: max error %g above %g", ErrGradientMismatch, worst, tol)
	}
	return jac, nil
}

func maxRelErr(ad, est []float64) float64 {
	worst := 0.0
	for i := range ad {
		e := math.Abs(ad[i]-est[i]) / math.Max(1, math.Abs(est[i]))
		if math.IsNaN(e) {
			return math.NaN()
		}
		worst = math.Max(worst, e)
	}
	return worst
}
