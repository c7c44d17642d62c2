// Package optim minimizes objectives using the gradients dual numbers
// provide, either with plain gradient descent or with gonum's quasi-Newton
// and conjugate gradient methods.
package optim

import (
	"context"
	"errors"
	"fmt"
	"math"
	"slices"
	"strings"
	"time"

	"github.com/23skdu/fwdad/internal/objective"
	"github.com/23skdu/fwdad/internal/simd"
	"github.com/23skdu/fwdad/vars"
	"github.com/rs/zerolog/log"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"gonum.org/v1/gonum/floats"
)

var tracer = otel.Tracer("fwdad-optim")

var ErrUnknownMethod = errors.New("unknown optimization method")

// Method selects the minimization algorithm.
type Method string

const (
	Descent Method = "descent"
	BFGS    Method = "bfgs"
	LBFGS   Method = "lbfgs"
	CG      Method = "cg"
)

// Methods lists every supported method.
func Methods() []Method {
	return []Method{Descent, BFGS, LBFGS, CG}
}

// ParseMethod accepts a method name in any case.
func ParseMethod(s string) (Method, error) {
	m := Method(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Methods() {
		if m == known {
			return m, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownMethod, s)
}

// Config controls a minimization run.
type Config struct {
	// Alpha is the gradient descent step size. Rosenbrock is steep, so the
	// default is small.
	Alpha float64
	// MaxIter bounds the number of major iterations.
	MaxIter int
	// Tol stops the run once the infinity norm of the gradient is at most
	// Tol. Zero never stops early.
	Tol float64
	// LogEvery logs progress every LogEvery iterations. Zero disables it.
	LogEvery int
}

func DefaultConfig() Config {
	return Config{
		Alpha:   1e-3,
		MaxIter: 10000,
	}
}

func (c Config) validate() error {
	if !(c.Alpha > 0) {
		return fmt.Errorf("alpha must be positive, got %g", c.Alpha)
	}
	if c.MaxIter < 0 {
		return fmt.Errorf("max iterations must not be negative, got %d", c.MaxIter)
	}
	if c.Tol < 0 || math.IsNaN(c.Tol) {
		return fmt.Errorf("tolerance must not be negative, got %g", c.Tol)
	}
	return nil
}

// Result is the final state of a minimization run.
type Result struct {
	X          []float64
	Value      float64
	Gradient   []float64
	Iterations int
	Converged  bool
	Status     string
}

// Descend runs gradient descent from start: x -= Alpha * grad f(x). The
// variables are declared once and reseeded in place at every step.
func Descend(ctx context.Context, o objective.Objective, start []float64, cfg Config) (Result, error) {
	if err := cfg.validate(); err != nil {
		return Result{}, err
	}
	if err := o.CheckDim(len(start)); err != nil {
		return Result{}, err
	}
	names := make([]string, len(start))
	for i := range names {
		names[i] = fmt.Sprintf("x%d", i)
	}
	set, err := vars.NewSet(names, start)
	if err != nil {
		return Result{}, fmt.Errorf("failed to declare variables: %w", err)
	}

	ctx, span := tracer.Start(ctx, "optim.Descend", trace.WithAttributes(
		attribute.String("objective", o.Name),
		attribute.Int("dim", len(start)),
		attribute.Float64("alpha", cfg.Alpha),
	))
	defer span.End()

	began := time.Now()
	x := append([]float64(nil), start...)
	res := Result{Status: "IterationLimit"}
	for iter := 0; ; iter++ {
		f := o.Eval(set.Vars())
		res.Value, res.Gradient, res.Iterations = f.Val(), slices.Clone(f.Diffs()), iter

		if cfg.LogEvery > 0 && iter%cfg.LogEvery == 0 {
			log.Info().
				Int("iter", iter).
				Floats64("x", x).
				Float64("value", res.Value).
				Msg("Descent step")
		}
		if cfg.Tol > 0 && floats.Norm(res.Gradient, math.Inf(1)) <= cfg.Tol {
			res.Converged, res.Status = true, "GradientThreshold"
			break
		}
		if iter == cfg.MaxIter {
			break
		}
		if err := ctx.Err(); err != nil {
			span.RecordError(err)
			return Result{}, err
		}
		simd.VecAddScaled(x, res.Gradient, -cfg.Alpha)
		if err := set.Reseed(x); err != nil {
			return Result{}, err
		}
	}
	res.X = x

	runs.WithLabelValues(string(Descent)).Inc()
	iterations.WithLabelValues(string(Descent)).Observe(float64(res.Iterations))
	log.Debug().
		Str("objective", o.Name).
		Int("iterations", res.Iterations).
		Float64("value", res.Value).
		Dur("elapsed", time.Since(began)).
		Msg("Descent finished")
	return res, nil
}
