package optim

import (
	"context"
	"fmt"
	"math"
	"slices"

	"github.com/23skdu/fwdad/internal/grad"
	"github.com/23skdu/fwdad/internal/objective"
	"github.com/rs/zerolog/log"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/optimize"
)

// Minimize runs the chosen method from start. Descent is Descend; the
// other methods hand the exact dual-number gradient to gonum's optimizer.
func Minimize(ctx context.Context, o objective.Objective, start []float64, m Method, cfg Config) (Result, error) {
	if m == Descent {
		return Descend(ctx, o, start, cfg)
	}
	var method optimize.Method
	switch m {
	case BFGS:
		method = &optimize.BFGS{}
	case LBFGS:
		method = &optimize.LBFGS{}
	case CG:
		method = &optimize.CG{}
	default:
		return Result{}, fmt.Errorf("%w: %q", ErrUnknownMethod, m)
	}
	if err := o.CheckDim(len(start)); err != nil {
		return Result{}, err
	}
	if cfg.MaxIter < 0 {
		return Result{}, fmt.Errorf("max iterations must not be negative, got %d", cfg.MaxIter)
	}
	if cfg.MaxIter == 0 {
		// gonum reads zero major iterations as unlimited.
		return evaluateStart(o, start, cfg), nil
	}

	ctx, span := tracer.Start(ctx, "optim.Minimize", trace.WithAttributes(
		attribute.String("objective", o.Name),
		attribute.String("method", string(m)),
		attribute.Int("dim", len(start)),
	))
	defer span.End()

	problem := optimize.Problem{
		Func: func(x []float64) float64 {
			return grad.Value(o.Eval, x)
		},
		Grad: func(g, x []float64) {
			_, d := grad.Gradient(o.Eval, x)
			copy(g, d)
		},
	}
	// A zero Tol selects gonum's default gradient threshold.
	settings := &optimize.Settings{
		MajorIterations:   cfg.MaxIter,
		GradientThreshold: cfg.Tol,
		Recorder:          &recorder{ctx: ctx, every: cfg.LogEvery},
	}

	r, err := optimize.Minimize(problem, start, settings, method)
	if err != nil {
		span.RecordError(err)
		if ctxErr := ctx.Err(); ctxErr != nil {
			return Result{}, ctxErr
		}
		return Result{}, fmt.Errorf("%s failed: %w", m, err)
	}

	runs.WithLabelValues(string(m)).Inc()
	iterations.WithLabelValues(string(m)).Observe(float64(r.MajorIterations))
	return Result{
		X:          r.X,
		Value:      r.F,
		Gradient:   r.Gradient,
		Iterations: r.MajorIterations,
		Converged:  r.Status == optimize.GradientThreshold || r.Status == optimize.FunctionConvergence,
		Status:     r.Status.String(),
	}, nil
}

// evaluateStart is a run that stops before its first step.
func evaluateStart(o objective.Objective, start []float64, cfg Config) Result {
	v, g := grad.Gradient(o.Eval, start)
	res := Result{
		X:        slices.Clone(start),
		Value:    v,
		Gradient: g,
		Status:   "IterationLimit",
	}
	if cfg.Tol > 0 && floats.Norm(g, math.Inf(1)) <= cfg.Tol {
		res.Converged, res.Status = true, "GradientThreshold"
	}
	return res
}

// recorder logs major iterations and aborts the run once ctx is done.
type recorder struct {
	ctx   context.Context
	every int
	iter  int
}

func (r *recorder) Init() error {
	return nil
}

func (r *recorder) Record(loc *optimize.Location, op optimize.Operation, _ *optimize.Stats) error {
	if op&optimize.MajorIteration == 0 {
		return nil
	}
	if r.every > 0 && r.iter%r.every == 0 {
		log.Info().
			Int("iter", r.iter).
			Floats64("x", loc.X).
			Float64("value", loc.F).
			Msg("Minimize step")
	}
	r.iter++
	return r.ctx.Err()
}
