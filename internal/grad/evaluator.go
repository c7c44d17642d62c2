package grad

import (
	"context"
	"fmt"
	"runtime"
	"time"

	"github.com/23skdu/fwdad/internal/cache"
	"github.com/23skdu/fwdad/internal/objective"
	"github.com/rs/zerolog/log"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"
)

var tracer = otel.Tracer("fwdad-grad")

// Evaluator computes gradients for batches of points concurrently. Every
// point gets its own freshly declared variables, so workers share no
// mutable state apart from the optional cache.
type Evaluator struct {
	workers int
	cache   cache.ResultCache
}

// Option configures an Evaluator.
type Option func(*Evaluator)

// WithWorkers bounds the number of points evaluated at once.
func WithWorkers(n int) Option {
	return func(e *Evaluator) {
		if n > 0 {
			e.workers = n
		}
	}
}

// WithCache serves repeated points from c.
func WithCache(c cache.ResultCache) Option {
	return func(e *Evaluator) {
		e.cache = c
	}
}

func NewEvaluator(opts ...Option) *Evaluator {
	e := &Evaluator{workers: runtime.GOMAXPROCS(0)}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func (e *Evaluator) Workers() int {
	return e.workers
}

// Evaluate returns one Result per point, in order. All points are checked
// against the objective's dimension before any is evaluated. Cancelling
// ctx stops the batch between points.
func (e *Evaluator) Evaluate(ctx context.Context, o objective.Objective, points [][]float64) ([]Result, error) {
	ctx, span := tracer.Start(ctx, "grad.Evaluate", trace.WithAttributes(
		attribute.String("objective", o.Name),
		attribute.Int("points", len(points)),
	))
	defer span.End()

	for i, p := range points {
		if err := o.CheckDim(len(p)); err != nil {
			span.RecordError(err)
			return nil, fmt.Errorf("point %d: %w", i, err)
		}
	}

	start := time.Now()
	results := make([]Result, len(points))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.workers)
	for i, p := range points {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = e.evaluateOne(o, p)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		span.RecordError(err)
		return nil, err
	}
	// The loop may have stopped early without any goroutine seeing the
	// cancellation.
	if err := ctx.Err(); err != nil {
		span.RecordError(err)
		return nil, err
	}

	batchDuration.Observe(time.Since(start).Seconds())
	batchSize.Observe(float64(len(points)))
	log.Debug().
		Str("objective", o.Name).
		Int("points", len(points)).
		Dur("elapsed", time.Since(start)).
		Msg("Evaluated batch")
	return results, nil
}

func (e *Evaluator) evaluateOne(o objective.Objective, p []float64) Result {
	var key string
	if e.cache != nil {
		key = cache.Key(o.Name, p)
		if c, ok := e.cache.Get(key); ok {
			return Result{Value: c.Value, Gradient: c.Gradient}
		}
	}
	// The dimension was checked by the caller.
	r, _ := Evaluate(o, p)
	if e.cache != nil {
		e.cache.Put(key, cache.Entry{Value: r.Value, Gradient: r.Gradient})
	}
	return r
}
