package grad

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	evaluations = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "fwdad_gradient_evaluations_total",
		Help: "Total number of gradient evaluations per objective",
	}, []string{"objective"})

	evalDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "fwdad_gradient_eval_duration_seconds",
		Help:    "Time spent evaluating one point",
		Buckets: prometheus.ExponentialBuckets(1e-7, 4, 12),
	}, []string{"objective"})

	batchDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "fwdad_gradient_batch_duration_seconds",
		Help:    "Time spent evaluating a batch of points",
		Buckets: prometheus.DefBuckets,
	})

	batchSize = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "fwdad_gradient_batch_size",
		Help:    "Number of points per evaluated batch",
		Buckets: prometheus.ExponentialBuckets(1, 4, 10),
	})
)
