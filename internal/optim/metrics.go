package optim

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	runs = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "fwdad_optim_runs_total",
		Help: "Total number of completed minimization runs",
	}, []string{"method"})

	iterations = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "fwdad_optim_iterations",
		Help:    "Major iterations per minimization run",
		Buckets: prometheus.ExponentialBuckets(1, 4, 10),
	}, []string{"method"})
)
