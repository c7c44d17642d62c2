package client

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var breakerState = promauto.NewGauge(prometheus.GaugeOpts{
	Name: "fwdad_client_breaker_state",
	Help: "Flight client circuit breaker state (0 closed, 1 open, 2 half-open)",
})
