package cache

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	cacheHits = promauto.NewCounter(prometheus.CounterOpts{
		Name: "fwdad_cache_hits_total",
		Help: "Total number of evaluations served from the cache",
	})

	cacheMisses = promauto.NewCounter(prometheus.CounterOpts{
		Name: "fwdad_cache_misses_total",
		Help: "Total number of cache lookups that found nothing",
	})

	cacheEvictions = promauto.NewCounter(prometheus.CounterOpts{
		Name: "fwdad_cache_evictions_total",
		Help: "Total number of entries evicted to stay within capacity",
	})

	cacheEntries = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "fwdad_cache_entries",
		Help: "Current number of cached evaluations across all caches",
	})
)
