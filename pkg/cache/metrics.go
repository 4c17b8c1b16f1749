package cache

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	cacheHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "atlas_cache_hits_total",
			Help: "Total number of cache hits",
		},
		[]string{"cache"},
	)

	cacheMisses = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "atlas_cache_misses_total",
			Help: "Total number of cache misses",
		},
		[]string{"cache"},
	)

	cacheEvictions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "atlas_cache_evictions_total",
			Help: "Total number of cache entries evicted by TTL or removal",
		},
		[]string{"cache"},
	)

	cacheEntries = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "atlas_cache_entries",
			Help: "Current number of entries held in the cache",
		},
		[]string{"cache"},
	)
)

func recordHit(name string)         { cacheHits.WithLabelValues(name).Inc() }
func recordMiss(name string)        { cacheMisses.WithLabelValues(name).Inc() }
func recordEviction(name string)    { cacheEvictions.WithLabelValues(name).Inc() }
func updateSize(name string, n int) { cacheEntries.WithLabelValues(name).Set(float64(n)) }
