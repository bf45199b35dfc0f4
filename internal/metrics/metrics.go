// Package metrics defines Prometheus metrics for pyntacle computations.
package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	ShortestPathRuns = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pyntacle_shortest_path_runs_total",
			Help: "Shortest-path matrix computations by engine mode",
		},
		[]string{"mode"},
	)

	Computations = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pyntacle_computations_total",
			Help: "Metric computations (cache misses) by metric name",
		},
		[]string{"metric"},
	)

	CacheHits = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pyntacle_cache_hits_total",
			Help: "Metric values served from an engine cache by metric name",
		},
		[]string{"metric"},
	)

	ShortestPathDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "pyntacle_shortest_path_duration_seconds",
			Help:    "Shortest-path matrix computation time in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"mode"},
	)
)

func init() {
	prometheus.MustRegister(
		ShortestPathRuns, Computations,
		CacheHits, ShortestPathDuration,
	)
}
