package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

func (r *Registry) initDriverMetrics() {
	r.RunsTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "louvain_runs_total",
			Help: "Number of completed driver runs, partitioned by mode",
		},
		[]string{"mode"}, // "static" or "incremental"
	)

	r.RunDuration = promauto.With(r.registry).NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "louvain_run_duration_seconds",
			Help:    "Wall-clock time of a complete driver run",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"mode"},
	)

	r.PassesPerRun = promauto.With(r.registry).NewHistogram(
		prometheus.HistogramOpts{
			Name:    "louvain_passes_per_run",
			Help:    "Number of coarsening passes performed per run",
			Buckets: prometheus.LinearBuckets(0, 2, 10),
		},
	)

	r.IterationsTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "louvain_iterations_total",
			Help: "Total local-moving iterations performed, partitioned by pass outcome",
		},
		[]string{"outcome"}, // "converged" or "cap_hit"
	)

	r.FinalModularity = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "louvain_final_modularity",
			Help: "Modularity Q of the partition returned by the most recent run",
		},
	)

	r.CommunityCount = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "louvain_community_count",
			Help: "Number of non-empty communities in the most recent result",
		},
	)
}
