package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

func (r *Registry) initMoveMetrics() {
	r.MoveIterationDuration = promauto.With(r.registry).NewHistogram(
		prometheus.HistogramOpts{
			Name:    "louvain_move_iteration_duration_seconds",
			Help:    "Duration of one local-moving phase, covering all of its sweeps",
			Buckets: prometheus.DefBuckets,
		},
	)

	r.MovesAppliedTotal = promauto.With(r.registry).NewCounter(
		prometheus.CounterOpts{
			Name: "louvain_moves_applied_total",
			Help: "Number of vertex reassignments accepted across all local-moving sweeps",
		},
	)

	r.DeltaQRealizedTotal = promauto.With(r.registry).NewCounter(
		prometheus.CounterOpts{
			Name: "louvain_delta_q_realized_total",
			Help: "Sum of realized modularity gain from accepted moves",
		},
	)
}
