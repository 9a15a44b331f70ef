package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

func (r *Registry) initScreeningMetrics() {
	r.ScreeningDuration = promauto.With(r.registry).NewHistogram(
		prometheus.HistogramOpts{
			Name:    "louvain_screening_duration_seconds",
			Help:    "Duration of incremental delta-screening over a batch of edge updates",
			Buckets: prometheus.DefBuckets,
		},
	)

	r.AffectedVerticesRatio = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "louvain_affected_vertices_ratio",
			Help: "Fraction of the vertex span marked affected by the most recent screening pass",
		},
	)

	r.BatchEdgesTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "louvain_batch_edges_total",
			Help: "Number of edge updates processed by delta-screening, partitioned by kind",
		},
		[]string{"kind"}, // "insertion" or "deletion"
	)
}
