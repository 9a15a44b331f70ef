package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

func (r *Registry) initAggregationMetrics() {
	r.AggregationDuration = promauto.With(r.registry).NewHistogram(
		prometheus.HistogramOpts{
			Name:    "louvain_aggregation_duration_seconds",
			Help:    "Duration of a single community-aggregation phase",
			Buckets: prometheus.DefBuckets,
		},
	)

	r.AggregationSpanBefore = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "louvain_aggregation_span_before",
			Help: "Vertex span of the graph entering the most recent aggregation",
		},
	)

	r.AggregationSpanAfter = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "louvain_aggregation_span_after",
			Help: "Vertex span of the graph produced by the most recent aggregation",
		},
	)
}
