package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

// Registry holds all metrics exposed by the Louvain engine.
type Registry struct {
	// Driver metrics
	RunsTotal       *prometheus.CounterVec
	RunDuration     *prometheus.HistogramVec
	PassesPerRun    prometheus.Histogram
	IterationsTotal *prometheus.CounterVec
	FinalModularity prometheus.Gauge
	CommunityCount  prometheus.Gauge

	// Local-moving metrics
	MoveIterationDuration prometheus.Histogram
	MovesAppliedTotal     prometheus.Counter
	DeltaQRealizedTotal   prometheus.Counter

	// Aggregation metrics
	AggregationDuration   prometheus.Histogram
	AggregationSpanBefore prometheus.Gauge
	AggregationSpanAfter  prometheus.Gauge

	// Delta-screening metrics
	ScreeningDuration     prometheus.Histogram
	AffectedVerticesRatio prometheus.Gauge
	BatchEdgesTotal       *prometheus.CounterVec

	registry *prometheus.Registry
	mu       sync.RWMutex
}

var (
	// Global registry instance
	defaultRegistry *Registry
	once            sync.Once
)

// DefaultRegistry returns the process-wide metrics registry.
func DefaultRegistry() *Registry {
	once.Do(func() {
		defaultRegistry = NewRegistry()
	})
	return defaultRegistry
}

// NewRegistry creates a new metrics registry with all Louvain metrics initialized.
func NewRegistry() *Registry {
	reg := prometheus.NewRegistry()

	r := &Registry{
		registry: reg,
	}

	r.initDriverMetrics()
	r.initMoveMetrics()
	r.initAggregationMetrics()
	r.initScreeningMetrics()

	return r
}

// GetPrometheusRegistry returns the underlying Prometheus registry.
func (r *Registry) GetPrometheusRegistry() *prometheus.Registry {
	return r.registry
}
