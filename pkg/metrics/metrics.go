package metrics

import (
	"time"
)

// RecordRun records a completed driver run.
func (r *Registry) RecordRun(mode string, duration time.Duration, passes int, modularity float64, communities int) {
	r.RunsTotal.WithLabelValues(mode).Inc()
	r.RunDuration.WithLabelValues(mode).Observe(duration.Seconds())
	r.PassesPerRun.Observe(float64(passes))
	r.FinalModularity.Set(modularity)
	r.CommunityCount.Set(float64(communities))
}

// RecordPass records the outcome of one local-moving phase within a pass.
func (r *Registry) RecordPass(iterations int, capHit bool, duration time.Duration, movesApplied int, deltaQRealized float64) {
	outcome := "converged"
	if capHit {
		outcome = "cap_hit"
	}
	r.IterationsTotal.WithLabelValues(outcome).Add(float64(iterations))
	r.MoveIterationDuration.Observe(duration.Seconds())
	r.MovesAppliedTotal.Add(float64(movesApplied))
	r.DeltaQRealizedTotal.Add(deltaQRealized)
}

// RecordAggregation records one community-aggregation phase.
func (r *Registry) RecordAggregation(duration time.Duration, spanBefore, spanAfter int) {
	r.AggregationDuration.Observe(duration.Seconds())
	r.AggregationSpanBefore.Set(float64(spanBefore))
	r.AggregationSpanAfter.Set(float64(spanAfter))
}

// RecordScreening records one delta-screening pass over an incremental batch.
func (r *Registry) RecordScreening(duration time.Duration, insertions, deletions, affected, span int) {
	r.ScreeningDuration.Observe(duration.Seconds())
	r.BatchEdgesTotal.WithLabelValues("insertion").Add(float64(insertions))
	r.BatchEdgesTotal.WithLabelValues("deletion").Add(float64(deletions))
	if span > 0 {
		r.AffectedVerticesRatio.Set(float64(affected) / float64(span))
	}
}
