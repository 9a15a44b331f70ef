package louvain

import (
	"time"

	"github.com/google/uuid"

	"github.com/dd0wney/louvain-engine/pkg/graph"
	"github.com/dd0wney/louvain-engine/pkg/logging"
	"github.com/dd0wney/louvain-engine/pkg/metrics"
)

// Driver runs the multi-level Louvain algorithm, alternating local-
// moving and aggregation, and composes the per-level lineage mapping
// back down to the original vertex set. A Driver is safe to reuse
// across runs; it holds only its logging, metrics and clock collaborators.
type Driver struct {
	Logger  logging.Logger
	Metrics *metrics.Registry
	Clock   Clock
}

// NewDriver returns a Driver wired to the process-wide default logger
// and metrics registry.
func NewDriver() *Driver {
	return &Driver{
		Logger:  logging.DefaultLogger(),
		Metrics: metrics.DefaultRegistry(),
		Clock:   DefaultClock,
	}
}

var defaultDriver = NewDriver()

// Louvain runs a from-scratch (static) partitioning of x using the
// process-wide default Driver.
func Louvain(x graph.Graph, opts Options) (Result, error) {
	return defaultDriver.Run(x, opts)
}

// LouvainIncremental runs an incremental update of an existing
// partition using the process-wide default Driver.
func LouvainIncremental(x graph.Graph, opts Options, priorMembership []int, deletions, insertions [][2]int) (Result, error) {
	return defaultDriver.RunIncremental(x, opts, priorMembership, deletions, insertions)
}

// Run performs a from-scratch partitioning of x.
func (d *Driver) Run(x graph.Graph, opts Options) (Result, error) {
	return d.run(x, opts, nil, nil)
}

// RunIncremental performs an incremental update: it first screens the
// batch of edge insertions and deletions to determine the working
// vertex set at the finest level, then runs the same multi-level
// descent restricted to that set at level zero.
//
// x must already reflect the post-update graph: deletions removed and
// insertions applied. priorMembership is the partition being updated,
// indexed by x's vertex keys.
func (d *Driver) RunIncremental(x graph.Graph, opts Options, priorMembership []int, deletions, insertions [][2]int) (Result, error) {
	if len(priorMembership) < x.Span() {
		return Result{}, ErrPriorMembershipSpan
	}
	if !batchIsSymmetric(deletions) || !batchIsSymmetric(insertions) {
		return Result{}, ErrBatchNotSymmetric
	}

	vtot := computeVertexWeights(x)
	m := sum(vtot) / 2
	vcom := make([]int, x.Span())
	copy(vcom, priorMembership[:x.Span()])
	ctot := computeCommunityWeights(x, vcom, vtot)

	start := time.Now()
	affected := affectedVertices(x, vcom, vtot, ctot, m, opts.Resolution, deletions, insertions)
	screeningTime := time.Since(start)

	active := make([]int, 0, len(affected))
	for u, ok := range affected {
		if ok {
			active = append(active, u)
		}
	}
	d.Metrics.RecordScreening(screeningTime, len(insertions), len(deletions), len(active), x.Span())
	d.Logger.Debug("delta-screening complete",
		logging.Count(len(active)),
		logging.Duration("duration", screeningTime))

	return d.run(x, opts, vcom, active)
}

// run drives the multi-level descent. If initialVcom is non-nil, it
// seeds level zero's partition (incremental mode); otherwise level
// zero starts from the singleton partition (static mode). If active is
// non-nil, local-moving at level zero is restricted to those vertices.
func (d *Driver) run(x graph.Graph, opts Options, initialVcom []int, active []int) (Result, error) {
	if err := opts.Validate(); err != nil {
		return Result{}, ErrInvalidOptions
	}

	runID := uuid.NewString()
	start := d.Clock.Now()

	span := x.Span()
	if span == 0 {
		return Result{RunID: runID, Membership: nil, Time: d.Clock.Now().Sub(start)}, nil
	}

	vtot0 := computeVertexWeights(x)
	m := sum(vtot0) / 2
	if m == 0 {
		membership := make([]int, span)
		x.ForEachVertexKey(func(u int) { membership[u] = u })
		return Result{RunID: runID, Membership: membership, Time: d.Clock.Now().Sub(start)}, nil
	}

	var vcom []int
	if initialVcom != nil {
		vcom = initialVcom
	} else {
		vcom, _ = initializePartition(x, vtot0)
	}

	cur := x
	vtot := vtot0
	ctot := computeCommunityWeights(cur, vcom, vtot)
	ePass := opts.Tolerance

	var levels [][]int
	totalIterations := 0
	passesRun := 0
	levelActive := active

	for p := 0; p < opts.MaxPasses; p++ {
		buf := newScanBuffer(cur.Span())
		moveStart := time.Now()
		iters, deltaQ, movesApplied := move(cur, vcom, vtot, ctot, buf, m, opts.Resolution, ePass, opts.MaxIterations, levelActive)
		totalIterations += iters

		d.Metrics.RecordPass(iters, iters >= opts.MaxIterations, time.Since(moveStart), movesApplied, deltaQ)

		levelVcom := make([]int, len(vcom))
		copy(levelVcom, vcom)
		levels = append(levels, levelVcom)

		if deltaQ <= opts.PassTolerance {
			break
		}
		passesRun++
		if p == opts.MaxPasses-1 {
			break
		}

		aggStart := time.Now()
		coarser := aggregate(cur, vcom)
		d.Metrics.RecordAggregation(time.Since(aggStart), cur.Span(), coarser.Span())

		cur = coarser
		vtot = computeVertexWeights(cur)
		vcom, _ = initializePartition(cur, vtot)
		ctot = computeCommunityWeights(cur, vcom, vtot)
		ePass *= opts.ToleranceDeclineFactor
		levelActive = nil // delta-screening restriction applies only at the finest level
	}

	membership := make([]int, len(levels[0]))
	copy(membership, levels[0])
	for i := 1; i < len(levels); i++ {
		lookupCommunities(membership, levels[i])
	}

	elapsed := d.Clock.Now().Sub(start)
	result := Result{
		RunID:      runID,
		Membership: membership,
		Iterations: totalIterations,
		Passes:     passesRun,
		Time:       elapsed,
	}
	result.Modularity = Modularity(x, membership, 1)

	d.Metrics.RecordRun(runMode(active != nil), elapsed, passesRun, result.Modularity, result.CommunityCount())
	d.Logger.Info("louvain run complete",
		logging.RunID(runID),
		logging.PassID(passesRun),
		logging.Count(totalIterations),
		logging.Modularity(result.Modularity),
		logging.Duration("duration", elapsed))

	return result, nil
}

func runMode(incremental bool) string {
	if incremental {
		return "incremental"
	}
	return "static"
}

func sum(xs []float64) float64 {
	var s float64
	for _, x := range xs {
		s += x
	}
	return s
}

func batchIsSymmetric(edges [][2]int) bool {
	seen := make(map[[2]int]bool, len(edges))
	for _, e := range edges {
		seen[e] = true
	}
	for pair := range seen {
		if !seen[[2]int{pair[1], pair[0]}] {
			return false
		}
	}
	return true
}
