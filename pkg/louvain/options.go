package louvain

import (
	"fmt"
	"time"

	"github.com/dd0wney/louvain-engine/pkg/validation"
)

// Options configures a driver run. Zero-value Options is not valid;
// use DefaultOptions and override individual fields.
type Options struct {
	// Repeat is the number of independent full runs the caller should
	// perform, typically to average timing. It does not affect the
	// correctness of any single run and is not interpreted by the core.
	Repeat int

	// Resolution scales the null-model term in the modularity delta.
	// Higher values favor smaller communities.
	Resolution float64

	// Tolerance is the threshold on the sum of realized delta-Q per
	// iteration at which local-moving stops.
	Tolerance float64

	// PassTolerance is the threshold on per-pass realized improvement
	// below which the driver stops coarsening.
	PassTolerance float64

	// ToleranceDeclineFactor multiplicatively decays Tolerance between
	// passes, tightening convergence criteria as the graph coarsens.
	ToleranceDeclineFactor float64

	// MaxIterations caps the number of sweeps within one local-moving
	// phase. Hitting the cap is not an error.
	MaxIterations int

	// MaxPasses caps the number of coarsening passes. Hitting the cap
	// is not an error.
	MaxPasses int
}

// DefaultOptions mirrors the reference defaults: a single run, unit
// resolution, zero tolerances (run to full convergence), no tolerance
// decay, and generous iteration/pass caps.
func DefaultOptions() Options {
	return Options{
		Repeat:                 1,
		Resolution:             1,
		Tolerance:              0,
		PassTolerance:          0,
		ToleranceDeclineFactor: 1,
		MaxIterations:          500,
		MaxPasses:              500,
	}
}

// Validate checks the configuration against the bounds in the external
// interface contract. It is intentionally cheap; the core does not
// re-validate on every call, only at the driver's entry points.
func (o Options) Validate() error {
	return validation.NewConfigValidator("louvain.Options").
		MinInt("Repeat", o.Repeat, 1).
		Custom("Resolution", func() error {
			if o.Resolution <= 0 || o.Resolution > 1 {
				return fmt.Errorf("must be in (0, 1], got %v", o.Resolution)
			}
			return nil
		}).
		NonNegativeFloat("Tolerance", o.Tolerance).
		NonNegativeFloat("PassTolerance", o.PassTolerance).
		Custom("ToleranceDeclineFactor", func() error {
			if o.ToleranceDeclineFactor <= 0 || o.ToleranceDeclineFactor > 1 {
				return fmt.Errorf("must be in (0, 1], got %v", o.ToleranceDeclineFactor)
			}
			return nil
		}).
		MinInt("MaxIterations", o.MaxIterations, 1).
		MinInt("MaxPasses", o.MaxPasses, 1).
		Validate()
}

// Clock is a small seam over time.Now, letting tests and callers that
// care about reproducibility substitute a fixed clock. The driver reads
// it only to populate Result.Time; the per-phase durations it reports
// to metrics and logs are measured with time.Now directly.
type Clock interface {
	Now() time.Time
}

type realClock struct{}

func (realClock) Now() time.Time { return time.Now() }

// DefaultClock is the wall-clock timing collaborator that NewDriver
// wires into a Driver.
var DefaultClock Clock = realClock{}
