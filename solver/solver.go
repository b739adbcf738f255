package solver

import (
	"fmt"
	"math/rand"

	"github.com/pointfit/relax/core"
)

// Solver drives relaxation passes over one registry. It owns the random
// stream and the pass counter; the registry stays owned by the caller and
// is mutated only through RunPass/Solve.
type Solver struct {
	reg  *core.Registry
	opts Options
	rng  *rand.Rand // sequential sweep stream; parallel passes derive their own
	pass int        // passes executed since New
}

// New builds a Solver for reg, applying opts over DefaultOptions and
// validating the result. The random stream is created once here and
// persists across passes.
func New(reg *core.Registry, opts ...Option) (*Solver, error) {
	if reg == nil {
		return nil, ErrNilRegistry
	}

	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if err := validateOptions(o); err != nil {
		return nil, err
	}

	return &Solver{
		reg:  reg,
		opts: o,
		rng:  rngFromSeed(o.Seed),
	}, nil
}

// Options returns the validated tuning the solver runs with.
func (s *Solver) Options() Options { return s.opts }

// RunPass executes exactly one relaxation pass over every point not yet
// stable, in registration order, and reports what it did. Once all points
// are stable a pass visits nothing and mutates nothing.
//
// A rule resolution error aborts the pass: points earlier in the sweep
// keep their updates, the error (wrapping core.ErrPointNotFound) is
// returned along with the stats gathered so far.
func (s *Solver) RunPass() (PassStats, error) {
	s.pass++
	stats := PassStats{Pass: s.pass}

	var err error
	if s.opts.Workers > 1 {
		err = s.parallelPass(&stats)
	} else {
		err = s.sequentialPass(&stats)
	}

	return stats, err
}

// Solve runs passes until every point is stable or PassLimit is reached.
// On the limit it returns the partial Result together with
// ErrNotConverged; rule errors propagate as from RunPass.
func (s *Solver) Solve() (Result, error) {
	var res Result
	for res.Passes < s.opts.PassLimit {
		if s.reg.AllStable() {
			res.Stable = true

			return res, nil
		}
		if _, err := s.RunPass(); err != nil {
			return res, err
		}
		res.Passes++
	}

	if s.reg.AllStable() {
		res.Stable = true

		return res, nil
	}

	return res, fmt.Errorf("%w: after %d passes", ErrNotConverged, res.Passes)
}
