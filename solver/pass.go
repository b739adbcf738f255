package solver

import (
	"fmt"
	"math"
	"math/rand"
	"sync"

	"github.com/pointfit/relax/core"
	"github.com/pointfit/relax/geom"
)

// sequentialPass sweeps the unstable points in registration order with
// live position reads: a point updated earlier in the sweep is seen at
// its new position by every later rule (Gauss–Seidel stepping).
func (s *Solver) sequentialPass(stats *PassStats) error {
	for _, p := range s.reg.Points() {
		if p.Stable() {
			continue
		}

		m, err := s.sampleCloud(p, s.reg, s.rng)
		if err != nil {
			return fmt.Errorf("solver: pass %d, point %q: %w", stats.Pass, p.Name(), err)
		}
		s.apply(p, m, stats)
	}

	return nil
}

// parallelPass evaluates every unstable point against the positions
// snapshotted at the start of the pass, using a bounded worker pool.
// Each point samples from a stream derived purely from (seed, pass,
// index), and outcomes are applied in registration order afterwards, so
// the result is independent of worker scheduling.
func (s *Solver) parallelPass(stats *PassStats) error {
	var pending []*core.Point
	for _, p := range s.reg.Points() {
		if !p.Stable() {
			pending = append(pending, p)
		}
	}
	if len(pending) == 0 {
		return nil
	}

	var (
		snap   = s.reg.Snapshot()
		parent = effectiveSeed(s.opts.Seed)
		clouds = make([]*core.ScoreMap, len(pending))
		errs   = make([]error, len(pending))
		jobs   = make(chan int)
		wg     sync.WaitGroup
	)

	workers := s.opts.Workers
	if workers > len(pending) {
		workers = len(pending)
	}
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for idx := range jobs {
				rng := deriveRNG(parent, streamID(stats.Pass, idx))
				clouds[idx], errs[idx] = s.sampleCloud(pending[idx], snap, rng)
			}
		}()
	}
	for idx := range pending {
		jobs <- idx
	}
	close(jobs)
	wg.Wait()

	for idx, p := range pending {
		if errs[idx] != nil {
			return fmt.Errorf("solver: pass %d, point %q: %w", stats.Pass, p.Name(), errs[idx])
		}
		s.apply(p, clouds[idx], stats)
	}

	return nil
}

// sampleCloud draws the candidate cloud for one point and scores every
// distinct grid cell with the point's rule, evaluated at the cell's grid
// position. Insertion order is first-hit order; Best's tie-break and the
// heatmap both rely on it.
func (s *Solver) sampleCloud(p *core.Point, pts core.Positions, rng *rand.Rand) (*core.ScoreMap, error) {
	var (
		origin = p.Position()
		m      = core.NewScoreMap(s.opts.Samples / 2)
		theta  float64
		u      float64
		key    core.GridKey
	)

	for i := 0; i < s.opts.Samples; i++ {
		theta = 2 * math.Pi * rng.Float64()
		u = rng.Float64()
		key = core.KeyOf(origin.Add(geom.FromPolar(u*u*s.opts.Radius, theta)))
		if m.Has(key) {
			continue
		}

		score, err := p.Eval(key.Vec(), pts)
		if err != nil {
			return nil, err
		}
		m.Insert(key, score)
	}

	return m, nil
}

// apply runs the update step for one point against its fresh candidate
// map and folds the outcome into stats.
//
// The stability baseline is the score this map records for the exact
// current position. When that cell was never sampled there is no baseline
// at all: the point relocates to the best candidate unconditionally, even
// if the candidate scores worse than the cached score. Freshly registered
// points adopt their first real position through the same path.
func (s *Solver) apply(p *core.Point, m *core.ScoreMap, stats *PassStats) {
	stats.Visited++

	best, bestScore, ok := m.Best()
	if !ok {
		return
	}
	if math.IsNaN(bestScore) {
		stats.Poisoned = append(stats.Poisoned, p.Name())
	}

	cur, sampled := m.At(core.KeyOf(p.Position()))
	if !sampled || bestScore > cur {
		p.Relocate(best.Vec(), bestScore, m)
		stats.Moved++

		return
	}

	p.Settle(m)
	stats.Settled++
}
