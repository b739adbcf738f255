package solver

import (
	"math/rand"

	"github.com/pointfit/relax/core"
)

// White-box bridges for solver_test: the update step and the sampler are
// unexported, but their edge semantics (missing-baseline relocation,
// NaN freezing, insertion-order clouds) need direct coverage.

// ApplyUpdate forwards to the private per-point update step.
func ApplyUpdate(s *Solver, p *core.Point, m *core.ScoreMap, stats *PassStats) {
	s.apply(p, m, stats)
}

// SampleCloud forwards to the private candidate sampler.
func SampleCloud(s *Solver, p *core.Point, pts core.Positions, rng *rand.Rand) (*core.ScoreMap, error) {
	return s.sampleCloud(p, pts, rng)
}

// RNGFromSeed exposes the seed policy for determinism tests.
var RNGFromSeed = rngFromSeed

// DeriveSeed exposes the stream mixer for decorrelation tests.
var DeriveSeed = deriveSeed
