// Package solver runs stochastic relaxation over a point registry: every
// pass re-samples each unstable point around its current position and
// adopts the best-scoring candidate, until no point can improve.
//
// 🚀 How a pass works
//
//	For each point not yet stable, in registration order:
//	  1. Sample: draw Samples candidates around the current position
//	     (angle uniform in [0, 2π), radius U²·Radius) and round each to
//	     the coordinate grid, so duplicates coalesce.
//	  2. Evaluate: score every distinct grid cell with the point's rule,
//	     all other points held at their current positions.
//	  3. Select: take the maximum score; ties keep the earliest sample.
//	  4. Update: compare against the fresh score recorded for the exact
//	     current position. If that cell was never sampled this pass, the
//	     point relocates to the best candidate unconditionally; otherwise
//	     it settles when the best does not beat the current cell, keeping
//	     position and cached score untouched.
//
// ✨ Guarantees
//
//   - Deterministic: a fixed Seed replays the identical trajectory; the
//     zero seed maps to a fixed default stream.
//   - Bounded: a pass costs points × samples rule evaluations, no more.
//   - Contained failures: degenerate geometry scores NaN, which freezes
//     the affected point and is reported in PassStats.Poisoned; rule
//     resolution errors abort the pass and surface to the caller.
//
// ⚙️ Usage
//
//	reg := core.New()
//	reg.Register("a", constraint.AtPosition(10, 0))
//
//	s, err := solver.New(reg, solver.WithRadius(20), solver.WithSeed(7))
//	if err != nil { ... }
//	res, err := s.Solve() // or RunPass() per frame from a render loop
//
// With Workers > 1 a pass evaluates points concurrently against the
// positions snapshotted at the start of the pass. Sequential and parallel
// modes are each deterministic, but they are different iteration schemes
// (live reads vs snapshot reads) and may settle on different fixed
// points.
//
// Complexity: O(points × samples) per pass, O(distinct cells) memory per
// point for the candidate map retained for diagnostics.
package solver
