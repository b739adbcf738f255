// Package core holds the owned state of a sketch: named points, their
// composite scoring rules, the registry that resolves names to positions,
// and the fixed-precision coordinate grid everything is rounded to.
//
// 🚀 Concepts
//
//	Point    — a named plane position plus its scoring rule and solve state
//	           (score, stability flag, last candidate-score map).
//	Rule     — func(trial, positions) (score, error): scores one trial
//	           position for the point being solved while every other point
//	           is read at its current stored position. Higher is better;
//	           zero or the maximum attainable value means satisfied.
//	Registry — the ordered, owned collection of points. Registration order
//	           is load-bearing: relaxation sweeps in it, and rules should
//	           only reference names registered before they run.
//	GridKey  — a position quantized to the Precision grid; the key of the
//	           per-pass candidate-score map.
//	ScoreMap — one pass's candidate table for one point, insertion-ordered
//	           so score ties resolve to the earliest sample.
//
// ✨ Contracts
//
//   - Names are unique; resolving an unknown name fails with
//     ErrPointNotFound, never a default position.
//   - Stored positions are always rounded to the grid, so structural
//     equality and map lookups are exact.
//   - A Rule returns an error only for resolution failures. Degenerate
//     geometry scores NaN instead: NaN never wins a comparison, which
//     freezes the affected point without corrupting its neighbors.
//
// The registry performs no internal locking: one goroutine owns mutation
// (setup, then the solver's pass loop). Snapshot gives concurrent readers
// and parallel evaluation a stable view.
package core
