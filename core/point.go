package core

import "github.com/pointfit/relax/geom"

// Point is the central mutable entity: a named plane position, its
// composite scoring rule, and the solve-state bookkeeping of the
// relaxation loop. Name and rule are fixed at registration; position,
// score, stability and the candidate map mutate only inside a pass or
// through MoveTo between passes.
type Point struct {
	name    string
	rule    Rule
	pos     geom.Vec2 // always grid-rounded
	score   float64   // rule value recorded when pos was adopted
	stable  bool
	samples *ScoreMap // candidate map of the most recent processing pass
}

// Name returns the registered name.
func (p *Point) Name() string { return p.name }

// Position returns the current stored position, always grid-rounded.
func (p *Point) Position() geom.Vec2 { return p.pos }

// Score returns the score recorded when the current position was adopted.
// A settling pass leaves it untouched, so it can lag the score the fresh
// candidate map reports for the same position.
func (p *Point) Score() float64 { return p.score }

// Stable reports whether the most recent processing pass found no
// improving candidate.
func (p *Point) Stable() bool { return p.stable }

// Samples returns the candidate-score map of the most recent pass that
// processed this point, or nil before the first one. Heatmap rendering
// reads it; treat it as read-only.
func (p *Point) Samples() *ScoreMap { return p.samples }

// Eval scores a trial position with the point's rule.
func (p *Point) Eval(trial geom.Vec2, pts Positions) (float64, error) {
	return p.rule(trial, pts)
}

// Relocate adopts a candidate: position (rounded), score and candidate
// map are overwritten, and the point stays unstable for the next pass.
func (p *Point) Relocate(v geom.Vec2, score float64, m *ScoreMap) {
	p.pos = Round(v)
	p.score = score
	p.stable = false
	p.samples = m
}

// Settle marks the point stable, keeping position and score exactly as
// they were, and records the pass's candidate map.
func (p *Point) Settle(m *ScoreMap) {
	p.stable = true
	p.samples = m
}

// MoveTo places the point externally (initial seeding, interactive
// edits): the stored position is rounded, the cached score resets and
// stability clears so the next pass re-relaxes from the new spot.
func (p *Point) MoveTo(v geom.Vec2) {
	p.pos = Round(v)
	p.score = 0
	p.stable = false
	p.samples = nil
}
