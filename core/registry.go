package core

import (
	"fmt"

	"github.com/pointfit/relax/geom"
)

// Registry is the owned, ordered collection of named points. It is passed
// explicitly to the solver and to read-only consumers; there is no
// package-level instance. Registration order is load-bearing: relaxation
// sweeps in it, and a rule should only reference names registered before
// the rule can run.
type Registry struct {
	order  []*Point
	byName map[string]*Point
}

// New returns an empty registry.
func New() *Registry {
	return &Registry{byName: make(map[string]*Point)}
}

// Register creates a point under a unique name with its composite scoring
// rule and appends it to the sweep order. The point starts at the origin,
// unstable, with a zero score; the first pass to process it adopts a real
// position (its origin is almost never among the sampled candidates, and
// an unsampled current position always relocates).
//
// Fails with ErrEmptyName, ErrNilRule or ErrDuplicatePoint.
func (r *Registry) Register(name string, rule Rule) (*Point, error) {
	if name == "" {
		return nil, ErrEmptyName
	}
	if rule == nil {
		return nil, fmt.Errorf("%w: %q", ErrNilRule, name)
	}
	if _, ok := r.byName[name]; ok {
		return nil, fmt.Errorf("%w: %q", ErrDuplicatePoint, name)
	}

	p := &Point{name: name, rule: rule}
	r.order = append(r.order, p)
	r.byName[name] = p

	return p, nil
}

// Resolve returns the point registered under name, or ErrPointNotFound.
func (r *Registry) Resolve(name string) (*Point, error) {
	p, ok := r.byName[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrPointNotFound, name)
	}

	return p, nil
}

// Points returns the points in registration order. The slice is a copy;
// the elements are the live points.
func (r *Registry) Points() []*Point {
	out := make([]*Point, len(r.order))
	copy(out, r.order)

	return out
}

// Len returns the number of registered points.
func (r *Registry) Len() int { return len(r.order) }

// AllStable reports whether every point settled in its most recent
// processing pass. An empty registry is vacuously stable.
func (r *Registry) AllStable() bool {
	for _, p := range r.order {
		if !p.stable {
			return false
		}
	}

	return true
}

// At resolves a name to its current stored position. This is the live
// Positions view: within a sequential pass, points updated earlier in the
// sweep are read at their new positions.
func (r *Registry) At(name string) (geom.Vec2, error) {
	p, ok := r.byName[name]
	if !ok {
		return geom.Vec2{}, fmt.Errorf("%w: %q", ErrPointNotFound, name)
	}

	return p.pos, nil
}

// Snapshot copies every current position into a frozen Positions view.
// Parallel evaluation reads a snapshot so that every point in a pass sees
// the positions from the start of that pass; external readers use it to
// query a consistent state while the owner keeps stepping.
func (r *Registry) Snapshot() Positions {
	s := make(snapshot, len(r.byName))
	for name, p := range r.byName {
		s[name] = p.pos
	}

	return s
}

// Invalidate clears every stability flag, forcing subsequent passes to
// re-relax all points. Call it after external mutations a pass cannot
// observe on its own (parameter edits, MoveTo of an anchor).
func (r *Registry) Invalidate() {
	for _, p := range r.order {
		p.stable = false
	}
}

// snapshot is a frozen name→position table.
type snapshot map[string]geom.Vec2

// At implements Positions over the frozen table.
func (s snapshot) At(name string) (geom.Vec2, error) {
	v, ok := s[name]
	if !ok {
		return geom.Vec2{}, fmt.Errorf("%w: %q", ErrPointNotFound, name)
	}

	return v, nil
}
