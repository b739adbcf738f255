// errors.go — sentinel errors for the scene package.
//
// Error policy:
//   - Only package-level sentinels are exposed; callers branch with
//     errors.Is.
//   - Context (point name, entry index) is attached via %w wrapping at
//     the site that detects the problem, never baked into the sentinel.

package scene

import "errors"

// ErrEmptyScene indicates a scene that declares no points at all.
// Usage: if errors.Is(err, ErrEmptyScene) { /* nothing to solve */ }.
var ErrEmptyScene = errors.New("scene: no points declared")

// ErrNoConstraint indicates a point declared without any constraint;
// such a point would score flat everywhere and freeze at the origin.
var ErrNoConstraint = errors.New("scene: point needs at least one constraint")

// ErrAmbiguousConstraint indicates a YAML constraint entry carrying more
// than one constraint kind; each list entry must name exactly one.
var ErrAmbiguousConstraint = errors.New("scene: constraint entry must carry exactly one kind")

// ErrBadConstraint indicates a malformed scene entry: missing point
// names, a negative radius, both or neither angle unit, a pair that is
// not exactly two names, a polygon with fewer than three vertices.
var ErrBadConstraint = errors.New("scene: malformed entry")
