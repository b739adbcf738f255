package constraint

import (
	"fmt"
	"math"

	"github.com/pointfit/relax/core"
	"github.com/pointfit/relax/geom"
)

// at resolves one named dependency through pts, tagging failures with the
// dependency name. The wrapped error still matches core.ErrPointNotFound.
func at(pts core.Positions, name string) (geom.Vec2, error) {
	v, err := pts.At(name)
	if err != nil {
		return geom.Vec2{}, fmt.Errorf("constraint: dependency %q: %w", name, err)
	}

	return v, nil
}

// DistanceEqual scores how close two distances are to being equal:
// -|a-b|, zero when they match. Exported for custom rules that compare
// lengths they computed themselves.
func DistanceEqual(a, b float64) float64 { return -math.Abs(a - b) }

// AtPosition pins the point to the fixed location (x, y).
func AtPosition(x, y float64) core.Rule {
	target := geom.V(x, y)

	return func(trial geom.Vec2, _ core.Positions) (float64, error) {
		return -trial.Distance(target), nil
	}
}

// OnCircle keeps the point at the given distance from the named center.
func OnCircle(center string, radius float64) core.Rule {
	return func(trial geom.Vec2, pts core.Positions) (float64, error) {
		c, err := at(pts, center)
		if err != nil {
			return 0, err
		}

		return -math.Abs(trial.Distance(c) - radius), nil
	}
}

// EquidistantFrom keeps the point equally far from the two named points:
// the perpendicular bisector of the segment between them.
func EquidistantFrom(a, b string) core.Rule {
	return func(trial geom.Vec2, pts core.Positions) (float64, error) {
		pa, err := at(pts, a)
		if err != nil {
			return 0, err
		}
		pb, err := at(pts, b)
		if err != nil {
			return 0, err
		}

		return DistanceEqual(trial.Distance(pa), trial.Distance(pb)), nil
	}
}

// AtAngle keeps the signed angle at the named vertex, measured from the
// ray vertex→a to the ray vertex→trial, at theta radians. The trial
// position is the far endpoint of the second ray. The score is NaN when
// the trial coincides with the vertex or a does (degenerate rays).
func AtAngle(theta float64, a, vertex string) core.Rule {
	return func(trial geom.Vec2, pts core.Positions) (float64, error) {
		pa, err := at(pts, a)
		if err != nil {
			return 0, err
		}
		pv, err := at(pts, vertex)
		if err != nil {
			return 0, err
		}

		return -math.Abs(geom.AngleAtVertex(pa, pv, trial) - theta), nil
	}
}

// TranslatedByVector keeps the point at the named origin displaced by the
// fixed vector v.
func TranslatedByVector(origin string, v geom.Vec2) core.Rule {
	return func(trial geom.Vec2, pts core.Positions) (float64, error) {
		o, err := at(pts, origin)
		if err != nil {
			return 0, err
		}

		return -trial.Distance(o.Add(v)), nil
	}
}

// TranslatedBySegment keeps the point at the named origin displaced by
// the vector from the named segment start to its end, all three resolved
// at evaluation time.
func TranslatedBySegment(origin, from, to string) core.Rule {
	return func(trial geom.Vec2, pts core.Positions) (float64, error) {
		o, err := at(pts, origin)
		if err != nil {
			return 0, err
		}
		f, err := at(pts, from)
		if err != nil {
			return 0, err
		}
		e, err := at(pts, to)
		if err != nil {
			return 0, err
		}

		return -trial.Distance(o.Add(geom.Vector(f, e))), nil
	}
}

// AtMiddleOf minimizes the worst-case distance to the named anchors: the
// optimum is the center of the smallest circle enclosing them, not their
// centroid. An empty anchor list fails with ErrNoAnchors.
func AtMiddleOf(names ...string) core.Rule {
	anchors := append([]string(nil), names...)

	return func(trial geom.Vec2, pts core.Positions) (float64, error) {
		if len(anchors) == 0 {
			return 0, ErrNoAnchors
		}

		worst := math.Inf(-1)
		for _, name := range anchors {
			p, err := at(pts, name)
			if err != nil {
				return 0, err
			}
			if d := trial.Distance(p); d > worst {
				worst = d
			}
		}

		return -worst, nil
	}
}

// CloserToThan rewards positions nearer the first named point than the
// second: distance(p, far) - distance(p, near). Positive means satisfied;
// larger means a clearer margin. Unlike the other primitives this score
// is unbounded above, so it keeps pulling even when already satisfied.
func CloserToThan(near, far string) core.Rule {
	return func(trial geom.Vec2, pts core.Positions) (float64, error) {
		n, err := at(pts, near)
		if err != nil {
			return 0, err
		}
		f, err := at(pts, far)
		if err != nil {
			return 0, err
		}

		return trial.Distance(f) - trial.Distance(n), nil
	}
}

// AlignedWith keeps the point on the infinite line through the two named
// points: minus the absolute perpendicular distance from the line. The
// score is NaN when the two points coincide (the line has no direction).
func AlignedWith(a, b string) core.Rule {
	return func(trial geom.Vec2, pts core.Positions) (float64, error) {
		pa, err := at(pts, a)
		if err != nil {
			return 0, err
		}
		pb, err := at(pts, b)
		if err != nil {
			return 0, err
		}

		dir := geom.Vector(pa, pb).Normalize()
		if dir.IsZero() {
			return math.NaN(), nil
		}

		return -math.Abs(dir.Cross(geom.Vector(pa, trial))), nil
	}
}

// Sum composes rules by addition: every part is evaluated at the same
// trial position and the scores add up. The first resolution error wins;
// a NaN part poisons the whole sum. Sum of nothing scores 0 everywhere
// (a free point).
func Sum(rules ...core.Rule) core.Rule {
	parts := append([]core.Rule(nil), rules...)

	return func(trial geom.Vec2, pts core.Positions) (float64, error) {
		var total float64
		for _, rule := range parts {
			s, err := rule(trial, pts)
			if err != nil {
				return 0, err
			}
			total += s
		}

		return total, nil
	}
}
