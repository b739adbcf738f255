package geom

import "math"

// AngleBetween returns the signed angle from u to v in (-π, π], positive
// counterclockwise. A zero-length argument has no direction, so the result
// is NaN rather than the 0 a bare atan2 would report.
//
// Complexity: O(1).
func AngleBetween(u, v Vec2) float64 {
	if u.IsZero() || v.IsZero() {
		return math.NaN()
	}

	return math.Atan2(u.Cross(v), u.Dot(v))
}

// AngleAtVertex returns the signed angle at vertex between the rays
// vertex→a and vertex→c, in (-π, π]. The result is NaN when a or c
// coincides with the vertex (a degenerate ray).
//
// Complexity: O(1).
func AngleAtVertex(a, vertex, c Vec2) float64 {
	return AngleBetween(Vector(vertex, a), Vector(vertex, c))
}
