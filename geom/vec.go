package geom

import "math"

// Vec2 is an immutable pair of plane coordinates. Value semantics: methods
// never mutate the receiver, and equality is structural.
type Vec2 struct {
	X, Y float64
}

// V returns the vector (x, y).
func V(x, y float64) Vec2 { return Vec2{X: x, Y: y} }

// FromPolar returns the vector of length r at angle theta (radians,
// measured counterclockwise from the positive X axis).
func FromPolar(r, theta float64) Vec2 {
	return Vec2{X: r * math.Cos(theta), Y: r * math.Sin(theta)}
}

// Vector returns the directed vector from a to b.
func Vector(a, b Vec2) Vec2 { return Vec2{X: b.X - a.X, Y: b.Y - a.Y} }

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 { return Vec2{X: v.X + o.X, Y: v.Y + o.Y} }

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{X: v.X - o.X, Y: v.Y - o.Y} }

// Scale returns v scaled by f.
func (v Vec2) Scale(f float64) Vec2 { return Vec2{X: v.X * f, Y: v.Y * f} }

// Dot returns the dot product v · o.
func (v Vec2) Dot(o Vec2) float64 { return v.X*o.X + v.Y*o.Y }

// Cross returns the 2D scalar cross product v × o, the signed area of the
// parallelogram spanned by the two vectors.
func (v Vec2) Cross(o Vec2) float64 { return v.X*o.Y - v.Y*o.X }

// NormSq returns the squared Euclidean norm of v.
func (v Vec2) NormSq() float64 { return v.X*v.X + v.Y*v.Y }

// Norm returns the Euclidean norm of v.
func (v Vec2) Norm() float64 { return math.Hypot(v.X, v.Y) }

// Distance returns the Euclidean distance between v and o.
func (v Vec2) Distance(o Vec2) float64 { return math.Hypot(o.X-v.X, o.Y-v.Y) }

// IsZero reports whether both coordinates are exactly zero.
func (v Vec2) IsZero() bool { return v.X == 0 && v.Y == 0 }

// Normalize returns the unit vector in the direction of v. The zero vector
// has no direction and normalizes to the zero vector.
func (v Vec2) Normalize() Vec2 {
	n := v.Norm()
	if n == 0 {
		return Vec2{}
	}

	return Vec2{X: v.X / n, Y: v.Y / n}
}
