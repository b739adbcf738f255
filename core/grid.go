package core

import (
	"math"

	"github.com/pointfit/relax/geom"
)

// Precision is the coordinate grid step. Every stored position is held at
// this resolution (two decimal digits), which keeps per-pass candidate
// maps finite and makes position equality exact.
const Precision = 0.01

// gridScale converts world coordinates to integer grid units.
const gridScale = 1 / Precision

// GridKey is a position quantized to the Precision grid: an integer pair,
// cheap to hash and exact to compare. It keys the candidate-score maps.
type GridKey struct {
	X, Y int64
}

// KeyOf quantizes v to its grid key, rounding half away from zero.
func KeyOf(v geom.Vec2) GridKey {
	return GridKey{
		X: int64(math.Round(v.X * gridScale)),
		Y: int64(math.Round(v.Y * gridScale)),
	}
}

// Vec returns the exact grid position the key stands for.
func (k GridKey) Vec() geom.Vec2 {
	return geom.V(float64(k.X)/gridScale, float64(k.Y)/gridScale)
}

// Round snaps v to the grid. Round is idempotent: a rounded position
// rounds to itself, so stored positions survive arbitrary re-rounding.
func Round(v geom.Vec2) geom.Vec2 { return KeyOf(v).Vec() }
