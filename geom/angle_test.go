package geom_test

import (
	"math"
	"testing"

	"github.com/pointfit/relax/geom"
)

func TestAngleBetween(t *testing.T) {
	cases := []struct {
		name string
		u, v geom.Vec2
		want float64
	}{
		{"quarter turn left", geom.V(1, 0), geom.V(0, 1), math.Pi / 2},
		{"quarter turn right", geom.V(1, 0), geom.V(0, -1), -math.Pi / 2},
		{"parallel", geom.V(2, 2), geom.V(5, 5), 0},
		{"opposite", geom.V(1, 0), geom.V(-3, 0), math.Pi},
		{"eighth turn", geom.V(1, 0), geom.V(1, 1), math.Pi / 4},
		{"scale invariant", geom.V(10, 0), geom.V(0, 0.01), math.Pi / 2},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := geom.AngleBetween(tc.u, tc.v); !near(got, tc.want) {
				t.Fatalf("AngleBetween(%v, %v) = %v, want %v", tc.u, tc.v, got, tc.want)
			}
		})
	}
}

func TestAngleBetweenDegenerate(t *testing.T) {
	if got := geom.AngleBetween(geom.V(0, 0), geom.V(1, 0)); !math.IsNaN(got) {
		t.Fatalf("zero u: got %v, want NaN", got)
	}
	if got := geom.AngleBetween(geom.V(1, 0), geom.V(0, 0)); !math.IsNaN(got) {
		t.Fatalf("zero v: got %v, want NaN", got)
	}
}

func TestAngleAtVertex(t *testing.T) {
	// Square corner at the origin: rays to (1,0) and (0,1).
	got := geom.AngleAtVertex(geom.V(1, 0), geom.V(0, 0), geom.V(0, 1))
	if !near(got, math.Pi/2) {
		t.Fatalf("right corner = %v, want π/2", got)
	}

	// Straight line through the vertex.
	got = geom.AngleAtVertex(geom.V(-1, 5), geom.V(0, 5), geom.V(4, 5))
	if !near(got, math.Pi) {
		t.Fatalf("straight angle = %v, want π", got)
	}

	// Coincident a and vertex degenerates the first ray.
	got = geom.AngleAtVertex(geom.V(2, 2), geom.V(2, 2), geom.V(3, 3))
	if !math.IsNaN(got) {
		t.Fatalf("degenerate vertex = %v, want NaN", got)
	}
}
