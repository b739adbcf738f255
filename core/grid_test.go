package core_test

import (
	"testing"

	"github.com/pointfit/relax/core"
	"github.com/pointfit/relax/geom"
)

func TestKeyOf(t *testing.T) {
	cases := []struct {
		name string
		v    geom.Vec2
		want core.GridKey
	}{
		{"origin", geom.V(0, 0), core.GridKey{X: 0, Y: 0}},
		{"two decimals exact", geom.V(1.23, -5.68), core.GridKey{X: 123, Y: -568}},
		{"whole units", geom.V(10, -3), core.GridKey{X: 1000, Y: -300}},
		{"third decimal rounds", geom.V(0.006, -0.006), core.GridKey{X: 1, Y: -1}},
		{"sub-grid noise drops", geom.V(2.0004, 2.0004), core.GridKey{X: 200, Y: 200}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := core.KeyOf(tc.v); got != tc.want {
				t.Fatalf("KeyOf(%v) = %v, want %v", tc.v, got, tc.want)
			}
		})
	}
}

func TestKeyVecRoundTrip(t *testing.T) {
	keys := []core.GridKey{
		{X: 0, Y: 0},
		{X: 123, Y: -568},
		{X: -1, Y: 1},
		{X: 100000, Y: -99999},
	}
	for _, k := range keys {
		if got := core.KeyOf(k.Vec()); got != k {
			t.Fatalf("KeyOf(%v.Vec()) = %v, want %v", k, got, k)
		}
	}
}

func TestRoundIdempotent(t *testing.T) {
	vs := []geom.Vec2{
		geom.V(0, 0),
		geom.V(1.2345, -9.8765),
		geom.V(-0.004, 0.004),
		geom.V(1234.56789, -0.5),
	}
	for _, v := range vs {
		once := core.Round(v)
		twice := core.Round(once)
		if once != twice {
			t.Fatalf("Round not idempotent for %v: %v then %v", v, once, twice)
		}
		if core.KeyOf(once) != core.KeyOf(v) {
			t.Fatalf("Round(%v) moved off its own grid cell", v)
		}
	}
}
