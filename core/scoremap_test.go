package core_test

import (
	"math"
	"testing"

	"github.com/pointfit/relax/core"
)

func TestScoreMapInsertDedup(t *testing.T) {
	m := core.NewScoreMap(4)
	k := core.GridKey{X: 1, Y: 2}

	if !m.Insert(k, -1) {
		t.Fatal("first insert reported duplicate")
	}
	if m.Insert(k, -99) {
		t.Fatal("second insert of same key reported new")
	}
	if m.Len() != 1 {
		t.Fatalf("Len = %d, want 1", m.Len())
	}
	if s, ok := m.At(k); !ok || s != -1 {
		t.Fatalf("At = (%v, %v), want first score -1", s, ok)
	}
	if !m.Has(k) || m.Has(core.GridKey{X: 9, Y: 9}) {
		t.Fatal("Has answered wrong membership")
	}
}

func TestScoreMapBestMaximum(t *testing.T) {
	m := core.NewScoreMap(4)
	m.Insert(core.GridKey{X: 0, Y: 0}, -3)
	m.Insert(core.GridKey{X: 1, Y: 0}, -0.5)
	m.Insert(core.GridKey{X: 2, Y: 0}, -2)

	k, score, ok := m.Best()
	if !ok || k != (core.GridKey{X: 1, Y: 0}) || score != -0.5 {
		t.Fatalf("Best = (%v, %v, %v), want ({1 0}, -0.5, true)", k, score, ok)
	}
}

func TestScoreMapBestTieKeepsEarliest(t *testing.T) {
	m := core.NewScoreMap(4)
	first := core.GridKey{X: 5, Y: 5}
	m.Insert(core.GridKey{X: 0, Y: 0}, -7)
	m.Insert(first, -1)
	m.Insert(core.GridKey{X: 6, Y: 6}, -1) // same score, later insertion

	k, score, ok := m.Best()
	if !ok || k != first || score != -1 {
		t.Fatalf("Best = (%v, %v, %v), want earliest of the tie (%v)", k, score, ok, first)
	}
}

func TestScoreMapBestNaN(t *testing.T) {
	// A NaN candidate never takes the lead from a real score.
	m := core.NewScoreMap(2)
	lead := core.GridKey{X: 1, Y: 1}
	m.Insert(lead, -2)
	m.Insert(core.GridKey{X: 2, Y: 2}, math.NaN())

	if k, _, _ := m.Best(); k != lead {
		t.Fatalf("NaN displaced a real leader: got %v", k)
	}

	// A NaN leader is never displaced: comparisons always read as
	// no-improvement, freezing selection on the first key.
	m = core.NewScoreMap(2)
	frozen := core.GridKey{X: 3, Y: 3}
	m.Insert(frozen, math.NaN())
	m.Insert(core.GridKey{X: 4, Y: 4}, 100)

	k, score, ok := m.Best()
	if !ok || k != frozen || !math.IsNaN(score) {
		t.Fatalf("Best = (%v, %v, %v), want frozen NaN leader %v", k, score, ok, frozen)
	}
}

func TestScoreMapBestEmpty(t *testing.T) {
	m := core.NewScoreMap(0)
	if _, _, ok := m.Best(); ok {
		t.Fatal("Best on empty map reported ok")
	}
}

func TestScoreMapWalkOrder(t *testing.T) {
	m := core.NewScoreMap(3)
	want := []core.GridKey{{X: 3, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}}
	for i, k := range want {
		m.Insert(k, float64(-i))
	}

	var got []core.GridKey
	m.Walk(func(k core.GridKey, _ float64) { got = append(got, k) })

	if len(got) != len(want) {
		t.Fatalf("Walk visited %d keys, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Walk order[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}
