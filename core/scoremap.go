package core

// ScoreMap is one pass's candidate-score table for one point: rounded
// candidate positions mapped to their evaluated scores, with insertion
// order retained because score ties resolve to the earliest-inserted
// candidate. It is rebuilt from scratch every pass, never carried across
// passes and never shared between points.
type ScoreMap struct {
	keys   []GridKey
	scores map[GridKey]float64
}

// NewScoreMap returns an empty map sized for roughly capacity candidates.
func NewScoreMap(capacity int) *ScoreMap {
	if capacity < 0 {
		capacity = 0
	}

	return &ScoreMap{
		keys:   make([]GridKey, 0, capacity),
		scores: make(map[GridKey]float64, capacity),
	}
}

// Has reports whether k was already inserted.
func (m *ScoreMap) Has(k GridKey) bool {
	_, ok := m.scores[k]

	return ok
}

// Insert records the score for k and reports whether the key was new.
// Duplicate keys keep their first score.
func (m *ScoreMap) Insert(k GridKey, score float64) bool {
	if _, ok := m.scores[k]; ok {
		return false
	}
	m.scores[k] = score
	m.keys = append(m.keys, k)

	return true
}

// At returns the recorded score for k.
func (m *ScoreMap) At(k GridKey) (float64, bool) {
	s, ok := m.scores[k]

	return s, ok
}

// Len returns the number of distinct candidates.
func (m *ScoreMap) Len() int { return len(m.keys) }

// Best returns the maximum-score candidate. The scan walks insertion
// order and replaces the leader only on a strictly greater score, so ties
// keep the earliest-inserted key. NaN never compares greater: a NaN
// candidate cannot take the lead, and a NaN leader is never displaced.
// ok is false only for an empty map.
func (m *ScoreMap) Best() (k GridKey, score float64, ok bool) {
	if len(m.keys) == 0 {
		return GridKey{}, 0, false
	}

	k = m.keys[0]
	score = m.scores[k]
	for _, cand := range m.keys[1:] {
		if s := m.scores[cand]; s > score {
			k, score = cand, s
		}
	}

	return k, score, true
}

// Walk calls fn for every candidate in insertion order.
func (m *ScoreMap) Walk(fn func(GridKey, float64)) {
	for _, k := range m.keys {
		fn(k, m.scores[k])
	}
}
