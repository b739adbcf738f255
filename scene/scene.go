package scene

import (
	"fmt"

	"github.com/pointfit/relax/constraint"
	"github.com/pointfit/relax/core"
	"github.com/pointfit/relax/geom"
)

// PointDecl declares one named point and the constraint rules that will
// be summed into its composite scoring rule. A non-nil Start seeds the
// initial position at Build time; without it the point starts at the
// origin and the first pass places it.
type PointDecl struct {
	Name  string
	Rules []core.Rule
	Start *geom.Vec2
}

// Pair names the two endpoints of a segment or an infinite line.
type Pair struct {
	From, To string
}

// Polygon names an ordered vertex ring. The closing edge back to the
// first vertex is implicit.
type Polygon struct {
	Name   string
	Points []string
}

// Measure names a labeled distance between two points. An empty Label
// defaults to "From-To" at placement time.
type Measure struct {
	From, To string
	Label    string
}

// Scene is a declarative sketch: the points to solve for and the derived
// geometry to draw once they are placed.
type Scene struct {
	Points   []PointDecl
	Lines    []Pair
	Segments []Pair
	Polygons []Polygon
	Measures []Measure
}

// Build compiles the scene into a registry: every declared point is
// registered in declaration order with the sum of its rules. The caller
// hands the registry to a solver; the scene itself stays untouched and
// can be rebuilt into a fresh registry at any time.
func (sc *Scene) Build() (*core.Registry, error) {
	if len(sc.Points) == 0 {
		return nil, ErrEmptyScene
	}

	reg := core.New()
	for _, d := range sc.Points {
		if len(d.Rules) == 0 {
			return nil, fmt.Errorf("point %q: %w", d.Name, ErrNoConstraint)
		}

		rule := d.Rules[0]
		if len(d.Rules) > 1 {
			rule = constraint.Sum(d.Rules...)
		}
		p, err := reg.Register(d.Name, rule)
		if err != nil {
			return nil, fmt.Errorf("scene: point %q: %w", d.Name, err)
		}
		if d.Start != nil {
			p.MoveTo(*d.Start)
		}
	}

	return reg, nil
}

// PlacedLine is an infinite line pinned by two resolved positions.
type PlacedLine struct {
	From, To geom.Vec2
}

// PlacedSegment is a drawable segment between two resolved positions.
type PlacedSegment struct {
	From, To geom.Vec2
}

// PlacedPolygon is a closed ring of resolved vertices.
type PlacedPolygon struct {
	Name     string
	Vertices []geom.Vec2
}

// PlacedMeasure is a labeled distance between two resolved positions.
type PlacedMeasure struct {
	From, To geom.Vec2
	Label    string
	Length   float64
}

// endpoints resolves a name pair against pts.
func endpoints(pts core.Positions, from, to string) (geom.Vec2, geom.Vec2, error) {
	a, err := pts.At(from)
	if err != nil {
		return geom.Vec2{}, geom.Vec2{}, err
	}
	b, err := pts.At(to)
	if err != nil {
		return geom.Vec2{}, geom.Vec2{}, err
	}

	return a, b, nil
}

// PlaceLines resolves the scene's lines against pts.
func (sc *Scene) PlaceLines(pts core.Positions) ([]PlacedLine, error) {
	out := make([]PlacedLine, 0, len(sc.Lines))
	for i, l := range sc.Lines {
		a, b, err := endpoints(pts, l.From, l.To)
		if err != nil {
			return nil, fmt.Errorf("scene: line %d: %w", i, err)
		}
		out = append(out, PlacedLine{From: a, To: b})
	}

	return out, nil
}

// PlaceSegments resolves the scene's segments against pts.
func (sc *Scene) PlaceSegments(pts core.Positions) ([]PlacedSegment, error) {
	out := make([]PlacedSegment, 0, len(sc.Segments))
	for i, s := range sc.Segments {
		a, b, err := endpoints(pts, s.From, s.To)
		if err != nil {
			return nil, fmt.Errorf("scene: segment %d: %w", i, err)
		}
		out = append(out, PlacedSegment{From: a, To: b})
	}

	return out, nil
}

// PlacePolygons resolves the scene's polygons against pts.
func (sc *Scene) PlacePolygons(pts core.Positions) ([]PlacedPolygon, error) {
	out := make([]PlacedPolygon, 0, len(sc.Polygons))
	for _, pg := range sc.Polygons {
		ring := make([]geom.Vec2, 0, len(pg.Points))
		for _, name := range pg.Points {
			v, err := pts.At(name)
			if err != nil {
				return nil, fmt.Errorf("scene: polygon %q: %w", pg.Name, err)
			}
			ring = append(ring, v)
		}
		out = append(out, PlacedPolygon{Name: pg.Name, Vertices: ring})
	}

	return out, nil
}

// PlaceMeasures resolves the scene's measures against pts, filling in
// default labels and the measured lengths.
func (sc *Scene) PlaceMeasures(pts core.Positions) ([]PlacedMeasure, error) {
	out := make([]PlacedMeasure, 0, len(sc.Measures))
	for i, m := range sc.Measures {
		a, b, err := endpoints(pts, m.From, m.To)
		if err != nil {
			return nil, fmt.Errorf("scene: measure %d: %w", i, err)
		}

		label := m.Label
		if label == "" {
			label = m.From + "-" + m.To
		}
		out = append(out, PlacedMeasure{
			From:   a,
			To:     b,
			Label:  label,
			Length: a.Distance(b),
		})
	}

	return out, nil
}
