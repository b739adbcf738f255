package scene

import (
	"math"

	"github.com/pointfit/relax/constraint"
	"github.com/pointfit/relax/core"
	"github.com/pointfit/relax/geom"
)

// Table returns the canonical demo sketch: a 120x70 table top in screen
// coordinates (y grows downward), declared so that every constraint kind
// appears at least once.
//
//	nw ------------- ne
//	|                 |
//	|     center      |
//	|   leg           |
//	sw --- mark ---- se
//
// Point roles:
//   - nw pins the sketch at the origin.
//   - ne sits 120 east of nw (translation by a fixed vector).
//   - se closes the right edge: 70 away from ne, with the corner at ne
//     between nw and se held at -90 degrees.
//   - sw copies the segment ne->nw onto se (translation by a segment).
//   - center holds the middle of the four corners.
//   - leg stands on a circle of radius 25 around center, pulled toward
//     nw; the ring leaves it slack, so it settles wherever the pull won.
//   - mark is equidistant from nw and ne and aligned with sw->se, which
//     pins it to the middle of the south edge.
func Table() *Scene {
	return &Scene{
		Points: []PointDecl{
			{Name: "nw", Rules: []core.Rule{constraint.AtPosition(0, 0)}},
			{Name: "ne", Rules: []core.Rule{constraint.TranslatedByVector("nw", geom.V(120, 0))}},
			{Name: "se", Rules: []core.Rule{
				constraint.OnCircle("ne", 70),
				constraint.AtAngle(-math.Pi/2, "nw", "ne"),
			}},
			{Name: "sw", Rules: []core.Rule{constraint.TranslatedBySegment("se", "ne", "nw")}},
			{Name: "center", Rules: []core.Rule{constraint.AtMiddleOf("nw", "ne", "se", "sw")}},
			{Name: "leg", Rules: []core.Rule{
				constraint.OnCircle("center", 25),
				constraint.CloserToThan("nw", "se"),
			}},
			{Name: "mark", Rules: []core.Rule{
				constraint.EquidistantFrom("nw", "ne"),
				constraint.AlignedWith("sw", "se"),
			}},
		},
		Lines: []Pair{{From: "nw", To: "se"}},
		Segments: []Pair{
			{From: "nw", To: "ne"},
			{From: "ne", To: "se"},
			{From: "se", To: "sw"},
			{From: "sw", To: "nw"},
		},
		Polygons: []Polygon{{Name: "top", Points: []string{"nw", "ne", "se", "sw"}}},
		Measures: []Measure{
			{From: "nw", To: "ne", Label: "width"},
			{From: "ne", To: "se", Label: "depth"},
			{From: "center", To: "mark"},
		},
	}
}
