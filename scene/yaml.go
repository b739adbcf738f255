package scene

import (
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/pointfit/relax/constraint"
	"github.com/pointfit/relax/core"
	"github.com/pointfit/relax/geom"
)

// sceneFile mirrors the YAML document layout.
type sceneFile struct {
	Points   []pointNode   `yaml:"points"`
	Lines    []pairNode    `yaml:"lines"`
	Segments []pairNode    `yaml:"segments"`
	Polygons []polygonNode `yaml:"polygons"`
	Measures []measureNode `yaml:"measures"`
}

type pointNode struct {
	Name        string           `yaml:"name"`
	Start       *positionArgs    `yaml:"start"`
	Constraints []constraintNode `yaml:"constraints"`
}

// pairNode is a two-element name list, e.g. `- [nw, ne]`.
type pairNode []string

type polygonNode struct {
	Name   string   `yaml:"name"`
	Points []string `yaml:"points"`
}

type measureNode struct {
	From  string `yaml:"from"`
	To    string `yaml:"to"`
	Label string `yaml:"label"`
}

// constraintNode carries the constraint kinds as optional branches; a
// well-formed entry sets exactly one.
type constraintNode struct {
	AtPosition          *positionArgs `yaml:"at-position"`
	OnCircle            *circleArgs   `yaml:"on-circle"`
	Equidistant         *equidistArgs `yaml:"equidistant"`
	AtAngle             *angleArgs    `yaml:"at-angle"`
	TranslatedByVector  *vectorArgs   `yaml:"translated-by-vector"`
	TranslatedBySegment *segmentArgs  `yaml:"translated-by-segment"`
	AtMiddleOf          *middleArgs   `yaml:"at-middle-of"`
	CloserToThan        *closerArgs   `yaml:"closer-to-than"`
	AlignedWith         *alignedArgs  `yaml:"aligned-with"`
}

type positionArgs struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

type circleArgs struct {
	Around string  `yaml:"around"`
	Radius float64 `yaml:"radius"`
}

type equidistArgs struct {
	From []string `yaml:"from"`
}

type angleArgs struct {
	Degrees *float64 `yaml:"degrees"`
	Radians *float64 `yaml:"radians"`
	From    string   `yaml:"from"`
	Vertex  string   `yaml:"vertex"`
}

type vectorArgs struct {
	Of string  `yaml:"of"`
	DX float64 `yaml:"dx"`
	DY float64 `yaml:"dy"`
}

type segmentArgs struct {
	Of   string `yaml:"of"`
	From string `yaml:"from"`
	To   string `yaml:"to"`
}

type middleArgs struct {
	Of []string `yaml:"of"`
}

type closerArgs struct {
	Near string `yaml:"near"`
	Far  string `yaml:"far"`
}

type alignedArgs struct {
	From string `yaml:"from"`
	To   string `yaml:"to"`
}

// LoadScene reads and parses a scene document from path.
func LoadScene(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("scene: read %s: %w", path, err)
	}

	return ParseScene(data)
}

// ParseScene parses a YAML scene document and compiles every constraint
// entry into its rule. The returned scene is ready for Build.
func ParseScene(data []byte) (*Scene, error) {
	var f sceneFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("scene: parse: %w", err)
	}

	return f.compile()
}

func (f *sceneFile) compile() (*Scene, error) {
	if len(f.Points) == 0 {
		return nil, ErrEmptyScene
	}

	sc := &Scene{}
	for i, pn := range f.Points {
		if pn.Name == "" {
			return nil, fmt.Errorf("points[%d]: name missing: %w", i, ErrBadConstraint)
		}
		if len(pn.Constraints) == 0 {
			return nil, fmt.Errorf("point %q: %w", pn.Name, ErrNoConstraint)
		}

		decl := PointDecl{Name: pn.Name, Rules: make([]core.Rule, 0, len(pn.Constraints))}
		if pn.Start != nil {
			v := geom.V(pn.Start.X, pn.Start.Y)
			decl.Start = &v
		}
		for j, cn := range pn.Constraints {
			rule, err := cn.compile()
			if err != nil {
				return nil, fmt.Errorf("point %q: constraint %d: %w", pn.Name, j, err)
			}
			decl.Rules = append(decl.Rules, rule)
		}
		sc.Points = append(sc.Points, decl)
	}

	for i, p := range f.Lines {
		pair, err := p.toPair()
		if err != nil {
			return nil, fmt.Errorf("lines[%d]: %w", i, err)
		}
		sc.Lines = append(sc.Lines, pair)
	}
	for i, p := range f.Segments {
		pair, err := p.toPair()
		if err != nil {
			return nil, fmt.Errorf("segments[%d]: %w", i, err)
		}
		sc.Segments = append(sc.Segments, pair)
	}
	for i, pg := range f.Polygons {
		if len(pg.Points) < 3 {
			return nil, fmt.Errorf("polygons[%d]: want at least 3 vertices: %w", i, ErrBadConstraint)
		}
		sc.Polygons = append(sc.Polygons, Polygon{Name: pg.Name, Points: pg.Points})
	}
	for i, m := range f.Measures {
		if m.From == "" || m.To == "" {
			return nil, fmt.Errorf("measures[%d]: from and to are required: %w", i, ErrBadConstraint)
		}
		sc.Measures = append(sc.Measures, Measure{From: m.From, To: m.To, Label: m.Label})
	}

	return sc, nil
}

func (p pairNode) toPair() (Pair, error) {
	if len(p) != 2 || p[0] == "" || p[1] == "" {
		return Pair{}, fmt.Errorf("want [from, to]: %w", ErrBadConstraint)
	}

	return Pair{From: p[0], To: p[1]}, nil
}

// compile turns one constraint entry into a rule, rejecting entries that
// set zero or several kinds and arguments that cannot form a rule.
func (n *constraintNode) compile() (core.Rule, error) {
	kinds := 0
	for _, set := range []bool{
		n.AtPosition != nil,
		n.OnCircle != nil,
		n.Equidistant != nil,
		n.AtAngle != nil,
		n.TranslatedByVector != nil,
		n.TranslatedBySegment != nil,
		n.AtMiddleOf != nil,
		n.CloserToThan != nil,
		n.AlignedWith != nil,
	} {
		if set {
			kinds++
		}
	}
	if kinds == 0 {
		return nil, fmt.Errorf("no known constraint kind: %w", ErrBadConstraint)
	}
	if kinds > 1 {
		return nil, ErrAmbiguousConstraint
	}

	switch {
	case n.AtPosition != nil:
		return constraint.AtPosition(n.AtPosition.X, n.AtPosition.Y), nil

	case n.OnCircle != nil:
		a := n.OnCircle
		if a.Around == "" {
			return nil, fmt.Errorf("on-circle: around is required: %w", ErrBadConstraint)
		}
		if a.Radius < 0 {
			return nil, fmt.Errorf("on-circle: radius must not be negative: %w", ErrBadConstraint)
		}

		return constraint.OnCircle(a.Around, a.Radius), nil

	case n.Equidistant != nil:
		a := n.Equidistant
		if len(a.From) != 2 || a.From[0] == "" || a.From[1] == "" {
			return nil, fmt.Errorf("equidistant: from wants exactly two names: %w", ErrBadConstraint)
		}

		return constraint.EquidistantFrom(a.From[0], a.From[1]), nil

	case n.AtAngle != nil:
		a := n.AtAngle
		if a.From == "" || a.Vertex == "" {
			return nil, fmt.Errorf("at-angle: from and vertex are required: %w", ErrBadConstraint)
		}
		if (a.Degrees == nil) == (a.Radians == nil) {
			return nil, fmt.Errorf("at-angle: want exactly one of degrees or radians: %w", ErrBadConstraint)
		}

		var theta float64
		if a.Radians != nil {
			theta = *a.Radians
		} else {
			theta = *a.Degrees * math.Pi / 180
		}

		return constraint.AtAngle(theta, a.From, a.Vertex), nil

	case n.TranslatedByVector != nil:
		a := n.TranslatedByVector
		if a.Of == "" {
			return nil, fmt.Errorf("translated-by-vector: of is required: %w", ErrBadConstraint)
		}

		return constraint.TranslatedByVector(a.Of, geom.V(a.DX, a.DY)), nil

	case n.TranslatedBySegment != nil:
		a := n.TranslatedBySegment
		if a.Of == "" || a.From == "" || a.To == "" {
			return nil, fmt.Errorf("translated-by-segment: of, from and to are required: %w", ErrBadConstraint)
		}

		return constraint.TranslatedBySegment(a.Of, a.From, a.To), nil

	case n.AtMiddleOf != nil:
		a := n.AtMiddleOf
		if len(a.Of) == 0 {
			return nil, fmt.Errorf("at-middle-of: of wants at least one name: %w", ErrBadConstraint)
		}
		for _, name := range a.Of {
			if name == "" {
				return nil, fmt.Errorf("at-middle-of: empty name: %w", ErrBadConstraint)
			}
		}

		return constraint.AtMiddleOf(a.Of...), nil

	case n.CloserToThan != nil:
		a := n.CloserToThan
		if a.Near == "" || a.Far == "" {
			return nil, fmt.Errorf("closer-to-than: near and far are required: %w", ErrBadConstraint)
		}

		return constraint.CloserToThan(a.Near, a.Far), nil

	default:
		a := n.AlignedWith
		if a.From == "" || a.To == "" {
			return nil, fmt.Errorf("aligned-with: from and to are required: %w", ErrBadConstraint)
		}

		return constraint.AlignedWith(a.From, a.To), nil
	}
}
