// Package scene declares sketches: named points with their constraint
// rules, plus the derived geometry (lines, segments, polygons, measures)
// that gives the solved positions a shape on paper.
//
// A Scene is purely declarative. Build compiles it into a core.Registry
// ready for the solver; the Place* projections then resolve the derived
// geometry against solved positions. Scenes come from Go code (see Table
// for the canonical demo) or from YAML via LoadScene/ParseScene.
//
// Declaration order is preserved everywhere: points register in slice
// order, which fixes both the solver's sweep order and tie-breaking.
package scene
