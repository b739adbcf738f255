// Package geom provides the 2D vector arithmetic every constraint
// primitive is built on: differences, norms, distances, dot and cross
// products, and signed angles.
//
// All operations are pure and allocation-free. Degenerate inputs follow
// one rule: an operation that needs a direction returns NaN when handed a
// zero-length vector (see AngleBetween), and Normalize maps the zero
// vector to itself. Callers that cannot tolerate an undefined direction
// must guard with IsZero.
package geom
