// Package constraint provides the primitive scoring library: small rule
// constructors that each express one geometric relation, composed into
// per-point composite rules by addition.
//
// Every primitive follows one scoring convention: zero or the maximum
// attainable value means the relation holds exactly, lower values mean
// increasing violation. Composites add primitive scores (Sum), so several
// soft relations reward partial simultaneous satisfaction instead of
// optimizing their worst member.
//
// Primitives and their scores at a trial position p:
//
//	AtPosition(x, y)                 -distance(p, (x,y))
//	OnCircle(center, r)              -|distance(p, C) - r|
//	EquidistantFrom(a, b)            -|distance(p, A) - distance(p, B)|
//	AtAngle(θ, a, vertex)            -|angleAtVertex(A, V, p) - θ|
//	TranslatedByVector(origin, v)    -distance(p, O+v)
//	TranslatedBySegment(origin, f, t)-distance(p, O+vector(F, T))
//	AtMiddleOf(names...)             -max over i of distance(p, P_i)
//	CloserToThan(near, far)          distance(p, F) - distance(p, N)
//	AlignedWith(a, b)                -|cross(unit(A→B), A→p)|
//
// Uppercase letters stand for positions resolved by name at evaluation
// time through the Positions argument. Resolution failures wrap
// core.ErrPointNotFound and abort the evaluation; degenerate geometry
// (a zero direction in AlignedWith, a collapsed ray in AtAngle) scores
// NaN, which freezes the point it belongs to without failing the pass.
package constraint
