// Package relax positions named points in the plane by stochastic
// relaxation: every point carries a composite scoring rule over the
// positions of other named points, and repeated sampling passes move each
// point toward the best-scoring candidate until the whole sketch is stable.
//
// 🚀 What is relax?
//
//	A constraint-based geometry construction library that brings together:
//		• Vector kernel: distances, dot/cross products, signed angles
//		• Constraint primitives: on-circle, at-angle, aligned-with, at-middle-of…
//		• Point registry: named points with composite scoring rules
//		• Relaxation solver: seeded isotropic sampling, deterministic replays
//		• Scene model: declarative points, segments, polygons and measures
//		• Snapshot renderer: PNG sketches with candidate-score heatmaps
//
// ✨ Why choose relax?
//
//   - Soft constraints – scores add up, partial satisfaction still counts
//   - Deterministic – fixed seed ⇒ identical trajectories on every platform
//   - Pure Go – no cgo, no GPU, renders straight to PNG
//   - Composable – any func(trial, positions) score plugs in as a rule
//
// Everything is organized under focused subpackages:
//
//	geom/       — Vec2 arithmetic and angle helpers
//	core/       — Point, Rule, Registry, grid rounding, candidate score maps
//	constraint/ — the primitive scoring library and Sum composition
//	solver/     — the relaxation pass engine and driving loop
//	scene/      — declarative scenes, YAML loading, renderer projections
//	render/     — static PNG snapshots of solved scenes
//
// Quick ASCII example:
//
//	    nw───ne          nw anchored at the origin,
//	    │ ×   │          ne translated 120 to the right,
//	    sw───se          se on a circle around ne, sw closing the loop,
//	                     × at the middle of all four.
//
// A scene like this converges in a few passes; every position lands on a
// hundredth-of-a-unit grid, so results compare exactly.
//
//	go get github.com/pointfit/relax
package relax
