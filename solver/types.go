// Package solver types: sentinel errors and the pass/solve reports.
package solver

import "errors"

// Sentinel errors for solver construction and runs.
var (
	// ErrNilRegistry indicates New was handed a nil registry.
	ErrNilRegistry = errors.New("solver: registry must be non-nil")
	// ErrSampleCount indicates a non-positive Samples option.
	ErrSampleCount = errors.New("solver: Samples must be at least 1")
	// ErrRadius indicates a Radius that is not a positive finite number.
	ErrRadius = errors.New("solver: Radius must be positive and finite")
	// ErrWorkerCount indicates a non-positive Workers option.
	ErrWorkerCount = errors.New("solver: Workers must be at least 1")
	// ErrPassLimit indicates a non-positive PassLimit option.
	ErrPassLimit = errors.New("solver: PassLimit must be at least 1")
	// ErrNotConverged indicates Solve hit PassLimit with unstable points left.
	ErrNotConverged = errors.New("solver: registry did not stabilize")
)

// PassStats reports what one relaxation pass did.
type PassStats struct {
	// Pass is the 1-based sequence number of the pass since New.
	Pass int
	// Visited counts the unstable points the pass processed.
	Visited int
	// Moved counts points relocated to a new candidate position.
	Moved int
	// Settled counts points that found no improving candidate and froze.
	Settled int
	// Poisoned lists the points whose best candidate scored NaN this
	// pass, in registration order. Degenerate geometry freezes them where
	// they stand without disturbing their neighbors.
	Poisoned []string
}

// Result summarizes one Solve run.
type Result struct {
	// Passes is the number of passes this Solve call executed.
	Passes int
	// Stable reports whether every point had settled when Solve returned.
	Stable bool
}
