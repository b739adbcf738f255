// Package core types: sentinel errors, the Rule contract, and name
// resolution interfaces shared across the module.
package core

import (
	"errors"

	"github.com/pointfit/relax/geom"
)

// Sentinel errors for registry operations.
var (
	// ErrEmptyName indicates a registration with an empty point name.
	ErrEmptyName = errors.New("core: point name must be non-empty")
	// ErrNilRule indicates a registration without a scoring rule.
	ErrNilRule = errors.New("core: scoring rule must be non-nil")
	// ErrDuplicatePoint indicates the name is already registered.
	ErrDuplicatePoint = errors.New("core: point name already registered")
	// ErrPointNotFound indicates a lookup of a name that was never registered.
	ErrPointNotFound = errors.New("core: point not found")
)

// Positions resolves point names to their current stored positions.
// At fails with ErrPointNotFound for unknown names; it never substitutes a
// default position, since that would corrupt scores silently.
type Positions interface {
	At(name string) (geom.Vec2, error)
}

// Rule scores a trial position for the point being solved. Every other
// referenced point is read through pts at its current stored position,
// never at a trial position: optimization moves one point at a time with
// all dependencies held fixed.
//
// Contracts:
//   - Pure: no side effects, no retained references to pts.
//   - Higher is better; zero or the maximum attainable value means the
//     constraint is satisfied.
//   - Errors are reserved for name-resolution failures and abort the
//     operation that triggered the evaluation. Degenerate geometry yields
//     a NaN score with a nil error instead.
type Rule func(trial geom.Vec2, pts Positions) (float64, error)
