package constraint

import "errors"

// Sentinel errors for constraint construction and evaluation.
var (
	// ErrNoAnchors indicates an AtMiddleOf rule with an empty anchor list.
	ErrNoAnchors = errors.New("constraint: at-middle-of needs at least one anchor point")
)
