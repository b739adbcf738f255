package solver

import (
	"fmt"
	"math"
)

// validateOptions rejects tunings the pass loop cannot honor. Checks run
// in a fixed order so the first offending field decides the error.
func validateOptions(o Options) error {
	if o.Samples < 1 {
		return fmt.Errorf("%w: got %d", ErrSampleCount, o.Samples)
	}
	if !(o.Radius > 0) || math.IsInf(o.Radius, 1) {
		return fmt.Errorf("%w: got %v", ErrRadius, o.Radius)
	}
	if o.Workers < 1 {
		return fmt.Errorf("%w: got %d", ErrWorkerCount, o.Workers)
	}
	if o.PassLimit < 1 {
		return fmt.Errorf("%w: got %d", ErrPassLimit, o.PassLimit)
	}

	return nil
}
