package solver

// Options tune one Solver. Start from DefaultOptions and adjust fields,
// or hand With* modifiers to New; New validates the final combination.
type Options struct {
	// Samples is the number of candidate draws per point per pass.
	Samples int
	// Radius is the outer sampling radius. Draws use radius U²·Radius for
	// U uniform in [0,1), quadratically denser near the current position
	// while still proposing the occasional large escape jump.
	Radius float64
	// Seed selects the deterministic random stream. Seed 0 maps to a
	// fixed default seed, so the zero value still replays identically.
	Seed int64
	// Workers bounds concurrent per-point evaluation. 1 keeps the
	// sequential sweep with live position reads; above 1 every point in a
	// pass reads the positions snapshotted at the start of that pass.
	Workers int
	// PassLimit caps how many passes Solve runs before giving up.
	PassLimit int
}

// DefaultOptions returns the tuning the demo sketches use: 10000 samples
// per point, outer radius 100, sequential sweep, up to 256 passes.
func DefaultOptions() Options {
	return Options{
		Samples:   10000,
		Radius:    100,
		Seed:      0,
		Workers:   1,
		PassLimit: 256,
	}
}

// Option mutates Options before validation.
type Option func(*Options)

// WithSamples sets the candidate draws per point per pass.
func WithSamples(n int) Option { return func(o *Options) { o.Samples = n } }

// WithRadius sets the outer sampling radius.
func WithRadius(r float64) Option { return func(o *Options) { o.Radius = r } }

// WithSeed selects the random stream (0 keeps the fixed default).
func WithSeed(seed int64) Option { return func(o *Options) { o.Seed = seed } }

// WithWorkers bounds concurrent per-point evaluation.
func WithWorkers(n int) Option { return func(o *Options) { o.Workers = n } }

// WithPassLimit caps the passes Solve runs before giving up.
func WithPassLimit(n int) Option { return func(o *Options) { o.PassLimit = n } }
