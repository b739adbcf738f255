package render

import "fmt"

// Options tune the canvas. Start from DefaultOptions and adjust fields,
// or hand With* modifiers to Render; Render validates the combination.
type Options struct {
	// Width and Height are the output image size in pixels.
	Width, Height int
	// Margin is the frame kept clear around the fitted scene, in pixels.
	Margin int
	// Supersample is the factor geometry is drawn at before the
	// Catmull-Rom downscale. 1 draws directly at output size.
	Supersample int
	// Heatmap plots every candidate cell of each point's most recent
	// pass underneath the geometry.
	Heatmap bool
	// Labels draws point names and measure captions.
	Labels bool
}

// DefaultOptions returns the canvas the demo sketches use: 800x600 with
// a 40 px margin, 2x supersampling, labels on, heatmap off.
func DefaultOptions() Options {
	return Options{
		Width:       800,
		Height:      600,
		Margin:      40,
		Supersample: 2,
		Heatmap:     false,
		Labels:      true,
	}
}

// Option mutates Options before validation.
type Option func(*Options)

// WithSize sets the output image size in pixels.
func WithSize(width, height int) Option {
	return func(o *Options) { o.Width, o.Height = width, height }
}

// WithMargin sets the clear frame around the fitted scene.
func WithMargin(px int) Option { return func(o *Options) { o.Margin = px } }

// WithSupersample sets the oversampling factor (1..8).
func WithSupersample(factor int) Option { return func(o *Options) { o.Supersample = factor } }

// WithHeatmap toggles the candidate-cell underlay.
func WithHeatmap(on bool) Option { return func(o *Options) { o.Heatmap = on } }

// WithLabels toggles point names and measure captions.
func WithLabels(on bool) Option { return func(o *Options) { o.Labels = on } }

// validateOptions rejects canvases that cannot be drawn. Checks run in a
// fixed order so the first offending field decides the error.
func validateOptions(o Options) error {
	if o.Width < 1 || o.Height < 1 {
		return fmt.Errorf("%w: %dx%d", ErrBadSize, o.Width, o.Height)
	}
	if o.Margin < 0 || 2*o.Margin >= o.Width || 2*o.Margin >= o.Height {
		return fmt.Errorf("%w: margin %d leaves no canvas", ErrBadSize, o.Margin)
	}
	if o.Supersample < 1 || o.Supersample > 8 {
		return fmt.Errorf("%w: supersample %d outside 1..8", ErrBadSize, o.Supersample)
	}

	return nil
}
