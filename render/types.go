// types.go — sentinel errors and the sketch palette.

package render

import (
	"errors"
	"image/color"
)

// ErrBadSize indicates canvas options that cannot form a drawable image:
// non-positive dimensions, a margin swallowing the canvas, or a
// supersampling factor outside 1..8.
var ErrBadSize = errors.New("render: unusable canvas size")

// ErrNoGeometry indicates a registry with no points to draw.
var ErrNoGeometry = errors.New("render: nothing to draw")

// Sketch palette. Paper-like background, ink-dark segments, muted
// violet for measures; point markers split by solve state.
var (
	colBackground = color.RGBA{R: 0xfa, G: 0xfa, B: 0xf5, A: 0xff}
	colPolygon    = color.RGBA{R: 0xe4, G: 0xec, B: 0xf4, A: 0xff}
	colLine       = color.RGBA{R: 0x9a, G: 0xa8, B: 0xb6, A: 0xff}
	colSegment    = color.RGBA{R: 0x26, G: 0x32, B: 0x3e, A: 0xff}
	colMeasure    = color.RGBA{R: 0x6b, G: 0x5b, B: 0xb5, A: 0xff}
	colStable     = color.RGBA{R: 0x1e, G: 0x78, B: 0x40, A: 0xff}
	colUnstable   = color.RGBA{R: 0xc2, G: 0x3b, B: 0x2e, A: 0xff}
	colLabel      = color.RGBA{R: 0x20, G: 0x20, B: 0x20, A: 0xff}

	// Heatmap ramp endpoints and the cell color for NaN scores.
	colCold   = color.RGBA{R: 0x2b, G: 0x4c, B: 0x7e, A: 0xff}
	colHot    = color.RGBA{R: 0xe8, G: 0x6a, B: 0x17, A: 0xff}
	colPoison = color.RGBA{R: 0x90, G: 0x90, B: 0x90, A: 0xff}
)
