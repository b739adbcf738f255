package render

import (
	"image"
	"image/color"
	"math"
	"sort"

	"github.com/pointfit/relax/core"
	"github.com/pointfit/relax/geom"
	"github.com/pointfit/relax/scene"
)

// setIfIn plots one pixel, clipping at the canvas edge.
func setIfIn(img *image.RGBA, x, y int, col color.RGBA) {
	if (image.Point{X: x, Y: y}).In(img.Bounds()) {
		img.SetRGBA(x, y, col)
	}
}

// dot fills a size x size square centered on (x, y).
func dot(img *image.RGBA, x, y float64, col color.RGBA, size int) {
	if size < 1 {
		size = 1
	}
	cx := int(math.Round(x))
	cy := int(math.Round(y))
	half := size / 2
	for py := cy - half; py < cy-half+size; py++ {
		for px := cx - half; px < cx-half+size; px++ {
			setIfIn(img, px, py, col)
		}
	}
}

// stroke draws a straight stroke by stepping one pixel at a time.
func stroke(img *image.RGBA, x0, y0, x1, y1 float64, col color.RGBA, width int) {
	steps := int(math.Hypot(x1-x0, y1-y0)) + 1
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		dot(img, x0+(x1-x0)*t, y0+(y1-y0)*t, col, width)
	}
}

// dashedStroke draws the stroke with an on/off pixel pattern.
func dashedStroke(img *image.RGBA, x0, y0, x1, y1 float64, col color.RGBA, width, on, off int) {
	steps := int(math.Hypot(x1-x0, y1-y0)) + 1
	period := on + off
	for i := 0; i <= steps; i++ {
		if i%period >= on {
			continue
		}
		t := float64(i) / float64(steps)
		dot(img, x0+(x1-x0)*t, y0+(y1-y0)*t, col, width)
	}
}

// disc fills a circle of radius r centered on (cx, cy).
func disc(img *image.RGBA, cx, cy, r float64, col color.RGBA) {
	for py := int(cy - r); py <= int(cy+r)+1; py++ {
		for px := int(cx - r); px <= int(cx+r)+1; px++ {
			dx := float64(px) + 0.5 - cx
			dy := float64(py) + 0.5 - cy
			if dx*dx+dy*dy <= r*r {
				setIfIn(img, px, py, col)
			}
		}
	}
}

// hollowDisc draws a circle outline of outer radius r and the given
// stroke thickness.
func hollowDisc(img *image.RGBA, cx, cy, r, thickness float64, col color.RGBA) {
	inner := r - thickness
	if inner < 0 {
		inner = 0
	}
	for py := int(cy - r); py <= int(cy+r)+1; py++ {
		for px := int(cx - r); px <= int(cx+r)+1; px++ {
			dx := float64(px) + 0.5 - cx
			dy := float64(py) + 0.5 - cy
			d := dx*dx + dy*dy
			if d <= r*r && d >= inner*inner {
				setIfIn(img, px, py, col)
			}
		}
	}
}

func drawSegment(img *image.RGBA, tr transform, a, b geom.Vec2, width int) {
	x0, y0 := tr.apply(a)
	x1, y1 := tr.apply(b)
	stroke(img, x0, y0, x1, y1, colSegment, width)
}

// drawInfiniteLine extends the carrier through both endpoints past the
// canvas and draws it dashed, so lines read differently from segments.
func drawInfiniteLine(img *image.RGBA, tr transform, a, b geom.Vec2, ss int) {
	x0, y0 := tr.apply(a)
	x1, y1 := tr.apply(b)
	dx, dy := x1-x0, y1-y0
	n := math.Hypot(dx, dy)
	if n == 0 {
		return
	}

	ux, uy := dx/n, dy/n
	ext := float64(img.Bounds().Dx() + img.Bounds().Dy())
	dashedStroke(img, x0-ux*ext, y0-uy*ext, x1+ux*ext, y1+uy*ext, colLine, ss, 6*ss, 5*ss)
}

// drawPolygon fills the ring and strokes its outline.
func drawPolygon(img *image.RGBA, tr transform, ring []geom.Vec2) {
	if len(ring) < 3 {
		return
	}

	xs := make([]float64, len(ring))
	ys := make([]float64, len(ring))
	for i, v := range ring {
		xs[i], ys[i] = tr.apply(v)
	}

	fillPolygon(img, xs, ys, colPolygon)
	for i := range ring {
		j := (i + 1) % len(ring)
		stroke(img, xs[i], ys[i], xs[j], ys[j], colLine, 1)
	}
}

// fillPolygon rasterizes the even-odd interior with a scanline sweep.
func fillPolygon(img *image.RGBA, xs, ys []float64, col color.RGBA) {
	minY, maxY := math.Inf(1), math.Inf(-1)
	for _, y := range ys {
		minY = math.Min(minY, y)
		maxY = math.Max(maxY, y)
	}

	top := int(math.Max(0, math.Floor(minY)))
	bottom := int(math.Min(float64(img.Bounds().Max.Y-1), math.Ceil(maxY)))
	cuts := make([]float64, 0, len(xs))
	for y := top; y <= bottom; y++ {
		yc := float64(y) + 0.5
		cuts = cuts[:0]
		for i := range xs {
			j := (i + 1) % len(xs)
			if (ys[i] <= yc) == (ys[j] <= yc) {
				continue
			}
			t := (yc - ys[i]) / (ys[j] - ys[i])
			cuts = append(cuts, xs[i]+t*(xs[j]-xs[i]))
		}
		sort.Float64s(cuts)

		for k := 0; k+1 < len(cuts); k += 2 {
			for x := int(math.Ceil(cuts[k])); x <= int(math.Floor(cuts[k+1])); x++ {
				setIfIn(img, x, y, col)
			}
		}
	}
}

// drawMeasure strokes the measured span with perpendicular end ticks.
func drawMeasure(img *image.RGBA, tr transform, m scene.PlacedMeasure, ss int) {
	x0, y0 := tr.apply(m.From)
	x1, y1 := tr.apply(m.To)
	stroke(img, x0, y0, x1, y1, colMeasure, ss)

	dx, dy := x1-x0, y1-y0
	n := math.Hypot(dx, dy)
	if n == 0 {
		return
	}

	px, py := -dy/n, dx/n
	tick := float64(4 * ss)
	stroke(img, x0-px*tick, y0-py*tick, x0+px*tick, y0+py*tick, colMeasure, ss)
	stroke(img, x1-px*tick, y1-py*tick, x1+px*tick, y1+py*tick, colMeasure, ss)
}

// drawMarker plots one point: a filled disc once it has settled, a
// hollow one while it is still moving.
func drawMarker(img *image.RGBA, tr transform, p *core.Point, ss int) {
	x, y := tr.apply(p.Position())
	r := float64(4 * ss)
	if p.Stable() {
		disc(img, x, y, r, colStable)

		return
	}
	hollowDisc(img, x, y, r, float64(ss)+0.5, colUnstable)
}

// drawHeatmap plots every candidate cell of each point's latest pass,
// normalized per point: within one cloud the worst finite score maps to
// the cold end and the best to the hot end. NaN cells use the poison
// gray regardless.
func drawHeatmap(img *image.RGBA, tr transform, points []*core.Point) {
	for _, p := range points {
		m := p.Samples()
		if m == nil {
			continue
		}

		lo, hi := math.Inf(1), math.Inf(-1)
		m.Walk(func(_ core.GridKey, s float64) {
			if math.IsNaN(s) {
				return
			}
			lo = math.Min(lo, s)
			hi = math.Max(hi, s)
		})
		span := hi - lo

		cell := int(math.Max(1, core.Precision*tr.scale))
		m.Walk(func(k core.GridKey, s float64) {
			x, y := tr.apply(k.Vec())
			switch {
			case math.IsNaN(s):
				dot(img, x, y, colPoison, cell)
			case span <= 0:
				dot(img, x, y, lerp(colCold, colHot, 0.5), cell)
			default:
				dot(img, x, y, lerp(colCold, colHot, (s-lo)/span), cell)
			}
		})
	}
}

// lerp blends two colors channel-wise; t clamps to [0, 1].
func lerp(a, b color.RGBA, t float64) color.RGBA {
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	mix := func(x, y uint8) uint8 {
		return uint8(math.Round(float64(x) + (float64(y)-float64(x))*t))
	}

	return color.RGBA{R: mix(a.R, b.R), G: mix(a.G, b.G), B: mix(a.B, b.B), A: 0xff}
}
