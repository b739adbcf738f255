package render

import (
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"io"
	"math"
	"os"

	xdraw "golang.org/x/image/draw"

	"github.com/pointfit/relax/core"
	"github.com/pointfit/relax/geom"
	"github.com/pointfit/relax/scene"
)

// Render rasterizes the registry's points together with the scene's
// derived geometry. The scene may be nil: then only the points (and the
// optional heatmap) are drawn, which is handy when debugging a solve.
//
// The registry is read, never mutated; call between passes or after
// Solve. Rendering order is heatmap, polygons, lines, segments,
// measures, markers, labels, so markers always sit on top.
func Render(sc *scene.Scene, reg *core.Registry, opts ...Option) (*image.RGBA, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if err := validateOptions(o); err != nil {
		return nil, err
	}
	if reg == nil || reg.Len() == 0 {
		return nil, ErrNoGeometry
	}

	var (
		lines    []scene.PlacedLine
		segments []scene.PlacedSegment
		polygons []scene.PlacedPolygon
		measures []scene.PlacedMeasure
		err      error
	)
	if sc != nil {
		if lines, err = sc.PlaceLines(reg); err != nil {
			return nil, err
		}
		if segments, err = sc.PlaceSegments(reg); err != nil {
			return nil, err
		}
		if polygons, err = sc.PlacePolygons(reg); err != nil {
			return nil, err
		}
		if measures, err = sc.PlaceMeasures(reg); err != nil {
			return nil, err
		}
	}

	points := reg.Points()
	tr := fitTransform(o, points)

	ss := o.Supersample
	canvas := image.NewRGBA(image.Rect(0, 0, o.Width*ss, o.Height*ss))
	draw.Draw(canvas, canvas.Bounds(), image.NewUniform(colBackground), image.Point{}, draw.Src)

	if o.Heatmap {
		drawHeatmap(canvas, tr, points)
	}
	for _, pg := range polygons {
		drawPolygon(canvas, tr, pg.Vertices)
	}
	for _, l := range lines {
		drawInfiniteLine(canvas, tr, l.From, l.To, ss)
	}
	for _, s := range segments {
		drawSegment(canvas, tr, s.From, s.To, 2*ss)
	}
	for _, m := range measures {
		drawMeasure(canvas, tr, m, ss)
	}
	for _, p := range points {
		drawMarker(canvas, tr, p, ss)
	}
	if o.Labels {
		if err := drawLabels(canvas, tr, points, measures, ss); err != nil {
			return nil, err
		}
	}

	if ss == 1 {
		return canvas, nil
	}

	out := image.NewRGBA(image.Rect(0, 0, o.Width, o.Height))
	xdraw.CatmullRom.Scale(out, out.Bounds(), canvas, canvas.Bounds(), xdraw.Src, nil)

	return out, nil
}

// WritePNG encodes the image to w.
func WritePNG(w io.Writer, img image.Image) error {
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("render: encode png: %w", err)
	}

	return nil
}

// SavePNG encodes the image into a file at path.
func SavePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("render: create %s: %w", path, err)
	}
	if err := WritePNG(f, img); err != nil {
		f.Close()

		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("render: close %s: %w", path, err)
	}

	return nil
}

// transform maps world coordinates onto the supersampled canvas. World y
// already grows downward in sketches, so no axis flip happens here.
type transform struct {
	scale      float64
	offX, offY float64
}

func (t transform) apply(v geom.Vec2) (float64, float64) {
	return v.X*t.scale + t.offX, v.Y*t.scale + t.offY
}

// fitTransform fits the bounding box of all point positions into the
// canvas minus margins, uniformly scaled and centered. A degenerate box
// (single point, collinear span) falls back to a unit span so the scale
// stays finite.
func fitTransform(o Options, points []*core.Point) transform {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, p := range points {
		v := p.Position()
		minX = math.Min(minX, v.X)
		maxX = math.Max(maxX, v.X)
		minY = math.Min(minY, v.Y)
		maxY = math.Max(maxY, v.Y)
	}

	spanX := maxX - minX
	spanY := maxY - minY
	if spanX <= 0 {
		spanX = 1
	}
	if spanY <= 0 {
		spanY = 1
	}

	ss := float64(o.Supersample)
	availW := float64(o.Width-2*o.Margin) * ss
	availH := float64(o.Height-2*o.Margin) * ss

	scale := math.Min(availW/spanX, availH/spanY)
	offX := float64(o.Margin)*ss + (availW-spanX*scale)/2 - minX*scale
	offY := float64(o.Margin)*ss + (availH-spanY*scale)/2 - minY*scale

	return transform{scale: scale, offX: offX, offY: offY}
}
