package render_test

import (
	"bytes"
	"errors"
	"image"
	"image/png"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pointfit/relax/constraint"
	"github.com/pointfit/relax/core"
	"github.com/pointfit/relax/geom"
	"github.com/pointfit/relax/render"
	"github.com/pointfit/relax/scene"
)

// demo builds a right triangle with one of every projection kind, seeded
// onto its anchors, so rendering needs no solver and stays fully
// deterministic.
func demo(t *testing.T) (*scene.Scene, *core.Registry) {
	t.Helper()

	start := func(x, y float64) *geom.Vec2 {
		v := geom.V(x, y)

		return &v
	}
	sc := &scene.Scene{
		Points: []scene.PointDecl{
			{Name: "a", Rules: []core.Rule{constraint.AtPosition(0, 0)}, Start: start(0, 0)},
			{Name: "b", Rules: []core.Rule{constraint.AtPosition(4, 0)}, Start: start(4, 0)},
			{Name: "c", Rules: []core.Rule{constraint.AtPosition(0, 3)}, Start: start(0, 3)},
		},
		Lines:    []scene.Pair{{From: "b", To: "c"}},
		Segments: []scene.Pair{{From: "a", To: "b"}, {From: "a", To: "c"}},
		Polygons: []scene.Polygon{{Name: "tri", Points: []string{"a", "b", "c"}}},
		Measures: []scene.Measure{{From: "a", To: "b", Label: "base"}},
	}

	reg, err := sc.Build()
	require.NoError(t, err)

	return sc, reg
}

// inkPixels counts pixels that differ from the top-left background.
func inkPixels(img *image.RGBA) int {
	var (
		b  = img.Bounds()
		bg = img.RGBAAt(b.Min.X, b.Min.Y)
		n  int
	)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if img.RGBAAt(x, y) != bg {
				n++
			}
		}
	}

	return n
}

func TestRenderValidatesOptions(t *testing.T) {
	t.Parallel()

	sc, reg := demo(t)

	cases := []struct {
		name string
		opts []render.Option
	}{
		{"zero width", []render.Option{render.WithSize(0, 100)}},
		{"margin eats canvas", []render.Option{render.WithSize(100, 100), render.WithMargin(50)}},
		{"supersample too low", []render.Option{render.WithSupersample(0)}},
		{"supersample too high", []render.Option{render.WithSupersample(9)}},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			_, err := render.Render(sc, reg, tc.opts...)
			require.Truef(t, errors.Is(err, render.ErrBadSize), "got %v", err)
		})
	}
}

func TestRenderRejectsEmptyRegistry(t *testing.T) {
	t.Parallel()

	_, err := render.Render(nil, core.New())
	require.Truef(t, errors.Is(err, render.ErrNoGeometry), "got %v", err)

	_, err = render.Render(nil, nil)
	require.Truef(t, errors.Is(err, render.ErrNoGeometry), "got %v", err)
}

func TestRenderSizeAndInk(t *testing.T) {
	t.Parallel()

	sc, reg := demo(t)
	// Dashed carriers extend past the fitted box, so drop them to keep
	// the margin rows ink-free for the corner check below.
	sc.Lines = nil

	img, err := render.Render(sc, reg,
		render.WithSize(200, 150),
		render.WithSupersample(1),
		render.WithLabels(false),
	)
	require.NoError(t, err)
	require.Equal(t, 200, img.Bounds().Dx())
	require.Equal(t, 150, img.Bounds().Dy())

	// The margin corner stays paper; the fitted interior carries ink.
	require.Equal(t, img.RGBAAt(1, 1), img.RGBAAt(198, 1))
	require.Positive(t, inkPixels(img))
}

func TestRenderSupersampleKeepsOutputSize(t *testing.T) {
	t.Parallel()

	sc, reg := demo(t)

	img, err := render.Render(sc, reg, render.WithSize(160, 120), render.WithSupersample(3))
	require.NoError(t, err)
	require.Equal(t, 160, img.Bounds().Dx())
	require.Equal(t, 120, img.Bounds().Dy())
}

func TestRenderTogglesChangeOutput(t *testing.T) {
	t.Parallel()

	sc, reg := demo(t)

	// Attach a candidate cloud so the heatmap has something to plot. The
	// cells sit right of the hypotenuse, clear of the polygon fill that
	// is drawn on top of the heatmap.
	p, err := reg.Resolve("a")
	require.NoError(t, err)
	m := core.NewScoreMap(8)
	m.Insert(core.KeyOf(geom.V(3, 2)), -1)
	m.Insert(core.KeyOf(geom.V(3.5, 2.5)), -2)
	m.Insert(core.KeyOf(geom.V(2.5, 2.8)), math.NaN())
	p.Relocate(geom.V(0, 0), -0.5, m)

	opts := []render.Option{render.WithSize(200, 150), render.WithSupersample(1)}

	plain, err := render.Render(sc, reg, opts...)
	require.NoError(t, err)
	heat, err := render.Render(sc, reg, append(opts, render.WithHeatmap(true))...)
	require.NoError(t, err)
	bare, err := render.Render(sc, reg, append(opts, render.WithLabels(false))...)
	require.NoError(t, err)

	require.False(t, bytes.Equal(plain.Pix, heat.Pix))
	require.False(t, bytes.Equal(plain.Pix, bare.Pix))
}

func TestRenderMarkersTrackStability(t *testing.T) {
	t.Parallel()

	sc, reg := demo(t)
	opts := []render.Option{render.WithSize(200, 150), render.WithSupersample(1), render.WithLabels(false)}

	moving, err := render.Render(sc, reg, opts...)
	require.NoError(t, err)

	// Settle one point; its marker flips from hollow to filled.
	p, err := reg.Resolve("a")
	require.NoError(t, err)
	p.Settle(nil)

	settled, err := render.Render(sc, reg, opts...)
	require.NoError(t, err)
	require.False(t, bytes.Equal(moving.Pix, settled.Pix))
}

func TestWritePNGRoundTrip(t *testing.T) {
	t.Parallel()

	sc, reg := demo(t)
	img, err := render.Render(sc, reg, render.WithSize(120, 90))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, render.WritePNG(&buf, img))

	decoded, err := png.Decode(&buf)
	require.NoError(t, err)
	require.Equal(t, img.Bounds(), decoded.Bounds())
}

func TestSavePNGWritesFile(t *testing.T) {
	t.Parallel()

	sc, reg := demo(t)
	img, err := render.Render(sc, reg, render.WithSize(120, 90))
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "sketch.png")
	require.NoError(t, render.SavePNG(path, img))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	decoded, err := png.Decode(f)
	require.NoError(t, err)
	require.Equal(t, img.Bounds(), decoded.Bounds())
}
