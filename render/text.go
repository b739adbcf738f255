package render

import (
	"fmt"
	"image"
	"math"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	"github.com/pointfit/relax/core"
	"github.com/pointfit/relax/scene"
)

var (
	fontOnce sync.Once
	fontReg  *opentype.Font
	fontErr  error
)

// regularFont parses the embedded Go Regular face once per process.
func regularFont() (*opentype.Font, error) {
	fontOnce.Do(func() {
		fontReg, fontErr = opentype.Parse(goregular.TTF)
	})
	if fontErr != nil {
		return nil, fmt.Errorf("render: parse font: %w", fontErr)
	}

	return fontReg, nil
}

// drawString sets msg with its baseline starting at (x, y).
func drawString(img *image.RGBA, x, y, size float64, msg string) error {
	f, err := regularFont()
	if err != nil {
		return err
	}

	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return fmt.Errorf("render: font face: %w", err)
	}
	defer face.Close()

	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(colLabel),
		Face: face,
		Dot:  fixed.P(int(math.Round(x)), int(math.Round(y))),
	}
	d.DrawString(msg)

	return nil
}

// drawLabels names every point next to its marker and captions each
// measure at its midpoint.
func drawLabels(img *image.RGBA, tr transform, points []*core.Point, measures []scene.PlacedMeasure, ss int) error {
	size := float64(12 * ss)
	pad := float64(6 * ss)

	for _, p := range points {
		x, y := tr.apply(p.Position())
		if err := drawString(img, x+pad, y-pad, size, p.Name()); err != nil {
			return err
		}
	}

	for _, m := range measures {
		x0, y0 := tr.apply(m.From)
		x1, y1 := tr.apply(m.To)
		caption := fmt.Sprintf("%s = %.2f", m.Label, m.Length)
		if err := drawString(img, (x0+x1)/2+pad, (y0+y1)/2-pad, size, caption); err != nil {
			return err
		}
	}

	return nil
}
