package render

import (
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

const (
	legendSwatch  = 12
	legendRowGap  = 6
	legendPadding = 10
)

// drawLegend paints the passability color key into the top-right corner.
func drawLegend(img *image.NRGBA) {
	face := basicfont.Face7x13

	// Widest label decides the box width.
	maxLabel := 0
	for _, p := range LegendEntries {
		if w := font.MeasureString(face, p.String()).Ceil(); w > maxLabel {
			maxLabel = w
		}
	}

	rowH := legendSwatch + legendRowGap
	boxW := legendPadding*2 + legendSwatch + 6 + maxLabel
	boxH := legendPadding*2 + rowH*len(LegendEntries) - legendRowGap

	bounds := img.Bounds()
	x0 := bounds.Max.X - boxW - legendPadding
	y0 := bounds.Min.Y + legendPadding
	box := image.Rect(x0, y0, x0+boxW, y0+boxH)

	draw.Draw(img, box, &image.Uniform{color.NRGBA{R: 0, G: 0, B: 0, A: 170}}, image.Point{}, draw.Over)

	drawer := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(color.NRGBA{R: 230, G: 230, B: 230, A: 255}),
		Face: face,
	}

	y := y0 + legendPadding
	for _, p := range LegendEntries {
		swatch := image.Rect(x0+legendPadding, y, x0+legendPadding+legendSwatch, y+legendSwatch)
		draw.Draw(img, swatch, &image.Uniform{PassabilityColor(p)}, image.Point{}, draw.Src)

		drawer.Dot = fixed.P(x0+legendPadding+legendSwatch+6, y+legendSwatch-2)
		drawer.DrawString(p.String())

		y += rowH
	}
}
