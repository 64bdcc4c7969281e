package render

import (
	"image/color"
	"math"
)

// RasterizeTriangle rasterizes a single flat-shaded triangle with a z-buffer.
// px, py, pz hold the screen-space vertex positions; idx selects the three
// corners. The shade factor scales the fill color (1.0 = full color).
//
// This is the hot path; the pixel loop performs no allocations.
func RasterizeTriangle(fb *FrameBuffer, px, py, pz []float64, idx [3]int, c color.NRGBA, shade float64) {
	x0, y0, z0 := px[idx[0]], py[idx[0]], pz[idx[0]]
	x1, y1, z1 := px[idx[1]], py[idx[1]], pz[idx[1]]
	x2, y2, z2 := px[idx[2]], py[idx[2]], pz[idx[2]]

	// Bounding box clipped to the framebuffer.
	minX := int(math.Min(math.Min(x0, x1), x2))
	maxX := int(math.Max(math.Max(x0, x1), x2)) + 1
	minY := int(math.Min(math.Min(y0, y1), y2))
	maxY := int(math.Max(math.Max(y0, y1), y2)) + 1

	if minX < 0 {
		minX = 0
	}
	if maxX >= fb.Width {
		maxX = fb.Width - 1
	}
	if minY < 0 {
		minY = 0
	}
	if maxY >= fb.Height {
		maxY = fb.Height - 1
	}
	if minX > maxX || minY > maxY {
		return
	}

	// Barycentric setup. Degenerate triangles rasterize to nothing.
	det := (y1-y2)*(x0-x2) + (x2-x1)*(y0-y2)
	if det > -1e-9 && det < 1e-9 {
		return
	}
	invDet := 1.0 / det

	dy12 := y1 - y2
	dx21 := x2 - x1
	dy20 := y2 - y0
	dx02 := x0 - x2

	fr := clamp255(float64(c.R) * shade)
	fg := clamp255(float64(c.G) * shade)
	fbv := clamp255(float64(c.B) * shade)

	for sy := minY; sy <= maxY; sy++ {
		dsy := float64(sy) - y2
		rowOff := sy * fb.Width
		for sx := minX; sx <= maxX; sx++ {
			dsx := float64(sx) - x2
			w0 := (dy12*dsx + dx21*dsy) * invDet
			w1 := (dy20*dsx + dx02*dsy) * invDet
			w2 := 1.0 - w0 - w1

			if w0 < -0.001 || w1 < -0.001 || w2 < -0.001 {
				continue
			}

			z := w0*z0 + w1*z1 + w2*z2
			zIdx := rowOff + sx
			if z <= fb.ZBuf[zIdx] {
				continue
			}
			fb.ZBuf[zIdx] = z

			// Darken near the edges so adjacent triangles stay
			// distinguishable without a separate wireframe pass.
			edge := math.Min(w0, math.Min(w1, w2))
			dim := 1.0
			if edge < 0.04 {
				dim = 0.55 + edge*(0.45/0.04)
			}

			pxIdx := zIdx * 4
			fb.Color[pxIdx] = uint8(float64(fr)*dim + 0.5)
			fb.Color[pxIdx+1] = uint8(float64(fg)*dim + 0.5)
			fb.Color[pxIdx+2] = uint8(float64(fbv)*dim + 0.5)
			fb.Color[pxIdx+3] = c.A
		}
	}
}

func clamp255(v float64) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v + 0.5)
}
