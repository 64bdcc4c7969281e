package render

import (
	"image"

	"golang.org/x/image/draw"
)

// Downsample scales a supersampled render down to the target size with
// CatmullRom filtering. The render has an opaque background, so no alpha
// premultiplication pass is needed.
func Downsample(img *image.NRGBA, width, height int) *image.NRGBA {
	b := img.Bounds()
	if b.Dx() <= width && b.Dy() <= height {
		return img
	}

	dst := image.NewNRGBA(image.Rect(0, 0, width, height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
	return dst
}
