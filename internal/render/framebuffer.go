package render

import (
	"image/color"
	"math"
)

// FrameBuffer holds the rendering target as flat slices for cache locality.
type FrameBuffer struct {
	Width  int
	Height int
	Color  []uint8   // RGBA interleaved, len = W*H*4
	ZBuf   []float64 // depth per pixel, len = W*H, initialized to -inf
}

// NewFrameBuffer allocates a framebuffer cleared to the given background
// color, with the z-buffer at -inf.
func NewFrameBuffer(w, h int, background color.NRGBA) *FrameBuffer {
	n := w * h
	zbuf := make([]float64, n)
	for i := range zbuf {
		zbuf[i] = math.Inf(-1)
	}

	pix := make([]uint8, n*4)
	for i := 0; i < n; i++ {
		pix[i*4] = background.R
		pix[i*4+1] = background.G
		pix[i*4+2] = background.B
		pix[i*4+3] = background.A
	}

	return &FrameBuffer{
		Width:  w,
		Height: h,
		Color:  pix,
		ZBuf:   zbuf,
	}
}
