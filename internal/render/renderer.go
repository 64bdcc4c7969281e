// Package render produces offscreen snapshots of a decoded navmesh using a
// pure-Go software rasterizer. It lets the CLI render maps to an image
// without any GPU or window system.
package render

import (
	"image"
	gomath "math"

	"github.com/Pika15959/FFX-Mapout.vpa-Visualiser/pkg/math"
	"github.com/Pika15959/FFX-Mapout.vpa-Visualiser/pkg/vpa"
)

// Options control the snapshot output.
type Options struct {
	Width       int
	Height      int
	Supersample int     // render at N x target size, then downsample
	Margin      int     // border in output pixels around the mesh
	Pitch       float32 // camera tilt in radians
	Yaw         float32 // camera rotation in radians
	Legend      bool    // draw the passability color legend
}

// DefaultOptions returns snapshot settings matching the interactive viewer's
// initial camera.
func DefaultOptions() Options {
	return Options{
		Width:       1024,
		Height:      768,
		Supersample: 2,
		Margin:      32,
		Pitch:       0.9,
		Yaw:         0.6,
		Legend:      true,
	}
}

// Snapshot renders the mesh's renderable triangles into an image. Triangles
// with dangling vertex references are skipped by the mesh, never drawn.
func Snapshot(mesh *vpa.Mesh, opts Options) *image.NRGBA {
	if opts.Width <= 0 || opts.Height <= 0 {
		opts.Width, opts.Height = 1024, 768
	}
	if opts.Supersample < 1 {
		opts.Supersample = 1
	}

	ss := opts.Supersample
	w := opts.Width * ss
	h := opts.Height * ss
	margin := float64(opts.Margin * ss)

	fb := NewFrameBuffer(w, h, BackgroundColor)

	if len(mesh.Verts) > 0 {
		px, py, pz := projectVertices(mesh, opts, w, h, margin)
		drawTriangles(fb, mesh, px, py, pz)
	}

	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	copy(img.Pix, fb.Color)

	if ss > 1 {
		img = Downsample(img, opts.Width, opts.Height)
	}
	if opts.Legend {
		drawLegend(img)
	}
	return img
}

// projectVertices rotates the mesh by pitch/yaw, then fits the result to the
// framebuffer with an orthographic projection. Screen y grows downward, so
// the rotated y axis is flipped.
func projectVertices(mesh *vpa.Mesh, opts Options, w, h int, margin float64) (px, py, pz []float64) {
	rot := math.RotateX(opts.Pitch).Mul(math.RotateY(opts.Yaw))

	n := len(mesh.Verts)
	px = make([]float64, n)
	py = make([]float64, n)
	pz = make([]float64, n)

	minX, minY := gomath.Inf(1), gomath.Inf(1)
	maxX, maxY := gomath.Inf(-1), gomath.Inf(-1)
	for i, v := range mesh.Verts {
		t := rot.TransformPoint(math.Vec3{X: v.X, Y: v.Y, Z: v.Z})
		px[i], py[i], pz[i] = float64(t.X), float64(-t.Y), float64(t.Z)
		minX = gomath.Min(minX, px[i])
		maxX = gomath.Max(maxX, px[i])
		minY = gomath.Min(minY, py[i])
		maxY = gomath.Max(maxY, py[i])
	}

	span := gomath.Max(maxX-minX, maxY-minY)
	if span < 1e-6 {
		span = 1e-6
	}
	scale := (gomath.Min(float64(w), float64(h)) - 2*margin) / span
	if scale < 0 {
		scale = 1
	}

	// Center the mesh in the frame.
	offX := (float64(w) - (maxX-minX)*scale) / 2
	offY := (float64(h) - (maxY-minY)*scale) / 2
	for i := range px {
		px[i] = (px[i]-minX)*scale + offX
		py[i] = (py[i]-minY)*scale + offY
	}
	return px, py, pz
}

func drawTriangles(fb *FrameBuffer, mesh *vpa.Mesh, px, py, pz []float64) {
	for _, t := range mesh.RenderableTris() {
		idx := [3]int{
			int(t.VertexIndices[0]),
			int(t.VertexIndices[1]),
			int(t.VertexIndices[2]),
		}
		c := PassabilityColor(t.Passability())
		shade := faceShade(px, py, pz, idx)
		RasterizeTriangle(fb, px, py, pz, idx, c, shade)
	}
}

// faceShade derives a flat-shading factor from the screen-space face normal:
// triangles facing the viewer render at full color, steep ones darker.
func faceShade(px, py, pz []float64, idx [3]int) float64 {
	e1x := px[idx[1]] - px[idx[0]]
	e1y := py[idx[1]] - py[idx[0]]
	e1z := pz[idx[1]] - pz[idx[0]]
	e2x := px[idx[2]] - px[idx[0]]
	e2y := py[idx[2]] - py[idx[0]]
	e2z := pz[idx[2]] - pz[idx[0]]

	nx := e1y*e2z - e1z*e2y
	ny := e1z*e2x - e1x*e2z
	nz := e1x*e2y - e1y*e2x
	nl := gomath.Sqrt(nx*nx + ny*ny + nz*nz)
	if nl < 1e-12 {
		return 1.0
	}
	return 0.55 + 0.45*gomath.Abs(nz/nl)
}
