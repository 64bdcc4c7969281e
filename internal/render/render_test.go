package render

import (
	"image/color"
	"testing"

	"github.com/Pika15959/FFX-Mapout.vpa-Visualiser/pkg/vpa"
)

// flatMesh builds a single large triangle lying in the view plane.
func flatMesh(passable uint8) *vpa.Mesh {
	return &vpa.Mesh{
		Verts: []vpa.Vertex{
			{X: -10, Y: 0, Z: -10},
			{X: 10, Y: 0, Z: -10},
			{X: 0, Y: 0, Z: 10},
		},
		Tris: []vpa.Tri{
			{VertexIndices: [3]uint16{0, 1, 2}, Attrs: vpa.TriAttrs(passable)},
		},
	}
}

// topDown renders without supersampling, legend, or tilt so pixel values are
// exactly the palette colors.
func topDown(size int) Options {
	return Options{
		Width:       size,
		Height:      size,
		Supersample: 1,
		Margin:      8,
		Pitch:       1.5707963, // straight down
		Yaw:         0,
		Legend:      false,
	}
}

func TestSnapshot_Size(t *testing.T) {
	img := Snapshot(flatMesh(0), topDown(64))

	if img.Bounds().Dx() != 64 || img.Bounds().Dy() != 64 {
		t.Errorf("unexpected size: %v", img.Bounds())
	}
}

func TestSnapshot_FillsTriangle(t *testing.T) {
	img := Snapshot(flatMesh(0), topDown(64))

	// The triangle covers the image center; corners stay background.
	center := img.NRGBAAt(32, 32)
	if center == BackgroundColor {
		t.Error("center pixel still background; triangle not rasterized")
	}
	corner := img.NRGBAAt(0, 0)
	if corner != BackgroundColor {
		t.Errorf("corner pixel = %v, expected background", corner)
	}
}

func TestSnapshot_PassabilityColors(t *testing.T) {
	tests := []struct {
		passable uint8
		expected color.NRGBA
	}{
		{0, ColorPassable},
		{1, ColorBlocked},
		{2, ColorBlockedNPC},
		{14, ColorBlockedPlayer},
		{50, ColorScripted},
		{15, ColorUnclassified},
	}

	for _, tc := range tests {
		img := Snapshot(flatMesh(tc.passable), topDown(64))
		// Interior pixel, away from the darkened edges. A face in the
		// view plane shades at full color.
		got := img.NRGBAAt(32, 30)
		if got != tc.expected {
			t.Errorf("passable=%d: pixel = %v, expected %v", tc.passable, got, tc.expected)
		}
	}
}

func TestSnapshot_SkipsDanglingTriangles(t *testing.T) {
	mesh := flatMesh(0)
	mesh.Tris[0].VertexIndices[2] = 3 // one past the vertex table

	img := Snapshot(mesh, topDown(64))
	if got := img.NRGBAAt(32, 32); got != BackgroundColor {
		t.Errorf("dangling triangle was rendered: pixel = %v", got)
	}
}

func TestSnapshot_EmptyMesh(t *testing.T) {
	img := Snapshot(&vpa.Mesh{}, topDown(32))

	if img.Bounds().Dx() != 32 {
		t.Errorf("unexpected size: %v", img.Bounds())
	}
	if got := img.NRGBAAt(16, 16); got != BackgroundColor {
		t.Errorf("empty mesh should render background only, got %v", got)
	}
}

func TestSnapshot_SupersampleOutputSize(t *testing.T) {
	opts := topDown(64)
	opts.Supersample = 2

	img := Snapshot(flatMesh(0), opts)
	if img.Bounds().Dx() != 64 || img.Bounds().Dy() != 64 {
		t.Errorf("supersampled output not downsampled: %v", img.Bounds())
	}
}

func TestPassabilityColor_CoversAllCategories(t *testing.T) {
	seen := make(map[color.NRGBA]bool)
	for _, p := range LegendEntries {
		c := PassabilityColor(p)
		if seen[c] {
			t.Errorf("duplicate color %v for %v", c, p)
		}
		seen[c] = true
	}
}
