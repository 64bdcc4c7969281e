package math

import (
	gomath "math"
	"testing"
)

const epsilon = 1e-5

func almostEqual(a, b float32) bool {
	return gomath.Abs(float64(a-b)) < epsilon
}

func vecAlmostEqual(a, b Vec3) bool {
	return almostEqual(a.X, b.X) && almostEqual(a.Y, b.Y) && almostEqual(a.Z, b.Z)
}

func TestVec3_Arithmetic(t *testing.T) {
	a := Vec3{1, 2, 3}
	b := Vec3{4, 5, 6}

	if got := a.Add(b); got != (Vec3{5, 7, 9}) {
		t.Errorf("Add = %v", got)
	}
	if got := b.Sub(a); got != (Vec3{3, 3, 3}) {
		t.Errorf("Sub = %v", got)
	}
	if got := a.Scale(2); got != (Vec3{2, 4, 6}) {
		t.Errorf("Scale = %v", got)
	}
	if got := a.Dot(b); got != 32 {
		t.Errorf("Dot = %f", got)
	}
}

func TestVec3_Cross(t *testing.T) {
	x := Vec3{1, 0, 0}
	y := Vec3{0, 1, 0}

	if got := x.Cross(y); got != (Vec3{0, 0, 1}) {
		t.Errorf("X cross Y = %v, expected Z", got)
	}
	if got := y.Cross(x); got != (Vec3{0, 0, -1}) {
		t.Errorf("Y cross X = %v, expected -Z", got)
	}
}

func TestVec3_Normalize(t *testing.T) {
	v := Vec3{3, 0, 4}

	n := v.Normalize()
	if !almostEqual(n.Length(), 1.0) {
		t.Errorf("normalized length = %f", n.Length())
	}
	if !vecAlmostEqual(n, Vec3{0.6, 0, 0.8}) {
		t.Errorf("Normalize = %v", n)
	}

	if got := (Vec3{}).Normalize(); got != (Vec3{}) {
		t.Errorf("zero vector Normalize = %v", got)
	}
}

func TestMat4_Identity(t *testing.T) {
	p := Vec3{1, 2, 3}
	if got := Identity().TransformPoint(p); got != p {
		t.Errorf("identity transform moved point: %v", got)
	}
}

func TestMat4_Mul(t *testing.T) {
	m := Identity().Mul(RotateY(0.5))
	if m != RotateY(0.5) {
		t.Error("identity * M should equal M")
	}
}

func TestMat4_RotateY(t *testing.T) {
	// Rotating +X by 90 degrees around Y yields -Z.
	m := RotateY(gomath.Pi / 2)
	got := m.TransformPoint(Vec3{1, 0, 0})
	if !vecAlmostEqual(got, Vec3{0, 0, -1}) {
		t.Errorf("RotateY(90deg) * X = %v", got)
	}
}

func TestMat4_RotateX(t *testing.T) {
	// Rotating +Y by 90 degrees around X yields +Z.
	m := RotateX(gomath.Pi / 2)
	got := m.TransformPoint(Vec3{0, 1, 0})
	if !vecAlmostEqual(got, Vec3{0, 0, 1}) {
		t.Errorf("RotateX(90deg) * Y = %v", got)
	}
}

func TestMat4_LookAt(t *testing.T) {
	// Camera at +Z looking at origin: the origin lands on the view axis.
	view := LookAt(Vec3{0, 0, 10}, Vec3{}, Vec3{0, 1, 0})
	got := view.TransformPoint(Vec3{})
	if !vecAlmostEqual(got, Vec3{0, 0, -10}) {
		t.Errorf("LookAt origin = %v, expected {0 0 -10}", got)
	}
}

func TestMat4_Perspective(t *testing.T) {
	proj := Perspective(gomath.Pi/2, 1.0, 1.0, 100.0)

	// A point on the near plane projects to depth -1.
	got := proj.TransformPoint(Vec3{0, 0, -1})
	if !almostEqual(got.Z, -1.0) {
		t.Errorf("near plane depth = %f, expected -1", got.Z)
	}
}
