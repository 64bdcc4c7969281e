package vpa

import (
	"bytes"
	"encoding/binary"
	"errors"
	"reflect"
	"testing"
)

type testTri struct {
	v     [3]uint16
	n     [3]int16
	attrs uint32
}

// buildTestVPA creates a minimal valid VPA buffer. The navmesh descriptor is
// placed at base; the vertex table, tri info and triangle table follow it
// back to back, addressed by pointers relative to base.
func buildTestVPA(base int, scale float32, verts [][3]int16, tris []testTri) []byte {
	buf := new(bytes.Buffer)

	verticesPtr := uint32(32)
	triInfoPtr := verticesPtr + uint32(len(verts))*8
	trisPtr := triInfoPtr + 16

	// Header: magic, 12 bytes padding, u32 u32 u32 (3rd is the navmesh
	// address), 7 ignored u32, one more u32.
	buf.WriteString("MAP1")
	buf.Write(make([]byte, 12))
	binary.Write(buf, binary.LittleEndian, uint32(0xDEAD))
	binary.Write(buf, binary.LittleEndian, uint32(0xBEEF))
	binary.Write(buf, binary.LittleEndian, uint32(base))
	for i := 0; i < 8; i++ {
		binary.Write(buf, binary.LittleEndian, uint32(0))
	}

	// Pad out to the descriptor address.
	buf.Write(make([]byte, base-buf.Len()))

	// NavMeshDescriptor.
	buf.Write(make([]byte, 10))
	binary.Write(buf, binary.LittleEndian, uint16(len(verts)))
	binary.Write(buf, binary.LittleEndian, scale)
	buf.Write(make([]byte, 8))
	binary.Write(buf, binary.LittleEndian, verticesPtr)
	binary.Write(buf, binary.LittleEndian, triInfoPtr)

	// Vertex table: x, y, z signed 16-bit plus 2 bytes padding.
	for _, v := range verts {
		binary.Write(buf, binary.LittleEndian, v[0])
		binary.Write(buf, binary.LittleEndian, v[1])
		binary.Write(buf, binary.LittleEndian, v[2])
		buf.Write(make([]byte, 2))
	}

	// TriInfo.
	buf.Write(make([]byte, 8))
	binary.Write(buf, binary.LittleEndian, uint32(len(tris)))
	binary.Write(buf, binary.LittleEndian, trisPtr)

	// Triangle table.
	for _, t := range tris {
		for _, vi := range t.v {
			binary.Write(buf, binary.LittleEndian, vi)
		}
		for _, ni := range t.n {
			binary.Write(buf, binary.LittleEndian, ni)
		}
		binary.Write(buf, binary.LittleEndian, t.attrs)
	}

	return buf.Bytes()
}

func TestParse_EndToEnd(t *testing.T) {
	data := buildTestVPA(64, 1.0,
		[][3]int16{{0, 0, 0}, {10, 0, 0}, {0, 10, 0}},
		[]testTri{{v: [3]uint16{0, 1, 2}, n: [3]int16{-1, -1, -1}, attrs: 0}},
	)

	mesh, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if len(mesh.Verts) != 3 {
		t.Errorf("expected 3 vertices, got %d", len(mesh.Verts))
	}
	if len(mesh.Tris) != 1 {
		t.Fatalf("expected 1 triangle, got %d", len(mesh.Tris))
	}

	tri := mesh.Tris[0]
	if tri.VertexIndices != [3]uint16{0, 1, 2} {
		t.Errorf("expected vertex indices {0 1 2}, got %v", tri.VertexIndices)
	}
	if tri.Passability() != Passable {
		t.Errorf("expected Passable, got %v", tri.Passability())
	}
	if mesh.Verts[1].X != 10 || mesh.Verts[2].Y != 10 {
		t.Errorf("unexpected vertex coordinates: %v", mesh.Verts)
	}
}

func TestParse_Deterministic(t *testing.T) {
	data := buildTestVPA(64, 0.5,
		[][3]int16{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}},
		[]testTri{
			{v: [3]uint16{0, 1, 2}, n: [3]int16{-1, 0, -1}, attrs: 0x8001},
			{v: [3]uint16{2, 1, 0}, n: [3]int16{0, -1, -1}, attrs: 1},
		},
	)

	first, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	second, err := Parse(data)
	if err != nil {
		t.Fatalf("second Parse failed: %v", err)
	}

	if !reflect.DeepEqual(first, second) {
		t.Error("decoding the same buffer twice yielded different meshes")
	}
}

func TestParse_InvalidMagic(t *testing.T) {
	data := buildTestVPA(64, 1.0, [][3]int16{{0, 0, 0}}, nil)
	copy(data, "MAP2")

	_, err := Parse(data)
	if !errors.Is(err, ErrInvalidMagic) {
		t.Errorf("expected ErrInvalidMagic, got %v", err)
	}
}

func TestParse_TruncatedHeader(t *testing.T) {
	_, err := Parse([]byte("MAP1"))
	if !errors.Is(err, ErrTruncatedData) {
		t.Errorf("expected ErrTruncatedData, got %v", err)
	}
}

func TestParse_TruncatedTriangleTable(t *testing.T) {
	data := buildTestVPA(64, 1.0,
		[][3]int16{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}},
		[]testTri{
			{v: [3]uint16{0, 1, 2}},
			{v: [3]uint16{2, 1, 0}},
		},
	)

	// One byte short of the last triangle record.
	mesh, err := Parse(data[:len(data)-1])
	if !errors.Is(err, ErrOutOfBounds) {
		t.Errorf("expected ErrOutOfBounds, got %v", err)
	}
	if mesh != nil {
		t.Error("expected no mesh on truncated input")
	}
}

func TestParse_PointerRelativity(t *testing.T) {
	verts := [][3]int16{{5, 6, 7}, {8, 9, 10}, {11, 12, 13}}
	tris := []testTri{{v: [3]uint16{0, 1, 2}, attrs: 14}}

	// Same relative pointers, different descriptor addresses. Every table
	// address must shift with the base, so both buffers decode identically.
	near, err := Parse(buildTestVPA(64, 2.0, verts, tris))
	if err != nil {
		t.Fatalf("Parse (base 64) failed: %v", err)
	}
	far, err := Parse(buildTestVPA(256, 2.0, verts, tris))
	if err != nil {
		t.Fatalf("Parse (base 256) failed: %v", err)
	}

	if !reflect.DeepEqual(near, far) {
		t.Error("moving the descriptor changed the decoded mesh")
	}
}

func TestParse_ScaleApplication(t *testing.T) {
	mesh, err := Parse(buildTestVPA(64, 0.01, [][3]int16{{100, 200, -100}}, nil))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	v := mesh.Verts[0]
	if diff := v.X - 1.0; diff < -1e-6 || diff > 1e-6 {
		t.Errorf("expected X=1.0, got %f", v.X)
	}
	if diff := v.Z + 1.0; diff < -1e-6 || diff > 1e-6 {
		t.Errorf("expected Z=-1.0, got %f", v.Z)
	}

	mesh, err = Parse(buildTestVPA(64, 0, [][3]int16{{100, 200, -100}}, nil))
	if err != nil {
		t.Fatalf("Parse (scale 0) failed: %v", err)
	}
	v = mesh.Verts[0]
	if v.X != 0 || v.Y != 0 || v.Z != 0 {
		t.Errorf("expected all-zero coordinates with scale 0, got %v", v)
	}
}

func TestParse_UntrustedVertexCount(t *testing.T) {
	data := buildTestVPA(64, 1.0, [][3]int16{{0, 0, 0}}, nil)

	// Inflate the vertex count far past the buffer: the table check must
	// reject it before anything is allocated.
	binary.LittleEndian.PutUint16(data[64+10:], 0xFFFF)

	_, err := Parse(data)
	if !errors.Is(err, ErrOutOfBounds) {
		t.Errorf("expected ErrOutOfBounds, got %v", err)
	}
}

func TestParse_NeighbourIndicesPreserved(t *testing.T) {
	data := buildTestVPA(64, 1.0,
		[][3]int16{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}},
		[]testTri{{v: [3]uint16{0, 1, 2}, n: [3]int16{-1, 7, -1}}},
	)

	mesh, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if mesh.Tris[0].NeighbourIndices != [3]int16{-1, 7, -1} {
		t.Errorf("neighbour indices not preserved: %v", mesh.Tris[0].NeighbourIndices)
	}
}

func TestParseFile_Missing(t *testing.T) {
	if _, err := ParseFile("testdata/does-not-exist.vpa"); err == nil {
		t.Error("expected error for missing file")
	}
}
