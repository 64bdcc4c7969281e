// Package vpa decodes binary .vpa map files into an in-memory navigation
// mesh (vertices, triangles, per-triangle traversal attributes).
//
// The format is pointer-based: the header holds the absolute address of a
// navmesh descriptor, and every later table address is that descriptor
// address plus a stored relative pointer. Decoding is a pure function of the
// byte buffer; a Parse call either yields a complete Mesh or fails with no
// partial result.
package vpa

import (
	"errors"
	"fmt"
	"os"
)

// VPA format errors.
var (
	ErrInvalidMagic  = errors.New("invalid VPA magic: expected 'MAP1'")
	ErrTruncatedData = errors.New("truncated VPA data")
)

const magicTag = "MAP1"

// Fixed layout constants. All integers are little-endian.
const (
	// Header: magic(4) pad(12) u32 u32 u32 [7 ignored u32] u32.
	headerSize = 60
	// The navmesh descriptor address is the THIRD u32 after the pad, at
	// offset 24. The purposes of the surrounding header fields are unknown.
	navmeshPtrOffset = 24

	// Descriptor: pad(10) vertexCount:u16 scale:f32 pad(8)
	// verticesPtr:u32 triInfoPtr:u32.
	descriptorSize = 32

	// Vertex record: x,y,z signed 16-bit plus 2 bytes padding.
	vertexRecordSize = 8

	// TriInfo: pad(8) triCount:u32 trisPtr:u32.
	triInfoSize = 16

	// Triangle record: vIdx u16[3], nIdx i16[3], attrs u32.
	triRecordSize = 16
)

// Parse decodes a complete VPA buffer into a Mesh. The buffer is not
// retained; the returned Mesh is an independent snapshot.
func Parse(data []byte) (*Mesh, error) {
	if len(data) < headerSize {
		return nil, fmt.Errorf("%w: %d bytes, header needs %d",
			ErrTruncatedData, len(data), headerSize)
	}

	if string(data[0:4]) != magicTag {
		return nil, fmt.Errorf("%w: got %q", ErrInvalidMagic, data[0:4])
	}

	r := NewReader(data)

	baseAddr, err := r.U32(navmeshPtrOffset)
	if err != nil {
		return nil, fmt.Errorf("reading navmesh pointer: %w", err)
	}
	base := int(baseAddr)

	// NavMeshDescriptor. All table pointers below are relative to base,
	// never absolute file offsets.
	d := r.Section(base)
	d.Skip(10)
	vertexCount := int(d.U16())
	scale := d.F32()
	d.Skip(8)
	verticesPtr := d.U32()
	triInfoPtr := d.U32()
	if err := d.Err(); err != nil {
		return nil, fmt.Errorf("reading navmesh descriptor at 0x%X: %w", base, err)
	}

	vertsAddr := base + int(verticesPtr)
	if err := checkTable(r, vertsAddr, vertexCount, vertexRecordSize, "vertex"); err != nil {
		return nil, err
	}

	verts := make([]Vertex, vertexCount)
	for i := range verts {
		v := r.Section(vertsAddr + i*vertexRecordSize)
		x := v.I16()
		y := v.I16()
		z := v.I16()
		if err := v.Err(); err != nil {
			return nil, fmt.Errorf("reading vertex %d: %w", i, err)
		}
		verts[i] = Vertex{
			X: float32(x) * scale,
			Y: float32(y) * scale,
			Z: float32(z) * scale,
		}
	}

	ti := r.Section(base + int(triInfoPtr))
	ti.Skip(8)
	triCount := int(ti.U32())
	trisPtr := ti.U32()
	if err := ti.Err(); err != nil {
		return nil, fmt.Errorf("reading tri info at 0x%X: %w", base+int(triInfoPtr), err)
	}

	trisAddr := base + int(trisPtr)
	if err := checkTable(r, trisAddr, triCount, triRecordSize, "triangle"); err != nil {
		return nil, err
	}

	tris := make([]Tri, triCount)
	for i := range tris {
		s := r.Section(trisAddr + i*triRecordSize)
		var t Tri
		for k := 0; k < 3; k++ {
			t.VertexIndices[k] = s.U16()
		}
		for k := 0; k < 3; k++ {
			t.NeighbourIndices[k] = s.I16()
		}
		t.Attrs = TriAttrs(s.U32())
		if err := s.Err(); err != nil {
			return nil, fmt.Errorf("reading triangle %d: %w", i, err)
		}
		tris[i] = t
	}

	return &Mesh{Verts: verts, Tris: tris, Scale: scale}, nil
}

// checkTable validates that a record table fits entirely within the buffer
// before allocating for it. Counts come from the file and are untrusted.
func checkTable(r *Reader, addr, count, recordSize int, what string) error {
	if addr < 0 || count < 0 || addr+count*recordSize > r.Len() {
		return fmt.Errorf("%w: %d %s records of %d bytes at 0x%X (buffer size %d)",
			ErrOutOfBounds, count, what, recordSize, addr, r.Len())
	}
	return nil
}

// ParseFile decodes a VPA file from disk.
func ParseFile(path string) (*Mesh, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading VPA file: %w", err)
	}
	return Parse(data)
}
