package vpa

import "fmt"

// Vertex is a decoded 3D vertex. Coordinates are the raw signed 16-bit
// fixed-point components multiplied by the navmesh scale factor.
type Vertex struct {
	X, Y, Z float32
}

// TriAttrs is the packed 32-bit per-triangle attribute word. The sub-fields
// occupy disjoint bit ranges and are extracted with pure mask/shift
// operations.
type TriAttrs uint32

// Passable returns the 7-bit traversal class (bits 0-6, values 0-127).
func (a TriAttrs) Passable() uint8 {
	return uint8(a & 0x7F)
}

// Battle returns the 2-bit battle-engagement flag (bits 7-8).
func (a TriAttrs) Battle() uint8 {
	return uint8((a >> 7) & 0x3)
}

// Location returns the 2-bit location category (bits 11-12).
func (a TriAttrs) Location() uint8 {
	return uint8((a >> 11) & 0x3)
}

// SoundType returns the 2-bit surface sound category (bits 15-16).
func (a TriAttrs) SoundType() uint8 {
	return uint8((a >> 15) & 0x3)
}

// Passability is the display classification of a triangle's traversal class.
// It carries no decoding semantics.
type Passability int

// Passability categories.
const (
	Passable      Passability = iota // freely traversable
	Blocked                          // blocked for everyone
	BlockedNPC                       // blocked for NPCs only
	BlockedPlayer                    // blocked for the player only
	Scripted                         // traversal controlled by map scripts
	Unclassified                     // value with no known meaning
)

// String returns a human-readable category name.
func (p Passability) String() string {
	switch p {
	case Passable:
		return "Passable"
	case Blocked:
		return "Blocked"
	case BlockedNPC:
		return "BlockedNPC"
	case BlockedPlayer:
		return "BlockedPlayer"
	case Scripted:
		return "Scripted"
	case Unclassified:
		return "Unclassified"
	default:
		return fmt.Sprintf("Passability(%d)", int(p))
	}
}

// ClassifyPassable maps a raw 7-bit traversal class to a display category.
func ClassifyPassable(v uint8) Passability {
	switch {
	case v == 0:
		return Passable
	case v == 1:
		return Blocked
	case v == 2:
		return BlockedNPC
	case v == 14:
		return BlockedPlayer
	case v >= 48 && v <= 63:
		return Scripted
	default:
		return Unclassified
	}
}

// Tri is a decoded navmesh triangle. Vertex indices address the Mesh vertex
// table; neighbour indices are preserved raw and may hold a "no neighbour"
// sentinel.
type Tri struct {
	VertexIndices    [3]uint16
	NeighbourIndices [3]int16
	Attrs            TriAttrs
}

// Passability returns the display classification of the triangle.
func (t Tri) Passability() Passability {
	return ClassifyPassable(t.Attrs.Passable())
}

// Mesh is the decoded navigation mesh: vertices in file order (index is the
// addressing space for triangle references) and triangles in file order.
// A Mesh is built in one decode pass and is read-only afterwards.
type Mesh struct {
	Verts []Vertex
	Tris  []Tri
	Scale float32
}

// ValidRefs reports whether all three vertex indices of the triangle resolve
// within the mesh vertex table.
func (m *Mesh) ValidRefs(t Tri) bool {
	n := len(m.Verts)
	for _, idx := range t.VertexIndices {
		if int(idx) >= n {
			return false
		}
	}
	return true
}

// RenderableTris returns the triangles safe to render: those whose vertex
// indices all resolve. Triangles with dangling references are skipped here
// rather than failing the decode.
func (m *Mesh) RenderableTris() []Tri {
	out := make([]Tri, 0, len(m.Tris))
	for _, t := range m.Tris {
		if m.ValidRefs(t) {
			out = append(out, t)
		}
	}
	return out
}

// Bounds returns the axis-aligned bounding box of all vertices.
func (m *Mesh) Bounds() (min, max Vertex) {
	if len(m.Verts) == 0 {
		return Vertex{}, Vertex{}
	}

	min, max = m.Verts[0], m.Verts[0]
	for _, v := range m.Verts[1:] {
		if v.X < min.X {
			min.X = v.X
		}
		if v.Y < min.Y {
			min.Y = v.Y
		}
		if v.Z < min.Z {
			min.Z = v.Z
		}
		if v.X > max.X {
			max.X = v.X
		}
		if v.Y > max.Y {
			max.Y = v.Y
		}
		if v.Z > max.Z {
			max.Z = v.Z
		}
	}
	return min, max
}

// CountByPassability returns the triangle count for each display category.
func (m *Mesh) CountByPassability() map[Passability]int {
	counts := make(map[Passability]int)
	for _, t := range m.Tris {
		counts[t.Passability()]++
	}
	return counts
}
