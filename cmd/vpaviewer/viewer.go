package main

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/Pika15959/FFX-Mapout.vpa-Visualiser/internal/render"
	"github.com/Pika15959/FFX-Mapout.vpa-Visualiser/internal/shader"
	"github.com/Pika15959/FFX-Mapout.vpa-Visualiser/pkg/math"
	"github.com/Pika15959/FFX-Mapout.vpa-Visualiser/pkg/vpa"
)

const meshVertexShader = `#version 410 core
layout (location = 0) in vec3 aPosition;
layout (location = 1) in vec3 aNormal;
layout (location = 2) in vec3 aColor;

uniform mat4 uViewProj;

out vec3 vNormal;
out vec3 vColor;

void main() {
    gl_Position = uViewProj * vec4(aPosition, 1.0);
    vNormal = aNormal;
    vColor = aColor;
}
`

const meshFragmentShader = `#version 410 core
in vec3 vNormal;
in vec3 vColor;

uniform float uFlat;

out vec4 fragColor;

void main() {
    vec3 lightDir = normalize(vec3(0.4, 1.0, 0.3));
    float diffuse = abs(dot(normalize(vNormal), lightDir));
    float shade = mix(0.55 + 0.45 * diffuse, 1.0, uFlat);
    fragColor = vec4(vColor * shade, 1.0);
}
`

// meshVertex is the interleaved vertex format uploaded to the GPU.
type meshVertex struct {
	Position [3]float32
	Normal   [3]float32
	Color    [3]float32
}

// MeshViewer renders a decoded navmesh with per-face passability colors.
type MeshViewer struct {
	program     uint32
	locViewProj int32
	locFlat     int32

	vao         uint32
	vbo         uint32
	vertexCount int32
}

// NewMeshViewer uploads the mesh's renderable triangles to the GPU. Vertices
// are duplicated per face so each triangle gets a flat normal and a single
// passability color.
func NewMeshViewer(mesh *vpa.Mesh) (*MeshViewer, error) {
	mv := &MeshViewer{}

	program, err := shader.CompileProgram(meshVertexShader, meshFragmentShader)
	if err != nil {
		return nil, fmt.Errorf("mesh shader: %w", err)
	}
	mv.program = program
	mv.locViewProj = shader.GetUniform(program, "uViewProj")
	mv.locFlat = shader.GetUniform(program, "uFlat")

	vertices := buildVertices(mesh)
	mv.vertexCount = int32(len(vertices))

	gl.GenVertexArrays(1, &mv.vao)
	gl.BindVertexArray(mv.vao)

	gl.GenBuffers(1, &mv.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, mv.vbo)
	if len(vertices) > 0 {
		gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*9*4, gl.Ptr(vertices), gl.STATIC_DRAW)
	}

	stride := int32(9 * 4)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, stride, 0)
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointerWithOffset(1, 3, gl.FLOAT, false, stride, 12)
	gl.EnableVertexAttribArray(2)
	gl.VertexAttribPointerWithOffset(2, 3, gl.FLOAT, false, stride, 24)

	gl.BindVertexArray(0)

	return mv, nil
}

// buildVertices flattens renderable triangles into per-face vertex records.
func buildVertices(mesh *vpa.Mesh) []meshVertex {
	tris := mesh.RenderableTris()
	vertices := make([]meshVertex, 0, len(tris)*3)

	for _, t := range tris {
		a := mesh.Verts[t.VertexIndices[0]]
		b := mesh.Verts[t.VertexIndices[1]]
		c := mesh.Verts[t.VertexIndices[2]]

		va := math.Vec3{X: a.X, Y: a.Y, Z: a.Z}
		vb := math.Vec3{X: b.X, Y: b.Y, Z: b.Z}
		vc := math.Vec3{X: c.X, Y: c.Y, Z: c.Z}
		normal := vb.Sub(va).Cross(vc.Sub(va)).Normalize()

		col := render.PassabilityColor(t.Passability())
		rgb := [3]float32{
			float32(col.R) / 255.0,
			float32(col.G) / 255.0,
			float32(col.B) / 255.0,
		}

		for _, v := range []math.Vec3{va, vb, vc} {
			vertices = append(vertices, meshVertex{
				Position: [3]float32{v.X, v.Y, v.Z},
				Normal:   [3]float32{normal.X, normal.Y, normal.Z},
				Color:    rgb,
			})
		}
	}
	return vertices
}

// Draw renders the mesh. In wireframe mode a second pass draws the edges
// with the same per-face colors at full brightness.
func (mv *MeshViewer) Draw(viewProj math.Mat4, wireframe bool) {
	if mv.vertexCount == 0 {
		return
	}

	gl.UseProgram(mv.program)
	gl.UniformMatrix4fv(mv.locViewProj, 1, false, viewProj.Ptr())
	gl.Uniform1f(mv.locFlat, 0.0)

	gl.BindVertexArray(mv.vao)
	gl.DrawArrays(gl.TRIANGLES, 0, mv.vertexCount)

	if wireframe {
		gl.PolygonMode(gl.FRONT_AND_BACK, gl.LINE)
		gl.Uniform1f(mv.locFlat, 1.0)
		gl.DrawArrays(gl.TRIANGLES, 0, mv.vertexCount)
		gl.PolygonMode(gl.FRONT_AND_BACK, gl.FILL)
	}

	gl.BindVertexArray(0)
}

// Close releases GPU resources.
func (mv *MeshViewer) Close() {
	if mv.vbo != 0 {
		gl.DeleteBuffers(1, &mv.vbo)
	}
	if mv.vao != 0 {
		gl.DeleteVertexArrays(1, &mv.vao)
	}
	if mv.program != 0 {
		gl.DeleteProgram(mv.program)
	}
}
