package openglhelper

import (
	"github.com/go-gl/gl/v4.6-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

// floatsPerVertex is position (3) followed by normal (3).
const floatsPerVertex = 6

// Mesh represents a 3D mesh with vertices and indices
type Mesh struct {
	vao     *VertexArrayObject
	vbo     *BufferObject
	ebo     *BufferObject
	indices int32
	Color   mgl32.Vec3
}

// NewMesh creates a new mesh from interleaved position/normal vertices and indices
func NewMesh(vertices []float32, indices []uint32, color mgl32.Vec3) *Mesh {
	vao := NewVAO()
	vao.Bind()

	vbo := NewVBO(vertices, StaticDraw)
	ebo := NewEBO(indices, StaticDraw)

	// Position attribute (3 floats)
	vao.SetVertexAttribPointer(0, 3, gl.FLOAT, false, floatsPerVertex*4, 0)
	// Normal attribute (3 floats)
	vao.SetVertexAttribPointer(1, 3, gl.FLOAT, false, floatsPerVertex*4, 3*4)

	vao.Unbind()

	return &Mesh{
		vao:     vao,
		vbo:     vbo,
		ebo:     ebo,
		indices: int32(len(indices)),
		Color:   color,
	}
}

// Draw renders the mesh with the given shader, which must already be in use
func (m *Mesh) Draw(shader *Shader, model mgl32.Mat4) {
	shader.SetMat4("model", model)
	shader.SetVec3("objectColor", m.Color)
	m.vao.Bind()
	gl.DrawElements(gl.TRIANGLES, m.indices, gl.UNSIGNED_INT, nil)
	m.vao.Unbind()
}

// Delete releases all resources
func (m *Mesh) Delete() {
	m.vao.Delete()
	m.vbo.Delete()
	m.ebo.Delete()
}

// NewBox creates an axis-aligned box mesh spanning min to max
func NewBox(min, max mgl32.Vec3, color mgl32.Vec3) *Mesh {
	vertices, indices := BoxGeometry(min, max)
	return NewMesh(vertices, indices, color)
}

// BoxGeometry returns the vertices and counter-clockwise indices of a box
func BoxGeometry(min, max mgl32.Vec3) ([]float32, []uint32) {
	x0, y0, z0 := min.Elem()
	x1, y1, z1 := max.Elem()

	// Each face lists its corners counter-clockwise as seen from outside.
	faces := []struct {
		normal  mgl32.Vec3
		corners [4]mgl32.Vec3
	}{
		{mgl32.Vec3{0, 0, 1}, [4]mgl32.Vec3{{x0, y0, z1}, {x1, y0, z1}, {x1, y1, z1}, {x0, y1, z1}}},  // Front
		{mgl32.Vec3{0, 0, -1}, [4]mgl32.Vec3{{x1, y0, z0}, {x0, y0, z0}, {x0, y1, z0}, {x1, y1, z0}}}, // Back
		{mgl32.Vec3{0, 1, 0}, [4]mgl32.Vec3{{x0, y1, z1}, {x1, y1, z1}, {x1, y1, z0}, {x0, y1, z0}}},  // Top
		{mgl32.Vec3{0, -1, 0}, [4]mgl32.Vec3{{x0, y0, z0}, {x1, y0, z0}, {x1, y0, z1}, {x0, y0, z1}}}, // Bottom
		{mgl32.Vec3{1, 0, 0}, [4]mgl32.Vec3{{x1, y0, z1}, {x1, y0, z0}, {x1, y1, z0}, {x1, y1, z1}}},  // Right
		{mgl32.Vec3{-1, 0, 0}, [4]mgl32.Vec3{{x0, y0, z0}, {x0, y0, z1}, {x0, y1, z1}, {x0, y1, z0}}}, // Left
	}

	vertices := make([]float32, 0, len(faces)*4*floatsPerVertex)
	indices := make([]uint32, 0, len(faces)*6)
	for i, f := range faces {
		for _, c := range f.corners {
			vertices = append(vertices, c[0], c[1], c[2], f.normal[0], f.normal[1], f.normal[2])
		}
		base := uint32(i * 4)
		indices = append(indices, base, base+1, base+2, base+2, base+3, base)
	}
	return vertices, indices
}
