package graphics

import (
	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/pkg/errors"
)

// ComponentsPerVertex is the width of the single position attribute
const ComponentsPerVertex = 3

// PositionAttribute is the attribute slot the position is bound to
const PositionAttribute = 0

// Mesh owns static GPU geometry: a vertex array, its vertex buffer and
// an optional index buffer.
type Mesh struct {
	vao uint32
	vbo uint32
	ebo uint32

	vertexCount int32
	indexCount  int32
}

// UploadMesh copies the vertices (and indices, if any) into static buffers.
// Vertices are tightly packed xyz triples.
func UploadMesh(vertices []float32, indices []uint32) (*Mesh, error) {
	if err := validateGeometry(vertices, indices); err != nil {
		return nil, err
	}

	m := &Mesh{
		vertexCount: int32(len(vertices) / ComponentsPerVertex),
		indexCount:  int32(len(indices)),
	}

	gl.GenVertexArrays(1, &m.vao)
	gl.BindVertexArray(m.vao)

	if len(indices) > 0 {
		gl.GenBuffers(1, &m.ebo)
		gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, m.ebo)
		gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(indices)*4, gl.Ptr(indices), gl.STATIC_DRAW)
	}

	gl.GenBuffers(1, &m.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, m.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*4, gl.Ptr(vertices), gl.STATIC_DRAW)

	gl.VertexAttribPointerWithOffset(PositionAttribute, ComponentsPerVertex, gl.FLOAT, false, 0, 0)
	gl.EnableVertexAttribArray(PositionAttribute)

	// unbind to reduce accidental state changes; the element buffer binding
	// is part of the VAO state, so the VAO goes first
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)
	if m.ebo != 0 {
		gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, 0)
	}

	return m, nil
}

// Indexed reports whether the mesh draws through an index buffer
func (m *Mesh) Indexed() bool {
	return m.indexCount > 0
}

// VertexCount returns the number of uploaded vertices
func (m *Mesh) VertexCount() int {
	return int(m.vertexCount)
}

// IndexCount returns the number of uploaded indices
func (m *Mesh) IndexCount() int {
	return int(m.indexCount)
}

// Draw binds the mesh, draws every triangle and unbinds it again
func (m *Mesh) Draw() {
	gl.BindVertexArray(m.vao)
	if m.Indexed() {
		gl.DrawElementsWithOffset(gl.TRIANGLES, m.indexCount, gl.UNSIGNED_INT, 0)
	} else {
		gl.DrawArrays(gl.TRIANGLES, 0, m.vertexCount)
	}
	gl.BindVertexArray(0)
}

// Delete releases the GPU buffers
func (m *Mesh) Delete() {
	if m.ebo != 0 {
		gl.DeleteBuffers(1, &m.ebo)
		m.ebo = 0
	}
	if m.vbo != 0 {
		gl.DeleteBuffers(1, &m.vbo)
		m.vbo = 0
	}
	if m.vao != 0 {
		gl.DeleteVertexArrays(1, &m.vao)
		m.vao = 0
	}
}

func validateGeometry(vertices []float32, indices []uint32) error {
	if len(vertices) == 0 {
		return errors.New("mesh has no vertices")
	}
	if len(vertices)%ComponentsPerVertex != 0 {
		return errors.Errorf("mesh has %d floats, not a multiple of %d", len(vertices), ComponentsPerVertex)
	}
	if len(indices)%3 != 0 {
		return errors.Errorf("mesh has %d indices, not whole triangles", len(indices))
	}
	if len(indices) == 0 && (len(vertices)/ComponentsPerVertex)%3 != 0 {
		return errors.Errorf("unindexed mesh has %d vertices, not whole triangles", len(vertices)/ComponentsPerVertex)
	}
	count := uint32(len(vertices) / ComponentsPerVertex)
	for i, idx := range indices {
		if idx >= count {
			return errors.Errorf("index %d at position %d is out of range for %d vertices", idx, i, count)
		}
	}
	return nil
}
