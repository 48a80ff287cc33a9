package model

import (
	"log/slog"

	"gl-steps/internal/graphics"
	renderer "gl-steps/internal/graphics/renderer"
	"gl-steps/internal/profiling"
	"gl-steps/internal/variant"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/pkg/errors"
)

const (
	modelUniform      = "model"
	projectionUniform = "projection"
)

// Model draws a variant's geometry with its shader and per-frame model transform
type Model struct {
	desc *variant.Descriptor

	program *graphics.Program
	mesh    *graphics.Mesh

	modelLoc      int32
	projectionLoc int32
}

// NewModel creates a renderable for the given variant
func NewModel(desc *variant.Descriptor) *Model {
	return &Model{
		desc:          desc,
		modelLoc:      graphics.Unresolved,
		projectionLoc: graphics.Unresolved,
	}
}

// Init builds the shader program, uploads the geometry and resolves the uniforms
func (m *Model) Init() error {
	if !m.desc.Draws() {
		return errors.Errorf("variant %q has nothing to draw", m.desc.Name)
	}

	var err error
	m.program, err = graphics.LoadProgram(m.desc.Shader)
	if err != nil {
		return err
	}

	m.mesh, err = graphics.UploadMesh(m.desc.Geometry.Vertices, m.desc.Geometry.Indices)
	if err != nil {
		m.program.Delete()
		m.program = nil
		return errors.Wrapf(err, "variant %q", m.desc.Name)
	}

	m.modelLoc = m.program.Uniform(modelUniform)
	if m.modelLoc == graphics.Unresolved {
		slog.Warn("uniform not found, model transform is ignored", "program", m.desc.Shader, "uniform", modelUniform)
	}
	if m.desc.Perspective {
		m.projectionLoc = m.program.Uniform(projectionUniform)
		if m.projectionLoc == graphics.Unresolved {
			slog.Warn("uniform not found, projection is ignored", "program", m.desc.Shader, "uniform", projectionUniform)
		}
	}

	return nil
}

// Ready reports whether Init completed with a linked program
func (m *Model) Ready() bool {
	return m.program.Valid() && m.mesh != nil
}

// Render binds the program, writes the transforms and draws the mesh
func (m *Model) Render(ctx renderer.RenderContext) {
	defer profiling.Track("renderer.model")()

	m.program.Use()
	m.program.SetMat4(m.modelLoc, m.Transform(ctx))
	if m.desc.Perspective {
		m.program.SetMat4(m.projectionLoc, ctx.Proj)
	}
	m.mesh.Draw()
	m.program.Unuse()
}

// Transform returns the model matrix for the frame
func (m *Model) Transform(ctx renderer.RenderContext) mgl32.Mat4 {
	if m.desc.Model == nil {
		return mgl32.Ident4()
	}
	return m.desc.Model(ctx.State)
}

// Dispose cleans up OpenGL resources
func (m *Model) Dispose() {
	if m.mesh != nil {
		m.mesh.Delete()
		m.mesh = nil
	}
	if m.program != nil {
		m.program.Delete()
		m.program = nil
	}
}

// SetViewport is a no-op; the projection lives on the renderer
func (m *Model) SetViewport(width, height int) {}
