package renderer

import (
	"gl-steps/internal/animation"
	"gl-steps/internal/graphics"
	"gl-steps/internal/profiling"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

// Options configures the fixed GL state of a renderer
type Options struct {
	ClearColor mgl32.Vec4
	DepthTest  bool

	// Framebuffer size in pixels
	Width, Height int
}

// Renderer clears the frame and renders its renderables in order
type Renderer struct {
	renderables []Renderable
	camera      *graphics.Camera
	projection  mgl32.Mat4

	clearColor mgl32.Vec4
	clearMask  uint32

	frame uint64
}

// NewRenderer configures GL state and initialises every renderable.
// If one fails, those already initialised are disposed in reverse order.
func NewRenderer(opts Options, rs ...Renderable) (*Renderer, error) {
	r := &Renderer{
		camera:     graphics.NewCamera(opts.Width, opts.Height),
		clearColor: opts.ClearColor,
		clearMask:  gl.COLOR_BUFFER_BIT,
	}
	if opts.DepthTest {
		gl.Enable(gl.DEPTH_TEST)
		r.clearMask |= gl.DEPTH_BUFFER_BIT
	}
	// constant across frames, the window is not resizable
	r.projection = r.camera.Projection()

	for i, rr := range rs {
		if err := rr.Init(); err != nil {
			for j := i - 1; j >= 0; j-- {
				rs[j].Dispose()
			}
			return nil, err
		}
		rr.SetViewport(opts.Width, opts.Height)
	}
	r.renderables = rs

	return r, nil
}

// Render clears the frame and renders all features
func (r *Renderer) Render(state animation.State) {
	defer profiling.Track("renderer.Render")()

	gl.ClearColor(r.clearColor[0], r.clearColor[1], r.clearColor[2], r.clearColor[3])
	gl.Clear(r.clearMask)

	ctx := RenderContext{
		Camera: r.camera,
		Frame:  r.frame,
		State:  state,
		Proj:   r.projection,
	}
	for _, renderable := range r.renderables {
		renderable.Render(ctx)
	}
	r.frame++
}

// Ready reports whether every renderable that can tell is ready to draw
func (r *Renderer) Ready() bool {
	for _, rr := range r.renderables {
		if rd, ok := rr.(interface{ Ready() bool }); ok && !rd.Ready() {
			return false
		}
	}
	return true
}

// Dispose cleans up all renderables in reverse order
func (r *Renderer) Dispose() {
	for i := len(r.renderables) - 1; i >= 0; i-- {
		r.renderables[i].Dispose()
	}
	r.renderables = nil
}

// GetCamera returns the camera instance
func (r *Renderer) GetCamera() *graphics.Camera {
	return r.camera
}

// Projection returns the projection matrix computed at construction
func (r *Renderer) Projection() mgl32.Mat4 {
	return r.projection
}
