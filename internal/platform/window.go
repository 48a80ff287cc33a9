package platform

import (
	"log/slog"

	"gl-steps/internal/config"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/pkg/errors"
)

// WindowOptions describes the window and the context requested for it
type WindowOptions struct {
	Width, Height int
	Title         string

	VersionMajor  int
	VersionMinor  int
	CoreProfile   bool
	ForwardCompat bool

	SwapInterval int
}

// DefaultWindowOptions returns the build-time window constants
func DefaultWindowOptions() WindowOptions {
	return WindowOptions{
		Width:         config.WindowWidth,
		Height:        config.WindowHeight,
		Title:         config.WindowTitle,
		VersionMajor:  config.GLVersionMajor,
		VersionMinor:  config.GLVersionMinor,
		CoreProfile:   config.GLCoreProfile,
		ForwardCompat: config.GLForwardCompat,
		SwapInterval:  config.GetSwapInterval(),
	}
}

// Window is an open GLFW window whose context is current on the calling thread
type Window struct {
	glw *glfw.Window
}

// Init starts GLFW
func Init() error {
	if err := glfw.Init(); err != nil {
		return &InitError{Err: err}
	}
	return nil
}

// CreateWindow opens a window with the requested context and makes it current
func CreateWindow(opts WindowOptions) (*Window, error) {
	if opts.Width <= 0 || opts.Height <= 0 {
		return nil, &WindowError{
			Width: opts.Width, Height: opts.Height,
			Major: opts.VersionMajor, Minor: opts.VersionMinor,
			Err: errors.New("window size must be positive"),
		}
	}

	glfw.WindowHint(glfw.ContextVersionMajor, opts.VersionMajor)
	glfw.WindowHint(glfw.ContextVersionMinor, opts.VersionMinor)
	if opts.CoreProfile {
		glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	} else {
		glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLAnyProfile)
	}
	if opts.ForwardCompat {
		glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	} else {
		glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.False)
	}
	// the projection is computed once from the initial framebuffer
	glfw.WindowHint(glfw.Resizable, glfw.False)

	glw, err := glfw.CreateWindow(opts.Width, opts.Height, opts.Title, nil, nil)
	if err != nil {
		return nil, &WindowError{
			Width: opts.Width, Height: opts.Height,
			Major: opts.VersionMajor, Minor: opts.VersionMinor,
			Err: err,
		}
	}
	glw.MakeContextCurrent()
	glfw.SwapInterval(opts.SwapInterval)

	return &Window{glw: glw}, nil
}

// LoadExtensions populates the GL function table for the current context
func LoadExtensions() error {
	if err := gl.Init(); err != nil {
		return &ExtensionError{Err: err}
	}
	slog.Info("OpenGL ready",
		"version", gl.GoStr(gl.GetString(gl.VERSION)),
		"renderer", gl.GoStr(gl.GetString(gl.RENDERER)))
	return nil
}

// ShouldClose reports whether the user asked to close the window
func (w *Window) ShouldClose() bool {
	return w.glw.ShouldClose()
}

// SetShouldClose requests the frame loop to stop. Safe from any goroutine.
func (w *Window) SetShouldClose(v bool) {
	w.glw.SetShouldClose(v)
}

// PollEvents dispatches pending window events without blocking
func (w *Window) PollEvents() {
	glfw.PollEvents()
}

// SwapBuffers presents the back buffer
func (w *Window) SwapBuffers() {
	w.glw.SwapBuffers()
}

// FramebufferSize returns the drawable size in pixels, which can differ
// from the window size on high-DPI displays.
func (w *Window) FramebufferSize() (int, int) {
	return w.glw.GetFramebufferSize()
}

// Destroy closes the window and its context
func (w *Window) Destroy() {
	if w == nil || w.glw == nil {
		return
	}
	w.glw.Destroy()
	w.glw = nil
}
