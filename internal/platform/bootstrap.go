package platform

import (
	"log/slog"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
)

// Context is everything the bootstrap acquired: the window, its framebuffer
// size and a stack of release functions.
type Context struct {
	Window *Window

	FramebufferWidth  int
	FramebufferHeight int

	release  []func()
	released bool
}

// Defer registers fn to run on Release. Functions run in reverse order of registration.
func (c *Context) Defer(fn func()) {
	c.release = append(c.release, fn)
}

// Release runs the registered release functions, last registered first.
// Calling it again is a no-op.
func (c *Context) Release() {
	if c == nil || c.released {
		return
	}
	c.released = true
	for i := len(c.release) - 1; i >= 0; i-- {
		c.release[i]()
	}
	c.release = nil
}

type steps struct {
	init           func() error
	terminate      func()
	createWindow   func(WindowOptions) (*Window, error)
	destroyWindow  func(*Window)
	loadExtensions func() error
	framebuffer    func(*Window) (int, int)
	viewport       func(width, height int)
}

var defaultSteps = steps{
	init:           Init,
	terminate:      glfw.Terminate,
	createWindow:   CreateWindow,
	destroyWindow:  (*Window).Destroy,
	loadExtensions: LoadExtensions,
	framebuffer:    (*Window).FramebufferSize,
	viewport: func(width, height int) {
		gl.Viewport(0, 0, int32(width), int32(height))
	},
}

// Bootstrap initialises GLFW, opens the window and loads the GL function
// table, in that order. On failure everything acquired so far is released
// and the returned error is an *InitError, *WindowError or *ExtensionError.
func Bootstrap(opts WindowOptions) (*Context, error) {
	return defaultSteps.bootstrap(opts)
}

func (s steps) bootstrap(opts WindowOptions) (*Context, error) {
	ctx := &Context{}

	if err := s.init(); err != nil {
		// glfwTerminate is safe after a failed init and frees partial state
		s.terminate()
		return nil, err
	}
	ctx.Defer(s.terminate)

	window, err := s.createWindow(opts)
	if err != nil {
		ctx.Release()
		return nil, err
	}
	ctx.Window = window
	ctx.Defer(func() { s.destroyWindow(window) })

	ctx.FramebufferWidth, ctx.FramebufferHeight = s.framebuffer(window)

	if err := s.loadExtensions(); err != nil {
		ctx.Release()
		return nil, err
	}

	s.viewport(ctx.FramebufferWidth, ctx.FramebufferHeight)
	slog.Debug("window open",
		"title", opts.Title,
		"window", []int{opts.Width, opts.Height},
		"framebuffer", []int{ctx.FramebufferWidth, ctx.FramebufferHeight})

	return ctx, nil
}
