package app

import (
	"log/slog"
	"os"
	"sync"

	"gl-steps/internal/graphics/renderables/model"
	renderer "gl-steps/internal/graphics/renderer"
	"gl-steps/internal/platform"
	"gl-steps/internal/variant"

	"github.com/pkg/errors"
	"github.com/xlab/closer"
)

// Main runs the named variant until its window is closed and then exits
// the process: status 0 on a clean close, 1 when setup fails.
// It must be called from the main, OS-locked goroutine.
func Main(name string) {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	if err := run(name); err != nil {
		slog.Error("startup failed", "variant", name, "err", err)
		closer.Exit(closer.ExitCodeErr)
	}
	closer.Close()
}

func run(name string) error {
	desc, err := variant.Lookup(name)
	if err != nil {
		return err
	}

	stop := &stopper{done: make(chan struct{})}
	// closed after every GL resource is gone
	defer close(stop.done)

	ctx, err := platform.Bootstrap(platform.DefaultWindowOptions())
	if err != nil {
		return err
	}
	defer ctx.Release()

	var rs []renderer.Renderable
	if desc.Draws() {
		rs = append(rs, model.NewModel(desc))
	}
	r, err := renderer.NewRenderer(renderer.Options{
		ClearColor: desc.ClearColor,
		DepthTest:  desc.DepthTest,
		Width:      ctx.FramebufferWidth,
		Height:     ctx.FramebufferHeight,
	}, rs...)
	if err != nil {
		return errors.Wrap(err, "renderer setup")
	}
	ctx.Defer(r.Dispose)

	stop.attach(ctx.Window)
	ctx.Defer(stop.detach)
	// closer runs bound functions on its own goroutine on SIGINT/SIGTERM
	closer.Bind(stop.request)

	return NewApp(ctx.Window, r, desc).Run()
}

// stopper turns a termination signal into a window close request and waits
// for the main thread to release GL resources.
type stopper struct {
	mu     sync.Mutex
	window interface{ SetShouldClose(bool) }
	done   chan struct{}
}

func (s *stopper) attach(w interface{ SetShouldClose(bool) }) {
	s.mu.Lock()
	s.window = w
	s.mu.Unlock()
}

// detach must run before the window is destroyed.
func (s *stopper) detach() {
	s.mu.Lock()
	s.window = nil
	s.mu.Unlock()
}

func (s *stopper) request() {
	s.mu.Lock()
	if s.window != nil {
		s.window.SetShouldClose(true)
	}
	s.mu.Unlock()
	<-s.done
}
