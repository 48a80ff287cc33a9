package app

import (
	"log/slog"
	"time"

	"gl-steps/internal/animation"
	"gl-steps/internal/config"
	"gl-steps/internal/profiling"
	"gl-steps/internal/variant"

	"github.com/pkg/errors"
)

// ErrSceneNotReady is returned by Run when the scene has no usable program
var ErrSceneNotReady = errors.New("scene is not ready to draw")

// Surface is the window side of the frame loop
type Surface interface {
	ShouldClose() bool
	PollEvents()
	SwapBuffers()
}

// Scene draws one frame for the given animation state
type Scene interface {
	Render(state animation.State)
}

// App runs the frame loop for one variant
type App struct {
	surface Surface
	scene   Scene

	rules animation.Rules
	cfg   animation.Config
	state animation.State

	fpsLimiter *FPSLimiter

	frames           uint64
	fpsFrames        int
	lastFPSCheckTime time.Time
}

// NewApp wires a surface and scene to the animation rules of desc
func NewApp(surface Surface, scene Scene, desc *variant.Descriptor) *App {
	cfg := animation.DefaultConfig()
	return &App{
		surface:          surface,
		scene:            scene,
		rules:            desc.Rules,
		cfg:              cfg,
		state:            animation.NewState(cfg),
		fpsLimiter:       NewFPSLimiter(),
		lastFPSCheckTime: time.Now(),
	}
}

// Run loops until the surface reports a close request.
// It refuses to start when the scene says it cannot draw.
func (a *App) Run() error {
	if rd, ok := a.scene.(interface{ Ready() bool }); ok && !rd.Ready() {
		return ErrSceneNotReady
	}
	for !a.surface.ShouldClose() {
		a.tick()
	}
	slog.Debug("frame loop finished", "frames", a.frames)
	return nil
}

func (a *App) tick() {
	profiling.ResetFrame()
	start := time.Now()

	func() { defer profiling.Track("glfw.PollEvents")(); a.surface.PollEvents() }()

	a.state.Advance(a.rules, a.cfg)

	a.scene.Render(a.state)
	work := time.Since(start)

	// may block on vsync
	func() { defer profiling.Track("glfw.SwapBuffers")(); a.surface.SwapBuffers() }()

	a.frames++
	a.fpsFrames++

	if threshold := config.GetSlowFrameThreshold(); threshold > 0 && work > threshold {
		slog.Warn("slow frame", "duration", work, "top", profiling.TopN(3))
	}

	if time.Since(a.lastFPSCheckTime) >= time.Second {
		if config.GetReportFPS() {
			slog.Info("FPS", "frames", a.fpsFrames)
		}
		a.fpsFrames = 0
		a.lastFPSCheckTime = time.Now()
	}

	a.fpsLimiter.Wait()
}

// Frames returns the number of completed loop iterations
func (a *App) Frames() uint64 {
	return a.frames
}

// State returns the current animation state
func (a *App) State() animation.State {
	return a.state
}
