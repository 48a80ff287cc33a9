package platform

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recorder builds a step table whose calls are appended to a log
type recorder struct {
	calls []string

	initErr   error
	windowErr error
	extErr    error
}

func (r *recorder) steps() steps {
	return steps{
		init: func() error {
			r.calls = append(r.calls, "init")
			return r.initErr
		},
		terminate: func() { r.calls = append(r.calls, "terminate") },
		createWindow: func(opts WindowOptions) (*Window, error) {
			r.calls = append(r.calls, "createWindow")
			if r.windowErr != nil {
				return nil, &WindowError{Width: opts.Width, Height: opts.Height, Err: r.windowErr}
			}
			return &Window{}, nil
		},
		destroyWindow: func(*Window) { r.calls = append(r.calls, "destroyWindow") },
		loadExtensions: func() error {
			r.calls = append(r.calls, "loadExtensions")
			if r.extErr != nil {
				return &ExtensionError{Err: r.extErr}
			}
			return nil
		},
		framebuffer: func(*Window) (int, int) { return 1600, 1200 },
		viewport:    func(w, h int) { r.calls = append(r.calls, "viewport") },
	}
}

func TestBootstrapSuccess(t *testing.T) {
	r := &recorder{}
	ctx, err := r.steps().bootstrap(DefaultWindowOptions())
	require.NoError(t, err)
	require.NotNil(t, ctx.Window)

	assert.Equal(t, 1600, ctx.FramebufferWidth)
	assert.Equal(t, 1200, ctx.FramebufferHeight)
	assert.Equal(t, []string{"init", "createWindow", "loadExtensions", "viewport"}, r.calls)

	r.calls = nil
	ctx.Release()
	assert.Equal(t, []string{"destroyWindow", "terminate"}, r.calls)

	r.calls = nil
	ctx.Release()
	assert.Empty(t, r.calls, "release runs once")
}

func TestBootstrapInitFailure(t *testing.T) {
	r := &recorder{initErr: &InitError{Err: errors.New("no display")}}
	ctx, err := r.steps().bootstrap(DefaultWindowOptions())
	assert.Nil(t, ctx)

	var ie *InitError
	require.True(t, errors.As(err, &ie))
	assert.Contains(t, err.Error(), "no display")
	assert.Equal(t, []string{"init", "terminate"}, r.calls)
}

func TestBootstrapWindowFailureReleasesInit(t *testing.T) {
	r := &recorder{windowErr: errors.New("version unavailable")}
	ctx, err := r.steps().bootstrap(DefaultWindowOptions())
	assert.Nil(t, ctx)

	var we *WindowError
	require.True(t, errors.As(err, &we))
	assert.Equal(t, 800, we.Width)
	assert.Equal(t, []string{"init", "createWindow", "terminate"}, r.calls)
}

func TestBootstrapExtensionFailureReleasesInReverse(t *testing.T) {
	r := &recorder{extErr: errors.New("missing glCreateShader")}
	ctx, err := r.steps().bootstrap(DefaultWindowOptions())
	assert.Nil(t, ctx)

	var ee *ExtensionError
	require.True(t, errors.As(err, &ee))
	assert.Equal(t, []string{"init", "createWindow", "loadExtensions", "destroyWindow", "terminate"}, r.calls)
}

func TestContextReleaseOrder(t *testing.T) {
	var order []int
	ctx := &Context{}
	for i := 0; i < 4; i++ {
		i := i
		ctx.Defer(func() { order = append(order, i) })
	}
	ctx.Release()
	assert.Equal(t, []int{3, 2, 1, 0}, order)

	var nilCtx *Context
	assert.NotPanics(t, nilCtx.Release)
}

func TestErrorMessages(t *testing.T) {
	cause := errors.New("boom")
	assert.Contains(t, (&InitError{Err: cause}).Error(), "GLFW initialisation failed")
	assert.Contains(t, (&WindowError{Width: 800, Height: 600, Major: 3, Minor: 3, Err: cause}).Error(), "800x600, OpenGL 3.3")
	assert.Contains(t, (&ExtensionError{Err: cause}).Error(), "boom")
	assert.ErrorIs(t, &ExtensionError{Err: cause}, cause)
}

func TestDefaultWindowOptions(t *testing.T) {
	opts := DefaultWindowOptions()
	assert.Equal(t, 800, opts.Width)
	assert.Equal(t, 600, opts.Height)
	assert.Equal(t, 3, opts.VersionMajor)
	assert.Equal(t, 3, opts.VersionMinor)
	assert.True(t, opts.CoreProfile)
	assert.True(t, opts.ForwardCompat)
}
