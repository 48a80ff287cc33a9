package app

import (
	"testing"
	"time"

	"gl-steps/internal/animation"
	"gl-steps/internal/config"
	"gl-steps/internal/variant"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeSurface closes itself after a fixed number of frames
type fakeSurface struct {
	closeAfter int
	log        *[]string
	swaps      int
}

func (s *fakeSurface) ShouldClose() bool { return s.swaps >= s.closeAfter }
func (s *fakeSurface) PollEvents()       { *s.log = append(*s.log, "poll") }
func (s *fakeSurface) SwapBuffers() {
	*s.log = append(*s.log, "swap")
	s.swaps++
}

type fakeScene struct {
	log    *[]string
	states []animation.State
	ready  bool
}

func (f *fakeScene) Render(state animation.State) {
	*f.log = append(*f.log, "render")
	f.states = append(f.states, state)
}

func (f *fakeScene) Ready() bool { return f.ready }

func quietConfig(t *testing.T) {
	t.Helper()
	prevReport, prevSlow, prevLimit := config.GetReportFPS(), config.GetSlowFrameThreshold(), config.GetFPSLimit()
	config.SetReportFPS(false)
	config.SetSlowFrameThreshold(0)
	config.SetFPSLimit(0)
	t.Cleanup(func() {
		config.SetReportFPS(prevReport)
		config.SetSlowFrameThreshold(prevSlow)
		config.SetFPSLimit(prevLimit)
	})
}

func lookup(t *testing.T, name string) *variant.Descriptor {
	t.Helper()
	d, err := variant.Lookup(name)
	require.NoError(t, err)
	return d
}

func TestRunOrdersEachFrame(t *testing.T) {
	quietConfig(t)
	var log []string
	surface := &fakeSurface{closeAfter: 3, log: &log}
	scene := &fakeScene{log: &log, ready: true}

	a := NewApp(surface, scene, lookup(t, "pyramid"))
	require.NoError(t, a.Run())

	assert.Equal(t, uint64(3), a.Frames())
	assert.Equal(t, []string{
		"poll", "render", "swap",
		"poll", "render", "swap",
		"poll", "render", "swap",
	}, log)
}

func TestRunAdvancesAnimationOncePerFrame(t *testing.T) {
	quietConfig(t)
	var log []string
	surface := &fakeSurface{closeAfter: 4, log: &log}
	scene := &fakeScene{log: &log, ready: true}

	a := NewApp(surface, scene, lookup(t, "pyramid"))
	require.NoError(t, a.Run())

	cfg := animation.DefaultConfig()
	want := animation.NewState(cfg)
	require.Len(t, scene.states, 4)
	for i, got := range scene.states {
		want.Advance(animation.Rules{Offset: true, Angle: true, Size: true}, cfg)
		assert.Equal(t, want, got, "frame %d", i)
	}
	assert.Equal(t, want, a.State())
}

func TestRunStaticVariantKeepsState(t *testing.T) {
	quietConfig(t)
	var log []string
	scene := &fakeScene{log: &log, ready: true}
	a := NewApp(&fakeSurface{closeAfter: 5, log: &log}, scene, lookup(t, "triangle"))
	require.NoError(t, a.Run())

	initial := animation.NewState(animation.DefaultConfig())
	for _, s := range scene.states {
		assert.Equal(t, initial, s)
	}
}

func TestRunStopsImmediatelyWhenAlreadyClosed(t *testing.T) {
	quietConfig(t)
	var log []string
	a := NewApp(&fakeSurface{closeAfter: 0, log: &log}, &fakeScene{log: &log, ready: true}, lookup(t, "moving"))
	require.NoError(t, a.Run())
	assert.Zero(t, a.Frames())
	assert.Empty(t, log)
}

func TestRunRefusesSceneThatIsNotReady(t *testing.T) {
	quietConfig(t)
	var log []string
	a := NewApp(&fakeSurface{closeAfter: 2, log: &log}, &fakeScene{log: &log}, lookup(t, "pyramid"))
	assert.ErrorIs(t, a.Run(), ErrSceneNotReady)
	assert.Zero(t, a.Frames())
	assert.Empty(t, log)
}

func TestFPSLimiterUncappedReturnsImmediately(t *testing.T) {
	quietConfig(t)
	f := NewFPSLimiter()
	start := time.Now()
	for i := 0; i < 100; i++ {
		f.Wait()
	}
	assert.Less(t, time.Since(start), 50*time.Millisecond)
	assert.True(t, f.next.IsZero())
}

func TestFPSLimiterPacesFrames(t *testing.T) {
	quietConfig(t)
	config.SetFPSLimit(100)

	f := NewFPSLimiter()
	start := time.Now()
	for i := 0; i < 5; i++ {
		f.Wait()
	}
	// five 10ms slots
	assert.GreaterOrEqual(t, time.Since(start), 45*time.Millisecond)
}

type recordingWindow struct{ closed bool }

func (w *recordingWindow) SetShouldClose(v bool) { w.closed = v }

func TestStopperRequestsCloseAndWaits(t *testing.T) {
	w := &recordingWindow{}
	s := &stopper{done: make(chan struct{})}
	s.attach(w)

	returned := make(chan struct{})
	go func() {
		s.request()
		close(returned)
	}()

	select {
	case <-returned:
		t.Fatal("request returned before resources were released")
	case <-time.After(20 * time.Millisecond):
	}

	s.mu.Lock()
	assert.True(t, w.closed)
	s.mu.Unlock()

	s.detach()
	close(s.done)
	select {
	case <-returned:
	case <-time.After(time.Second):
		t.Fatal("request did not return after release")
	}
}

func TestStopperAfterDetachDoesNotTouchWindow(t *testing.T) {
	w := &recordingWindow{}
	s := &stopper{done: make(chan struct{})}
	s.attach(w)
	s.detach()
	close(s.done)

	s.request()
	assert.False(t, w.closed)
}
