package config

import (
	"sync"
	"time"
)

// Window and context constants. These are fixed at build time.
const (
	WindowWidth  = 800
	WindowHeight = 600
	WindowTitle  = "Test Window"

	GLVersionMajor  = 3
	GLVersionMinor  = 3
	GLCoreProfile   = true
	GLForwardCompat = true
)

// Animation constants for the per-frame transform scalars.
const (
	OffsetIncrement float32 = 0.005
	OffsetBound     float32 = 0.7

	AngleIncrement float32 = 0.5

	SizeIncrement float32 = 0.001
	SizeMin       float32 = 0.1
	SizeMax       float32 = 0.8
	SizeStart     float32 = 0.4
)

// Projection constants for the perspective variants.
const (
	FieldOfView float32 = 45.0
	NearPlane   float32 = 0.1
	FarPlane    float32 = 100.0
)

// PacingSettings holds frame pacing configuration
type PacingSettings struct {
	mu           sync.RWMutex
	swapInterval int
	fpsLimit     int // 0 = uncapped
	slowFrame    time.Duration
	reportFPS    bool
}

var globalPacing = &PacingSettings{
	swapInterval: 1, // vsync
	fpsLimit:     0,
	slowFrame:    50 * time.Millisecond,
	reportFPS:    true,
}

// GetSwapInterval returns the number of screen refreshes to wait between buffer swaps
func GetSwapInterval() int {
	globalPacing.mu.RLock()
	defer globalPacing.mu.RUnlock()
	return globalPacing.swapInterval
}

// SetSwapInterval sets the swap interval (0 disables vsync)
func SetSwapInterval(interval int) {
	globalPacing.mu.Lock()
	defer globalPacing.mu.Unlock()

	if interval < 0 {
		interval = 0
	}
	if interval > 4 {
		interval = 4
	}

	globalPacing.swapInterval = interval
}

// GetFPSLimit returns the frame cap, 0 meaning uncapped
func GetFPSLimit() int {
	globalPacing.mu.RLock()
	defer globalPacing.mu.RUnlock()
	return globalPacing.fpsLimit
}

// SetFPSLimit sets the frame cap. Values below 10 (other than 0) are raised to 10.
func SetFPSLimit(limit int) {
	globalPacing.mu.Lock()
	defer globalPacing.mu.Unlock()

	switch {
	case limit <= 0:
		limit = 0
	case limit < 10:
		limit = 10
	case limit > 1000:
		limit = 1000
	}

	globalPacing.fpsLimit = limit
}

// GetSlowFrameThreshold returns the frame duration above which a frame is reported as slow
func GetSlowFrameThreshold() time.Duration {
	globalPacing.mu.RLock()
	defer globalPacing.mu.RUnlock()
	return globalPacing.slowFrame
}

// SetSlowFrameThreshold sets the slow frame threshold; non-positive values disable reporting
func SetSlowFrameThreshold(d time.Duration) {
	globalPacing.mu.Lock()
	defer globalPacing.mu.Unlock()
	if d < 0 {
		d = 0
	}
	globalPacing.slowFrame = d
}

// GetReportFPS returns whether the frame loop prints its frame rate once per second
func GetReportFPS() bool {
	globalPacing.mu.RLock()
	defer globalPacing.mu.RUnlock()
	return globalPacing.reportFPS
}

// SetReportFPS toggles the once-per-second frame rate line
func SetReportFPS(enabled bool) {
	globalPacing.mu.Lock()
	defer globalPacing.mu.Unlock()
	globalPacing.reportFPS = enabled
}
