package animation

import (
	"gl-steps/internal/config"

	"github.com/go-gl/mathgl/mgl32"
)

// Rules selects which scalars a variant animates
type Rules struct {
	Offset bool
	Angle  bool
	Size   bool
}

// Any reports whether at least one scalar is animated
func (r Rules) Any() bool {
	return r.Offset || r.Angle || r.Size
}

// Config holds the per-frame increments and bounce limits
type Config struct {
	OffsetIncrement float32
	OffsetBound     float32

	AngleIncrement float32

	SizeIncrement float32
	SizeMin       float32
	SizeMax       float32
	SizeStart     float32
}

// DefaultConfig returns the build-time animation constants
func DefaultConfig() Config {
	return Config{
		OffsetIncrement: config.OffsetIncrement,
		OffsetBound:     config.OffsetBound,
		AngleIncrement:  config.AngleIncrement,
		SizeIncrement:   config.SizeIncrement,
		SizeMin:         config.SizeMin,
		SizeMax:         config.SizeMax,
		SizeStart:       config.SizeStart,
	}
}

// State is the set of scalars mutated once per frame by the frame loop.
// Angle is in degrees.
type State struct {
	Offset    float32
	Rightward bool

	Angle float32

	Size    float32
	Growing bool
}

// NewState returns the initial state: centered, moving right, unrotated, growing from SizeStart
func NewState(cfg Config) State {
	return State{
		Offset:    0,
		Rightward: true,
		Angle:     0,
		Size:      cfg.SizeStart,
		Growing:   true,
	}
}

// Advance moves every scalar selected by rules one frame forward.
func (s *State) Advance(rules Rules, cfg Config) {
	if rules.Offset {
		s.advanceOffset(cfg)
	}
	if rules.Angle {
		s.advanceAngle(cfg)
	}
	if rules.Size {
		s.advanceSize(cfg)
	}
}

// The bound is checked after the step, not clamped, so the offset can
// overshoot by at most one increment before turning around.
func (s *State) advanceOffset(cfg Config) {
	if s.Rightward {
		s.Offset += cfg.OffsetIncrement
	} else {
		s.Offset -= cfg.OffsetIncrement
	}
	if mgl32.Abs(s.Offset) >= cfg.OffsetBound {
		s.Rightward = !s.Rightward
	}
}

func (s *State) advanceAngle(cfg Config) {
	s.Angle += cfg.AngleIncrement
	if s.Angle >= 360 {
		s.Angle -= 360
	}
}

func (s *State) advanceSize(cfg Config) {
	if s.Growing {
		s.Size += cfg.SizeIncrement
	} else {
		s.Size -= cfg.SizeIncrement
	}
	if s.Size >= cfg.SizeMax || s.Size <= cfg.SizeMin {
		s.Growing = !s.Growing
	}
}
