package graphics

import (
	"gl-steps/internal/config"

	"github.com/go-gl/mathgl/mgl32"
)

// Camera handles the projection matrix
type Camera struct {
	AspectRatio float32
	FOV         float32
	NearPlane   float32
	FarPlane    float32
}

func NewCamera(width, height int) *Camera {
	c := &Camera{
		FOV:       config.FieldOfView,
		NearPlane: config.NearPlane,
		FarPlane:  config.FarPlane,
	}
	c.SetViewport(width, height)
	return c
}

// SetViewport updates the aspect ratio from framebuffer pixel dimensions.
// A zero height (minimised window) keeps the previous ratio.
func (c *Camera) SetViewport(width, height int) {
	if height <= 0 || width <= 0 {
		if c.AspectRatio == 0 {
			c.AspectRatio = 1
		}
		return
	}
	c.AspectRatio = float32(width) / float32(height)
}

func (c *Camera) Projection() mgl32.Mat4 {
	return mgl32.Perspective(mgl32.DegToRad(c.FOV), c.AspectRatio, c.NearPlane, c.FarPlane)
}
