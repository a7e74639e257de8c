package render

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Camera is attached to a parent transform at a fixed offset, so it turns
// and moves with its parent.
type Camera struct {
	offset mgl32.Vec3
	world  mgl32.Mat4

	// Camera options
	fov float32

	// Projection
	projection mgl32.Mat4
	width      int
	height     int
}

// NewCamera creates a camera at offset from its parent
func NewCamera(offset mgl32.Vec3, width, height int) *Camera {
	camera := &Camera{
		offset: offset,
		world:  mgl32.Translate3D(offset.Elem()),
		fov:    DefaultFOV,
		width:  width,
		height: height,
	}

	// Initialize projection matrix
	camera.updateProjectionMatrix()

	return camera
}

// updateProjectionMatrix recalculates the projection matrix
func (c *Camera) updateProjectionMatrix() {
	aspect := float32(c.width) / float32(c.height)
	c.projection = mgl32.Perspective(mgl32.DegToRad(c.fov), aspect, NearPlane, FarPlane)
}

// UpdateProjectionMatrix updates the projection matrix with new dimensions.
// A minimised window reports a zero size, which is ignored.
func (c *Camera) UpdateProjectionMatrix(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	c.width = width
	c.height = height
	c.updateProjectionMatrix()
}

// Follow places the camera relative to the parent's model matrix
func (c *Camera) Follow(parent mgl32.Mat4) {
	c.world = parent.Mul4(mgl32.Translate3D(c.offset.Elem()))
}

// ViewMatrix returns the current view matrix
func (c *Camera) ViewMatrix() mgl32.Mat4 {
	return c.world.Inv()
}

// ProjectionMatrix returns the current projection matrix
func (c *Camera) ProjectionMatrix() mgl32.Mat4 {
	return c.projection
}

// Position returns the current camera position in world space
func (c *Camera) Position() mgl32.Vec3 {
	return c.world.Col(3).Vec3()
}

// FOV returns the vertical field of view in degrees
func (c *Camera) FOV() float32 {
	return c.fov
}

// HandleMouseScroll handles mouse scroll for zoom
func (c *Camera) HandleMouseScroll(yoffset float64) {
	// Update FOV based on scroll (zoom)
	c.fov = mgl32.Clamp(c.fov-float32(yoffset), MinFOV, MaxFOV)

	// Update projection matrix
	c.updateProjectionMatrix()
}
