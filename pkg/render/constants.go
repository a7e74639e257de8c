package render

import (
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/leterax/go-duck/pkg/input"
)

// Camera constants
const (
	// Field of view
	DefaultFOV = 45.0
	MinFOV     = 1.0
	MaxFOV     = 45.0

	NearPlane = 0.1
	FarPlane  = 1000.0
)

// Scene constants
var (
	// CameraOffset is the camera's position relative to the duck.
	CameraOffset = mgl32.Vec3{2, 2, 10}

	LightPos        = mgl32.Vec3{4, 8, 4}
	LightColor      = mgl32.Vec3{1, 1, 1}
	AmbientStrength = float32(0.2)

	ClearColor  = mgl32.Vec4{0.53, 0.81, 0.92, 1.0}
	GroundColor = mgl32.Vec3{0.3, 0.5, 0.3}
	DuckColor   = mgl32.Vec3{1.0, 0.85, 0.1}
	BeakColor   = mgl32.Vec3{1.0, 0.5, 0.0}
)

// glfwKey converts a key to its GLFW code. input.Key shares GLFW's values.
func glfwKey(k input.Key) glfw.Key {
	return glfw.Key(k)
}
