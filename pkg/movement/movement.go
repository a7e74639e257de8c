// Package movement contains the camera-relative walking math shared by the
// character systems. World space is Y-up with +Z as the forward axis.
package movement

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

var (
	// WorldUp is the vertical axis gravity acts along.
	WorldUp = mgl32.Vec3{0, 1, 0}
	// WorldForward is the direction an unrotated entity faces.
	WorldForward = mgl32.Vec3{0, 0, 1}

	strafeOffset = mgl32.QuatRotate(mgl32.DegToRad(90), WorldUp)
)

// Axis turns two opposing key states into a signed axis value. Holding both or
// neither yields 0.
func Axis(plus, minus bool) float32 {
	var axis float32
	if plus {
		axis++
	}
	if minus {
		axis--
	}
	return axis
}

// ForwardWalkVector returns the horizontal direction an entity with the given
// rotation walks in when moving forward. The result is unit length unless the
// rotated forward axis is vertical, in which case the zero vector is returned.
func ForwardWalkVector(rotation mgl32.Quat) mgl32.Vec3 {
	f := rotation.Rotate(WorldForward)
	return horizontal(f)
}

// StrafeVector returns the horizontal direction perpendicular to
// ForwardWalkVector, rotated a quarter turn about the world up axis.
func StrafeVector(rotation mgl32.Quat) mgl32.Vec3 {
	return safeNormalize(strafeOffset.Rotate(ForwardWalkVector(rotation)))
}

func horizontal(v mgl32.Vec3) mgl32.Vec3 {
	return safeNormalize(mgl32.Vec3{v.X(), 0, v.Z()})
}

func safeNormalize(v mgl32.Vec3) mgl32.Vec3 {
	l := math32.Sqrt(v.Dot(v))
	if l <= 1e-7 {
		return mgl32.Vec3{}
	}
	return v.Mul(1 / l)
}
