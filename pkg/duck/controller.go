package duck

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/leterax/go-duck/pkg/movement"
)

// Intent is the held state of the four walking keys for one tick.
type Intent struct {
	Forward, Backward bool
	Left, Right       bool
}

// Controller receives the translation the duck wants to make this tick and
// resolves it against the world. The duck never learns the outcome.
type Controller interface {
	Move(translation mgl32.Vec3)
}

// Translation computes the movement proposed for one tick of length dt.
//
// The vertical screen axis takes backward as its positive key, so holding the
// forward key walks against the forward-walk vector, toward the camera's view
// direction. Gravity is applied every tick regardless of input.
func (d *Duck) Translation(intent Intent, dt float32) (mgl32.Vec3, bool) {
	if !d.Enabled {
		return mgl32.Vec3{}, false
	}

	axisH := movement.Axis(intent.Right, intent.Left) * dt
	axisV := movement.Axis(intent.Backward, intent.Forward) * dt

	rotation := d.Rotation()
	accel := movement.StrafeVector(rotation).Mul(axisH * d.Speed).
		Add(movement.ForwardWalkVector(rotation).Mul(axisV * d.Speed)).
		Add(movement.WorldUp.Mul(dt * d.Gravity))
	return accel, true
}

// Walk computes the tick's translation and hands it to c. Nothing is sent while
// the duck is disabled.
func (d *Duck) Walk(c Controller, intent Intent, dt float32) {
	if t, ok := d.Translation(intent, dt); ok {
		c.Move(t)
	}
}
