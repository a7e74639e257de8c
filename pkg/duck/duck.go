// Package duck implements the player character: its tunables, the per-tick
// walking update and the mouse-look update.
package duck

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/leterax/go-duck/pkg/movement"
)

// Pitch limits in degrees. Keeping pitch strictly inside ±90 guarantees the
// forward-walk vector always has a horizontal component.
const (
	MinPitch = -89.0
	MaxPitch = 89.9
)

var negRight = mgl32.Vec3{-1, 0, 0}

// Duck is the state owned by the player character entity.
type Duck struct {
	// Yaw and Pitch are in degrees.
	Yaw   float32
	Pitch float32

	Speed       float32
	Gravity     float32
	Sensitivity float32

	// Enabled gates both walking and looking.
	Enabled bool
}

// Default returns the duck with its stock tunables.
func Default() Duck {
	return Duck{
		Speed:       5.0,
		Gravity:     -9.81,
		Sensitivity: 3.0,
		Enabled:     true,
	}
}

// Rotation composes yaw about the world up axis with pitch about the negative
// local right axis. It is recomputed from the two angles on every call.
func (d *Duck) Rotation() mgl32.Quat {
	yaw := mgl32.QuatRotate(mgl32.DegToRad(d.Yaw), movement.WorldUp)
	pitch := mgl32.QuatRotate(mgl32.DegToRad(d.Pitch), negRight)
	return yaw.Mul(pitch)
}

// Look applies an accumulated mouse delta to yaw and pitch. A delta holding a
// non-finite component is dropped and false is returned; the angles are then
// left untouched. Look is a no-op returning false while the duck is disabled.
func (d *Duck) Look(delta mgl32.Vec2, dt float32) bool {
	if !finite(delta.X()) || !finite(delta.Y()) {
		return false
	}
	if !d.Enabled {
		return false
	}

	d.Yaw -= delta.X() * d.Sensitivity * dt
	d.Pitch += delta.Y() * d.Sensitivity * dt
	d.Pitch = mgl32.Clamp(d.Pitch, MinPitch, MaxPitch)
	return true
}

func finite(f float32) bool {
	return !math32.IsNaN(f) && !math32.IsInf(f, 0)
}
