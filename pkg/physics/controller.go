// Package physics resolves character movement against static box colliders.
package physics

import (
	"github.com/ethaniccc/float32-cube/cube"
	"github.com/go-gl/mathgl/mgl32"
)

// World is a set of static colliders.
type World struct {
	colliders []cube.BBox
}

// NewWorld creates a world holding the given colliders.
func NewWorld(colliders ...cube.BBox) *World {
	return &World{colliders: colliders}
}

// Nearby returns the colliders intersecting area.
func (w *World) Nearby(area cube.BBox) []cube.BBox {
	var out []cube.BBox
	for _, bb := range w.colliders {
		if bb.IntersectsWith(area) {
			out = append(out, bb)
		}
	}
	return out
}

// CharacterController moves a box-shaped character through a World. Each Move
// clips the proposed translation one axis at a time, vertical first.
type CharacterController struct {
	world    *World
	shape    cube.BBox
	position mgl32.Vec3

	grounded   bool
	penetrated bool
}

// NewCharacterController creates a controller for a character whose collision
// box, relative to its position, is shape.
func NewCharacterController(world *World, shape cube.BBox, position mgl32.Vec3) *CharacterController {
	return &CharacterController{world: world, shape: shape, position: position}
}

// Position returns the character's current position.
func (c *CharacterController) Position() mgl32.Vec3 {
	return c.position
}

// Teleport places the character without collision checks.
func (c *CharacterController) Teleport(pos mgl32.Vec3) {
	c.position = pos
	c.grounded = false
}

// BoundingBox returns the character's collision box in world space.
func (c *CharacterController) BoundingBox() cube.BBox {
	return c.shape.Translate(c.position)
}

// Grounded reports whether the last Move was stopped by something below.
func (c *CharacterController) Grounded() bool {
	return c.grounded
}

// Penetrated reports whether the last Move started inside a collider.
func (c *CharacterController) Penetrated() bool {
	return c.penetrated
}

// Move applies translation, stopping at colliders in the way.
func (c *CharacterController) Move(translation mgl32.Vec3) {
	bb := c.BoundingBox()
	nearby := c.world.Nearby(bb.Extend(translation).Grow(0.01))

	var penetration float32
	vy := mgl32.Vec3{0, translation.Y(), 0}
	for _, stationary := range nearby {
		r := clipCollide(stationary, bb, vy)
		vy = r.depenetratingVelocity
		if r.penetration > penetration {
			penetration = r.penetration
		}
	}
	bb = bb.Translate(mgl32.Vec3{0, vy.Y(), 0})

	vx := mgl32.Vec3{translation.X(), 0, 0}
	for _, stationary := range nearby {
		vx = clipCollide(stationary, bb, vx).depenetratingVelocity
	}
	bb = bb.Translate(mgl32.Vec3{vx.X(), 0, 0})

	vz := mgl32.Vec3{0, 0, translation.Z()}
	for _, stationary := range nearby {
		vz = clipCollide(stationary, bb, vz).depenetratingVelocity
	}

	applied := mgl32.Vec3{vx.X(), vy.Y(), vz.Z()}
	c.position = c.position.Add(applied)
	c.penetrated = penetration > 0
	c.grounded = translation.Y() < 0 && applied.Y() != translation.Y()
}
