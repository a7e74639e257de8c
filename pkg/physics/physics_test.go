package physics

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/ethaniccc/float32-cube/cube"
	"github.com/go-gl/mathgl/mgl32"
)

func ground() cube.BBox {
	return cube.Box(-10, -1, -10, 10, 0, 10)
}

func character() cube.BBox {
	return cube.Box(-0.5, -0.1, -0.5, 0.5, 1.7, 0.5)
}

func approx(a, b float32) bool {
	return math32.Abs(a-b) <= 1e-4
}

func TestFallLandsOnGround(t *testing.T) {
	c := NewCharacterController(NewWorld(ground()), character(), mgl32.Vec3{0, 5, 0})

	for i := 0; i < 600; i++ {
		c.Move(mgl32.Vec3{0, -9.81 / 60, 0})
	}
	if !approx(c.Position().Y(), 0.1) {
		t.Fatalf("resting height = %v, want 0.1", c.Position().Y())
	}
	if !c.Grounded() {
		t.Fatal("character resting on the ground is not grounded")
	}
}

func TestFreeFallIsUnobstructed(t *testing.T) {
	c := NewCharacterController(NewWorld(ground()), character(), mgl32.Vec3{0, 5, 0})
	c.Move(mgl32.Vec3{0, -1, 0})
	if !approx(c.Position().Y(), 4) {
		t.Fatalf("height = %v, want 4", c.Position().Y())
	}
	if c.Grounded() {
		t.Fatal("falling character reported grounded")
	}
}

func TestWalkAlongGround(t *testing.T) {
	c := NewCharacterController(NewWorld(ground()), character(), mgl32.Vec3{0, 0.1, 0})
	c.Move(mgl32.Vec3{1, -0.1, 2})
	got := c.Position()
	if !approx(got.X(), 1) || !approx(got.Y(), 0.1) || !approx(got.Z(), 2) {
		t.Fatalf("position = %v, want [1 0.1 2]", got)
	}
}

func TestWallStopsHorizontalMovement(t *testing.T) {
	wall := cube.Box(2, 0, -5, 3, 5, 5)
	c := NewCharacterController(NewWorld(ground(), wall), character(), mgl32.Vec3{0, 0.1, 0})

	c.Move(mgl32.Vec3{5, 0, 0})
	if !approx(c.Position().X(), 1.5) {
		t.Fatalf("x = %v, want 1.5 (stopped by wall)", c.Position().X())
	}
	if c.Penetrated() {
		t.Fatal("stopping at a wall reported penetration")
	}
}

func TestDepenetratesOutOfGround(t *testing.T) {
	c := NewCharacterController(NewWorld(ground()), character(), mgl32.Vec3{0, 0, 0})
	c.Move(mgl32.Vec3{})
	if !c.Penetrated() {
		t.Fatal("expected penetration to be reported")
	}
	if !approx(c.Position().Y(), 0.1) {
		t.Fatalf("height after depenetration = %v, want 0.1", c.Position().Y())
	}
}

func TestFallOffEdge(t *testing.T) {
	c := NewCharacterController(NewWorld(ground()), character(), mgl32.Vec3{20, 0.1, 0})
	c.Move(mgl32.Vec3{0, -1, 0})
	if !approx(c.Position().Y(), -0.9) {
		t.Fatalf("height = %v, want -0.9", c.Position().Y())
	}
}

func TestNearby(t *testing.T) {
	far := cube.Box(100, 0, 100, 101, 1, 101)
	w := NewWorld(ground(), far)
	if got := w.Nearby(cube.Box(-1, -1, -1, 1, 1, 1)); len(got) != 1 || got[0] != ground() {
		t.Fatalf("nearby = %v, want only the ground", got)
	}
	if got := w.Nearby(cube.Box(99, 0, 99, 100.5, 1, 100.5)); len(got) != 1 || got[0] != far {
		t.Fatalf("nearby = %v, want only the far box", got)
	}
}

func TestTeleport(t *testing.T) {
	c := NewCharacterController(NewWorld(ground()), character(), mgl32.Vec3{})
	c.Teleport(mgl32.Vec3{0, 5, 0})
	if c.Position() != (mgl32.Vec3{0, 5, 0}) || c.Grounded() {
		t.Fatal("teleport did not reset position and grounded state")
	}
	bb := c.BoundingBox()
	if !bb.Min().ApproxEqualThreshold(mgl32.Vec3{-0.5, 4.9, -0.5}, 1e-5) ||
		!bb.Max().ApproxEqualThreshold(mgl32.Vec3{0.5, 6.7, 0.5}, 1e-5) {
		t.Fatalf("bbox = %v..%v", bb.Min(), bb.Max())
	}
}
