package movement

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

const epsilon = 1e-5

func approx(a, b float32) bool {
	return math32.Abs(a-b) <= epsilon
}

func rotation(yaw, pitch float32) mgl32.Quat {
	return mgl32.QuatRotate(mgl32.DegToRad(yaw), WorldUp).
		Mul(mgl32.QuatRotate(mgl32.DegToRad(pitch), mgl32.Vec3{-1, 0, 0}))
}

func TestAxis(t *testing.T) {
	tests := []struct {
		plus, minus bool
		want        float32
	}{
		{false, false, 0},
		{true, false, 1},
		{false, true, -1},
		{true, true, 0},
	}
	for _, tt := range tests {
		if got := Axis(tt.plus, tt.minus); got != tt.want {
			t.Errorf("Axis(%v, %v) = %v, want %v", tt.plus, tt.minus, got, tt.want)
		}
	}
}

func TestForwardWalkVectorIdentity(t *testing.T) {
	got := ForwardWalkVector(mgl32.QuatIdent())
	if !got.ApproxEqualThreshold(mgl32.Vec3{0, 0, 1}, epsilon) {
		t.Fatalf("forward at rest = %v, want [0 0 1]", got)
	}
	strafe := StrafeVector(mgl32.QuatIdent())
	if !strafe.ApproxEqualThreshold(mgl32.Vec3{1, 0, 0}, epsilon) {
		t.Fatalf("strafe at rest = %v, want [1 0 0]", strafe)
	}
}

func TestForwardWalkVectorYaw(t *testing.T) {
	got := ForwardWalkVector(rotation(90, 0))
	if !got.ApproxEqualThreshold(mgl32.Vec3{1, 0, 0}, epsilon) {
		t.Fatalf("forward at yaw 90 = %v, want [1 0 0]", got)
	}
}

func TestBasisIsUnitAndPerpendicular(t *testing.T) {
	for yaw := float32(-360); yaw <= 360; yaw += 22.5 {
		for _, pitch := range []float32{-89, -60, -10, 0, 15, 45, 89.9} {
			rot := rotation(yaw, pitch)
			f := ForwardWalkVector(rot)
			s := StrafeVector(rot)

			if f.Y() != 0 || s.Y() != 0 {
				t.Fatalf("yaw %v pitch %v: vectors left the horizontal plane: %v %v", yaw, pitch, f, s)
			}
			if !approx(f.Len(), 1) || !approx(s.Len(), 1) {
				t.Fatalf("yaw %v pitch %v: non-unit vectors %v %v", yaw, pitch, f, s)
			}
			if !approx(f.Dot(s), 0) {
				t.Fatalf("yaw %v pitch %v: vectors not perpendicular, dot=%v", yaw, pitch, f.Dot(s))
			}
		}
	}
}

func TestPitchDoesNotChangeWalkDirection(t *testing.T) {
	flat := ForwardWalkVector(rotation(30, 0))
	tilted := ForwardWalkVector(rotation(30, 80))
	if !flat.ApproxEqualThreshold(tilted, epsilon) {
		t.Fatalf("pitch changed walk direction: %v vs %v", flat, tilted)
	}
}

func TestVerticalForwardIsZero(t *testing.T) {
	got := ForwardWalkVector(rotation(0, 90))
	if got.Len() > epsilon {
		t.Fatalf("vertical forward should collapse to zero, got %v", got)
	}
	for _, c := range got {
		if math32.IsNaN(c) {
			t.Fatalf("vertical forward produced NaN: %v", got)
		}
	}
}
