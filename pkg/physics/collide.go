package physics

import (
	"github.com/chewxy/math32"
	"github.com/ethaniccc/float32-cube/cube"
	"github.com/go-gl/mathgl/mgl32"
)

const penetrationEpsilon = 1e-7

type clipResult struct {
	penetration           float32
	clippedVelocity       mgl32.Vec3
	depenetratingVelocity mgl32.Vec3
}

// clipCollide clips the velocity of a moving box so that it stops at the
// surface of a stationary one. When the boxes already overlap, the depenetrating
// velocity pushes the moving box out along the axis of least penetration.
//
// velocity is expected to lie on a single axis. Move calls this once per axis
// in Y, X, Z order, translating the box between passes, so a landing is
// resolved before any wall on the same frame.
func clipCollide(stationary, moving cube.BBox, velocity mgl32.Vec3) (result clipResult) {
	result.clippedVelocity = velocity
	result.depenetratingVelocity = velocity

	if hasZeroVolume(stationary) {
		return
	}

	var (
		penetrations       [3]float32
		signedPenetrations [3]float32
		normals            [3]float32
	)
	separatingAxes, separatingAxis := 0, 0
	minPenetration := float32(math32.MaxFloat32)

	for i := 0; i < 3; i++ {
		lower := moving.Max()[i] - stationary.Min()[i]
		upper := stationary.Max()[i] - moving.Min()[i]
		if math32.Abs(lower) <= penetrationEpsilon {
			lower = 0
		}
		if math32.Abs(upper) <= penetrationEpsilon {
			upper = 0
		}

		lowerPositive := math32.Max(0, lower)
		upperPositive := math32.Max(0, upper)

		switch {
		case lowerPositive == 0:
			signedPenetrations[i] = lower
			normals[i] = -1
			separatingAxes++
			separatingAxis = i
		case upperPositive == 0:
			signedPenetrations[i] = upper
			normals[i] = 1
			separatingAxes++
			separatingAxis = i
		case lowerPositive < upperPositive:
			penetrations[i] = lowerPositive
			signedPenetrations[i] = lowerPositive
			normals[i] = -1
		default:
			penetrations[i] = upperPositive
			signedPenetrations[i] = upperPositive
			normals[i] = 1
		}

		if separatingAxes > 1 {
			return
		}
		minPenetration = math32.Min(minPenetration, penetrations[i])
	}

	if separatingAxes == 0 {
		result.penetration = minPenetration
		best := 0
		for i := 1; i < 3; i++ {
			if penetrations[i] < penetrations[best] {
				best = i
			}
		}
		desired := penetrations[best] * normals[best]
		if desired > 0 {
			result.depenetratingVelocity[best] = math32.Max(desired, velocity[best])
		} else {
			result.depenetratingVelocity[best] = math32.Min(desired, velocity[best])
		}
		return
	}

	swept := signedPenetrations[separatingAxis] - normals[separatingAxis]*velocity[separatingAxis]
	if swept <= 0 {
		return
	}
	resolved := signedPenetrations[separatingAxis] * normals[separatingAxis]
	result.clippedVelocity[separatingAxis] = resolved
	result.depenetratingVelocity[separatingAxis] = resolved
	return
}

func hasZeroVolume(bb cube.BBox) bool {
	return bb.Min() == bb.Max()
}
