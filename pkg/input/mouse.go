package input

import "github.com/go-gl/mathgl/mgl32"

// Mouse queues raw cursor motion deltas between frames.
type Mouse struct {
	motion []mgl32.Vec2

	lastX, lastY float64
	tracking     bool
}

// PushMotion queues a single motion delta.
func (m *Mouse) PushMotion(delta mgl32.Vec2) {
	m.motion = append(m.motion, delta)
}

// CursorMoved converts an absolute cursor position into a motion delta. The
// first position after a reset only establishes the reference point.
func (m *Mouse) CursorMoved(x, y float64) {
	if !m.tracking {
		m.lastX, m.lastY = x, y
		m.tracking = true
		return
	}
	m.PushMotion(mgl32.Vec2{float32(x - m.lastX), float32(y - m.lastY)})
	m.lastX, m.lastY = x, y
}

// ResetTracking forgets the last cursor position, typically after the cursor
// mode changed and the next position would produce a jump.
func (m *Mouse) ResetTracking() {
	m.tracking = false
}

// Pending returns the number of queued motion events.
func (m *Mouse) Pending() int {
	return len(m.motion)
}

// Drain sums and removes every queued motion delta.
func (m *Mouse) Drain() mgl32.Vec2 {
	var delta mgl32.Vec2
	for _, d := range m.motion {
		delta = delta.Add(d)
	}
	m.motion = m.motion[:0]
	return delta
}
