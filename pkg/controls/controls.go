// Package controls maps keys to actions and runs the capture and FPS-counter
// toggles.
package controls

import (
	"github.com/leterax/go-duck/pkg/duck"
	"github.com/leterax/go-duck/pkg/fps"
	"github.com/leterax/go-duck/pkg/input"
	"github.com/sirupsen/logrus"
)

// Bindings assigns a key to every action.
type Bindings struct {
	CameraToggle input.Key
	Terminate    input.Key
	FPSToggle    input.Key
	Forward      input.Key
	Backward     input.Key
	Left         input.Key
	Right        input.Key
}

// DefaultBindings returns T/Escape/F for the toggles and WASD for walking.
func DefaultBindings() Bindings {
	return Bindings{
		CameraToggle: input.KeyT,
		Terminate:    input.KeyEscape,
		FPSToggle:    input.KeyF,
		Forward:      input.KeyW,
		Backward:     input.KeyS,
		Left:         input.KeyA,
		Right:        input.KeyD,
	}
}

// Keys lists every bound key, for backends that poll key state.
func (b Bindings) Keys() []input.Key {
	return []input.Key{b.CameraToggle, b.Terminate, b.FPSToggle, b.Forward, b.Backward, b.Left, b.Right}
}

// Intent reads the held walking keys.
func (b Bindings) Intent(kb *input.Keyboard) duck.Intent {
	return duck.Intent{
		Forward:  kb.Pressed(b.Forward),
		Backward: kb.Pressed(b.Backward),
		Left:     kb.Pressed(b.Left),
		Right:    kb.Pressed(b.Right),
	}
}

// GrabMode is how the cursor is bound to the window.
type GrabMode uint8

const (
	// GrabNone leaves the cursor free.
	GrabNone GrabMode = iota
	// GrabConfined keeps the cursor inside the window.
	GrabConfined
)

func (m GrabMode) String() string {
	if m == GrabConfined {
		return "confined"
	}
	return "none"
}

// Cursor is the window's cursor.
type Cursor interface {
	SetCursorGrabMode(mode GrabMode)
	SetCursorVisible(visible bool)
}

// Action is a terminal request produced by Update.
type Action uint8

const (
	ActionNone Action = iota
	// ActionTerminate asks the program to exit immediately with status 0.
	ActionTerminate
)

// Controls runs the toggles for one frame.
type Controls struct {
	Bindings Bindings
	log      *logrus.Logger
}

// New creates controls using b. log may be nil.
func New(b Bindings, log *logrus.Logger) *Controls {
	return &Controls{Bindings: b, log: log}
}

// Update applies this frame's just-pressed keys. The capture toggle is handled
// first, then terminate, then the FPS toggle; a terminate request returns
// before the FPS toggle is looked at.
func (c *Controls) Update(kb *input.Keyboard, d *duck.Duck, counter *fps.State, cursor Cursor) Action {
	if kb.JustPressed(c.Bindings.CameraToggle) {
		SetCapture(d, cursor, !d.Enabled)
		c.debugf("capture toggled: enabled=%v", d.Enabled)
	}

	if kb.JustPressed(c.Bindings.Terminate) {
		c.debugf("terminate requested")
		return ActionTerminate
	}

	if kb.JustPressed(c.Bindings.FPSToggle) {
		counter.Toggle()
		c.debugf("fps counter toggled: enabled=%v", counter.Enabled())
	}
	return ActionNone
}

// SetCapture enables or disables the duck and updates the cursor to match:
// confined and hidden while enabled, free and visible otherwise.
func SetCapture(d *duck.Duck, cursor Cursor, enabled bool) {
	d.Enabled = enabled
	if cursor == nil {
		return
	}
	if enabled {
		cursor.SetCursorGrabMode(GrabConfined)
	} else {
		cursor.SetCursorGrabMode(GrabNone)
	}
	cursor.SetCursorVisible(!enabled)
}

func (c *Controls) debugf(format string, args ...any) {
	if c.log != nil {
		c.log.Debugf(format, args...)
	}
}
