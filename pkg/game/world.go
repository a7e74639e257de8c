// Package game wires the character, controls and FPS counter together and
// runs them once per frame in a fixed order.
package game

import (
	"fmt"
	"time"

	"github.com/ethaniccc/float32-cube/cube"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/leterax/go-duck/pkg/controls"
	"github.com/leterax/go-duck/pkg/duck"
	"github.com/leterax/go-duck/pkg/fps"
	"github.com/leterax/go-duck/pkg/input"
	"github.com/leterax/go-duck/pkg/physics"
	"github.com/sirupsen/logrus"
)

// Scene layout.
var (
	SpawnPoint = mgl32.Vec3{0, 5, 0}
	// DuckShape approximates the duck's capsule (radius 0.5, segment from
	// 0.4 to 1.2) with a box relative to its position.
	DuckShape = cube.Box(-0.5, -0.1, -0.5, 0.5, 1.7, 0.5)
	// Ground is a 20x20 slab whose top face sits at y=0.
	Ground = cube.Box(-10, -1, -10, 10, 0, 10)
)

// KillPlane is the height below which the duck is returned to SpawnPoint.
const KillPlane = -50

// Options configures a World.
type Options struct {
	Duck     duck.Duck
	Bindings controls.Bindings
	Cursor   controls.Cursor
	Text     fps.TextSlot
	// Separator joins overlay lines in Text.
	Separator string
}

// World owns every piece of per-frame state.
type World struct {
	log *logrus.Logger

	Duck       duck.Duck
	Controller *physics.CharacterController
	Physics    *physics.World

	Keyboard *input.Keyboard
	Mouse    *input.Mouse
	Controls *controls.Controls

	Diagnostics *fps.Diagnostics
	Display     *fps.Display

	cursor controls.Cursor
	ticks  uint64
}

// New creates the world with the duck at its spawn point. The cursor is
// synchronised with the duck's initial capture state.
func New(log *logrus.Logger, opts Options) *World {
	phys := physics.NewWorld(Ground)
	diagnostics := fps.NewDiagnostics(fps.DefaultHistoryLength)

	overlay := fps.NewOverlay()
	b := opts.Bindings
	overlay.Set(fps.SectionFPSToggle, fmt.Sprintf("FPS Toggle: %s", b.FPSToggle))
	overlay.Set(fps.SectionCameraToggle, fmt.Sprintf("Camera Toggle: %s", b.CameraToggle))
	overlay.Set(fps.SectionMovement, fmt.Sprintf("Movement: %s%s%s%s", b.Forward, b.Left, b.Backward, b.Right))

	w := &World{
		log:         log,
		Duck:        opts.Duck,
		Physics:     phys,
		Controller:  physics.NewCharacterController(phys, DuckShape, SpawnPoint),
		Keyboard:    input.NewKeyboard(),
		Mouse:       &input.Mouse{},
		Controls:    controls.New(b, log),
		Diagnostics: diagnostics,
		Display: &fps.Display{
			State:     fps.NewState(),
			Overlay:   overlay,
			Source:    diagnostics,
			Slot:      opts.Text,
			Separator: opts.Separator,
		},
		cursor: opts.Cursor,
	}
	controls.SetCapture(&w.Duck, w.cursor, w.Duck.Enabled)
	return w
}

// Tick advances the world by one frame of length dt with the given held keys.
// Systems run in order: input sampling, toggles, walking, looking, display.
// ActionTerminate is returned as soon as the terminate key is pressed; the
// remaining systems are skipped for that frame.
func (w *World) Tick(dt time.Duration, held map[input.Key]bool) controls.Action {
	w.ticks++
	w.Diagnostics.Record(dt)
	w.Keyboard.Sample(held)

	if w.Controls.Update(w.Keyboard, &w.Duck, w.Display.State, w.cursor) == controls.ActionTerminate {
		return controls.ActionTerminate
	}

	seconds := float32(dt.Seconds())
	w.Duck.Walk(w.Controller, w.Controls.Bindings.Intent(w.Keyboard), seconds)
	if w.Duck.Enabled && w.Controller.Penetrated() {
		w.log.Debugf("duck was pushed out of a collider at %v", w.Controller.Position())
	}
	if w.Controller.Position().Y() < KillPlane {
		w.Controller.Teleport(SpawnPoint)
		w.log.Infof("duck fell out of the world, respawned at %v", SpawnPoint)
	}

	delta := w.Mouse.Drain()
	if !w.Duck.Look(delta, seconds) && w.Duck.Enabled {
		w.log.Debugf("dropped non-finite mouse delta %v", delta)
	}

	w.Display.Update(dt)
	return controls.ActionNone
}

// Ticks returns the number of frames simulated.
func (w *World) Ticks() uint64 {
	return w.ticks
}

// DuckTransform returns the duck's model matrix.
func (w *World) DuckTransform() mgl32.Mat4 {
	return mgl32.Translate3D(w.Controller.Position().Elem()).Mul4(w.Duck.Rotation().Mat4())
}
