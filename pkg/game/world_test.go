package game

import (
	"math"
	"strings"
	"testing"
	"time"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/leterax/go-duck/pkg/controls"
	"github.com/leterax/go-duck/pkg/duck"
	"github.com/leterax/go-duck/pkg/input"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
)

const frame = time.Second / 60

type window struct {
	grab    controls.GrabMode
	visible bool
	text    string
}

func (w *window) SetCursorGrabMode(mode controls.GrabMode) { w.grab = mode }
func (w *window) SetCursorVisible(visible bool)            { w.visible = visible }
func (w *window) SetText(text string)                      { w.text = text }

func newWorld(t *testing.T) (*World, *window, *test.Hook) {
	t.Helper()
	log, hook := test.NewNullLogger()
	log.SetLevel(logrus.DebugLevel)
	win := &window{grab: controls.GrabNone, visible: true}
	w := New(log, Options{
		Duck:      duck.Default(),
		Bindings:  controls.DefaultBindings(),
		Cursor:    win,
		Text:      win,
		Separator: "\n",
	})
	return w, win, hook
}

func keys(k ...input.Key) map[input.Key]bool {
	m := make(map[input.Key]bool, len(k))
	for _, key := range k {
		m[key] = true
	}
	return m
}

func TestNewCapturesCursor(t *testing.T) {
	_, win, _ := newWorld(t)
	if win.grab != controls.GrabConfined || win.visible {
		t.Fatalf("cursor = %v visible=%v, want confined and hidden", win.grab, win.visible)
	}
}

func TestDuckSettlesOnGround(t *testing.T) {
	w, _, _ := newWorld(t)
	for i := 0; i < 600; i++ {
		w.Tick(frame, nil)
	}
	if y := w.Controller.Position().Y(); math32.Abs(y-0.1) > 1e-3 {
		t.Fatalf("duck height = %v, want 0.1", y)
	}
	if !w.Controller.Grounded() {
		t.Fatal("duck is not grounded after settling")
	}
}

func TestOpposingKeysCancel(t *testing.T) {
	w, _, _ := newWorld(t)
	for i := 0; i < 300; i++ {
		w.Tick(frame, nil)
	}
	start := w.Controller.Position()
	for i := 0; i < 60; i++ {
		w.Tick(frame, keys(input.KeyA, input.KeyD))
	}
	end := w.Controller.Position()
	if end.X() != start.X() || end.Z() != start.Z() {
		t.Fatalf("left+right moved the duck from %v to %v", start, end)
	}
}

func TestWalkForward(t *testing.T) {
	w, _, _ := newWorld(t)
	for i := 0; i < 300; i++ {
		w.Tick(frame, nil)
	}
	start := w.Controller.Position()
	for i := 0; i < 60; i++ {
		w.Tick(frame, keys(input.KeyW))
	}
	moved := w.Controller.Position().Sub(start)
	if math32.Abs(moved.Z()+5) > 1e-2 || math32.Abs(moved.X()) > 1e-4 {
		t.Fatalf("one second of W moved the duck by %v, want ~[0 0 -5]", moved)
	}
}

func TestCaptureToggleFreezesDuck(t *testing.T) {
	w, win, _ := newWorld(t)
	w.Tick(frame, keys(input.KeyT))
	if w.Duck.Enabled {
		t.Fatal("capture toggle did not disable the duck")
	}
	if win.grab != controls.GrabNone || !win.visible {
		t.Fatal("cursor was not released")
	}

	pos := w.Controller.Position()
	w.Mouse.PushMotion(mgl32.Vec2{50, 50})
	for i := 0; i < 30; i++ {
		w.Tick(frame, keys(input.KeyW))
	}
	if w.Controller.Position() != pos {
		t.Fatal("disabled duck moved")
	}
	if w.Duck.Yaw != 0 || w.Duck.Pitch != 0 {
		t.Fatal("disabled duck turned")
	}
	if w.Mouse.Pending() != 0 {
		t.Fatal("mouse queue was not drained while disabled")
	}

	w.Tick(frame, nil)
	w.Tick(frame, keys(input.KeyT))
	if !w.Duck.Enabled || win.grab != controls.GrabConfined || win.visible {
		t.Fatal("second toggle did not restore capture")
	}
}

func TestLookAndNaNGuard(t *testing.T) {
	w, _, hook := newWorld(t)
	w.Mouse.PushMotion(mgl32.Vec2{10, 0})
	w.Tick(time.Second, nil)
	if w.Duck.Yaw != -30 {
		t.Fatalf("yaw = %v, want -30", w.Duck.Yaw)
	}

	yaw, pitch := w.Duck.Yaw, w.Duck.Pitch
	w.Mouse.PushMotion(mgl32.Vec2{1, 1})
	w.Mouse.PushMotion(mgl32.Vec2{0, math32.NaN()})
	w.Tick(frame, nil)
	if math.Float32bits(w.Duck.Yaw) != math.Float32bits(yaw) || math.Float32bits(w.Duck.Pitch) != math.Float32bits(pitch) {
		t.Fatalf("NaN delta changed angles to %v, %v", w.Duck.Yaw, w.Duck.Pitch)
	}
	if hook.LastEntry() == nil || hook.LastEntry().Level != logrus.DebugLevel {
		t.Fatal("dropped delta was not logged")
	}
}

func TestTerminateStopsFrame(t *testing.T) {
	w, _, _ := newWorld(t)
	w.Tick(frame, nil)
	pos := w.Controller.Position()
	if a := w.Tick(frame, keys(input.KeyEscape, input.KeyW)); a != controls.ActionTerminate {
		t.Fatalf("action = %v, want terminate", a)
	}
	if w.Controller.Position() != pos {
		t.Fatal("systems after terminate still ran")
	}
}

func TestOverlayText(t *testing.T) {
	w, win, _ := newWorld(t)
	w.Tick(frame, nil)
	want := "FPS: 60\nFPS Toggle: F\nCamera Toggle: T\nMovement: WASD"
	if win.text != want {
		t.Fatalf("overlay = %q, want %q", win.text, want)
	}

	w.Tick(frame, nil)
	w.Tick(frame, keys(input.KeyF))
	want = "FPS Toggle: F\nCamera Toggle: T\nMovement: WASD"
	if win.text != want {
		t.Fatalf("paused overlay = %q, want %q", win.text, want)
	}
}

func TestRespawnBelowKillPlane(t *testing.T) {
	w, _, hook := newWorld(t)
	w.Controller.Teleport(mgl32.Vec3{100, KillPlane + 0.01, 0})
	w.Tick(frame, nil)
	if w.Controller.Position() != SpawnPoint {
		t.Fatalf("position = %v, want spawn point", w.Controller.Position())
	}
	if hook.LastEntry() == nil || hook.LastEntry().Level != logrus.InfoLevel {
		t.Fatal("respawn was not logged")
	}
}

func TestPushedOutOfGroundIsLogged(t *testing.T) {
	w, _, hook := newWorld(t)
	w.Controller.Teleport(mgl32.Vec3{0, -0.5, 0})
	w.Tick(frame, nil)
	if y := w.Controller.Position().Y(); y < 0 {
		t.Fatalf("duck left inside the ground at y=%v", y)
	}
	entry := hook.LastEntry()
	if entry == nil || entry.Level != logrus.DebugLevel || !strings.Contains(entry.Message, "pushed out") {
		t.Fatalf("last log entry = %v, want a debug depenetration message", entry)
	}
}

func TestDuckTransform(t *testing.T) {
	w, _, _ := newWorld(t)
	m := w.DuckTransform()
	if got := m.Col(3).Vec3(); got != SpawnPoint {
		t.Fatalf("translation = %v, want %v", got, SpawnPoint)
	}
}
