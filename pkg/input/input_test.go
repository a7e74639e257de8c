package input

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

func TestParseKey(t *testing.T) {
	tests := []struct {
		name    string
		want    Key
		wantErr bool
	}{
		{"W", KeyW, false},
		{"w", KeyW, false},
		{" t ", KeyT, false},
		{"Escape", KeyEscape, false},
		{"F1", KeyF1, false},
		{"f12", KeyF12, false},
		{"7", Key0 + 7, false},
		{"leftshift", KeyLeftShift, false},
		{"F13", KeyUnknown, true},
		{"", KeyUnknown, true},
		{"banana", KeyUnknown, true},
	}
	for _, tt := range tests {
		got, err := ParseKey(tt.name)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseKey(%q) error = %v, wantErr %v", tt.name, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseKey(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestKeyTextRoundTrip(t *testing.T) {
	for _, k := range []Key{KeyA, KeyW, KeyEscape, KeyF1, KeySpace, KeyLeftShift} {
		text, err := k.MarshalText()
		if err != nil {
			t.Fatalf("MarshalText(%d): %v", k, err)
		}
		var back Key
		if err := back.UnmarshalText(text); err != nil {
			t.Fatalf("UnmarshalText(%q): %v", text, err)
		}
		if back != k {
			t.Errorf("round trip of %d gave %d", k, back)
		}
	}
}

func TestKeyboardJustPressedFiresOnce(t *testing.T) {
	kb := NewKeyboard()

	kb.Sample(map[Key]bool{KeyT: true})
	if !kb.JustPressed(KeyT) {
		t.Fatal("expected just-pressed on the first frame the key is down")
	}

	for i := 0; i < 5; i++ {
		kb.Sample(map[Key]bool{KeyT: true})
		if kb.JustPressed(KeyT) {
			t.Fatalf("frame %d: held key retriggered", i)
		}
		if !kb.Pressed(KeyT) {
			t.Fatalf("frame %d: held key not reported as pressed", i)
		}
	}

	kb.Sample(nil)
	if !kb.JustReleased(KeyT) || kb.Pressed(KeyT) {
		t.Fatal("expected release after key went up")
	}

	kb.Sample(map[Key]bool{KeyT: true})
	if !kb.JustPressed(KeyT) {
		t.Fatal("expected a new press after release")
	}
}

func TestKeyboardIgnoresFalseEntries(t *testing.T) {
	kb := NewKeyboard()
	kb.Sample(map[Key]bool{KeyW: false})
	if kb.Pressed(KeyW) || kb.JustPressed(KeyW) {
		t.Fatal("false entry must count as released")
	}
}

func TestMouseDrain(t *testing.T) {
	var m Mouse
	m.PushMotion(mgl32.Vec2{1, 2})
	m.PushMotion(mgl32.Vec2{3, -5})
	if m.Pending() != 2 {
		t.Fatalf("pending = %d, want 2", m.Pending())
	}
	if got := m.Drain(); got != (mgl32.Vec2{4, -3}) {
		t.Fatalf("drain = %v, want [4 -3]", got)
	}
	if got := m.Drain(); got != (mgl32.Vec2{}) {
		t.Fatalf("second drain = %v, want zero", got)
	}
}

func TestMouseDrainPropagatesNaN(t *testing.T) {
	var m Mouse
	m.PushMotion(mgl32.Vec2{1, 1})
	m.PushMotion(mgl32.Vec2{math32.NaN(), 0})
	if got := m.Drain(); !math32.IsNaN(got.X()) {
		t.Fatalf("expected NaN to survive accumulation, got %v", got)
	}
}

func TestMouseCursorMoved(t *testing.T) {
	var m Mouse
	m.CursorMoved(100, 100)
	if m.Pending() != 0 {
		t.Fatal("first position must not produce motion")
	}
	m.CursorMoved(110, 95)
	m.CursorMoved(111, 95)
	if got := m.Drain(); got != (mgl32.Vec2{11, -5}) {
		t.Fatalf("drain = %v, want [11 -5]", got)
	}

	m.ResetTracking()
	m.CursorMoved(500, 500)
	if m.Pending() != 0 {
		t.Fatal("position after reset must not produce motion")
	}
}
