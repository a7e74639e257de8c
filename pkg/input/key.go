// Package input holds the per-frame view of the keyboard and mouse that the
// game systems consume. It has no dependency on the window backend: key codes
// share their numeric values with GLFW so the render layer can convert them
// with a plain cast.
package input

import (
	"fmt"
	"strconv"
	"strings"
)

// Key identifies a keyboard key. Values match GLFW key codes.
type Key int32

// Keys used by the default bindings and accepted in configuration files.
const (
	KeyUnknown Key = -1

	KeySpace Key = 32
	Key0     Key = 48
	Key9     Key = 57
	KeyA     Key = 65
	KeyD     Key = 68
	KeyF     Key = 70
	KeyS     Key = 83
	KeyT     Key = 84
	KeyW     Key = 87
	KeyZ     Key = 90

	KeyEscape    Key = 256
	KeyEnter     Key = 257
	KeyTab       Key = 258
	KeyRight     Key = 262
	KeyLeft      Key = 263
	KeyDown      Key = 264
	KeyUp        Key = 265
	KeyF1        Key = 290
	KeyF12       Key = 301
	KeyLeftShift Key = 340
	KeyLeftCtrl  Key = 341
)

var namedKeys = map[string]Key{
	"space":     KeySpace,
	"escape":    KeyEscape,
	"enter":     KeyEnter,
	"tab":       KeyTab,
	"right":     KeyRight,
	"left":      KeyLeft,
	"down":      KeyDown,
	"up":        KeyUp,
	"leftshift": KeyLeftShift,
	"leftctrl":  KeyLeftCtrl,
}

// ParseKey converts a key name such as "W", "escape" or "F3" into a Key.
func ParseKey(name string) (Key, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	if k, ok := namedKeys[n]; ok {
		return k, nil
	}
	if len(n) == 1 {
		c := n[0]
		switch {
		case c >= 'a' && c <= 'z':
			return KeyA + Key(c-'a'), nil
		case c >= '0' && c <= '9':
			return Key0 + Key(c-'0'), nil
		}
	}
	if len(n) >= 2 && n[0] == 'f' {
		if i, err := strconv.Atoi(n[1:]); err == nil && i >= 1 && i <= 12 {
			return KeyF1 + Key(i-1), nil
		}
	}
	return KeyUnknown, fmt.Errorf("unknown key %q", name)
}

// String returns the name ParseKey accepts for k.
func (k Key) String() string {
	switch {
	case k >= KeyA && k <= KeyZ:
		return string(rune('A' + (k - KeyA)))
	case k >= Key0 && k <= Key9:
		return string(rune('0' + (k - Key0)))
	case k >= KeyF1 && k <= KeyF12:
		return fmt.Sprintf("F%d", k-KeyF1+1)
	}
	for name, v := range namedKeys {
		if v == k {
			return strings.ToUpper(name[:1]) + name[1:]
		}
	}
	return fmt.Sprintf("Key(%d)", int32(k))
}

// MarshalText implements encoding.TextMarshaler.
func (k Key) MarshalText() ([]byte, error) {
	if k == KeyUnknown {
		return nil, fmt.Errorf("cannot marshal unknown key")
	}
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *Key) UnmarshalText(text []byte) error {
	v, err := ParseKey(string(text))
	if err != nil {
		return err
	}
	*k = v
	return nil
}
