package input

// Keyboard keeps the held state of every tracked key for the current and the
// previous frame. Just-pressed is derived from the difference between the two
// snapshots, so a key held across many frames reports a press exactly once.
type Keyboard struct {
	current  map[Key]bool
	previous map[Key]bool
}

// NewKeyboard creates a keyboard with no keys held.
func NewKeyboard() *Keyboard {
	return &Keyboard{
		current:  make(map[Key]bool),
		previous: make(map[Key]bool),
	}
}

// Sample records the held state of the given keys for a new frame. The state
// recorded by the previous call becomes the previous-frame snapshot. Keys not
// present in held are treated as released.
func (k *Keyboard) Sample(held map[Key]bool) {
	k.previous, k.current = k.current, k.previous
	clear(k.current)
	for key, down := range held {
		if down {
			k.current[key] = true
		}
	}
}

// Pressed reports whether key is held in the current frame.
func (k *Keyboard) Pressed(key Key) bool {
	return k.current[key]
}

// JustPressed reports whether key went down between the previous frame and
// the current one.
func (k *Keyboard) JustPressed(key Key) bool {
	return k.current[key] && !k.previous[key]
}

// JustReleased reports whether key went up between the previous frame and the
// current one.
func (k *Keyboard) JustReleased(key Key) bool {
	return !k.current[key] && k.previous[key]
}
