package fps

import (
	"strings"
	"time"

	"github.com/elliotchance/orderedmap/v2"
)

// Overlay section keys.
const (
	SectionFPS          = "fps"
	SectionFPSToggle    = "fps_toggle"
	SectionCameraToggle = "camera_toggle"
	SectionMovement     = "movement"
)

// TextSlot is an externally owned piece of on-screen text.
type TextSlot interface {
	SetText(text string)
}

// Overlay is an ordered list of text sections. Empty sections are skipped when
// the overlay is rendered.
type Overlay struct {
	sections *orderedmap.OrderedMap[string, string]
}

// NewOverlay creates an overlay with the FPS line first.
func NewOverlay() *Overlay {
	o := &Overlay{sections: orderedmap.NewOrderedMap[string, string]()}
	o.sections.Set(SectionFPS, Placeholder)
	return o
}

// Set creates or replaces a section. New sections are appended at the end.
func (o *Overlay) Set(key, text string) {
	o.sections.Set(key, text)
}

// Section returns the text of a section.
func (o *Overlay) Section(key string) (string, bool) {
	return o.sections.Get(key)
}

// Lines returns the non-empty sections in order.
func (o *Overlay) Lines() []string {
	lines := make([]string, 0, o.sections.Len())
	for _, key := range o.sections.Keys() {
		if v, _ := o.sections.Get(key); v != "" {
			lines = append(lines, v)
		}
	}
	return lines
}

// Text joins the non-empty sections with sep.
func (o *Overlay) Text(sep string) string {
	return strings.Join(o.Lines(), sep)
}

// Display combines the refresh state, a frame-rate source and the overlay,
// and pushes the overlay into a text slot whenever the FPS line is recomputed.
type Display struct {
	State   *State
	Overlay *Overlay
	Source  Source
	Slot    TextSlot

	// Separator joins overlay sections when written to the slot.
	Separator string
}

// Update runs the display for one frame. It returns true when the FPS line
// was recomputed.
func (d *Display) Update(delta time.Duration) bool {
	if !d.State.Due(delta) {
		return false
	}
	d.State.UpdateNow = false

	d.Overlay.Set(SectionFPS, d.State.Line(d.Source))
	if d.Slot != nil {
		d.Slot.SetText(d.Overlay.Text(d.Separator))
	}
	return true
}
