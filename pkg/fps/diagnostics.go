package fps

import (
	"time"
)

// DefaultHistoryLength is the number of frames the rolling average covers.
const DefaultHistoryLength = 20

// history is a fixed-capacity ring that overwrites its oldest entry when full.
type history struct {
	items []float64
	head  int
	size  int
}

func newHistory(capacity int) *history {
	if capacity < 1 {
		capacity = 1
	}
	return &history{items: make([]float64, capacity)}
}

func (h *history) append(v float64) {
	tail := (h.head + h.size) % len(h.items)
	h.items[tail] = v
	if h.size == len(h.items) {
		h.head = (h.head + 1) % len(h.items)
	} else {
		h.size++
	}
}

func (h *history) mean() (float64, bool) {
	if h.size == 0 {
		return 0, false
	}
	var sum float64
	for i := 0; i < h.size; i++ {
		sum += h.items[(h.head+i)%len(h.items)]
	}
	return sum / float64(h.size), true
}

// Diagnostics measures frame times and exposes a rolling FPS average.
type Diagnostics struct {
	fps       *history
	frameTime *history
	frames    uint64
}

// NewDiagnostics creates diagnostics averaging over the last n frames.
func NewDiagnostics(n int) *Diagnostics {
	return &Diagnostics{
		fps:       newHistory(n),
		frameTime: newHistory(n),
	}
}

// Record adds one frame of length delta. Frames with a non-positive delta
// count towards the frame counter but produce no sample.
func (d *Diagnostics) Record(delta time.Duration) {
	d.frames++
	if delta <= 0 {
		return
	}
	d.frameTime.append(float64(delta) / float64(time.Millisecond))
	d.fps.append(1 / delta.Seconds())
}

// Average returns the mean FPS over the history window. ok is false until the
// first sample has been recorded.
func (d *Diagnostics) Average() (fps float64, ok bool) {
	return d.fps.mean()
}

// AverageFrameTime returns the mean frame time in milliseconds.
func (d *Diagnostics) AverageFrameTime() (ms float64, ok bool) {
	return d.frameTime.mean()
}

// Frames returns the number of frames recorded.
func (d *Diagnostics) Frames() uint64 {
	return d.frames
}
