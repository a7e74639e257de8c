package fps

import "time"

// TimerMode controls what a Timer does once its duration has elapsed.
type TimerMode uint8

const (
	// Once timers stop at their duration and stay finished.
	Once TimerMode = iota
	// Repeating timers wrap around and keep running.
	Repeating
)

// Timer counts elapsed frame time towards a duration. It only advances when
// ticked, so it follows simulated time rather than the wall clock.
type Timer struct {
	duration time.Duration
	elapsed  time.Duration
	mode     TimerMode
	paused   bool

	finished              bool
	timesFinishedThisTick uint32
}

// NewTimer creates a running timer.
func NewTimer(duration time.Duration, mode TimerMode) *Timer {
	return &Timer{duration: duration, mode: mode}
}

// Tick advances the timer by delta unless it is paused.
func (t *Timer) Tick(delta time.Duration) *Timer {
	if t.paused {
		t.timesFinishedThisTick = 0
		if t.mode == Repeating {
			t.finished = false
		}
		return t
	}
	if t.mode != Repeating && t.finished {
		t.timesFinishedThisTick = 0
		return t
	}

	t.elapsed += delta
	t.finished = t.elapsed >= t.duration
	if !t.finished {
		t.timesFinishedThisTick = 0
		return t
	}

	if t.mode == Repeating {
		if t.duration > 0 {
			t.timesFinishedThisTick = uint32(t.elapsed / t.duration)
			t.elapsed %= t.duration
		} else {
			t.timesFinishedThisTick = 1
			t.elapsed = 0
		}
	} else {
		t.timesFinishedThisTick = 1
		t.elapsed = t.duration
	}
	return t
}

// JustFinished reports whether the last Tick reached the duration.
func (t *Timer) JustFinished() bool {
	return t.timesFinishedThisTick > 0
}

// TimesFinishedThisTick returns how many whole durations the last Tick crossed.
func (t *Timer) TimesFinishedThisTick() uint32 {
	return t.timesFinishedThisTick
}

// Finished reports whether the timer has reached its duration. Repeating
// timers are only finished on the tick they wrap.
func (t *Timer) Finished() bool {
	return t.finished
}

// Elapsed returns the time accumulated in the current period.
func (t *Timer) Elapsed() time.Duration {
	return t.elapsed
}

// Duration returns the timer's period.
func (t *Timer) Duration() time.Duration {
	return t.duration
}

// Pause stops the timer from advancing.
func (t *Timer) Pause() {
	t.paused = true
}

// Unpause lets the timer advance again.
func (t *Timer) Unpause() {
	t.paused = false
}

// Paused reports whether the timer is paused.
func (t *Timer) Paused() bool {
	return t.paused
}

// Reset clears elapsed time and the finished state.
func (t *Timer) Reset() {
	t.elapsed = 0
	t.finished = false
	t.timesFinishedThisTick = 0
}
