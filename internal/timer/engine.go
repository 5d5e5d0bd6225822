// Package timer implements the countdown state machines behind the
// work timer and the in-workout rest timer. An Engine only tracks
// state; the caller drives it with one Tick per second and owns every
// side effect (scheduling, haptics, the done flash).
package timer

import "fmt"

// UrgentThreshold is the remaining-seconds boundary at or below which
// the display switches to urgent styling (while still counting down).
const UrgentThreshold = 10

// Engine is a countdown: armed with a duration, ticked down once per
// second, pausable, resettable. The two timers in the app share this
// machine and differ only in their zero-state policies:
//
//   - a work timer refuses to start with nothing armed and Reset
//     clears both remaining and total
//   - a rest timer re-arms from its configured total when started
//     empty, and Reset reloads that total for immediate reuse
type Engine struct {
	remaining int
	total     int
	running   bool

	rearmOnStart  bool
	reloadOnReset bool
}

// NewWorkTimer returns the general-purpose timer: fully cleared by
// Reset, inert until a duration is set.
func NewWorkTimer() *Engine {
	return &Engine{}
}

// NewRestTimer returns the rest timer pre-armed with the configured
// duration (the persisted preference, 120s by default).
func NewRestTimer(totalSeconds int) *Engine {
	e := &Engine{
		rearmOnStart:  true,
		reloadOnReset: true,
	}
	if totalSeconds > 0 {
		e.total = totalSeconds
		e.remaining = totalSeconds
	}
	return e
}

// SetDuration arms the timer with a new duration. Non-positive input is
// silently ignored. Changing the duration while running stops the
// countdown first; that is the intended behavior, not a bug.
func (e *Engine) SetDuration(seconds int) {
	if seconds <= 0 {
		return
	}
	if e.running {
		e.Pause()
	}
	e.total = seconds
	e.remaining = seconds
}

// Start begins the countdown. A work timer with nothing armed stays
// idle; a rest timer falls back to its configured total. Returns
// whether the engine is now running, so the caller knows to schedule
// ticks.
func (e *Engine) Start() bool {
	if e.running {
		return true
	}
	if e.remaining == 0 {
		if !e.rearmOnStart || e.total == 0 {
			return false
		}
		e.remaining = e.total
	}
	e.running = true
	return true
}

// Tick advances the countdown by one second. Reaching zero stops the
// engine and reports expiry exactly once; the caller fires the
// completion cue. Ticks while paused or idle are ignored.
func (e *Engine) Tick() (expired bool) {
	if !e.running {
		return false
	}
	e.remaining--
	if e.remaining <= 0 {
		e.remaining = 0
		e.running = false
		return true
	}
	return false
}

// Pause stops the countdown, preserving the remaining time. Only
// meaningful while running.
func (e *Engine) Pause() {
	e.running = false
}

// Reset stops the countdown and restores the zero state: a work timer
// clears entirely, a rest timer reloads its configured total.
func (e *Engine) Reset() {
	e.running = false
	if e.reloadOnReset {
		e.remaining = e.total
	} else {
		e.remaining = 0
		e.total = 0
	}
}

// Remaining returns the seconds left on the countdown.
func (e *Engine) Remaining() int { return e.remaining }

// Total returns the armed duration.
func (e *Engine) Total() int { return e.total }

// Running reports whether the countdown is active.
func (e *Engine) Running() bool { return e.running }

// Ratio returns remaining/total for the progress indicator, or 0 with
// nothing armed (drawn as a reset ring).
func (e *Engine) Ratio() float64 {
	if e.total == 0 {
		return 0
	}
	return float64(e.remaining) / float64(e.total)
}

// Urgent reports whether the display should switch to urgent styling:
// ten seconds or less on the clock, but not yet expired.
func (e *Engine) Urgent() bool {
	return e.remaining > 0 && e.remaining <= UrgentThreshold
}

// Clock formats the remaining time as m:ss.
func (e *Engine) Clock() string {
	return FormatClock(e.remaining)
}

// FormatClock renders a seconds count as m:ss.
func FormatClock(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%d:%02d", seconds/60, seconds%60)
}
