package clock

import (
	"time"
)

// Manual is a deterministic Scheduler driven explicitly by the caller.
// Frames happen every frameInterval of virtual time; timers fire at their
// exact due times. When a timer and a frame are due at the same instant the
// timer fires first.
type Manual struct {
	now           time.Time
	frameInterval time.Duration
	frame         FrameFunc
	timers        []*manualTimer
}

type manualTimer struct {
	every   time.Duration
	next    time.Time
	fn      func()
	stopped bool
}

func (t *manualTimer) Stop() { t.stopped = true }

// NewManual creates a manual scheduler starting at start.
func NewManual(start time.Time, frameInterval time.Duration) *Manual {
	if frameInterval <= 0 {
		frameInterval = FrameInterval(60)
	}
	return &Manual{now: start, frameInterval: frameInterval}
}

// Now returns the current virtual time.
func (m *Manual) Now() time.Time {
	return m.now
}

// RequestFrame arms fn for the next Step.
func (m *Manual) RequestFrame(fn FrameFunc) {
	m.frame = fn
}

// Every registers a repeating timer whose first fire is d from now.
func (m *Manual) Every(d time.Duration, fn func()) Timer {
	if d <= 0 {
		d = m.frameInterval
	}
	t := &manualTimer{every: d, next: m.now.Add(d), fn: fn}
	m.timers = append(m.timers, t)
	return t
}

// FramePending reports whether a frame callback is armed.
func (m *Manual) FramePending() bool {
	return m.frame != nil
}

// ActiveTimers returns the number of timers that have not been stopped.
func (m *Manual) ActiveTimers() int {
	n := 0
	for _, t := range m.timers {
		if !t.stopped {
			n++
		}
	}
	return n
}

// Step advances virtual time by one frame interval, firing due timers and
// then the armed frame callback, if any. It reports whether a frame ran.
func (m *Manual) Step() bool {
	target := m.now.Add(m.frameInterval)
	m.fireTimersUntil(target)
	m.now = target

	fn := m.frame
	if fn == nil {
		return false
	}
	m.frame = nil
	fn(m.now)
	return true
}

// StepN runs n frames and returns how many frame callbacks actually ran.
func (m *Manual) StepN(n int) int {
	ran := 0
	for i := 0; i < n; i++ {
		if m.Step() {
			ran++
		}
	}
	return ran
}

// Advance moves virtual time forward by d, one frame at a time.
func (m *Manual) Advance(d time.Duration) {
	end := m.now.Add(d)
	for !m.now.Add(m.frameInterval).After(end) {
		m.Step()
	}
	m.fireTimersUntil(end)
	m.now = end
}

// fireTimersUntil fires every timer due at or before target in time order.
func (m *Manual) fireTimersUntil(target time.Time) {
	for {
		next := m.nextDue(target)
		if next == nil {
			break
		}
		m.now = next.next
		next.next = next.next.Add(next.every)
		next.fn()
	}
	m.prune()
}

// nextDue returns the earliest live timer due at or before target.
func (m *Manual) nextDue(target time.Time) *manualTimer {
	var best *manualTimer
	for _, t := range m.timers {
		if t.stopped || t.next.After(target) {
			continue
		}
		if best == nil || t.next.Before(best.next) {
			best = t
		}
	}
	return best
}

func (m *Manual) prune() {
	live := m.timers[:0]
	for _, t := range m.timers {
		if !t.stopped {
			live = append(live, t)
		}
	}
	m.timers = live
}
