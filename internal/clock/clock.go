// Package clock abstracts the host's frame scheduler and interval timers so
// the simulation can run against a terminal loop, a test harness or a
// recorded trace without change.
package clock

import "time"

// FrameFunc is invoked once per display refresh with the frame time.
type FrameFunc func(now time.Time)

// Timer is a handle to a repeating callback.
type Timer interface {
	// Stop cancels the timer. Callbacks that have not fired yet never fire.
	Stop()
}

// Scheduler drives the simulation. All callbacks run on the scheduler's
// single goroutine, so callers never need locks around game state.
type Scheduler interface {
	// RequestFrame arms fn for the next frame. The request is one-shot: a
	// loop that wants another frame must ask again from inside fn.
	RequestFrame(fn FrameFunc)

	// Every calls fn every d until the returned Timer is stopped.
	Every(d time.Duration, fn func()) Timer
}

// Clock reports the current time.
type Clock interface {
	Now() time.Time
}

// Real is the wall clock.
type Real struct{}

// Now returns time.Now().
func (Real) Now() time.Time { return time.Now() }

// FrameInterval converts a frame rate into the duration between frames.
// Non-positive rates fall back to 60 frames per second.
func FrameInterval(fps int) time.Duration {
	if fps <= 0 {
		fps = 60
	}
	return time.Second / time.Duration(fps)
}
