package trace

import (
	"time"

	"github.com/vovakirdan/flappy-arcade/internal/clock"
)

// Recorder is a clock.Scheduler that forwards to another scheduler and
// logs every frame and timer callback it delivers. Inputs are logged with
// Input. Like the session it wraps, it must only be used from the
// scheduler's goroutine.
type Recorder struct {
	inner     clock.Scheduler
	clock     clock.Clock
	start     time.Time
	events    []Event
	nextTimer int
}

// NewRecorder starts a recording over inner. c timestamps timer fires and
// inputs.
func NewRecorder(inner clock.Scheduler, c clock.Clock) *Recorder {
	return &Recorder{
		inner: inner,
		clock: c,
		start: c.Now(),
	}
}

// RequestFrame forwards to the inner scheduler, logging the frame when it
// runs.
func (r *Recorder) RequestFrame(fn clock.FrameFunc) {
	r.inner.RequestFrame(func(now time.Time) {
		r.events = append(r.events, Event{Kind: KindFrame, Offset: r.offset(now)})
		fn(now)
	})
}

// Every forwards to the inner scheduler, logging each fire with the timer's
// sequence number.
func (r *Recorder) Every(d time.Duration, fn func()) clock.Timer {
	id := r.nextTimer
	r.nextTimer++
	return r.inner.Every(d, func() {
		r.events = append(r.events, Event{Kind: KindTimer, Offset: r.offset(r.clock.Now()), Timer: id})
		fn()
	})
}

// Input logs a player input. Only inputs the session accepted should be
// logged.
func (r *Recorder) Input(k Kind) {
	r.events = append(r.events, Event{Kind: k, Offset: r.offset(r.clock.Now())})
}

// Len returns the number of recorded events.
func (r *Recorder) Len() int {
	return len(r.events)
}

// Trace returns a copy of the recording.
func (r *Recorder) Trace(seed int64, fps int, cfgYAML []byte) Trace {
	events := make([]Event, len(r.events))
	copy(events, r.events)
	return Trace{
		Seed:      seed,
		FPS:       fps,
		Config:    cfgYAML,
		StartedAt: r.start,
		Events:    events,
	}
}

func (r *Recorder) offset(now time.Time) time.Duration {
	return max(now.Sub(r.start), 0)
}
