// Package trace records the order in which frames, timers and player inputs
// reached a game session, and re-simulates a recording headlessly.
//
// A trace holds the seed, the configuration and the event interleaving. It
// does not hold scores or entity state: replay recomputes them.
package trace

import (
	"time"
)

// Kind identifies a trace event.
type Kind string

const (
	KindFrame Kind = "frame"
	KindTimer Kind = "timer"
	KindStart Kind = "start"
	KindFlap  Kind = "flap"
	KindStop  Kind = "stop"
)

// IsInput reports whether k is a player input rather than a clock event.
func (k Kind) IsInput() bool {
	return k == KindStart || k == KindFlap || k == KindStop
}

// Event is one entry of a trace. Offset is measured from the start of the
// recording. Timer is the registration sequence number of the timer that
// fired, for KindTimer events only.
type Event struct {
	Kind   Kind
	Offset time.Duration
	Timer  int
}

// Trace is a complete recording.
type Trace struct {
	ID        int64
	Seed      int64
	FPS       int
	Config    []byte // YAML
	StartedAt time.Time
	Events    []Event
}

// Duration returns the offset of the last event.
func (t Trace) Duration() time.Duration {
	if len(t.Events) == 0 {
		return 0
	}
	return t.Events[len(t.Events)-1].Offset
}

// Count returns the number of events of kind k.
func (t Trace) Count(k Kind) int {
	n := 0
	for _, ev := range t.Events {
		if ev.Kind == k {
			n++
		}
	}
	return n
}
