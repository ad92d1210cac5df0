package trace

import (
	"errors"
	"fmt"
	"time"

	"github.com/vovakirdan/flappy-arcade/internal/clock"
	"github.com/vovakirdan/flappy-arcade/internal/config"
	"github.com/vovakirdan/flappy-arcade/internal/games/flappy"
)

// ErrDiverged is returned when a trace asks for a frame or timer the
// re-simulated session never scheduled.
var ErrDiverged = errors.New("replay diverged from trace")

// Result summarizes a replay.
type Result struct {
	Final   flappy.Snapshot
	Events  int
	Points  int
	Games   int
	Elapsed time.Duration
}

// script is a clock.Scheduler whose callbacks fire only when the trace says
// so.
type script struct {
	frame  clock.FrameFunc
	timers map[int]*scriptTimer
	next   int
}

type scriptTimer struct {
	fn      func()
	stopped bool
}

func (t *scriptTimer) Stop() { t.stopped = true }

func newScript() *script {
	return &script{timers: make(map[int]*scriptTimer)}
}

func (s *script) RequestFrame(fn clock.FrameFunc) {
	s.frame = fn
}

func (s *script) Every(_ time.Duration, fn func()) clock.Timer {
	t := &scriptTimer{fn: fn}
	s.timers[s.next] = t
	s.next++
	return t
}

func (s *script) fireFrame(now time.Time) bool {
	fn := s.frame
	if fn == nil {
		return false
	}
	s.frame = nil
	fn(now)
	return true
}

func (s *script) fireTimer(id int) bool {
	t, ok := s.timers[id]
	if !ok || t.stopped {
		return false
	}
	t.fn()
	return true
}

// Replay re-simulates tr and returns the final session state. Frames
// receive the recorded times, so animation replays too.
func Replay(tr Trace) (Result, error) {
	cfg, err := config.Parse(tr.Config)
	if err != nil {
		return Result{}, fmt.Errorf("trace %d: %w", tr.ID, err)
	}

	var res Result
	sched := newScript()
	// Always ready: recorders only log inputs the live model accepted after
	// its assets resolved.
	session := flappy.NewSession(cfg, sched,
		flappy.WithSeed(tr.Seed),
		flappy.WithObserver(func(ev flappy.Event) {
			switch ev {
			case flappy.EventPoint:
				res.Points++
			case flappy.EventStarted:
				res.Games++
			}
		}),
	)

	start := tr.StartedAt
	if start.IsZero() {
		start = time.Unix(0, 0)
	}

	for i, ev := range tr.Events {
		switch ev.Kind {
		case KindFrame:
			if !sched.fireFrame(start.Add(ev.Offset)) {
				return res, fmt.Errorf("%w: event %d: frame at %v was never requested", ErrDiverged, i, ev.Offset)
			}
		case KindTimer:
			if !sched.fireTimer(ev.Timer) {
				return res, fmt.Errorf("%w: event %d: timer %d is not active", ErrDiverged, i, ev.Timer)
			}
		case KindStart:
			session.Start()
		case KindFlap:
			session.Flap()
		case KindStop:
			session.Stop()
		default:
			return res, fmt.Errorf("trace %d: event %d: unknown kind %q", tr.ID, i, ev.Kind)
		}
		res.Events++
	}

	res.Final = session.Snapshot()
	res.Elapsed = tr.Duration()
	return res, nil
}
