package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/flappy-arcade/internal/clock"
)

// Scheduler implements clock.Scheduler on top of Bubble Tea commands.
// Callbacks run inside Update, so the session is only touched from the
// program's goroutine. Scheduling calls queue commands; Update must return
// Drain() so they reach the runtime.
type Scheduler struct {
	interval    time.Duration
	frame       clock.FrameFunc
	frameQueued bool
	timers      map[int]*teaTimer
	nextID      int
	pending     []tea.Cmd
}

type teaTimer struct {
	s     *Scheduler
	id    int
	every time.Duration
	fn    func()
}

// Stop forgets the timer; a tick already in flight is dropped on arrival.
func (t *teaTimer) Stop() {
	delete(t.s.timers, t.id)
}

// NewScheduler creates a scheduler delivering frames at fps.
func NewScheduler(fps int) *Scheduler {
	return &Scheduler{
		interval: clock.FrameInterval(fps),
		timers:   make(map[int]*teaTimer),
	}
}

// RequestFrame arms fn for the next frame. Only one frame tick is ever in
// flight; a second request before it arrives replaces the callback.
func (s *Scheduler) RequestFrame(fn clock.FrameFunc) {
	s.frame = fn
	if s.frameQueued {
		return
	}
	s.frameQueued = true
	s.pending = append(s.pending, frameCmd(s.interval))
}

// Every starts a repeating timer.
func (s *Scheduler) Every(d time.Duration, fn func()) clock.Timer {
	if d <= 0 {
		d = s.interval
	}
	t := &teaTimer{s: s, id: s.nextID, every: d, fn: fn}
	s.nextID++
	s.timers[t.id] = t
	s.pending = append(s.pending, timerCmd(t.id, d))
	return t
}

// Update runs the callback for a frame or timer message. It reports
// whether msg belonged to the scheduler.
func (s *Scheduler) Update(msg tea.Msg) bool {
	switch msg := msg.(type) {
	case FrameMsg:
		s.frameQueued = false
		fn := s.frame
		s.frame = nil
		if fn != nil {
			fn(msg.Time)
		}
		return true

	case TimerMsg:
		t, ok := s.timers[msg.ID]
		if !ok {
			return true // stopped
		}
		// Re-arm before the callback so it may stop the timer.
		s.pending = append(s.pending, timerCmd(t.id, t.every))
		t.fn()
		return true
	}
	return false
}

// Drain returns the queued commands as one batch, or nil.
func (s *Scheduler) Drain() tea.Cmd {
	if len(s.pending) == 0 {
		return nil
	}
	cmds := s.pending
	s.pending = nil
	return tea.Batch(cmds...)
}

// FramePending reports whether a frame callback is armed.
func (s *Scheduler) FramePending() bool {
	return s.frame != nil
}

// ActiveTimers returns the number of running timers.
func (s *Scheduler) ActiveTimers() int {
	return len(s.timers)
}
