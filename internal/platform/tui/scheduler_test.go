package tui

import (
	"testing"
	"time"

	"github.com/vovakirdan/flappy-arcade/internal/config"
	"github.com/vovakirdan/flappy-arcade/internal/games/flappy"
)

func TestSchedulerSingleFrameInFlight(t *testing.T) {
	s := NewScheduler(60)

	calls := 0
	s.RequestFrame(func(time.Time) { calls++ })
	s.RequestFrame(func(time.Time) { calls += 10 })

	if cmd := s.Drain(); cmd == nil {
		t.Fatal("RequestFrame should queue a tick")
	}
	if cmd := s.Drain(); cmd != nil {
		t.Error("Drain should empty the queue")
	}

	s.Update(FrameMsg{Time: time.Unix(1, 0)})
	if calls != 10 {
		t.Errorf("calls = %d, expected only the latest callback to run", calls)
	}
	if s.FramePending() {
		t.Error("frame should be one-shot")
	}

	// A stray frame tick with nothing armed is harmless.
	if !s.Update(FrameMsg{}) {
		t.Error("FrameMsg should be consumed")
	}
	if calls != 10 {
		t.Errorf("calls = %d after unarmed tick", calls)
	}
}

func TestSchedulerFrameReceivesTime(t *testing.T) {
	s := NewScheduler(60)
	want := time.Unix(42, 0)

	var got time.Time
	s.RequestFrame(func(now time.Time) { got = now })
	s.Update(FrameMsg{Time: want})

	if !got.Equal(want) {
		t.Errorf("frame time = %v, expected %v", got, want)
	}
}

func TestSchedulerTimerRearmsUntilStopped(t *testing.T) {
	s := NewScheduler(60)

	fires := 0
	timer := s.Every(time.Second, func() { fires++ })
	if s.Drain() == nil {
		t.Fatal("Every should queue a tick")
	}

	s.Update(TimerMsg{ID: 0})
	s.Update(TimerMsg{ID: 0})
	if fires != 2 {
		t.Errorf("fires = %d, expected 2", fires)
	}
	if s.Drain() == nil {
		t.Error("each fire should re-arm the timer")
	}

	timer.Stop()
	if s.ActiveTimers() != 0 {
		t.Errorf("ActiveTimers() = %d after Stop", s.ActiveTimers())
	}
	if !s.Update(TimerMsg{ID: 0}) {
		t.Error("stale TimerMsg should still be consumed")
	}
	if fires != 2 {
		t.Errorf("stopped timer fired: %d", fires)
	}
	if s.Drain() != nil {
		t.Error("stopped timer must not re-arm")
	}
}

func TestSchedulerIgnoresOtherMessages(t *testing.T) {
	s := NewScheduler(60)
	if s.Update("hello") {
		t.Error("Update should not consume unrelated messages")
	}
}

func TestSchedulerDrivesSession(t *testing.T) {
	s := NewScheduler(60)
	session := flappy.NewSession(config.DefaultFlappyConfig(), s, flappy.WithSeed(1))
	session.Start()

	if s.ActiveTimers() != 1 || !s.FramePending() {
		t.Fatal("Start should arm one frame and one spawn timer")
	}

	now := time.Unix(0, 0)
	for i := 0; i < 10; i++ {
		now = now.Add(16 * time.Millisecond)
		s.Update(FrameMsg{Time: now})
	}
	if got := session.Snapshot().Ticks; got != 10 {
		t.Errorf("ticks = %d, expected 10", got)
	}

	s.Update(TimerMsg{ID: 0})
	if got := len(session.Snapshot().Obstacles); got != 4 {
		t.Errorf("obstacles = %d after spawn tick, expected 4", got)
	}

	session.Stop()
	if s.ActiveTimers() != 0 {
		t.Error("Stop should cancel the spawn timer")
	}
}
