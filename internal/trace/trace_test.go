package trace

import (
	"errors"
	"testing"
	"time"

	"github.com/vovakirdan/flappy-arcade/internal/clock"
	"github.com/vovakirdan/flappy-arcade/internal/config"
	"github.com/vovakirdan/flappy-arcade/internal/games/flappy"
)

// record plays a scripted game on a manual clock and returns the trace and
// the live session's final state.
func record(t *testing.T, cfg config.FlappyConfig, seed int64, frames int) (Trace, flappy.Snapshot) {
	t.Helper()
	manual := clock.NewManual(time.Unix(1000, 0), clock.FrameInterval(60))
	rec := NewRecorder(manual, manual)
	session := flappy.NewSession(cfg, rec, flappy.WithSeed(seed))

	rec.Input(KindStart)
	session.Start()
	for i := 0; i < frames; i++ {
		if i%20 == 0 {
			rec.Input(KindFlap)
			session.Flap()
		}
		manual.Step()
	}

	data, err := config.Marshal(cfg)
	if err != nil {
		t.Fatal(err)
	}
	return rec.Trace(seed, 60, data), session.Snapshot()
}

func TestRecorderLogsInterleaving(t *testing.T) {
	tr, _ := record(t, config.DefaultFlappyConfig(), 7, 120)

	if tr.Events[0].Kind != KindStart {
		t.Errorf("first event = %s, expected start", tr.Events[0].Kind)
	}
	if got := tr.Count(KindFrame); got != 120 {
		t.Errorf("frames = %d, expected 120", got)
	}
	// 120 frames at 60fps = 2s: one spawn at 1.5s.
	if got := tr.Count(KindTimer); got != 1 {
		t.Errorf("timer fires = %d, expected 1", got)
	}
	if want := 120 * clock.FrameInterval(60); tr.Duration() != want {
		t.Errorf("Duration() = %v, expected %v", tr.Duration(), want)
	}

	// Timer fires before the frame that shares its deadline window.
	for i, ev := range tr.Events {
		if ev.Kind == KindTimer {
			if ev.Offset != 1500*time.Millisecond {
				t.Errorf("timer offset = %v, expected 1.5s", ev.Offset)
			}
			if next := tr.Events[i+1]; next.Kind != KindFrame {
				t.Errorf("event after timer = %s, expected frame", next.Kind)
			}
		}
	}
}

func TestReplayMatchesLiveRun(t *testing.T) {
	tests := []struct {
		name   string
		seed   int64
		frames int
	}{
		{"short", 1, 60},
		{"spawns", 42, 400},
		{"long run with restarts", 9, 2000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr, live := record(t, config.DefaultFlappyConfig(), tt.seed, tt.frames)

			res, err := Replay(tr)
			if err != nil {
				t.Fatalf("Replay() error: %v", err)
			}
			got := res.Final
			if got.Ticks != live.Ticks || got.RawScore != live.RawScore || got.State != live.State {
				t.Errorf("replay = ticks %d score %v %s, live = ticks %d score %v %s",
					got.Ticks, got.RawScore, got.State, live.Ticks, live.RawScore, live.State)
			}
			if got.Player != live.Player || got.AnimFrame != live.AnimFrame {
				t.Errorf("player/anim diverged: %+v/%d vs %+v/%d", got.Player, got.AnimFrame, live.Player, live.AnimFrame)
			}
			if len(got.Obstacles) != len(live.Obstacles) {
				t.Errorf("obstacles = %d, live had %d", len(got.Obstacles), len(live.Obstacles))
			}
			if res.Events != len(tr.Events) || res.Games < 1 {
				t.Errorf("events = %d/%d games = %d", res.Events, len(tr.Events), res.Games)
			}
		})
	}
}

func TestReplayDetectsDivergence(t *testing.T) {
	tr, _ := record(t, config.DefaultFlappyConfig(), 3, 30)

	tests := []struct {
		name string
		edit func(tr Trace) Trace
	}{
		{
			name: "missing start",
			edit: func(tr Trace) Trace {
				// Drop start and the leading flap: a flap while idle also starts.
				i := 0
				for i < len(tr.Events) && tr.Events[i].Kind.IsInput() {
					i++
				}
				tr.Events = tr.Events[i:]
				return tr
			},
		},
		{
			name: "unknown timer",
			edit: func(tr Trace) Trace {
				tr.Events = append(append([]Event{}, tr.Events...), Event{Kind: KindTimer, Timer: 5})
				return tr
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Replay(tt.edit(tr))
			if !errors.Is(err, ErrDiverged) {
				t.Errorf("Replay() error = %v, expected ErrDiverged", err)
			}
		})
	}
}

func TestReplayLeadingFlapStartsSession(t *testing.T) {
	tr, live := record(t, config.DefaultFlappyConfig(), 3, 30)
	tr.Events = tr.Events[1:] // start only; the flap that follows starts the run

	res, err := Replay(tr)
	if err != nil {
		t.Fatalf("Replay() error: %v", err)
	}
	if res.Games != 1 || res.Final.Ticks != live.Ticks {
		t.Errorf("games = %d ticks = %d, expected 1 and %d", res.Games, res.Final.Ticks, live.Ticks)
	}
}

func TestReplayRejectsBadTrace(t *testing.T) {
	tr, _ := record(t, config.DefaultFlappyConfig(), 3, 5)

	bad := tr
	bad.Config = []byte("board: [")
	if _, err := Replay(bad); err == nil {
		t.Error("invalid config should fail")
	}

	bad = tr
	bad.Events = append(append([]Event{}, tr.Events...), Event{Kind: "teleport"})
	if _, err := Replay(bad); err == nil || errors.Is(err, ErrDiverged) {
		t.Errorf("unknown kind error = %v", err)
	}
}

func TestKindIsInput(t *testing.T) {
	tests := []struct {
		kind Kind
		want bool
	}{
		{KindFrame, false},
		{KindTimer, false},
		{KindStart, true},
		{KindFlap, true},
		{KindStop, true},
	}
	for _, tt := range tests {
		if got := tt.kind.IsInput(); got != tt.want {
			t.Errorf("%s.IsInput() = %v, expected %v", tt.kind, got, tt.want)
		}
	}
}
