package flappy

import (
	"testing"
	"time"

	"github.com/vovakirdan/flappy-arcade/internal/clock"
	"github.com/vovakirdan/flappy-arcade/internal/config"
	"github.com/vovakirdan/flappy-arcade/internal/core"
)

type cueRecorder struct {
	cues []core.Cue
}

func (r *cueRecorder) Play(c core.Cue) { r.cues = append(r.cues, c) }

func (r *cueRecorder) count(c core.Cue) int {
	n := 0
	for _, got := range r.cues {
		if got == c {
			n++
		}
	}
	return n
}

type readyFlag struct{ ready bool }

func (r *readyFlag) Ready() bool { return r.ready }

func newTestSession(t *testing.T, cfg config.FlappyConfig, opts ...Option) (*Session, *clock.Manual) {
	t.Helper()
	sched := clock.NewManual(time.Unix(0, 0), clock.FrameInterval(60))
	opts = append([]Option{WithSeed(42)}, opts...)
	return NewSession(cfg, sched, opts...), sched
}

// pairAt builds an obstacle pair whose opening spans [openTop, openTop+opening).
func pairAt(cfg config.FlappyConfig, x, openTop float64) []Obstacle {
	h := cfg.Obstacles.Height
	w := cfg.Obstacles.Width
	return []Obstacle{
		{X: x, Y: openTop - h, W: w, H: h, Role: RoleUpper},
		{X: x, Y: openTop + cfg.OpeningSpace(), W: w, H: h, Role: RoleLower},
	}
}
