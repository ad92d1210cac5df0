package flappy

import "github.com/vovakirdan/flappy-arcade/internal/core"

// ObstacleView is the render-facing view of one obstacle.
type ObstacleView struct {
	Rect   core.Rect
	Role   Role
	Passed bool
}

// Snapshot is a copy of everything a renderer or UI shell may observe.
// It shares no memory with the session.
type Snapshot struct {
	Board     core.Rect
	Player    core.Rect
	VelocityY float64
	Obstacles []ObstacleView
	Score     int     // floored
	RawScore  float64 // fractional accumulator
	State     State
	Running   bool
	GameOver  bool
	Loaded    bool
	AnimFrame int
	Ticks     int
}

// Snapshot returns the current observable state.
func (s *Session) Snapshot() Snapshot {
	obstacles := make([]ObstacleView, len(s.obstacles))
	for i, o := range s.obstacles {
		obstacles[i] = ObstacleView{Rect: o.Rect(), Role: o.Role, Passed: o.Passed}
	}

	return Snapshot{
		Board:     core.NewRect(0, 0, s.cfg.Board.Width, s.cfg.Board.Height),
		Player:    s.player.Rect(),
		VelocityY: s.player.VelocityY,
		Obstacles: obstacles,
		Score:     s.score.Score(),
		RawScore:  s.score.Raw(),
		State:     s.state,
		Running:   s.state == StateRunning,
		GameOver:  s.state == StateGameOver,
		Loaded:    s.Loaded(),
		AnimFrame: s.animFrame,
		Ticks:     s.ticks,
	}
}
