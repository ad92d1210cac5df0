// Package flappy implements a Flappy Bird-style game.
// The player controls a bird that must fly through the openings between
// scrolling pipe pairs. The package holds pure simulation logic: timing comes
// from a clock.Scheduler and every side effect leaves through a cue player or
// the session observer.
package flappy

import (
	"time"

	"github.com/vovakirdan/flappy-arcade/internal/clock"
	"github.com/vovakirdan/flappy-arcade/internal/config"
	"github.com/vovakirdan/flappy-arcade/internal/core"
)

// Sound cues requested by the session.
const (
	CueWing   core.Cue = "wing"   // flap
	CuePoint  core.Cue = "point"  // one obstacle passed
	CueHit    core.Cue = "hit"    // obstacle collision
	CueDie    core.Cue = "die"    // fell to the ground
	CueSwoosh core.Cue = "swoosh" // session started
)

// State is the session lifecycle state.
type State int

const (
	StateIdle     State = iota // menu shown, no simulation
	StateRunning               // simulation active, obstacles spawning
	StateGameOver              // simulation halted, last frame kept for display
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRunning:
		return "running"
	case StateGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Event is reported to the session observer.
type Event int

const (
	EventStarted Event = iota
	EventPoint
	EventGameOver
	EventStopped
)

// String returns the event name.
func (e Event) String() string {
	switch e {
	case EventStarted:
		return "started"
	case EventPoint:
		return "point"
	case EventGameOver:
		return "game_over"
	case EventStopped:
		return "stopped"
	default:
		return "unknown"
	}
}

// Readiness reports whether the assets the session depends on have resolved.
type Readiness interface {
	Ready() bool
}

type alwaysReady struct{}

func (alwaysReady) Ready() bool { return true }

// Option configures a Session.
type Option func(*Session)

// WithSeed sets the RNG seed used for obstacle placement.
func WithSeed(seed int64) Option {
	return func(s *Session) { s.seed = seed }
}

// WithReadiness gates Start on asset readiness.
func WithReadiness(r Readiness) Option {
	return func(s *Session) { s.ready = r }
}

// WithCues routes sound cues to p.
func WithCues(p core.CuePlayer) Option {
	return func(s *Session) { s.cues = p }
}

// WithObserver registers fn to be called on lifecycle events.
func WithObserver(fn func(Event)) Option {
	return func(s *Session) { s.observer = fn }
}

// Session is one game: the player, the obstacle stream, the score and the
// lifecycle state. It must only be used from the scheduler's goroutine.
type Session struct {
	cfg      config.FlappyConfig
	sched    clock.Scheduler
	ready    Readiness
	cues     core.CuePlayer
	observer func(Event)
	seed     int64

	spawner   *Spawner
	player    Player
	obstacles []Obstacle // spawn order == x-ascending
	score     *ScoreTracker
	state     State

	animFrame   int
	animElapsed time.Duration
	lastFrame   time.Time
	ticks       int

	spawnTimer clock.Timer
	frameArmed bool
}

// NewSession creates an idle session.
func NewSession(cfg config.FlappyConfig, sched clock.Scheduler, opts ...Option) *Session {
	s := &Session{
		cfg:   cfg,
		sched: sched,
		ready: alwaysReady{},
		cues:  core.NopCuePlayer{},
		seed:  1,
	}
	for _, opt := range opts {
		opt(s)
	}

	s.spawner = NewSpawner(s.seed, cfg)
	s.score = NewScoreTracker(cfg.Scoring.Increment)
	s.obstacles = make([]Obstacle, 0, 8)
	s.player = s.initialPlayer()
	return s
}

// Start resets the session and begins a run. It is ignored, returning
// false, while assets are still loading.
func (s *Session) Start() bool {
	if !s.Loaded() {
		return false
	}

	s.reset()
	s.state = StateRunning

	// First pair immediately, then one per interval.
	s.spawn()
	s.spawnTimer = s.sched.Every(s.cfg.SpawnInterval(), s.onSpawnTimer)
	s.armFrame()

	s.cues.Play(CueSwoosh)
	s.notify(EventStarted)
	return true
}

// Flap is the single player input. While running it sets the upward
// impulse; otherwise it starts a fresh run (a no-op until assets are ready).
func (s *Session) Flap() {
	switch s.state {
	case StateRunning:
		ApplyFlap(&s.player, s.cfg.Physics.FlapVelocity)
		s.cues.Play(CueWing)
	case StateGameOver, StateIdle:
		s.Start()
	}
}

// Stop halts a running session and returns to idle. Entities are kept so
// the last frame can still be drawn.
func (s *Session) Stop() {
	if s.state != StateRunning {
		return
	}
	s.stopSpawnTimer()
	s.state = StateIdle
	s.notify(EventStopped)
}

// State returns the lifecycle state.
func (s *Session) State() State {
	return s.state
}

// Loaded reports whether assets are ready.
func (s *Session) Loaded() bool {
	return s.ready.Ready()
}

// Score returns the displayed (floored) score.
func (s *Session) Score() int {
	return s.score.Score()
}

func (s *Session) initialPlayer() Player {
	return Player{
		X: s.cfg.Player.X,
		Y: s.cfg.Player.Y,
		W: s.cfg.Player.Width,
		H: s.cfg.Player.Height,
	}
}

func (s *Session) reset() {
	s.stopSpawnTimer()
	s.player = s.initialPlayer()
	s.obstacles = s.obstacles[:0]
	s.score.Reset()
	s.animFrame = 0
	s.animElapsed = 0
	s.lastFrame = time.Time{}
	s.ticks = 0
}

// tick is the per-frame update. It re-arms itself only while running;
// not re-arming is how the loop stops.
func (s *Session) tick(now time.Time) {
	s.frameArmed = false
	if s.state != StateRunning {
		return
	}
	s.ticks++
	s.animate(now)

	Integrate(&s.player, s.cfg.Physics.Gravity)
	var fatal core.Cue
	if HitsGround(s.player, s.cfg.Board.Height) {
		fatal = CueDie
	}

	Scroll(s.obstacles, s.cfg.Physics.ScrollSpeed)
	for i := range s.obstacles {
		o := &s.obstacles[i]
		if s.score.Check(s.player, o) {
			s.cues.Play(CuePoint)
			s.notify(EventPoint)
		}
		if fatal == "" && Collides(s.player, *o) {
			fatal = CueHit
		}
	}
	s.obstacles = Recycle(s.obstacles)

	if fatal != "" {
		s.gameOver(fatal)
		return
	}
	s.armFrame()
}

// animate advances the sprite frame on its own time-based cadence.
func (s *Session) animate(now time.Time) {
	if !s.lastFrame.IsZero() && now.After(s.lastFrame) {
		s.animElapsed += now.Sub(s.lastFrame)
	}
	s.lastFrame = now

	step := s.cfg.FrameDuration()
	if s.animElapsed < step {
		return
	}
	n := s.animElapsed / step
	s.animElapsed -= n * step
	s.animFrame = (s.animFrame + int(n%time.Duration(s.cfg.Animation.Frames))) % s.cfg.Animation.Frames
}

func (s *Session) gameOver(cue core.Cue) {
	s.state = StateGameOver
	s.stopSpawnTimer()
	s.cues.Play(cue)
	s.notify(EventGameOver)
}

func (s *Session) onSpawnTimer() {
	if s.state != StateRunning {
		return
	}
	s.spawn()
}

func (s *Session) spawn() {
	upper, lower := s.spawner.SpawnPair()
	s.obstacles = append(s.obstacles, upper, lower)
}

func (s *Session) armFrame() {
	if s.frameArmed {
		return
	}
	s.frameArmed = true
	s.sched.RequestFrame(s.tick)
}

func (s *Session) stopSpawnTimer() {
	if s.spawnTimer != nil {
		s.spawnTimer.Stop()
		s.spawnTimer = nil
	}
}

func (s *Session) notify(ev Event) {
	if s.observer != nil {
		s.observer(ev)
	}
}
