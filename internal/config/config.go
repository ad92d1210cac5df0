// Package config provides YAML-based game configuration loading for the
// flappy arcade.
package config

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// FlappyConfig contains all configuration for the game.
type FlappyConfig struct {
	Board     FlappyBoard     `yaml:"board"`
	Physics   FlappyPhysics   `yaml:"physics"`
	Player    FlappyPlayer    `yaml:"player"`
	Obstacles FlappyObstacles `yaml:"obstacles"`
	Scoring   FlappyScoring   `yaml:"scoring"`
	Animation FlappyAnimation `yaml:"animation"`
	Audio     FlappyAudio     `yaml:"audio"`
}

// FlappyBoard defines the logical play area in board units.
// Rendering scales it to whatever the terminal offers.
type FlappyBoard struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// FlappyPhysics defines per-tick physics parameters.
type FlappyPhysics struct {
	Gravity      float64 `yaml:"gravity"`       // added to velocity every tick
	FlapVelocity float64 `yaml:"flap_velocity"` // velocity set by a flap (negative = up)
	ScrollSpeed  float64 `yaml:"scroll_speed"`  // obstacle x decrease per tick
}

// FlappyPlayer defines the player's fixed position and hitbox.
type FlappyPlayer struct {
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// FlappyObstacles defines obstacle geometry and spawn cadence.
type FlappyObstacles struct {
	Width           float64 `yaml:"width"`
	Height          float64 `yaml:"height"`
	OpeningFraction float64 `yaml:"opening_fraction"` // opening as a fraction of board height
	SpawnIntervalMS int     `yaml:"spawn_interval_ms"`
}

// FlappyScoring defines score accounting.
type FlappyScoring struct {
	Increment float64 `yaml:"increment"` // added per single obstacle passed
}

// FlappyAnimation defines the cosmetic sprite animation cadence.
type FlappyAnimation struct {
	Frames  int `yaml:"frames"`
	FrameMS int `yaml:"frame_ms"`
}

// FlappyAudio toggles and scales synthesized sound cues.
type FlappyAudio struct {
	Enabled bool    `yaml:"enabled"`
	Volume  float64 `yaml:"volume"` // 0..1
}

// OpeningSpace returns the vertical gap between an upper and lower obstacle.
func (c FlappyConfig) OpeningSpace() float64 {
	return c.Board.Height * c.Obstacles.OpeningFraction
}

// SpawnInterval returns the obstacle spawn cadence.
func (c FlappyConfig) SpawnInterval() time.Duration {
	return time.Duration(c.Obstacles.SpawnIntervalMS) * time.Millisecond
}

// FrameDuration returns how long one animation frame is shown.
func (c FlappyConfig) FrameDuration() time.Duration {
	return time.Duration(c.Animation.FrameMS) * time.Millisecond
}

// Validate checks that the configuration can drive a session.
func (c FlappyConfig) Validate() error {
	checks := []struct {
		ok   bool
		what string
	}{
		{c.Board.Width > 0 && c.Board.Height > 0, "board size must be positive"},
		{c.Player.Width > 0 && c.Player.Height > 0, "player size must be positive"},
		{c.Obstacles.Width > 0 && c.Obstacles.Height > 0, "obstacle size must be positive"},
		{c.Obstacles.OpeningFraction > 0 && c.Obstacles.OpeningFraction < 1, "opening_fraction must be in (0, 1)"},
		{c.Obstacles.SpawnIntervalMS > 0, "spawn_interval_ms must be positive"},
		{c.Physics.ScrollSpeed > 0, "scroll_speed must be positive"},
		{c.Scoring.Increment > 0, "scoring increment must be positive"},
		{c.Animation.Frames > 0, "animation frames must be positive"},
		{c.Animation.FrameMS > 0, "animation frame_ms must be positive"},
		{c.Audio.Volume >= 0 && c.Audio.Volume <= 1, "audio volume must be in [0, 1]"},
	}
	for _, chk := range checks {
		if !chk.ok {
			return fmt.Errorf("%w: %s", ErrInvalidConfig, chk.what)
		}
	}
	return nil
}
