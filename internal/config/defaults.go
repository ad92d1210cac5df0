package config

import (
	_ "embed"
)

//go:embed defaults/flappy.yaml
var defaultFlappyYAML []byte

// DefaultFlappyConfig returns the default configuration.
// It mirrors defaults/flappy.yaml and is used when the embedded file
// cannot be parsed.
func DefaultFlappyConfig() FlappyConfig {
	return FlappyConfig{
		Board: FlappyBoard{
			Width:  360,
			Height: 640,
		},
		Physics: FlappyPhysics{
			Gravity:      0.4,
			FlapVelocity: -6,
			ScrollSpeed:  2,
		},
		Player: FlappyPlayer{
			X:      45,
			Y:      320,
			Width:  34,
			Height: 24,
		},
		Obstacles: FlappyObstacles{
			Width:           64,
			Height:          512,
			OpeningFraction: 0.25,
			SpawnIntervalMS: 1500,
		},
		Scoring: FlappyScoring{
			Increment: 0.5,
		},
		Animation: FlappyAnimation{
			Frames:  4,
			FrameMS: 100,
		},
		Audio: FlappyAudio{
			Enabled: true,
			Volume:  0.6,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML.
func GetDefaultYAML() []byte {
	return defaultFlappyYAML
}
