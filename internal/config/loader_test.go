package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := Parse(GetDefaultYAML())
	if err != nil {
		t.Fatalf("Parse(embedded) failed: %v", err)
	}

	if cfg != DefaultFlappyConfig() {
		t.Errorf("embedded defaults differ from DefaultFlappyConfig():\n got  %+v\n want %+v", cfg, DefaultFlappyConfig())
	}
}

func TestParsePartialOverride(t *testing.T) {
	cfg, err := Parse([]byte("physics:\n  gravity: 0.5\n"))
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}

	if cfg.Physics.Gravity != 0.5 {
		t.Errorf("Gravity = %v, expected 0.5", cfg.Physics.Gravity)
	}
	// Untouched values keep their defaults
	if cfg.Physics.FlapVelocity != -6 {
		t.Errorf("FlapVelocity = %v, expected default -6", cfg.Physics.FlapVelocity)
	}
	if cfg.Obstacles.SpawnIntervalMS != 1500 {
		t.Errorf("SpawnIntervalMS = %d, expected default 1500", cfg.Obstacles.SpawnIntervalMS)
	}
}

func TestParseRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"zero board", "board:\n  width: 0\n"},
		{"zero spawn interval", "obstacles:\n  spawn_interval_ms: 0\n"},
		{"opening too large", "obstacles:\n  opening_fraction: 1.5\n"},
		{"no animation frames", "animation:\n  frames: 0\n"},
		{"loud audio", "audio:\n  volume: 2\n"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse([]byte(tc.yaml))
			if !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Parse() error = %v, expected ErrInvalidConfig", err)
			}
		})
	}
}

func TestParseMalformedYAML(t *testing.T) {
	if _, err := Parse([]byte("board: [")); err == nil {
		t.Error("Parse() should fail on malformed YAML")
	}
}

func TestLoadFlappyCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	if err := os.WriteFile(path, []byte("scoring:\n  increment: 1\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFlappy(path)
	if err != nil {
		t.Fatalf("LoadFlappy() failed: %v", err)
	}
	if cfg.Scoring.Increment != 1 {
		t.Errorf("Increment = %v, expected 1", cfg.Scoring.Increment)
	}
}

func TestLoadFlappyMissingCustomPath(t *testing.T) {
	_, err := LoadFlappy(filepath.Join(t.TempDir(), "missing.yaml"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("LoadFlappy() error = %v, expected os.ErrNotExist", err)
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	cfg := DefaultFlappyConfig()
	cfg.Physics.Gravity = 0.55

	data, err := Marshal(cfg)
	if err != nil {
		t.Fatalf("Marshal() failed: %v", err)
	}
	back, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}
	if back != cfg {
		t.Errorf("round trip changed config:\n got  %+v\n want %+v", back, cfg)
	}
}

func TestDerivedDurations(t *testing.T) {
	cfg := DefaultFlappyConfig()

	if got := cfg.OpeningSpace(); got != 160 {
		t.Errorf("OpeningSpace() = %v, expected 160", got)
	}
	if got := cfg.SpawnInterval().Milliseconds(); got != 1500 {
		t.Errorf("SpawnInterval() = %dms, expected 1500ms", got)
	}
	if got := cfg.FrameDuration().Milliseconds(); got != 100 {
		t.Errorf("FrameDuration() = %dms, expected 100ms", got)
	}
}
