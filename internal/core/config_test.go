package core

import "testing"

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.ScreenW != 80 || cfg.ScreenH != 24 {
		t.Errorf("screen = %dx%d, expected 80x24", cfg.ScreenW, cfg.ScreenH)
	}
	if cfg.TickRate != 60 {
		t.Errorf("TickRate = %d, expected 60", cfg.TickRate)
	}
	if cfg.Seed != 0 {
		t.Errorf("Seed = %d, expected 0 (time based)", cfg.Seed)
	}
}
