package flappy

import (
	"math"
	"testing"

	"github.com/vovakirdan/flappy-arcade/internal/config"
)

func TestSpawnPairInvariant(t *testing.T) {
	cfg := config.DefaultFlappyConfig()
	sp := NewSpawner(7, cfg)
	h := cfg.Obstacles.Height

	for i := 0; i < 500; i++ {
		upper, lower := sp.SpawnPair()

		if upper.X != lower.X || upper.X != cfg.Board.Width {
			t.Fatalf("pair %d: x = (%v, %v), expected both %v", i, upper.X, lower.X, cfg.Board.Width)
		}
		if upper.Role != RoleUpper || lower.Role != RoleLower {
			t.Fatalf("pair %d: roles = (%v, %v)", i, upper.Role, lower.Role)
		}
		if upper.Passed || lower.Passed {
			t.Fatalf("pair %d: new obstacles must not be passed", i)
		}
		if gap := lower.Y - (upper.Y + upper.H); math.Abs(gap-cfg.OpeningSpace()) > 1e-9 {
			t.Fatalf("pair %d: opening = %v, expected %v", i, gap, cfg.OpeningSpace())
		}
		if upper.Y > -h/4 || upper.Y <= -h/4-h/2 {
			t.Fatalf("pair %d: upper.Y = %v outside (%v, %v]", i, upper.Y, -h/4-h/2, -h/4)
		}
	}
}

func TestSpawnerDeterministic(t *testing.T) {
	cfg := config.DefaultFlappyConfig()
	a := NewSpawner(99, cfg)
	b := NewSpawner(99, cfg)

	for i := 0; i < 20; i++ {
		ua, _ := a.SpawnPair()
		ub, _ := b.SpawnPair()
		if ua != ub {
			t.Fatalf("pair %d differs with the same seed: %+v vs %+v", i, ua, ub)
		}
	}
}

func TestScrollMovesEveryObstacle(t *testing.T) {
	obs := []Obstacle{{X: 10}, {X: 10}, {X: 200}}
	Scroll(obs, 2)

	for i, want := range []float64{8, 8, 198} {
		if obs[i].X != want {
			t.Errorf("obs[%d].X = %v, expected %v", i, obs[i].X, want)
		}
	}
}

func TestRecycle(t *testing.T) {
	tests := []struct {
		name string
		xs   []float64
		want []float64
	}{
		{"empty", nil, nil},
		{"nothing off screen", []float64{10, 10, 200, 200}, []float64{10, 10, 200, 200}},
		{"one pair off screen", []float64{-65, -65, 100, 100}, []float64{100, 100}},
		{"right edge exactly at zero stays", []float64{-64, -64}, []float64{-64, -64}},
		{"several pairs after a slow frame", []float64{-300, -300, -100, -100, 50, 50}, []float64{50, 50}},
		{"all gone", []float64{-70, -70}, []float64{}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			obs := make([]Obstacle, len(tc.xs))
			for i, x := range tc.xs {
				obs[i] = Obstacle{X: x, W: 64}
			}

			got := Recycle(obs)
			if len(got) != len(tc.want) {
				t.Fatalf("len = %d, expected %d", len(got), len(tc.want))
			}
			for i := range got {
				if got[i].X != tc.want[i] {
					t.Errorf("got[%d].X = %v, expected %v", i, got[i].X, tc.want[i])
				}
			}
		})
	}
}
