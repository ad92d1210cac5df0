package flappy

import (
	"math/rand"

	"github.com/vovakirdan/flappy-arcade/internal/config"
)

// Spawner creates obstacle pairs and reclaims the ones that left the board.
type Spawner struct {
	rng *rand.Rand
	cfg config.FlappyConfig
}

// NewSpawner creates a spawner with the given RNG seed.
func NewSpawner(seed int64, cfg config.FlappyConfig) *Spawner {
	return &Spawner{
		rng: rand.New(rand.NewSource(seed)),
		cfg: cfg,
	}
}

// SpawnPair creates an upper and lower obstacle at the right edge of the
// board. The upper one is shifted up by a random amount in
// [H/4, H/4 + H/2); the lower one starts openingSpace below its bottom edge.
func (s *Spawner) SpawnPair() (upper, lower Obstacle) {
	w := s.cfg.Obstacles.Width
	h := s.cfg.Obstacles.Height
	x := s.cfg.Board.Width

	gapY := -h/4 - s.rng.Float64()*(h/2)
	upper = Obstacle{X: x, Y: gapY, W: w, H: h, Role: RoleUpper}

	lowerY := upper.Y + upper.H + s.cfg.OpeningSpace()
	lower = Obstacle{X: x, Y: lowerY, W: w, H: h, Role: RoleLower}
	return upper, lower
}

// Scroll moves every obstacle left by speed.
func Scroll(obstacles []Obstacle, speed float64) {
	for i := range obstacles {
		obstacles[i].X -= speed
	}
}

// Recycle drops obstacles from the front of the slice while their right edge
// is left of the board. The slice is in spawn order, so the oldest are first.
func Recycle(obstacles []Obstacle) []Obstacle {
	n := 0
	for n < len(obstacles) && obstacles[n].Right() < 0 {
		n++
	}
	if n == 0 {
		return obstacles
	}
	// Shift in place so the backing array is reused across ticks.
	kept := copy(obstacles, obstacles[n:])
	return obstacles[:kept]
}
