package flappy

import "math"

// ScoreTracker accumulates fractional points. Each obstacle of a pair is
// worth half a point, so a full pair adds one to the displayed score.
type ScoreTracker struct {
	raw       float64
	increment float64
}

// NewScoreTracker creates a tracker that adds increment per obstacle passed.
func NewScoreTracker(increment float64) *ScoreTracker {
	return &ScoreTracker{increment: increment}
}

// Check flips the obstacle's passed flag and scores it the first time the
// player's left edge is past the obstacle's right edge. It reports whether
// a point was awarded.
func (t *ScoreTracker) Check(p Player, o *Obstacle) bool {
	if o.Passed || p.X <= o.Right() {
		return false
	}
	o.Passed = true
	t.raw += t.increment
	return true
}

// Reset clears the score.
func (t *ScoreTracker) Reset() {
	t.raw = 0
}

// Raw returns the fractional accumulator.
func (t *ScoreTracker) Raw() float64 {
	return t.raw
}

// Score returns the displayed (floored) score.
func (t *ScoreTracker) Score() int {
	return int(math.Floor(t.raw))
}
