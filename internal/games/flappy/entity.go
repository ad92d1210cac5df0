package flappy

import "github.com/vovakirdan/flappy-arcade/internal/core"

// Player is the bird. X never changes during a session.
type Player struct {
	X, Y      float64
	W, H      float64
	VelocityY float64
}

// Rect returns the player's collision rectangle.
func (p Player) Rect() core.Rect {
	return core.NewRect(p.X, p.Y, p.W, p.H)
}

// Role tells the renderer which half of a pair an obstacle is.
// It has no effect on physics.
type Role int

const (
	RoleUpper Role = iota
	RoleLower
)

// String returns the role name.
func (r Role) String() string {
	if r == RoleUpper {
		return "upper"
	}
	return "lower"
}

// Obstacle is one half of a pipe pair.
type Obstacle struct {
	X, Y   float64
	W, H   float64
	Role   Role
	Passed bool // the player's left edge has crossed this obstacle's right edge
}

// Rect returns the obstacle's collision rectangle.
func (o Obstacle) Rect() core.Rect {
	return core.NewRect(o.X, o.Y, o.W, o.H)
}

// Right returns the x-coordinate of the right edge.
func (o Obstacle) Right() float64 {
	return o.X + o.W
}
