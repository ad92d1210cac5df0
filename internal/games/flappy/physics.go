package flappy

// Integrate applies one tick of gravity: velocity first, then position.
// There is no terminal velocity.
func Integrate(p *Player, gravity float64) {
	p.VelocityY += gravity
	p.Y += p.VelocityY
}

// ApplyFlap replaces the player's vertical velocity with the flap impulse.
func ApplyFlap(p *Player, velocity float64) {
	p.VelocityY = velocity
}

// HitsGround reports whether the player has fallen below the board.
// There is deliberately no matching ceiling check.
func HitsGround(p Player, boardHeight float64) bool {
	return p.Y > boardHeight-p.H
}

// Collides reports whether the player overlaps the obstacle.
func Collides(p Player, o Obstacle) bool {
	return p.Rect().Intersects(o.Rect())
}
