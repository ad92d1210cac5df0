package flappy

import (
	"fmt"

	"github.com/vovakirdan/flappy-arcade/internal/core"
)

// Sprite names looked up by Render.
const (
	SpriteBird      = "bird"
	SpritePipeUpper = "pipe_upper"
	SpritePipeLower = "pipe_lower"
	SpriteGround    = "ground"
)

// Fallback glyph and colors used when a sprite is missing.
const (
	FallbackChar = '█'
	GroundChar   = '═'
)

var fallbackColors = map[string]core.Color{
	SpriteBird:      core.ColorBrightYellow,
	SpritePipeUpper: core.ColorGreen,
	SpritePipeLower: core.ColorGreen,
	SpriteGround:    core.ColorOrange,
}

// SpriteSource provides glyph sprites by name.
type SpriteSource interface {
	Sprite(name string) (core.Sprite, bool)
}

// Render draws the snapshot onto dst. The board is scaled to every row but
// the last, which holds the ground. Missing sprites degrade to solid boxes.
func Render(dst *core.Screen, snap Snapshot, sprites SpriteSource) {
	dst.Clear()
	w, h := dst.Width(), dst.Height()-1
	if w <= 0 || h <= 0 || snap.Board.W <= 0 || snap.Board.H <= 0 {
		return
	}
	sx := snap.Board.W / float64(w)
	sy := snap.Board.H / float64(h)

	for _, o := range snap.Obstacles {
		drawPipe(dst, o, sx, sy, h, sprites)
	}
	drawGround(dst, h, sprites)
	drawBird(dst, snap, sx, sy, sprites)

	// Draw HUD
	if snap.Running || snap.GameOver {
		dst.DrawTextCentered(0, fmt.Sprintf(" %d ", snap.Score))
	}
}

func lookup(sprites SpriteSource, name string) (core.Sprite, bool) {
	if sprites == nil {
		return core.Sprite{}, false
	}
	sp, ok := sprites.Sprite(name)
	if !ok || len(sp.Frame(0)) == 0 || sp.Frame(0)[0] == "" {
		return core.Sprite{}, false
	}
	return sp, true
}

// drawPipe fills the obstacle's cells. A pipe sprite's first row is the
// body pattern and its second row, if present, is the cap drawn on the edge
// facing the opening.
func drawPipe(dst *core.Screen, o ObstacleView, sx, sy float64, boardRows int, sprites SpriteSource) {
	name := SpritePipeLower
	if o.Role == RoleUpper {
		name = SpritePipeUpper
	}
	x0, y0, x1, y1 := o.Rect.Scale(sx, sy)
	y0, y1 = max(y0, 0), min(y1, boardRows)
	if y0 >= y1 {
		return
	}

	sp, ok := lookup(sprites, name)
	if !ok {
		dst.FillRect(x0, y0, x1, y1, FallbackChar, fallbackColors[name])
		return
	}

	rows := sp.Frame(0)
	body := []rune(rows[0])
	capRow := body
	if len(rows) > 1 && rows[1] != "" {
		capRow = []rune(rows[1])
	}
	capY := y0
	if o.Role == RoleUpper {
		capY = y1 - 1
	}
	for y := y0; y < y1; y++ {
		pattern := body
		if y == capY {
			pattern = capRow
		}
		for x := x0; x < x1; x++ {
			dst.SetColored(x, y, pattern[(x-x0)%len(pattern)], sp.Color)
		}
	}
}

func drawGround(dst *core.Screen, row int, sprites SpriteSource) {
	sp, ok := lookup(sprites, SpriteGround)
	if !ok {
		dst.DrawHLine(0, row, dst.Width(), GroundChar, fallbackColors[SpriteGround])
		return
	}
	pattern := []rune(sp.Frame(0)[0])
	for x := 0; x < dst.Width(); x++ {
		dst.SetColored(x, row, pattern[x%len(pattern)], sp.Color)
	}
}

// drawBird centers the current animation frame on the player's box.
func drawBird(dst *core.Screen, snap Snapshot, sx, sy float64, sprites SpriteSource) {
	x0, y0, x1, y1 := snap.Player.Scale(sx, sy)

	sp, ok := lookup(sprites, SpriteBird)
	if !ok {
		dst.FillRect(x0, y0, x1, y1, FallbackChar, fallbackColors[SpriteBird])
		return
	}

	rows := sp.Frame(snap.AnimFrame)
	cx, cy := (x0+x1)/2, (y0+y1)/2
	top := cy - len(rows)/2
	for dy, row := range rows {
		runes := []rune(row)
		left := cx - len(runes)/2
		for dx, r := range runes {
			if r == ' ' {
				continue
			}
			dst.SetColored(left+dx, top+dy, r, sp.Color)
		}
	}
}
