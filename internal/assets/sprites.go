package assets

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/flappy-arcade/internal/core"
)

//go:embed defaults/sprites.yaml
var defaultSpritesYAML []byte

// ErrSpriteNotFound is returned when a sheet does not define a sprite.
var ErrSpriteNotFound = errors.New("sprite not found")

// ErrInvalidSprite is returned for sprites with no drawable frame or an
// unknown color.
var ErrInvalidSprite = errors.New("invalid sprite")

type spriteFile struct {
	Sprites map[string]spriteDef `yaml:"sprites"`
}

type spriteDef struct {
	Color  string     `yaml:"color"`
	Frames [][]string `yaml:"frames"`
}

// SpriteSheet holds the sprites that have loaded so far. Missing entries
// are drawn with the renderer's fallback boxes.
type SpriteSheet struct {
	sprites map[string]core.Sprite
}

// NewSpriteSheet creates an empty sheet.
func NewSpriteSheet() *SpriteSheet {
	return &SpriteSheet{sprites: make(map[string]core.Sprite)}
}

// Sprite returns the sprite registered under name.
func (s *SpriteSheet) Sprite(name string) (core.Sprite, bool) {
	sp, ok := s.sprites[name]
	return sp, ok
}

// Set registers sp under name.
func (s *SpriteSheet) Set(name string, sp core.Sprite) {
	s.sprites[name] = sp
}

// Apply stores a sprite job's result. It reports whether res carried a
// sprite.
func (s *SpriteSheet) Apply(res Result) bool {
	name, ok := SpriteName(res.Name)
	if !ok || res.Err != nil {
		return false
	}
	sp, ok := res.Value.(core.Sprite)
	if !ok {
		return false
	}
	s.sprites[name] = sp
	return true
}

// Len returns the number of loaded sprites.
func (s *SpriteSheet) Len() int {
	return len(s.sprites)
}

// DefaultSpritesYAML returns the embedded sprite sheet.
func DefaultSpritesYAML() []byte {
	return defaultSpritesYAML
}

// ReadSpriteSheet returns the override file at path, or the embedded sheet
// when path is empty.
func ReadSpriteSheet(path string) ([]byte, error) {
	if path == "" {
		return defaultSpritesYAML, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read sprite sheet %s: %w", path, err)
	}
	return data, nil
}

// ParseSprite decodes a sprite sheet and returns the sprite called name.
func ParseSprite(data []byte, name string) (core.Sprite, error) {
	var file spriteFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return core.Sprite{}, fmt.Errorf("failed to parse sprite sheet: %w", err)
	}

	def, ok := file.Sprites[name]
	if !ok {
		return core.Sprite{}, fmt.Errorf("%w: %s", ErrSpriteNotFound, name)
	}
	return def.sprite(name)
}

func (d spriteDef) sprite(name string) (core.Sprite, error) {
	if len(d.Frames) == 0 {
		return core.Sprite{}, fmt.Errorf("%w: %s has no frames", ErrInvalidSprite, name)
	}
	for i, frame := range d.Frames {
		if len(frame) == 0 || frame[0] == "" {
			return core.Sprite{}, fmt.Errorf("%w: %s frame %d is empty", ErrInvalidSprite, name, i)
		}
	}

	color := core.ColorDefault
	if d.Color != "" {
		c, ok := core.ParseColor(d.Color)
		if !ok {
			return core.Sprite{}, fmt.Errorf("%w: %s has unknown color %q", ErrInvalidSprite, name, d.Color)
		}
		color = c
	}
	return core.Sprite{Frames: d.Frames, Color: color}, nil
}
