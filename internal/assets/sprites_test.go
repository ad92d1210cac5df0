package assets

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/flappy-arcade/internal/core"
)

func TestEmbeddedSheetHasGameSprites(t *testing.T) {
	for _, name := range []string{"bird", "pipe_upper", "pipe_lower", "ground"} {
		sp, err := ParseSprite(DefaultSpritesYAML(), name)
		if err != nil {
			t.Errorf("ParseSprite(%q) error: %v", name, err)
			continue
		}
		if len(sp.Frames) == 0 {
			t.Errorf("%s has no frames", name)
		}
	}

	bird, _ := ParseSprite(DefaultSpritesYAML(), "bird")
	if len(bird.Frames) != 4 {
		t.Errorf("bird frames = %d, expected 4", len(bird.Frames))
	}
	if bird.Color != core.ColorBrightYellow {
		t.Errorf("bird color = %v, expected bright yellow", bird.Color)
	}
}

func TestParseSpriteErrors(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		sprite  string
		wantErr error
	}{
		{
			name:    "missing sprite",
			yaml:    "sprites:\n  bird:\n    frames: [['>']]\n",
			sprite:  "ground",
			wantErr: ErrSpriteNotFound,
		},
		{
			name:    "no frames",
			yaml:    "sprites:\n  bird:\n    color: red\n",
			sprite:  "bird",
			wantErr: ErrInvalidSprite,
		},
		{
			name:    "empty frame",
			yaml:    "sprites:\n  bird:\n    frames: [['']]\n",
			sprite:  "bird",
			wantErr: ErrInvalidSprite,
		},
		{
			name:    "unknown color",
			yaml:    "sprites:\n  bird:\n    color: plaid\n    frames: [['>']]\n",
			sprite:  "bird",
			wantErr: ErrInvalidSprite,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseSprite([]byte(tt.yaml), tt.sprite)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ParseSprite() error = %v, expected %v", err, tt.wantErr)
			}
		})
	}

	if _, err := ParseSprite([]byte("sprites: [unclosed"), "bird"); err == nil {
		t.Error("malformed YAML should fail")
	}
}

func TestReadSpriteSheetOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sprites.yaml")
	data := "sprites:\n  bird:\n    color: cyan\n    frames: [['B']]\n"
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}

	raw, err := ReadSpriteSheet(path)
	if err != nil {
		t.Fatalf("ReadSpriteSheet() error: %v", err)
	}
	sp, err := ParseSprite(raw, "bird")
	if err != nil {
		t.Fatalf("ParseSprite() error: %v", err)
	}
	if sp.Frame(0)[0] != "B" || sp.Color != core.ColorCyan {
		t.Errorf("override sprite = %+v", sp)
	}

	if _, err := ReadSpriteSheet(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("missing override should fail")
	}
}

func TestSpriteSheet(t *testing.T) {
	sheet := NewSpriteSheet()
	if _, ok := sheet.Sprite("bird"); ok {
		t.Error("empty sheet should not have sprites")
	}

	sheet.Set("bird", core.Sprite{Frames: [][]string{{">"}}})
	if _, ok := sheet.Sprite("bird"); !ok || sheet.Len() != 1 {
		t.Error("Set sprite not found")
	}
}
