package core

// Cue names a side effect (usually a sound) that the simulation requests
// without knowing how it is produced.
type Cue string

// CuePlayer performs cues. Implementations must not block the caller.
type CuePlayer interface {
	Play(cue Cue)
}

// NopCuePlayer ignores every cue.
type NopCuePlayer struct{}

// Play does nothing.
func (NopCuePlayer) Play(Cue) {}

// Sprite is a multi-frame glyph picture. Each frame is a list of rows.
type Sprite struct {
	Frames [][]string
	Color  Color
}

// Frame returns frame i wrapped modulo the frame count.
func (s Sprite) Frame(i int) []string {
	if len(s.Frames) == 0 {
		return nil
	}
	if i < 0 {
		i = -i
	}
	return s.Frames[i%len(s.Frames)]
}
