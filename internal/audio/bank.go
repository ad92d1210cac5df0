package audio

import (
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/flappy-arcade/internal/assets"
	"github.com/vovakirdan/flappy-arcade/internal/core"
)

// Output receives streamers to play.
type Output interface {
	Play(s ...beep.Streamer)
}

type speakerOutput struct{}

func (speakerOutput) Play(s ...beep.Streamer) { speaker.Play(s...) }

var (
	speakerOnce sync.Once
	speakerErr  error
)

// InitSpeaker opens the system speaker once per process. Later calls return
// the first result.
func InitSpeaker() error {
	speakerOnce.Do(func() {
		speakerErr = speaker.Init(SampleRate, SampleRate.N(time.Second/10))
	})
	return speakerErr
}

// Bank holds rendered cue buffers and plays them. A bank without an output
// is silent, as is any cue whose buffer failed to render.
type Bank struct {
	mu      sync.Mutex
	buffers map[core.Cue]*beep.Buffer
	out     Output
	logger  *log.Logger
}

// NewBank creates a bank playing through out. A nil out mutes it.
func NewBank(out Output, logger *log.Logger) *Bank {
	return &Bank{
		buffers: make(map[core.Cue]*beep.Buffer),
		out:     out,
		logger:  logger,
	}
}

// NewSpeakerBank opens the speaker and returns a bank playing through it.
// When the speaker is unavailable the bank is muted and the error is
// logged.
func NewSpeakerBank(logger *log.Logger) *Bank {
	if err := InitSpeaker(); err != nil {
		if logger != nil {
			logger.Warn("audio unavailable, cues muted", "error", err)
		}
		return NewBank(nil, logger)
	}
	return NewBank(speakerOutput{}, logger)
}

// Set stores the buffer for cue.
func (b *Bank) Set(cue core.Cue, buf *beep.Buffer) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.buffers[cue] = buf
}

// Apply stores a sound job's result. It reports whether res carried a
// buffer.
func (b *Bank) Apply(res assets.Result) bool {
	name, ok := assets.SoundName(res.Name)
	if !ok || res.Err != nil {
		return false
	}
	buf, ok := res.Value.(*beep.Buffer)
	if !ok || buf == nil {
		return false
	}
	b.Set(core.Cue(name), buf)
	return true
}

// Muted reports whether the bank has no output.
func (b *Bank) Muted() bool {
	return b.out == nil
}

// Play starts cue without blocking. Unknown or unloaded cues are ignored.
func (b *Bank) Play(cue core.Cue) {
	if b.out == nil {
		return
	}
	b.mu.Lock()
	buf, ok := b.buffers[cue]
	b.mu.Unlock()
	if !ok {
		if b.logger != nil {
			b.logger.Debug("cue not loaded", "cue", cue)
		}
		return
	}
	b.out.Play(buf.Streamer(0, buf.Len()))
}
