package audio

import (
	"errors"
	"fmt"
	"time"

	"github.com/gopxl/beep"

	"github.com/vovakirdan/flappy-arcade/internal/assets"
	"github.com/vovakirdan/flappy-arcade/internal/core"
	"github.com/vovakirdan/flappy-arcade/internal/games/flappy"
)

// SampleRate is the rate every cue is rendered at.
const SampleRate = beep.SampleRate(44100)

// ErrUnknownCue is returned when no recipe exists for a cue.
var ErrUnknownCue = errors.New("unknown cue")

// Cues lists every cue with a recipe.
var Cues = []core.Cue{flappy.CueWing, flappy.CuePoint, flappy.CueHit, flappy.CueDie, flappy.CueSwoosh}

// recipe builds the raw streamer for a cue.
type recipe func(rate beep.SampleRate) beep.Streamer

var recipes = map[core.Cue]recipe{
	// short upward flutter
	flappy.CueWing: func(rate beep.SampleRate) beep.Streamer {
		d := 70 * time.Millisecond
		osc := NewSweep(420, 760, d, WaveSaw, rate)
		return newVolume(NewEnvelope(osc, d, 5*time.Millisecond, 40*time.Millisecond, rate), 0.35)
	},
	// two-note chime, B5 then E6
	flappy.CuePoint: func(rate beep.SampleRate) beep.Streamer {
		d1, d2 := 60*time.Millisecond, 160*time.Millisecond
		n1 := NewEnvelope(NewOscillator(987.77, d1, WaveSquare, rate), d1, 2*time.Millisecond, 20*time.Millisecond, rate)
		n2 := NewEnvelope(NewOscillator(1318.51, d2, WaveSquare, rate), d2, 2*time.Millisecond, 120*time.Millisecond, rate)
		return newVolume(beep.Seq(n1, n2), 0.25)
	},
	// noise burst over a low thud
	flappy.CueHit: func(rate beep.SampleRate) beep.Streamer {
		d := 140 * time.Millisecond
		noise := NewEnvelope(NewOscillator(0, d, WaveNoise, rate), d, time.Millisecond, 110*time.Millisecond, rate)
		thud := NewEnvelope(NewSweep(160, 60, d, WaveSine, rate), d, time.Millisecond, 100*time.Millisecond, rate)
		return beep.Mix(newVolume(noise, 0.3), newVolume(thud, 0.6))
	},
	// falling whistle
	flappy.CueDie: func(rate beep.SampleRate) beep.Streamer {
		d := 450 * time.Millisecond
		osc := NewSweep(880, 110, d, WaveSine, rate)
		return newVolume(NewEnvelope(osc, d, 10*time.Millisecond, 200*time.Millisecond, rate), 0.4)
	},
	// soft noise swell
	flappy.CueSwoosh: func(rate beep.SampleRate) beep.Streamer {
		d := 220 * time.Millisecond
		noise := NewOscillator(0, d, WaveNoise, rate)
		return newVolume(NewEnvelope(noise, d, 120*time.Millisecond, 100*time.Millisecond, rate), 0.2)
	},
}

// Synthesize renders cue into a buffer at the given master volume.
func Synthesize(cue core.Cue, volume float64) (*beep.Buffer, error) {
	r, ok := recipes[cue]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownCue, cue)
	}

	format := beep.Format{SampleRate: SampleRate, NumChannels: 2, Precision: 2}
	buf := beep.NewBuffer(format)
	buf.Append(newVolume(r(SampleRate), volume))
	if buf.Len() == 0 {
		return nil, fmt.Errorf("cue %s rendered no samples", cue)
	}
	return buf, nil
}

// Jobs returns one asset job per cue. Results are applied with Bank.Apply.
func Jobs(volume float64) []assets.Job {
	jobs := make([]assets.Job, len(Cues))
	for i, cue := range Cues {
		jobs[i] = assets.Job{
			Name: assets.SoundAsset(string(cue)),
			Load: func() (any, error) {
				return Synthesize(cue, volume)
			},
		}
	}
	return jobs
}
