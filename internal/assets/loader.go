package assets

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/log"
)

// Job loads one named asset.
type Job struct {
	Name string
	Load func() (any, error)
}

// Result is the outcome of one Job. Value is nil when Err is set.
type Result struct {
	Name    string
	Value   any
	Err     error
	Elapsed time.Duration
}

// Loader runs asset jobs concurrently.
type Loader struct {
	logger *log.Logger
}

// NewLoader creates a loader that reports failures to logger. A nil logger
// discards them.
func NewLoader(logger *log.Logger) *Loader {
	return &Loader{logger: logger}
}

// Names returns the job names in order, for seeding a Tracker.
func Names(jobs []Job) []string {
	names := make([]string, len(jobs))
	for i, j := range jobs {
		names[i] = j.Name
	}
	return names
}

// Load starts one goroutine per job and returns a channel that yields every
// result and is closed once all jobs have finished. Results are dropped
// once ctx is cancelled.
func (l *Loader) Load(ctx context.Context, jobs []Job) <-chan Result {
	out := make(chan Result, len(jobs))

	var wg sync.WaitGroup
	for _, job := range jobs {
		wg.Add(1)
		go func(job Job) {
			defer wg.Done()
			res := l.run(job)
			select {
			case out <- res:
			case <-ctx.Done():
			}
		}(job)
	}

	go func() {
		wg.Wait()
		close(out)
	}()
	return out
}

func (l *Loader) run(job Job) (res Result) {
	start := time.Now()
	res.Name = job.Name
	defer func() {
		if r := recover(); r != nil {
			res.Value = nil
			res.Err = fmt.Errorf("asset %s: panic: %v", job.Name, r)
		}
		res.Elapsed = time.Since(start)
		if res.Err != nil && l.logger != nil {
			l.logger.Warn("asset failed to load, using fallback", "asset", job.Name, "error", res.Err)
		}
	}()

	res.Value, res.Err = job.Load()
	if res.Err != nil {
		res.Value = nil
	}
	return res
}

// SpriteJobs returns one job per sprite name, each reading from the sheet
// at path (or the embedded sheet when path is empty).
func SpriteJobs(path string, names ...string) []Job {
	jobs := make([]Job, len(names))
	for i, name := range names {
		jobs[i] = Job{
			Name: SpriteAsset(name),
			Load: func() (any, error) {
				data, err := ReadSpriteSheet(path)
				if err != nil {
					return nil, err
				}
				return ParseSprite(data, name)
			},
		}
	}
	return jobs
}

const (
	spritePrefix = "sprite:"
	soundPrefix  = "sound:"
)

// SpriteAsset returns the tracker name for a sprite.
func SpriteAsset(name string) string {
	return spritePrefix + name
}

// SoundAsset returns the tracker name for a sound.
func SoundAsset(name string) string {
	return soundPrefix + name
}

// SpriteName strips the sprite prefix from an asset name.
func SpriteName(asset string) (string, bool) {
	return strings.CutPrefix(asset, spritePrefix)
}

// SoundName strips the sound prefix from an asset name.
func SoundName(asset string) (string, bool) {
	return strings.CutPrefix(asset, soundPrefix)
}
