package assets

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/flappy-arcade/internal/core"
)

func collect(ch <-chan Result) map[string]Result {
	out := make(map[string]Result)
	for res := range ch {
		out[res.Name] = res
	}
	return out
}

func TestLoaderRunsEveryJob(t *testing.T) {
	jobs := []Job{
		{Name: "ok", Load: func() (any, error) { return 7, nil }},
		{Name: "fail", Load: func() (any, error) { return 7, errors.New("boom") }},
		{Name: "panic", Load: func() (any, error) { panic("bad asset") }},
	}

	results := collect(NewLoader(nil).Load(context.Background(), jobs))
	if len(results) != 3 {
		t.Fatalf("results = %d, expected 3", len(results))
	}

	if r := results["ok"]; r.Err != nil || r.Value != 7 {
		t.Errorf("ok = %+v", r)
	}
	if r := results["fail"]; r.Err == nil || r.Value != nil {
		t.Errorf("fail = %+v, expected error and nil value", r)
	}
	if r := results["panic"]; r.Err == nil {
		t.Error("a panicking job should resolve as failed")
	}
}

func TestLoaderFeedsTracker(t *testing.T) {
	jobs := SpriteJobs("", "bird", "ground", "missing")
	tr := NewTracker(Names(jobs)...)
	sheet := NewSpriteSheet()

	for res := range NewLoader(nil).Load(context.Background(), jobs) {
		sheet.Apply(res)
		tr.Resolve(res.Name, res.Err)
	}

	if !tr.Ready() {
		t.Fatalf("tracker not ready, pending %v", tr.Pending())
	}
	if got := tr.Failed(); len(got) != 1 || got[0] != SpriteAsset("missing") {
		t.Errorf("Failed() = %v, expected only the missing sprite", got)
	}
	if sheet.Len() != 2 {
		t.Errorf("loaded sprites = %d, expected 2", sheet.Len())
	}
	if sp, ok := sheet.Sprite("bird"); !ok || sp.Color != core.ColorBrightYellow {
		t.Errorf("bird not applied under its sprite name: %+v", sp)
	}
}

func TestSpriteJobsBadPath(t *testing.T) {
	jobs := SpriteJobs(filepath.Join(t.TempDir(), "nope.yaml"), "bird")
	results := collect(NewLoader(nil).Load(context.Background(), jobs))
	if results[SpriteAsset("bird")].Err == nil {
		t.Error("unreadable sheet should fail the sprite")
	}
}

func TestLoaderCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	block := make(chan struct{})
	jobs := []Job{{Name: "slow", Load: func() (any, error) { <-block; return nil, nil }}}
	ch := NewLoader(nil).Load(ctx, jobs)
	close(block)

	// Channel must still close; the result may or may not be delivered.
	for range ch {
	}
}
