// Package assets loads the game's sprites and sounds and tracks when they
// have all resolved.
package assets

import "sort"

// Status is the load state of one tracked asset.
type Status int

const (
	StatusPending Status = iota
	StatusLoaded
	StatusFailed
)

// String returns the status name.
func (s Status) String() string {
	switch s {
	case StatusPending:
		return "pending"
	case StatusLoaded:
		return "loaded"
	case StatusFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Tracker records which named assets have resolved. It is ready once every
// tracked name has resolved, successfully or not. A tracker with no names is
// ready immediately.
//
// Tracker is not safe for concurrent use; resolve results on the goroutine
// that owns the game session.
type Tracker struct {
	status  map[string]Status
	errs    map[string]error
	onReady []func()
	fired   bool
}

// NewTracker creates a tracker waiting on the given names.
func NewTracker(names ...string) *Tracker {
	t := &Tracker{
		status: make(map[string]Status, len(names)),
		errs:   make(map[string]error),
	}
	for _, name := range names {
		t.status[name] = StatusPending
	}
	return t
}

// Resolve marks name as loaded (err == nil) or failed. Unknown names and
// names that already resolved are ignored. It reports whether this call
// made the tracker ready.
func (t *Tracker) Resolve(name string, err error) bool {
	st, ok := t.status[name]
	if !ok || st != StatusPending {
		return false
	}
	if err != nil {
		t.status[name] = StatusFailed
		t.errs[name] = err
	} else {
		t.status[name] = StatusLoaded
	}

	if !t.Ready() {
		return false
	}
	t.fire()
	return true
}

// Ready reports whether no tracked asset is still pending.
func (t *Tracker) Ready() bool {
	for _, st := range t.status {
		if st == StatusPending {
			return false
		}
	}
	return true
}

// OnReady registers fn to run once the tracker becomes ready. If it already
// is, fn runs immediately.
func (t *Tracker) OnReady(fn func()) {
	if t.Ready() {
		t.fired = true
		fn()
		return
	}
	t.onReady = append(t.onReady, fn)
}

func (t *Tracker) fire() {
	if t.fired {
		return
	}
	t.fired = true
	fns := t.onReady
	t.onReady = nil
	for _, fn := range fns {
		fn()
	}
}

// Status returns the state of name and whether it is tracked.
func (t *Tracker) Status(name string) (Status, bool) {
	st, ok := t.status[name]
	return st, ok
}

// Err returns the load error recorded for a failed asset.
func (t *Tracker) Err(name string) error {
	return t.errs[name]
}

// Progress returns the number of resolved assets and the total tracked.
func (t *Tracker) Progress() (done, total int) {
	for _, st := range t.status {
		if st != StatusPending {
			done++
		}
	}
	return done, len(t.status)
}

// Pending returns the sorted names still loading.
func (t *Tracker) Pending() []string {
	return t.names(StatusPending)
}

// Failed returns the sorted names that failed to load.
func (t *Tracker) Failed() []string {
	return t.names(StatusFailed)
}

func (t *Tracker) names(want Status) []string {
	var out []string
	for name, st := range t.status {
		if st == want {
			out = append(out, name)
		}
	}
	sort.Strings(out)
	return out
}
