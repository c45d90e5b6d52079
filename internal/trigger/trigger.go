// Package trigger drives semantic search from keystrokes: it debounces input,
// gates short queries, and discards stale responses so a slow search for an
// old query can never overwrite results for a newer one.
package trigger

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/L8ton-crypto/appian-cheat/internal/search"
)

const (
	DefaultMinLength = 3
	DefaultDebounce  = 500 * time.Millisecond
)

// SearchFunc issues one search for the given text.
type SearchFunc func(ctx context.Context, text string) ([]search.Result, error)

// Options tunes a Trigger. Zero values take the defaults above.
type Options struct {
	MinLength int
	Debounce  time.Duration
}

// Trigger serializes one user session's search intent.
type Trigger struct {
	opts      Options
	search    SearchFunc
	onResults func([]search.Result)
	onError   func(error)

	mu      sync.Mutex
	timer   *time.Timer
	pending string
	seq     uint64
	loading bool
}

// New creates a trigger. onResults receives results for the newest query, or
// nil when the query is cleared; onError receives search failures (stale
// failures are dropped too).
func New(fn SearchFunc, onResults func([]search.Result), onError func(error), opts Options) *Trigger {
	if opts.MinLength <= 0 {
		opts.MinLength = DefaultMinLength
	}
	if opts.Debounce <= 0 {
		opts.Debounce = DefaultDebounce
	}
	if onError == nil {
		onError = func(error) {}
	}
	return &Trigger{opts: opts, search: fn, onResults: onResults, onError: onError}
}

// Input registers a keystroke. Queries shorter than MinLength (after trimming)
// cancel pending work and clear results; anything else re-arms the debounce
// timer.
func (t *Trigger) Input(text string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.stopTimer()
	trimmed := strings.TrimSpace(text)
	if len(trimmed) < t.opts.MinLength {
		t.pending = ""
		t.seq++ // orphan any in-flight response
		t.loading = false
		go t.onResults(nil)
		return
	}

	t.pending = trimmed
	t.timer = time.AfterFunc(t.opts.Debounce, func() {
		t.mu.Lock()
		defer t.mu.Unlock()
		t.issueLocked()
	})
}

// Flush issues the pending query immediately (the Enter shortcut), bypassing
// the debounce timer.
func (t *Trigger) Flush() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.stopTimer()
	t.issueLocked()
}

// Activate handles switching into semantic mode with text already typed: a
// non-trivial query is issued immediately.
func (t *Trigger) Activate(text string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.stopTimer()
	trimmed := strings.TrimSpace(text)
	if len(trimmed) < t.opts.MinLength {
		return
	}
	t.pending = trimmed
	t.issueLocked()
}

// Loading reports whether a search for the newest query is in flight.
func (t *Trigger) Loading() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.loading
}

// Close cancels any pending timer. In-flight responses are discarded.
func (t *Trigger) Close() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.stopTimer()
	t.seq++
	t.loading = false
}

func (t *Trigger) stopTimer() {
	if t.timer != nil {
		t.timer.Stop()
		t.timer = nil
	}
}

// issueLocked starts a search for the pending text. Caller holds t.mu.
func (t *Trigger) issueLocked() {
	if t.pending == "" {
		return
	}
	text := t.pending
	t.seq++
	mine := t.seq
	t.loading = true

	go func() {
		results, err := t.search(context.Background(), text)

		t.mu.Lock()
		stale := mine != t.seq
		if !stale {
			t.loading = false
		}
		t.mu.Unlock()
		if stale {
			return
		}

		if err != nil {
			t.onError(err)
			return
		}
		t.onResults(results)
	}()
}
