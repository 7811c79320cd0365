package analyzer

import (
	"context"
	"sync/atomic"
)

// ProgressFunc receives progress updates: items done, total, and the path of
// the item just finished.
type ProgressFunc func(current, total int, path string)

// Tracker counts analysis progress. Safe for concurrent use.
type Tracker struct {
	total    atomic.Int32
	current  atomic.Int32
	callback ProgressFunc
}

// NewTracker creates a tracker that invokes callback on every Tick.
func NewTracker(callback ProgressFunc) *Tracker {
	return &Tracker{callback: callback}
}

// SetTotal sets the expected item count.
func (t *Tracker) SetTotal(n int) {
	t.total.Store(int32(n))
}

// Tick marks one item as completed.
func (t *Tracker) Tick(path string) {
	current := int(t.current.Add(1))
	if t.callback != nil {
		t.callback(current, int(t.total.Load()), path)
	}
}

// Current returns the number of completed items.
func (t *Tracker) Current() int {
	return int(t.current.Load())
}

// Total returns the expected item count.
func (t *Tracker) Total() int {
	return int(t.total.Load())
}

type trackerKey struct{}

// WithTracker attaches a progress tracker to the context.
func WithTracker(ctx context.Context, t *Tracker) context.Context {
	return context.WithValue(ctx, trackerKey{}, t)
}

// TrackerFromContext extracts the tracker, or nil if none was attached.
func TrackerFromContext(ctx context.Context) *Tracker {
	if t, ok := ctx.Value(trackerKey{}).(*Tracker); ok {
		return t
	}
	return nil
}
