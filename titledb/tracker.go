package titledb

import (
	"context"
	"sync"
)

// Tracker hands out one cancellation scope per view
// Starting a lookup for a view cancels whatever that view was previously waiting on,
// so a slow answer for a title the user has already moved away from is dropped
type Tracker struct {
	sync.Mutex
	views map[string]*viewLookup
}

type viewLookup struct {
	cancel context.CancelFunc
}

func NewTracker() *Tracker {
	return &Tracker{views: make(map[string]*viewLookup)}
}

// Begin returns the context for a new lookup on the view, and a done func to release it
func (t *Tracker) Begin(parent context.Context, view string) (context.Context, func()) {
	ctx, cancel := context.WithCancel(parent)
	current := &viewLookup{cancel: cancel}

	t.Lock()
	if previous, ok := t.views[view]; ok {
		previous.cancel()
	}
	t.views[view] = current
	t.Unlock()

	done := func() {
		cancel()
		t.Lock()
		defer t.Unlock()
		if t.views[view] == current {
			delete(t.views, view)
		}
	}
	return ctx, done
}

// Pending is the number of views with a lookup in flight
func (t *Tracker) Pending() int {
	t.Lock()
	defer t.Unlock()
	return len(t.views)
}
