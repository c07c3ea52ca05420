package infra

import (
	"context"
	"sync"
)

// Deduplicator coalesces identical in-flight API requests. When several tool
// invocations ask for the same URL at the same time, only one outbound
// request is made and every waiter receives its result.
type Deduplicator struct {
	mu       sync.Mutex
	inflight map[string]*call
}

// call tracks one in-flight request and its waiters.
type call struct {
	done   chan struct{}
	result any
	err    error
}

// NewDeduplicator creates an empty deduplicator.
func NewDeduplicator() *Deduplicator {
	return &Deduplicator{inflight: make(map[string]*call)}
}

// Do executes fn unless a call with the same key is already running, in which
// case it waits for that call's result instead. The second return value
// reports whether the result was shared from another caller.
func (d *Deduplicator) Do(ctx context.Context, key string, fn func() (any, error)) (any, bool, error) {
	d.mu.Lock()
	if existing, ok := d.inflight[key]; ok {
		d.mu.Unlock()
		select {
		case <-existing.done:
			return existing.result, true, existing.err
		case <-ctx.Done():
			return nil, false, ctx.Err()
		}
	}

	cl := &call{done: make(chan struct{})}
	d.inflight[key] = cl
	d.mu.Unlock()

	cl.result, cl.err = fn()
	close(cl.done)

	d.mu.Lock()
	delete(d.inflight, key)
	d.mu.Unlock()

	return cl.result, false, cl.err
}

// InFlight returns the number of requests currently being deduplicated.
func (d *Deduplicator) InFlight() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.inflight)
}
