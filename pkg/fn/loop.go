package fn

import "sync"

// Loop is the dispatch queue of a UI loop. Dispatch is safe from any
// goroutine; queued callbacks run only when the loop goroutine calls Drain.
type Loop struct {
	mu    sync.Mutex
	queue []func()
	wake  chan struct{}
}

// DefaultLoop receives callbacks of a SystemScheduler without a Post hook.
var DefaultLoop = NewLoop()

// NewLoop returns an empty loop.
func NewLoop() *Loop {
	return &Loop{wake: make(chan struct{}, 1)}
}

// Dispatch schedules f to run on the next Drain.
func (l *Loop) Dispatch(f func()) {
	if f == nil {
		return
	}
	l.mu.Lock()
	l.queue = append(l.queue, f)
	l.mu.Unlock()
	select {
	case l.wake <- struct{}{}:
	default:
	}
}

// Wake receives a value after Dispatch queued work. Hosts select on it to
// know when to call Drain.
func (l *Loop) Wake() <-chan struct{} {
	return l.wake
}

// Pending returns the number of queued callbacks.
func (l *Loop) Pending() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.queue)
}

// Drain runs the callbacks queued so far on the calling goroutine and
// returns how many ran. Callbacks dispatched while draining wait for the
// next Drain.
func (l *Loop) Drain() int {
	l.mu.Lock()
	callbacks := append([]func(){}, l.queue...)
	l.queue = nil
	l.mu.Unlock()
	for _, f := range callbacks {
		f()
	}
	return len(callbacks)
}
