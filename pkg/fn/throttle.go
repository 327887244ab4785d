package fn

import "time"

// Throttled rate-limits a Func to at most one invocation per wait interval.
//
// The first call runs immediately. Calls arriving inside the interval do not
// queue: each replaces the pending argument, and a single trailing call with
// the latest argument runs when the interval closes.
type Throttled[E any] struct {
	f     Func[E]
	wait  time.Duration
	sched Scheduler

	last       time.Time
	invoked    bool
	pending    E
	hasPending bool
	stop       func() bool
	gen        uint64
}

// Throttle wraps f. The scheduler supplies both the clock and the trailing timer.
func Throttle[E any](f Func[E], wait time.Duration, sched Scheduler) *Throttled[E] {
	return &Throttled[E]{f: f, wait: wait, sched: sched}
}

// Func returns the throttled callable. It carries f's GUID, so it can be
// removed with the original binding.
func (t *Throttled[E]) Func() Func[E] {
	return WithGUID(t.f.GUID(), t.Call)
}

// Call invokes or defers f according to the throttle window.
func (t *Throttled[E]) Call(e E) {
	now := t.sched.Now()
	if !t.invoked || now.Sub(t.last) >= t.wait {
		t.stopTimer()
		t.hasPending = false
		t.invoke(e, now)
		return
	}
	t.pending = e
	t.hasPending = true
	if t.stop == nil {
		gen := t.gen
		t.stop = t.sched.AfterFunc(t.wait-now.Sub(t.last), func() { t.trailing(gen) })
	}
}

// Pending reports whether a trailing call is scheduled.
func (t *Throttled[E]) Pending() bool {
	return t.hasPending
}

// Cancel drops a scheduled trailing call.
func (t *Throttled[E]) Cancel() {
	t.stopTimer()
	var zero E
	t.pending = zero
	t.hasPending = false
}

// stopTimer drops the scheduled trailing call. Bumping gen also voids a
// callback that already fired and sits on the UI loop queue.
func (t *Throttled[E]) stopTimer() {
	if t.stop != nil {
		t.stop()
		t.stop = nil
	}
	t.gen++
}

func (t *Throttled[E]) trailing(gen uint64) {
	if gen != t.gen {
		return
	}
	t.stop = nil
	if !t.hasPending {
		return
	}
	e := t.pending
	var zero E
	t.pending = zero
	t.hasPending = false
	t.invoke(e, t.sched.Now())
}

func (t *Throttled[E]) invoke(e E, now time.Time) {
	t.last = now
	t.invoked = true
	t.f.Call(e)
}
