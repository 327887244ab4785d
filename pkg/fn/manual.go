package fn

import (
	"slices"
	"sync"
	"time"
)

// ManualScheduler is a Scheduler driven by Advance. Timers fire in due order
// on the goroutine calling Advance, which plays the UI loop. Headless hosts
// and tests use it to run time-dependent behavior deterministically.
type ManualScheduler struct {
	mu     sync.Mutex
	now    time.Time
	seq    uint64
	timers []*manualTimer
}

type manualTimer struct {
	at  time.Time
	seq uint64
	f   func()
}

// NewManualScheduler returns a scheduler whose clock starts at start.
func NewManualScheduler(start time.Time) *ManualScheduler {
	return &ManualScheduler{now: start}
}

// Now returns the scheduler time.
func (s *ManualScheduler) Now() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.now
}

// AfterFunc schedules f to run once Advance passes now+d.
func (s *ManualScheduler) AfterFunc(d time.Duration, f func()) func() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seq++
	t := &manualTimer{at: s.now.Add(d), seq: s.seq, f: f}
	s.timers = append(s.timers, t)
	return func() bool {
		s.mu.Lock()
		defer s.mu.Unlock()
		i := slices.Index(s.timers, t)
		if i < 0 {
			return false
		}
		s.timers = slices.Delete(s.timers, i, i+1)
		return true
	}
}

// Advance moves time forward by d, firing every timer that falls due,
// including timers scheduled by the callbacks themselves.
func (s *ManualScheduler) Advance(d time.Duration) {
	s.mu.Lock()
	target := s.now.Add(d)
	s.mu.Unlock()

	for {
		s.mu.Lock()
		next := s.nextDue(target)
		if next == nil {
			s.now = target
			s.mu.Unlock()
			return
		}
		s.timers = slices.DeleteFunc(s.timers, func(t *manualTimer) bool { return t == next })
		s.now = next.at
		s.mu.Unlock()

		next.f()
	}
}

// maxFlushRounds bounds Flush when callbacks keep rescheduling.
const maxFlushRounds = 1000

// Flush fires pending timers regardless of their due time, including the
// ones they schedule, for at most maxFlushRounds rounds.
func (s *ManualScheduler) Flush() {
	for range maxFlushRounds {
		s.mu.Lock()
		if len(s.timers) == 0 {
			s.mu.Unlock()
			return
		}
		last := slices.MaxFunc(s.timers, func(a, b *manualTimer) int { return a.at.Compare(b.at) })
		d := last.at.Sub(s.now)
		s.mu.Unlock()
		s.Advance(d)
	}
}

// PendingTimers returns the number of scheduled timers.
func (s *ManualScheduler) PendingTimers() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.timers)
}

func (s *ManualScheduler) nextDue(target time.Time) *manualTimer {
	var next *manualTimer
	for _, t := range s.timers {
		if t.at.After(target) {
			continue
		}
		if next == nil || t.at.Before(next.at) || (t.at.Equal(next.at) && t.seq < next.seq) {
			next = t
		}
	}
	return next
}
