package fn

import "time"

// Clock provides time. The default implementation uses system time. Tests
// inject a fake clock to control throttling and tap detection deterministically.
type Clock interface {
	Now() time.Time
}

// Scheduler runs callbacks after a delay. Callbacks must be delivered on the
// UI loop; stop reports whether the callback was prevented from running.
type Scheduler interface {
	Clock
	AfterFunc(d time.Duration, f func()) (stop func() bool)
}

// SystemScheduler schedules with time.AfterFunc. Timer callbacks fire on
// their own goroutine, so each one is handed to Post, which must queue it
// onto the UI loop. A nil Post queues on DefaultLoop.
type SystemScheduler struct {
	Post func(func())
}

// Now returns the current system time.
func (SystemScheduler) Now() time.Time { return time.Now() }

// AfterFunc schedules f after d.
func (s SystemScheduler) AfterFunc(d time.Duration, f func()) func() bool {
	post := s.Post
	if post == nil {
		post = DefaultLoop.Dispatch
	}
	t := time.AfterFunc(d, func() { post(f) })
	return t.Stop
}
