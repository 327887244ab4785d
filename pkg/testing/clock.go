package testing

import (
	"sync"
	"time"

	"github.com/go-drift/playerui/pkg/fn"
)

// epoch is the start time of fake clocks.
var epoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

// FakeClock provides controllable time for deterministic tests.
// All methods are safe for concurrent use.
type FakeClock struct {
	mu  sync.Mutex
	now time.Time
}

// NewFakeClock returns a FakeClock starting at a fixed epoch.
func NewFakeClock() *FakeClock {
	return &FakeClock{now: epoch}
}

// Now returns the current fake time.
func (c *FakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

// Advance moves the clock forward by d.
func (c *FakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

// Set sets the clock to an exact time.
func (c *FakeClock) Set(t time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = t
}

// FakeScheduler is the scheduler the Tester drives.
type FakeScheduler = fn.ManualScheduler

// NewFakeScheduler returns a scheduler starting at the same epoch as
// NewFakeClock.
func NewFakeScheduler() *FakeScheduler {
	return fn.NewManualScheduler(epoch)
}
