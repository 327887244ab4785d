package testing

import (
	"testing"
	"time"

	"golang.org/x/net/html"

	"github.com/go-drift/playerui/pkg/config"
	"github.com/go-drift/playerui/pkg/dom"
	"github.com/go-drift/playerui/pkg/errors"
	"github.com/go-drift/playerui/pkg/player"
)

// FrameDuration is how far Pump advances the scheduler. It is long enough
// for ready callbacks, which are deferred by a millisecond.
const FrameDuration = 16 * time.Millisecond

// Tester builds a player in a headless document and drives it with a fake
// scheduler. Runtime error reports are recorded instead of logged.
type Tester struct {
	sched  *FakeScheduler
	doc    *dom.Document
	cfg    *config.Config
	player *player.Player

	reports     []*errors.ComponentError
	panics      []*errors.PanicError
	prevHandler errors.ErrorHandler
}

// NewTester creates a tester with the default configuration.
// Call Cleanup() when done, or use NewTesterWithT() instead.
func NewTester() *Tester {
	sched := NewFakeScheduler()
	cfg, err := config.Default()
	if err != nil {
		cfg = &config.Config{}
	}
	t := &Tester{
		sched: sched,
		doc:   dom.NewDocument(dom.WithClock(sched)),
		cfg:   cfg,
	}
	t.prevHandler = errors.SetHandler(t)
	return t
}

// NewTesterWithT creates a tester that auto-cleans up via t.Cleanup().
// This is the recommended constructor for tests.
func NewTesterWithT(t *testing.T) *Tester {
	tester := NewTester()
	t.Cleanup(tester.Cleanup)
	return tester
}

// Cleanup disposes the player and restores the error handler.
func (t *Tester) Cleanup() {
	if t.player != nil {
		t.player.Dispose()
		t.player = nil
	}
	errors.SetHandler(t.prevHandler)
}

// Config returns the configuration the next Mount uses.
func (t *Tester) Config() *config.Config {
	return t.cfg
}

// Configure edits the configuration the next Mount uses.
func (t *Tester) Configure(edit func(cfg *config.Config)) {
	edit(t.cfg)
}

// Scheduler returns the fake scheduler.
func (t *Tester) Scheduler() *FakeScheduler {
	return t.sched
}

// Document returns the headless document.
func (t *Tester) Document() *dom.Document {
	return t.doc
}

// Mount builds (or rebuilds) the player and pumps one frame so it is ready.
func (t *Tester) Mount(opts ...player.Option) *player.Player {
	if t.player != nil {
		t.player.Dispose()
	}
	opts = append([]player.Option{player.WithScheduler(t.sched)}, opts...)
	t.player = player.New(t.doc, t.cfg, opts...)
	t.Pump()
	return t.player
}

// Player returns the mounted player.
func (t *Tester) Player() *player.Player {
	return t.player
}

// Pump advances the scheduler by one frame.
func (t *Tester) Pump() {
	t.sched.Advance(FrameDuration)
}

// Advance moves the scheduler forward by d.
func (t *Tester) Advance(d time.Duration) {
	t.sched.Advance(d)
}

// Find evaluates a finder against the whole document.
func (t *Tester) Find(finder Finder) FinderResult {
	return FinderResult{
		nodes:  finder.Evaluate(t.doc.Root()),
		finder: finder,
	}
}

// SetRect records the layout box of the first node matched by finder.
func (t *Tester) SetRect(finder Finder, r dom.Rect) *html.Node {
	n := t.Find(finder).FirstOrNil()
	if n != nil {
		t.doc.SetRect(n, r)
	}
	return n
}

// ListenerCount returns the number of eventType handlers on node.
func (t *Tester) ListenerCount(node *html.Node, eventType string) int {
	return t.doc.Events().ListenerCount(node, eventType)
}

// DocumentListeners returns the number of eventType handlers on the
// document node.
func (t *Tester) DocumentListeners(eventType string) int {
	return t.ListenerCount(t.doc.Root(), eventType)
}

// ListenerTargets returns the number of nodes holding any handler.
func (t *Tester) ListenerTargets() int {
	return t.doc.Events().Targets()
}

// Reports returns the runtime errors reported since the last ClearReports.
func (t *Tester) Reports() []*errors.ComponentError {
	return t.reports
}

// ReportsOf returns the recorded reports of one kind.
func (t *Tester) ReportsOf(kind errors.ErrorKind) []*errors.ComponentError {
	var out []*errors.ComponentError
	for _, r := range t.reports {
		if r.Kind == kind {
			out = append(out, r)
		}
	}
	return out
}

// Panics returns the recovered panics.
func (t *Tester) Panics() []*errors.PanicError {
	return t.panics
}

// ClearReports forgets recorded reports and panics.
func (t *Tester) ClearReports() {
	t.reports = nil
	t.panics = nil
}

// HandleError records err.
func (t *Tester) HandleError(err *errors.ComponentError) {
	t.reports = append(t.reports, err)
}

// HandlePanic records err.
func (t *Tester) HandlePanic(err *errors.PanicError) {
	t.panics = append(t.panics, err)
}
