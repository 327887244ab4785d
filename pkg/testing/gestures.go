package testing

import (
	"fmt"
	"time"

	"golang.org/x/net/html"

	"github.com/go-drift/playerui/pkg/dom"
	"github.com/go-drift/playerui/pkg/events"
)

// TapDuration is how long a simulated tap keeps the finger down.
const TapDuration = 50 * time.Millisecond

// Dispatch triggers evt on node and returns false if a handler prevented
// the default action.
func (t *Tester) Dispatch(node *html.Node, evt *events.Event) bool {
	return t.doc.Events().Trigger(node, evt)
}

// Click simulates a click on the first element matched by finder.
func (t *Tester) Click(finder Finder) error {
	node := t.Find(finder).FirstOrNil()
	if node == nil {
		return fmt.Errorf("Click: finder matched no elements: %s", finder.Description())
	}
	t.ClickNode(node)
	return nil
}

// ClickNode simulates a click at the center of node.
func (t *Tester) ClickNode(node *html.Node) bool {
	x, y := t.center(node)
	return t.Dispatch(node, events.NewMouse("click", x, y))
}

// Tap simulates a short touch on the first element matched by finder.
func (t *Tester) Tap(finder Finder) error {
	node := t.Find(finder).FirstOrNil()
	if node == nil {
		return fmt.Errorf("Tap: finder matched no elements: %s", finder.Description())
	}
	t.TapNode(node)
	return nil
}

// TapNode touches node at its center and lifts after TapDuration. It
// returns whether the touchend kept its default action.
func (t *Tester) TapNode(node *html.Node) bool {
	x, y := t.center(node)
	touch := events.Touch{PageX: x, PageY: y}
	t.Dispatch(node, events.NewTouch("touchstart", touch))
	t.sched.Advance(TapDuration)
	end := &events.Event{Type: "touchend", Bubbles: true, ChangedTouches: []events.Touch{touch}}
	return t.Dispatch(node, end)
}

// Drag touches node at from, moves to to and lifts after d.
func (t *Tester) Drag(node *html.Node, from, to events.Touch, d time.Duration) bool {
	t.Dispatch(node, events.NewTouch("touchstart", from))
	t.Dispatch(node, events.NewTouch("touchmove", to))
	t.sched.Advance(d)
	end := &events.Event{Type: "touchend", Bubbles: true, ChangedTouches: []events.Touch{to}}
	return t.Dispatch(node, end)
}

// MouseMove dispatches a mousemove at page coordinates on node.
func (t *Tester) MouseMove(node *html.Node, pageX, pageY float64) {
	t.Dispatch(node, events.NewMouse("mousemove", pageX, pageY))
}

// Hover dispatches a non-bubbling mouseenter on node.
func (t *Tester) Hover(node *html.Node) {
	t.Dispatch(node, &events.Event{Type: "mouseenter"})
}

// Unhover dispatches a non-bubbling mouseleave on node.
func (t *Tester) Unhover(node *html.Node) {
	t.Dispatch(node, &events.Event{Type: "mouseleave"})
}

// Focus dispatches a non-bubbling focus on node.
func (t *Tester) Focus(node *html.Node) {
	t.Dispatch(node, &events.Event{Type: "focus"})
}

// Blur dispatches a non-bubbling blur on node.
func (t *Tester) Blur(node *html.Node) {
	t.Dispatch(node, &events.Event{Type: "blur"})
}

// KeyDown dispatches a keydown with the given key code on the document
// node, where focused controls listen. It returns false if a handler
// prevented the default action.
func (t *Tester) KeyDown(which int) bool {
	return t.Dispatch(t.doc.Root(), events.NewKey("keydown", which))
}

func (t *Tester) center(node *html.Node) (float64, float64) {
	r, ok := t.doc.RectOf(node)
	if !ok {
		return 0, 0
	}
	return r.Left + r.Width/2, r.Top + r.Height/2
}

// Rect is shorthand for a dom.Rect.
func Rect(left, top, width, height float64) dom.Rect {
	return dom.Rect{Left: left, Top: top, Width: width, Height: height}
}
