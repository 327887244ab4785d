// Package events dispatches DOM-style events over the document model.
//
// Listeners are fn.Func values: removal matches by GUID, never by function
// equality. Every target keeps its handlers in registration order, and
// dispatch bubbles from the target through its ancestors unless the event
// does not bubble or a handler stops propagation.
package events

import (
	"time"

	"golang.org/x/net/html"

	"github.com/go-drift/playerui/pkg/fn"
)

// Listener is an event handler with a stable identity.
type Listener = fn.Func[*Event]

// Key codes recognised by activation handlers.
const (
	KeyEnter = 13
	KeySpace = 32
)

// Touch is a single touch point in page coordinates.
type Touch struct {
	PageX float64
	PageY float64
}

// Event is a normalized event. Handlers may mutate the propagation and
// default-action flags; everything else is informational.
type Event struct {
	// Type is the event name ("click", "mousemove", "ready").
	Type string
	// Target is the node the event was triggered on.
	Target *html.Node
	// CurrentTarget is the node whose handlers are running.
	CurrentTarget *html.Node
	// PageX and PageY are the pointer position in page coordinates.
	PageX float64
	PageY float64
	// Which is the key code for keyboard events.
	Which int
	// Touches are the active touch points; ChangedTouches those that changed.
	Touches        []Touch
	ChangedTouches []Touch
	// Bubbles controls whether dispatch continues to ancestors.
	Bubbles bool
	// Detail carries data for synthetic events.
	Detail any
	// TimeStamp is set on dispatch when zero.
	TimeStamp time.Time

	defaultPrevented            bool
	propagationStopped          bool
	immediatePropagationStopped bool
}

// New returns a bubbling event of the given type.
func New(eventType string) *Event {
	return &Event{Type: eventType, Bubbles: true}
}

// NewMouse returns a bubbling pointer event at page coordinates.
func NewMouse(eventType string, pageX, pageY float64) *Event {
	return &Event{Type: eventType, Bubbles: true, PageX: pageX, PageY: pageY}
}

// NewKey returns a bubbling keyboard event.
func NewKey(eventType string, which int) *Event {
	return &Event{Type: eventType, Bubbles: true, Which: which}
}

// NewTouch returns a bubbling touch event. The touches are both the active
// and the changed touches.
func NewTouch(eventType string, touches ...Touch) *Event {
	return &Event{Type: eventType, Bubbles: true, Touches: touches, ChangedTouches: touches}
}

// PreventDefault suppresses the default action.
func (e *Event) PreventDefault() { e.defaultPrevented = true }

// IsDefaultPrevented reports whether PreventDefault was called.
func (e *Event) IsDefaultPrevented() bool { return e.defaultPrevented }

// StopPropagation stops dispatch to ancestors after the current target.
func (e *Event) StopPropagation() { e.propagationStopped = true }

// IsPropagationStopped reports whether StopPropagation was called.
func (e *Event) IsPropagationStopped() bool { return e.propagationStopped }

// StopImmediatePropagation also skips the remaining handlers on the current target.
func (e *Event) StopImmediatePropagation() {
	e.immediatePropagationStopped = true
	e.propagationStopped = true
}

// IsImmediatePropagationStopped reports whether StopImmediatePropagation was called.
func (e *Event) IsImmediatePropagationStopped() bool { return e.immediatePropagationStopped }
