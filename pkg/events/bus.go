package events

import (
	"strings"
	"time"

	"golang.org/x/net/html"

	"github.com/go-drift/playerui/pkg/errors"
	"github.com/go-drift/playerui/pkg/fn"
)

// targetData holds the handlers registered on one node.
type targetData struct {
	handlers map[string][]Listener
}

// Bus stores listeners per target node and dispatches events to them.
//
// Bus is NOT thread-safe. Like the rest of the runtime it must only be used
// from the UI loop.
type Bus struct {
	data  map[*html.Node]*targetData
	clock fn.Clock
}

// NewBus creates an empty bus. A nil clock uses system time.
func NewBus(clock fn.Clock) *Bus {
	if clock == nil {
		clock = fn.SystemScheduler{}
	}
	return &Bus{
		data:  make(map[*html.Node]*targetData),
		clock: clock,
	}
}

// On registers l for each space-separated type in eventTypes.
func (b *Bus) On(target *html.Node, eventTypes string, l Listener) {
	if target == nil || l.IsZero() {
		return
	}
	for _, typ := range strings.Fields(eventTypes) {
		td := b.data[target]
		if td == nil {
			td = &targetData{handlers: make(map[string][]Listener)}
			b.data[target] = td
		}
		td.handlers[typ] = append(td.handlers[typ], l)
	}
}

// One registers l to run at most once per type. The registration shares l's
// GUID, so Off with l removes it before it fires.
func (b *Bus) One(target *html.Node, eventTypes string, l Listener) {
	if target == nil || l.IsZero() {
		return
	}
	for _, typ := range strings.Fields(eventTypes) {
		typ := typ
		var once Listener
		once = fn.WithGUID(l.GUID(), func(e *Event) {
			b.Off(target, typ, once)
			l.Call(e)
		})
		b.On(target, typ, once)
	}
}

// Off removes listeners from target.
//
// An empty eventTypes removes every handler of the target. A zero l removes
// every handler of the given types. Otherwise only handlers sharing l's GUID
// are removed. Removing something that is not registered is a no-op.
func (b *Bus) Off(target *html.Node, eventTypes string, l Listener) {
	td := b.data[target]
	if td == nil {
		return
	}
	if eventTypes == "" {
		delete(b.data, target)
		return
	}
	for _, typ := range strings.Fields(eventTypes) {
		handlers := td.handlers[typ]
		if len(handlers) == 0 {
			continue
		}
		if l.IsZero() {
			delete(td.handlers, typ)
			continue
		}
		kept := handlers[:0:0]
		for _, h := range handlers {
			if h.GUID() != l.GUID() {
				kept = append(kept, h)
			}
		}
		if len(kept) == 0 {
			delete(td.handlers, typ)
		} else {
			td.handlers[typ] = kept
		}
	}
	if len(td.handlers) == 0 {
		delete(b.data, target)
	}
}

// Trigger dispatches evt on target and, while the event bubbles and
// propagation is not stopped, on each ancestor. It returns false if a
// handler prevented the default action.
func (b *Bus) Trigger(target *html.Node, evt *Event) bool {
	if target == nil || evt == nil {
		return true
	}
	if evt.Target == nil {
		evt.Target = target
	}
	if evt.TimeStamp.IsZero() {
		evt.TimeStamp = b.now()
	}
	for node := target; node != nil; node = node.Parent {
		b.dispatch(node, evt)
		if evt.IsPropagationStopped() || !evt.Bubbles {
			break
		}
	}
	return !evt.IsDefaultPrevented()
}

func (b *Bus) dispatch(node *html.Node, evt *Event) {
	td := b.data[node]
	if td == nil {
		return
	}
	handlers := td.handlers[evt.Type]
	if len(handlers) == 0 {
		return
	}
	// Handlers added or removed during dispatch take effect on the next event.
	snapshot := make([]Listener, len(handlers))
	copy(snapshot, handlers)

	evt.CurrentTarget = node
	for _, h := range snapshot {
		if evt.IsImmediatePropagationStopped() {
			break
		}
		call(h, evt)
	}
}

func call(h Listener, evt *Event) {
	defer errors.RecoverListener("events.Trigger", evt.Type)
	h.Call(evt)
}

// Cleanup removes all data held for target.
func (b *Bus) Cleanup(target *html.Node) {
	delete(b.data, target)
}

// HasData reports whether target has any registered handler.
func (b *Bus) HasData(target *html.Node) bool {
	_, ok := b.data[target]
	return ok
}

// ListenerCount returns the number of handlers for eventType on target.
func (b *Bus) ListenerCount(target *html.Node, eventType string) int {
	td := b.data[target]
	if td == nil {
		return 0
	}
	return len(td.handlers[eventType])
}

// TotalListeners returns the number of handlers on target across all types.
func (b *Bus) TotalListeners(target *html.Node) int {
	td := b.data[target]
	if td == nil {
		return 0
	}
	n := 0
	for _, hs := range td.handlers {
		n += len(hs)
	}
	return n
}

// Targets returns the number of nodes with registered handlers.
func (b *Bus) Targets() int {
	return len(b.data)
}

func (b *Bus) now() time.Time {
	return b.clock.Now()
}
