package component

import (
	"slices"
	"strings"

	"golang.org/x/net/html"

	"github.com/go-drift/playerui/pkg/events"
	"github.com/go-drift/playerui/pkg/fn"
)

// Binding is the handle of one On or One registration. Releasing it removes
// exactly the listeners it added. Bindings on nodes other than the
// component's own element are released when the component is disposed, and
// bindings on another widget are also released when that widget is disposed.
type Binding struct {
	owner    *Component
	bus      *events.Bus
	node     *html.Node
	types    []string
	listener events.Listener

	unregister func()
	cleanup    []func()
	released   bool
}

// Listener returns the registered listener.
func (b *Binding) Listener() events.Listener {
	if b == nil {
		return events.Listener{}
	}
	return b.listener
}

// Released reports whether every type of the binding has been removed.
func (b *Binding) Released() bool {
	return b == nil || b.released
}

// Release removes the binding. Releasing twice is a no-op.
func (b *Binding) Release() {
	if b == nil || b.released {
		return
	}
	b.bus.Off(b.node, strings.Join(b.types, " "), b.listener)
	b.types = nil
	b.finish()
}

// releaseTypes removes the given types only; the binding finishes when none
// remain.
func (b *Binding) releaseTypes(types []string) {
	if b == nil || b.released {
		return
	}
	var removed []string
	b.types = slices.DeleteFunc(b.types, func(t string) bool {
		if slices.Contains(types, t) {
			removed = append(removed, t)
			return true
		}
		return false
	})
	if len(removed) > 0 {
		b.bus.Off(b.node, strings.Join(removed, " "), b.listener)
	}
	if len(b.types) == 0 {
		b.finish()
	}
}

func (b *Binding) finish() {
	b.released = true
	for _, f := range b.cleanup {
		f()
	}
	b.cleanup = nil
	if b.unregister != nil {
		b.unregister()
		b.unregister = nil
	}
	if b.owner != nil {
		b.owner.external = slices.DeleteFunc(b.owner.external, func(x *Binding) bool { return x == b })
	}
}

// On registers l for the space-separated eventTypes on target. A nil target
// means the component's own element.
func (c *Component) On(target Target, eventTypes string, l events.Listener) *Binding {
	if c.misuse("component.On") {
		return nil
	}
	node := c.resolve(target)
	types := strings.Fields(eventTypes)
	if node == nil || len(types) == 0 || l.IsZero() {
		return nil
	}
	bus := c.doc.Events()
	bus.On(node, eventTypes, l)

	b := &Binding{bus: bus, node: node, types: types, listener: l}
	if node != c.el {
		c.track(b, target)
	}
	return b
}

// One registers l to fire at most once per type. The registration shares
// l's GUID, so Off(target, type, l) removes it before it fires.
func (c *Component) One(target Target, eventTypes string, l events.Listener) *Binding {
	if c.misuse("component.One") || l.IsZero() {
		return nil
	}
	var b *Binding
	once := fn.WithGUID(l.GUID(), func(e *events.Event) {
		b.releaseTypes([]string{e.Type})
		l.Call(e)
	})
	b = c.On(target, eventTypes, once)
	return b
}

// Off removes listeners from target. An empty eventTypes removes every
// listener of the target; a zero l removes every listener of the types.
// Otherwise only listeners sharing l's GUID are removed.
func (c *Component) Off(target Target, eventTypes string, l events.Listener) {
	if c.misuse("component.Off") {
		return
	}
	node := c.resolve(target)
	if node == nil {
		return
	}
	c.doc.Events().Off(node, eventTypes, l)

	types := strings.Fields(eventTypes)
	for _, b := range slices.Clone(c.external) {
		if b.node != node || (!l.IsZero() && b.listener.GUID() != l.GUID()) {
			continue
		}
		if len(types) == 0 {
			b.types = nil
			b.finish()
			continue
		}
		b.releaseTypes(types)
	}
}

func (c *Component) resolve(target Target) *html.Node {
	if target == nil {
		return c.el
	}
	return target.El()
}

// track files an external binding on the disposer list. When target is
// another widget, its dispose event releases the binding too.
func (c *Component) track(b *Binding, target Target) {
	b.owner = c
	c.external = append(c.external, b)
	b.unregister = c.OnDispose(b.Release)

	w, ok := target.(Widget)
	if !ok || w.Base() == nil || w.Base() == c {
		return
	}
	targetEl := w.El()
	onTargetDispose := fn.New(func(*events.Event) { b.Release() })
	b.bus.On(targetEl, "dispose", onTargetDispose)
	b.cleanup = append(b.cleanup, func() {
		b.bus.Off(targetEl, "dispose", onTargetDispose)
	})
}

// OnDispose registers cleanup to run when the component is disposed and
// returns a function that unregisters it. Cleanups run in reverse order of
// registration. On a disposed component cleanup runs immediately.
func (c *Component) OnDispose(cleanup func()) func() {
	if cleanup == nil {
		return func() {}
	}
	if c.disposed {
		cleanup()
		return func() {}
	}
	index := len(c.disposers)
	c.disposers = append(c.disposers, cleanup)
	return func() {
		if index < len(c.disposers) {
			c.disposers[index] = nil
		}
	}
}

func (c *Component) runDisposers() {
	for i := len(c.disposers) - 1; i >= 0; i-- {
		if d := c.disposers[i]; d != nil {
			c.disposers[i] = nil
			d()
		}
	}
	c.disposers = nil
}
