package component

import (
	"time"

	"golang.org/x/net/html"

	"github.com/go-drift/playerui/pkg/dom"
	"github.com/go-drift/playerui/pkg/events"
)

// readyDelay defers ready callbacks past the current dispatch.
const readyDelay = time.Millisecond

// TimerID identifies a timeout or interval started by a component.
type TimerID uint64

// Dispose tears the component down: a non-bubbling "dispose" event fires on
// the element, children are disposed last-added first, timers stop,
// disposers run in reverse order, and every node under the element loses
// its data and is removed before the element itself is detached. Calling
// Dispose again does nothing.
func (c *Component) Dispose() {
	if c == nil || c.disposed {
		return
	}
	bus := c.doc.Events()
	bus.Trigger(c.el, &events.Event{Type: "dispose"})

	children := c.children
	c.children = nil
	clear(c.byID)
	clear(c.byName)
	for i := len(children) - 1; i >= 0; i-- {
		children[i].Dispose()
	}

	for id, stop := range c.timers {
		stop()
		delete(c.timers, id)
	}
	c.readyQueue = nil

	c.runDisposers()
	c.disposed = true

	if c.parent != nil {
		c.parent.RemoveChild(c.self)
		c.parent = nil
	}
	c.releaseTree(c.el)
	dom.Detach(c.el)
	c.el = nil
	c.contentEl = nil
	c.player = nil
	c.logger.Debug().Msg("disposed")
}

func (c *Component) releaseTree(n *html.Node) {
	if n == nil {
		return
	}
	for child := n.FirstChild; child != nil; child = child.NextSibling {
		c.releaseTree(child)
	}
	c.doc.RemoveElData(n)
	dom.RemoveChildren(n)
}

// Ready runs f once the component is ready, or soon after if it already is.
func (c *Component) Ready(f func()) {
	if c.misuse("component.Ready") || f == nil {
		return
	}
	if c.ready {
		c.SetTimeout(f, readyDelay)
		return
	}
	c.readyQueue = append(c.readyQueue, f)
}

// IsReady reports whether TriggerReady has run.
func (c *Component) IsReady() bool { return c.ready }

// TriggerReady marks the component ready. Queued Ready callbacks run and a
// non-bubbling "ready" event fires after a short delay on the scheduler.
func (c *Component) TriggerReady() {
	if c.misuse("component.TriggerReady") || c.ready {
		return
	}
	c.ready = true
	c.SetTimeout(func() {
		queue := c.readyQueue
		c.readyQueue = nil
		for _, f := range queue {
			f()
		}
		if !c.disposed {
			c.TriggerEvent(&events.Event{Type: "ready"})
		}
	}, readyDelay)
}

// SetTimeout runs f after d unless the component is disposed first.
func (c *Component) SetTimeout(f func(), d time.Duration) TimerID {
	if c.misuse("component.SetTimeout") || f == nil {
		return 0
	}
	c.nextTimer++
	id := c.nextTimer
	c.timers[id] = c.Scheduler().AfterFunc(d, func() {
		// A callback already queued on the loop may outlive ClearTimeout.
		if _, ok := c.timers[id]; !ok || c.disposed {
			return
		}
		delete(c.timers, id)
		f()
	})
	return id
}

// ClearTimeout cancels a pending timeout. Unknown ids are ignored.
func (c *Component) ClearTimeout(id TimerID) {
	if stop, ok := c.timers[id]; ok {
		stop()
		delete(c.timers, id)
	}
}

// SetInterval runs f every d until cleared or the component is disposed.
func (c *Component) SetInterval(f func(), d time.Duration) TimerID {
	if c.misuse("component.SetInterval") || f == nil || d <= 0 {
		return 0
	}
	c.nextTimer++
	id := c.nextTimer
	var tick func()
	tick = func() {
		if c.disposed {
			return
		}
		if _, ok := c.timers[id]; !ok {
			return
		}
		c.timers[id] = c.Scheduler().AfterFunc(d, tick)
		f()
	}
	c.timers[id] = c.Scheduler().AfterFunc(d, tick)
	return id
}

// ClearInterval stops an interval.
func (c *Component) ClearInterval(id TimerID) {
	c.ClearTimeout(id)
}
