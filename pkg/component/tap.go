package component

import (
	"math"
	"time"

	"github.com/go-drift/playerui/pkg/events"
	"github.com/go-drift/playerui/pkg/fn"
)

const (
	tapMovementThreshold = 10
	tapTimeThreshold     = 200 * time.Millisecond
)

// EmitTapEvents makes the component trigger "tap" for short single touches
// that do not drift. A touch ending within 200ms of its start and within
// 10px of where it began is a tap; its touchend has its default prevented.
func (c *Component) EmitTapEvents() {
	if c.misuse("component.EmitTapEvents") {
		return
	}
	var (
		first      *events.Touch
		start      time.Time
		couldBeTap bool
	)
	c.On(nil, "touchstart", fn.New(func(e *events.Event) {
		if len(e.Touches) != 1 {
			return
		}
		t := e.Touches[0]
		first = &t
		start = c.Now()
		couldBeTap = true
	}))
	c.On(nil, "touchmove", fn.New(func(e *events.Event) {
		if len(e.Touches) > 1 {
			couldBeTap = false
			return
		}
		if first == nil || len(e.Touches) == 0 {
			return
		}
		dx := e.Touches[0].PageX - first.PageX
		dy := e.Touches[0].PageY - first.PageY
		if math.Hypot(dx, dy) > tapMovementThreshold {
			couldBeTap = false
		}
	}))
	c.On(nil, "touchleave touchcancel", fn.New(func(*events.Event) {
		couldBeTap = false
	}))
	c.On(nil, "touchend", fn.New(func(e *events.Event) {
		first = nil
		if !couldBeTap {
			return
		}
		couldBeTap = false
		if c.Now().Sub(start) < tapTimeThreshold {
			e.PreventDefault()
			c.Trigger("tap", nil)
		}
	}))
}
