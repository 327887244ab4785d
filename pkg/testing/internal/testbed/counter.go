// Package testbed provides internal test widgets for the testing framework.
package testbed

import (
	"strconv"

	"github.com/go-drift/playerui/pkg/component"
	"github.com/go-drift/playerui/pkg/events"
	"github.com/go-drift/playerui/pkg/widgets"
)

// Counter is a button whose label counts its activations.
type Counter struct {
	*widgets.Button
	count int
	// OnCount is called after each activation.
	OnCount func(count int)
}

// NewCounter creates a counter starting at zero.
func NewCounter(p component.Player, opts component.Options) *Counter {
	c := &Counter{}
	c.Button = widgets.NewButtonWith(p, opts, widgets.ButtonConfig{
		Self:      c,
		Defaults:  component.Options{Name: "Counter", ControlText: "0"},
		ClassName: "test-counter",
		HandleClick: func(*events.Event) {
			c.count++
			c.SetControlText(strconv.Itoa(c.count))
			if c.OnCount != nil {
				c.OnCount(c.count)
			}
		},
	})
	return c
}

// Count returns the number of activations.
func (c *Counter) Count() int {
	return c.count
}

// Plugin installs Counter under its name.
func Plugin() component.Plugin {
	return component.Plugin{
		Name:     "Counter",
		Requires: "v1.0.0",
		Factory: func(p component.Player, opts component.Options) component.Widget {
			return NewCounter(p, opts)
		},
	}
}
