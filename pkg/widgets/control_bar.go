package widgets

import (
	"golang.org/x/net/html"

	"github.com/go-drift/playerui/pkg/component"
	"github.com/go-drift/playerui/pkg/dom"
)

// ControlBar is the container of the player controls.
type ControlBar struct {
	*component.Component
}

// NewControlBar creates a control bar with a play toggle and a progress
// control unless the options name other children.
func NewControlBar(p component.Player, opts component.Options) *ControlBar {
	cb := &ControlBar{}
	cb.Component = component.New(p, opts, component.Hooks{
		Self: cb,
		Defaults: component.Options{
			Name:     "ControlBar",
			Children: component.Children("PlayToggle", "ProgressControl"),
		},
		CreateEl: func(c *component.Component) *html.Node {
			return c.CreateEl("div", dom.Props{
				ClassName: component.BuildCSSClass("vjs-control-bar", c.Options().ClassName),
				Extra:     map[string]string{"dir": "ltr"},
			}, dom.Attrs{"role": "group"})
		},
	})
	return cb
}

// ProgressControl hosts the seek bar and receives the pointer moves the
// mouse time display tracks.
type ProgressControl struct {
	*component.Component
}

// NewProgressControl creates a progress control holding a seek bar.
func NewProgressControl(p component.Player, opts component.Options) *ProgressControl {
	pc := &ProgressControl{}
	pc.Component = component.New(p, opts, component.Hooks{
		Self: pc,
		Defaults: component.Options{
			Name:     "ProgressControl",
			Children: component.Children("SeekBar"),
		},
		CreateEl: func(c *component.Component) *html.Node {
			return c.CreateEl("div", dom.Props{
				ClassName: component.BuildCSSClass("vjs-progress-control vjs-control", c.Options().ClassName),
			}, nil)
		},
	})
	return pc
}
