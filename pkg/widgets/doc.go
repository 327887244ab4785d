// Package widgets contains the player controls built on package component:
// Button and its Tooltip, the control bar with its progress control and
// seek bar, the mouse time display, and the play toggle.
//
// Each widget embeds *component.Component and injects its element and
// behavior through component.Hooks. Register installs every widget in a
// registry under its component name.
package widgets

import "github.com/go-drift/playerui/pkg/component"

// Register installs the widgets of this package in reg.
func Register(reg *component.Registry) {
	reg.Register("Button", func(p component.Player, opts component.Options) component.Widget {
		return NewButton(p, opts)
	})
	reg.Register("Tooltip", func(p component.Player, opts component.Options) component.Widget {
		return NewTooltip(p, opts)
	})
	reg.Register("ControlBar", func(p component.Player, opts component.Options) component.Widget {
		return NewControlBar(p, opts)
	})
	reg.Register("ProgressControl", func(p component.Player, opts component.Options) component.Widget {
		return NewProgressControl(p, opts)
	})
	reg.Register("SeekBar", func(p component.Player, opts component.Options) component.Widget {
		return NewSeekBar(p, opts)
	})
	reg.Register("MouseTimeDisplay", func(p component.Player, opts component.Options) component.Widget {
		return NewMouseTimeDisplay(p, opts)
	})
	reg.Register("PlayToggle", func(p component.Player, opts component.Options) component.Widget {
		return NewPlayToggle(p, opts)
	})
}
