package widgets

import (
	"math"
	"strconv"

	"golang.org/x/net/html"

	"github.com/go-drift/playerui/pkg/component"
	"github.com/go-drift/playerui/pkg/dom"
	"github.com/go-drift/playerui/pkg/events"
	"github.com/go-drift/playerui/pkg/fn"
	"github.com/go-drift/playerui/pkg/timefmt"
)

// SeekBar is the slider representing the playback position. It keeps its
// ARIA value in step with the player's time updates.
type SeekBar struct {
	*component.Component
}

// NewSeekBar creates a seek bar holding a mouse time display.
func NewSeekBar(p component.Player, opts component.Options) *SeekBar {
	s := &SeekBar{}
	s.Component = component.New(p, opts, component.Hooks{
		Self: s,
		Defaults: component.Options{
			Name:     "SeekBar",
			Children: component.Children("MouseTimeDisplay"),
		},
		CreateEl: func(c *component.Component) *html.Node {
			return c.CreateEl("div", dom.Props{
				ClassName: component.BuildCSSClass("vjs-progress-holder vjs-slider", c.Options().ClassName),
				TabIndex:  dom.TabIndex(0),
				Role:      "slider",
			}, dom.Attrs{
				"aria-label":     c.Localize("Progress Bar"),
				"aria-valuemin":  "0",
				"aria-valuemax":  "100",
				"aria-valuenow":  "0",
				"aria-valuetext": timefmt.FormatTime(0, p.Duration()),
			})
		},
	})
	s.On(p, "timeupdate durationchange", fn.Bind(s, (*SeekBar).update))
	return s
}

// Percent returns the played fraction in [0, 1].
func (s *SeekBar) Percent() float64 {
	p := s.Player()
	if p == nil || p.Duration() <= 0 {
		return 0
	}
	return math.Min(1, math.Max(0, p.CurrentTime()/p.Duration()))
}

func (s *SeekBar) update(*events.Event) {
	if s.IsDisposed() {
		return
	}
	p := s.Player()
	el := s.El()
	dom.SetAttr(el, "aria-valuenow", strconv.FormatFloat(s.Percent()*100, 'f', 2, 64))
	dom.SetAttr(el, "aria-valuetext",
		timefmt.FormatTime(p.CurrentTime(), p.Duration())+" "+s.Localize("of")+" "+timefmt.FormatTime(p.Duration(), p.Duration()))
}
