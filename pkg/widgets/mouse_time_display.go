package widgets

import (
	"math"
	"strconv"
	"time"

	"golang.org/x/net/html"

	"github.com/go-drift/playerui/pkg/component"
	"github.com/go-drift/playerui/pkg/dom"
	"github.com/go-drift/playerui/pkg/errors"
	"github.com/go-drift/playerui/pkg/events"
	"github.com/go-drift/playerui/pkg/fn"
	"github.com/go-drift/playerui/pkg/timefmt"
)

// MouseMoveInterval bounds how often pointer moves over the progress
// control are evaluated.
const MouseMoveInterval = 25 * time.Millisecond

// MouseTimeDisplay previews the time under the pointer while it moves over
// the progress control. It lives inside the seek bar; its tooltip is a bare
// node appended to the progress control once the player is ready, or right
// after construction when it already is.
type MouseTimeDisplay struct {
	*component.Component

	tooltip  *html.Node
	throttle *fn.Throttled[*events.Event]

	time            float64
	position        float64
	tooltipPosition float64
}

// NewMouseTimeDisplay creates the display at time zero.
func NewMouseTimeDisplay(p component.Player, opts component.Options) *MouseTimeDisplay {
	m := &MouseTimeDisplay{}
	m.Component = component.New(p, opts, component.Hooks{
		Self:     m,
		Defaults: component.Options{Name: "MouseTimeDisplay"},
		CreateEl: func(c *component.Component) *html.Node {
			m.tooltip = dom.CreateElement("div", dom.Props{ClassName: "vjs-mouse-display-tooltip"}, nil)
			return c.CreateEl("div", dom.Props{
				ClassName: component.BuildCSSClass("vjs-mouse-display", c.Options().ClassName),
			}, nil)
		},
	})
	m.throttle = fn.Throttle(fn.Bind(m, (*MouseTimeDisplay).HandleMouseMove), MouseMoveInterval, p.Scheduler())

	m.Update(0, 0, 0)
	p.Ready(m.attach)
	return m
}

// attach moves the tooltip into the progress control and starts tracking
// pointer moves over it. Without a progress control nothing happens.
func (m *MouseTimeDisplay) attach() {
	if m.IsDisposed() || m.tooltip.Parent != nil {
		return
	}
	progress := m.Player().Lookup("ControlBar", "ProgressControl")
	if progress == nil || progress.El() == nil {
		errors.ReportMissing("widgets.MouseTimeDisplay.attach", m.Name(), "component", "ControlBar.ProgressControl")
		return
	}
	dom.AppendChild(progress.El(), m.tooltip)
	m.On(progress, "mousemove", m.throttle.Func())
}

// HandleMouseMove computes the previewed time and both offsets from the
// pointer position and renders them.
func (m *MouseTimeDisplay) HandleMouseMove(e *events.Event) {
	if m.IsDisposed() {
		return
	}
	doc := m.Document()
	bar := m.El().Parent
	if bar == nil {
		return
	}
	seekBar := m.Player().Lookup("ControlBar", "ProgressControl", "SeekBar")
	if seekBar == nil {
		errors.ReportMissing("widgets.MouseTimeDisplay.HandleMouseMove", m.Name(), "component", "SeekBar")
		return
	}

	duration := m.Player().Duration()
	newTime := m.CalculateDistance(e) * duration

	maxLeft := doc.OffsetWidth(seekBar.El()) - m.Width()
	position := e.PageX - doc.FindPosition(bar).Left
	position = math.Min(math.Max(0, position), maxLeft)

	tooltipPosition := 0.0
	if container := m.tooltip.Parent; container != nil {
		tooltipWidth := doc.OffsetWidth(m.tooltip)
		maxTooltipLeft := doc.OffsetWidth(container) - tooltipWidth
		tooltipPosition = e.PageX - doc.FindPosition(container).Left - tooltipWidth/2
		tooltipPosition = math.Min(math.Max(0, tooltipPosition), maxTooltipLeft)
	}

	m.Update(newTime, position, tooltipPosition)
}

// CalculateDistance returns the horizontal pointer position within the
// seek bar, 0 at its left edge and 1 at its right edge.
func (m *MouseTimeDisplay) CalculateDistance(e *events.Event) float64 {
	if m.IsDisposed() {
		return 0
	}
	return m.Document().PointerPosition(m.El().Parent, e).X
}

// Update renders a previewed time and the two offsets.
func (m *MouseTimeDisplay) Update(newTime, position, tooltipPosition float64) {
	if m.IsDisposed() || m.tooltip == nil {
		return
	}
	m.time = newTime
	m.position = position
	m.tooltipPosition = tooltipPosition

	dom.SetStyle(m.El(), "left", px(position))
	dom.SetText(m.tooltip, timefmt.FormatTime(newTime, m.Player().Duration()))
	dom.SetStyle(m.tooltip, "left", px(tooltipPosition))
}

// Time returns the last previewed time.
func (m *MouseTimeDisplay) Time() float64 { return m.time }

// Position returns the last display offset.
func (m *MouseTimeDisplay) Position() float64 { return m.position }

// TooltipPosition returns the last tooltip offset.
func (m *MouseTimeDisplay) TooltipPosition() float64 { return m.tooltipPosition }

// TooltipEl returns the floating tooltip node, nil after disposal.
func (m *MouseTimeDisplay) TooltipEl() *html.Node { return m.tooltip }

// Dispose removes the tooltip node, which is not a child component, and
// then disposes the display.
func (m *MouseTimeDisplay) Dispose() {
	if m.IsDisposed() {
		return
	}
	m.throttle.Cancel()
	if m.tooltip != nil {
		dom.Detach(m.tooltip)
		m.Document().RemoveElData(m.tooltip)
		m.tooltip = nil
	}
	m.Component.Dispose()
}

func px(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64) + "px"
}
