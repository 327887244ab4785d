package widgets

import (
	"golang.org/x/net/html"

	"github.com/go-drift/playerui/pkg/component"
	"github.com/go-drift/playerui/pkg/dom"
	"github.com/go-drift/playerui/pkg/events"
	"github.com/go-drift/playerui/pkg/fn"
)

const tooltipVisibleClass = "vjs-tooltip-visible"

// Tooltip is a floating text element. It only shows and hides once a
// handler element is set with Handler.
type Tooltip struct {
	*component.Component

	text     string
	handler  *html.Node
	bindings []*component.Binding
}

// NewTooltip creates a hidden tooltip.
func NewTooltip(p component.Player, opts component.Options) *Tooltip {
	t := &Tooltip{}
	t.Component = component.New(p, opts, component.Hooks{
		Self:     t,
		Defaults: component.Options{Name: "Tooltip"},
		CreateEl: func(c *component.Component) *html.Node {
			return c.CreateEl("div", dom.Props{
				ClassName: component.BuildCSSClass("vjs-tooltip", c.Options().ClassName),
			}, dom.Attrs{"aria-hidden": "true"})
		},
	})
	return t
}

// Text returns the tooltip text.
func (t *Tooltip) Text() string {
	return t.text
}

// SetText replaces the tooltip content with the localized text.
func (t *Tooltip) SetText(v string) {
	if t.IsDisposed() {
		return
	}
	t.text = v
	dom.SetText(t.El(), t.Localize(v))
}

// Handler makes target's hover and focus control visibility. Bindings on
// a previous handler are released first.
func (t *Tooltip) Handler(target *html.Node) {
	if t.IsDisposed() {
		return
	}
	for _, b := range t.bindings {
		b.Release()
	}
	t.bindings = nil
	t.handler = target
	if target == nil {
		return
	}
	node := component.Node(target)
	t.bindings = append(t.bindings,
		t.On(node, "mouseenter focus", fn.Bind(t, (*Tooltip).show)),
		t.On(node, "mouseleave blur", fn.Bind(t, (*Tooltip).hide)),
	)
}

// HandlerEl returns the current handler element.
func (t *Tooltip) HandlerEl() *html.Node {
	return t.handler
}

// Visible reports whether the tooltip is shown.
func (t *Tooltip) Visible() bool {
	return t.HasClass(tooltipVisibleClass)
}

func (t *Tooltip) show(*events.Event) {
	t.AddClass(tooltipVisibleClass)
	dom.SetAttr(t.El(), "aria-hidden", "false")
}

func (t *Tooltip) hide(*events.Event) {
	t.RemoveClass(tooltipVisibleClass)
	dom.SetAttr(t.El(), "aria-hidden", "true")
}

// Dispose releases the handler bindings and disposes the tooltip.
func (t *Tooltip) Dispose() {
	t.bindings = nil
	t.handler = nil
	t.Component.Dispose()
}
