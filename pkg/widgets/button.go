package widgets

import (
	"golang.org/x/net/html"

	"github.com/go-drift/playerui/pkg/component"
	"github.com/go-drift/playerui/pkg/dom"
	"github.com/go-drift/playerui/pkg/errors"
	"github.com/go-drift/playerui/pkg/events"
	"github.com/go-drift/playerui/pkg/fn"
)

// needText is returned by ControlText when no label was ever set.
const needText = "Need Text"

// ButtonConfig lets widgets built on Button stack their own element
// defaults and activation behavior on top of Button's.
type ButtonConfig struct {
	// Self is the widget embedding the Button.
	Self component.Widget
	// Defaults are the built-in options of the concrete widget.
	Defaults component.Options
	// Tag overrides the element tag. Defaults to "button".
	Tag string
	// ClassName is placed before Button's own classes.
	ClassName string
	// Props and Attrs override Button's element defaults.
	Props dom.Props
	Attrs dom.Attrs
	// HandleClick runs on click, tap and keyboard activation.
	HandleClick func(e *events.Event)
}

// Button is a focusable control activated by click, tap, Space or Enter.
//
// While a Button has focus it holds exactly one keydown binding on the
// document; blur releases it. Once the button has a label and a tooltip
// handler resolves to an element, a Tooltip child is attached.
type Button struct {
	*component.Component

	handleClick   func(e *events.Event)
	controlTextEl *html.Node
	controlText   string
	tooltip       *Tooltip

	keyListener events.Listener
	keyBinding  *component.Binding
}

// NewButton creates a plain Button.
func NewButton(p component.Player, opts component.Options) *Button {
	return NewButtonWith(p, opts, ButtonConfig{})
}

// NewButtonWith creates a Button customised by cfg.
func NewButtonWith(p component.Player, opts component.Options, cfg ButtonConfig) *Button {
	b := &Button{handleClick: cfg.HandleClick}
	self := cfg.Self
	if self == nil {
		self = b
	}
	defaults := component.Options{Name: "Button"}.Merge(cfg.Defaults)
	b.Component = component.New(p, opts, component.Hooks{
		Self:     self,
		Defaults: defaults,
		CreateEl: func(c *component.Component) *html.Node {
			return b.createEl(c, cfg)
		},
	})

	b.keyListener = fn.Bind(b, (*Button).handleKeyPress)

	b.appendTooltip()
	b.EmitTapEvents()
	b.On(nil, "tap click", fn.Bind(b, (*Button).HandleClick))
	b.On(nil, "focus", fn.Bind(b, (*Button).handleFocus))
	b.On(nil, "blur", fn.Bind(b, (*Button).handleBlur))
	return b
}

func (b *Button) createEl(c *component.Component, cfg ButtonConfig) *html.Node {
	tag := cfg.Tag
	if tag == "" {
		tag = "button"
	}
	props := dom.Props{
		ClassName: component.BuildCSSClass(cfg.ClassName, "vjs-control vjs-button", c.Options().ClassName),
		TabIndex:  dom.TabIndex(0),
		Role:      "button",
	}.Merge(cfg.Props)
	attrs := dom.MergeAttrs(dom.Attrs{
		"type":      "button",
		"aria-live": "polite",
	}, cfg.Attrs)

	el := c.CreateEl(tag, props, attrs)
	if el == nil {
		return nil
	}
	b.controlTextEl = dom.CreateElement("span", dom.Props{ClassName: "vjs-control-text"}, nil)
	dom.AppendChild(el, b.controlTextEl)

	if text := c.Options().ControlText; text != "" {
		b.controlText = text
		dom.SetInnerHTML(b.controlTextEl, c.Localize(text))
	}
	return el
}

// ControlText returns the accessible label, or "Need Text" if none was set.
func (b *Button) ControlText() string {
	if b.controlText == "" {
		return needText
	}
	return b.controlText
}

// SetControlText sets the accessible label. An empty text changes nothing.
// The label is localized when rendered; a tooltip follows the raw text.
func (b *Button) SetControlText(text string) {
	if text == "" {
		return
	}
	if b.IsDisposed() {
		errors.ReportMisuse("widgets.Button.SetControlText", b.Name())
		return
	}
	b.controlText = text
	dom.SetInnerHTML(b.controlTextEl, b.Localize(text))

	if b.tooltip != nil {
		b.tooltip.SetText(text)
		return
	}
	b.appendTooltip()
}

// ControlTextEl returns the node holding the rendered label.
func (b *Button) ControlTextEl() *html.Node {
	if b.IsDisposed() {
		return nil
	}
	return b.controlTextEl
}

// Tooltip returns the attached tooltip, if any.
func (b *Button) Tooltip() *Tooltip {
	return b.tooltip
}

// Focused reports whether the button currently holds its keydown binding.
func (b *Button) Focused() bool {
	return b.keyBinding != nil && !b.keyBinding.Released()
}

// HandleClick runs the configured activation behavior.
func (b *Button) HandleClick(e *events.Event) {
	if b.handleClick != nil {
		b.handleClick(e)
	}
}

func (b *Button) handleFocus(*events.Event) {
	if b.Focused() {
		return
	}
	b.keyBinding = b.On(component.Node(b.Document().Root()), "keydown", b.keyListener)
}

func (b *Button) handleBlur(*events.Event) {
	b.keyBinding.Release()
	b.keyBinding = nil
}

func (b *Button) handleKeyPress(e *events.Event) {
	if e.Which == events.KeySpace || e.Which == events.KeyEnter {
		e.PreventDefault()
		b.HandleClick(e)
	}
}

func (b *Button) appendTooltip() {
	if b.tooltip != nil || b.controlText == "" || b.El() == nil {
		return
	}
	handler := b.tooltipHandler()
	if handler == nil {
		return
	}
	t := NewTooltip(b.Player(), component.Options{})
	b.AddChild(t)
	t.SetText(b.controlText)
	t.Handler(handler)
	b.tooltip = t
}

// tooltipHandler resolves the node whose hover and focus show the tooltip.
func (b *Button) tooltipHandler() *html.Node {
	h := b.Options().Tooltip
	switch h.Kind {
	case component.TooltipDisabled:
		return nil
	case component.TooltipEnabled:
		return b.El()
	}
	if b.Player().TooltipsEnabled() {
		return b.El()
	}
	switch h.Kind {
	case component.TooltipByID:
		el := b.Document().ElementByID(h.ID)
		if el == nil {
			errors.ReportMissing("widgets.Button.tooltipHandler", b.Name(), "element", h.ID)
		}
		return el
	case component.TooltipOwner:
		if h.Owner == nil {
			return nil
		}
		return h.Owner.El()
	case component.TooltipNode:
		return h.Node
	}
	return nil
}

// Dispose releases the keydown binding and disposes the button.
func (b *Button) Dispose() {
	if b.IsDisposed() {
		return
	}
	b.keyBinding.Release()
	b.keyBinding = nil
	b.tooltip = nil
	b.Component.Dispose()
	b.controlTextEl = nil
}
