package component

import (
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/net/html"

	"github.com/go-drift/playerui/pkg/dom"
	"github.com/go-drift/playerui/pkg/errors"
	"github.com/go-drift/playerui/pkg/events"
	"github.com/go-drift/playerui/pkg/fn"
)

// State is the lifecycle state of a component.
type State int

const (
	// StateCreated means the element exists but is not in the document.
	StateCreated State = iota
	// StateMounted means the element is reachable from the document root.
	StateMounted
	// StateDisposed is terminal.
	StateDisposed
)

func (s State) String() string {
	switch s {
	case StateMounted:
		return "mounted"
	case StateDisposed:
		return "disposed"
	default:
		return "created"
	}
}

// Hooks inject widget behavior into New.
type Hooks struct {
	// Self is the widget embedding the component. Children, lookups and
	// dispose propagation hand out Self rather than the bare component.
	Self Widget
	// Defaults are the built-in options of the widget type.
	Defaults Options
	// CreateEl builds the owned element. It runs inside New, before children
	// are initialised, so it must use c rather than the embedding widget's
	// promoted methods. Nil builds an empty div.
	CreateEl func(c *Component) *html.Node
}

// Component is the base composable unit. Widgets embed *Component.
type Component struct {
	player Player
	doc    *dom.Document
	self   Widget
	parent *Component
	logger zerolog.Logger

	id        string
	name      string
	opts      Options
	el        *html.Node
	contentEl *html.Node

	children []Widget
	byID     map[string]Widget
	byName   map[string]Widget

	external  []*Binding
	disposers []func()

	timers    map[TimerID]func() bool
	nextTimer TimerID

	ready      bool
	readyQueue []func()

	disposed bool
}

// New builds a component for player. Options merge as hooks.Defaults <
// player.ComponentOptions(name) < opts. Unless SkipChildren is set, the
// merged Children are created and appended in order.
func New(player Player, opts Options, hooks Hooks) *Component {
	name := opts.Name
	if name == "" {
		name = hooks.Defaults.Name
	}
	merged := hooks.Defaults.Merge(player.ComponentOptions(name), opts)
	merged.Name = name

	c := &Component{
		player: player,
		doc:    player.Document(),
		name:   name,
		opts:   merged,
		byID:   make(map[string]Widget),
		byName: make(map[string]Widget),
		timers: make(map[TimerID]func() bool),
	}
	c.self = hooks.Self
	if c.self == nil {
		c.self = c
	}

	c.id = merged.ID
	if c.id == "" {
		c.id = player.ID() + "_component_" + strconv.FormatUint(uint64(fn.NewGUID()), 10)
	}
	c.logger = player.Logger().With().Str("component", name).Str("id", c.id).Logger()

	if hooks.CreateEl != nil {
		c.el = hooks.CreateEl(c)
	}
	if c.el == nil {
		c.el = c.CreateEl("div", dom.Props{}, nil)
	}
	c.contentEl = c.el

	if !merged.SkipChildren {
		c.InitChildren()
	}
	return c
}

// Base returns c. It lets widgets that embed *Component satisfy Widget.
func (c *Component) Base() *Component { return c }

// Self returns the widget embedding c, or c itself.
func (c *Component) Self() Widget {
	if c == nil {
		return nil
	}
	return c.self
}

// El returns the owned element, or nil once disposed.
func (c *Component) El() *html.Node {
	if c == nil {
		return nil
	}
	return c.el
}

// ContentEl returns the node children are appended into.
func (c *Component) ContentEl() *html.Node {
	if c == nil {
		return nil
	}
	return c.contentEl
}

// SetContentEl redirects where children are appended. n must be inside El.
func (c *Component) SetContentEl(n *html.Node) {
	if c.misuse("component.SetContentEl") || n == nil {
		return
	}
	c.contentEl = n
}

// ID returns the component id.
func (c *Component) ID() string { return c.id }

// Name returns the registry name.
func (c *Component) Name() string { return c.name }

// Player returns the player, or nil once disposed.
func (c *Component) Player() Player { return c.player }

// Document returns the document the element belongs to.
func (c *Component) Document() *dom.Document { return c.doc }

// Logger returns the component's logger.
func (c *Component) Logger() *zerolog.Logger { return &c.logger }

// Options returns a copy of the merged options.
func (c *Component) Options() Options {
	return c.opts.Merge()
}

// Parent returns the component c was added to, if any.
func (c *Component) Parent() *Component { return c.parent }

// State reports the lifecycle state.
func (c *Component) State() State {
	switch {
	case c.disposed:
		return StateDisposed
	case c.doc.Contains(c.el):
		return StateMounted
	default:
		return StateCreated
	}
}

// IsDisposed reports whether Dispose has run.
func (c *Component) IsDisposed() bool { return c.disposed }

// CreateEl builds a detached element. Widgets call it from Hooks.CreateEl,
// composing classes with BuildCSSClass and attributes with dom.MergeAttrs so
// defaults accumulate. After disposal it returns nil.
func (c *Component) CreateEl(tag string, props dom.Props, attrs dom.Attrs) *html.Node {
	if c.misuse("component.CreateEl") {
		return nil
	}
	return dom.CreateElement(tag, props, attrs)
}

// BuildCSSClass joins non-empty class fragments with single spaces.
func BuildCSSClass(parts ...string) string {
	var out []string
	for _, p := range parts {
		out = append(out, strings.Fields(p)...)
	}
	return strings.Join(out, " ")
}

// AddClass adds class to the element.
func (c *Component) AddClass(class string) {
	if c.misuse("component.AddClass") {
		return
	}
	dom.AddClass(c.el, class)
}

// RemoveClass removes class from the element.
func (c *Component) RemoveClass(class string) {
	if c.misuse("component.RemoveClass") {
		return
	}
	dom.RemoveClass(c.el, class)
}

// HasClass reports whether the element carries class.
func (c *Component) HasClass(class string) bool {
	if c.disposed {
		return false
	}
	return dom.HasClass(c.el, class)
}

// ToggleClass adds or removes class.
func (c *Component) ToggleClass(class string, add bool) {
	if c.misuse("component.ToggleClass") {
		return
	}
	dom.ToggleClass(c.el, class, add)
}

// Show removes the hidden class.
func (c *Component) Show() { c.RemoveClass("vjs-hidden") }

// Hide adds the hidden class.
func (c *Component) Hide() { c.AddClass("vjs-hidden") }

// Width returns the rendered width of the element.
func (c *Component) Width() float64 {
	if c.disposed {
		return 0
	}
	return c.doc.OffsetWidth(c.el)
}

// Height returns the rendered height of the element.
func (c *Component) Height() float64 {
	if c.disposed {
		return 0
	}
	return c.doc.OffsetHeight(c.el)
}

// Localize translates key through the player. Without a player the key is
// returned unchanged.
func (c *Component) Localize(key string) string {
	if c.player == nil {
		return key
	}
	return c.player.Localize(key)
}

// Scheduler returns the player's scheduler.
func (c *Component) Scheduler() fn.Scheduler {
	if c.player == nil {
		return fn.SystemScheduler{}
	}
	return c.player.Scheduler()
}

// Now returns the scheduler's current time.
func (c *Component) Now() time.Time {
	return c.Scheduler().Now()
}

// Trigger dispatches a bubbling event of eventType on the element. It
// returns false if a handler prevented the default action.
func (c *Component) Trigger(eventType string, detail any) bool {
	evt := events.New(eventType)
	evt.Detail = detail
	return c.TriggerEvent(evt)
}

// TriggerEvent dispatches evt on the element.
func (c *Component) TriggerEvent(evt *events.Event) bool {
	if c.misuse("component.Trigger") {
		return true
	}
	return c.doc.Events().Trigger(c.el, evt)
}

// misuse reports op on a disposed component and returns true in that case.
func (c *Component) misuse(op string) bool {
	if c == nil {
		return true
	}
	if c.disposed {
		errors.ReportMisuse(op, c.name)
		return true
	}
	return false
}
