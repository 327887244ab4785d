package component

import (
	"github.com/rs/zerolog"
	"golang.org/x/net/html"

	"github.com/go-drift/playerui/pkg/dom"
	"github.com/go-drift/playerui/pkg/fn"
)

// Target is anything events can be bound to.
type Target interface {
	El() *html.Node
}

type nodeTarget struct {
	node *html.Node
}

func (t nodeTarget) El() *html.Node { return t.node }

// Node adapts a bare node to a Target. A nil node yields a nil Target, which
// On and Off read as the component's own element.
func Node(n *html.Node) Target {
	if n == nil {
		return nil
	}
	return nodeTarget{node: n}
}

// Widget is the capability set shared by every component: an owned element,
// access to the underlying Component (children, events) and disposal.
type Widget interface {
	Target
	Base() *Component
	Dispose()
}

// Player is the collaborator components read shared state from. It is a
// non-owning reference: components never dispose or re-parent the player.
type Player interface {
	Target
	ID() string
	Document() *dom.Document
	Registry() *Registry
	Logger() zerolog.Logger
	Scheduler() fn.Scheduler
	Duration() float64
	CurrentTime() float64
	Paused() bool
	Play()
	Pause()
	Localize(key string) string
	TooltipsEnabled() bool
	ComponentOptions(name string) Options
	Lookup(path ...string) Widget
	// Ready runs f once the player is ready, asynchronously even when it
	// already is.
	Ready(f func())
}
