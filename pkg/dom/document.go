// Package dom provides element creation, content, lookup and geometry helpers
// over a headless document of golang.org/x/net/html nodes.
//
// A Document owns the node tree, the per-element data (event handlers via its
// events.Bus, page rectangles) and the font face used to measure text when no
// layout rectangle is known for a node.
package dom

import (
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/go-drift/playerui/pkg/events"
	"github.com/go-drift/playerui/pkg/fn"
)

// Document is the root of a node tree plus the data attached to its nodes.
type Document struct {
	root *html.Node
	html *html.Node
	head *html.Node
	body *html.Node

	bus   *events.Bus
	rects map[*html.Node]Rect
	face  font.Face
	// textPadding is added to measured text widths (left plus right padding).
	textPadding float64
}

// Option configures a Document.
type Option func(*Document)

// WithClock sets the clock used to timestamp dispatched events.
func WithClock(c fn.Clock) Option {
	return func(d *Document) {
		d.bus = events.NewBus(c)
	}
}

// WithFace sets the face used for text measurement.
func WithFace(face font.Face) Option {
	return func(d *Document) {
		if face != nil {
			d.face = face
		}
	}
}

// WithTextPadding sets the horizontal padding added to measured text.
func WithTextPadding(px float64) Option {
	return func(d *Document) {
		d.textPadding = px
	}
}

// NewDocument creates <html><head></head><body></body></html>.
func NewDocument(opts ...Option) *Document {
	root := &html.Node{Type: html.DocumentNode}
	htmlEl := newElement("html")
	head := newElement("head")
	body := newElement("body")
	root.AppendChild(htmlEl)
	htmlEl.AppendChild(head)
	htmlEl.AppendChild(body)

	d := &Document{
		root:        root,
		html:        htmlEl,
		head:        head,
		body:        body,
		rects:       make(map[*html.Node]Rect),
		face:        basicfont.Face7x13,
		textPadding: 8,
	}
	for _, opt := range opts {
		opt(d)
	}
	if d.bus == nil {
		d.bus = events.NewBus(nil)
	}
	return d
}

// Root returns the document node. Document-level listeners bind here.
func (d *Document) Root() *html.Node { return d.root }

// Body returns the body element.
func (d *Document) Body() *html.Node { return d.body }

// Head returns the head element.
func (d *Document) Head() *html.Node { return d.head }

// Events returns the bus holding every listener of this document.
func (d *Document) Events() *events.Bus { return d.bus }

// Contains reports whether node is reachable from the document root.
func (d *Document) Contains(node *html.Node) bool {
	for n := node; n != nil; n = n.Parent {
		if n == d.root {
			return true
		}
	}
	return false
}

// ElementByID returns the first element in the document with the given id.
func (d *Document) ElementByID(id string) *html.Node {
	if id == "" {
		return nil
	}
	return findByID(d.root, id)
}

// RemoveElData drops every listener and layout rectangle held for node.
func (d *Document) RemoveElData(node *html.Node) {
	if node == nil {
		return
	}
	d.bus.Cleanup(node)
	delete(d.rects, node)
}

func findByID(n *html.Node, id string) *html.Node {
	if n.Type == html.ElementNode && Attr(n, "id") == id {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findByID(c, id); found != nil {
			return found
		}
	}
	return nil
}

func newElement(tag string) *html.Node {
	return &html.Node{
		Type:     html.ElementNode,
		Data:     tag,
		DataAtom: atom.Lookup([]byte(tag)),
	}
}
