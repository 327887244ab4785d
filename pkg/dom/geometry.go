package dom

import (
	"math"

	"golang.org/x/image/font"
	"golang.org/x/net/html"

	"github.com/go-drift/playerui/pkg/events"
)

// Rect is an element box in page coordinates.
type Rect struct {
	Left   float64
	Top    float64
	Width  float64
	Height float64
}

// Position is the top-left corner of an element in page coordinates.
type Position struct {
	Left float64
	Top  float64
}

// Point is a pointer position relative to an element, each axis in [0, 1].
type Point struct {
	X float64
	Y float64
}

// SetRect records the laid-out box of node. A layout engine or a browser
// bridge feeds these; tests set them directly.
func (d *Document) SetRect(node *html.Node, r Rect) {
	if node == nil {
		return
	}
	d.rects[node] = r
}

// RectOf returns the recorded box of node.
func (d *Document) RectOf(node *html.Node) (Rect, bool) {
	r, ok := d.rects[node]
	return r, ok
}

// FindPosition returns the page position of node's top-left corner.
// Nodes without a recorded box are at the origin.
func (d *Document) FindPosition(node *html.Node) Position {
	if r, ok := d.rects[node]; ok {
		return Position{Left: r.Left, Top: r.Top}
	}
	return Position{}
}

// OffsetWidth returns the rendered width of node. Without a recorded box the
// width of its text content is measured with the document's face.
func (d *Document) OffsetWidth(node *html.Node) float64 {
	if node == nil {
		return 0
	}
	if r, ok := d.rects[node]; ok {
		return r.Width
	}
	text := TextContent(node)
	if text == "" {
		return 0
	}
	return float64(font.MeasureString(d.face, text).Ceil()) + d.textPadding
}

// OffsetHeight returns the rendered height of node. Without a recorded box
// a single line of the document's face is assumed when node has text.
func (d *Document) OffsetHeight(node *html.Node) float64 {
	if node == nil {
		return 0
	}
	if r, ok := d.rects[node]; ok {
		return r.Height
	}
	if TextContent(node) == "" {
		return 0
	}
	return float64(d.face.Metrics().Height.Ceil())
}

// PointerPosition maps the event's page coordinates into node's box.
// X runs 0 at the left edge to 1 at the right edge; Y runs 0 at the bottom
// edge to 1 at the top. Both are clamped. Touch events use the first changed
// touch.
func (d *Document) PointerPosition(node *html.Node, evt *events.Event) Point {
	if node == nil || evt == nil {
		return Point{}
	}
	box := d.FindPosition(node)
	boxW := d.OffsetWidth(node)
	boxH := d.OffsetHeight(node)

	pageX, pageY := evt.PageX, evt.PageY
	if len(evt.ChangedTouches) > 0 {
		pageX = evt.ChangedTouches[0].PageX
		pageY = evt.ChangedTouches[0].PageY
	}

	var p Point
	if boxW > 0 {
		p.X = clamp01((pageX - box.Left) / boxW)
	}
	if boxH > 0 {
		p.Y = clamp01(((box.Top - pageY) + boxH) / boxH)
	}
	return p
}

func clamp01(v float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	return math.Max(0, math.Min(1, v))
}
