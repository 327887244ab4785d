package testing

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/net/html"

	"github.com/go-drift/playerui/pkg/dom"
	"github.com/go-drift/playerui/pkg/events"
)

// TestingT is the subset of *testing.T used by MatchesFile, allowing
// test doubles to intercept failures.
type TestingT interface {
	Helper()
	Fatalf(format string, args ...any)
	Errorf(format string, args ...any)
	Name() string
}

// Snapshot captures an element tree together with the listeners bound to
// each node.
type Snapshot struct {
	Tree *Node `json:"tree"`
}

// Node represents an element in the serialized tree.
type Node struct {
	Tag       string            `json:"tag"`
	Attrs     map[string]string `json:"attrs,omitempty"`
	Text      string            `json:"text,omitempty"`
	Listeners map[string]int    `json:"listeners,omitempty"`
	Children  []*Node           `json:"children,omitempty"`
}

// listenerTypes are the event types recorded in snapshots.
var listenerTypes = []string{
	"blur", "click", "dispose", "focus", "keydown", "mouseenter", "mouseleave",
	"mousemove", "pause", "play", "ready", "tap", "timeupdate",
	"touchcancel", "touchend", "touchleave", "touchmove", "touchstart",
}

// CaptureSnapshot captures the player element, or the document body when
// no player is mounted.
func (t *Tester) CaptureSnapshot() *Snapshot {
	root := t.doc.Body()
	if t.player != nil && t.player.El() != nil {
		root = t.player.El()
	}
	return CaptureNode(t.doc, root)
}

// CaptureNode captures the tree below and including n.
func CaptureNode(doc *dom.Document, n *html.Node) *Snapshot {
	if n == nil {
		return &Snapshot{}
	}
	return &Snapshot{Tree: captureNode(doc.Events(), n)}
}

func captureNode(bus *events.Bus, n *html.Node) *Node {
	node := &Node{Tag: n.Data}
	for _, a := range n.Attr {
		if node.Attrs == nil {
			node.Attrs = make(map[string]string)
		}
		node.Attrs[a.Key] = a.Val
	}
	for _, typ := range listenerTypes {
		if c := bus.ListenerCount(n, typ); c > 0 {
			if node.Listeners == nil {
				node.Listeners = make(map[string]int)
			}
			node.Listeners[typ] = c
		}
	}
	var text []string
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		switch c.Type {
		case html.ElementNode:
			node.Children = append(node.Children, captureNode(bus, c))
		case html.TextNode:
			if s := strings.TrimSpace(c.Data); s != "" {
				text = append(text, s)
			}
		}
	}
	node.Text = strings.Join(text, " ")
	return node
}

// Classes returns the class list of every node in pre-order, one entry per
// node. It is handy for compact structural assertions.
func (s *Snapshot) Classes() []string {
	var out []string
	var walk func(n *Node)
	walk = func(n *Node) {
		if n == nil {
			return
		}
		out = append(out, n.Attrs["class"])
		for _, c := range n.Children {
			walk(c)
		}
	}
	walk(s.Tree)
	return out
}

// ListenerTotal returns the number of listeners recorded in the snapshot.
func (s *Snapshot) ListenerTotal() int {
	total := 0
	var walk func(n *Node)
	walk = func(n *Node) {
		if n == nil {
			return
		}
		for _, c := range n.Listeners {
			total += c
		}
		for _, c := range n.Children {
			walk(c)
		}
	}
	walk(s.Tree)
	return total
}

// MatchesFile compares this snapshot against a golden file. On mismatch it
// reports a diff and instructions for updating. When
// PLAYERUI_UPDATE_SNAPSHOTS=1 is set, the file is silently updated instead.
func (s *Snapshot) MatchesFile(t TestingT, path string) {
	t.Helper()

	if os.Getenv("PLAYERUI_UPDATE_SNAPSHOTS") == "1" {
		if err := s.UpdateFile(path); err != nil {
			t.Fatalf("failed to update snapshot: %v", err)
		}
		return
	}

	expected, err := loadSnapshot(path)
	if err != nil {
		if os.IsNotExist(err) {
			t.Fatalf("snapshot file missing: %s\n\nTo create: PLAYERUI_UPDATE_SNAPSHOTS=1 go test -run %s", path, t.Name())
			return
		}
		t.Fatalf("failed to load snapshot: %v", err)
		return
	}

	if diff := s.Diff(expected); diff != "" {
		t.Errorf("snapshot mismatch: %s\n%s\n\nTo update: PLAYERUI_UPDATE_SNAPSHOTS=1 go test -run %s", path, diff, t.Name())
	}
}

// UpdateFile writes this snapshot to the given path, creating directories
// as needed.
func (s *Snapshot) UpdateFile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := marshalSnapshot(s)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// Diff returns a line diff between this snapshot and other. Returns the
// empty string if equal.
func (s *Snapshot) Diff(other *Snapshot) string {
	a, _ := marshalSnapshot(s)
	b, _ := marshalSnapshot(other)
	if bytes.Equal(a, b) {
		return ""
	}
	return unifiedDiff(string(b), string(a))
}

func loadSnapshot(path string) (*Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("invalid snapshot JSON: %w", err)
	}
	return &snap, nil
}

func marshalSnapshot(s *Snapshot) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// unifiedDiff produces a simple line-oriented diff.
func unifiedDiff(expected, actual string) string {
	expectedLines := strings.Split(expected, "\n")
	actualLines := strings.Split(actual, "\n")

	var buf strings.Builder
	buf.WriteString("--- expected\n+++ actual\n")

	maxLen := max(len(expectedLines), len(actualLines))
	for i := 0; i < maxLen; i++ {
		var e, a string
		if i < len(expectedLines) {
			e = expectedLines[i]
		}
		if i < len(actualLines) {
			a = actualLines[i]
		}
		if e != a {
			if i < len(expectedLines) {
				fmt.Fprintf(&buf, "-%s\n", e)
			}
			if i < len(actualLines) {
				fmt.Fprintf(&buf, "+%s\n", a)
			}
		}
	}
	return buf.String()
}
