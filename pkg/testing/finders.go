package testing

import (
	"fmt"
	"strings"

	"golang.org/x/net/html"

	"github.com/go-drift/playerui/pkg/dom"
)

// Finder locates elements in the document.
type Finder interface {
	// Evaluate returns all matching elements under root (depth-first pre-order).
	Evaluate(root *html.Node) []*html.Node
	// Description returns a human-readable description for error messages.
	Description() string
}

// FinderResult wraps finder results with convenient accessors.
type FinderResult struct {
	nodes  []*html.Node
	finder Finder
}

// First returns the first match. Panics if no matches.
func (r FinderResult) First() *html.Node {
	if len(r.nodes) == 0 {
		panic(fmt.Sprintf("Finder found no elements: %s", r.description()))
	}
	return r.nodes[0]
}

// FirstOrNil returns the first match, or nil if none.
func (r FinderResult) FirstOrNil() *html.Node {
	if len(r.nodes) == 0 {
		return nil
	}
	return r.nodes[0]
}

// At returns the match at index. Panics if out of range.
func (r FinderResult) At(index int) *html.Node {
	if index < 0 || index >= len(r.nodes) {
		panic(fmt.Sprintf("Finder index %d out of range (found %d): %s", index, len(r.nodes), r.description()))
	}
	return r.nodes[index]
}

// All returns all matches in traversal order.
func (r FinderResult) All() []*html.Node {
	return r.nodes
}

// Count returns the number of matches.
func (r FinderResult) Count() int {
	return len(r.nodes)
}

// Exists returns true if at least one match was found.
func (r FinderResult) Exists() bool {
	return len(r.nodes) > 0
}

func (r FinderResult) description() string {
	if r.finder == nil {
		return "unknown"
	}
	return r.finder.Description()
}

// --- Concrete finders ---

// selectorFinder matches elements with a dom selector.
type selectorFinder struct {
	selector string
	desc     string
}

func (f *selectorFinder) Evaluate(root *html.Node) []*html.Node {
	return dom.QueryAll(root, f.selector)
}

func (f *selectorFinder) Description() string {
	return f.desc
}

// BySelector matches elements with a CSS selector. A malformed selector
// matches nothing.
func BySelector(selector string) Finder {
	return &selectorFinder{selector: selector, desc: fmt.Sprintf("BySelector(%q)", selector)}
}

// ByClass matches elements carrying every given class.
func ByClass(classes ...string) Finder {
	return &selectorFinder{
		selector: "." + strings.Join(classes, "."),
		desc:     fmt.Sprintf("ByClass(%s)", strings.Join(classes, ", ")),
	}
}

// ByTag matches elements by tag name.
func ByTag(tag string) Finder {
	return &selectorFinder{selector: tag, desc: fmt.Sprintf("ByTag(%s)", tag)}
}

// ByID matches the element with the given id.
func ByID(id string) Finder {
	return &selectorFinder{selector: "#" + id, desc: fmt.Sprintf("ByID(%s)", id)}
}

// textFinder matches elements by the text of their own text children.
type textFinder struct {
	text     string
	contains bool
}

func (f *textFinder) Evaluate(root *html.Node) []*html.Node {
	return collectMatches(root, func(n *html.Node) bool {
		own := ownText(n)
		if f.contains {
			return own != "" && strings.Contains(own, f.text)
		}
		return own == f.text
	})
}

func (f *textFinder) Description() string {
	if f.contains {
		return fmt.Sprintf("ByTextContaining(%q)", f.text)
	}
	return fmt.Sprintf("ByText(%q)", f.text)
}

// ByText matches elements whose own text equals text. Text of descendant
// elements does not count, so only the innermost element matches.
func ByText(text string) Finder {
	return &textFinder{text: text}
}

// ByTextContaining matches elements whose own text contains substring.
func ByTextContaining(substring string) Finder {
	return &textFinder{text: substring, contains: true}
}

// predicateFinder matches elements satisfying a predicate.
type predicateFinder struct {
	fn   func(*html.Node) bool
	desc string
}

func (f *predicateFinder) Evaluate(root *html.Node) []*html.Node {
	return collectMatches(root, f.fn)
}

func (f *predicateFinder) Description() string {
	return f.desc
}

// ByPredicate returns a finder that matches elements satisfying fn.
func ByPredicate(fn func(*html.Node) bool) Finder {
	return &predicateFinder{fn: fn, desc: "ByPredicate(...)"}
}

// ByAttr matches elements whose attribute key equals value.
func ByAttr(key, value string) Finder {
	return &predicateFinder{
		fn: func(n *html.Node) bool {
			v, ok := dom.LookupAttr(n, key)
			return ok && v == value
		},
		desc: fmt.Sprintf("ByAttr(%s=%q)", key, value),
	}
}

// descendantFinder finds elements matching 'matching' that are descendants
// of elements matching 'of'.
type descendantFinder struct {
	of       Finder
	matching Finder
}

func (f *descendantFinder) Evaluate(root *html.Node) []*html.Node {
	var results []*html.Node
	seen := make(map[*html.Node]bool)
	for _, ancestor := range f.of.Evaluate(root) {
		for _, match := range f.matching.Evaluate(ancestor) {
			if !seen[match] {
				seen[match] = true
				results = append(results, match)
			}
		}
	}
	return results
}

func (f *descendantFinder) Description() string {
	return fmt.Sprintf("Descendant(of: %s, matching: %s)", f.of.Description(), f.matching.Description())
}

// Descendant returns a finder that matches elements satisfying 'matching'
// that are descendants of elements matching 'of'.
func Descendant(of, matching Finder) Finder {
	return &descendantFinder{of: of, matching: matching}
}

// collectMatches performs depth-first pre-order traversal below root,
// collecting elements that satisfy the predicate.
func collectMatches(root *html.Node, predicate func(*html.Node) bool) []*html.Node {
	var results []*html.Node
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if c.Type == html.ElementNode && predicate(c) {
				results = append(results, c)
			}
			walk(c)
		}
	}
	if root != nil {
		walk(root)
	}
	return results
}

func ownText(n *html.Node) string {
	var sb strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.TextNode {
			sb.WriteString(c.Data)
		}
	}
	return strings.TrimSpace(sb.String())
}
