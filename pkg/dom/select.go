package dom

import (
	"emperror.dev/errors"
	"github.com/andybalholm/cascadia"
	"golang.org/x/net/html"
)

// Select returns the elements under root (root excluded) matching a CSS
// selector, in document order. As with querySelectorAll, ancestors of root
// take part in descendant and child combinators.
func Select(root *html.Node, selector string) ([]*html.Node, error) {
	sel, err := cascadia.Compile(selector)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid selector %q", selector)
	}
	if root == nil {
		return nil, nil
	}
	var out []*html.Node
	for c := root.FirstChild; c != nil; c = c.NextSibling {
		out = append(out, sel.MatchAll(c)...)
	}
	return out, nil
}

// QueryAll is Select with an invalid selector matching nothing.
func QueryAll(root *html.Node, selector string) []*html.Node {
	out, _ := Select(root, selector)
	return out
}

// Query returns the first element under root matching selector, or nil.
func Query(root *html.Node, selector string) *html.Node {
	sel, err := cascadia.Compile(selector)
	if err != nil || root == nil {
		return nil
	}
	for c := root.FirstChild; c != nil; c = c.NextSibling {
		if n := sel.MatchFirst(c); n != nil {
			return n
		}
	}
	return nil
}
