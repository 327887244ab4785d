package dom

import (
	"bytes"
	"slices"
	"strconv"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Props are the element properties set at creation. Every property is
// materialized as an attribute; zero values are skipped.
type Props struct {
	ClassName string
	ID        string
	TabIndex  *int
	Role      string
	Text      string
	InnerHTML string
	// Extra holds any other property, written as attributes.
	Extra map[string]string
}

// Attrs are attributes applied after Props. Keys are written in sorted order.
type Attrs map[string]string

// TabIndex returns a pointer for Props.TabIndex.
func TabIndex(i int) *int {
	return &i
}

// Merge returns a copy of p overridden by the non-zero fields of o.
func (p Props) Merge(o Props) Props {
	out := p
	if o.ClassName != "" {
		out.ClassName = o.ClassName
	}
	if o.ID != "" {
		out.ID = o.ID
	}
	if o.TabIndex != nil {
		out.TabIndex = o.TabIndex
	}
	if o.Role != "" {
		out.Role = o.Role
	}
	if o.Text != "" {
		out.Text = o.Text
	}
	if o.InnerHTML != "" {
		out.InnerHTML = o.InnerHTML
	}
	if len(o.Extra) > 0 {
		extra := make(map[string]string, len(p.Extra)+len(o.Extra))
		for k, v := range p.Extra {
			extra[k] = v
		}
		for k, v := range o.Extra {
			extra[k] = v
		}
		out.Extra = extra
	}
	return out
}

// MergeAttrs returns base overridden by each of overrides in turn.
func MergeAttrs(base Attrs, overrides ...Attrs) Attrs {
	out := make(Attrs, len(base))
	for k, v := range base {
		out[k] = v
	}
	for _, o := range overrides {
		for k, v := range o {
			out[k] = v
		}
	}
	return out
}

// CreateElement builds a detached element. An empty tag creates a div.
func CreateElement(tag string, props Props, attrs Attrs) *html.Node {
	if tag == "" {
		tag = "div"
	}
	el := newElement(tag)

	if props.ClassName != "" {
		SetAttr(el, "class", normalizeClasses(props.ClassName))
	}
	if props.ID != "" {
		SetAttr(el, "id", props.ID)
	}
	if props.TabIndex != nil {
		SetAttr(el, "tabindex", strconv.Itoa(*props.TabIndex))
	}
	if props.Role != "" {
		SetAttr(el, "role", props.Role)
	}
	for _, k := range sortedKeys(props.Extra) {
		SetAttr(el, k, props.Extra[k])
	}
	for _, k := range sortedKeys(attrs) {
		SetAttr(el, k, attrs[k])
	}

	switch {
	case props.InnerHTML != "":
		SetInnerHTML(el, props.InnerHTML)
	case props.Text != "":
		SetText(el, props.Text)
	}
	return el
}

// Attr returns the value of the named attribute, or "".
func Attr(n *html.Node, key string) string {
	v, _ := LookupAttr(n, key)
	return v
}

// LookupAttr returns the attribute value and whether it is present.
func LookupAttr(n *html.Node, key string) (string, bool) {
	if n == nil {
		return "", false
	}
	for _, a := range n.Attr {
		if a.Namespace == "" && a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

// SetAttr sets or replaces an attribute, keeping attribute order stable.
func SetAttr(n *html.Node, key, val string) {
	if n == nil {
		return
	}
	for i, a := range n.Attr {
		if a.Namespace == "" && a.Key == key {
			n.Attr[i].Val = val
			return
		}
	}
	n.Attr = append(n.Attr, html.Attribute{Key: key, Val: val})
}

// RemoveAttr deletes an attribute.
func RemoveAttr(n *html.Node, key string) {
	if n == nil {
		return
	}
	n.Attr = slices.DeleteFunc(n.Attr, func(a html.Attribute) bool {
		return a.Namespace == "" && a.Key == key
	})
}

// ClassList returns the element's classes in order.
func ClassList(n *html.Node) []string {
	return strings.Fields(Attr(n, "class"))
}

// HasClass reports whether the element has the class.
func HasClass(n *html.Node, class string) bool {
	return slices.Contains(ClassList(n), class)
}

// AddClass appends a class unless already present.
func AddClass(n *html.Node, class string) {
	if n == nil || class == "" || HasClass(n, class) {
		return
	}
	SetAttr(n, "class", strings.TrimSpace(Attr(n, "class")+" "+class))
}

// RemoveClass removes every occurrence of class.
func RemoveClass(n *html.Node, class string) {
	if n == nil || !HasClass(n, class) {
		return
	}
	kept := slices.DeleteFunc(ClassList(n), func(c string) bool { return c == class })
	SetAttr(n, "class", strings.Join(kept, " "))
}

// ToggleClass adds or removes class depending on add.
func ToggleClass(n *html.Node, class string, add bool) {
	if add {
		AddClass(n, class)
	} else {
		RemoveClass(n, class)
	}
}

// SetText replaces the element's children with a single text node.
func SetText(n *html.Node, text string) {
	if n == nil {
		return
	}
	RemoveChildren(n)
	if text != "" {
		n.AppendChild(&html.Node{Type: html.TextNode, Data: text})
	}
}

// SetInnerHTML replaces the element's children with the parsed fragment.
// Markup that fails to parse is inserted as text.
func SetInnerHTML(n *html.Node, markup string) {
	if n == nil {
		return
	}
	RemoveChildren(n)
	if markup == "" {
		return
	}
	ctx := &html.Node{Type: html.ElementNode, Data: n.Data, DataAtom: n.DataAtom}
	if ctx.DataAtom == 0 {
		ctx.Data, ctx.DataAtom = "div", atom.Div
	}
	nodes, err := html.ParseFragment(strings.NewReader(markup), ctx)
	if err != nil {
		n.AppendChild(&html.Node{Type: html.TextNode, Data: markup})
		return
	}
	for _, c := range nodes {
		n.AppendChild(c)
	}
}

// InnerHTML renders the element's children.
func InnerHTML(n *html.Node) string {
	if n == nil {
		return ""
	}
	var buf bytes.Buffer
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		_ = html.Render(&buf, c)
	}
	return buf.String()
}

// OuterHTML renders the element itself.
func OuterHTML(n *html.Node) string {
	if n == nil {
		return ""
	}
	var buf bytes.Buffer
	_ = html.Render(&buf, n)
	return buf.String()
}

// TextContent concatenates all descendant text.
func TextContent(n *html.Node) string {
	if n == nil {
		return ""
	}
	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return sb.String()
}

// RemoveChildren detaches every child of n.
func RemoveChildren(n *html.Node) {
	for n.FirstChild != nil {
		n.RemoveChild(n.FirstChild)
	}
}

// AppendChild moves child under parent, detaching it from any previous parent.
func AppendChild(parent, child *html.Node) {
	if parent == nil || child == nil {
		return
	}
	Detach(child)
	parent.AppendChild(child)
}

// InsertFirst moves child to the front of parent's children.
func InsertFirst(parent, child *html.Node) {
	if parent == nil || child == nil {
		return
	}
	Detach(child)
	if parent.FirstChild == nil {
		parent.AppendChild(child)
		return
	}
	parent.InsertBefore(child, parent.FirstChild)
}

// Detach removes n from its parent. Detached nodes are left alone.
func Detach(n *html.Node) {
	if n == nil || n.Parent == nil {
		return
	}
	n.Parent.RemoveChild(n)
}

// SetStyle sets one inline style property. An empty value removes it.
func SetStyle(n *html.Node, prop, value string) {
	if n == nil {
		return
	}
	decls := parseStyle(Attr(n, "style"))
	idx := slices.IndexFunc(decls, func(d [2]string) bool { return d[0] == prop })
	switch {
	case value == "" && idx >= 0:
		decls = slices.Delete(decls, idx, idx+1)
	case value == "":
		return
	case idx >= 0:
		decls[idx][1] = value
	default:
		decls = append(decls, [2]string{prop, value})
	}
	if len(decls) == 0 {
		RemoveAttr(n, "style")
		return
	}
	parts := make([]string, len(decls))
	for i, d := range decls {
		parts[i] = d[0] + ": " + d[1]
	}
	SetAttr(n, "style", strings.Join(parts, "; ")+";")
}

// Style returns one inline style property.
func Style(n *html.Node, prop string) string {
	for _, d := range parseStyle(Attr(n, "style")) {
		if d[0] == prop {
			return d[1]
		}
	}
	return ""
}

func parseStyle(s string) [][2]string {
	var out [][2]string
	for _, decl := range strings.Split(s, ";") {
		k, v, ok := strings.Cut(decl, ":")
		if !ok {
			continue
		}
		k, v = strings.TrimSpace(k), strings.TrimSpace(v)
		if k != "" {
			out = append(out, [2]string{k, v})
		}
	}
	return out
}

func normalizeClasses(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
