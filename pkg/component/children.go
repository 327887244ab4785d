package component

import (
	"slices"

	"github.com/go-drift/playerui/pkg/dom"
	"github.com/go-drift/playerui/pkg/errors"
)

// InitChildren creates the children named in the merged options. Disabled
// entries are skipped; unknown names are reported and skipped.
func (c *Component) InitChildren() {
	if c.misuse("component.InitChildren") {
		return
	}
	for _, spec := range c.opts.Children {
		if spec.Disabled || spec.Name == "" {
			continue
		}
		c.AddChildByName(spec.Name, spec.Options)
	}
}

// AddChildByName builds the component registered under name and adds it.
// Unknown names return nil.
func (c *Component) AddChildByName(name string, opts Options) Widget {
	if c.misuse("component.AddChild") {
		return nil
	}
	factory, ok := c.player.Registry().Get(name)
	if !ok {
		errors.ReportMissing("component.AddChild", c.name, "component", name)
		return nil
	}
	if opts.Name == "" {
		opts.Name = name
	}
	w := c.build(factory, opts)
	if w == nil {
		return nil
	}
	return c.AddChild(w)
}

// build runs a registered factory. Factories may come from plugins, so a
// panic is reported and yields no child.
func (c *Component) build(factory Factory, opts Options) (w Widget) {
	defer errors.Recover("component.AddChild " + opts.Name)
	return factory(c.player, opts)
}

// AddChild appends w's element to the content element and takes ownership
// of w. A widget that already has a parent is moved.
func (c *Component) AddChild(w Widget) Widget {
	if c.misuse("component.AddChild") || w == nil {
		return nil
	}
	base := w.Base()
	if base == nil || base.disposed || base == c {
		return nil
	}
	if base.parent != nil {
		base.parent.RemoveChild(w)
	}
	base.parent = c
	c.children = append(c.children, w)
	if base.id != "" {
		c.byID[base.id] = w
	}
	if base.name != "" {
		c.byName[base.name] = w
	}
	if el := w.El(); el != nil {
		dom.AppendChild(c.contentEl, el)
	}
	return w
}

// RemoveChild detaches w without disposing it. Ownership passes to the caller.
func (c *Component) RemoveChild(w Widget) {
	if c.misuse("component.RemoveChild") || w == nil {
		return
	}
	base := w.Base()
	i := slices.IndexFunc(c.children, func(x Widget) bool { return x.Base() == base })
	if i < 0 {
		return
	}
	c.children = slices.Delete(c.children, i, i+1)
	if c.byID[base.id] == w {
		delete(c.byID, base.id)
	}
	if c.byName[base.name] == w {
		delete(c.byName, base.name)
	}
	base.parent = nil
	if el := w.El(); el != nil && el.Parent == c.contentEl {
		dom.Detach(el)
	}
}

// Children returns the children in display order.
func (c *Component) Children() []Widget {
	if c.disposed {
		return nil
	}
	return slices.Clone(c.children)
}

// Child returns the child registered under name.
func (c *Component) Child(name string) Widget {
	if c.disposed {
		return nil
	}
	return c.byName[name]
}

// ChildByID returns the child with the given id.
func (c *Component) ChildByID(id string) Widget {
	if c.disposed {
		return nil
	}
	return c.byID[id]
}

// Lookup follows a path of child names, e.g.
// Lookup("ControlBar", "ProgressControl", "SeekBar").
func (c *Component) Lookup(path ...string) Widget {
	if c.disposed {
		return nil
	}
	var cur Widget = c.self
	for _, name := range path {
		next := cur.Base().Child(name)
		if next == nil {
			return nil
		}
		cur = next
	}
	return cur
}
