package component

import (
	"emperror.dev/errors"
	"golang.org/x/net/html"
	"gopkg.in/yaml.v3"
)

// TooltipKind selects how a tooltip handler resolves to an element.
type TooltipKind int

const (
	// TooltipUnset leaves the decision to the player-wide tooltips flag.
	TooltipUnset TooltipKind = iota
	// TooltipDisabled never attaches a tooltip.
	TooltipDisabled
	// TooltipEnabled uses the button's own element.
	TooltipEnabled
	// TooltipByID looks the element up by id in the document.
	TooltipByID
	// TooltipOwner uses the element of another component or owner.
	TooltipOwner
	// TooltipNode uses a node directly.
	TooltipNode
)

func (k TooltipKind) String() string {
	switch k {
	case TooltipDisabled:
		return "disabled"
	case TooltipEnabled:
		return "enabled"
	case TooltipByID:
		return "by-id"
	case TooltipOwner:
		return "owner"
	case TooltipNode:
		return "node"
	default:
		return "unset"
	}
}

// TooltipHandler is the tagged value of the "tooltip" option. In
// configuration files it is written as a boolean or an element id.
type TooltipHandler struct {
	Kind  TooltipKind
	ID    string
	Owner Target
	Node  *html.Node
}

// TooltipOff disables the tooltip.
func TooltipOff() TooltipHandler { return TooltipHandler{Kind: TooltipDisabled} }

// TooltipOn shows the tooltip while the button itself is hovered or focused.
func TooltipOn() TooltipHandler { return TooltipHandler{Kind: TooltipEnabled} }

// TooltipFor shows the tooltip while the element with the given id is hovered or focused.
func TooltipFor(id string) TooltipHandler { return TooltipHandler{Kind: TooltipByID, ID: id} }

// TooltipOwnedBy shows the tooltip while owner's element is hovered or focused.
func TooltipOwnedBy(owner Target) TooltipHandler {
	return TooltipHandler{Kind: TooltipOwner, Owner: owner}
}

// TooltipAt shows the tooltip while node is hovered or focused.
func TooltipAt(node *html.Node) TooltipHandler {
	return TooltipHandler{Kind: TooltipNode, Node: node}
}

// IsZero reports whether the handler is unset.
func (t TooltipHandler) IsZero() bool {
	return t.Kind == TooltipUnset
}

// UnmarshalYAML accepts true, false, null or an element id.
func (t *TooltipHandler) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return errors.Errorf("tooltip must be a boolean or an element id (line %d)", value.Line)
	}
	switch value.Tag {
	case "!!null":
		*t = TooltipHandler{}
		return nil
	case "!!bool":
		var b bool
		if err := value.Decode(&b); err != nil {
			return errors.Wrap(err, "cannot decode tooltip flag")
		}
		*t = boolHandler(b)
		return nil
	default:
		*t = TooltipFor(value.Value)
		return nil
	}
}

// UnmarshalTOML accepts a boolean or an element id.
func (t *TooltipHandler) UnmarshalTOML(v any) error {
	switch data := v.(type) {
	case bool:
		*t = boolHandler(data)
	case string:
		*t = TooltipFor(data)
	default:
		return errors.Errorf("tooltip must be a boolean or an element id, got %T", v)
	}
	return nil
}

// MarshalYAML writes the handler back in its configuration form. Handlers
// pointing at live elements have no such form and are written as true.
func (t TooltipHandler) MarshalYAML() (any, error) {
	switch t.Kind {
	case TooltipUnset:
		return nil, nil
	case TooltipDisabled:
		return false, nil
	case TooltipByID:
		return t.ID, nil
	default:
		return true, nil
	}
}

func boolHandler(b bool) TooltipHandler {
	if b {
		return TooltipOn()
	}
	return TooltipOff()
}
