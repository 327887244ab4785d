package component

import (
	"bytes"
	"maps"

	"emperror.dev/errors"
	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Options configure one component. They are merged once at construction
// (built-in defaults < player-level config < instance config) and never
// mutated afterwards; to change them, build a new component.
type Options struct {
	// ID overrides the generated component id.
	ID string `yaml:"id,omitempty" toml:"id,omitempty"`
	// Name is the registry name; also the key for player-level options.
	Name string `yaml:"name,omitempty" toml:"name,omitempty"`
	// ClassName is appended to the classes the component builds itself.
	ClassName string `yaml:"className,omitempty" toml:"className,omitempty"`
	// Children are created in order when the component is constructed.
	Children []ChildSpec `yaml:"children,omitempty" toml:"children,omitempty"`
	// SkipChildren suppresses creation of Children.
	SkipChildren bool `yaml:"skipChildren,omitempty" toml:"skipChildren,omitempty"`
	// Tooltip selects the element that shows a button's tooltip.
	Tooltip TooltipHandler `yaml:"tooltip,omitempty" toml:"tooltip,omitempty"`
	// ControlText is the initial accessible label of a button.
	ControlText string `yaml:"controlText,omitempty" toml:"controlText,omitempty"`
	// Extra carries plugin-defined keys. They are passed through untouched.
	Extra map[string]any `yaml:",inline" toml:"extra,omitempty"`
}

// ChildSpec names a child to create and its instance options.
type ChildSpec struct {
	Name     string  `yaml:"name" toml:"name"`
	Disabled bool    `yaml:"disabled,omitempty" toml:"disabled,omitempty"`
	Options  Options `yaml:"options,omitempty" toml:"options,omitempty"`
}

// Child returns a ChildSpec for name with no instance options.
func Child(name string) ChildSpec {
	return ChildSpec{Name: name}
}

// Children returns ChildSpecs for names.
func Children(names ...string) []ChildSpec {
	specs := make([]ChildSpec, len(names))
	for i, n := range names {
		specs[i] = Child(n)
	}
	return specs
}

// Merge returns o overridden by each of overrides in turn. Scalars override
// when non-zero, Children override when non-nil, Tooltip overrides when set,
// and Extra is merged key by key, recursing into nested maps.
func (o Options) Merge(overrides ...Options) Options {
	out := o
	out.Children = append([]ChildSpec(nil), o.Children...)
	out.Extra = mergeExtra(nil, o.Extra)
	for _, ov := range overrides {
		if ov.ID != "" {
			out.ID = ov.ID
		}
		if ov.Name != "" {
			out.Name = ov.Name
		}
		if ov.ClassName != "" {
			out.ClassName = ov.ClassName
		}
		if ov.Children != nil {
			out.Children = append([]ChildSpec(nil), ov.Children...)
		}
		if ov.SkipChildren {
			out.SkipChildren = true
		}
		if ov.Tooltip.Kind != TooltipUnset {
			out.Tooltip = ov.Tooltip
		}
		if ov.ControlText != "" {
			out.ControlText = ov.ControlText
		}
		out.Extra = mergeExtra(out.Extra, ov.Extra)
	}
	return out
}

func mergeExtra(dst, src map[string]any) map[string]any {
	if len(src) == 0 {
		return dst
	}
	out := make(map[string]any, len(dst)+len(src))
	maps.Copy(out, dst)
	for k, v := range src {
		srcMap, srcIsMap := v.(map[string]any)
		dstMap, dstIsMap := out[k].(map[string]any)
		if srcIsMap && dstIsMap {
			out[k] = mergeExtra(dstMap, srcMap)
			continue
		}
		if srcIsMap {
			out[k] = mergeExtra(nil, srcMap)
			continue
		}
		out[k] = v
	}
	return out
}

// UnmarshalYAML accepts either a bare component name or a mapping.
func (c *ChildSpec) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.ScalarNode {
		var name string
		if err := value.Decode(&name); err != nil {
			return errors.Wrap(err, "cannot decode child name")
		}
		*c = ChildSpec{Name: name}
		return nil
	}
	type plain ChildSpec
	var p plain
	if err := value.Decode(&p); err != nil {
		return errors.Wrap(err, "cannot decode child")
	}
	*c = ChildSpec(p)
	return nil
}

// UnmarshalTOML accepts either a bare component name or a table.
func (c *ChildSpec) UnmarshalTOML(v any) error {
	switch data := v.(type) {
	case string:
		*c = ChildSpec{Name: data}
		return nil
	case map[string]any:
		// Re-encode the table so the struct tags drive decoding.
		var buf bytes.Buffer
		if err := toml.NewEncoder(&buf).Encode(data); err != nil {
			return errors.Wrap(err, "cannot re-encode child table")
		}
		type plain ChildSpec
		var p plain
		if _, err := toml.Decode(buf.String(), &p); err != nil {
			return errors.Wrap(err, "cannot decode child table")
		}
		*c = ChildSpec(p)
		return nil
	default:
		return errors.Errorf("child must be a name or a table, got %T", v)
	}
}
