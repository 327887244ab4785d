package component

import (
	"slices"
	"sync"

	"emperror.dev/errors"
	"golang.org/x/mod/semver"
)

// Factory constructs a registered component type.
type Factory func(p Player, opts Options) Widget

// Plugin is a component type installed from outside the core.
type Plugin struct {
	// Name is the registry name the plugin installs under.
	Name string
	// Factory constructs it.
	Factory Factory
	// Requires is the minimum core version as a semver string ("v1.2.0").
	// Empty means any version.
	Requires string
}

// Registry maps component type names to factories. A registry is built
// explicitly and handed to the player; there is no process-wide instance.
type Registry struct {
	mu        sync.RWMutex
	version   string
	factories map[string]Factory
}

// NewRegistry creates an empty registry for the given core version.
func NewRegistry(coreVersion string) *Registry {
	return &Registry{
		version:   coreVersion,
		factories: make(map[string]Factory),
	}
}

// Version returns the core version plugins are checked against.
func (r *Registry) Version() string {
	return r.version
}

// Register installs f under name. Registering an existing name replaces it.
func (r *Registry) Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	r.mu.Lock()
	r.factories[name] = f
	r.mu.Unlock()
}

// RegisterPlugin installs a plugin after checking its version requirement.
func (r *Registry) RegisterPlugin(p Plugin) error {
	if p.Name == "" || p.Factory == nil {
		return errors.New("plugin needs a name and a factory")
	}
	if p.Requires != "" {
		if !semver.IsValid(p.Requires) {
			return errors.Errorf("plugin %s: invalid version requirement %q", p.Name, p.Requires)
		}
		if semver.IsValid(r.version) && semver.Compare(r.version, p.Requires) < 0 {
			return errors.Errorf("plugin %s requires core %s, have %s", p.Name, p.Requires, r.version)
		}
	}
	r.Register(p.Name, p.Factory)
	return nil
}

// Get returns the factory registered under name.
func (r *Registry) Get(name string) (Factory, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	f, ok := r.factories[name]
	return f, ok
}

// Names returns the registered names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.factories))
	for n := range r.factories {
		names = append(names, n)
	}
	slices.Sort(names)
	return names
}
