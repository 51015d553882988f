package pass

import (
	"fmt"
	"sort"
)

// Options parameterize the construction of registered passes
type Options struct {
	DefaultParallelism int
}

// A Factory constructs a Pass
type Factory func(opts Options) Pass

// Registry resolves configured pass names into passes
type Registry struct {
	factories map[string]Factory
}

// NewRegistry creates an empty Registry
func NewRegistry() *Registry {
	return &Registry{factories: make(map[string]Factory)}
}

// Register makes a pass available under name. Registering a name twice is an error.
func (r *Registry) Register(name string, factory Factory) error {
	if _, ok := r.factories[name]; ok {
		return fmt.Errorf("pass %s is already registered", name)
	}
	r.factories[name] = factory
	return nil
}

// Names returns every registered name, sorted
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Resolve constructs the named passes, preserving their order
func (r *Registry) Resolve(names []string, opts Options) ([]Pass, error) {
	passes := make([]Pass, 0, len(names))
	for _, name := range names {
		factory, ok := r.factories[name]
		if !ok {
			return nil, fmt.Errorf("unknown pass %s (known passes: %v)", name, r.Names())
		}
		passes = append(passes, factory(opts))
	}
	return passes, nil
}
