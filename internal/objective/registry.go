package objective

import (
	"fmt"
	"slices"
	"sync"
)

// Registry maps normalized names to objectives. It is safe for concurrent
// use.
type Registry struct {
	data map[string]Objective
	mu   sync.RWMutex
}

func NewRegistry() *Registry {
	return &Registry{
		data: make(map[string]Objective),
	}
}

// Default returns a registry holding every builtin objective.
func Default() *Registry {
	r := NewRegistry()
	for _, o := range Builtins() {
		if err := r.Register(o); err != nil {
			panic(err)
		}
	}
	return r
}

// Register adds o under its normalized name.
func (r *Registry) Register(o Objective) error {
	key := Normalize(o.Name)
	if key == "" {
		return fmt.Errorf("objective name %q is empty after normalization", o.Name)
	}
	if o.Eval == nil {
		return fmt.Errorf("objective %q has no Eval", o.Name)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.data[key]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicate, key)
	}
	o.Name = key
	r.data[key] = o
	return nil
}

// Lookup finds an objective by any spelling that normalizes to its name.
func (r *Registry) Lookup(name string) (Objective, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	o, ok := r.data[Normalize(name)]
	if !ok {
		return Objective{}, fmt.Errorf("%w: %q", ErrUnknown, name)
	}
	return o, nil
}

// Names returns the registered names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.data))
	for k := range r.data {
		names = append(names, k)
	}
	slices.Sort(names)
	return names
}

func (r *Registry) Size() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.data)
}
