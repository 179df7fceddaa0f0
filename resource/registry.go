package resource

import (
	"fmt"
	"slices"
	"sync"
)

// Entry is a registered model with its type erased.
type Entry struct {
	name     string
	decode   func(Dictionary, Config) (any, error)
	encode   func(any) (Dictionary, error)
	describe func() []FieldInfo
}

func (e *Entry) Name() string {
	return e.name
}

// Decode returns a *M for the registered M.
func (e *Entry) Decode(raw Dictionary, cfg Config) (any, error) {
	return e.decode(raw, cfg)
}

// Encode accepts a *M for the registered M.
func (e *Entry) Encode(model any) (Dictionary, error) {
	return e.encode(model)
}

func (e *Entry) Describe() []FieldInfo {
	return e.describe()
}

// Registry maps names to models so they can be decoded without knowing the
// Go type statically. It is safe for concurrent use.
type Registry struct {
	mu      sync.RWMutex
	entries map[string]*Entry
}

func NewRegistry() *Registry {
	return &Registry{entries: make(map[string]*Entry)}
}

// Register adds M under name. An empty name registers M under its format name.
func Register[M any, P Model[M]](r *Registry, name string) error {
	format := P(new(M)).APIFormat()
	if format == nil {
		return fmt.Errorf("register %q: %w", name, ErrSpecificationInvalid)
	}

	if name == "" {
		name = format.Name()
	}

	entry := &Entry{
		name: name,
		decode: func(raw Dictionary, cfg Config) (any, error) {
			m, err := format.DecodeWithConfig(raw, cfg)
			if err != nil {
				return nil, err
			}

			return m, nil
		},
		encode: func(model any) (Dictionary, error) {
			m, ok := model.(*M)
			if !ok {
				return nil, fmt.Errorf("encode %s: unexpected model type %T", name, model)
			}

			return format.Encode(m), nil
		},
		describe: format.Fields,
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.entries == nil {
		r.entries = make(map[string]*Entry)
	}

	if _, ok := r.entries[name]; ok {
		return fmt.Errorf("register %q: name already registered", name)
	}

	r.entries[name] = entry

	return nil
}

// MustRegister is Register for init functions.
func MustRegister[M any, P Model[M]](r *Registry, name string) {
	if err := Register[M, P](r, name); err != nil {
		panic(err)
	}
}

func (r *Registry) Lookup(name string) (*Entry, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	e, ok := r.entries[name]

	return e, ok
}

// Names returns the registered names sorted.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.entries))
	for name := range r.entries {
		names = append(names, name)
	}

	slices.Sort(names)

	return names
}
