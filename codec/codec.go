// Package codec reads and writes resource dictionaries in the wire formats an
// API response or a test fixture may use.
package codec

import (
	"errors"
	"fmt"
	"path/filepath"
	"slices"
	"strings"

	"apiresource/resource"
)

// ErrNotDictionary is returned when a document's top level is not a map.
var ErrNotDictionary = errors.New("document is not a dictionary")

// Codec converts between bytes and a resource.Dictionary. Implementations
// are deterministic: the same dictionary always marshals to the same bytes.
type Codec interface {
	Name() string
	ContentType() string
	Extensions() []string
	Marshal(resource.Dictionary) ([]byte, error)
	Unmarshal([]byte) (resource.Dictionary, error)
}

// Registry maps codec names, content types and file extensions to codecs.
type Registry struct {
	byName map[string]Codec
	byType map[string]Codec
	byExt  map[string]Codec
}

// NewRegistry returns a registry preloaded with every built-in codec.
func NewRegistry() *Registry {
	r := &Registry{
		byName: make(map[string]Codec),
		byType: make(map[string]Codec),
		byExt:  make(map[string]Codec),
	}

	r.Register(JSON())
	r.Register(YAML())
	r.Register(CBOR())
	r.Register(Proto())

	return r
}

// Register adds c, replacing any codec with the same name, content type or extension.
func (r *Registry) Register(c Codec) {
	r.byName[c.Name()] = c
	r.byType[c.ContentType()] = c

	for _, ext := range c.Extensions() {
		r.byExt[strings.ToLower(ext)] = c
	}
}

// Get returns a codec by name or content type.
func (r *Registry) Get(name string) (Codec, bool) {
	if c, ok := r.byName[strings.ToLower(name)]; ok {
		return c, true
	}

	c, ok := r.byType[name]

	return c, ok
}

// ForPath picks a codec from the file extension of path.
func (r *Registry) ForPath(path string) (Codec, bool) {
	c, ok := r.byExt[strings.ToLower(filepath.Ext(path))]
	return c, ok
}

// Names returns the registered codec names sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.byName))
	for name := range r.byName {
		names = append(names, name)
	}

	slices.Sort(names)

	return names
}

var builtin = NewRegistry()

// ByName returns a built-in codec by name ("json", "yaml", "cbor", "proto")
// or content type.
func ByName(name string) (Codec, error) {
	c, ok := builtin.Get(name)
	if !ok {
		return nil, fmt.Errorf("unknown codec %q, expected one of %s", name, strings.Join(builtin.Names(), ", "))
	}

	return c, nil
}

// ForPath returns the built-in codec for the extension of path.
func ForPath(path string) (Codec, error) {
	c, ok := builtin.ForPath(path)
	if !ok {
		return nil, fmt.Errorf("no codec for file %q", path)
	}

	return c, nil
}
