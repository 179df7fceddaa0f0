package mapping

import (
	"fmt"
	"path/filepath"
)

// DefaultOutput is the generated file name used when a declaration file omits output.
const DefaultOutput = "zz_generated.apiformat.go"

// DeclarationFile represents the root of a YAML format declaration file.
type DeclarationFile struct {
	// Version of the declaration schema.
	Version string `yaml:"version,omitempty"`

	// Package is the Go package pattern holding the model types, resolved
	// relative to the directory of the file.
	Package string `yaml:"package,omitempty"`

	// Output is the generated file name inside the package directory.
	Output string `yaml:"output,omitempty"`

	// Resources lists the model types that get a format, in file order.
	Resources []ResourceDecl `yaml:"resources"`

	// Path is where the file was loaded from.
	Path string `yaml:"-"`
}

// Dir returns the directory package patterns are resolved from.
func (f *DeclarationFile) Dir() string {
	if f.Path == "" {
		return "."
	}

	return filepath.Dir(f.Path)
}

// Resource returns the declaration for the Go type name, or nil.
func (f *DeclarationFile) Resource(typeName string) *ResourceDecl {
	for i := range f.Resources {
		if f.Resources[i].Type == typeName {
			return &f.Resources[i]
		}
	}

	return nil
}

// ResourceDecl declares the format of one model type.
type ResourceDecl struct {
	// Type is the Go type name in the declared package.
	Type string `yaml:"type"`

	// Name is the format name reported in decode errors. Defaults to Type.
	Name string `yaml:"name,omitempty"`

	// Fields binds dictionary keys to Go fields, in dictionary order.
	Fields []FieldDecl `yaml:"fields"`
}

// FormatName returns Name, or Type when Name is empty.
func (r *ResourceDecl) FormatName() string {
	if r.Name != "" {
		return r.Name
	}

	return r.Type
}

// Keys returns the declared keys in order.
func (r *ResourceDecl) Keys() []string {
	keys := make([]string, len(r.Fields))
	for i, f := range r.Fields {
		keys[i] = f.Key
	}

	return keys
}

// FieldKind pins the value type of a field.
type FieldKind string

const (
	// KindAuto derives the kind from the Go field type.
	KindAuto      FieldKind = ""
	KindString    FieldKind = "string"
	KindStringSet FieldKind = "stringSet"
	KindResource  FieldKind = "resource"
)

// IsValid returns true if the kind is a recognized value.
func (k FieldKind) IsValid() bool {
	switch k {
	case KindAuto, KindString, KindStringSet, KindResource:
		return true
	default:
		return false
	}
}

// FieldDecl binds one dictionary key to a Go field.
type FieldDecl struct {
	// Key is the dictionary key.
	Key string
	// Field is the Go field name; empty means match by name.
	Field string
	// Optional allows the key to be absent.
	Optional bool
	// Kind pins the value type; empty derives it from the Go field type.
	Kind FieldKind
}

// String renders the field in its shortest YAML form.
func (f FieldDecl) String() string {
	key := f.Key
	if f.Optional {
		key += "?"
	}

	if f.Kind != KindAuto {
		return fmt.Sprintf("%s: %s (%s)", key, f.Field, f.Kind)
	}

	if f.Field == "" {
		return key
	}

	return key + ": " + f.Field
}
