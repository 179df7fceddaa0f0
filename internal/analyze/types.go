package analyze

import (
	"go/types"
	"reflect"
	"strings"

	"apiresource/internal/common"
)

// TypeID uniquely identifies a type by its package path and name.
type TypeID struct {
	PkgPath string // e.g., "apiresource/paypal"
	Name    string // e.g., "AccountNonce"
}

// String returns a human-readable representation of the TypeID.
func (t TypeID) String() string {
	if t.PkgPath == "" {
		return t.Name
	}

	return t.PkgPath + "." + t.Name
}

// TypeKind represents the kind of a type.
type TypeKind int

const (
	TypeKindUnknown  TypeKind = iota
	TypeKindBasic             // int, string, bool, etc.
	TypeKindStruct            // struct type
	TypeKindPointer           // pointer to another type
	TypeKindSlice             // slice of another type
	TypeKindMap               // map type
	TypeKindNamed             // named non-struct type in an analyzed package
	TypeKindExternal          // named type from a package that was not analyzed
)

// String returns a human-readable representation of the TypeKind.
func (k TypeKind) String() string {
	switch k {
	case TypeKindBasic:
		return "basic"
	case TypeKindStruct:
		return "struct"
	case TypeKindPointer:
		return "pointer"
	case TypeKindSlice:
		return "slice"
	case TypeKindMap:
		return "map"
	case TypeKindNamed:
		return "named"
	case TypeKindExternal:
		return "external"
	default:
		return common.UnknownStr
	}
}

// TypeInfo describes a Go type in the type graph.
type TypeInfo struct {
	ID         TypeID      // Unique identifier (empty for unnamed types like *T or []T)
	Kind       TypeKind    // Kind of type
	Underlying *TypeInfo   // For named types, the underlying type
	ElemType   *TypeInfo   // For pointers, slices and maps, the element type
	Fields     []FieldInfo // For structs, the list of fields
	GoType     types.Type  // The original go/types.Type
}

// IsNamed returns true if this type has a name (TypeID is set).
func (t *TypeInfo) IsNamed() bool {
	return t.ID.Name != ""
}

// IsString reports whether t is the predeclared string type.
func (t *TypeInfo) IsString() bool {
	if t == nil || t.Kind != TypeKindBasic {
		return false
	}

	b, ok := t.GoType.(*types.Basic)

	return ok && b.Kind() == types.String
}

// Field returns the field named name, or nil.
func (t *TypeInfo) Field(name string) *FieldInfo {
	for i := range t.Fields {
		if t.Fields[i].Name == name {
			return &t.Fields[i]
		}
	}

	return nil
}

// ExportedFieldNames lists the exported, non-embedded field names in declaration order.
func (t *TypeInfo) ExportedFieldNames() []string {
	var names []string
	for _, f := range t.Fields {
		if f.Exported && !f.Embedded {
			names = append(names, f.Name)
		}
	}

	return names
}

// String renders the type the way it is spelled in Go source, qualified by
// package name for types outside of the analyzed packages.
func (t *TypeInfo) String() string {
	if t == nil {
		return "<nil>"
	}

	switch t.Kind {
	case TypeKindBasic:
		return t.GoType.String()
	case TypeKindStruct, TypeKindNamed:
		if t.IsNamed() {
			return t.ID.Name
		}

		return "struct{...}"
	case TypeKindPointer:
		return "*" + t.ElemType.String()
	case TypeKindSlice:
		return "[]" + t.ElemType.String()
	case TypeKindExternal:
		return common.PkgAlias(t.ID.PkgPath) + "." + t.ID.Name
	default:
		if t.GoType != nil {
			return t.GoType.String()
		}

		return common.UnknownStr
	}
}

// FieldInfo describes a struct field.
type FieldInfo struct {
	Name     string            // Go field name
	Exported bool              // Whether the field is exported
	Type     *TypeInfo         // Field type
	Tag      reflect.StructTag // Raw struct tag
	Embedded bool              // Whether the field is embedded (anonymous)
	Index    int               // Field index in the struct
}

// TagName returns the name part of the struct tag key, e.g. "redirectUrl" for
// `json:"redirectUrl,omitempty"`. Empty when the tag is absent or "-".
func (f *FieldInfo) TagName(key string) string {
	tag := f.Tag.Get(key)
	if tag == "-" {
		return ""
	}

	name, _, _ := strings.Cut(tag, ",")

	return name
}

// TypeGraph holds all analyzed types from loaded packages.
type TypeGraph struct {
	// Types maps TypeID to TypeInfo for all named types.
	Types map[TypeID]*TypeInfo
	// Packages maps package paths to their package info.
	Packages map[string]*PackageInfo
}

// NewTypeGraph creates a new empty TypeGraph.
func NewTypeGraph() *TypeGraph {
	return &TypeGraph{
		Types:    make(map[TypeID]*TypeInfo),
		Packages: make(map[string]*PackageInfo),
	}
}

// GetType returns the TypeInfo for a given TypeID, or nil if not found.
func (g *TypeGraph) GetType(id TypeID) *TypeInfo {
	return g.Types[id]
}

// Package returns the only loaded package, or nil when zero or several are loaded.
func (g *TypeGraph) Package() *PackageInfo {
	if len(g.Packages) != 1 {
		return nil
	}

	for _, p := range g.Packages {
		return p
	}

	return nil
}

// Lookup finds a type declared in the package at pkgPath by name.
func (g *TypeGraph) Lookup(pkgPath, name string) *TypeInfo {
	return g.Types[TypeID{PkgPath: pkgPath, Name: name}]
}

// PackageInfo holds information about a loaded package.
type PackageInfo struct {
	Path  string   // Import path
	Name  string   // Package name
	Dir   string   // Directory holding the package sources
	Types []TypeID // Named types defined in this package
}

// TypeNames returns the names of the package's types.
func (p *PackageInfo) TypeNames() []string {
	names := make([]string, len(p.Types))
	for i, id := range p.Types {
		names[i] = id.Name
	}

	return names
}
