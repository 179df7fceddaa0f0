package plan

import (
	"apiresource/internal/analyze"
	"apiresource/internal/diagnostic"
	"apiresource/internal/mapping"
)

// StringSetType is the Go type a string set field must have.
var StringSetType = analyze.TypeID{PkgPath: "apiresource/resource", Name: "StringSet"}

// Plan is the final output of the resolution pipeline.
type Plan struct {
	// PkgPath and PkgName identify the package the formats are generated into.
	PkgPath string
	PkgName string
	// Dir is the package directory.
	Dir string
	// Output is the generated file name inside Dir.
	Output string
	// Resources in dependency order: nested formats come first.
	Resources []ResourcePlan
	// Diagnostics contains all warnings and errors from resolution.
	Diagnostics diagnostic.Diagnostics
}

// Resource returns the plan of the Go type name, or nil.
func (p *Plan) Resource(typeName string) *ResourcePlan {
	for i := range p.Resources {
		if p.Resources[i].TypeName == typeName {
			return &p.Resources[i]
		}
	}

	return nil
}

// ResourcePlan is one resolved format.
type ResourcePlan struct {
	// Type is the analyzed model struct.
	Type *analyze.TypeInfo
	// TypeName is the Go type name.
	TypeName string
	// FormatName is the name reported in decode errors.
	FormatName string
	// VarName is the package-level variable holding the format.
	VarName string
	// Fields in dictionary order.
	Fields []FieldPlan
}

// DependsOn returns the nested resource type names in field order, without duplicates.
func (r *ResourcePlan) DependsOn() []string {
	seen := map[string]struct{}{}

	var deps []string
	for _, f := range r.Fields {
		if f.Kind != mapping.KindResource {
			continue
		}

		if _, ok := seen[f.NestedType]; ok {
			continue
		}

		seen[f.NestedType] = struct{}{}
		deps = append(deps, f.NestedType)
	}

	return deps
}

// FieldPlan binds one key to one Go field.
type FieldPlan struct {
	Key      string
	GoField  string
	Kind     mapping.FieldKind
	Optional bool
	// NestedType is the Go type name of a resource field's element.
	NestedType string
	// Source tells how GoField was found.
	Source MatchSource
	// Explanation describes why this field was chosen.
	Explanation string
}

// MatchSource indicates how a key was bound to its Go field.
type MatchSource int

const (
	// MatchSourceExplicit - the declaration names the Go field.
	MatchSourceExplicit MatchSource = iota
	// MatchSourceTag - a struct tag carries the key.
	MatchSourceTag
	// MatchSourceName - the normalized key equals the normalized field name.
	MatchSourceName
)

// String returns a human-readable representation of the MatchSource.
func (s MatchSource) String() string {
	switch s {
	case MatchSourceExplicit:
		return "explicit"
	case MatchSourceTag:
		return "tag"
	case MatchSourceName:
		return "name"
	default:
		return "unknown"
	}
}
