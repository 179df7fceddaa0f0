package plan

import (
	"fmt"

	"apiresource/internal/analyze"
	"apiresource/internal/diagnostic"
	"apiresource/internal/mapping"
	"apiresource/internal/match"
)

// bindField finds the Go field for a declared key. Explicit fields win, then
// struct tags in config order, then normalized name equality. More than one
// name match is ambiguous and needs an explicit field.
func (r *Resolver) bindField(
	t *analyze.TypeInfo,
	rd *mapping.ResourceDecl,
	fd *mapping.FieldDecl,
	diags *diagnostic.Diagnostics,
) (*analyze.FieldInfo, MatchSource, string, bool) {
	if fd.Field != "" {
		f := t.Field(fd.Field)
		if f == nil {
			// Reported by mapping.Validate.
			return nil, 0, "", false
		}

		return f, MatchSourceExplicit, "declared", true
	}

	for _, tagKey := range r.config.TagKeys {
		for i := range t.Fields {
			f := &t.Fields[i]
			if f.Exported && f.TagName(tagKey) == fd.Key {
				return f, MatchSourceTag, fmt.Sprintf("%s tag", tagKey), true
			}
		}
	}

	names := t.ExportedFieldNames()

	found := match.Exact(fd.Key, names)
	switch len(found) {
	case 1:
		return t.Field(found[0]), MatchSourceName, fmt.Sprintf("name match %q", match.NormalizeKey(fd.Key)), true
	case 0:
		d := diags.AddError("field_unmatched",
			fmt.Sprintf("no field of %s matches key %q, name one explicitly", rd.Type, fd.Key), rd.Type, fd.Key)

		ranked := match.Rank(fd.Key, names).Above(match.DefaultThreshold)
		if len(ranked) > r.config.MaxSuggestions {
			ranked = ranked[:r.config.MaxSuggestions]
		}

		d.Suggest(ranked.Names()...)
	default:
		diags.AddError("field_ambiguous",
			fmt.Sprintf("key %q matches several fields of %s, name one explicitly", fd.Key, rd.Type), rd.Type, fd.Key).
			Suggest(found...)
	}

	return nil, 0, "", false
}

// deriveKind maps a Go field type to a value kind. Resource fields must be a
// pointer to a struct that is itself declared.
func (r *Resolver) deriveKind(
	f *analyze.FieldInfo,
	rd *mapping.ResourceDecl,
	fd *mapping.FieldDecl,
	diags *diagnostic.Diagnostics,
) (mapping.FieldKind, string, bool) {
	ft := f.Type

	switch {
	case ft.IsString():
		return mapping.KindString, "", true
	case ft.Kind == analyze.TypeKindExternal && ft.ID == StringSetType:
		return mapping.KindStringSet, "", true
	case ft.Kind == analyze.TypeKindPointer && ft.ElemType != nil && ft.ElemType.Kind == analyze.TypeKindStruct && ft.ElemType.IsNamed():
		nested := ft.ElemType.ID.Name
		if ft.ElemType.ID.PkgPath != r.pkg.Path || !r.declared(nested) {
			diags.AddError("nested_not_declared",
				fmt.Sprintf("field %s points to %s, which has no declared format", f.Name, ft.ElemType.ID), rd.Type, fd.Key)

			return "", "", false
		}

		return mapping.KindResource, nested, true
	default:
		diags.AddError("unsupported_field_type",
			fmt.Sprintf("field %s has type %s; use string, resource.StringSet or a pointer to a declared struct", f.Name, ft),
			rd.Type, fd.Key)

		return "", "", false
	}
}

// declared reports whether a resource of the file resolves to the type name.
func (r *Resolver) declared(typeName string) bool {
	for i := range r.decl.Resources {
		t := mapping.ResolveType(r.graph, r.pkg.Path, r.decl.Resources[i].Type)
		if t != nil && t.ID.Name == typeName {
			return true
		}
	}

	return false
}
