package mapping

import (
	"fmt"

	"apiresource/internal/analyze"
	"apiresource/internal/diagnostic"
	"apiresource/internal/match"
)

// SupportedVersion is the only declaration schema version understood.
const SupportedVersion = "1"

// Validate validates a declaration file against the type graph of its package.
// This is a structural check only: field matching and kind derivation happen
// during plan resolution.
func Validate(df *DeclarationFile, graph *analyze.TypeGraph) *diagnostic.Diagnostics {
	res := &diagnostic.Diagnostics{}
	if df == nil {
		res.AddError("declaration_is_nil", "declaration file is nil", "", "")
		return res
	}

	if graph == nil {
		res.AddError("graph_is_nil", "type graph is nil", "", "")
		return res
	}

	if df.Version != SupportedVersion {
		res.AddError("unsupported_version", fmt.Sprintf("version %q is not supported, use %q", df.Version, SupportedVersion), "", "")
	}

	pkg := graph.Package()
	if pkg == nil {
		res.AddError("package_not_single",
			fmt.Sprintf("package %q must match exactly one package, matched %d", df.Package, len(graph.Packages)), "", "")

		return res
	}

	if len(df.Resources) == 0 {
		res.AddWarning("no_resources", "declaration file lists no resources", "", "")
	}

	seenTypes := map[string]struct{}{}
	seenNames := map[string]struct{}{}

	for i := range df.Resources {
		rd := &df.Resources[i]

		if rd.Type == "" {
			res.AddError("empty_type", fmt.Sprintf("resource #%d has no type", i), "", "")
			continue
		}

		if _, dup := seenTypes[rd.Type]; dup {
			res.AddError("duplicate_type", "type is declared more than once", rd.Type, "")
			continue
		}

		seenTypes[rd.Type] = struct{}{}

		if _, dup := seenNames[rd.FormatName()]; dup {
			res.AddError("duplicate_name", fmt.Sprintf("format name %q is used more than once", rd.FormatName()), rd.Type, "")
		}

		seenNames[rd.FormatName()] = struct{}{}

		t := ResolveType(graph, pkg.Path, rd.Type)
		if t == nil {
			d := res.AddError("type_not_found", fmt.Sprintf("type not found in package %s", pkg.Path), rd.Type, "")
			if s, ok := match.Suggest(rd.Type, pkg.TypeNames()); ok {
				d.Suggest(s)
			}

			continue
		}

		if t.Kind != analyze.TypeKindStruct {
			res.AddError("not_a_struct", fmt.Sprintf("type is a %s, not a struct", t.Kind), rd.Type, "")
			continue
		}

		validateFields(res, rd, t)
	}

	return res
}

func validateFields(res *diagnostic.Diagnostics, rd *ResourceDecl, t *analyze.TypeInfo) {
	if len(rd.Fields) == 0 {
		res.AddWarning("no_fields", "resource declares no fields", rd.Type, "")
	}

	seenKeys := map[string]struct{}{}
	boundFields := map[string]string{}

	for i := range rd.Fields {
		fd := &rd.Fields[i]

		if fd.Key == "" {
			res.AddError("empty_key", fmt.Sprintf("field #%d has an empty key", i), rd.Type, "")
			continue
		}

		if _, dup := seenKeys[fd.Key]; dup {
			res.AddError("duplicate_key", "key is declared more than once", rd.Type, fd.Key)
			continue
		}

		seenKeys[fd.Key] = struct{}{}

		if !fd.Kind.IsValid() {
			res.AddError("invalid_kind",
				fmt.Sprintf("kind %q is not one of %q, %q, %q", fd.Kind, KindString, KindStringSet, KindResource), rd.Type, fd.Key)
		}

		if fd.Field == "" {
			continue
		}

		if other, ok := boundFields[fd.Field]; ok {
			res.AddError("field_reused", fmt.Sprintf("Go field %s is already bound to key %q", fd.Field, other), rd.Type, fd.Key)
			continue
		}

		boundFields[fd.Field] = fd.Key

		validateGoField(res, rd, t, fd)
	}
}

func validateGoField(res *diagnostic.Diagnostics, rd *ResourceDecl, t *analyze.TypeInfo, fd *FieldDecl) {
	f := t.Field(fd.Field)
	if f == nil {
		d := res.AddError("field_not_found", fmt.Sprintf("type has no field %s", fd.Field), rd.Type, fd.Key)
		if s, ok := match.Suggest(fd.Field, t.ExportedFieldNames()); ok {
			d.Suggest(s)
		}

		return
	}

	if !f.Exported {
		res.AddError("field_unexported", fmt.Sprintf("field %s is not exported", fd.Field), rd.Type, fd.Key)
		return
	}

	if f.Embedded {
		res.AddError("field_embedded", fmt.Sprintf("field %s is embedded", fd.Field), rd.Type, fd.Key)
	}
}
