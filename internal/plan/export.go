package plan

import (
	"apiresource/internal/mapping"
)

// Export turns a resolved plan back into a declaration file in which every
// field names its Go field, so later changes to field names or tags cannot
// silently rebind a key. Resources keep their resolved order.
func Export(p *Plan, pkgPattern string) *mapping.DeclarationFile {
	df := &mapping.DeclarationFile{
		Version: mapping.SupportedVersion,
		Package: pkgPattern,
		Output:  p.Output,
	}

	for _, rp := range p.Resources {
		rd := mapping.ResourceDecl{Type: rp.TypeName}
		if rp.FormatName != rp.TypeName {
			rd.Name = rp.FormatName
		}

		for _, fp := range rp.Fields {
			rd.Fields = append(rd.Fields, mapping.FieldDecl{
				Key:      fp.Key,
				Field:    fp.GoField,
				Optional: fp.Optional,
			})
		}

		df.Resources = append(df.Resources, rd)
	}

	return df
}
