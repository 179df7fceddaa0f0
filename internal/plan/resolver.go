package plan

import (
	"errors"
	"fmt"

	"apiresource/internal/analyze"
	"apiresource/internal/common"
	"apiresource/internal/diagnostic"
	"apiresource/internal/mapping"
)

// ResolutionConfig holds configuration for the resolution process.
type ResolutionConfig struct {
	// TagKeys are the struct tag keys consulted, in order, for a key without
	// an explicit Go field.
	TagKeys []string
	// MaxSuggestions caps the suggestions attached to an unmatched key.
	MaxSuggestions int
	// VarSuffix is appended to the lower-cased type name to name the format variable.
	VarSuffix string
}

// DefaultConfig returns the default resolution configuration.
func DefaultConfig() ResolutionConfig {
	return ResolutionConfig{
		TagKeys:        []string{"api", "json"},
		MaxSuggestions: 3,
		VarSuffix:      "Format",
	}
}

// Resolver performs the resolution pipeline.
type Resolver struct {
	graph  *analyze.TypeGraph
	decl   *mapping.DeclarationFile
	config ResolutionConfig
	pkg    *analyze.PackageInfo
}

// NewResolver creates a new Resolver.
func NewResolver(graph *analyze.TypeGraph, decl *mapping.DeclarationFile, config ResolutionConfig) *Resolver {
	return &Resolver{
		graph:  graph,
		decl:   decl,
		config: config,
	}
}

// Resolve is NewResolver(graph, decl, DefaultConfig()).Resolve().
func Resolve(graph *analyze.TypeGraph, decl *mapping.DeclarationFile) (*Plan, error) {
	return NewResolver(graph, decl, DefaultConfig()).Resolve()
}

// ErrResolution is returned when resolution produced error diagnostics.
// The plan is still returned so the diagnostics can be reported.
var ErrResolution = errors.New("resolution failed")

// Resolve runs the full resolution pipeline and returns a Plan.
func (r *Resolver) Resolve() (*Plan, error) {
	if r.decl == nil {
		return nil, errors.New("declaration file is required")
	}

	if r.graph == nil {
		return nil, errors.New("type graph is required")
	}

	plan := &Plan{Output: r.decl.Output}

	plan.Diagnostics.Merge(*mapping.Validate(r.decl, r.graph))
	if plan.Diagnostics.HasErrors() {
		return plan, fmt.Errorf("%w: %w", ErrResolution, plan.Diagnostics.Error())
	}

	r.pkg = r.graph.Package()
	plan.PkgPath = r.pkg.Path
	plan.PkgName = r.pkg.Name
	plan.Dir = r.pkg.Dir

	resources := make([]ResourcePlan, 0, len(r.decl.Resources))
	for i := range r.decl.Resources {
		resources = append(resources, r.resolveResource(&r.decl.Resources[i], &plan.Diagnostics))
	}

	if plan.Diagnostics.HasErrors() {
		plan.Resources = resources
		return plan, fmt.Errorf("%w: %w", ErrResolution, plan.Diagnostics.Error())
	}

	ordered, err := orderResources(resources)
	if err != nil {
		plan.Diagnostics.AddError("resource_cycle", err.Error(), "", "")
		plan.Resources = resources

		return plan, fmt.Errorf("%w: %w", ErrResolution, err)
	}

	plan.Resources = ordered

	return plan, nil
}

func (r *Resolver) resolveResource(rd *mapping.ResourceDecl, diags *diagnostic.Diagnostics) ResourcePlan {
	t := mapping.ResolveType(r.graph, r.pkg.Path, rd.Type)

	rp := ResourcePlan{
		Type:       t,
		TypeName:   t.ID.Name,
		FormatName: rd.FormatName(),
		VarName:    common.LowerFirst(t.ID.Name) + r.config.VarSuffix,
	}

	bound := map[string]string{}

	for i := range rd.Fields {
		fd := &rd.Fields[i]

		f, source, why, ok := r.bindField(t, rd, fd, diags)
		if !ok {
			continue
		}

		if other, dup := bound[f.Name]; dup {
			diags.AddError("field_reused",
				fmt.Sprintf("Go field %s is already bound to key %q", f.Name, other), rd.Type, fd.Key)

			continue
		}

		bound[f.Name] = fd.Key

		kind, nested, ok := r.deriveKind(f, rd, fd, diags)
		if !ok {
			continue
		}

		if fd.Kind != mapping.KindAuto && fd.Kind != kind {
			diags.AddError("kind_mismatch",
				fmt.Sprintf("declared kind %s, but field %s has type %s", fd.Kind, f.Name, f.Type), rd.Type, fd.Key)

			continue
		}

		rp.Fields = append(rp.Fields, FieldPlan{
			Key:         fd.Key,
			GoField:     f.Name,
			Kind:        kind,
			Optional:    fd.Optional,
			NestedType:  nested,
			Source:      source,
			Explanation: fmt.Sprintf("%s -> %s (%s)", fd.Key, f.Name, why),
		})
	}

	return rp
}
