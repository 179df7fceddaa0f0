package gen

import (
	"bytes"
	"errors"
	"fmt"
	"go/format"
	"strconv"
	"text/template"

	"apiresource/internal/mapping"
	"apiresource/internal/plan"
)

// ResourcePkgPath is the import path of the runtime package the generated
// code builds formats with.
const ResourcePkgPath = "apiresource/resource"

// ErrPlanInvalid is returned when the plan still carries error diagnostics.
var ErrPlanInvalid = errors.New("plan has errors")

// GeneratorConfig holds configuration for code generation.
type GeneratorConfig struct {
	// PackageName overrides the package clause. Empty uses the plan's package.
	PackageName string
	// OutputDir receives the .unformatted.go sidecar when formatting fails.
	// Empty disables the sidecar.
	OutputDir string
	// Filename overrides the generated file name. Empty uses the plan's output.
	Filename string
	// GenerateComments emits a comment per field telling how it was bound.
	GenerateComments bool
	// Tool is named in the "Code generated" header.
	Tool string
}

// DefaultGeneratorConfig returns the default generator configuration.
func DefaultGeneratorConfig() GeneratorConfig {
	return GeneratorConfig{
		GenerateComments: true,
		Tool:             "apiresource gen",
	}
}

// Generator generates Go code from a resolved plan.
type Generator struct {
	config GeneratorConfig
}

// NewGenerator creates a new Generator with the given configuration.
func NewGenerator(config GeneratorConfig) *Generator {
	return &Generator{config: config}
}

// GeneratedFile represents a generated Go source file.
type GeneratedFile struct {
	// Filename is the name of the file (e.g., "zz_generated.apiformat.go").
	Filename string
	// Content is the formatted Go source code.
	Content []byte
}

type templateData struct {
	Tool        string
	PackageName string
	Source      string
	// Qualifier prefixes runtime identifiers, empty inside the runtime package.
	Qualifier string
	Import    string
	Resources []resourceData
}

type resourceData struct {
	TypeName   string
	FormatName string
	VarName    string
	Fields     []fieldData
}

type fieldData struct {
	Key     string
	Value   string
	Comment string
}

// Generate renders the plan into a single formatted file. When go/format
// rejects the output, the unformatted file is returned along with the error.
func (g *Generator) Generate(p *plan.Plan) (*GeneratedFile, error) {
	if p == nil {
		return nil, fmt.Errorf("%w: plan is nil", ErrPlanInvalid)
	}

	if p.Diagnostics.HasErrors() {
		return nil, fmt.Errorf("%w: %w", ErrPlanInvalid, p.Diagnostics.Error())
	}

	data, err := g.buildTemplateData(p)
	if err != nil {
		return nil, err
	}

	filename := g.config.Filename
	if filename == "" {
		filename = p.Output
	}

	if filename == "" {
		filename = mapping.DefaultOutput
	}

	var buf bytes.Buffer
	if err := formatTemplate.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("executing template: %w", err)
	}

	formatted, err := format.Source(buf.Bytes())
	if err != nil {
		_ = writeDebugUnformatted(g.config.OutputDir, filename, buf.Bytes())

		return &GeneratedFile{
			Filename: filename,
			Content:  buf.Bytes(),
		}, fmt.Errorf("formatting code: %w", err)
	}

	return &GeneratedFile{
		Filename: filename,
		Content:  formatted,
	}, nil
}

func (g *Generator) buildTemplateData(p *plan.Plan) (*templateData, error) {
	data := &templateData{
		Tool:        g.config.Tool,
		PackageName: g.config.PackageName,
		Source:      p.PkgPath,
		Qualifier:   "resource.",
		Import:      ResourcePkgPath,
	}

	if data.Tool == "" {
		data.Tool = DefaultGeneratorConfig().Tool
	}

	if data.PackageName == "" {
		data.PackageName = p.PkgName
	}

	if data.PackageName == "" {
		return nil, errors.New("package name is empty")
	}

	if p.PkgPath == ResourcePkgPath {
		data.Qualifier = ""
		data.Import = ""
	}

	for i := range p.Resources {
		rd, err := g.buildResource(p, &p.Resources[i], data.Qualifier)
		if err != nil {
			return nil, err
		}

		data.Resources = append(data.Resources, rd)
	}

	return data, nil
}

func (g *Generator) buildResource(p *plan.Plan, r *plan.ResourcePlan, q string) (resourceData, error) {
	rd := resourceData{
		TypeName:   r.TypeName,
		FormatName: strconv.Quote(r.FormatName),
		VarName:    r.VarName,
	}

	for _, f := range r.Fields {
		value, err := valueExpr(p, r.TypeName, f, q)
		if err != nil {
			return rd, fmt.Errorf("resource %s key %q: %w", r.FormatName, f.Key, err)
		}

		fd := fieldData{Key: strconv.Quote(f.Key), Value: value}
		if g.config.GenerateComments && f.Explanation != "" {
			fd.Comment = f.Explanation
		}

		rd.Fields = append(rd.Fields, fd)
	}

	return rd, nil
}

// valueExpr renders the value type expression of one field.
func valueExpr(p *plan.Plan, typeName string, f plan.FieldPlan, q string) (string, error) {
	var expr string

	switch f.Kind {
	case mapping.KindString:
		expr = fmt.Sprintf("%sString(func(m *%s) *string { return &m.%s })", q, typeName, f.GoField)
	case mapping.KindStringSet:
		expr = fmt.Sprintf("%sStringSetOf(func(m *%s) *%sStringSet { return &m.%s })", q, typeName, q, f.GoField)
	case mapping.KindResource:
		nested := p.Resource(f.NestedType)
		if nested == nil {
			return "", fmt.Errorf("nested type %s has no format", f.NestedType)
		}

		expr = fmt.Sprintf("%sResource(func(m *%s) **%s { return &m.%s }, %s)",
			q, typeName, f.NestedType, f.GoField, nested.VarName)
	default:
		return "", fmt.Errorf("unsupported kind %q", f.Kind)
	}

	if f.Optional {
		expr = q + "Optional(" + expr + ")"
	}

	return expr, nil
}

var formatTemplate = template.Must(template.New("apiformat").Parse(`// Code generated by {{.Tool}}. DO NOT EDIT.
{{- if .Source}}
// Source: {{.Source}}
{{- end}}

package {{.PackageName}}
{{- if .Import}}

import "{{.Import}}"
{{- end}}
{{- $q := .Qualifier}}
{{- range .Resources}}

var {{.VarName}} = {{$q}}MustFormat({{.FormatName}},
{{- range .Fields}}
	{{$q}}Field({{.Key}}, {{.Value}}),{{if .Comment}} // {{.Comment}}{{end}}
{{- end}}
)

// APIFormat returns the format {{.TypeName}} is decoded and encoded with.
func (*{{.TypeName}}) APIFormat() *{{$q}}Format[{{.TypeName}}] { return {{.VarName}} }
{{- end}}
`))
