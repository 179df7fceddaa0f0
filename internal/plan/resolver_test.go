package plan

import (
	"go/types"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"apiresource/internal/analyze"
	"apiresource/internal/mapping"
)

const testPkg = "apiresource/paypal"

func buildTestGraph() *analyze.TypeGraph {
	graph := analyze.NewTypeGraph()

	stringType := &analyze.TypeInfo{Kind: analyze.TypeKindBasic, GoType: types.Typ[types.String]}
	intType := &analyze.TypeInfo{Kind: analyze.TypeKindBasic, GoType: types.Typ[types.Int]}
	setType := &analyze.TypeInfo{Kind: analyze.TypeKindExternal, ID: StringSetType}

	address := &analyze.TypeInfo{
		ID:   analyze.TypeID{PkgPath: testPkg, Name: "PostalAddress"},
		Kind: analyze.TypeKindStruct,
		Fields: []analyze.FieldInfo{
			{Name: "StreetAddress", Exported: true, Type: stringType, Index: 0},
			{Name: "PostalCode", Exported: true, Type: stringType, Index: 1},
			{Name: "Zip", Exported: true, Type: stringType, Tag: `api:"zipCode"`, Index: 2},
		},
	}
	addressPtr := &analyze.TypeInfo{Kind: analyze.TypeKindPointer, ElemType: address}

	payer := &analyze.TypeInfo{
		ID:   analyze.TypeID{PkgPath: testPkg, Name: "PayerInfo"},
		Kind: analyze.TypeKindStruct,
		Fields: []analyze.FieldInfo{
			{Name: "Email", Exported: true, Type: stringType, Index: 0},
			{Name: "Scopes", Exported: true, Type: setType, Index: 1},
			{Name: "BillingAddress", Exported: true, Type: addressPtr, Index: 2},
			{Name: "Age", Exported: true, Type: intType, Index: 3},
			{Name: "Name", Exported: true, Type: stringType, Index: 4},
			{Name: "NAME", Exported: true, Type: stringType, Index: 5},
		},
	}

	node := &analyze.TypeInfo{
		ID:   analyze.TypeID{PkgPath: testPkg, Name: "Node"},
		Kind: analyze.TypeKindStruct,
	}
	node.Fields = []analyze.FieldInfo{
		{Name: "ID", Exported: true, Type: stringType, Index: 0},
		{Name: "Next", Exported: true, Type: &analyze.TypeInfo{Kind: analyze.TypeKindPointer, ElemType: node}, Index: 1},
	}

	pkg := &analyze.PackageInfo{Path: testPkg, Name: "paypal", Dir: "/src/paypal"}
	for _, ti := range []*analyze.TypeInfo{address, payer, node} {
		graph.Types[ti.ID] = ti
		pkg.Types = append(pkg.Types, ti.ID)
	}

	graph.Packages[testPkg] = pkg

	return graph
}

func parseDecl(t *testing.T, yamlData string) *mapping.DeclarationFile {
	t.Helper()

	df, err := mapping.Parse([]byte(yamlData))
	require.NoError(t, err)

	return df
}

func TestResolve(t *testing.T) {
	df := parseDecl(t, `
resources:
  - type: PayerInfo
    name: Payer
    fields:
      - email
      - scopes?
      - billingAddress?
      - fullName: Name
  - type: PostalAddress
    fields:
      - line1: StreetAddress
      - postalCode
      - zipCode?
`)

	p, err := Resolve(buildTestGraph(), df)
	require.NoError(t, err, "%v", p.Diagnostics.Error())

	assert.Equal(t, testPkg, p.PkgPath)
	assert.Equal(t, "paypal", p.PkgName)
	assert.Equal(t, "/src/paypal", p.Dir)
	assert.Equal(t, mapping.DefaultOutput, p.Output)

	require.Len(t, p.Resources, 2)
	assert.Equal(t, "PostalAddress", p.Resources[0].TypeName, "nested formats come first")
	assert.Equal(t, "PayerInfo", p.Resources[1].TypeName)

	addr := p.Resource("PostalAddress")
	require.NotNil(t, addr)
	assert.Equal(t, "postalAddressFormat", addr.VarName)
	assert.Equal(t, "PostalAddress", addr.FormatName)
	assert.Equal(t, []FieldPlan{
		{Key: "line1", GoField: "StreetAddress", Kind: mapping.KindString, Source: MatchSourceExplicit, Explanation: "line1 -> StreetAddress (declared)"},
		{Key: "postalCode", GoField: "PostalCode", Kind: mapping.KindString, Source: MatchSourceName, Explanation: `postalCode -> PostalCode (name match "postalcode")`},
		{Key: "zipCode", GoField: "Zip", Kind: mapping.KindString, Optional: true, Source: MatchSourceTag, Explanation: "zipCode -> Zip (api tag)"},
	}, addr.Fields)

	payer := p.Resource("PayerInfo")
	require.NotNil(t, payer)
	assert.Equal(t, "Payer", payer.FormatName)
	assert.Equal(t, "payerInfoFormat", payer.VarName)
	require.Len(t, payer.Fields, 4)
	assert.Equal(t, mapping.KindStringSet, payer.Fields[1].Kind)
	assert.Equal(t, mapping.KindResource, payer.Fields[2].Kind)
	assert.Equal(t, "PostalAddress", payer.Fields[2].NestedType)
	assert.Equal(t, "Name", payer.Fields[3].GoField)
	assert.Equal(t, []string{"PostalAddress"}, payer.DependsOn())

	assert.Nil(t, p.Resource("Missing"))
}

func TestResolve_Errors(t *testing.T) {
	tests := []struct {
		name        string
		yaml        string
		code        string
		suggestions []string
	}{
		{
			name:        "unmatched key",
			yaml:        "resources:\n  - type: PostalAddress\n    fields: [streetAdres]\n",
			code:        "field_unmatched",
			suggestions: []string{"StreetAddress"},
		},
		{
			name:        "ambiguous key",
			yaml:        "resources:\n  - type: PayerInfo\n    fields: [name]\n",
			code:        "field_ambiguous",
			suggestions: []string{"Name", "NAME"},
		},
		{
			name: "unsupported type",
			yaml: "resources:\n  - type: PayerInfo\n    fields: [age]\n",
			code: "unsupported_field_type",
		},
		{
			name: "kind mismatch",
			yaml: "resources:\n  - type: PayerInfo\n    fields:\n      - {key: email, kind: stringSet}\n",
			code: "kind_mismatch",
		},
		{
			name: "nested not declared",
			yaml: "resources:\n  - type: PayerInfo\n    fields: [billingAddress]\n",
			code: "nested_not_declared",
		},
		{
			name: "field reused by matching",
			yaml: "resources:\n  - type: PayerInfo\n    fields: [email, e-mail]\n",
			code: "field_reused",
		},
		{
			name: "cycle",
			yaml: "resources:\n  - type: Node\n    fields:\n      - id\n      - next?\n",
			code: "resource_cycle",
		},
		{
			name: "validation failure",
			yaml: "resources:\n  - type: Missing\n    fields: [a]\n",
			code: "type_not_found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := Resolve(buildTestGraph(), parseDecl(t, tt.yaml))
			require.Error(t, err)
			require.ErrorIs(t, err, ErrResolution)
			require.NotNil(t, p)
			assert.Contains(t, p.Diagnostics.Codes(), tt.code)

			if tt.suggestions != nil {
				for _, d := range p.Diagnostics.Errors {
					if d.Code == tt.code {
						assert.Equal(t, tt.suggestions, d.Suggestions)
					}
				}
			}
		})
	}
}

func TestResolve_NilInputs(t *testing.T) {
	_, err := Resolve(buildTestGraph(), nil)
	assert.Error(t, err)

	_, err = Resolve(nil, &mapping.DeclarationFile{})
	assert.Error(t, err)
}

func TestExport(t *testing.T) {
	df := parseDecl(t, `
resources:
  - type: PostalAddress
    name: Address
    fields:
      - line1: StreetAddress
      - postalCode?
`)

	p, err := Resolve(buildTestGraph(), df)
	require.NoError(t, err)

	out := Export(p, "./paypal")
	assert.Equal(t, "./paypal", out.Package)
	assert.Equal(t, []mapping.ResourceDecl{{
		Type: "PostalAddress",
		Name: "Address",
		Fields: []mapping.FieldDecl{
			{Key: "line1", Field: "StreetAddress"},
			{Key: "postalCode", Field: "PostalCode", Optional: true},
		},
	}}, out.Resources)

	data, err := mapping.Marshal(out)
	require.NoError(t, err)
	assert.Contains(t, string(data), "- postalCode?: PostalCode")
}

func TestMatchSource_String(t *testing.T) {
	assert.Equal(t, "explicit", MatchSourceExplicit.String())
	assert.Equal(t, "tag", MatchSourceTag.String())
	assert.Equal(t, "name", MatchSourceName.String())
	assert.Equal(t, "unknown", MatchSource(9).String())
}
