package analyze

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const paypalPkg = "apiresource/paypal"

func loadPayPal(t *testing.T) *TypeGraph {
	t.Helper()

	graph, err := NewAnalyzer().LoadPackages(paypalPkg)
	require.NoError(t, err)
	require.NotNil(t, graph)

	return graph
}

func TestAnalyzer_LoadPackages(t *testing.T) {
	graph := loadPayPal(t)

	require.Contains(t, graph.Packages, paypalPkg)
	pkg := graph.Package()
	require.NotNil(t, pkg)
	assert.Equal(t, "paypal", pkg.Name)
	assert.NotEmpty(t, pkg.Dir)
	assert.Contains(t, pkg.TypeNames(), "AccountNonce")
	assert.Contains(t, pkg.TypeNames(), "PostalAddress")
}

func TestAnalyzer_StructFields(t *testing.T) {
	graph := loadPayPal(t)

	nonce, err := graph.GetStruct(paypalPkg, "AccountNonce")
	require.NoError(t, err)
	assert.Equal(t, []string{"Nonce", "Type", "Description", "Details"}, nonce.ExportedFieldNames())

	f := nonce.Field("Nonce")
	require.NotNil(t, f)
	assert.True(t, f.Type.IsString())
	assert.Equal(t, "string", f.Type.String())
}

func TestAnalyzer_PointerField(t *testing.T) {
	graph := loadPayPal(t)

	nonce := graph.Lookup(paypalPkg, "AccountNonce")
	require.NotNil(t, nonce)

	details := nonce.Field("Details")
	require.NotNil(t, details)
	assert.Equal(t, TypeKindPointer, details.Type.Kind)
	require.NotNil(t, details.Type.ElemType)
	assert.Equal(t, TypeKindStruct, details.Type.ElemType.Kind)
	assert.Equal(t, TypeID{PkgPath: paypalPkg, Name: "PayerInfo"}, details.Type.ElemType.ID)
	assert.Equal(t, "*PayerInfo", details.Type.String())
}

func TestAnalyzer_ExternalField(t *testing.T) {
	graph := loadPayPal(t)

	cfg, err := graph.GetStruct(paypalPkg, "Configuration")
	require.NoError(t, err)

	challenges := cfg.Field("Challenges")
	require.NotNil(t, challenges)
	assert.Equal(t, TypeKindExternal, challenges.Type.Kind)
	assert.Equal(t, TypeID{PkgPath: "apiresource/resource", Name: "StringSet"}, challenges.Type.ID)
	assert.Equal(t, "resource.StringSet", challenges.Type.String())
}

func TestAnalyzer_NotAStruct(t *testing.T) {
	graph := loadPayPal(t)

	_, err := graph.GetStruct(paypalPkg, "Missing")
	assert.ErrorContains(t, err, "not found")
}

func TestAnalyzer_NoMatch(t *testing.T) {
	_, err := NewAnalyzer().LoadPackages("apiresource/does/not/exist")
	assert.Error(t, err)
}

func TestTypeID_String(t *testing.T) {
	id := TypeID{PkgPath: paypalPkg, Name: "AccountNonce"}
	assert.Equal(t, "apiresource/paypal.AccountNonce", id.String())

	idNoPkg := TypeID{Name: "int"}
	assert.Equal(t, "int", idNoPkg.String())
}

func TestTypeKind_String(t *testing.T) {
	assert.Equal(t, "basic", TypeKindBasic.String())
	assert.Equal(t, "struct", TypeKindStruct.String())
	assert.Equal(t, "pointer", TypeKindPointer.String())
	assert.Equal(t, "slice", TypeKindSlice.String())
	assert.Equal(t, "map", TypeKindMap.String())
	assert.Equal(t, "named", TypeKindNamed.String())
	assert.Equal(t, "external", TypeKindExternal.String())
	assert.Equal(t, "unknown", TypeKindUnknown.String())
}

func TestFieldInfo_TagName(t *testing.T) {
	f1 := FieldInfo{Name: "RedirectURL", Tag: `json:"redirectUrl"`}
	assert.Equal(t, "redirectUrl", f1.TagName("json"))

	f2 := FieldInfo{Name: "RedirectURL", Tag: `api:"redirectUrl,optional"`}
	assert.Equal(t, "redirectUrl", f2.TagName("api"))

	f3 := FieldInfo{Name: "RedirectURL", Tag: ""}
	assert.Empty(t, f3.TagName("api"))

	f4 := FieldInfo{Name: "RedirectURL", Tag: `api:"-"`}
	assert.Empty(t, f4.TagName("api"))
}
