package resource

import (
	"fmt"

	"apiresource/internal/diagnostic"
)

// Dictionary is the raw structure a Format decodes from and encodes to.
type Dictionary = map[string]any

// FieldSpec binds one dictionary key to a value type.
type FieldSpec[M any] struct {
	key string
	vt  ValueType[M]
}

func Field[M any](key string, vt ValueType[M]) FieldSpec[M] {
	return FieldSpec[M]{key: key, vt: vt}
}

func (f FieldSpec[M]) Key() string {
	return f.key
}

// Format is the declared dictionary layout of model type M. It is immutable
// once built.
type Format[M any] struct {
	name   string
	fields []FieldSpec[M]
	keys   map[string]struct{}
}

// Model is satisfied by *M when M declares its format.
type Model[M any] interface {
	*M
	APIFormat() *Format[M]
}

// FieldInfo describes one declared field.
type FieldInfo struct {
	Key  string
	Kind Kind
	// Optional is set for Optional descriptors; Kind is then the wrapped kind.
	Optional bool
	// Resource is the nested format name for KindResource.
	Resource string
	Nested   []FieldInfo
}

// NewFormat validates the declaration and builds the format of M. name is used
// in error messages, usually the Go type name.
func NewFormat[M any](name string, fields ...FieldSpec[M]) (*Format[M], error) {
	diags := validate(name, fields)
	if diags.HasErrors() {
		return nil, &Error{
			Code:     ErrorResourceSpecificationInvalid,
			Resource: name,
			Err:      diags.Error(),
		}
	}

	f := &Format[M]{
		name:   name,
		fields: make([]FieldSpec[M], len(fields)),
		keys:   make(map[string]struct{}, len(fields)),
	}

	copy(f.fields, fields)

	for _, field := range fields {
		f.keys[field.key] = struct{}{}
	}

	return f, nil
}

// MustFormat is NewFormat for package-level declarations. It panics on an
// invalid declaration.
func MustFormat[M any](name string, fields ...FieldSpec[M]) *Format[M] {
	f, err := NewFormat(name, fields...)
	if err != nil {
		panic(err)
	}

	return f
}

func validate[M any](name string, fields []FieldSpec[M]) diagnostic.Diagnostics {
	var diags diagnostic.Diagnostics

	if name == "" {
		diags.AddError("empty_name", "format name is empty", "", "")
	}

	seen := make(map[string]struct{}, len(fields))

	for i, field := range fields {
		key := field.key
		if key == "" {
			diags.AddError("empty_key", fmt.Sprintf("field #%d has an empty key", i), name, "")
			continue
		}

		if _, dup := seen[key]; dup {
			diags.AddError("duplicate_key", "key is declared more than once", name, key)
			continue
		}

		seen[key] = struct{}{}

		validateValueType(&diags, name, key, field.vt, false)
	}

	return diags
}

func validateValueType[M any](diags *diagnostic.Diagnostics, name, key string, vt ValueType[M], wrapped bool) {
	switch vt.kind {
	case KindString:
		if vt.str == nil {
			diags.AddError("nil_accessor", "string field has no accessor", name, key)
		}
	case KindStringSet:
		if vt.set == nil {
			diags.AddError("nil_accessor", "string set field has no accessor", name, key)
		}
	case KindResource:
		if vt.nested == nil || !vt.nested.valid() {
			diags.AddError("nil_nested_format", "nested resource needs an accessor and a format", name, key)
		}
	case KindOptional:
		if wrapped {
			diags.AddError("nested_optional", "optional wraps another optional", name, key)
			return
		}

		if vt.inner == nil {
			diags.AddError("missing_value_type", "optional has no inner value type", name, key)
			return
		}

		validateValueType(diags, name, key, *vt.inner, true)
	default:
		diags.AddError("missing_value_type", "field has no value type", name, key)
	}
}

// Name returns the name the format was built with.
func (f *Format[M]) Name() string {
	if f == nil {
		return ""
	}

	return f.name
}

// Len returns the number of declared fields.
func (f *Format[M]) Len() int {
	if f == nil {
		return 0
	}

	return len(f.fields)
}

// Keys returns the declared keys in declaration order.
func (f *Format[M]) Keys() []string {
	if f == nil {
		return nil
	}

	keys := make([]string, len(f.fields))
	for i, field := range f.fields {
		keys[i] = field.key
	}

	return keys
}

// Has reports whether key is declared.
func (f *Format[M]) Has(key string) bool {
	if f == nil {
		return false
	}

	_, ok := f.keys[key]

	return ok
}

// Fields describes the declared fields in declaration order, nested formats included.
func (f *Format[M]) Fields() []FieldInfo {
	if f == nil {
		return nil
	}

	out := make([]FieldInfo, 0, len(f.fields))
	for _, field := range f.fields {
		vt := field.vt.unwrap()

		info := FieldInfo{
			Key:      field.key,
			Kind:     vt.kind,
			Optional: field.vt.IsOptional(),
		}

		if vt.kind == KindResource {
			info.Resource = vt.nested.name()
			info.Nested = vt.nested.fields()
		}

		out = append(out, info)
	}

	return out
}
