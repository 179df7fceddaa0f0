package resource

// ValueType describes how one field of model M is represented in a
// dictionary. It is a single recursive type: Kind selects the variant and
// KindOptional carries the wrapped descriptor.
type ValueType[M any] struct {
	kind  Kind
	inner *ValueType[M]

	str    func(*M) *string
	set    func(*M) *StringSet
	nested nestedResource[M]
}

// nestedResource hides the nested model type N behind an interface so that
// ValueType only needs the outer type parameter.
type nestedResource[M any] interface {
	name() string
	valid() bool
	decode(m *M, raw Dictionary, st decodeState) error
	encode(m *M) (Dictionary, bool)
	fields() []FieldInfo
}

// String matches a raw string value and stores it through ref.
func String[M any](ref func(*M) *string) ValueType[M] {
	return ValueType[M]{kind: KindString, str: ref}
}

// StringSetOf matches a list of strings and stores it as a set through ref.
func StringSetOf[M any](ref func(*M) *StringSet) ValueType[M] {
	return ValueType[M]{kind: KindStringSet, set: ref}
}

// Resource matches a nested dictionary and decodes it with format into a
// freshly allocated N stored through ref.
func Resource[M, N any](ref func(*M) **N, format *Format[N]) ValueType[M] {
	var nested nestedResource[M]
	if ref != nil && format != nil {
		nested = &nestedFormat[M, N]{ref: ref, format: format}
	}

	return ValueType[M]{kind: KindResource, nested: nested}
}

// Optional lets the key be absent or null. The field then keeps its zero
// value, and a zero value is left out of the encoded dictionary.
func Optional[M any](inner ValueType[M]) ValueType[M] {
	return ValueType[M]{kind: KindOptional, inner: &inner}
}

// Kind returns the variant tag.
func (vt ValueType[M]) Kind() Kind {
	return vt.kind
}

// IsOptional reports whether the descriptor is wrapped in Optional.
func (vt ValueType[M]) IsOptional() bool {
	return vt.kind == KindOptional
}

// unwrap returns the descriptor that does the actual matching.
func (vt ValueType[M]) unwrap() ValueType[M] {
	if vt.kind == KindOptional && vt.inner != nil {
		return *vt.inner
	}

	return vt
}

type nestedFormat[M, N any] struct {
	ref    func(*M) **N
	format *Format[N]
}

func (n *nestedFormat[M, N]) name() string {
	return n.format.Name()
}

func (n *nestedFormat[M, N]) valid() bool {
	return n.format != nil && n.ref != nil
}

func (n *nestedFormat[M, N]) decode(m *M, raw Dictionary, st decodeState) error {
	value, err := n.format.decode(raw, st)
	if err != nil {
		return err
	}

	*n.ref(m) = value

	return nil
}

func (n *nestedFormat[M, N]) encode(m *M) (Dictionary, bool) {
	value := *n.ref(m)
	if value == nil {
		return nil, false
	}

	return n.format.Encode(value), true
}

func (n *nestedFormat[M, N]) fields() []FieldInfo {
	return n.format.Fields()
}
