package resource

import (
	"fmt"
	"slices"

	"apiresource/internal/match"
	"apiresource/options"
	"apiresource/primitive"
)

// Config tunes decoding. The zero value is the default.
type Config struct {
	Options options.DecodeEnum
	// MaxDepth bounds the number of resource levels, the top-level one
	// included. Zero means unlimited.
	MaxDepth int
}

func DefaultConfig() Config {
	return Config{Options: options.DecodeNone}
}

// StrictConfig enables every decode option.
func StrictConfig() Config {
	return Config{Options: options.DecodeAll}
}

type decodeState struct {
	cfg   Config
	depth int
}

// Decode decodes raw into a new M using the format M declares.
func Decode[M any, P Model[M]](raw Dictionary) (*M, error) {
	return DecodeWithConfig[M, P](raw, DefaultConfig())
}

func DecodeWithConfig[M any, P Model[M]](raw Dictionary, cfg Config) (*M, error) {
	return P(new(M)).APIFormat().DecodeWithConfig(raw, cfg)
}

// Decode builds a new M from raw. Either every declared field decodes or
// nothing is returned.
func (f *Format[M]) Decode(raw Dictionary) (*M, error) {
	return f.DecodeWithConfig(raw, DefaultConfig())
}

func (f *Format[M]) DecodeWithConfig(raw Dictionary, cfg Config) (*M, error) {
	if f == nil {
		return nil, &Error{Code: ErrorResourceSpecificationInvalid, Message: "format is nil"}
	}

	return f.decode(raw, decodeState{cfg: cfg, depth: 1})
}

func (f *Format[M]) decode(raw Dictionary, st decodeState) (*M, error) {
	if raw == nil {
		return nil, &Error{
			Code:     ErrorResourceDictionaryInvalid,
			Resource: f.name,
			Expected: KindResource,
			Got:      primitive.KindNull,
		}
	}

	m := new(M)
	for _, field := range f.fields {
		if err := f.decodeField(m, field, raw, st); err != nil {
			return nil, err
		}
	}

	if st.cfg.Options.Has(options.DecodeRejectUnknownKeys) {
		if err := f.checkUnknown(raw); err != nil {
			return nil, err
		}
	}

	return m, nil
}

func (f *Format[M]) decodeField(m *M, field FieldSpec[M], raw Dictionary, st decodeState) error {
	value, present := raw[field.key]
	if !present || value == nil {
		if field.vt.IsOptional() {
			return nil
		}

		return &Error{
			Code:     ErrorResourceDictionaryMissingKey,
			Resource: f.name,
			Key:      field.key,
			Expected: field.vt.kind,
		}
	}

	vt := field.vt.unwrap()
	mismatch := func() error {
		return &Error{
			Code:     ErrorResourceDictionaryInvalid,
			Resource: f.name,
			Key:      field.key,
			Expected: vt.kind,
			Got:      primitive.Of(value),
		}
	}

	switch vt.kind {
	case KindString:
		s, ok := value.(string)
		if !ok {
			return mismatch()
		}

		*vt.str(m) = s
	case KindStringSet:
		items, bad, ok := primitive.Strings(value)
		if !ok {
			if bad < 0 {
				return mismatch()
			}

			return &Error{
				Code:     ErrorResourceDictionaryInvalid,
				Resource: f.name,
				Key:      field.key,
				Expected: vt.kind,
				Got:      primitive.KindList,
				Message:  fmt.Sprintf("element %d is %s, expected string", bad, primitive.Of(value.([]any)[bad]).Name()),
			}
		}

		set := make(StringSet, len(items))
		for _, item := range items {
			if set.Has(item) && st.cfg.Options.Has(options.DecodeRejectDuplicateSetItems) {
				return &Error{
					Code:     ErrorResourceDictionaryInvalid,
					Resource: f.name,
					Key:      field.key,
					Expected: vt.kind,
					Got:      primitive.KindList,
					Message:  fmt.Sprintf("duplicate set item %q", item),
				}
			}

			set.Add(item)
		}

		*vt.set(m) = set
	case KindResource:
		nested, ok := value.(map[string]any)
		if !ok {
			return mismatch()
		}

		if st.cfg.MaxDepth > 0 && st.depth >= st.cfg.MaxDepth {
			return &Error{
				Code:     ErrorResourceDictionaryInvalid,
				Resource: f.name,
				Key:      field.key,
				Expected: vt.kind,
				Got:      primitive.KindMap,
				Message:  fmt.Sprintf("resources nested deeper than %d levels", st.cfg.MaxDepth),
			}
		}

		if err := vt.nested.decode(m, nested, decodeState{cfg: st.cfg, depth: st.depth + 1}); err != nil {
			return &Error{
				Code:     ErrorResourceDictionaryNestedResourceInvalid,
				Resource: f.name,
				Key:      field.key,
				Expected: vt.kind,
				Got:      primitive.KindMap,
				Err:      err,
			}
		}
	default:
		return &Error{
			Code:     ErrorResourceSpecificationInvalid,
			Resource: f.name,
			Key:      field.key,
			Message:  "field has no value type",
		}
	}

	return nil
}

// checkUnknown fails on the first undeclared key in sorted order.
func (f *Format[M]) checkUnknown(raw Dictionary) error {
	var unknown []string
	for key := range raw {
		if !f.Has(key) {
			unknown = append(unknown, key)
		}
	}

	if len(unknown) == 0 {
		return nil
	}

	slices.Sort(unknown)

	key := unknown[0]
	suggestion, _ := match.Suggest(key, f.Keys())

	return &Error{
		Code:       ErrorResourceDictionaryInvalid,
		Resource:   f.name,
		Key:        key,
		Got:        primitive.Of(raw[key]),
		Message:    "unknown key",
		Suggestion: suggestion,
	}
}
