package resource

// Encode builds the dictionary of m using the format M declares. A nil m
// encodes to nil.
func Encode[M any, P Model[M]](m P) Dictionary {
	if m == nil {
		return nil
	}

	return m.APIFormat().Encode((*M)(m))
}

// Encode reads every declared field of m in declaration order. Optional fields
// holding a zero value are left out, string sets are emitted sorted, and a
// required nested resource that is nil is written as null.
func (f *Format[M]) Encode(m *M) Dictionary {
	if f == nil || m == nil {
		return nil
	}

	out := make(Dictionary, len(f.fields))
	for _, field := range f.fields {
		optional := field.vt.IsOptional()
		vt := field.vt.unwrap()

		switch vt.kind {
		case KindString:
			s := *vt.str(m)
			if optional && s == "" {
				continue
			}

			out[field.key] = s
		case KindStringSet:
			set := *vt.set(m)
			if optional && set.Len() == 0 {
				continue
			}

			out[field.key] = set.list()
		case KindResource:
			nested, ok := vt.nested.encode(m)
			if !ok {
				if optional {
					continue
				}

				out[field.key] = nil

				continue
			}

			out[field.key] = nested
		}
	}

	return out
}
