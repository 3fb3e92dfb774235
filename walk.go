package axjson

import "github.com/reoring/axjson/i18n"

// ValidateValue validates v against a schema fragment at the location
// described by c. Combinators call it to recurse into nested fragments.
func ValidateValue(fragment any, v any, c Context) (any, error) {
	return Lift(fragment).Validate(v, c)
}

type nullNode struct{}

func (nullNode) Validate(v any, c Context) (any, error) {
	if v != nil {
		return nil, c.Fail(KindNull, i18n.T(i18n.NotNull, nil))
	}
	return nil, nil
}

type tupleNode struct {
	elems []Validator
}

func (t tupleNode) Validate(v any, c Context) (any, error) {
	s, ok := AsSlice(v)
	if !ok {
		return nil, c.Fail(KindTuple, i18n.T(i18n.NotTuple, nil))
	}
	if len(s) != len(t.elems) {
		return nil, c.Fail(KindTuple, i18n.T(i18n.TupleSize, nil))
	}
	out := make([]any, len(s))
	for i, node := range t.elems {
		got, err := node.Validate(s[i], c.Index(i))
		if err != nil {
			return nil, err
		}
		out[i] = got
	}
	return out, nil
}

type recordField struct {
	name  string
	label string // "" when the field carries no key label
	node  Validator
}

type recordNode struct {
	fields []recordField // sorted by name
}

// Validate reads each field from v and writes it to a new map under the
// field's own name. Forward mode reads labeled fields by their label; reverse
// mode reads them by name and queues a rename to the label.
func (r recordNode) Validate(v any, c Context) (any, error) {
	m, ok := AsMap(v)
	if !ok {
		return nil, c.Fail(KindDictionary, i18n.T(i18n.NotObject, nil))
	}
	out := make(map[string]any, len(r.fields))
	for _, f := range r.fields {
		src := f.name
		if f.label != "" {
			if !c.reverse {
				src = f.label
			} else if f.label != f.name {
				c.queueRemap(out, f.name, f.label)
			}
		}
		raw, present := m[src]
		if !present {
			raw = Undefined
		}
		got, err := f.node.Validate(raw, c.Field(f.name))
		if err != nil {
			return nil, err
		}
		if !IsUndefined(got) {
			out[f.name] = got
		}
	}
	return out, nil
}

type constNode struct {
	value any // string, bool or float64
}

func (k constNode) Validate(v any, c Context) (any, error) {
	if got, ok := constantOf(v); ok && got == k.value {
		return got, nil
	}
	return nil, c.Fail(KindConstant, i18n.T(i18n.ConstantMismatch, nil))
}

type invalidNode struct{}

func (invalidNode) Validate(_ any, c Context) (any, error) {
	return nil, c.Fail(KindUnknown, i18n.T(i18n.InvalidSchema, nil))
}
