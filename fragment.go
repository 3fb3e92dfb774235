package axjson

import "sort"

// fragmentKind enumerates the shapes a schema fragment can take.
type fragmentKind int

const (
	fragmentInvalid fragmentKind = iota
	fragmentNull
	fragmentValidator
	fragmentTuple
	fragmentRecord
	fragmentConstant
)

// classify determines the shape of a raw schema fragment. Both Lift and
// CheckSchema dispatch on it, so they agree on what is a legal schema.
func classify(fragment any) fragmentKind {
	switch fragment.(type) {
	case nil:
		return fragmentNull
	case Validator:
		return fragmentValidator
	case string, bool:
		return fragmentConstant
	}
	if _, ok := AsNumber(fragment); ok {
		return fragmentConstant
	}
	if _, ok := AsSlice(fragment); ok {
		return fragmentTuple
	}
	if _, ok := AsMap(fragment); ok {
		return fragmentRecord
	}
	if _, ok := constantOf(fragment); ok {
		return fragmentConstant
	}
	return fragmentInvalid
}

// Lift compiles a schema fragment into a Validator. Validators are returned
// unchanged; nil, tuples, records and constants become their node variants.
// Parts that are not schema shapes compile to a node that fails with
// KindUnknown when reached, so Lift never fails. Use Compile or Schema to
// reject such fragments up front.
func Lift(fragment any) Validator {
	switch classify(fragment) {
	case fragmentNull:
		return nullNode{}
	case fragmentValidator:
		return fragment.(Validator)
	case fragmentTuple:
		elems, _ := AsSlice(fragment)
		t := tupleNode{elems: make([]Validator, len(elems))}
		for i, e := range elems {
			t.elems[i] = Lift(e)
		}
		return t
	case fragmentRecord:
		m, _ := AsMap(fragment)
		r := recordNode{fields: make([]recordField, 0, len(m))}
		for _, name := range sortedKeys(m) {
			r.fields = append(r.fields, recordField{
				name:  name,
				label: labelOf(m[name]),
				node:  Lift(m[name]),
			})
		}
		return r
	case fragmentConstant:
		c, _ := constantOf(fragment)
		return constNode{value: c}
	default:
		return invalidNode{}
	}
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
