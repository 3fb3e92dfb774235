package dsl

import (
	"sort"

	"github.com/reoring/axjson"
	"github.com/reoring/axjson/i18n"
)

// DictionaryChain validates objects with arbitrary keys whose values all
// match one element schema.
type DictionaryChain struct {
	fn step[map[string]any]
}

// Dictionary validates every property of an object against schema.
func Dictionary(schema any) DictionaryChain {
	elem := axjson.Lift(schema)
	return DictionaryChain{fn: func(v any, c axjson.Context) (map[string]any, error) {
		if v == nil || axjson.IsUndefined(v) {
			return nil, c.Fail(axjson.KindDictionaryObject, i18n.T(i18n.NullOrUndefined, nil))
		}
		m, ok := axjson.AsMap(v)
		if !ok {
			return nil, c.Fail(axjson.KindDictionaryObject, i18n.T(i18n.NotObject, nil))
		}
		out := make(map[string]any, len(m))
		for _, k := range sortedKeys(m) {
			got, err := elem.Validate(m[k], c.Field(k))
			if err != nil {
				return nil, err
			}
			out[k] = got
		}
		return out, nil
	}}
}

// Validate implements axjson.Validator.
func (d DictionaryChain) Validate(v any, c axjson.Context) (any, error) { return run(d.fn, v, c) }

// Refine rejects the dictionary when pred returns false for any entry.
func (d DictionaryChain) Refine(pred func(value any, key string) bool) DictionaryChain {
	return DictionaryChain{fn: then(d.fn, func(m map[string]any, c axjson.Context) (map[string]any, error) {
		for _, k := range sortedKeys(m) {
			if !pred(m[k], k) {
				return nil, c.Fail(axjson.KindDictionaryValidate, i18n.T(i18n.ValidationFailed, nil))
			}
		}
		return m, nil
	})}
}

// Convert ends the chain; the node yields conv(validated dictionary).
func (d DictionaryChain) Convert(conv func(map[string]any) any) axjson.Validator {
	return converted(d.fn, conv)
}

// Map returns a chain whose entries are f(value, key) of the validated
// entries. The mapped values are not validated again.
func (d DictionaryChain) Map(f func(value any, key string) any) DictionaryChain {
	return DictionaryChain{fn: then(d.fn, func(m map[string]any, _ axjson.Context) (map[string]any, error) {
		out := make(map[string]any, len(m))
		for k, v := range m {
			out[k] = f(v, k)
		}
		return out, nil
	})}
}

// MapKeys renames every key with f. When two keys map to the same name the
// one sorting last wins.
func (d DictionaryChain) MapKeys(f func(key string) string) DictionaryChain {
	return DictionaryChain{fn: then(d.fn, func(m map[string]any, _ axjson.Context) (map[string]any, error) {
		out := make(map[string]any, len(m))
		for _, k := range sortedKeys(m) {
			out[f(k)] = m[k]
		}
		return out, nil
	})}
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
