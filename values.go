package axjson

import (
	"encoding/json"
	"reflect"
)

// UndefinedType is the type of Undefined.
type UndefinedType struct{}

// Undefined stands for an absent value: a record field missing from the input
// is passed to its schema as Undefined, and a field whose validated result is
// Undefined is omitted from the output record.
var Undefined = UndefinedType{}

// IsUndefined reports whether v is the Undefined sentinel.
func IsUndefined(v any) bool {
	_, ok := v.(UndefinedType)
	return ok
}

// Record is a convenience type for writing record schema fragments.
// Plain map[string]any fragments are equivalent.
type Record = map[string]any

// Tuple is a convenience type for writing tuple schema fragments.
// Plain []any fragments are equivalent.
type Tuple = []any

// AsMap returns v as a string-keyed map. map[string]any is returned as is;
// other map kinds with string keys are copied into a new map[string]any.
func AsMap(v any) (map[string]any, bool) {
	switch m := v.(type) {
	case nil:
		return nil, false
	case map[string]any:
		return m, true
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Map || rv.Type().Key().Kind() != reflect.String {
		return nil, false
	}
	out := make(map[string]any, rv.Len())
	iter := rv.MapRange()
	for iter.Next() {
		out[iter.Key().String()] = iter.Value().Interface()
	}
	return out, true
}

// AsSlice returns v as an ordered sequence. []any is returned as is; other
// slice and array kinds are copied into a new []any.
func AsSlice(v any) ([]any, bool) {
	switch s := v.(type) {
	case nil:
		return nil, false
	case []any:
		return s, true
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, false
	}
	out := make([]any, rv.Len())
	for i := range out {
		out[i] = rv.Index(i).Interface()
	}
	return out, true
}

// AsNumber returns v as float64 when v is any Go numeric kind or a parseable
// json.Number. Booleans are not numbers.
func AsNumber(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	case nil, bool, string:
		return 0, false
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return float64(rv.Uint()), true
	case reflect.Float32, reflect.Float64:
		return rv.Float(), true
	}
	return 0, false
}

// constantOf normalizes a primitive constant: strings and booleans (including
// named types) keep their value, numbers become float64.
func constantOf(v any) (any, bool) {
	switch c := v.(type) {
	case string, bool:
		return c, true
	}
	if n, ok := AsNumber(v); ok {
		return n, true
	}
	if v == nil {
		return nil, false
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.String:
		return rv.String(), true
	case reflect.Bool:
		return rv.Bool(), true
	}
	return nil, false
}

// sameMap reports whether a and b are the same map instance.
func sameMap(a, b map[string]any) bool {
	return reflect.ValueOf(a).UnsafePointer() == reflect.ValueOf(b).UnsafePointer()
}
