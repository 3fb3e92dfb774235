package dsl_test

import (
	"reflect"
	"strings"
	"testing"

	"github.com/reoring/axjson"
	g "github.com/reoring/axjson/dsl"
)

func TestDictionary_Basic(t *testing.T) {
	s := g.Dictionary(g.Number())
	if got := mustOK(t, s, map[string]any{}); !reflect.DeepEqual(got, map[string]any{}) {
		t.Fatalf("unexpected value: %#v", got)
	}
	got := mustOK(t, s, map[string]any{"a": 1, "b": 2})
	if !reflect.DeepEqual(got, map[string]any{"a": float64(1), "b": float64(2)}) {
		t.Fatalf("unexpected value: %#v", got)
	}
	_, err := axjson.Validate(s, map[string]any{"a": 1, "b": "x"})
	expectKind(t, err, axjson.KindNumber, ".b")

	for _, v := range []any{nil, axjson.Undefined, "x", []any{}} {
		_, err := axjson.Validate(s, v)
		expectKind(t, err, axjson.KindDictionaryObject, "")
	}
}

func TestDictionary_Map(t *testing.T) {
	type point struct{ X, Y float64 }
	s := g.Dictionary(axjson.Record{"x": g.Number(), "y": g.Number()}).
		Map(func(v any, key string) any {
			m := v.(map[string]any)
			return point{X: m["x"].(float64), Y: m["y"].(float64)}
		})
	if got := mustOK(t, s, map[string]any{}); !reflect.DeepEqual(got, map[string]any{}) {
		t.Fatalf("unexpected value: %#v", got)
	}
	got := mustOK(t, s, map[string]any{"hoge": map[string]any{"x": 1, "y": 2}})
	if !reflect.DeepEqual(got, map[string]any{"hoge": point{1, 2}}) {
		t.Fatalf("unexpected value: %#v", got)
	}
	_, err := axjson.Validate(s, map[string]any{"hoge": map[string]any{"x": 1}})
	expectKind(t, err, axjson.KindNumber, ".hoge.y")
}

func TestDictionary_MapSeesKeys(t *testing.T) {
	s := g.Dictionary(g.String()).Map(func(v any, key string) any { return key + "=" + v.(string) })
	got := mustOK(t, s, map[string]any{"a": "1"})
	if !reflect.DeepEqual(got, map[string]any{"a": "a=1"}) {
		t.Fatalf("unexpected value: %#v", got)
	}
}

func TestDictionary_MapKeys(t *testing.T) {
	s := g.Dictionary(g.Any()).MapKeys(strings.ToUpper)
	got := mustOK(t, s, map[string]any{"a": 1, "b": 2})
	if !reflect.DeepEqual(got, map[string]any{"A": 1, "B": 2}) {
		t.Fatalf("unexpected value: %#v", got)
	}
}

func TestDictionary_RefineAndConvert(t *testing.T) {
	s := g.Dictionary(g.Number()).Refine(func(v any, key string) bool {
		return !strings.HasPrefix(key, "_") && v.(float64) >= 0
	})
	mustOK(t, s, map[string]any{"a": 1})
	_, err := axjson.Validate(s, map[string]any{"_a": 1})
	expectKind(t, err, axjson.KindDictionaryValidate, "")
	_, err = axjson.Validate(s, map[string]any{"a": -1})
	expectKind(t, err, axjson.KindDictionaryValidate, "")

	count := g.Dictionary(g.Any()).Convert(func(m map[string]any) any { return len(m) })
	if got := mustOK(t, count, map[string]any{"a": 1, "b": 2}); got != 2 {
		t.Fatalf("unexpected value: %v", got)
	}
}

func TestDictionary_TypedMapInput(t *testing.T) {
	got := mustOK(t, g.Dictionary(g.Integer()), map[string]int{"x": 1})
	if !reflect.DeepEqual(got, map[string]any{"x": float64(1)}) {
		t.Fatalf("unexpected value: %#v", got)
	}
}
