package dsl

import (
	"github.com/reoring/axjson"
	"github.com/reoring/axjson/i18n"
)

type nullableNode struct {
	node axjson.Validator
	def  func() any // nil: pass null through
}

func (n nullableNode) Validate(v any, c axjson.Context) (any, error) {
	if v == nil {
		if n.def != nil {
			return n.def(), nil
		}
		return nil, nil
	}
	return n.node.Validate(v, c)
}

// Nullable accepts null as is and validates anything else against schema.
func Nullable(schema any) axjson.Validator {
	return nullableNode{node: axjson.Lift(schema)}
}

// UnwrapNullable is like Nullable but substitutes def() for null. def is
// called once per null encountered.
func UnwrapNullable(def func() any) func(schema any) axjson.Validator {
	return func(schema any) axjson.Validator {
		return nullableNode{node: axjson.Lift(schema), def: def}
	}
}

type optionalNode struct {
	node axjson.Validator
	def  func() any // nil: pass Undefined through
}

func (o optionalNode) Validate(v any, c axjson.Context) (any, error) {
	if axjson.IsUndefined(v) {
		if o.def != nil {
			return o.def(), nil
		}
		return axjson.Undefined, nil
	}
	return o.node.Validate(v, c)
}

// Optional accepts an absent value (axjson.Undefined) and validates anything
// else against schema. Absent record fields stay absent in the result.
func Optional(schema any) axjson.Validator {
	return optionalNode{node: axjson.Lift(schema)}
}

// UnwrapOptional is like Optional but substitutes def() for an absent value.
// def is called once per absent value encountered.
func UnwrapOptional(def func() any) func(schema any) axjson.Validator {
	return func(schema any) axjson.Validator {
		return optionalNode{node: axjson.Lift(schema), def: def}
	}
}

type arrayNode struct {
	elem axjson.Validator
}

func (a arrayNode) Validate(v any, c axjson.Context) (any, error) {
	s, ok := axjson.AsSlice(v)
	if !ok {
		return nil, c.Fail(axjson.KindArray, i18n.T(i18n.NotArray, nil))
	}
	out := make([]any, len(s))
	for i := range s {
		got, err := a.elem.Validate(s[i], c.Index(i))
		if err != nil {
			return nil, err
		}
		out[i] = got
	}
	return out, nil
}

// Array accepts sequences of any length whose elements all match schema.
func Array(schema any) axjson.Validator {
	return arrayNode{elem: axjson.Lift(schema)}
}

type unionNode struct {
	branches []axjson.Validator
}

func (u unionNode) Validate(v any, c axjson.Context) (any, error) {
	for _, b := range u.branches {
		mark := c.Mark()
		got, err := b.Validate(v, c)
		if err == nil {
			return got, nil
		}
		c.Rewind(mark)
	}
	return nil, c.Fail(axjson.KindUnion, i18n.T(i18n.NoneOfTypes, nil))
}

// Union returns the result of the first schema that accepts the value.
// Errors from the branches tried are discarded.
func Union(schemas ...any) axjson.Validator {
	return unionNode{branches: liftAll(schemas)}
}

type intersectionNode struct {
	branches []axjson.Validator
}

func (n intersectionNode) Validate(v any, c axjson.Context) (any, error) {
	out := map[string]any{}
	for _, b := range n.branches {
		mark := c.Mark()
		got, err := b.Validate(v, c)
		if err != nil {
			return nil, intersectionError(c, err)
		}
		m, ok := axjson.AsMap(got)
		if !ok {
			return nil, intersectionError(c, c.Fail(axjson.KindDictionary, i18n.T(i18n.NotObject, nil)))
		}
		for k, vv := range m {
			out[k] = vv
		}
		c.Retarget(mark, m, out)
	}
	return out, nil
}

func intersectionError(c axjson.Context, cause error) error {
	e := c.Fail(axjson.KindIntersection, i18n.T(i18n.NotOneOfTypes, map[string]string{"cause": cause.Error()}))
	e.Cause = cause
	return e
}

// Intersection validates the value against every schema and merges the
// record results; later schemas win on key collisions.
func Intersection(schemas ...any) axjson.Validator {
	return intersectionNode{branches: liftAll(schemas)}
}

func liftAll(schemas []any) []axjson.Validator {
	out := make([]axjson.Validator, len(schemas))
	for i, s := range schemas {
		out[i] = axjson.Lift(s)
	}
	return out
}
