package dsl

import (
	"github.com/reoring/axjson"
	"github.com/reoring/axjson/i18n"
)

// ObjectChain validates a value against a record (or tuple) fragment and
// supports whole-value Refine and Convert. Unlike the scalar chains, Convert
// keeps the chain open.
type ObjectChain struct {
	fn step[any]
}

// Object wraps fragment, rejecting null, absent and non-object values before
// walking it.
func Object(fragment any) ObjectChain {
	node := axjson.Lift(fragment)
	return ObjectChain{fn: func(v any, c axjson.Context) (any, error) {
		if v == nil || axjson.IsUndefined(v) {
			return nil, c.Fail(axjson.KindObject, i18n.T(i18n.NullOrUndefined, nil))
		}
		if !isObjectLike(v) {
			return nil, c.Fail(axjson.KindObject, i18n.T(i18n.NotObject, nil))
		}
		return node.Validate(v, c)
	}}
}

func isObjectLike(v any) bool {
	if _, ok := axjson.AsMap(v); ok {
		return true
	}
	_, ok := axjson.AsSlice(v)
	return ok
}

// Validate implements axjson.Validator.
func (o ObjectChain) Validate(v any, c axjson.Context) (any, error) { return o.fn(v, c) }

// Refine rejects values for which pred returns false.
func (o ObjectChain) Refine(pred func(any) bool) ObjectChain {
	return ObjectChain{fn: guard(o.fn, axjson.KindObjectValidate, i18n.ValidationFailed, pred)}
}

// Convert transforms the validated value; further Refine/Convert calls see
// the converted value.
func (o ObjectChain) Convert(conv func(any) any) ObjectChain {
	return ObjectChain{fn: then(o.fn, func(v any, _ axjson.Context) (any, error) {
		return conv(v), nil
	})}
}
