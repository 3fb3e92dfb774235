package dsl

import (
	"github.com/reoring/axjson"
	"github.com/reoring/axjson/i18n"
)

// step is a compiled validation/conversion function producing T.
type step[T any] func(v any, c axjson.Context) (T, error)

// then composes f followed by g; g only sees values f accepted.
func then[A, B any](f step[A], g func(a A, c axjson.Context) (B, error)) step[B] {
	return func(v any, c axjson.Context) (B, error) {
		a, err := f(v, c)
		if err != nil {
			var zero B
			return zero, err
		}
		return g(a, c)
	}
}

// guard appends a predicate check to f that fails with kind when ok is false.
func guard[T any](f step[T], kind, msgID string, ok func(T) bool) step[T] {
	return then(f, func(v T, c axjson.Context) (T, error) {
		if !ok(v) {
			var zero T
			return zero, c.Fail(kind, i18n.T(msgID, nil))
		}
		return v, nil
	})
}

// run adapts a step to the axjson.Validator result shape.
func run[T any](f step[T], v any, c axjson.Context) (any, error) {
	out, err := f(v, c)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// converted ends a chain: the returned node yields conv(checked value).
func converted[T any](f step[T], conv func(T) any) axjson.Validator {
	return axjson.ValidatorFunc(func(v any, c axjson.Context) (any, error) {
		checked, err := f(v, c)
		if err != nil {
			return nil, err
		}
		return conv(checked), nil
	})
}

// bound reports whether v is within limit. upper selects an upper bound;
// inclusive allows equality.
func bound(v, limit float64, upper, inclusive bool) bool {
	switch {
	case upper && inclusive:
		return v <= limit
	case upper:
		return v < limit
	case inclusive:
		return v >= limit
	default:
		return v > limit
	}
}
