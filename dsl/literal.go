package dsl

import (
	"github.com/reoring/axjson"
	"github.com/reoring/axjson/i18n"
)

func passthrough(v any, _ axjson.Context) (any, error) { return v, nil }

// Any accepts every value unchanged.
func Any() axjson.Validator { return axjson.ValidatorFunc(passthrough) }

// Unknown accepts every value unchanged. It behaves exactly like Any.
func Unknown() axjson.Validator { return axjson.ValidatorFunc(passthrough) }

// Null accepts only null.
func Null() axjson.Validator {
	return axjson.ValidatorFunc(func(v any, c axjson.Context) (any, error) {
		if v != nil {
			return nil, c.Fail(axjson.KindNull, i18n.T(i18n.NotNull, nil))
		}
		return nil, nil
	})
}

// Undefined accepts only an absent value.
func Undefined() axjson.Validator {
	return axjson.ValidatorFunc(func(v any, c axjson.Context) (any, error) {
		if !axjson.IsUndefined(v) {
			return nil, c.Fail(axjson.KindUndefined, i18n.T(i18n.NotUndefined, nil))
		}
		return axjson.Undefined, nil
	})
}

type keyNode struct {
	label string
	node  axjson.Validator
}

func (k keyNode) Validate(v any, c axjson.Context) (any, error) { return k.node.Validate(v, c) }

func (k keyNode) Label() string { return k.label }

// Key validates like schema and records label as the field's external name
// when used as a record field: Validate reads the field from label, and
// ValidateReverse writes it back under label.
func Key(label string, schema any) axjson.Labeled {
	return keyNode{label: label, node: axjson.Lift(schema)}
}
