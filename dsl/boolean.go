package dsl

import (
	"github.com/reoring/axjson"
	"github.com/reoring/axjson/i18n"
)

// BooleanChain validates booleans.
type BooleanChain struct {
	fn step[bool]
}

func baseBoolean(v any, c axjson.Context) (bool, error) {
	b, ok := v.(bool)
	if !ok {
		return false, c.Fail(axjson.KindBoolean, i18n.T(i18n.NotBoolean, nil))
	}
	return b, nil
}

// Boolean returns a chain accepting true and false.
func Boolean() BooleanChain { return BooleanChain{fn: baseBoolean} }

// Validate implements axjson.Validator.
func (b BooleanChain) Validate(v any, c axjson.Context) (any, error) { return run(b.fn, v, c) }

// Convert ends the chain; the node yields conv(checked bool).
func (b BooleanChain) Convert(conv func(bool) any) axjson.Validator { return converted(b.fn, conv) }
