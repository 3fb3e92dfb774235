package dsl

import (
	"math"

	"github.com/reoring/axjson"
	"github.com/reoring/axjson/i18n"
)

// NumberChain validates numbers. Any Go numeric kind (and json.Number) is
// accepted and yielded as float64; NaN counts as a number.
type NumberChain struct {
	fn step[float64]
}

func baseNumber(v any, c axjson.Context) (float64, error) {
	n, ok := axjson.AsNumber(v)
	if !ok {
		return 0, c.Fail(axjson.KindNumber, i18n.T(i18n.NotNumber, nil))
	}
	return n, nil
}

// Number returns a chain accepting any number.
func Number() NumberChain { return NumberChain{fn: baseNumber} }

// Integer returns a chain accepting integral numbers only.
func Integer() NumberChain { return Number().Integer() }

// Validate implements axjson.Validator.
func (n NumberChain) Validate(v any, c axjson.Context) (any, error) { return run(n.fn, v, c) }

// NonZero rejects 0.
func (n NumberChain) NonZero() NumberChain {
	return NumberChain{fn: guard(n.fn, axjson.KindNumberNonZero, i18n.Zero, func(v float64) bool {
		return v != 0
	})}
}

// Integer rejects values with a fractional part, NaN and infinities.
func (n NumberChain) Integer() NumberChain {
	return NumberChain{fn: guard(n.fn, axjson.KindNumberInteger, i18n.NotInteger, func(v float64) bool {
		return !math.IsInf(v, 0) && v == math.Trunc(v)
	})}
}

// MaxValue rejects values greater than limit.
func (n NumberChain) MaxValue(limit float64) NumberChain { return n.maxValue(limit, true) }

// MaxValueExclusive rejects values greater than or equal to limit.
func (n NumberChain) MaxValueExclusive(limit float64) NumberChain { return n.maxValue(limit, false) }

func (n NumberChain) maxValue(limit float64, inclusive bool) NumberChain {
	return NumberChain{fn: guard(n.fn, axjson.KindNumberMaxValue, i18n.TooLarge, func(v float64) bool {
		return bound(v, limit, true, inclusive)
	})}
}

// MinValue rejects values less than limit.
func (n NumberChain) MinValue(limit float64) NumberChain { return n.minValue(limit, true) }

// MinValueExclusive rejects values less than or equal to limit.
func (n NumberChain) MinValueExclusive(limit float64) NumberChain { return n.minValue(limit, false) }

func (n NumberChain) minValue(limit float64, inclusive bool) NumberChain {
	return NumberChain{fn: guard(n.fn, axjson.KindNumberMinValue, i18n.TooSmall, func(v float64) bool {
		return bound(v, limit, false, inclusive)
	})}
}

// Refine rejects values for which pred returns false.
func (n NumberChain) Refine(pred func(float64) bool) NumberChain {
	return NumberChain{fn: guard(n.fn, axjson.KindNumberValidate, i18n.ValidationFailed, pred)}
}

// Convert ends the chain; the node yields conv(checked number).
func (n NumberChain) Convert(conv func(float64) any) axjson.Validator { return converted(n.fn, conv) }
