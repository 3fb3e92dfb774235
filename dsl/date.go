package dsl

import (
	"time"

	"github.com/reoring/axjson"
	"github.com/reoring/axjson/codec"
	"github.com/reoring/axjson/i18n"
)

// DateChain validates dates. Input may be a time.Time or a string that
// codec.ParseDate understands; the chain yields time.Time.
type DateChain struct {
	fn step[time.Time]
}

func baseDate(v any, c axjson.Context) (time.Time, error) {
	switch t := v.(type) {
	case time.Time:
		return t, nil
	case *time.Time:
		if t != nil {
			return *t, nil
		}
	case string:
		if d, err := codec.ParseDate(t); err == nil {
			return d, nil
		}
	}
	return time.Time{}, c.Fail(axjson.KindDate, i18n.T(i18n.NotDate, nil))
}

// Date returns a chain accepting any date.
func Date() DateChain { return DateChain{fn: baseDate} }

// Validate implements axjson.Validator.
func (d DateChain) Validate(v any, c axjson.Context) (any, error) { return run(d.fn, v, c) }

// MaxValue rejects dates after limit.
func (d DateChain) MaxValue(limit time.Time) DateChain { return d.maxValue(limit, true) }

// MaxValueExclusive rejects dates at or after limit.
func (d DateChain) MaxValueExclusive(limit time.Time) DateChain { return d.maxValue(limit, false) }

func (d DateChain) maxValue(limit time.Time, inclusive bool) DateChain {
	return DateChain{fn: guard(d.fn, axjson.KindDateMaxValue, i18n.TooLarge, func(v time.Time) bool {
		return v.Before(limit) || (inclusive && v.Equal(limit))
	})}
}

// MinValue rejects dates before limit.
func (d DateChain) MinValue(limit time.Time) DateChain { return d.minValue(limit, true) }

// MinValueExclusive rejects dates at or before limit.
func (d DateChain) MinValueExclusive(limit time.Time) DateChain { return d.minValue(limit, false) }

func (d DateChain) minValue(limit time.Time, inclusive bool) DateChain {
	return DateChain{fn: guard(d.fn, axjson.KindDateMinValue, i18n.TooSmall, func(v time.Time) bool {
		return v.After(limit) || (inclusive && v.Equal(limit))
	})}
}

// Past rejects dates after the current instant. The clock is read on every
// check.
func (d DateChain) Past() DateChain {
	return DateChain{fn: then(d.fn, func(v time.Time, c axjson.Context) (time.Time, error) {
		if v.After(c.Now()) {
			return time.Time{}, c.Fail(axjson.KindDatePast, i18n.T(i18n.InFuture, nil))
		}
		return v, nil
	})}
}

// Future rejects dates at or before the current instant.
func (d DateChain) Future() DateChain {
	return DateChain{fn: then(d.fn, func(v time.Time, c axjson.Context) (time.Time, error) {
		if !v.After(c.Now()) {
			return time.Time{}, c.Fail(axjson.KindDateFuture, i18n.T(i18n.InPast, nil))
		}
		return v, nil
	})}
}

// Refine rejects dates for which pred returns false.
func (d DateChain) Refine(pred func(time.Time) bool) DateChain {
	return DateChain{fn: guard(d.fn, axjson.KindDateValidate, i18n.ValidationFailed, pred)}
}

// Convert ends the chain; the node yields conv(checked date).
func (d DateChain) Convert(conv func(time.Time) any) axjson.Validator { return converted(d.fn, conv) }
