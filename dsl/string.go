package dsl

import (
	"regexp"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/reoring/axjson"
	"github.com/reoring/axjson/i18n"
)

// StringChain validates strings. The zero value is not usable; start from
// String().
type StringChain struct {
	fn step[string]
}

func baseString(v any, c axjson.Context) (string, error) {
	s, ok := v.(string)
	if !ok {
		return "", c.Fail(axjson.KindString, i18n.T(i18n.NotString, nil))
	}
	return s, nil
}

// String returns a chain accepting any string.
func String() StringChain { return StringChain{fn: baseString} }

// Validate implements axjson.Validator.
func (s StringChain) Validate(v any, c axjson.Context) (any, error) { return run(s.fn, v, c) }

// NonEmpty rejects "".
func (s StringChain) NonEmpty() StringChain {
	return StringChain{fn: guard(s.fn, axjson.KindStringNonEmpty, i18n.EmptyString, func(v string) bool {
		return v != ""
	})}
}

// MaxLength rejects strings longer than n code points.
func (s StringChain) MaxLength(n int) StringChain { return s.maxLength(n, true) }

// MaxLengthExclusive rejects strings of n or more code points.
func (s StringChain) MaxLengthExclusive(n int) StringChain { return s.maxLength(n, false) }

func (s StringChain) maxLength(n int, inclusive bool) StringChain {
	return StringChain{fn: guard(s.fn, axjson.KindStringMaxLength, i18n.TooLong, func(v string) bool {
		return bound(float64(utf8.RuneCountInString(v)), float64(n), true, inclusive)
	})}
}

// MinLength rejects strings shorter than n code points.
func (s StringChain) MinLength(n int) StringChain { return s.minLength(n, true) }

// MinLengthExclusive rejects strings of n or fewer code points.
func (s StringChain) MinLengthExclusive(n int) StringChain { return s.minLength(n, false) }

func (s StringChain) minLength(n int, inclusive bool) StringChain {
	return StringChain{fn: guard(s.fn, axjson.KindStringMinLength, i18n.TooShort, func(v string) bool {
		return bound(float64(utf8.RuneCountInString(v)), float64(n), false, inclusive)
	})}
}

// Pattern rejects strings that re does not match.
func (s StringChain) Pattern(re *regexp.Regexp) StringChain {
	return StringChain{fn: guard(s.fn, axjson.KindStringTest, i18n.PatternMismatch, re.MatchString)}
}

// UUID rejects strings that are not a UUID in any form uuid.Parse accepts.
func (s StringChain) UUID() StringChain {
	return StringChain{fn: guard(s.fn, axjson.KindStringUUID, i18n.NotUUID, func(v string) bool {
		_, err := uuid.Parse(v)
		return err == nil
	})}
}

// Refine rejects strings for which pred returns false.
func (s StringChain) Refine(pred func(string) bool) StringChain {
	return StringChain{fn: guard(s.fn, axjson.KindStringValidate, i18n.ValidationFailed, pred)}
}

// Convert ends the chain; the node yields conv(checked string).
func (s StringChain) Convert(conv func(string) any) axjson.Validator { return converted(s.fn, conv) }
