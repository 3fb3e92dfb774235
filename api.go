package axjson

import (
	"fmt"
)

// Schema checks that fragment is a well-formed schema and returns it
// unchanged. Call it where schemas are declared to fail fast on mistakes.
func Schema(fragment any) (any, error) {
	return CheckSchema(fragment, "")
}

// MustSchema is like Schema but panics on an invalid fragment. It is intended
// for package-level schema variables.
func MustSchema(fragment any) any {
	s, err := Schema(fragment)
	if err != nil {
		panic(err)
	}
	return s
}

// Compile checks fragment and lifts it into a Validator once, so repeated
// calls skip re-inspecting the raw fragment.
func Compile(fragment any) (Validator, error) {
	if _, err := Schema(fragment); err != nil {
		return nil, err
	}
	return Lift(fragment), nil
}

// Validate checks v against fragment in the forward (parse) direction.
// Labeled record fields are read from their label and written under the
// field's own name.
func Validate(fragment any, v any) (any, error) {
	return ValidateWithOptions(fragment, v, Options{})
}

// ValidateWithOptions is Validate with per-call options.
func ValidateWithOptions(fragment any, v any, opt Options) (any, error) {
	return ValidateValue(fragment, v, newContext(false, opt))
}

// ValidateReverse checks v against fragment in the reverse (output)
// direction. Labeled record fields are read by their own name and renamed to
// their label once the whole value has been validated.
func ValidateReverse(fragment any, v any) (any, error) {
	return ValidateReverseWithOptions(fragment, v, Options{})
}

// ValidateReverseWithOptions is ValidateReverse with per-call options.
func ValidateReverseWithOptions(fragment any, v any, opt Options) (any, error) {
	c := newContext(true, opt)
	out, err := ValidateValue(fragment, v, c)
	if err != nil {
		return nil, err
	}
	c.remap.apply()
	return out, nil
}

// Stringify runs ValidateReverse and encodes the result as JSON text.
func Stringify(fragment any, v any) (string, error) {
	return StringifyWithOptions(fragment, v, Options{})
}

// StringifyWithOptions is Stringify with per-call options; opt.Codec selects
// the output format.
func StringifyWithOptions(fragment any, v any, opt Options) (string, error) {
	out, err := ValidateReverseWithOptions(fragment, v, opt)
	if err != nil {
		return "", err
	}
	tc := opt.textCodec()
	data, err := tc.Marshal(encodable(out))
	if err != nil {
		return "", fmt.Errorf("axjson: encode %s: %w", tc.Name(), err)
	}
	return string(data), nil
}

// Parse decodes JSON text and runs Validate on the result.
func Parse(fragment any, text string) (any, error) {
	return ParseWithOptions(fragment, text, Options{})
}

// ParseWithOptions is Parse with per-call options; opt.Codec selects the
// input format.
func ParseWithOptions(fragment any, text string, opt Options) (any, error) {
	tc := opt.textCodec()
	v, err := tc.Unmarshal([]byte(text))
	if err != nil {
		return nil, fmt.Errorf("axjson: decode %s: %w", tc.Name(), err)
	}
	return ValidateWithOptions(fragment, v, opt)
}
