package axjson

import (
	"errors"
	"fmt"

	"github.com/reoring/axjson/i18n"
)

// Failure kinds (exported consts for IDE completion; tests and callers may
// branch on them).
const (
	KindNull         = "null"
	KindUndefined    = "undefined"
	KindTuple        = "tuple"
	KindDictionary   = "dictionary"
	KindConstant     = "constant"
	KindUnknown      = "unknown"
	KindArray        = "array"
	KindUnion        = "union"
	KindIntersection = "intersection"

	KindString          = "string"
	KindStringNonEmpty  = "string.nonEmpty"
	KindStringMaxLength = "string.maxLength"
	KindStringMinLength = "string.minLength"
	KindStringTest      = "string.test"
	KindStringUUID      = "string.uuid"
	KindStringValidate  = "string.validate"

	KindNumber         = "number"
	KindNumberNonZero  = "number.nonZero"
	KindNumberInteger  = "number.integer"
	KindNumberMaxValue = "number.maxValue"
	KindNumberMinValue = "number.minValue"
	KindNumberValidate = "number.validate"

	KindBoolean = "boolean"

	KindDate         = "Date"
	KindDateMaxValue = "Date.maxValue"
	KindDateMinValue = "Date.minValue"
	KindDatePast     = "Date.past"
	KindDateFuture   = "Date.future"
	KindDateValidate = "Date.validate"

	KindObject         = "Object"
	KindObjectValidate = "Object.validate"

	KindDictionaryObject   = "Dictionary"
	KindDictionaryValidate = "Dictionary.validate"
)

// ValidationError reports a value that does not match its schema.
type ValidationError struct {
	Path        string // Dotted/bracketed location, "" for the root (e.g. ".items[2].name").
	Kind        string // One of the Kind* constants, or a custom kind.
	Description string
	// Cause is the branch error an intersection failure wraps (nil otherwise).
	Cause error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s [%s]: %s", e.Path, e.Kind, e.Description)
}

func (e *ValidationError) Unwrap() error { return e.Cause }

// InvalidSchemaError reports a schema fragment that cannot be interpreted.
type InvalidSchemaError struct {
	Path string
}

func (e *InvalidSchemaError) Error() string {
	return i18n.T(i18n.NotValidSchemaPath, map[string]string{"path": e.Path})
}

// AsValidationError extracts a *ValidationError from err using errors.As.
func AsValidationError(err error) (*ValidationError, bool) {
	if err == nil {
		return nil, false
	}
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}

// AsInvalidSchemaError extracts an *InvalidSchemaError from err using errors.As.
func AsInvalidSchemaError(err error) (*InvalidSchemaError, bool) {
	if err == nil {
		return nil, false
	}
	var se *InvalidSchemaError
	if errors.As(err, &se) {
		return se, true
	}
	return nil, false
}
