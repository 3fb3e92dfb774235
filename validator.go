package axjson

// Validator is the capability every compiled schema node has: it accepts a
// raw value and returns the validated (possibly transformed) value, or a
// *ValidationError. Any value implementing Validator is treated as a node by
// the walker, whichever builder produced it.
type Validator interface {
	Validate(v any, c Context) (any, error)
}

// ValidatorFunc adapts an ordinary function to a Validator.
type ValidatorFunc func(v any, c Context) (any, error)

// Validate calls f(v, c).
func (f ValidatorFunc) Validate(v any, c Context) (any, error) { return f(v, c) }

// Labeled is a Validator carrying a key label: the external (wire) name of a
// record field whose internal name differs.
type Labeled interface {
	Validator
	Label() string
}

// labelOf returns the key label of a record field fragment, or "".
func labelOf(fragment any) string {
	if l, ok := fragment.(Labeled); ok {
		return l.Label()
	}
	return ""
}
