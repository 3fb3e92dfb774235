package axjson_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/reoring/axjson"
)

func TestValidationError_Message(t *testing.T) {
	e := &axjson.ValidationError{Path: ".a", Kind: "string.nonEmpty", Description: "The value is an empty string."}
	if e.Error() != ".a [string.nonEmpty]: The value is an empty string." {
		t.Fatalf("unexpected message: %q", e.Error())
	}
	root := &axjson.ValidationError{Kind: "null", Description: "The value is not null."}
	if root.Error() != " [null]: The value is not null." {
		t.Fatalf("unexpected root message: %q", root.Error())
	}
}

func TestAsValidationError_Wrapped(t *testing.T) {
	inner := &axjson.ValidationError{Path: ".x", Kind: "number"}
	wrapped := fmt.Errorf("context: %w", inner)
	ve, ok := axjson.AsValidationError(wrapped)
	if !ok || ve != inner {
		t.Fatalf("expected to extract inner error, got %v", ve)
	}
	if _, ok := axjson.AsValidationError(nil); ok {
		t.Fatalf("nil must not match")
	}
	if _, ok := axjson.AsValidationError(errors.New("x")); ok {
		t.Fatalf("plain error must not match")
	}
}

func TestValidationError_UnwrapCause(t *testing.T) {
	cause := &axjson.ValidationError{Path: ".b", Kind: "number"}
	e := &axjson.ValidationError{Kind: "intersection", Cause: cause}
	if !errors.Is(e, cause) {
		t.Fatalf("errors.Is should reach the cause")
	}
}

func TestAsInvalidSchemaError(t *testing.T) {
	e := fmt.Errorf("init: %w", &axjson.InvalidSchemaError{Path: "[0]"})
	se, ok := axjson.AsInvalidSchemaError(e)
	if !ok || se.Path != "[0]" {
		t.Fatalf("unexpected: %v", se)
	}
	if se.Error() != "[0] is not valid schema." {
		t.Fatalf("unexpected message: %q", se.Error())
	}
	if _, ok := axjson.AsInvalidSchemaError(nil); ok {
		t.Fatalf("nil must not match")
	}
}
