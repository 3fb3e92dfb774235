package dsl_test

import (
	"testing"

	"github.com/reoring/axjson"
)

// expectKind fails the test unless err is a ValidationError of kind at path.
func expectKind(t *testing.T, err error, kind, path string) {
	t.Helper()
	ve, ok := axjson.AsValidationError(err)
	if !ok {
		t.Fatalf("expected ValidationError %s at %q, got %v", kind, path, err)
	}
	if ve.Kind != kind || ve.Path != path {
		t.Fatalf("expected %s at %q, got %s at %q (%s)", kind, path, ve.Kind, ve.Path, ve.Description)
	}
}

func mustOK(t *testing.T, schema, v any) any {
	t.Helper()
	got, err := axjson.Validate(schema, v)
	if err != nil {
		t.Fatalf("validate %#v: unexpected err %v", v, err)
	}
	return got
}
