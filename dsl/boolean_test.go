package dsl_test

import (
	"testing"

	"github.com/reoring/axjson"
	g "github.com/reoring/axjson/dsl"
)

func TestBoolean(t *testing.T) {
	if got := mustOK(t, g.Boolean(), true); got != true {
		t.Fatalf("unexpected value: %v", got)
	}
	if got := mustOK(t, g.Boolean(), false); got != false {
		t.Fatalf("unexpected value: %v", got)
	}
	for _, v := range []any{0, "true", nil} {
		_, err := axjson.Validate(g.Boolean(), v)
		expectKind(t, err, axjson.KindBoolean, "")
	}
	yesNo := g.Boolean().Convert(func(b bool) any {
		if b {
			return "yes"
		}
		return "no"
	})
	if got := mustOK(t, yesNo, false); got != "no" {
		t.Fatalf("unexpected value: %v", got)
	}
}
