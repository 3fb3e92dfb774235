package dsl_test

import (
	"testing"
	"time"

	"github.com/reoring/axjson"
	g "github.com/reoring/axjson/dsl"
)

var fixedNow = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

func atFixedNow() axjson.Options {
	return axjson.Options{Now: func() time.Time { return fixedNow }}
}

func TestDate_ParsesStringsAndTimes(t *testing.T) {
	got := mustOK(t, g.Date(), "2024-05-06T07:08:09.000Z")
	d, ok := got.(time.Time)
	if !ok || !d.Equal(time.Date(2024, 5, 6, 7, 8, 9, 0, time.UTC)) {
		t.Fatalf("unexpected value: %#v", got)
	}
	tm := time.Date(2020, 1, 2, 0, 0, 0, 0, time.UTC)
	if got := mustOK(t, g.Date(), tm); !got.(time.Time).Equal(tm) {
		t.Fatalf("unexpected value: %v", got)
	}
	if got := mustOK(t, g.Date(), &tm); !got.(time.Time).Equal(tm) {
		t.Fatalf("unexpected value: %v", got)
	}
	for _, v := range []any{"yesterday", 1700000000, nil, (*time.Time)(nil)} {
		_, err := axjson.Validate(g.Date(), v)
		expectKind(t, err, axjson.KindDate, "")
	}
}

func TestDate_Bounds(t *testing.T) {
	lo := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	hi := time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC)
	s := g.Date().MinValue(lo).MaxValue(hi)
	mustOK(t, s, lo)
	mustOK(t, s, hi)
	_, err := axjson.Validate(s, lo.Add(-time.Millisecond))
	expectKind(t, err, axjson.KindDateMinValue, "")
	_, err = axjson.Validate(s, hi.Add(time.Millisecond))
	expectKind(t, err, axjson.KindDateMaxValue, "")

	ex := g.Date().MinValueExclusive(lo).MaxValueExclusive(hi)
	_, err = axjson.Validate(ex, lo)
	expectKind(t, err, axjson.KindDateMinValue, "")
	_, err = axjson.Validate(ex, hi)
	expectKind(t, err, axjson.KindDateMaxValue, "")
}

func TestDate_PastAndFuture(t *testing.T) {
	opt := atFixedNow()
	before, after := fixedNow.Add(-time.Second), fixedNow.Add(time.Second)

	if _, err := axjson.ValidateWithOptions(g.Date().Past(), before, opt); err != nil {
		t.Fatalf("past: unexpected err %v", err)
	}
	if _, err := axjson.ValidateWithOptions(g.Date().Past(), fixedNow, opt); err != nil {
		t.Fatalf("past: now should be accepted, got %v", err)
	}
	_, err := axjson.ValidateWithOptions(g.Date().Past(), after, opt)
	expectKind(t, err, axjson.KindDatePast, "")

	if _, err := axjson.ValidateWithOptions(g.Date().Future(), after, opt); err != nil {
		t.Fatalf("future: unexpected err %v", err)
	}
	_, err = axjson.ValidateWithOptions(g.Date().Future(), fixedNow, opt)
	expectKind(t, err, axjson.KindDateFuture, "")
	_, err = axjson.ValidateWithOptions(g.Date().Future(), before, opt)
	expectKind(t, err, axjson.KindDateFuture, "")
}

func TestDate_ClockReadPerCheck(t *testing.T) {
	now := fixedNow
	opt := axjson.Options{Now: func() time.Time { return now }}
	s := g.Date().Past()
	if _, err := axjson.ValidateWithOptions(s, fixedNow.Add(time.Hour), opt); err == nil {
		t.Fatalf("expected failure before the clock moves")
	}
	now = now.Add(2 * time.Hour)
	if _, err := axjson.ValidateWithOptions(s, fixedNow.Add(time.Hour), opt); err != nil {
		t.Fatalf("expected success after the clock moves: %v", err)
	}
}

func TestDate_RefineAndConvert(t *testing.T) {
	weekday := g.Date().Refine(func(d time.Time) bool {
		return d.Weekday() != time.Saturday && d.Weekday() != time.Sunday
	})
	mustOK(t, weekday, "2024-06-03T00:00:00Z")
	_, err := axjson.Validate(weekday, "2024-06-01T00:00:00Z")
	expectKind(t, err, axjson.KindDateValidate, "")

	year := g.Date().Convert(func(d time.Time) any { return d.Year() })
	if got := mustOK(t, year, "2024-06-03T00:00:00Z"); got != 2024 {
		t.Fatalf("unexpected value: %v", got)
	}
}
