package codec

import (
	"errors"
	"strings"
	"time"
)

// ErrInvalidDate is returned by ParseDate when no supported layout matches.
var ErrInvalidDate = errors.New("codec: unparseable date")

// dateLayouts lists accepted textual date layouts, most specific first.
// Layouts without a zone are interpreted as UTC.
var dateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05.999999999Z07:00",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02 15:04:05",
	"2006-01-02",
	"2006-01",
	"2006/01/02 15:04:05",
	"2006/01/02",
	time.RFC1123Z,
	time.RFC1123,
	time.RFC850,
	time.RFC822Z,
	time.RFC822,
	time.ANSIC,
	time.UnixDate,
	time.RubyDate,
	"Mon Jan 02 2006 15:04:05 GMT-0700",
	"January 2, 2006",
	"Jan 2, 2006",
}

// ParseDate parses s as an ISO-8601 / RFC3339 timestamp or one of a small set
// of other common layouts.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, ErrInvalidDate
	}
	for _, layout := range dateLayouts {
		if t, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			return t, nil
		}
	}
	return time.Time{}, ErrInvalidDate
}

// FormatDate renders t in the canonical wire form: UTC, RFC3339 with
// millisecond precision (matching the ISO form most JSON producers emit).
func FormatDate(t time.Time) string {
	return t.UTC().Format("2006-01-02T15:04:05.000Z07:00")
}
