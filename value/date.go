package value

import (
	"regexp"
	"strings"
	"time"
)

// ISO is the canonical date layout every date field is normalized to.
const ISO = "2006-01-02"

var (
	// Anything that starts with an ISO date followed by a time component.
	// The time portion is truncated; the date portion must still be a
	// valid calendar date.
	isoDateTimeRegex = regexp.MustCompile(`^(\d{4}-\d{2}-\d{2})[T ]`)

	// Compact extraction-run timestamp: 20250115_143000
	compactRegex = regexp.MustCompile(`^\d{8}_\d{6}$`)
)

// Unambiguous layouts are tried first. The slash form MM/DD/YYYY comes
// last: it is the only ambiguous encoding and every observed source
// platform is month-first, so day-first readings are never attempted.
var dateLayouts = []string{
	ISO,
	"2-Jan-2006",
	"2 January 2006",
	"Jan 2, 2006",
	"January 2, 2006",
	time.RFC1123Z,
	time.RFC1123,
	"Mon, 2 Jan 2006 15:04:05 -0700",
	"2 Jan 2006 15:04:05 -0700",
	"1/2/2006",
}

// ISODate collapses a raw date value to canonical "YYYY-MM-DD" form.
// It returns nil for nil, empty, whitespace-only, or unrecognized input.
// A malformed date degrades to nil rather than failing the batch.
func ISODate(v any) any {
	if s, ok := ISODateString(v); ok {
		return s
	}
	return nil
}

// ISODateString is ISODate with an explicit ok flag for call sites that
// want a typed string.
func ISODateString(v any) (string, bool) {
	s := strings.TrimSpace(Text(v))
	if s == "" {
		return "", false
	}

	// ISO datetime: keep the date, drop the time.
	if matches := isoDateTimeRegex.FindStringSubmatch(s); matches != nil {
		if t, err := time.Parse(ISO, matches[1]); err == nil {
			return t.Format(ISO), true
		}
		return "", false
	}

	if compactRegex.MatchString(s) {
		if t, err := time.Parse("20060102_150405", s); err == nil {
			return t.Format(ISO), true
		}
		return "", false
	}

	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format(ISO), true
		}
	}

	return "", false
}

// IsISODate reports whether s is exactly a canonical YYYY-MM-DD string.
func IsISODate(s string) bool {
	if len(s) != len(ISO) {
		return false
	}
	_, err := time.Parse(ISO, s)
	return err == nil
}
