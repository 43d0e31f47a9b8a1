// Package dates provides timezone-safe handling of calendar dates.
//
// A calendar date (YYYY-MM-DD) carries no instant semantics: "2025-03-09"
// means the same day to a user in Tokyo and a user in Toronto. Naive
// conversions through UTC shift such dates by a day for users behind UTC,
// so every parse here pins the value to midday in the target zone — far
// enough from both midnights that no UTC offset (including half-hour zones)
// or DST transition can move it across a day boundary.
package dates

import (
	"regexp"
	"time"
)

const (
	// FallbackTimezone is returned whenever the runtime zone cannot be resolved.
	FallbackTimezone = "UTC"

	dateLayout    = "2006-01-02"
	displayLayout = "01/02/2006"
)

var dateOnlyRe = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// fallbackLayouts are tried in order when input is not a plain calendar date.
var fallbackLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	displayLayout,
}

// now is swapped out in tests for deterministic "today" values.
var now = time.Now

// DetectTimezone returns the runtime's local timezone name. It never fails:
// when the zone cannot be resolved it returns FallbackTimezone.
func DetectTimezone() string {
	return timezoneName(time.Local)
}

func timezoneName(loc *time.Location) string {
	if loc == nil {
		return FallbackTimezone
	}
	name := loc.String()
	if name == "" {
		return FallbackTimezone
	}
	return name
}

// CurrentDateIn returns today's date as observed in the given timezone,
// formatted YYYY-MM-DD. An unknown timezone falls back to UTC.
func CurrentDateIn(tz string) string {
	loc, err := time.LoadLocation(tz)
	if err != nil {
		loc = time.UTC
	}
	return now().In(loc).Format(dateLayout)
}

// Parse converts a date string to a time.Time in the local zone.
// See ParseIn for the exact semantics.
func Parse(s string) time.Time {
	return ParseIn(s, time.Local)
}

// ParseIn converts a date string to a time.Time in loc.
//
// Strict YYYY-MM-DD input is pinned to 12:00 in loc. Other formats fall
// back to generic layout parsing; input that matches nothing yields the
// current time rather than an error. Callers that need rejection semantics
// must pre-validate with IsValidDateString.
func ParseIn(s string, loc *time.Location) time.Time {
	if loc == nil {
		loc = time.UTC
	}
	if dateOnlyRe.MatchString(s) {
		if d, err := time.Parse(dateLayout, s); err == nil {
			return time.Date(d.Year(), d.Month(), d.Day(), 12, 0, 0, 0, loc)
		}
	}
	for _, layout := range fallbackLayouts {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return t
		}
	}
	return now().In(loc)
}

// FormatDisplay renders t as MM/DD/YYYY in the local zone.
func FormatDisplay(t time.Time) string {
	return FormatDisplayIn(t, time.Local)
}

// FormatDisplayIn renders t as MM/DD/YYYY in loc.
func FormatDisplayIn(t time.Time, loc *time.Location) string {
	if loc == nil {
		loc = time.UTC
	}
	return t.In(loc).Format(displayLayout)
}

// DisplayDateString formats a stored YYYY-MM-DD value for display without
// shifting the calendar day, regardless of the host zone's UTC offset.
func DisplayDateString(s string) string {
	return FormatDisplay(Parse(s))
}

// DateOnly extracts the YYYY-MM-DD portion of t in t's own location.
func DateOnly(t time.Time) string {
	return t.Format(dateLayout)
}

// IsValidDateString reports whether s is a well-formed, real calendar date
// in YYYY-MM-DD form. "2025-02-30" fails; "2024-02-29" passes.
func IsValidDateString(s string) bool {
	if !dateOnlyRe.MatchString(s) {
		return false
	}
	_, err := time.Parse(dateLayout, s)
	return err == nil
}
