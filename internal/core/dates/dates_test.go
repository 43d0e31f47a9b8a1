package dates

import (
	"testing"
	"time"
)

// Zones chosen to cover negative offsets, zero offset, positive offsets,
// a southern-hemisphere DST schedule, and a zone that abolished DST.
var testZones = []string{
	"America/Toronto",
	"Europe/London",
	"Asia/Tokyo",
	"Australia/Sydney",
	"America/Sao_Paulo",
}

// Dates covering year boundaries, a leap day, and the 2025 US DST
// transition days (spring forward / fall back).
var testDates = []string{
	"2025-01-01",
	"2024-02-29",
	"2025-12-31",
	"2025-03-09",
	"2025-11-02",
}

func loadZone(t *testing.T, name string) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation(name)
	if err != nil {
		t.Fatalf("load zone %s: %v", name, err)
	}
	return loc
}

func TestParseIn_RoundTripAcrossZones(t *testing.T) {
	for _, zone := range testZones {
		loc := loadZone(t, zone)
		for _, s := range testDates {
			if got := DateOnly(ParseIn(s, loc)); got != s {
				t.Errorf("zone %s: DateOnly(ParseIn(%q)) = %q", zone, s, got)
			}
		}
	}
}

func TestParseIn_DisplayRoundTripAcrossZones(t *testing.T) {
	// Stored date -> display string -> reparsed -> date-only must be lossless.
	for _, zone := range testZones {
		loc := loadZone(t, zone)
		for _, s := range testDates {
			display := FormatDisplayIn(ParseIn(s, loc), loc)
			if got := DateOnly(ParseIn(display, loc)); got != s {
				t.Errorf("zone %s: round trip of %q via display %q = %q", zone, s, display, got)
			}
		}
	}
}

func TestParseIn_PinsMidday(t *testing.T) {
	loc := loadZone(t, "America/Toronto")
	got := ParseIn("2025-03-09", loc)
	if got.Hour() != 12 || got.Minute() != 0 {
		t.Errorf("expected 12:00, got %02d:%02d", got.Hour(), got.Minute())
	}
	if got.Location() != loc {
		t.Errorf("expected location %v, got %v", loc, got.Location())
	}
}

func TestParseIn_FallbackLayouts(t *testing.T) {
	loc := loadZone(t, "Asia/Tokyo")

	rfc := ParseIn("2025-06-15T09:30:00+09:00", loc)
	if DateOnly(rfc.In(loc)) != "2025-06-15" {
		t.Errorf("RFC3339 fallback wrong date: %v", rfc)
	}

	display := ParseIn("06/15/2025", loc)
	if DateOnly(display) != "2025-06-15" {
		t.Errorf("display-layout fallback wrong date: %v", display)
	}
}

func TestParseIn_UnparseableYieldsNow(t *testing.T) {
	fixed := time.Date(2025, 8, 30, 10, 0, 0, 0, time.UTC)
	orig := now
	now = func() time.Time { return fixed }
	defer func() { now = orig }()

	got := ParseIn("not a date", time.UTC)
	if !got.Equal(fixed) {
		t.Errorf("expected now fallback %v, got %v", fixed, got)
	}
}

func TestParseIn_NilLocation(t *testing.T) {
	got := ParseIn("2025-05-01", nil)
	if DateOnly(got) != "2025-05-01" {
		t.Errorf("nil location parse = %v", got)
	}
}

func TestFormatDisplayIn(t *testing.T) {
	loc := loadZone(t, "Australia/Sydney")
	if got := FormatDisplayIn(ParseIn("2025-12-31", loc), loc); got != "12/31/2025" {
		t.Errorf("expected 12/31/2025, got %q", got)
	}
}

func TestDetectTimezone_NeverEmpty(t *testing.T) {
	if got := DetectTimezone(); got == "" {
		t.Fatal("DetectTimezone returned empty string")
	}
}

func TestTimezoneName_Fallback(t *testing.T) {
	if got := timezoneName(nil); got != FallbackTimezone {
		t.Errorf("nil location: expected %q, got %q", FallbackTimezone, got)
	}
	if got := timezoneName(time.FixedZone("", 0)); got != FallbackTimezone {
		t.Errorf("unnamed zone: expected %q, got %q", FallbackTimezone, got)
	}
}

func TestCurrentDateIn(t *testing.T) {
	// 2025-06-01 01:30 UTC is still 2025-05-31 in Toronto and already
	// 2025-06-01 10:30 in Tokyo.
	fixed := time.Date(2025, 6, 1, 1, 30, 0, 0, time.UTC)
	orig := now
	now = func() time.Time { return fixed }
	defer func() { now = orig }()

	if got := CurrentDateIn("America/Toronto"); got != "2025-05-31" {
		t.Errorf("Toronto: expected 2025-05-31, got %q", got)
	}
	if got := CurrentDateIn("Asia/Tokyo"); got != "2025-06-01" {
		t.Errorf("Tokyo: expected 2025-06-01, got %q", got)
	}
	if got := CurrentDateIn("no/such_zone"); got != "2025-06-01" {
		t.Errorf("bad zone should fall back to UTC, got %q", got)
	}
}

func TestIsValidDateString(t *testing.T) {
	valid := []string{"2025-01-01", "2024-02-29", "2025-12-31"}
	for _, s := range valid {
		if !IsValidDateString(s) {
			t.Errorf("%q should be valid", s)
		}
	}

	invalid := []string{"", "2025-02-30", "2025-13-01", "2025-00-10", "01/01/2025", "2025-1-1", "yesterday"}
	for _, s := range invalid {
		if IsValidDateString(s) {
			t.Errorf("%q should be invalid", s)
		}
	}
}

func TestDisplayDateString(t *testing.T) {
	if got := DisplayDateString("2025-07-04"); got != "07/04/2025" {
		t.Errorf("expected 07/04/2025, got %q", got)
	}
}
