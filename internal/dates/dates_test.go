package dates

import (
	"testing"
	"time"
)

// TestLegacyFormat verifies the ja-JP display string, including the Japanese
// weekday suffix.
func TestLegacyFormat(t *testing.T) {
	tests := []struct {
		date time.Time
		want string
	}{
		{time.Date(2024, 5, 1, 10, 30, 0, 0, time.UTC), "2024/05/01(水)"},
		{time.Date(2024, 5, 5, 0, 0, 0, 0, time.UTC), "2024/05/05(日)"},
		{time.Date(2024, 12, 31, 23, 59, 0, 0, time.UTC), "2024/12/31(火)"},
	}
	for _, tt := range tests {
		if got := LegacyFormat(tt.date); got != tt.want {
			t.Errorf("LegacyFormat(%v) = %q, want %q", tt.date, got, tt.want)
		}
	}
}

// TestDayKey verifies the normalized key ignores the time of day.
func TestDayKey(t *testing.T) {
	morning := time.Date(2024, 5, 1, 6, 0, 0, 0, time.UTC)
	evening := time.Date(2024, 5, 1, 22, 45, 0, 0, time.UTC)

	if got := DayKey(morning); got != "2024-05-01" {
		t.Errorf("DayKey = %q, want %q", got, "2024-05-01")
	}
	if DayKey(morning) != DayKey(evening) {
		t.Error("day key should not depend on time of day")
	}
}

// TestKeyFor verifies zero-padding of single-digit months and days.
func TestKeyFor(t *testing.T) {
	if got := KeyFor(2024, time.March, 7); got != "2024-03-07" {
		t.Errorf("KeyFor = %q, want %q", got, "2024-03-07")
	}
}

// TestParseLegacy verifies the round trip through the display string.
func TestParseLegacy(t *testing.T) {
	got, err := ParseLegacy("2024/05/01(水)")
	if err != nil {
		t.Fatalf("ParseLegacy error: %v", err)
	}
	if got.Year() != 2024 || got.Month() != time.May || got.Day() != 1 {
		t.Errorf("ParseLegacy = %v, want 2024-05-01", got)
	}
}

// TestParseLegacyInvalid verifies malformed and impossible dates are rejected.
func TestParseLegacyInvalid(t *testing.T) {
	for _, s := range []string{"", "not a date", "2024-05-01", "2024/02/30(金)"} {
		if _, err := ParseLegacy(s); err == nil {
			t.Errorf("ParseLegacy(%q) succeeded, want error", s)
		}
	}
}

// TestParseDayKeyRoundTrip verifies DayKey and ParseDayKey agree.
func TestParseDayKeyRoundTrip(t *testing.T) {
	orig := time.Date(2023, 11, 9, 0, 0, 0, 0, time.UTC)
	parsed, err := ParseDayKey(DayKey(orig))
	if err != nil {
		t.Fatalf("ParseDayKey error: %v", err)
	}
	if !parsed.Equal(orig) {
		t.Errorf("round trip = %v, want %v", parsed, orig)
	}
}
