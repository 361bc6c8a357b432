// Package dates formats and matches the calendar keys used by workout logs.
//
// Stored records carry two date representations: the legacy ja-JP display
// string ("2024/05/01(水)") written by earlier clients, and a normalized day
// key ("2024-05-01"). The day key is computed by exactly one function on both
// the write and the read path, so calendar lookups cannot drift.
package dates

import (
	"fmt"
	"time"
)

const dayKeyLayout = "2006-01-02"

var jpWeekdays = [7]string{"日", "月", "火", "水", "木", "金", "土"}

// DayKey returns the normalized calendar key for a moment in time.
func DayKey(t time.Time) string {
	return t.Format(dayKeyLayout)
}

// KeyFor returns the day key for a calendar date.
func KeyFor(year int, month time.Month, day int) string {
	return fmt.Sprintf("%04d-%02d-%02d", year, month, day)
}

// ParseDayKey parses a normalized day key back into a date.
func ParseDayKey(key string) (time.Time, error) {
	return time.Parse(dayKeyLayout, key)
}

// LegacyFormat renders the ja-JP display string written by the original
// client: "2024/05/01(水)".
func LegacyFormat(t time.Time) string {
	return fmt.Sprintf("%04d/%02d/%02d(%s)", t.Year(), int(t.Month()), t.Day(), jpWeekdays[int(t.Weekday())])
}

// ParseLegacy parses the ja-JP display string. Used only as a fallback for
// records stored before day keys existed.
func ParseLegacy(s string) (time.Time, error) {
	var y, m, d int
	var wd string
	if _, err := fmt.Sscanf(s, "%d/%d/%d(%1s)", &y, &m, &d, &wd); err != nil {
		return time.Time{}, fmt.Errorf("parsing legacy date %q: %w", s, err)
	}
	t := time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.Local)
	if t.Year() != y || t.Month() != time.Month(m) || t.Day() != d {
		return time.Time{}, fmt.Errorf("invalid legacy date %q", s)
	}
	return t, nil
}
