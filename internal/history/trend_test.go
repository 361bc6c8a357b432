package history

import (
	"testing"
	"time"

	"github.com/ibuki-kubota/my-workout-app/internal/models"
)

func itemWithFatigue(name string, fatigue int) models.HistoryItem {
	return models.HistoryItem{Name: name, TotalSets: 3, CompletedSets: 3, Fatigue: &fatigue}
}

// TestExerciseNames verifies deduplication and lexicographic order.
func TestExerciseNames(t *testing.T) {
	records := []models.HistoryRecord{
		record("2024-05-03", "", itemWithFatigue("レッグプレス", 7), itemWithFatigue("チェストプレス", 5)),
		record("2024-05-01", "", itemWithFatigue("チェストプレス", 6)),
	}
	names := ExerciseNames(records)
	if len(names) != 2 {
		t.Fatalf("len = %d, want 2", len(names))
	}
	if names[0] != "チェストプレス" || names[1] != "レッグプレス" {
		t.Errorf("names = %v, not sorted", names)
	}
}

// TestCursorWrap verifies next/prev navigation wraps at both ends.
func TestCursorWrap(t *testing.T) {
	c := NewCursor([]string{"a", "b", "c"}, 0)

	c.Prev()
	if c.Selected() != "c" {
		t.Errorf("after Prev from 0: %q, want %q", c.Selected(), "c")
	}
	c.Next()
	if c.Selected() != "a" {
		t.Errorf("after Next from end: %q, want %q", c.Selected(), "a")
	}
}

// TestCursorEmpty verifies an empty cursor is inert.
func TestCursorEmpty(t *testing.T) {
	c := NewCursor(nil, 5)
	c.Next()
	c.Prev()
	if c.Selected() != "" {
		t.Errorf("Selected = %q, want empty", c.Selected())
	}
}

// TestCursorClampIndex verifies out-of-range start indexes land in range.
func TestCursorClampIndex(t *testing.T) {
	if c := NewCursor([]string{"a", "b"}, 5); c.Selected() != "b" {
		t.Errorf("index 5 over 2 names: %q, want %q", c.Selected(), "b")
	}
	if c := NewCursor([]string{"a", "b"}, -1); c.Selected() != "b" {
		t.Errorf("index -1 over 2 names: %q, want %q", c.Selected(), "b")
	}
}

// TestMonthSamples verifies only days with a recorded fatigue for the
// selected exercise yield points.
func TestMonthSamples(t *testing.T) {
	records := []models.HistoryRecord{
		record("2024-05-10", "", itemWithFatigue("チェストプレス", 8)),
		record("2024-05-05", "", models.HistoryItem{Name: "チェストプレス", TotalSets: 3, CompletedSets: 2}),
		record("2024-05-03", "", itemWithFatigue("チェストプレス", 5), itemWithFatigue("レッグプレス", 9)),
		record("2024-04-30", "", itemWithFatigue("チェストプレス", 4)),
	}

	samples := MonthSamples(records, "チェストプレス", 2024, time.May)
	if len(samples) != 2 {
		t.Fatalf("len = %d, want 2 (day 5 has no rating, April is out of range)", len(samples))
	}
	if samples[0].Day != 3 || samples[0].Fatigue != 5 {
		t.Errorf("samples[0] = %+v, want day 3 fatigue 5", samples[0])
	}
	if samples[1].Day != 10 || samples[1].Fatigue != 8 {
		t.Errorf("samples[1] = %+v, want day 10 fatigue 8", samples[1])
	}
}

// TestSegments verifies successive samples connect and gaps are skipped over
// rather than interpolated.
func TestSegments(t *testing.T) {
	samples := []Sample{{Day: 3, Fatigue: 5}, {Day: 10, Fatigue: 8}, {Day: 11, Fatigue: 6}}
	segs := Segments(samples)
	if len(segs) != 2 {
		t.Fatalf("len = %d, want 2", len(segs))
	}
	if segs[0].From.Day != 3 || segs[0].To.Day != 10 {
		t.Errorf("segs[0] connects %d-%d, want 3-10", segs[0].From.Day, segs[0].To.Day)
	}

	if got := Segments(samples[:1]); got != nil {
		t.Errorf("single sample should yield no segments, got %v", got)
	}
	if got := Segments(nil); got != nil {
		t.Errorf("no samples should yield no segments, got %v", got)
	}
}
