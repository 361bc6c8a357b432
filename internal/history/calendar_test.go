package history

import (
	"testing"
	"time"

	"github.com/ibuki-kubota/my-workout-app/internal/models"
)

func record(dayKey, legacy string, items ...models.HistoryItem) models.HistoryRecord {
	return models.HistoryRecord{Date: legacy, DayKey: dayKey, Items: items}
}

// TestCalendarLeadingBlanks verifies the grid starts with one blank cell per
// weekday before the 1st. May 2024 starts on a Wednesday, so three blanks.
func TestCalendarLeadingBlanks(t *testing.T) {
	m := Calendar(nil, 2024, time.May, time.Date(2024, 5, 15, 0, 0, 0, 0, time.UTC))

	if len(m.Cells) != 3+31 {
		t.Fatalf("cell count = %d, want %d", len(m.Cells), 3+31)
	}
	for i := 0; i < 3; i++ {
		if m.Cells[i].Day != 0 {
			t.Errorf("cell %d: day = %d, want blank", i, m.Cells[i].Day)
		}
	}
	if m.Cells[3].Day != 1 {
		t.Errorf("first real cell day = %d, want 1", m.Cells[3].Day)
	}
}

// TestCalendarDoneDays verifies a day is marked done exactly when a record's
// day key matches it.
func TestCalendarDoneDays(t *testing.T) {
	records := []models.HistoryRecord{
		record("2024-05-01", "2024/05/01(水)"),
		record("2024-05-03", "2024/05/03(金)"),
	}
	m := Calendar(records, 2024, time.May, time.Date(2024, 5, 3, 0, 0, 0, 0, time.UTC))

	byDay := map[int]DayCell{}
	for _, c := range m.Cells {
		if c.Day > 0 {
			byDay[c.Day] = c
		}
	}

	if !byDay[1].Done || byDay[1].Record == nil {
		t.Error("day 1 should be done with a record attached")
	}
	if byDay[2].Done {
		t.Error("day 2 should not be done")
	}
	if !byDay[3].Done {
		t.Error("day 3 should be done")
	}
	if !byDay[3].IsToday {
		t.Error("day 3 should be flagged as today")
	}
	if byDay[1].IsToday {
		t.Error("day 1 should not be flagged as today")
	}
}

// TestCalendarLegacyFallback verifies records stored before day keys existed
// still land on the right day via the display string.
func TestCalendarLegacyFallback(t *testing.T) {
	records := []models.HistoryRecord{
		record("", "2024/05/01(水)"),
		record("", "garbage"),
	}
	m := Calendar(records, 2024, time.May, time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC))

	for _, c := range m.Cells {
		if c.Day == 1 && !c.Done {
			t.Error("legacy-dated record not matched to day 1")
		}
		if c.Day != 1 && c.Done {
			t.Errorf("day %d unexpectedly done", c.Day)
		}
	}
}

// TestCalendarNewestWins verifies that when two records share a day the
// newest (first in the list) is the one attached to the cell.
func TestCalendarNewestWins(t *testing.T) {
	newer := record("2024-05-01", "2024/05/01(水)")
	newer.TotalSets = 9
	older := record("2024-05-01", "2024/05/01(水)")
	older.TotalSets = 3

	m := Calendar([]models.HistoryRecord{newer, older}, 2024, time.May, time.Now())
	for _, c := range m.Cells {
		if c.Day == 1 {
			if c.Record == nil || c.Record.TotalSets != 9 {
				t.Error("cell should carry the newest record for the day")
			}
		}
	}
}

// TestDaysIn verifies month lengths including the leap-year February.
func TestDaysIn(t *testing.T) {
	tests := []struct {
		year  int
		month time.Month
		want  int
	}{
		{2024, time.February, 29},
		{2023, time.February, 28},
		{2024, time.April, 30},
		{2024, time.December, 31},
	}
	for _, tt := range tests {
		if got := DaysIn(tt.year, tt.month); got != tt.want {
			t.Errorf("DaysIn(%d, %v) = %d, want %d", tt.year, tt.month, got, tt.want)
		}
	}
}
