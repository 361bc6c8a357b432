// Package history derives the calendar and trend views from stored workout
// logs. Everything here is pure computation over the cached result set.
package history

import (
	"time"

	"github.com/ibuki-kubota/my-workout-app/internal/dates"
	"github.com/ibuki-kubota/my-workout-app/internal/models"
)

// DayCell is one cell of the month grid. Day is 0 for the leading blanks
// before the 1st.
type DayCell struct {
	Day     int                   `json:"day"`
	Done    bool                  `json:"done"`
	IsToday bool                  `json:"isToday"`
	Record  *models.HistoryRecord `json:"record,omitempty"`
}

// Month is the derived calendar for one month.
type Month struct {
	Year  int       `json:"year"`
	Month int       `json:"month"`
	Cells []DayCell `json:"cells"`
}

// DaysIn returns the number of days in a month.
func DaysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// indexByDay maps day keys to records. The input is newest-first, and the
// first record for a day wins, so a day with two sessions shows the newest.
func indexByDay(records []models.HistoryRecord) map[string]*models.HistoryRecord {
	idx := make(map[string]*models.HistoryRecord, len(records))
	for i := range records {
		key := records[i].DayKey
		if key == "" {
			// Record predates day keys; derive one from the legacy string.
			t, err := dates.ParseLegacy(records[i].Date)
			if err != nil {
				continue
			}
			key = dates.DayKey(t)
		}
		if _, ok := idx[key]; !ok {
			idx[key] = &records[i]
		}
	}
	return idx
}

// Calendar derives the month grid: leading blanks for the weekdays before the
// 1st, then one cell per day. A day is done exactly when a record's day key
// matches it; today is flagged independently of completion.
func Calendar(records []models.HistoryRecord, year int, month time.Month, today time.Time) Month {
	idx := indexByDay(records)
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	todayKey := dates.DayKey(today)

	m := Month{Year: year, Month: int(month)}
	for i := 0; i < int(first.Weekday()); i++ {
		m.Cells = append(m.Cells, DayCell{})
	}
	for day := 1; day <= DaysIn(year, month); day++ {
		key := dates.KeyFor(year, month, day)
		cell := DayCell{
			Day:     day,
			IsToday: key == todayKey,
		}
		if rec, ok := idx[key]; ok {
			cell.Done = true
			cell.Record = rec
		}
		m.Cells = append(m.Cells, cell)
	}
	return m
}
