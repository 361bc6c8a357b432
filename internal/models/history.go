package models

import "time"

// HistoryItem is one exercise's slice of a finished session. Fatigue is nil
// when the user never rated the exercise.
type HistoryItem struct {
	Name          string `json:"name"`
	TotalSets     int    `json:"totalSets"`
	CompletedSets int    `json:"completedSets"`
	Fatigue       *int   `json:"fatigue"`
}

// HistoryRecord is an immutable snapshot of one finished session, as stored
// in the workout_logs table. Date keeps the legacy locale string
// ("2024/05/01(水)") for display; DayKey ("2024-05-01") is what calendar
// lookups match on.
type HistoryRecord struct {
	ID          int64          `json:"id"`
	CreatedAt   time.Time      `json:"created_at"`
	Date        string         `json:"date"`
	DayKey      string         `json:"day_key"`
	TotalSets   int            `json:"total_sets"`
	Items       []HistoryItem  `json:"items"`
	FatigueData map[string]int `json:"fatigue_data"`
}

// Item returns the history item for an exercise name, or nil.
func (r HistoryRecord) Item(name string) *HistoryItem {
	for i := range r.Items {
		if r.Items[i].Name == name {
			return &r.Items[i]
		}
	}
	return nil
}
