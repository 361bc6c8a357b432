package history

import (
	"sort"
	"time"

	"github.com/ibuki-kubota/my-workout-app/internal/dates"
	"github.com/ibuki-kubota/my-workout-app/internal/models"
)

// Fatigue ratings are plotted against a fixed vertical scale.
const (
	FatigueScaleMin = 1
	FatigueScaleMax = 10
)

// ExerciseNames returns the distinct exercise names seen across all history
// items, sorted lexicographically. An empty result means the chart has
// nothing to show.
func ExerciseNames(records []models.HistoryRecord) []string {
	seen := map[string]bool{}
	var names []string
	for _, rec := range records {
		for _, item := range rec.Items {
			if !seen[item.Name] {
				seen[item.Name] = true
				names = append(names, item.Name)
			}
		}
	}
	sort.Strings(names)
	return names
}

// Cursor selects one exercise name out of the sorted list, with wrapping
// prev/next navigation.
type Cursor struct {
	Names []string
	Index int
}

// NewCursor builds a cursor over the given names, clamping the start index.
func NewCursor(names []string, index int) Cursor {
	if len(names) == 0 {
		return Cursor{}
	}
	return Cursor{Names: names, Index: ((index % len(names)) + len(names)) % len(names)}
}

// Next advances to the following name, wrapping at the end.
func (c *Cursor) Next() {
	if len(c.Names) > 0 {
		c.Index = (c.Index + 1) % len(c.Names)
	}
}

// Prev moves to the preceding name, wrapping at the start.
func (c *Cursor) Prev() {
	if len(c.Names) > 0 {
		c.Index = (c.Index - 1 + len(c.Names)) % len(c.Names)
	}
}

// Selected returns the current name, or "" for an empty cursor.
func (c Cursor) Selected() string {
	if len(c.Names) == 0 {
		return ""
	}
	return c.Names[c.Index]
}

// Sample is one plotted point: the day of month and the fatigue recorded for
// the selected exercise on that day.
type Sample struct {
	Day     int `json:"day"`
	Fatigue int `json:"fatigue"`
}

// Segment is a straight line between two plotted samples.
type Segment struct {
	From Sample `json:"from"`
	To   Sample `json:"to"`
}

// MonthSamples extracts the (day, fatigue) points for one exercise across a
// month. A day yields a sample only when its record has an item for the
// exercise with a recorded fatigue value; every other day stays empty.
func MonthSamples(records []models.HistoryRecord, exercise string, year int, month time.Month) []Sample {
	idx := indexByDay(records)
	var samples []Sample
	for day := 1; day <= DaysIn(year, month); day++ {
		rec, ok := idx[dates.KeyFor(year, month, day)]
		if !ok {
			continue
		}
		item := rec.Item(exercise)
		if item == nil || item.Fatigue == nil {
			continue
		}
		samples = append(samples, Sample{Day: day, Fatigue: *item.Fatigue})
	}
	return samples
}

// Segments connects successive samples with straight lines. Days without a
// sample are skipped over, never interpolated.
func Segments(samples []Sample) []Segment {
	var segs []Segment
	for i := 1; i < len(samples); i++ {
		segs = append(segs, Segment{From: samples[i-1], To: samples[i]})
	}
	return segs
}
