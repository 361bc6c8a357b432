// Package session owns the current workout: the editable exercise list, the
// per-exercise fatigue ratings, and the derived progress numbers. All
// mutations go through Manager, which is safe for concurrent handlers.
package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/ibuki-kubota/my-workout-app/internal/dates"
	"github.com/ibuki-kubota/my-workout-app/internal/models"
)

var (
	ErrExerciseNotFound = errors.New("exercise not found")
	ErrNothingCompleted = errors.New("no completed sets to record")
)

// HistoryStore persists finished sessions. *storage.DB satisfies this.
type HistoryStore interface {
	InsertLog(ctx context.Context, rec models.HistoryRecord) (models.HistoryRecord, error)
}

// Mirror receives a serialized copy of the session after every change.
// Saving is best-effort; failures are logged and never block a mutation.
type Mirror interface {
	Save(data []byte) error
}

const (
	defaultTargetFrequency = 3
	captureDelay           = 500 * time.Millisecond
)

// Manager holds the live session state.
type Manager struct {
	mu              sync.Mutex
	exercises       []models.Exercise
	fatigue         models.FatigueMap
	capture         *Capture
	targetFrequency int

	store  HistoryStore
	mirror Mirror
	log    *slog.Logger

	now       func() time.Time
	afterFunc func(time.Duration, func()) *time.Timer
}

// NewManager creates a manager seeded with the default exercise menu.
func NewManager(store HistoryStore, log *slog.Logger) *Manager {
	return &Manager{
		exercises:       models.DefaultExercises(),
		fatigue:         models.FatigueMap{},
		targetFrequency: defaultTargetFrequency,
		store:           store,
		log:             log,
		now:             time.Now,
		afterFunc:       time.AfterFunc,
	}
}

// SetMirror attaches a best-effort local mirror of the session state.
func (m *Manager) SetMirror(mirror Mirror) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.mirror = mirror
}

func (m *Manager) findLocked(id uuid.UUID) *models.Exercise {
	for i := range m.exercises {
		if m.exercises[i].ID == id {
			return &m.exercises[i]
		}
	}
	return nil
}

// ToggleSet flips the completed flag of one set. When the flip completes the
// exercise for the first time and no fatigue rating exists yet, a fatigue
// capture is scheduled after a short delay so the toggle animation finishes
// before the modal appears.
func (m *Manager) ToggleSet(exerciseID uuid.UUID, setIndex int) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	ex := m.findLocked(exerciseID)
	if ex == nil {
		return ErrExerciseNotFound
	}
	if setIndex < 0 || setIndex >= len(ex.Sets) {
		return nil
	}

	wasAll := ex.AllCompleted()
	ex.Sets[setIndex].Completed = !ex.Sets[setIndex].Completed

	_, rated := m.fatigue[exerciseID]
	if ex.AllCompleted() && !wasAll && !rated {
		m.scheduleCaptureLocked(exerciseID)
	}

	m.persistLocked()
	return nil
}

// EditExercise replaces the name or part of one exercise. Unknown fields are
// ignored without touching state.
func (m *Manager) EditExercise(id uuid.UUID, field, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	ex := m.findLocked(id)
	if ex == nil {
		return ErrExerciseNotFound
	}
	switch field {
	case "name":
		ex.Name = value
	case "part":
		ex.Part = value
	default:
		return nil
	}
	m.persistLocked()
	return nil
}

// BulkSetField rewrites weight or reps uniformly across every set of one
// exercise. The raw value is the legacy string form ("62.5kg", "12回"); an
// unparseable value is ignored without touching state.
func (m *Manager) BulkSetField(id uuid.UUID, field, raw string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	ex := m.findLocked(id)
	if ex == nil {
		return ErrExerciseNotFound
	}

	switch field {
	case "weight":
		v, err := models.ParseMeasure(raw, models.UnitKilogram)
		if err != nil {
			return nil
		}
		for i := range ex.Sets {
			ex.Sets[i].Weight = v
		}
	case "reps":
		v, err := models.ParseMeasure(raw, models.UnitReps)
		if err != nil {
			return nil
		}
		for i := range ex.Sets {
			ex.Sets[i].Reps = v
		}
	default:
		return nil
	}
	m.persistLocked()
	return nil
}

// ResizeSets grows or shrinks an exercise's set list to n. Growing appends
// clones of the last set with fresh ids and completed reset; shrinking
// truncates from the end. Anything below 1 is a no-op, so an exercise never
// loses its last set.
func (m *Manager) ResizeSets(id uuid.UUID, n int) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	ex := m.findLocked(id)
	if ex == nil {
		return ErrExerciseNotFound
	}
	if n < 1 || n == len(ex.Sets) {
		return nil
	}

	if n < len(ex.Sets) {
		ex.Sets = ex.Sets[:n]
	} else {
		template := ex.Sets[len(ex.Sets)-1]
		for len(ex.Sets) < n {
			s := template
			s.ID = uuid.New()
			s.Completed = false
			ex.Sets = append(ex.Sets, s)
		}
	}
	m.persistLocked()
	return nil
}

// AddExercise appends a new exercise with placeholder values and one set.
func (m *Manager) AddExercise() models.Exercise {
	m.mu.Lock()
	defer m.mu.Unlock()

	ex := models.Exercise{
		ID:    uuid.New(),
		Name:  "新規種目",
		Part:  "部位",
		Image: "https://images.unsplash.com/photo-1517836357463-d25dfeac3438?auto=format&fit=crop&w=800&q=80",
		Sets:  []models.Set{models.NewSet(20, 10)},
	}
	m.exercises = append(m.exercises, ex)
	m.persistLocked()
	return ex
}

// RemoveExercise deletes an exercise. Its fatigue entry, if any, stays in the
// map; the id never reappears so the orphan is harmless.
func (m *Manager) RemoveExercise(id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i := range m.exercises {
		if m.exercises[i].ID == id {
			m.exercises = append(m.exercises[:i], m.exercises[i+1:]...)
			if m.capture != nil && m.capture.ExerciseID == id {
				m.capture = nil
			}
			m.persistLocked()
			return nil
		}
	}
	return ErrExerciseNotFound
}

// RecordFatigue stores the rating for one exercise and dismisses a pending
// capture for it.
func (m *Manager) RecordFatigue(id uuid.UUID, value int) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.findLocked(id) == nil {
		return ErrExerciseNotFound
	}
	m.fatigue[id] = value
	if m.capture != nil && m.capture.ExerciseID == id {
		m.capture = nil
	}
	m.persistLocked()
	return nil
}

// FinishWorkout snapshots the session into a history record, persists it, and
// only then resets completion flags and clears the fatigue map. Exercises with
// zero completed sets are dropped from the record. On a storage failure the
// session is left exactly as it was.
func (m *Manager) FinishWorkout(ctx context.Context) (models.HistoryRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var items []models.HistoryItem
	totalSets := 0
	for _, ex := range m.exercises {
		completed := ex.CompletedSets()
		if completed == 0 {
			continue
		}
		item := models.HistoryItem{
			Name:          ex.Name,
			TotalSets:     len(ex.Sets),
			CompletedSets: completed,
		}
		if v, ok := m.fatigue[ex.ID]; ok {
			f := v
			item.Fatigue = &f
		}
		items = append(items, item)
		totalSets += completed
	}
	if len(items) == 0 {
		return models.HistoryRecord{}, ErrNothingCompleted
	}

	fatigueData := make(map[string]int, len(m.fatigue))
	for id, v := range m.fatigue {
		fatigueData[id.String()] = v
	}

	now := m.now()
	rec := models.HistoryRecord{
		Date:        dates.LegacyFormat(now),
		DayKey:      dates.DayKey(now),
		TotalSets:   totalSets,
		Items:       items,
		FatigueData: fatigueData,
	}

	stored, err := m.store.InsertLog(ctx, rec)
	if err != nil {
		return models.HistoryRecord{}, fmt.Errorf("saving workout log: %w", err)
	}

	for i := range m.exercises {
		for j := range m.exercises[i].Sets {
			m.exercises[i].Sets[j].Completed = false
		}
	}
	m.fatigue = models.FatigueMap{}
	m.capture = nil
	m.persistLocked()

	return stored, nil
}

// Progress holds the derived completion aggregates.
type Progress struct {
	TotalSets     int `json:"totalSets"`
	CompletedSets int `json:"completedSets"`
	Percent       int `json:"percent"`
}

func (m *Manager) progressLocked() Progress {
	var p Progress
	for _, ex := range m.exercises {
		p.TotalSets += len(ex.Sets)
		p.CompletedSets += ex.CompletedSets()
	}
	if p.TotalSets > 0 {
		p.Percent = int(float64(p.CompletedSets)/float64(p.TotalSets)*100 + 0.5)
	}
	return p
}

// Progress recomputes the completion aggregates.
func (m *Manager) Progress() Progress {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.progressLocked()
}

// TargetFrequency returns the weekly goal (sessions per week).
func (m *Manager) TargetFrequency() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.targetFrequency
}

// SetTargetFrequency sets the weekly goal, clamped to 1..7.
func (m *Manager) SetTargetFrequency(n int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if n < 1 {
		n = 1
	}
	if n > 7 {
		n = 7
	}
	m.targetFrequency = n
	m.persistLocked()
}
