package session

import "github.com/google/uuid"

// Capture is a pending fatigue-rating prompt for exactly one exercise.
// At most one exists at a time; a later completion never replaces an
// already-pending one.
type Capture struct {
	ExerciseID   uuid.UUID `json:"exerciseId"`
	ExerciseName string    `json:"exerciseName"`
	DefaultValue int       `json:"defaultValue"`
}

// scheduleCaptureLocked arms the deferred capture for an exercise. The checks
// re-run when the timer fires: the exercise may have been removed, rated, or
// un-completed in the meantime.
func (m *Manager) scheduleCaptureLocked(id uuid.UUID) {
	m.afterFunc(captureDelay, func() {
		m.mu.Lock()
		defer m.mu.Unlock()

		if m.capture != nil {
			return
		}
		if _, rated := m.fatigue[id]; rated {
			return
		}
		ex := m.findLocked(id)
		if ex == nil || !ex.AllCompleted() {
			return
		}
		m.capture = &Capture{
			ExerciseID:   id,
			ExerciseName: ex.Name,
			DefaultValue: 5,
		}
	})
}

// PendingCapture returns the capture waiting for user input, or nil.
func (m *Manager) PendingCapture() *Capture {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.capture == nil {
		return nil
	}
	c := *m.capture
	return &c
}

// CancelCapture discards the pending capture without recording anything.
func (m *Manager) CancelCapture() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.capture = nil
}
