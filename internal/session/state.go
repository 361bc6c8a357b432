package session

import (
	"encoding/json"

	"github.com/ibuki-kubota/my-workout-app/internal/models"
)

// State is the serialized form of a session, written to the local mirror
// after every change and read back once at startup.
type State struct {
	Exercises       []models.Exercise `json:"exercises"`
	Fatigue         models.FatigueMap `json:"fatigue"`
	TargetFrequency int               `json:"target_frequency"`
}

// View is the read model handed to HTTP handlers: a deep copy of the session
// plus its derived values, safe to serialize outside the lock.
type View struct {
	Exercises       []models.Exercise `json:"exercises"`
	Fatigue         models.FatigueMap `json:"fatigue"`
	Progress        Progress          `json:"progress"`
	Capture         *Capture          `json:"capture"`
	TargetFrequency int               `json:"targetFrequency"`
}

func copyExercises(src []models.Exercise) []models.Exercise {
	out := make([]models.Exercise, len(src))
	for i, ex := range src {
		ex.Sets = append([]models.Set(nil), ex.Sets...)
		out[i] = ex
	}
	return out
}

// Snapshot returns a consistent copy of the session and its derived values.
func (m *Manager) Snapshot() View {
	m.mu.Lock()
	defer m.mu.Unlock()

	fatigue := make(models.FatigueMap, len(m.fatigue))
	for k, v := range m.fatigue {
		fatigue[k] = v
	}
	v := View{
		Exercises:       copyExercises(m.exercises),
		Fatigue:         fatigue,
		Progress:        m.progressLocked(),
		TargetFrequency: m.targetFrequency,
	}
	if m.capture != nil {
		c := *m.capture
		v.Capture = &c
	}
	return v
}

// Restore replaces the session with previously mirrored state. Malformed or
// implausible data is discarded and the current (default) state kept; the
// mirror is a cache, not a source of truth.
func (m *Manager) Restore(data []byte) bool {
	var st State
	if err := json.Unmarshal(data, &st); err != nil {
		m.log.Warn("discarding corrupt session snapshot", "error", err)
		return false
	}
	if len(st.Exercises) == 0 {
		return false
	}
	for _, ex := range st.Exercises {
		if len(ex.Sets) == 0 {
			m.log.Warn("discarding session snapshot with empty set list", "exercise", ex.Name)
			return false
		}
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.exercises = st.Exercises
	if st.Fatigue != nil {
		m.fatigue = st.Fatigue
	}
	if st.TargetFrequency >= 1 && st.TargetFrequency <= 7 {
		m.targetFrequency = st.TargetFrequency
	}
	return true
}

// persistLocked mirrors the session to local storage. Best-effort: a failed
// save is logged and otherwise ignored.
func (m *Manager) persistLocked() {
	if m.mirror == nil {
		return
	}
	st := State{
		Exercises:       m.exercises,
		Fatigue:         m.fatigue,
		TargetFrequency: m.targetFrequency,
	}
	data, err := json.Marshal(st)
	if err != nil {
		m.log.Warn("marshaling session snapshot", "error", err)
		return
	}
	if err := m.mirror.Save(data); err != nil {
		m.log.Warn("saving session snapshot", "error", err)
	}
}
