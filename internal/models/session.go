package models

import "github.com/google/uuid"

// Set is one unit of work within an exercise.
type Set struct {
	ID        uuid.UUID `json:"id"`
	Weight    Measure   `json:"weight"`
	Reps      Measure   `json:"reps"`
	Completed bool      `json:"completed"`
}

// Exercise is a named movement with a target body part and an ordered list
// of sets. An exercise always has at least one set.
type Exercise struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Part  string    `json:"part"`
	Image string    `json:"image,omitempty"`
	Sets  []Set     `json:"sets"`
}

// CompletedSets counts the sets marked done.
func (e Exercise) CompletedSets() int {
	n := 0
	for _, s := range e.Sets {
		if s.Completed {
			n++
		}
	}
	return n
}

// AllCompleted reports whether every set is done. An exercise with no sets
// is never considered complete.
func (e Exercise) AllCompleted() bool {
	if len(e.Sets) == 0 {
		return false
	}
	return e.CompletedSets() == len(e.Sets)
}

// FatigueMap holds per-exercise self-reported fatigue ratings (1-10).
type FatigueMap map[uuid.UUID]int

// NewSet builds a set with a fresh id.
func NewSet(weightKg, reps float64) Set {
	return Set{
		ID:     uuid.New(),
		Weight: Measure{Value: weightKg, Unit: UnitKilogram},
		Reps:   Measure{Value: reps, Unit: UnitReps},
	}
}

func seedExercise(name, part, image string, weightKg float64) Exercise {
	e := Exercise{ID: uuid.New(), Name: name, Part: part, Image: image}
	for i := 0; i < 3; i++ {
		e.Sets = append(e.Sets, NewSet(weightKg, 10))
	}
	return e
}

// DefaultExercises returns the seed menu used when no saved session exists.
func DefaultExercises() []Exercise {
	return []Exercise{
		seedExercise("チェストプレス", "胸", "https://images.unsplash.com/photo-1571019614242-c5c5dee9f50b?auto=format&fit=crop&w=800&q=80", 60),
		seedExercise("リアデルト", "肩 / 背中", "https://images.unsplash.com/photo-1605296867304-46d5465a13f1?auto=format&fit=crop&w=800&q=80", 25),
		seedExercise("ラットプルダウン", "背中", "https://images.unsplash.com/photo-1598289431512-b97b0917affc?auto=format&fit=crop&w=800&q=80", 50),
		seedExercise("ショルダープレス", "肩", "https://images.unsplash.com/photo-1581009146145-b5ef050c2e1e?auto=format&fit=crop&w=800&q=80", 40),
		seedExercise("インクラインDBカール", "上腕二頭筋", "https://images.unsplash.com/photo-1583454110551-21f2fa2afe61?auto=format&fit=crop&w=800&q=80", 8),
		seedExercise("ライイングトライセプスExt", "上腕三頭筋", "https://images.unsplash.com/photo-1534438327276-14e5300c3a48?auto=format&fit=crop&w=800&q=80", 1.25),
		seedExercise("ロータリートーソ", "体幹", "https://images.unsplash.com/photo-1517836357463-d25dfeac3438?auto=format&fit=crop&w=800&q=80", 30),
		seedExercise("レッグプレス", "脚", "https://images.unsplash.com/photo-1574680096145-d05b474e2155?auto=format&fit=crop&w=800&q=80", 79),
		seedExercise("腹筋", "腹筋", "https://images.unsplash.com/photo-1554344728-77cf90d9ed26?auto=format&fit=crop&w=800&q=80", 5),
	}
}
