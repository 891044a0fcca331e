package store

import (
	log "github.com/sirupsen/logrus"

	"fittrack/internal/model"
)

// AddHabit assigns a fresh id and appends the habit with an all-false
// completion week, regardless of any completion data in the draft.
// Targets below 1 are raised to 1 so completion rates stay defined.
// Returns the assigned id.
func (s *Store) AddHabit(draft model.Habit) string {
	draft.ID = s.nextID()
	draft.Completed = [7]bool{}
	if draft.Target < 1 {
		log.Debugf("add habit: target %d raised to 1", draft.Target)
		draft.Target = 1
	}
	s.habits = append(s.habits, draft)
	s.notify(KeyHabits)
	return draft.ID
}

// UpdateHabit sets a single day of a habit's completion week. Unknown ids
// and out-of-range day indexes are ignored.
func (s *Store) UpdateHabit(habitID string, dayIndex int, completed bool) {
	if dayIndex < 0 || dayIndex > 6 {
		log.Debugf("update habit: day index %d out of range", dayIndex)
		return
	}
	for i := range s.habits {
		if s.habits[i].ID == habitID {
			s.habits[i].Completed[dayIndex] = completed
			s.notify(KeyHabits)
			return
		}
	}
	log.Debugf("update habit: id %s not found", habitID)
}

// UpdateHabitDetails edits a habit's name, target, and icon in place,
// preserving the current week's check-ins. Targets below 1 are raised to
// 1; unknown ids are ignored.
func (s *Store) UpdateHabitDetails(habitID, name string, target int, icon string) {
	if target < 1 {
		log.Debugf("update habit details: target %d raised to 1", target)
		target = 1
	}
	for i := range s.habits {
		if s.habits[i].ID == habitID {
			s.habits[i].Name = name
			s.habits[i].Target = target
			s.habits[i].Icon = icon
			s.notify(KeyHabits)
			return
		}
	}
	log.Debugf("update habit details: id %s not found", habitID)
}

// DeleteHabit removes the habit with the given id.
func (s *Store) DeleteHabit(id string) {
	for i := range s.habits {
		if s.habits[i].ID == id {
			s.habits = append(s.habits[:i], s.habits[i+1:]...)
			s.notify(KeyHabits)
			return
		}
	}
	log.Debugf("delete habit: id %s not found", id)
}

// HabitByID looks up a habit.
func (s *Store) HabitByID(id string) (model.Habit, bool) {
	for _, h := range s.habits {
		if h.ID == id {
			return h, true
		}
	}
	return model.Habit{}, false
}
