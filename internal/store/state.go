package store

import "fittrack/internal/model"

// State is the whole persisted state as one document, used for
// backup/restore.
type State struct {
	Workouts          []model.Workout          `json:"workouts"`
	CompletedWorkouts []model.CompletedWorkout `json:"completedWorkouts"`
	Meals             []model.Meal             `json:"meals"`
	ConsumedMeals     []model.ConsumedMeal     `json:"consumedMeals"`
	Measurements      model.Measurements       `json:"measurements"`
	Habits            []model.Habit            `json:"habits"`
	User              model.User               `json:"user"`
	DailyCalories     int                      `json:"dailyCalories"`
}

// Snapshot copies the full store state.
func (s *Store) Snapshot() State {
	return State{
		Workouts:          s.Workouts(),
		CompletedWorkouts: s.CompletedWorkouts(),
		Meals:             s.Meals(),
		ConsumedMeals:     s.ConsumedMeals(),
		Measurements:      s.Measurements(),
		Habits:            s.Habits(),
		User:              s.User(),
		DailyCalories:     s.DailyCalories(),
	}
}

// Restore replaces the full store state and notifies every collection so
// the persistence hook rewrites all keys. Imported data is held to the
// same invariants as loaded data: the fixed measurement key set and the
// habit target floor.
func (s *Store) Restore(state State) {
	s.workouts = state.Workouts
	s.completed = state.CompletedWorkouts
	s.meals = state.Meals
	s.consumed = state.ConsumedMeals
	s.measurements = normalizeMeasurements(state.Measurements)
	s.habits = sanitizeHabits(state.Habits)
	s.user = state.User
	s.dailyKcal = state.DailyCalories
	for _, key := range Keys {
		s.notify(key)
	}
}
