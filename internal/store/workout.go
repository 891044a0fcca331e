package store

import (
	"time"

	log "github.com/sirupsen/logrus"

	"fittrack/internal/model"
)

// AddWorkout assigns a fresh id to the draft and appends it to the
// catalog. Returns the assigned id.
func (s *Store) AddWorkout(draft model.Workout) string {
	draft.ID = s.nextID()
	s.workouts = append(s.workouts, draft)
	s.notify(KeyWorkouts)
	return draft.ID
}

// UpdateWorkout replaces the catalog entry with a matching id; unknown
// ids are ignored.
func (s *Store) UpdateWorkout(workout model.Workout) {
	for i := range s.workouts {
		if s.workouts[i].ID == workout.ID {
			s.workouts[i] = workout
			s.notify(KeyWorkouts)
			return
		}
	}
	log.Debugf("update workout: id %s not found", workout.ID)
}

// DeleteWorkout removes the catalog entry with the given id. Completed
// log entries referencing it are untouched; history is immutable.
func (s *Store) DeleteWorkout(id string) {
	for i := range s.workouts {
		if s.workouts[i].ID == id {
			s.workouts = append(s.workouts[:i], s.workouts[i+1:]...)
			s.notify(KeyWorkouts)
			return
		}
	}
	log.Debugf("delete workout: id %s not found", id)
}

// WorkoutByID looks up a catalog entry.
func (s *Store) WorkoutByID(id string) (model.Workout, bool) {
	for _, w := range s.workouts {
		if w.ID == id {
			return w, true
		}
	}
	return model.Workout{}, false
}

// CompleteWorkout appends a snapshot of the workout to the completed log.
// A zero date means now. When results is non-empty it is recorded as the
// performed exercises, otherwise the workout's exercise list is copied.
// An unresolved workout id is ignored.
func (s *Store) CompleteWorkout(workoutID string, date time.Time, results []model.Exercise) {
	workout, ok := s.WorkoutByID(workoutID)
	if !ok {
		log.Debugf("complete workout: id %s not found", workoutID)
		return
	}
	if date.IsZero() {
		date = time.Now()
	}
	exercises := results
	if len(exercises) == 0 {
		exercises = make([]model.Exercise, len(workout.Exercises))
		copy(exercises, workout.Exercises)
	}
	s.completed = append(s.completed, model.CompletedWorkout{
		ID:          s.nextID(),
		WorkoutID:   workoutID,
		WorkoutName: workout.Name,
		Date:        date,
		Duration:    workout.Duration,
		Calories:    workout.Calories,
		Exercises:   exercises,
	})
	s.notify(KeyCompletedWorkouts)
}
