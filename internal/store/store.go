// Package store is the single source of truth for all tracked
// collections. Mutators are synchronous and never perform I/O; every
// mutation notifies the registered change hook with the storage key and a
// snapshot of the affected collection, so persistence stays outside.
package store

import (
	"strconv"
	"time"

	log "github.com/sirupsen/logrus"

	"fittrack/internal/model"
)

// Storage keys, one per top-level collection.
const (
	KeyWorkouts          = "workouts"
	KeyCompletedWorkouts = "completedWorkouts"
	KeyMeals             = "meals"
	KeyConsumedMeals     = "consumedMeals"
	KeyMeasurements      = "measurements"
	KeyHabits            = "habits"
	KeyUser              = "user"
	KeyDailyCalories     = "dailyCalories"
)

// Keys lists every storage key the store persists under.
var Keys = []string{
	KeyWorkouts,
	KeyCompletedWorkouts,
	KeyMeals,
	KeyConsumedMeals,
	KeyMeasurements,
	KeyHabits,
	KeyUser,
	KeyDailyCalories,
}

// ChangeFunc receives the storage key of a mutated collection and a
// snapshot of its new value.
type ChangeFunc func(key string, value any)

// Store owns the canonical in-memory state.
type Store struct {
	workouts     []model.Workout
	completed    []model.CompletedWorkout
	meals        []model.Meal
	consumed     []model.ConsumedMeal
	measurements model.Measurements
	habits       []model.Habit
	user         model.User
	dailyKcal    int

	lastID   int64
	onChange ChangeFunc
}

// New returns a store populated with the built-in seed data.
func New() *Store {
	return &Store{
		workouts:     seedWorkouts(),
		completed:    []model.CompletedWorkout{},
		meals:        seedMeals(),
		consumed:     []model.ConsumedMeal{},
		measurements: emptyMeasurements(),
		habits:       seedHabits(),
		user:         seedUser(),
		dailyKcal:    model.DefaultDailyCalories,
	}
}

// OnChange registers the persistence hook. Passing nil disables
// notifications.
func (s *Store) OnChange(fn ChangeFunc) {
	s.onChange = fn
}

func (s *Store) notify(key string) {
	if s.onChange == nil {
		return
	}
	switch key {
	case KeyWorkouts:
		s.onChange(key, s.Workouts())
	case KeyCompletedWorkouts:
		s.onChange(key, s.CompletedWorkouts())
	case KeyMeals:
		s.onChange(key, s.Meals())
	case KeyConsumedMeals:
		s.onChange(key, s.ConsumedMeals())
	case KeyMeasurements:
		s.onChange(key, s.Measurements())
	case KeyHabits:
		s.onChange(key, s.Habits())
	case KeyUser:
		s.onChange(key, s.User())
	case KeyDailyCalories:
		s.onChange(key, s.DailyCalories())
	}
}

// nextID assigns a session-unique id: the millisecond clock with a
// monotonic bump so back-to-back mutations never collide.
func (s *Store) nextID() string {
	id := time.Now().UnixMilli()
	if id <= s.lastID {
		id = s.lastID + 1
	}
	s.lastID = id
	return strconv.FormatInt(id, 10)
}

// Workouts returns a copy of the workout catalog.
func (s *Store) Workouts() []model.Workout {
	out := make([]model.Workout, len(s.workouts))
	copy(out, s.workouts)
	return out
}

// CompletedWorkouts returns a copy of the completed-workout log.
func (s *Store) CompletedWorkouts() []model.CompletedWorkout {
	out := make([]model.CompletedWorkout, len(s.completed))
	copy(out, s.completed)
	return out
}

// Meals returns a copy of the meal catalog.
func (s *Store) Meals() []model.Meal {
	out := make([]model.Meal, len(s.meals))
	copy(out, s.meals)
	return out
}

// ConsumedMeals returns a copy of the consumed-meal log.
func (s *Store) ConsumedMeals() []model.ConsumedMeal {
	out := make([]model.ConsumedMeal, len(s.consumed))
	copy(out, s.consumed)
	return out
}

// Measurements returns a copy of all measurement series.
func (s *Store) Measurements() model.Measurements {
	out := make(model.Measurements, len(s.measurements))
	for k, series := range s.measurements {
		cp := make([]model.Measurement, len(series))
		copy(cp, series)
		out[k] = cp
	}
	return out
}

// MeasurementSeries returns a copy of one measurement series; nil for an
// unknown type.
func (s *Store) MeasurementSeries(typ string) []model.Measurement {
	series, ok := s.measurements[typ]
	if !ok {
		return nil
	}
	out := make([]model.Measurement, len(series))
	copy(out, series)
	return out
}

// Habits returns a copy of the habit list.
func (s *Store) Habits() []model.Habit {
	out := make([]model.Habit, len(s.habits))
	copy(out, s.habits)
	return out
}

// User returns the profile record.
func (s *Store) User() model.User {
	return s.user
}

// DailyCalories returns the daily calorie target.
func (s *Store) DailyCalories() int {
	return s.dailyKcal
}

// Loader is the read half of the persistence bridge contract.
type Loader interface {
	LoadJSON(key string, dst any) (bool, error)
}

// LoadFrom replaces collections with whatever the bridge holds. Keys that
// are absent keep their seed defaults; a key that fails to load is logged
// and skipped, leaving its default in place.
func (s *Store) LoadFrom(l Loader) {
	load := func(key string, dst any) bool {
		found, err := l.LoadJSON(key, dst)
		if err != nil {
			log.Warnf("load %s: %v", key, err)
			return false
		}
		return found
	}

	var workouts []model.Workout
	if load(KeyWorkouts, &workouts) {
		s.workouts = workouts
	}
	var completed []model.CompletedWorkout
	if load(KeyCompletedWorkouts, &completed) {
		s.completed = completed
	}
	var meals []model.Meal
	if load(KeyMeals, &meals) {
		s.meals = meals
	}
	var consumed []model.ConsumedMeal
	if load(KeyConsumedMeals, &consumed) {
		s.consumed = consumed
	}
	var measurements model.Measurements
	if load(KeyMeasurements, &measurements) && measurements != nil {
		s.measurements = normalizeMeasurements(measurements)
	}
	var habits []model.Habit
	if load(KeyHabits, &habits) {
		s.habits = sanitizeHabits(habits)
	}
	var user model.User
	if load(KeyUser, &user) {
		s.user = user
	}
	var daily int
	if load(KeyDailyCalories, &daily) {
		s.dailyKcal = daily
	}
}

// normalizeMeasurements clamps externally-sourced data to the fixed key
// set: unknown series are dropped, missing ones come back empty.
func normalizeMeasurements(in model.Measurements) model.Measurements {
	out := emptyMeasurements()
	for _, typ := range model.MeasurementTypes {
		if series, ok := in[typ]; ok && series != nil {
			out[typ] = series
		}
	}
	return out
}

// sanitizeHabits enforces the target floor on habits that arrive from
// outside the mutators (stored blobs, imported state).
func sanitizeHabits(habits []model.Habit) []model.Habit {
	for i := range habits {
		if habits[i].Target < 1 {
			log.Debugf("load habit %s: target %d raised to 1", habits[i].ID, habits[i].Target)
			habits[i].Target = 1
		}
	}
	return habits
}
