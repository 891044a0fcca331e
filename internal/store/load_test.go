package store_test

import (
	"encoding/json"
	"testing"

	"fittrack/internal/model"
	"fittrack/internal/stats"
	"fittrack/internal/store"
)

// mapLoader serves stored values from a map of raw JSON documents.
type mapLoader map[string]string

func (m mapLoader) LoadJSON(key string, dst any) (bool, error) {
	raw, ok := m[key]
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal([]byte(raw), dst); err != nil {
		return false, err
	}
	return true, nil
}

func TestLoadFromReplacesPresentKeys(t *testing.T) {
	t.Parallel()
	st := store.New()
	st.LoadFrom(mapLoader{
		store.KeyWorkouts:      `[{"id":"w1","name":"Rowing","category":"cardio","duration":25,"difficulty":"beginner","calories":220,"exercises":[]}]`,
		store.KeyDailyCalories: `1800`,
		store.KeyUser:          `{"name":"Sam","goal":"Lose Weight","weight":82.5,"height":175,"age":31}`,
	})

	workouts := st.Workouts()
	if len(workouts) != 1 || workouts[0].Name != "Rowing" {
		t.Fatalf("expected stored catalog to replace seeds, got %+v", workouts)
	}
	if st.DailyCalories() != 1800 {
		t.Fatalf("expected stored target 1800, got %d", st.DailyCalories())
	}
	if user := st.User(); user.Name != "Sam" || user.Weight != 82.5 {
		t.Fatalf("expected stored profile, got %+v", user)
	}
}

func TestLoadFromKeepsSeedsForAbsentKeys(t *testing.T) {
	t.Parallel()
	st := store.New()
	st.LoadFrom(mapLoader{})

	if got := len(st.Meals()); got != 3 {
		t.Fatalf("expected seed meals kept, got %d", got)
	}
	if got := len(st.Habits()); got != 3 {
		t.Fatalf("expected seed habits kept, got %d", got)
	}
	if user := st.User(); user.Name != "Alex" {
		t.Fatalf("expected seed profile kept, got %+v", user)
	}
}

func TestLoadFromSkipsCorruptKeys(t *testing.T) {
	t.Parallel()
	st := store.New()
	st.LoadFrom(mapLoader{
		store.KeyMeals:         `{not json`,
		store.KeyDailyCalories: `2100`,
	})

	if got := len(st.Meals()); got != 3 {
		t.Fatalf("expected corrupt key to leave seeds in place, got %d meals", got)
	}
	if st.DailyCalories() != 2100 {
		t.Fatalf("expected later keys still loaded, got %d", st.DailyCalories())
	}
}

func TestLoadFromFloorsHabitTargets(t *testing.T) {
	t.Parallel()
	st := store.New()
	st.LoadFrom(mapLoader{
		store.KeyHabits: `[{"id":"h1","name":"Stretch","target":0,"completed":[true,false,false,false,false,false,false]}]`,
	})

	habits := st.Habits()
	if len(habits) != 1 {
		t.Fatalf("expected 1 habit, got %d", len(habits))
	}
	if habits[0].Target != 1 {
		t.Fatalf("expected target floored to 1, got %d", habits[0].Target)
	}
	if rate := stats.HabitDayCompletionRate(habits[0]); rate != 100 {
		t.Fatalf("expected a defined day completion rate of 100, got %d", rate)
	}
	if rate := stats.HabitCompletionRate(habits); rate != 100 {
		t.Fatalf("expected a defined overall rate of 100, got %d", rate)
	}
}

func TestLoadFromNormalizesMeasurementKeySet(t *testing.T) {
	t.Parallel()
	st := store.New()
	st.LoadFrom(mapLoader{
		store.KeyMeasurements: `{"weight":[{"id":"m1","value":80,"date":"2025-06-01T08:00:00Z"}],"shoesize":[{"id":"m2","value":44,"date":"2025-06-01T08:00:00Z"}]}`,
	})

	if got := len(st.MeasurementSeries(model.MeasurementWeight)); got != 1 {
		t.Fatalf("expected stored weight series, got %d entries", got)
	}
	if series := st.MeasurementSeries("shoesize"); series != nil {
		t.Fatalf("expected unknown series dropped, got %v", series)
	}
	for _, typ := range model.MeasurementTypes {
		if st.MeasurementSeries(typ) == nil {
			t.Fatalf("expected %s series present after load", typ)
		}
	}
}
