package stats

import (
	"strings"

	"fittrack/internal/model"
)

// FilterWorkouts narrows the workout catalog by category and a
// case-insensitive search over workout and exercise names. An empty or
// "all" category matches everything; an empty query matches everything.
func FilterWorkouts(workouts []model.Workout, category, query string) []model.Workout {
	out := make([]model.Workout, 0, len(workouts))
	q := strings.ToLower(strings.TrimSpace(query))
	for _, w := range workouts {
		if !categoryMatches(w.Category, category) {
			continue
		}
		if q != "" && !workoutMatchesQuery(w, q) {
			continue
		}
		out = append(out, w)
	}
	return out
}

func workoutMatchesQuery(w model.Workout, q string) bool {
	if strings.Contains(strings.ToLower(w.Name), q) {
		return true
	}
	for _, e := range w.Exercises {
		if strings.Contains(strings.ToLower(e.Name), q) {
			return true
		}
	}
	return false
}

// FilterMealsByCategory narrows the meal catalog by category; empty or
// "all" matches everything.
func FilterMealsByCategory(meals []model.Meal, category string) []model.Meal {
	out := make([]model.Meal, 0, len(meals))
	for _, m := range meals {
		if categoryMatches(m.Category, category) {
			out = append(out, m)
		}
	}
	return out
}

// SuggestedWorkouts returns the first n catalog entries.
func SuggestedWorkouts(workouts []model.Workout, n int) []model.Workout {
	if n < 0 {
		n = 0
	}
	if n > len(workouts) {
		n = len(workouts)
	}
	return workouts[:n]
}

func categoryMatches(have, want string) bool {
	want = strings.ToLower(strings.TrimSpace(want))
	return want == "" || want == "all" || strings.ToLower(have) == want
}
