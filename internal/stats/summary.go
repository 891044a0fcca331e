package stats

import (
	"time"

	"fittrack/internal/model"
)

// WeekSummary aggregates completed workouts since the start of the
// current calendar week.
type WeekSummary struct {
	Workouts       int `json:"workouts"`
	CaloriesBurned int `json:"calories_burned"`
}

// WeeklyWorkoutSummary counts workouts and burned calories since the most
// recent Sunday 00:00 local relative to ref. An entry dated exactly at the
// week-start boundary is included.
func WeeklyWorkoutSummary(completed []model.CompletedWorkout, ref time.Time) WeekSummary {
	weekStart := beginningOfDay(ref).AddDate(0, 0, -int(ref.Weekday()))
	var out WeekSummary
	for _, c := range completed {
		if !c.Date.Before(weekStart) {
			out.Workouts++
			out.CaloriesBurned += c.Calories
		}
	}
	return out
}

// NutritionSummary aggregates consumed meals for a single calendar day.
type NutritionSummary struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
}

// DailyNutritionSummary sums calories and macros over the consumed meals
// whose date falls on the same calendar day as ref. All fields are zero
// when nothing matches.
func DailyNutritionSummary(consumed []model.ConsumedMeal, ref time.Time) NutritionSummary {
	var out NutritionSummary
	for _, m := range consumed {
		if sameDay(m.Date, ref) {
			out.Calories += m.Calories
			out.Protein += m.Protein
			out.Carbs += m.Carbs
			out.Fat += m.Fat
		}
	}
	return out
}

// RemainingCalories is the daily target minus what was consumed today.
// The result may be negative; flagging an overshoot is left to the caller.
func RemainingCalories(target int, consumed float64) float64 {
	return float64(target) - consumed
}

// PeriodTotals aggregates completed workouts over a period window.
type PeriodTotals struct {
	Workouts    int `json:"workouts"`
	DurationMin int `json:"duration_min"`
	Calories    int `json:"calories"`
}

// PeriodSummary totals the completed workouts inside the period's filter
// window: the last 7 days for week, the last 28 days for month, and the
// last 6 months for sixMonths, each anchored at the start of its first day.
func PeriodSummary(completed []model.CompletedWorkout, period Period, ref time.Time) PeriodTotals {
	var from time.Time
	switch period {
	case PeriodMonth:
		from = beginningOfDay(ref.AddDate(0, 0, -28))
	case PeriodSixMonths:
		from = beginningOfDay(ref.AddDate(0, -6, 0))
	default:
		from = beginningOfDay(ref.AddDate(0, 0, -6))
	}
	var out PeriodTotals
	for _, c := range completed {
		if !c.Date.Before(from) {
			out.Workouts++
			out.DurationMin += c.Duration
			out.Calories += c.Calories
		}
	}
	return out
}
