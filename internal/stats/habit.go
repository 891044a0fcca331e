package stats

import (
	"math"

	"fittrack/internal/model"
)

// HabitDayCompletionRate is a habit's checked-off days against its weekly
// target, as a rounded percentage. The rate can exceed 100 when more days
// are checked than the target asks for; it is deliberately not clamped.
func HabitDayCompletionRate(h model.Habit) int {
	return int(math.Round(float64(h.DaysCompleted()) / float64(h.Target) * 100))
}

// HabitCompletionRate averages the per-habit completion ratios across all
// habits, as a rounded percentage. Returns 0 for an empty habit list.
func HabitCompletionRate(habits []model.Habit) int {
	if len(habits) == 0 {
		return 0
	}
	total := 0.0
	for _, h := range habits {
		total += float64(h.DaysCompleted()) / float64(h.Target)
	}
	return int(math.Round(total / float64(len(habits)) * 100))
}
