package model

import "time"

// User is the single profile record for the app's owner.
type User struct {
	Name   string  `json:"name"`
	Goal   string  `json:"goal"`
	Weight float64 `json:"weight"`
	Height float64 `json:"height"`
	Age    int     `json:"age"`
}

// Exercise is one movement inside a workout. Reps and Duration are
// mutually-descriptive: a rep-based exercise sets Reps, a timed one sets
// Duration (a display string like "45s"). Weight 0 means bodyweight.
type Exercise struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Sets     int     `json:"sets"`
	Reps     int     `json:"reps,omitempty"`
	Duration string  `json:"duration,omitempty"`
	Weight   float64 `json:"weight"`
}

// Workout is a reusable catalog entry the user can perform.
type Workout struct {
	ID         string     `json:"id"`
	Name       string     `json:"name"`
	Category   string     `json:"category"`
	Duration   int        `json:"duration"`
	Difficulty string     `json:"difficulty"`
	Calories   int        `json:"calories"`
	Exercises  []Exercise `json:"exercises"`
}

// CompletedWorkout is an append-only log entry. Name, duration, and
// calories are snapshotted from the workout at completion time so the
// record survives later edits or deletion of the catalog entry.
type CompletedWorkout struct {
	ID          string     `json:"id"`
	WorkoutID   string     `json:"workoutId"`
	WorkoutName string     `json:"workoutName"`
	Date        time.Time  `json:"date"`
	Duration    int        `json:"duration"`
	Calories    int        `json:"calories"`
	Exercises   []Exercise `json:"exercises"`
}

// Meal is a reusable catalog entry with per-serving macros.
type Meal struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Category    string   `json:"category"`
	Calories    int      `json:"calories"`
	Protein     float64  `json:"protein"`
	Carbs       float64  `json:"carbs"`
	Fat         float64  `json:"fat"`
	Ingredients []string `json:"ingredients"`
}

// ConsumedMeal is an append-only log entry. Calories and macros are the
// meal's values scaled by Quantity at consumption time; calories are kept
// as a float so fractional quantities scale exactly.
type ConsumedMeal struct {
	ID       string    `json:"id"`
	MealID   string    `json:"mealId"`
	MealName string    `json:"mealName"`
	Date     time.Time `json:"date"`
	Calories float64   `json:"calories"`
	Protein  float64   `json:"protein"`
	Carbs    float64   `json:"carbs"`
	Fat      float64   `json:"fat"`
	Quantity float64   `json:"quantity"`
}

// Measurement is one recorded value in a body-measurement series.
type Measurement struct {
	ID    string    `json:"id"`
	Value float64   `json:"value"`
	Date  time.Time `json:"date"`
}

// Measurements maps a measurement type to its append-only series.
// Only the keys in MeasurementTypes are valid.
type Measurements map[string][]Measurement

// Measurement type keys.
const (
	MeasurementWeight  = "weight"
	MeasurementBodyFat = "bodyFat"
	MeasurementChest   = "chest"
	MeasurementWaist   = "waist"
	MeasurementHips    = "hips"
	MeasurementArms    = "arms"
	MeasurementThighs  = "thighs"
)

// MeasurementTypes is the fixed set of tracked measurement series.
var MeasurementTypes = []string{
	MeasurementWeight,
	MeasurementBodyFat,
	MeasurementChest,
	MeasurementWaist,
	MeasurementHips,
	MeasurementArms,
	MeasurementThighs,
}

// ValidMeasurementType reports whether t is one of the tracked series.
func ValidMeasurementType(t string) bool {
	for _, known := range MeasurementTypes {
		if known == t {
			return true
		}
	}
	return false
}

// Habit tracks a days-per-week goal over the current week only.
// Completed is indexed Sunday=0 through Saturday=6; there is no history
// past the stored week.
type Habit struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Target    int     `json:"target"`
	Icon      string  `json:"icon,omitempty"`
	Completed [7]bool `json:"completed"`
}

// DaysCompleted counts the checked-off days in the stored week.
func (h Habit) DaysCompleted() int {
	n := 0
	for _, done := range h.Completed {
		if done {
			n++
		}
	}
	return n
}

// DefaultDailyCalories is the calorie target before the user sets one.
const DefaultDailyCalories = 2000
