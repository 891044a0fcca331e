package stats_test

import (
	"reflect"
	"testing"
	"time"

	"fittrack/internal/model"
	"fittrack/internal/stats"
)

func TestWeekSeriesLabelsEndAtReferenceDay(t *testing.T) {
	t.Parallel()
	series := stats.WorkoutCountSeries(nil, stats.PeriodWeek, wednesday)
	want := []string{"Thu", "Fri", "Sat", "Sun", "Mon", "Tue", "Wed"}
	if !reflect.DeepEqual(series.Labels, want) {
		t.Fatalf("expected labels %v, got %v", want, series.Labels)
	}
	if len(series.Values) != 7 {
		t.Fatalf("expected 7 values, got %d", len(series.Values))
	}
}

func TestWorkoutCountSeriesWeekBucketsByCalendarDay(t *testing.T) {
	t.Parallel()
	completed := []model.CompletedWorkout{
		completedOn(time.Date(2025, 6, 11, 7, 0, 0, 0, time.Local), 200, 20),
		completedOn(time.Date(2025, 6, 11, 19, 0, 0, 0, time.Local), 200, 20),
		completedOn(time.Date(2025, 6, 8, 12, 0, 0, 0, time.Local), 300, 30),
		completedOn(time.Date(2025, 6, 4, 12, 0, 0, 0, time.Local), 300, 30), // outside the 7 days
	}

	series := stats.WorkoutCountSeries(completed, stats.PeriodWeek, wednesday)
	want := []float64{0, 0, 0, 1, 0, 0, 2}
	if !reflect.DeepEqual(series.Values, want) {
		t.Fatalf("expected values %v, got %v", want, series.Values)
	}
}

func TestCaloriesConsumedSeriesMonthBuckets(t *testing.T) {
	t.Parallel()
	ref := time.Date(2025, 6, 28, 10, 0, 0, 0, time.Local)
	consumed := []model.ConsumedMeal{
		{Date: time.Date(2025, 6, 8, 9, 0, 0, 0, time.Local), Calories: 450},  // week 1 [Jun 7, Jun 14)
		{Date: time.Date(2025, 6, 14, 9, 0, 0, 0, time.Local), Calories: 380}, // week 2 [Jun 14, Jun 21)
		{Date: time.Date(2025, 6, 28, 9, 0, 0, 0, time.Local), Calories: 250}, // week 4
		{Date: time.Date(2025, 6, 1, 9, 0, 0, 0, time.Local), Calories: 999},  // before the window
	}

	series := stats.CaloriesConsumedSeries(consumed, stats.PeriodMonth, ref)
	wantLabels := []string{"Week 1", "Week 2", "Week 3", "Week 4"}
	if !reflect.DeepEqual(series.Labels, wantLabels) {
		t.Fatalf("expected labels %v, got %v", wantLabels, series.Labels)
	}
	wantValues := []float64{450, 380, 0, 250}
	if !reflect.DeepEqual(series.Values, wantValues) {
		t.Fatalf("expected values %v, got %v", wantValues, series.Values)
	}
}

func TestSixMonthSeriesLabels(t *testing.T) {
	t.Parallel()
	ref := time.Date(2025, 6, 15, 0, 0, 0, 0, time.Local)
	series := stats.WorkoutCountSeries(nil, stats.PeriodSixMonths, ref)
	want := []string{"Jan", "Feb", "Mar", "Apr", "May", "Jun"}
	if !reflect.DeepEqual(series.Labels, want) {
		t.Fatalf("expected labels %v, got %v", want, series.Labels)
	}
}

func TestWorkoutCountSeriesSixMonthsBucketsByCalendarMonth(t *testing.T) {
	t.Parallel()
	ref := time.Date(2025, 6, 15, 0, 0, 0, 0, time.Local)
	completed := []model.CompletedWorkout{
		completedOn(time.Date(2025, 1, 2, 12, 0, 0, 0, time.Local), 100, 10),
		completedOn(time.Date(2025, 1, 30, 12, 0, 0, 0, time.Local), 100, 10),
		completedOn(time.Date(2025, 6, 1, 12, 0, 0, 0, time.Local), 100, 10),
		completedOn(time.Date(2024, 12, 31, 12, 0, 0, 0, time.Local), 100, 10), // previous year
	}

	series := stats.WorkoutCountSeries(completed, stats.PeriodSixMonths, ref)
	want := []float64{2, 0, 0, 0, 0, 1}
	if !reflect.DeepEqual(series.Values, want) {
		t.Fatalf("expected values %v, got %v", want, series.Values)
	}
}

func TestWeightSeriesEmptyFillsZeros(t *testing.T) {
	t.Parallel()
	series := stats.WeightSeries(nil, stats.PeriodWeek, wednesday)
	if len(series.Labels) != 7 || len(series.Values) != 7 {
		t.Fatalf("expected 7 buckets, got %d labels / %d values", len(series.Labels), len(series.Values))
	}
	for i, v := range series.Values {
		if v != 0 {
			t.Fatalf("expected zero fill at %d, got %.1f", i, v)
		}
	}
}

func TestWeightSeriesNearestNeighborFill(t *testing.T) {
	t.Parallel()
	weight := []model.Measurement{
		{ID: "m1", Value: 80, Date: time.Date(2025, 6, 5, 8, 0, 0, 0, time.Local)},
		{ID: "m2", Value: 78.5, Date: time.Date(2025, 6, 11, 8, 0, 0, 0, time.Local)},
	}

	series := stats.WeightSeries(weight, stats.PeriodWeek, wednesday)
	// Thu Jun 5 through Sat Jun 7 sit closer to m1; Sun Jun 8 onward to m2.
	want := []float64{80, 80, 80, 78.5, 78.5, 78.5, 78.5}
	if !reflect.DeepEqual(series.Values, want) {
		t.Fatalf("expected values %v, got %v", want, series.Values)
	}
}

func TestWeightSeriesTieGoesToEarliestRecorded(t *testing.T) {
	t.Parallel()
	// Both measurements are exactly 12h from the bucket date's timestamp.
	ref := time.Date(2025, 6, 11, 12, 0, 0, 0, time.Local)
	weight := []model.Measurement{
		{ID: "m1", Value: 81, Date: time.Date(2025, 6, 11, 0, 0, 0, 0, time.Local)},
		{ID: "m2", Value: 79, Date: time.Date(2025, 6, 12, 0, 0, 0, 0, time.Local)},
	}

	series := stats.WeightSeries(weight, stats.PeriodWeek, ref)
	if got := series.Values[6]; got != 81 {
		t.Fatalf("expected tie to keep first recorded value 81, got %.1f", got)
	}
}

func TestSeriesForPeriodDispatch(t *testing.T) {
	t.Parallel()
	src := stats.SeriesSource{
		ConsumedMeals: []model.ConsumedMeal{
			{Date: wednesday, Calories: 500},
		},
	}
	series := stats.SeriesForPeriod(stats.MetricCaloriesConsumed, stats.PeriodWeek, wednesday, src)
	if series.Values[6] != 500 {
		t.Fatalf("expected today's bucket to hold 500, got %.1f", series.Values[6])
	}
}

func TestParseMetric(t *testing.T) {
	t.Parallel()
	for in, want := range map[string]stats.Metric{
		"workouts":  stats.MetricWorkoutCount,
		"nutrition": stats.MetricCaloriesConsumed,
		"weight":    stats.MetricWeightClosestMatch,
	} {
		got, err := stats.ParseMetric(in)
		if err != nil {
			t.Fatalf("parse %q: %v", in, err)
		}
		if got != want {
			t.Fatalf("parse %q: expected %q, got %q", in, want, got)
		}
	}
	if _, err := stats.ParseMetric("bogus"); err == nil {
		t.Fatalf("expected error for unknown metric")
	}
}
