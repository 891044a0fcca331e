package stats

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"fittrack/internal/model"
)

// Metric selects what a chart series measures per bucket.
type Metric string

const (
	// MetricWorkoutCount counts completed workouts per bucket.
	MetricWorkoutCount Metric = "workoutCount"
	// MetricCaloriesConsumed sums consumed-meal calories per bucket.
	MetricCaloriesConsumed Metric = "caloriesConsumed"
	// MetricWeightClosestMatch picks the weight measurement nearest to
	// each bucket's representative date.
	MetricWeightClosestMatch Metric = "weightClosestMatch"
)

// ParseMetric maps a user-supplied metric name onto a Metric.
func ParseMetric(s string) (Metric, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "workouts", "workoutcount":
		return MetricWorkoutCount, nil
	case "nutrition", "calories", "caloriesconsumed":
		return MetricCaloriesConsumed, nil
	case "weight", "weightclosestmatch":
		return MetricWeightClosestMatch, nil
	}
	return "", fmt.Errorf("invalid metric %q (expected workouts, nutrition, or weight)", s)
}

// Series is an index-aligned label/value pair list, oldest bucket first.
type Series struct {
	Labels []string  `json:"labels"`
	Values []float64 `json:"values"`
}

// SeriesSource carries the snapshots a series may draw from. Only the
// collection matching the requested metric is read.
type SeriesSource struct {
	CompletedWorkouts []model.CompletedWorkout
	ConsumedMeals     []model.ConsumedMeal
	Weight            []model.Measurement
}

// SeriesForPeriod buckets the source data per the period rule and computes
// the metric for every bucket in chronological order.
func SeriesForPeriod(metric Metric, period Period, ref time.Time, src SeriesSource) Series {
	switch metric {
	case MetricCaloriesConsumed:
		return CaloriesConsumedSeries(src.ConsumedMeals, period, ref)
	case MetricWeightClosestMatch:
		return WeightSeries(src.Weight, period, ref)
	default:
		return WorkoutCountSeries(src.CompletedWorkouts, period, ref)
	}
}

// WorkoutCountSeries counts completed workouts per bucket.
func WorkoutCountSeries(completed []model.CompletedWorkout, period Period, ref time.Time) Series {
	buckets := periodBuckets(period, ref)
	out := newSeries(buckets)
	for i, b := range buckets {
		n := 0
		for _, c := range completed {
			if b.contains(period, c.Date) {
				n++
			}
		}
		out.Values[i] = float64(n)
	}
	return out
}

// CaloriesConsumedSeries sums consumed calories per bucket.
func CaloriesConsumedSeries(consumed []model.ConsumedMeal, period Period, ref time.Time) Series {
	buckets := periodBuckets(period, ref)
	out := newSeries(buckets)
	for i, b := range buckets {
		total := 0.0
		for _, m := range consumed {
			if b.contains(period, m.Date) {
				total += m.Calories
			}
		}
		out.Values[i] = total
	}
	return out
}

// WeightSeries fills each bucket with the weight measurement whose date is
// closest to the bucket's representative date. This is a nearest-neighbor
// fill, not interpolation: ties go to the earliest-recorded entry, and an
// empty series yields all zeros.
func WeightSeries(weight []model.Measurement, period Period, ref time.Time) Series {
	buckets := periodBuckets(period, ref)
	out := newSeries(buckets)
	if len(weight) == 0 {
		return out
	}
	for i, b := range buckets {
		sorted := make([]model.Measurement, len(weight))
		copy(sorted, weight)
		target := b.date
		sort.SliceStable(sorted, func(x, y int) bool {
			dx := absDuration(target.Sub(sorted[x].Date))
			dy := absDuration(target.Sub(sorted[y].Date))
			return dx < dy
		})
		out.Values[i] = sorted[0].Value
	}
	return out
}

func newSeries(buckets []bucket) Series {
	s := Series{
		Labels: make([]string, len(buckets)),
		Values: make([]float64, len(buckets)),
	}
	for i, b := range buckets {
		s.Labels[i] = b.label
	}
	return s
}

func absDuration(d time.Duration) time.Duration {
	if d < 0 {
		return -d
	}
	return d
}
