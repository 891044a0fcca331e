package stats

import (
	"math"
	"sort"

	"fittrack/internal/model"
)

// BMI computes body mass index from weight in kilograms and height in
// centimeters, rounded to one decimal place. Returns 0 for a non-positive
// height.
func BMI(weightKg, heightCm float64) float64 {
	if heightCm <= 0 {
		return 0
	}
	meters := heightCm / 100
	return math.Round(weightKg/(meters*meters)*10) / 10
}

// BMICategory buckets a (one-decimal) BMI value into the standard bands.
func BMICategory(bmi float64) string {
	switch {
	case bmi < 18.5:
		return "Underweight"
	case bmi < 24.9:
		return "Normal"
	case bmi < 29.9:
		return "Overweight"
	default:
		return "Obese"
	}
}

// LatestMeasurement returns the newest entry of a measurement series by
// date. ok is false when the series is empty.
func LatestMeasurement(entries []model.Measurement) (latest model.Measurement, ok bool) {
	for _, e := range entries {
		if !ok || e.Date.After(latest.Date) {
			latest = e
			ok = true
		}
	}
	return latest, ok
}

// MeasurementHistory returns the last n entries of a series sorted by
// date, as a chart series labeled with short dates. n <= 0 means all.
func MeasurementHistory(entries []model.Measurement, n int) Series {
	sorted := make([]model.Measurement, len(entries))
	copy(sorted, entries)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date.Before(sorted[j].Date)
	})
	if n > 0 && len(sorted) > n {
		sorted = sorted[len(sorted)-n:]
	}
	out := Series{
		Labels: make([]string, len(sorted)),
		Values: make([]float64, len(sorted)),
	}
	for i, e := range sorted {
		out.Labels[i] = e.Date.Format("Jan 2")
		out.Values[i] = e.Value
	}
	return out
}
