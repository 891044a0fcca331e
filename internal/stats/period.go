package stats

import (
	"fmt"
	"strings"
	"time"
)

// Period selects the time span and bucketing of a derived view.
type Period string

const (
	// PeriodWeek covers the last 7 days, one bucket per day.
	PeriodWeek Period = "week"
	// PeriodMonth covers the last 4 weeks, one bucket per 7-day window.
	PeriodMonth Period = "month"
	// PeriodSixMonths covers the last 6 calendar months, one bucket per month.
	PeriodSixMonths Period = "sixMonths"
)

// ParsePeriod maps a user-supplied period name onto a Period.
func ParsePeriod(s string) (Period, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "week":
		return PeriodWeek, nil
	case "month":
		return PeriodMonth, nil
	case "sixmonths", "6m":
		return PeriodSixMonths, nil
	}
	return "", fmt.Errorf("invalid period %q (expected week, month, or sixMonths)", s)
}

// bucket is one slot of a chart series: a label plus the representative
// date the bucket was walked back to from the reference date.
type bucket struct {
	label string
	date  time.Time
}

// periodBuckets returns the buckets for a period in chronological order,
// oldest first, the last bucket landing on the reference date.
func periodBuckets(period Period, ref time.Time) []bucket {
	switch period {
	case PeriodMonth:
		out := make([]bucket, 0, 4)
		for i := 3; i >= 0; i-- {
			out = append(out, bucket{
				label: fmt.Sprintf("Week %d", 4-i),
				date:  ref.AddDate(0, 0, -i*7),
			})
		}
		return out
	case PeriodSixMonths:
		out := make([]bucket, 0, 6)
		for i := 5; i >= 0; i-- {
			d := ref.AddDate(0, -i, 0)
			out = append(out, bucket{label: d.Format("Jan"), date: d})
		}
		return out
	default:
		out := make([]bucket, 0, 7)
		for i := 6; i >= 0; i-- {
			d := ref.AddDate(0, 0, -i)
			out = append(out, bucket{label: d.Format("Mon"), date: d})
		}
		return out
	}
}

// contains reports whether t falls inside the bucket's window for the
// given period: calendar-day match for week, a [start, start+7d) day
// window for month, calendar-month match for sixMonths.
func (b bucket) contains(period Period, t time.Time) bool {
	switch period {
	case PeriodMonth:
		start := beginningOfDay(b.date)
		end := start.AddDate(0, 0, 7)
		return !t.Before(start) && t.Before(end)
	case PeriodSixMonths:
		return t.Year() == b.date.Year() && t.Month() == b.date.Month()
	default:
		return sameDay(t, b.date)
	}
}

func sameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}

func beginningOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}
