package fittrack

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"fittrack/internal/model"
	"fittrack/internal/stats"
	"fittrack/internal/store"
)

var (
	progressPeriod string
	progressChart  string
	progressDate   string
)

var progressCmd = &cobra.Command{
	Use:   "progress",
	Short: "Show progress charts and period summaries",
	RunE: func(cmd *cobra.Command, args []string) error {
		period, err := stats.ParsePeriod(progressPeriod)
		if err != nil {
			return err
		}
		metric, err := stats.ParseMetric(progressChart)
		if err != nil {
			return err
		}
		ref, err := parseDateOrNow(progressDate)
		if err != nil {
			return err
		}
		return withStore(func(st *store.Store) error {
			series := stats.SeriesForPeriod(metric, period, ref, stats.SeriesSource{
				CompletedWorkouts: st.CompletedWorkouts(),
				ConsumedMeals:     st.ConsumedMeals(),
				Weight:            st.MeasurementSeries(model.MeasurementWeight),
			})
			totals := stats.PeriodSummary(st.CompletedWorkouts(), period, ref)
			habitRate := stats.HabitCompletionRate(st.Habits())

			fmt.Fprintf(cmd.OutOrStdout(), "%s (%s)\n", chartTitle(metric), period)
			for i := range series.Labels {
				fmt.Fprintf(cmd.OutOrStdout(), "%-7s %s %.1f\n",
					series.Labels[i], bar(series.Values[i], maxValue(series.Values)), series.Values[i])
			}
			fmt.Fprintf(cmd.OutOrStdout(), "\nWorkouts: %d | Minutes: %d | Calories: %d\n",
				totals.Workouts, totals.DurationMin, totals.Calories)
			fmt.Fprintf(cmd.OutOrStdout(), "Habit completion: %d%%\n", habitRate)
			return nil
		})
	},
}

func chartTitle(metric stats.Metric) string {
	switch metric {
	case stats.MetricCaloriesConsumed:
		return "Calories consumed"
	case stats.MetricWeightClosestMatch:
		return "Weight (kg)"
	default:
		return "Workouts"
	}
}

// bar renders a proportional ascii bar, 30 columns at the series maximum.
func bar(value, max float64) string {
	if max <= 0 {
		return ""
	}
	width := int(value / max * 30)
	return strings.Repeat("#", width)
}

func maxValue(values []float64) float64 {
	max := 0.0
	for _, v := range values {
		if v > max {
			max = v
		}
	}
	return max
}

func init() {
	rootCmd.AddCommand(progressCmd)
	progressCmd.Flags().StringVar(&progressPeriod, "period", "week", "Period (week|month|sixMonths)")
	progressCmd.Flags().StringVar(&progressChart, "chart", "workouts", "Chart (workouts|nutrition|weight)")
	progressCmd.Flags().StringVar(&progressDate, "date", "", "Reference date YYYY-MM-DD (default today)")
}
