package fittrack

import (
	"fmt"

	"github.com/spf13/cobra"

	"fittrack/internal/stats"
	"fittrack/internal/store"
)

var todayDate string

var todayCmd = &cobra.Command{
	Use:   "today",
	Short: "Show today's nutrition and this week's workouts",
	RunE: func(cmd *cobra.Command, args []string) error {
		ref, err := parseDateOrNow(todayDate)
		if err != nil {
			return err
		}
		return withStore(func(st *store.Store) error {
			nutrition := stats.DailyNutritionSummary(st.ConsumedMeals(), ref)
			remaining := stats.RemainingCalories(st.DailyCalories(), nutrition.Calories)
			week := stats.WeeklyWorkoutSummary(st.CompletedWorkouts(), ref)

			fmt.Fprintf(cmd.OutOrStdout(), "Date: %s\n", ref.Format("2006-01-02"))
			fmt.Fprintf(cmd.OutOrStdout(), "Consumed: %.0f kcal | P %.1fg | C %.1fg | F %.1fg\n",
				nutrition.Calories, nutrition.Protein, nutrition.Carbs, nutrition.Fat)
			if remaining < 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "Remaining: %.0f kcal (over target)\n", remaining)
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "Remaining: %.0f kcal\n", remaining)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "This week: %d workouts | %d kcal burned\n",
				week.Workouts, week.CaloriesBurned)
			if suggested := stats.SuggestedWorkouts(st.Workouts(), 3); len(suggested) > 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "Suggested:")
				for _, w := range suggested {
					fmt.Fprintf(cmd.OutOrStdout(), "  %s\t%s (%d min, %d kcal)\n", w.ID, w.Name, w.Duration, w.Calories)
				}
			}
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(todayCmd)
	todayCmd.Flags().StringVar(&todayDate, "date", "", "Date YYYY-MM-DD (default today)")
}
