package fittrack

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"fittrack/internal/model"
	"fittrack/internal/stats"
	"fittrack/internal/store"
)

var workoutCmd = &cobra.Command{
	Use:   "workout",
	Short: "Manage the workout catalog and log completions",
}

var (
	workoutName       string
	workoutCategory   string
	workoutDuration   int
	workoutDifficulty string
	workoutCalories   int
)

var workoutAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a workout to the catalog",
	RunE: func(cmd *cobra.Command, args []string) error {
		if strings.TrimSpace(workoutName) == "" {
			return fmt.Errorf("--name is required")
		}
		return withStore(func(st *store.Store) error {
			id := st.AddWorkout(model.Workout{
				Name:       workoutName,
				Category:   workoutCategory,
				Duration:   workoutDuration,
				Difficulty: workoutDifficulty,
				Calories:   workoutCalories,
				Exercises:  []model.Exercise{},
			})
			fmt.Fprintf(cmd.OutOrStdout(), "Added workout %s\n", id)
			return nil
		})
	},
}

var (
	workoutListCategory string
	workoutListSearch   string
)

var workoutListCmd = &cobra.Command{
	Use:   "list",
	Short: "List catalog workouts",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(st *store.Store) error {
			workouts := stats.FilterWorkouts(st.Workouts(), workoutListCategory, workoutListSearch)
			fmt.Fprintln(cmd.OutOrStdout(), "ID\tNAME\tCATEGORY\tMIN\tKCAL\tDIFFICULTY")
			for _, w := range workouts {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\t%d\t%d\t%s\n",
					w.ID, w.Name, w.Category, w.Duration, w.Calories, w.Difficulty)
			}
			return nil
		})
	},
}

var workoutDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a catalog workout (completion history is kept)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(st *store.Store) error {
			st.DeleteWorkout(args[0])
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted workout %s\n", args[0])
			return nil
		})
	},
}

var workoutCompleteDate string

var workoutCompleteCmd = &cobra.Command{
	Use:   "complete <id>",
	Short: "Log a workout as completed",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		date, err := parseDateOrNow(workoutCompleteDate)
		if err != nil {
			return err
		}
		return withStore(func(st *store.Store) error {
			if _, ok := st.WorkoutByID(args[0]); !ok {
				return fmt.Errorf("workout %s not found", args[0])
			}
			st.CompleteWorkout(args[0], date, nil)
			fmt.Fprintf(cmd.OutOrStdout(), "Completed workout %s\n", args[0])
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(workoutCmd)
	workoutCmd.AddCommand(workoutAddCmd)
	workoutCmd.AddCommand(workoutListCmd)
	workoutCmd.AddCommand(workoutDeleteCmd)
	workoutCmd.AddCommand(workoutCompleteCmd)

	workoutAddCmd.Flags().StringVar(&workoutName, "name", "", "Workout name")
	workoutAddCmd.Flags().StringVar(&workoutCategory, "category", "strength", "Category (strength|cardio|core|flexibility)")
	workoutAddCmd.Flags().IntVar(&workoutDuration, "duration", 30, "Duration in minutes")
	workoutAddCmd.Flags().StringVar(&workoutDifficulty, "difficulty", "beginner", "Difficulty (beginner|intermediate|advanced)")
	workoutAddCmd.Flags().IntVar(&workoutCalories, "calories", 0, "Expected calorie burn")

	workoutListCmd.Flags().StringVar(&workoutListCategory, "category", "all", "Filter by category")
	workoutListCmd.Flags().StringVar(&workoutListSearch, "search", "", "Search workout and exercise names")

	workoutCompleteCmd.Flags().StringVar(&workoutCompleteDate, "date", "", "Date YYYY-MM-DD (default today)")
}
