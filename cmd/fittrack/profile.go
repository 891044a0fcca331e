package fittrack

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"fittrack/internal/stats"
	"fittrack/internal/store"
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "View and edit the user profile",
}

var profileShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the profile with BMI",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(st *store.Store) error {
			user, dailyKcal := st.Profile()
			bmi := stats.BMI(user.Weight, user.Height)
			fmt.Fprintf(cmd.OutOrStdout(), "Name: %s\n", user.Name)
			fmt.Fprintf(cmd.OutOrStdout(), "Goal: %s\n", user.Goal)
			fmt.Fprintf(cmd.OutOrStdout(), "Age: %d\n", user.Age)
			fmt.Fprintf(cmd.OutOrStdout(), "Weight: %.1f kg\n", user.Weight)
			fmt.Fprintf(cmd.OutOrStdout(), "Height: %.1f cm\n", user.Height)
			fmt.Fprintf(cmd.OutOrStdout(), "BMI: %.1f (%s)\n", bmi, stats.BMICategory(bmi))
			fmt.Fprintf(cmd.OutOrStdout(), "Daily target: %d kcal\n", dailyKcal)
			return nil
		})
	},
}

var (
	profileName   string
	profileGoal   string
	profileWeight float64
	profileHeight float64
	profileAge    int
)

var profileSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Update profile fields (unset flags are kept)",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(st *store.Store) error {
			var update store.UserUpdate
			if cmd.Flags().Changed("name") {
				update.Name = &profileName
			}
			if cmd.Flags().Changed("goal") {
				update.Goal = &profileGoal
			}
			if cmd.Flags().Changed("weight") {
				update.Weight = &profileWeight
			}
			if cmd.Flags().Changed("height") {
				update.Height = &profileHeight
			}
			if cmd.Flags().Changed("age") {
				update.Age = &profileAge
			}
			st.UpdateUser(update)
			fmt.Fprintln(cmd.OutOrStdout(), "Profile updated")
			return nil
		})
	},
}

var profileCaloriesCmd = &cobra.Command{
	Use:   "calories <kcal>",
	Short: "Set the daily calorie target",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		kcal, err := strconv.Atoi(args[0])
		if err != nil || kcal <= 0 {
			return fmt.Errorf("invalid calorie target %q", args[0])
		}
		return withStore(func(st *store.Store) error {
			st.UpdateDailyCalories(kcal)
			fmt.Fprintf(cmd.OutOrStdout(), "Daily target set to %d kcal\n", kcal)
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(profileCmd)
	profileCmd.AddCommand(profileShowCmd)
	profileCmd.AddCommand(profileSetCmd)
	profileCmd.AddCommand(profileCaloriesCmd)

	profileSetCmd.Flags().StringVar(&profileName, "name", "", "Name")
	profileSetCmd.Flags().StringVar(&profileGoal, "goal", "", "Goal")
	profileSetCmd.Flags().Float64Var(&profileWeight, "weight", 0, "Weight in kg")
	profileSetCmd.Flags().Float64Var(&profileHeight, "height", 0, "Height in cm")
	profileSetCmd.Flags().IntVar(&profileAge, "age", 0, "Age in years")
}
