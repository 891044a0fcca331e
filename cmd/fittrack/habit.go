package fittrack

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"fittrack/internal/model"
	"fittrack/internal/stats"
	"fittrack/internal/store"
)

var habitCmd = &cobra.Command{
	Use:   "habit",
	Short: "Track weekly habits",
}

var (
	habitName   string
	habitTarget int
	habitIcon   string
)

var habitAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a habit (completion week starts empty)",
	RunE: func(cmd *cobra.Command, args []string) error {
		if strings.TrimSpace(habitName) == "" {
			return fmt.Errorf("--name is required")
		}
		if habitTarget < 1 || habitTarget > 7 {
			return fmt.Errorf("--target must be between 1 and 7")
		}
		return withStore(func(st *store.Store) error {
			id := st.AddHabit(model.Habit{
				Name:   habitName,
				Target: habitTarget,
				Icon:   habitIcon,
			})
			fmt.Fprintf(cmd.OutOrStdout(), "Added habit %s\n", id)
			return nil
		})
	},
}

var habitListCmd = &cobra.Command{
	Use:   "list",
	Short: "List habits with this week's progress",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(st *store.Store) error {
			habits := st.Habits()
			fmt.Fprintln(cmd.OutOrStdout(), "ID\tNAME\tWEEK\tDAYS\tRATE")
			for _, h := range habits {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\t%d/%d\t%d%%\n",
					h.ID, h.Name, formatWeek(h.Completed), h.DaysCompleted(), h.Target,
					stats.HabitDayCompletionRate(h))
			}
			if len(habits) > 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "Overall completion: %d%%\n", stats.HabitCompletionRate(habits))
			}
			return nil
		})
	},
}

var habitToggleDay int

var habitToggleCmd = &cobra.Command{
	Use:   "toggle <id>",
	Short: "Toggle a day of a habit's week (0=Sun..6=Sat, default today)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		day := habitToggleDay
		if day < 0 {
			day = int(time.Now().Weekday())
		}
		if day > 6 {
			return fmt.Errorf("--day must be between 0 and 6")
		}
		return withStore(func(st *store.Store) error {
			habit, ok := st.HabitByID(args[0])
			if !ok {
				return fmt.Errorf("habit %s not found", args[0])
			}
			st.UpdateHabit(args[0], day, !habit.Completed[day])
			fmt.Fprintf(cmd.OutOrStdout(), "Toggled %s day %d\n", args[0], day)
			return nil
		})
	},
}

var (
	habitEditName   string
	habitEditTarget int
	habitEditIcon   string
)

var habitEditCmd = &cobra.Command{
	Use:   "edit <id>",
	Short: "Edit a habit's name, target, or icon (week progress is kept)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if habitEditTarget != 0 && (habitEditTarget < 1 || habitEditTarget > 7) {
			return fmt.Errorf("--target must be between 1 and 7")
		}
		return withStore(func(st *store.Store) error {
			habit, ok := st.HabitByID(args[0])
			if !ok {
				return fmt.Errorf("habit %s not found", args[0])
			}
			name := habit.Name
			if strings.TrimSpace(habitEditName) != "" {
				name = habitEditName
			}
			target := habit.Target
			if habitEditTarget != 0 {
				target = habitEditTarget
			}
			icon := habit.Icon
			if habitEditIcon != "" {
				icon = habitEditIcon
			}
			st.UpdateHabitDetails(args[0], name, target, icon)
			fmt.Fprintf(cmd.OutOrStdout(), "Updated habit %s\n", args[0])
			return nil
		})
	},
}

var habitDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a habit",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(st *store.Store) error {
			st.DeleteHabit(args[0])
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted habit %s\n", args[0])
			return nil
		})
	},
}

func formatWeek(completed [7]bool) string {
	days := "SMTWTFS"
	var b strings.Builder
	for i, done := range completed {
		if done {
			b.WriteByte(days[i])
		} else {
			b.WriteByte('-')
		}
	}
	return b.String()
}

func init() {
	rootCmd.AddCommand(habitCmd)
	habitCmd.AddCommand(habitAddCmd)
	habitCmd.AddCommand(habitListCmd)
	habitCmd.AddCommand(habitToggleCmd)
	habitCmd.AddCommand(habitEditCmd)
	habitCmd.AddCommand(habitDeleteCmd)

	habitAddCmd.Flags().StringVar(&habitName, "name", "", "Habit name")
	habitAddCmd.Flags().IntVar(&habitTarget, "target", 7, "Days per week (1-7)")
	habitAddCmd.Flags().StringVar(&habitIcon, "icon", "", "Icon identifier")

	habitToggleCmd.Flags().IntVar(&habitToggleDay, "day", -1, "Day index 0=Sun..6=Sat (default today)")

	habitEditCmd.Flags().StringVar(&habitEditName, "name", "", "New habit name")
	habitEditCmd.Flags().IntVar(&habitEditTarget, "target", 0, "New days-per-week target (1-7)")
	habitEditCmd.Flags().StringVar(&habitEditIcon, "icon", "", "New icon identifier")
}
