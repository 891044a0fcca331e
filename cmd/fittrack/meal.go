package fittrack

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"fittrack/internal/model"
	"fittrack/internal/stats"
	"fittrack/internal/store"
)

var mealCmd = &cobra.Command{
	Use:   "meal",
	Short: "Manage the meal catalog and log consumption",
}

var (
	mealName        string
	mealCategory    string
	mealCalories    int
	mealProtein     float64
	mealCarbs       float64
	mealFat         float64
	mealIngredients []string
)

var mealAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a meal to the catalog",
	RunE: func(cmd *cobra.Command, args []string) error {
		if strings.TrimSpace(mealName) == "" {
			return fmt.Errorf("--name is required")
		}
		return withStore(func(st *store.Store) error {
			id := st.AddMeal(model.Meal{
				Name:        mealName,
				Category:    mealCategory,
				Calories:    mealCalories,
				Protein:     mealProtein,
				Carbs:       mealCarbs,
				Fat:         mealFat,
				Ingredients: mealIngredients,
			})
			fmt.Fprintf(cmd.OutOrStdout(), "Added meal %s\n", id)
			return nil
		})
	},
}

var mealListCategory string

var mealListCmd = &cobra.Command{
	Use:   "list",
	Short: "List catalog meals",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(st *store.Store) error {
			meals := stats.FilterMealsByCategory(st.Meals(), mealListCategory)
			fmt.Fprintln(cmd.OutOrStdout(), "ID\tNAME\tCATEGORY\tKCAL\tP\tC\tF")
			for _, m := range meals {
				macros := stats.MacroBreakdown(m.Protein, m.Carbs, m.Fat)
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\t%d\t%.1fg (%d%%)\t%.1fg (%d%%)\t%.1fg (%d%%)\n",
					m.ID, m.Name, m.Category, m.Calories,
					m.Protein, macros.Protein, m.Carbs, macros.Carbs, m.Fat, macros.Fat)
			}
			return nil
		})
	},
}

var mealDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a catalog meal (consumption history is kept)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(st *store.Store) error {
			st.DeleteMeal(args[0])
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted meal %s\n", args[0])
			return nil
		})
	},
}

var (
	mealConsumeDate string
	mealConsumeQty  float64
)

var mealConsumeCmd = &cobra.Command{
	Use:   "consume <id>",
	Short: "Log a meal as consumed",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if mealConsumeQty < 0 {
			return fmt.Errorf("--qty must be >= 0")
		}
		date, err := parseDateOrNow(mealConsumeDate)
		if err != nil {
			return err
		}
		return withStore(func(st *store.Store) error {
			if _, ok := st.MealByID(args[0]); !ok {
				return fmt.Errorf("meal %s not found", args[0])
			}
			st.ConsumeMeal(args[0], date, mealConsumeQty)
			fmt.Fprintf(cmd.OutOrStdout(), "Consumed meal %s (x%.2g)\n", args[0], mealConsumeQty)
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(mealCmd)
	mealCmd.AddCommand(mealAddCmd)
	mealCmd.AddCommand(mealListCmd)
	mealCmd.AddCommand(mealDeleteCmd)
	mealCmd.AddCommand(mealConsumeCmd)

	mealAddCmd.Flags().StringVar(&mealName, "name", "", "Meal name")
	mealAddCmd.Flags().StringVar(&mealCategory, "category", "snack", "Category (breakfast|lunch|dinner|snack)")
	mealAddCmd.Flags().IntVar(&mealCalories, "calories", 0, "Calories per serving")
	mealAddCmd.Flags().Float64Var(&mealProtein, "protein", 0, "Protein grams per serving")
	mealAddCmd.Flags().Float64Var(&mealCarbs, "carbs", 0, "Carb grams per serving")
	mealAddCmd.Flags().Float64Var(&mealFat, "fat", 0, "Fat grams per serving")
	mealAddCmd.Flags().StringSliceVar(&mealIngredients, "ingredient", nil, "Ingredient (repeatable)")

	mealListCmd.Flags().StringVar(&mealListCategory, "category", "all", "Filter by category")

	mealConsumeCmd.Flags().StringVar(&mealConsumeDate, "date", "", "Date YYYY-MM-DD (default today)")
	mealConsumeCmd.Flags().Float64Var(&mealConsumeQty, "qty", 1, "Quantity multiplier")
}
