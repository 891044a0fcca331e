package fittrack

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	dataPath   string
	configPath string
)

var rootCmd = &cobra.Command{
	Use:   "fittrack",
	Short: "fittrack logs workouts, meals, measurements, and habits from your terminal",
	Long:  "fittrack is a local-first fitness tracker: workout and meal catalogs, completion and nutrition logs, body measurements, weekly habits, and progress charts.",
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dataPath, "data", "", "Path to the state database")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to the TOML config file")
}
