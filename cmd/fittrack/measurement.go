package fittrack

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"fittrack/internal/model"
	"fittrack/internal/stats"
	"fittrack/internal/store"
)

var measurementCmd = &cobra.Command{
	Use:   "measurement",
	Short: "Track body measurements",
}

var (
	measurementType string
	measurementDate string
)

var measurementAddCmd = &cobra.Command{
	Use:   "add <value>",
	Short: "Record a measurement",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if !model.ValidMeasurementType(measurementType) {
			return fmt.Errorf("invalid --type %q (expected one of %s)",
				measurementType, strings.Join(model.MeasurementTypes, ", "))
		}
		value, err := parseFloatArg("value", args[0])
		if err != nil {
			return err
		}
		date, err := parseDateOrNow(measurementDate)
		if err != nil {
			return err
		}
		return withStore(func(st *store.Store) error {
			st.AddMeasurement(measurementType, value, date)
			fmt.Fprintf(cmd.OutOrStdout(), "Recorded %s %.1f\n", measurementType, value)
			return nil
		})
	},
}

var measurementListLimit int

var measurementListCmd = &cobra.Command{
	Use:   "list",
	Short: "Show a measurement series",
	RunE: func(cmd *cobra.Command, args []string) error {
		if !model.ValidMeasurementType(measurementType) {
			return fmt.Errorf("invalid --type %q (expected one of %s)",
				measurementType, strings.Join(model.MeasurementTypes, ", "))
		}
		return withStore(func(st *store.Store) error {
			history := stats.MeasurementHistory(st.MeasurementSeries(measurementType), measurementListLimit)
			fmt.Fprintf(cmd.OutOrStdout(), "%s\n", measurementType)
			for i := range history.Labels {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%.1f\n", history.Labels[i], history.Values[i])
			}
			return nil
		})
	},
}

var measurementLatestCmd = &cobra.Command{
	Use:   "latest",
	Short: "Show the latest value of a measurement series",
	RunE: func(cmd *cobra.Command, args []string) error {
		if !model.ValidMeasurementType(measurementType) {
			return fmt.Errorf("invalid --type %q (expected one of %s)",
				measurementType, strings.Join(model.MeasurementTypes, ", "))
		}
		return withStore(func(st *store.Store) error {
			latest, ok := stats.LatestMeasurement(st.MeasurementSeries(measurementType))
			if !ok {
				fmt.Fprintf(cmd.OutOrStdout(), "%s: no data\n", measurementType)
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %.1f (recorded %s)\n",
				measurementType, latest.Value, latest.Date.Format("Jan 2, 2006"))
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(measurementCmd)
	measurementCmd.AddCommand(measurementAddCmd)
	measurementCmd.AddCommand(measurementListCmd)
	measurementCmd.AddCommand(measurementLatestCmd)

	measurementCmd.PersistentFlags().StringVar(&measurementType, "type", model.MeasurementWeight, "Measurement type")
	measurementAddCmd.Flags().StringVar(&measurementDate, "date", "", "Date YYYY-MM-DD (default today)")
	measurementListCmd.Flags().IntVar(&measurementListLimit, "limit", 7, "Entries to show (0 = all)")
}
