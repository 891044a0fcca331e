package fittrack

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"fittrack/internal/store"
)

var exportOut string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the full state as a JSON document",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(st *store.Store) error {
			raw, err := json.MarshalIndent(st.Snapshot(), "", "  ")
			if err != nil {
				return fmt.Errorf("encode state: %w", err)
			}
			raw = append(raw, '\n')
			if exportOut == "" || exportOut == "-" {
				_, err = cmd.OutOrStdout().Write(raw)
				return err
			}
			if err := os.WriteFile(exportOut, raw, 0o644); err != nil {
				return fmt.Errorf("write export: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Exported state to %s\n", exportOut)
			return nil
		})
	},
}

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Replace the full state from a JSON export",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		raw, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("read import: %w", err)
		}
		var state store.State
		if err := json.Unmarshal(raw, &state); err != nil {
			return fmt.Errorf("decode import: %w", err)
		}
		return withStore(func(st *store.Store) error {
			st.Restore(state)
			fmt.Fprintf(cmd.OutOrStdout(), "Imported state from %s\n", args[0])
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(importCmd)
	exportCmd.Flags().StringVar(&exportOut, "out", "-", "Output file (- for stdout)")
}
