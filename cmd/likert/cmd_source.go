package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/godilite/likert-reports/internal/config"
)

var sourceCmd = &cobra.Command{
	Use:   "source",
	Short: "Show or remember the default spreadsheet id",
}

var sourceShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the remembered spreadsheet id",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		id := config.LoadPreferences(cfg.PreferencesFile).SpreadsheetID
		if id == "" {
			fmt.Fprintln(cmd.OutOrStdout(), "No spreadsheet id saved.")
			return nil
		}
		fmt.Fprintln(cmd.OutOrStdout(), id)
		return nil
	},
}

var sourceSetCmd = &cobra.Command{
	Use:   "set <id>",
	Short: "Remember a spreadsheet id for later runs",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := config.SavePreferences(cfg.PreferencesFile, config.Preferences{SpreadsheetID: args[0]}); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Saved to %s\n", cfg.PreferencesFile)
		return nil
	},
}

func init() {
	sourceCmd.AddCommand(sourceShowCmd, sourceSetCmd)
}
