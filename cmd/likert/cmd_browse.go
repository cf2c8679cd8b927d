package main

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/godilite/likert-reports/internal/report"
)

var historyLimit int

var sheetsCmd = &cobra.Command{
	Use:   "sheets",
	Short: "List the sheets of the spreadsheet",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		a, err := openApp(ctx, logger)
		if err != nil {
			return err
		}
		defer a.Close()

		id, err := sourceID(a)
		if err != nil {
			return err
		}
		names, err := a.Reports().ListSheets(ctx, id)
		if err != nil {
			return err
		}
		for _, name := range names {
			fmt.Fprintln(cmd.OutOrStdout(), name)
		}
		return nil
	},
}

var subjectsCmd = &cobra.Command{
	Use:   "subjects <staff|campus_rep> <sheet>",
	Short: "List the staff members or campus representatives found in a sheet",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		variant, err := report.ParseVariant(args[0])
		if err != nil {
			return err
		}

		ctx := cmd.Context()
		a, err := openApp(ctx, logger)
		if err != nil {
			return err
		}
		defer a.Close()

		id, err := sourceID(a)
		if err != nil {
			return err
		}
		subjects, err := a.Reports().ListSubjects(ctx, variant, id, args[1])
		if err != nil {
			return err
		}
		for _, s := range subjects {
			fmt.Fprintln(cmd.OutOrStdout(), s)
		}
		return nil
	},
}

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recently generated reports",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		a, err := openApp(ctx, logger)
		if err != nil {
			return err
		}
		defer a.Close()

		records, err := a.Reports().History(ctx, historyLimit)
		if err != nil {
			return err
		}
		if len(records) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No reports generated yet.")
			return nil
		}

		t := table.New().Headers("Generated", "Type", "Subject", "Sheet", "Metrics", "Responses", "Path")
		for _, r := range records {
			t.Row(
				r.GeneratedAt.Local().Format("2006-01-02 15:04"),
				string(r.Variant),
				r.Subject,
				r.Sheet,
				strconv.Itoa(r.Metrics),
				strconv.Itoa(r.Responses),
				r.Path,
			)
		}
		fmt.Fprintln(cmd.OutOrStdout(), t.String())
		return nil
	},
}

func init() {
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 20, "number of reports to show")
}
