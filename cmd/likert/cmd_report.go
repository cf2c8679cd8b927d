package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/godilite/likert-reports/internal/report"
	"github.com/godilite/likert-reports/internal/service"
	"github.com/godilite/likert-reports/internal/tui"
)

var (
	previewFlag bool
	htmlFlag    string
)

var staffCmd = &cobra.Command{
	Use:   "staff <sheet> <staff member>",
	Short: "Generate a staff report",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runReport(cmd, report.Staff, args[0], args[1])
	},
}

var campusRepCmd = &cobra.Command{
	Use:   "campus-rep <sheet> <representative>",
	Short: "Generate a campus representative report",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runReport(cmd, report.CampusRep, args[0], args[1])
	},
}

func init() {
	for _, c := range []*cobra.Command{staffCmd, campusRepCmd} {
		c.Flags().BoolVar(&previewFlag, "preview", false, "print the report text to the terminal")
		c.Flags().StringVar(&htmlFlag, "html", "", "also write an HTML preview to this file")
	}
}

func runReport(cmd *cobra.Command, variant report.Variant, sheet, subject string) error {
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

	res, err := a.Reports().Generate(ctx, variant, service.Request{SourceID: id, Sheet: sheet, Subject: subject})
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Report saved to %s\n", res.Path)

	if previewFlag {
		text, err := tui.GlamourRenderer(80)(res.Report.Markdown())
		if err != nil {
			text = res.Report.Markdown()
		}
		fmt.Fprintln(out, text)
	}

	if htmlFlag != "" {
		html, err := res.Report.HTML()
		if err != nil {
			return fmt.Errorf("html preview: %w", err)
		}
		if err := os.WriteFile(htmlFlag, []byte(html), 0o644); err != nil {
			return fmt.Errorf("html preview: %w", err)
		}
		fmt.Fprintf(out, "HTML preview saved to %s\n", htmlFlag)
	}
	return nil
}
