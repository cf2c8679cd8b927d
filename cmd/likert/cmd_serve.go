package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/godilite/likert-reports/internal/tui"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the gRPC report service",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp(cmd.Context(), logger)
		if err != nil {
			return err
		}
		return a.Run()
	},
}

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Generate reports interactively",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		// Log lines would tear the alternate screen.
		a, err := openApp(ctx, zap.NewNop())
		if err != nil {
			return err
		}
		defer a.Close()

		id := sourceFlag
		if id == "" {
			id = a.DefaultSourceID()
		}
		model := tui.New(ctx, a.Reports(), tui.Options{
			SourceID:        id,
			PreferencesFile: cfg.PreferencesFile,
			Render:          tui.GlamourRenderer(80),
		})
		if _, err := tea.NewProgram(model, tea.WithAltScreen()).Run(); err != nil {
			return fmt.Errorf("tui: %w", err)
		}
		return nil
	},
}
