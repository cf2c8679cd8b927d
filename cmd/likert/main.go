package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
	_ "github.com/mattn/go-sqlite3"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/godilite/likert-reports/internal/app"
	"github.com/godilite/likert-reports/internal/config"
	"github.com/godilite/likert-reports/internal/service"
)

var (
	cfg    *config.Config
	logger *zap.Logger

	sourceFlag string
)

var rootCmd = &cobra.Command{
	Use:           "likert",
	Short:         "Generate Likert survey reports from spreadsheet responses",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		_ = godotenv.Load(".env")
		cfg = config.LoadFromEnv()

		var err error
		logger, err = config.NewLogger(cfg)
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&sourceFlag, "source", "s", "", "spreadsheet id, workbook or csv file (defaults to the remembered id)")

	rootCmd.AddCommand(serveCmd, sheetsCmd, subjectsCmd, staffCmd, campusRepCmd, historyCmd, sourceCmd, tuiCmd)
}

func main() {
	err := rootCmd.Execute()
	if logger != nil {
		_ = logger.Sync()
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, userMessage(err))
		os.Exit(1)
	}
}

// openApp builds the application for one command. The caller closes it.
func openApp(ctx context.Context, l *zap.Logger) (*app.App, error) {
	return app.NewApp(ctx, cfg, l)
}

// sourceID resolves the --source flag against the remembered preference.
func sourceID(a *app.App) (string, error) {
	if id := strings.TrimSpace(sourceFlag); id != "" {
		return id, nil
	}
	if id := a.DefaultSourceID(); id != "" {
		return id, nil
	}
	return "", errors.New("no spreadsheet id: pass --source or run `likert source set <id>`")
}

func userMessage(err error) string {
	for _, target := range []error{
		service.ErrInvalidRequest,
		service.ErrSourceUnavailable,
		service.ErrNoDataFound,
		service.ErrSubjectNotFound,
		context.Canceled,
		context.DeadlineExceeded,
	} {
		if errors.Is(err, target) {
			return service.Describe(err)
		}
	}
	return "Error: " + err.Error()
}
