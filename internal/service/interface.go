package service

import (
	"context"

	"github.com/godilite/likert-reports/internal/report"
	"github.com/godilite/likert-reports/internal/repository/models"
	"github.com/godilite/likert-reports/internal/survey"
)

// SheetSource supplies survey grids; the first row of a grid is the header.
type SheetSource interface {
	SheetNames(ctx context.Context, sourceID string) ([]string, error)
	Values(ctx context.Context, sourceID, sheet string) ([][]string, error)
}

// ChartRenderer draws the distribution chart as PNG.
type ChartRenderer interface {
	Render(subject, axisLabel string, ds survey.Distributions) ([]byte, error)
}

// ReportWriter persists an assembled report and returns its path.
type ReportWriter interface {
	Save(r *report.Report) (string, error)
}

// HistoryRepository defines the database operations for the report history.
type HistoryRepository interface {
	Record(ctx context.Context, rec models.ReportRecord) (models.ReportRecord, error)
	Recent(ctx context.Context, limit int) ([]models.ReportRecord, error)
}
