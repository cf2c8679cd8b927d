package grpc

import (
	"context"

	"github.com/godilite/likert-reports/internal/report"
	"github.com/godilite/likert-reports/internal/repository/models"
	"github.com/godilite/likert-reports/internal/service"
)

// ReportGenerator is the service the handlers delegate to.
type ReportGenerator interface {
	Generate(ctx context.Context, variant report.Variant, req service.Request) (service.Result, error)
	ListSheets(ctx context.Context, sourceID string) ([]string, error)
	ListSubjects(ctx context.Context, variant report.Variant, sourceID, sheet string) ([]string, error)
	History(ctx context.Context, limit int) ([]models.ReportRecord, error)
}
