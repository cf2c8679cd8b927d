package mocks

import (
	"context"
	"errors"

	"github.com/godilite/likert-reports/internal/report"
	"github.com/godilite/likert-reports/internal/repository/models"
	"github.com/godilite/likert-reports/internal/survey"
)

// MockChartRenderer is a mock implementation of the ChartRenderer interface.
type MockChartRenderer struct {
	RenderFunc func(subject, axisLabel string, ds survey.Distributions) ([]byte, error)
}

func (m *MockChartRenderer) Render(subject, axisLabel string, ds survey.Distributions) ([]byte, error) {
	if m.RenderFunc != nil {
		return m.RenderFunc(subject, axisLabel, ds)
	}
	return nil, errors.New("RenderFunc not implemented")
}

// MockReportWriter is a mock implementation of the ReportWriter interface.
type MockReportWriter struct {
	SaveFunc func(r *report.Report) (string, error)
}

func (m *MockReportWriter) Save(r *report.Report) (string, error) {
	if m.SaveFunc != nil {
		return m.SaveFunc(r)
	}
	return "", errors.New("SaveFunc not implemented")
}

// MockHistoryRepository is a mock implementation of the HistoryRepository
// interface.
type MockHistoryRepository struct {
	RecordFunc func(ctx context.Context, rec models.ReportRecord) (models.ReportRecord, error)
	RecentFunc func(ctx context.Context, limit int) ([]models.ReportRecord, error)
}

func (m *MockHistoryRepository) Record(ctx context.Context, rec models.ReportRecord) (models.ReportRecord, error) {
	if m.RecordFunc != nil {
		return m.RecordFunc(ctx, rec)
	}
	return models.ReportRecord{}, errors.New("RecordFunc not implemented")
}

func (m *MockHistoryRepository) Recent(ctx context.Context, limit int) ([]models.ReportRecord, error) {
	if m.RecentFunc != nil {
		return m.RecentFunc(ctx, limit)
	}
	return nil, errors.New("RecentFunc not implemented")
}
