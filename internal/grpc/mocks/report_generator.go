package mocks

import (
	"context"
	"errors"

	"github.com/godilite/likert-reports/internal/report"
	"github.com/godilite/likert-reports/internal/repository/models"
	"github.com/godilite/likert-reports/internal/service"
)

// MockReportGenerator is a mock implementation of the ReportGenerator
// interface for testing the handler layer.
type MockReportGenerator struct {
	GenerateFunc     func(ctx context.Context, variant report.Variant, req service.Request) (service.Result, error)
	ListSheetsFunc   func(ctx context.Context, sourceID string) ([]string, error)
	ListSubjectsFunc func(ctx context.Context, variant report.Variant, sourceID, sheet string) ([]string, error)
	HistoryFunc      func(ctx context.Context, limit int) ([]models.ReportRecord, error)
}

func (m *MockReportGenerator) Generate(ctx context.Context, variant report.Variant, req service.Request) (service.Result, error) {
	if m.GenerateFunc != nil {
		return m.GenerateFunc(ctx, variant, req)
	}
	return service.Result{}, errors.New("GenerateFunc not implemented")
}

func (m *MockReportGenerator) ListSheets(ctx context.Context, sourceID string) ([]string, error) {
	if m.ListSheetsFunc != nil {
		return m.ListSheetsFunc(ctx, sourceID)
	}
	return nil, errors.New("ListSheetsFunc not implemented")
}

func (m *MockReportGenerator) ListSubjects(ctx context.Context, variant report.Variant, sourceID, sheet string) ([]string, error) {
	if m.ListSubjectsFunc != nil {
		return m.ListSubjectsFunc(ctx, variant, sourceID, sheet)
	}
	return nil, errors.New("ListSubjectsFunc not implemented")
}

func (m *MockReportGenerator) History(ctx context.Context, limit int) ([]models.ReportRecord, error) {
	if m.HistoryFunc != nil {
		return m.HistoryFunc(ctx, limit)
	}
	return nil, errors.New("HistoryFunc not implemented")
}
