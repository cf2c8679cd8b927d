package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/godilite/likert-reports/internal/report"
	"github.com/godilite/likert-reports/internal/repository/models"
	"github.com/godilite/likert-reports/internal/survey"
)

const (
	fetchTimeout   = 30 * time.Second
	historyTimeout = 2 * time.Second
)

// ReportService generates staff and campus-rep reports. Each call runs to
// completion: fetch, normalize, count, render, assemble, persist.
type ReportService struct {
	source        SheetSource
	renderer      ChartRenderer
	writer        ReportWriter
	history       HistoryRepository
	questionnaire survey.Questionnaire
	scale         survey.Scale
	logger        *zap.Logger
}

// NewReportService creates a new ReportService instance. history may be nil,
// in which case generated reports are not recorded.
func NewReportService(
	source SheetSource,
	renderer ChartRenderer,
	writer ReportWriter,
	history HistoryRepository,
	questionnaire survey.Questionnaire,
	logger *zap.Logger,
) *ReportService {
	if source == nil {
		panic("source must not be nil")
	}
	if renderer == nil {
		panic("renderer must not be nil")
	}
	if writer == nil {
		panic("writer must not be nil")
	}
	if logger == nil {
		l, _ := zap.NewProduction()
		logger = l
	}
	return &ReportService{
		source:        source,
		renderer:      renderer,
		writer:        writer,
		history:       history,
		questionnaire: questionnaire,
		scale:         survey.LikertScale,
		logger:        logger.Named("reports"),
	}
}

// Questionnaire returns the campus-rep questionnaire in use.
func (s *ReportService) Questionnaire() survey.Questionnaire {
	return s.questionnaire
}

// Generate dispatches to the generator of variant.
func (s *ReportService) Generate(ctx context.Context, variant report.Variant, req Request) (Result, error) {
	switch variant {
	case report.Staff:
		return s.GenerateStaffReport(ctx, req)
	case report.CampusRep:
		return s.GenerateCampusRepReport(ctx, req)
	}
	return Result{}, fmt.Errorf("%w: unknown report type %q", ErrInvalidRequest, variant)
}

// GenerateStaffReport counts every "<subject> - <metric>" column of the sheet.
// Substring matching is kept: a subject that is part of several names is
// reported as a warning, not rejected.
func (s *ReportService) GenerateStaffReport(ctx context.Context, req Request) (Result, error) {
	if err := validate(req); err != nil {
		return Result{}, err
	}
	req.Subject = strings.TrimSpace(req.Subject)

	table, err := s.fetchTable(ctx, req.SourceID, req.Sheet)
	if err != nil {
		return Result{}, err
	}
	table = table.WithHeaders(survey.NormalizeHeaders(table.Headers))

	if names := survey.MatchedSubjects(table.Headers, req.Subject); len(names) > 1 {
		s.logger.Warn("subject matches several names",
			zap.String("subject", req.Subject),
			zap.Strings("names", names))
	}

	ds := survey.ComputeDistributions(table, survey.SubjectColumns{Subject: req.Subject}, s.scale)
	if len(ds) == 0 {
		return Result{}, fmt.Errorf("%w: no columns for %q in sheet %q", ErrSubjectNotFound, req.Subject, req.Sheet)
	}

	return s.build(ctx, report.Staff, req, ds, nil)
}

// GenerateCampusRepReport counts the questionnaire columns over the rows whose
// trimmed identity value equals the subject.
func (s *ReportService) GenerateCampusRepReport(ctx context.Context, req Request) (Result, error) {
	if err := validate(req); err != nil {
		return Result{}, err
	}
	req.Subject = strings.TrimSpace(req.Subject)

	table, err := s.fetchTable(ctx, req.SourceID, req.Sheet)
	if err != nil {
		return Result{}, err
	}

	q := s.questionnaire
	if table.ColumnIndex(q.IdentityColumn) < 0 {
		return Result{}, fmt.Errorf("%w: sheet %q has no %q column", ErrSubjectNotFound, req.Sheet, q.IdentityColumn)
	}

	rows := table.Filter(q.IdentityColumn, req.Subject)
	if rows.Len() == 0 {
		return Result{}, fmt.Errorf("%w: no responses for %q in sheet %q", ErrSubjectNotFound, req.Subject, req.Sheet)
	}

	strategy := q.Strategy()
	if missing := strategy.Missing(table); len(missing) > 0 {
		s.logger.Warn("questionnaire columns missing from sheet",
			zap.String("sheet", req.Sheet),
			zap.Strings("columns", missing))
	}

	ds := survey.ComputeDistributions(rows, strategy, s.scale)
	return s.build(ctx, report.CampusRep, req, ds, q.Comments(rows))
}

// ListSheets returns the sheet names of a spreadsheet.
func (s *ReportService) ListSheets(ctx context.Context, sourceID string) ([]string, error) {
	if strings.TrimSpace(sourceID) == "" {
		return nil, fmt.Errorf("%w: source id is required", ErrInvalidRequest)
	}

	fetchCtx, cancel := context.WithTimeout(ctx, fetchTimeout)
	defer cancel()

	names, err := s.source.SheetNames(fetchCtx, sourceID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSourceUnavailable, err)
	}
	return names, nil
}

// ListSubjects returns the subjects a report can be generated for: distinct
// identity values for campus reps, distinct name parts of "<name> - <metric>"
// columns for staff.
func (s *ReportService) ListSubjects(ctx context.Context, variant report.Variant, sourceID, sheet string) ([]string, error) {
	if !variant.Valid() {
		return nil, fmt.Errorf("%w: unknown report type %q", ErrInvalidRequest, variant)
	}
	if strings.TrimSpace(sourceID) == "" || strings.TrimSpace(sheet) == "" {
		return nil, fmt.Errorf("%w: source id and sheet are required", ErrInvalidRequest)
	}

	table, err := s.fetchTable(ctx, sourceID, sheet)
	if err != nil {
		return nil, err
	}

	if variant == report.CampusRep {
		return table.Distinct(s.questionnaire.IdentityColumn), nil
	}
	return survey.StaffSubjects(survey.NormalizeHeaders(table.Headers)), nil
}

// History returns up to limit recorded reports, newest first.
func (s *ReportService) History(ctx context.Context, limit int) ([]models.ReportRecord, error) {
	if s.history == nil {
		return nil, nil
	}

	dbCtx, cancel := context.WithTimeout(ctx, historyTimeout)
	defer cancel()

	recs, err := s.history.Recent(dbCtx, limit)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrReportFailure, err)
	}
	return recs, nil
}

func validate(req Request) error {
	var missing []string
	if strings.TrimSpace(req.SourceID) == "" {
		missing = append(missing, "source id")
	}
	if strings.TrimSpace(req.Sheet) == "" {
		missing = append(missing, "sheet")
	}
	if strings.TrimSpace(req.Subject) == "" {
		missing = append(missing, "subject")
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %s required", ErrInvalidRequest, strings.Join(missing, ", "))
	}
	return nil
}

func (s *ReportService) fetchTable(ctx context.Context, sourceID, sheet string) (*survey.Table, error) {
	fetchCtx, cancel := context.WithTimeout(ctx, fetchTimeout)
	defer cancel()

	grid, err := s.source.Values(fetchCtx, sourceID, sheet)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSourceUnavailable, err)
	}

	table := survey.NewTable(grid)
	if table.Len() == 0 {
		return nil, fmt.Errorf("%w: sheet %q", ErrNoDataFound, sheet)
	}
	return table, nil
}

func (s *ReportService) build(
	ctx context.Context,
	variant report.Variant,
	req Request,
	ds survey.Distributions,
	comments []string,
) (Result, error) {
	png, err := s.renderer.Render(req.Subject, variant.AxisLabel(), ds)
	if err != nil {
		return Result{}, fmt.Errorf("%w: %v", ErrReportFailure, err)
	}

	rep, err := report.Assemble(report.Input{
		Variant:       variant,
		Subject:       req.Subject,
		Scale:         s.scale,
		Distributions: ds,
		Comments:      comments,
		Chart:         png,
	})
	if err != nil {
		return Result{}, fmt.Errorf("%w: %v", ErrReportFailure, err)
	}

	path, err := s.writer.Save(rep)
	if err != nil {
		return Result{}, fmt.Errorf("%w: %v", ErrReportFailure, err)
	}

	s.logger.Info("report generated",
		zap.String("variant", string(variant)),
		zap.String("subject", req.Subject),
		zap.String("sheet", req.Sheet),
		zap.Int("metrics", rep.Metrics),
		zap.Int("responses", rep.Responses),
		zap.Int("comments", len(rep.Comments)),
		zap.String("path", path))

	res := Result{Report: rep, Path: path}
	res.Record = s.record(ctx, variant, req, rep, path)
	return res, nil
}

// record stores the history entry. The document is already on disk, so a
// failure is only logged.
func (s *ReportService) record(ctx context.Context, variant report.Variant, req Request, rep *report.Report, path string) models.ReportRecord {
	if s.history == nil {
		return models.ReportRecord{}
	}

	dbCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), historyTimeout)
	defer cancel()

	rec, err := s.history.Record(dbCtx, models.ReportRecord{
		Variant:   string(variant),
		Subject:   req.Subject,
		SourceID:  req.SourceID,
		Sheet:     req.Sheet,
		Path:      path,
		Metrics:   rep.Metrics,
		Responses: rep.Responses,
	})
	if err != nil {
		s.logger.Warn("failed to record report history",
			zap.String("subject", req.Subject),
			zap.Error(err))
		return models.ReportRecord{}
	}
	return rec
}
