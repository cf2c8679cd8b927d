package grpc

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/godilite/likert-reports/internal/report"
	"github.com/godilite/likert-reports/internal/repository/models"
	"github.com/godilite/likert-reports/internal/service"
)

const (
	defaultGRPCTimeout = 60 * time.Second
	defaultReportLimit = 20
)

type GRPCHandlers struct {
	reports         ReportGenerator
	defaultSourceID string
	logger          *zap.Logger
}

var _ ReportServiceServer = (*GRPCHandlers)(nil)

// NewGRPCHandlers initializes the gRPC handlers. defaultSourceID is used when
// a request leaves source_id empty.
func NewGRPCHandlers(reports ReportGenerator, defaultSourceID string, logger *zap.Logger) *GRPCHandlers {
	if reports == nil {
		panic("nil ReportGenerator provided to NewGRPCHandlers")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &GRPCHandlers{
		reports:         reports,
		defaultSourceID: defaultSourceID,
		logger:          logger.Named("grpc-handler"),
	}
}

func stringField(in *structpb.Struct, name string) string {
	return strings.TrimSpace(in.GetFields()[name].GetStringValue())
}

func (s *GRPCHandlers) sourceID(in *structpb.Struct) (string, error) {
	id := stringField(in, "source_id")
	if id == "" {
		id = s.defaultSourceID
	}
	if id == "" {
		return "", status.Error(codes.InvalidArgument, "source_id is required")
	}
	return id, nil
}

func parseVariant(in *structpb.Struct) (report.Variant, error) {
	v, err := report.ParseVariant(stringField(in, "report_type"))
	if err != nil {
		return "", status.Error(codes.InvalidArgument, err.Error())
	}
	return v, nil
}

func (s *GRPCHandlers) handleError(ctx context.Context, op string, err error) error {
	switch ctx.Err() {
	case context.Canceled:
		s.logger.Warn("request canceled", zap.String("op", op))
		return status.Error(codes.Canceled, "request canceled")
	case context.DeadlineExceeded:
		s.logger.Warn("request timeout", zap.String("op", op))
		return status.Error(codes.DeadlineExceeded, "request timed out")
	}

	switch {
	case errors.Is(err, service.ErrInvalidRequest):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, service.ErrSubjectNotFound), errors.Is(err, service.ErrNoDataFound):
		s.logger.Info("nothing to report", zap.String("op", op), zap.Error(err))
		return status.Error(codes.NotFound, err.Error())
	case errors.Is(err, service.ErrSourceUnavailable):
		s.logger.Error("source unavailable", zap.String("op", op), zap.Error(err))
		return status.Error(codes.Unavailable, "spreadsheet source unavailable")
	default:
		s.logger.Error("unexpected error", zap.String("op", op), zap.Error(err))
		return status.Errorf(codes.Internal, "%s failed: %v", op, err)
	}
}

func (s *GRPCHandlers) ListSheets(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	id, err := s.sourceID(in)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultGRPCTimeout)
	defer cancel()

	names, err := s.reports.ListSheets(ctx, id)
	if err != nil {
		return nil, s.handleError(ctx, "ListSheets", err)
	}
	return newStruct(map[string]any{"sheets": stringList(names)})
}

func (s *GRPCHandlers) ListSubjects(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	variant, err := parseVariant(in)
	if err != nil {
		return nil, err
	}
	id, err := s.sourceID(in)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultGRPCTimeout)
	defer cancel()

	subjects, err := s.reports.ListSubjects(ctx, variant, id, stringField(in, "sheet"))
	if err != nil {
		return nil, s.handleError(ctx, "ListSubjects", err)
	}
	return newStruct(map[string]any{"subjects": stringList(subjects)})
}

func (s *GRPCHandlers) GenerateReport(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	variant, err := parseVariant(in)
	if err != nil {
		return nil, err
	}
	id, err := s.sourceID(in)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultGRPCTimeout)
	defer cancel()

	res, err := s.reports.Generate(ctx, variant, service.Request{
		SourceID: id,
		Sheet:    stringField(in, "sheet"),
		Subject:  stringField(in, "subject"),
	})
	if err != nil {
		return nil, s.handleError(ctx, "GenerateReport", err)
	}

	table := make([]any, len(res.Report.Table))
	for i, row := range res.Report.Table {
		table[i] = stringList(row)
	}
	return newStruct(map[string]any{
		"id":          res.Record.ID,
		"report_type": string(res.Report.Variant),
		"subject":     res.Report.Subject,
		"title":       res.Report.Title,
		"path":        res.Path,
		"metrics":     res.Report.Metrics,
		"responses":   res.Report.Responses,
		"table":       table,
		"comments":    stringList(res.Report.Comments),
	})
}

func (s *GRPCHandlers) ListReports(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	limit := int(in.GetFields()["limit"].GetNumberValue())
	if limit < 0 {
		return nil, status.Error(codes.InvalidArgument, "limit must not be negative")
	}
	if limit == 0 {
		limit = defaultReportLimit
	}

	ctx, cancel := context.WithTimeout(ctx, defaultGRPCTimeout)
	defer cancel()

	recs, err := s.reports.History(ctx, limit)
	if err != nil {
		return nil, s.handleError(ctx, "ListReports", err)
	}

	out := make([]any, len(recs))
	for i, rec := range recs {
		out[i] = recordMap(rec)
	}
	return newStruct(map[string]any{"reports": out})
}

func recordMap(rec models.ReportRecord) map[string]any {
	return map[string]any{
		"id":           rec.ID,
		"report_type":  rec.Variant,
		"subject":      rec.Subject,
		"source_id":    rec.SourceID,
		"sheet":        rec.Sheet,
		"path":         rec.Path,
		"metrics":      rec.Metrics,
		"responses":    rec.Responses,
		"generated_at": rec.GeneratedAt.UTC().Format(time.RFC3339),
	}
}

func stringList(ss []string) []any {
	out := make([]any, len(ss))
	for i, s := range ss {
		out[i] = s
	}
	return out
}

func newStruct(m map[string]any) (*structpb.Struct, error) {
	st, err := structpb.NewStruct(m)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "encode response: %v", err)
	}
	return st, nil
}
