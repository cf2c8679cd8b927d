package app

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"go.uber.org/zap"
	"google.golang.org/grpc"

	"github.com/godilite/likert-reports/internal/chart"
	"github.com/godilite/likert-reports/internal/config"
	handler "github.com/godilite/likert-reports/internal/grpc"
	"github.com/godilite/likert-reports/internal/report"
	"github.com/godilite/likert-reports/internal/repository"
	"github.com/godilite/likert-reports/internal/service"
	"github.com/godilite/likert-reports/internal/source"
	"github.com/godilite/likert-reports/internal/source/csvfile"
	"github.com/godilite/likert-reports/internal/source/sheets"
	"github.com/godilite/likert-reports/internal/source/xlsx"
	"github.com/godilite/likert-reports/internal/survey"
	"github.com/godilite/likert-reports/pkg/cache"
	dbbuilder "github.com/godilite/likert-reports/pkg/database"
	grpcsrv "github.com/godilite/likert-reports/pkg/grpc/server"
)

type App struct {
	cfg     *config.Config
	logger  *zap.Logger
	dbPool  *sql.DB
	cache   *cache.Cache
	reports *service.ReportService
}

// NewApp wires the report service: sheet source (optionally cached in
// redis), chart renderer, report writer and history registry.
func NewApp(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*App, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	if cfg.DBDriver == dbbuilder.DriverSQLite {
		if err := os.MkdirAll(filepath.Dir(cfg.DBPath), 0o755); err != nil {
			return nil, fmt.Errorf("database dir: %w", err)
		}
	}
	dbPool, err := dbbuilder.New(ctx,
		dbbuilder.WithDriver(cfg.DBDriver),
		dbbuilder.WithDataSource(cfg.DBPath),
	)
	if err != nil {
		return nil, fmt.Errorf("database init failed: %w", err)
	}
	history := repository.NewReportRepository(dbPool)
	if err := history.EnsureSchema(ctx); err != nil {
		dbPool.Close()
		return nil, fmt.Errorf("database init failed: %w", err)
	}
	logger.Info("Report history initialized", zap.String("driver", cfg.DBDriver))

	a := &App{cfg: cfg, logger: logger, dbPool: dbPool}

	src, err := a.newSource(ctx)
	if err != nil {
		a.Close()
		return nil, err
	}

	questionnaire, err := config.LoadQuestionnaire(cfg.QuestionnaireFile)
	if err != nil {
		a.Close()
		return nil, err
	}

	a.reports = service.NewReportService(
		src,
		chart.NewRenderer(survey.LikertScale, chart.DefaultOptions()),
		report.NewWriter(cfg.ReportsDir),
		history,
		questionnaire,
		logger,
	)
	return a, nil
}

func (a *App) newSource(ctx context.Context) (service.SheetSource, error) {
	var src source.Source
	switch a.cfg.SourceKind {
	case config.SourceXLSX:
		src = xlsx.New(a.cfg.SourceDir)
	case config.SourceCSV:
		src = csvfile.New(a.cfg.SourceDir)
	default:
		client, err := sheets.NewFromCredentialsFile(ctx, a.cfg.CredentialsFile, a.logger)
		if err != nil {
			return nil, fmt.Errorf("sheets client init failed: %w", err)
		}
		src = client
	}
	a.logger.Info("Sheet source initialized", zap.String("kind", a.cfg.SourceKind))

	if a.cfg.RedisAddr == "" {
		return src, nil
	}
	cacheClient, err := cache.New(ctx, cache.WithAddress(a.cfg.RedisAddr))
	if err != nil {
		a.logger.Warn("cache unavailable, reading sheets directly", zap.Error(err))
		return src, nil
	}
	a.cache = cacheClient
	a.logger.Info("Cache client initialized", zap.String("addr", a.cfg.RedisAddr))
	return source.NewCached(src, cacheClient, a.cfg.SourceKind, a.cfg.CacheTTL, a.logger), nil
}

// Reports returns the report service.
func (a *App) Reports() *service.ReportService {
	return a.reports
}

// DefaultSourceID returns the remembered source id.
func (a *App) DefaultSourceID() string {
	return config.LoadPreferences(a.cfg.PreferencesFile).SpreadsheetID
}

// Run serves the gRPC API and blocks until a shutdown signal is received.
func (a *App) Run() error {
	grpcServer, err := grpcsrv.New(
		grpcsrv.WithPort(a.cfg.GRPCPort),
		grpcsrv.WithLogger(a.logger),
		grpcsrv.WithReflection(a.cfg.GRPCReflectionEnabled),
		grpcsrv.WithLogging(true),
	)
	if err != nil {
		return fmt.Errorf("failed to create gRPC server: %w", err)
	}

	grpcHandlers := handler.NewGRPCHandlers(a.reports, a.DefaultSourceID(), a.logger)
	grpcServer.RegisterServiceWithHealth(handler.ServiceName, func(s *grpc.Server) {
		handler.RegisterReportServiceServer(s, grpcHandlers)
	})

	a.logger.Info("application starting")
	grpcServer.Start()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	a.logger.Info("application shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := grpcServer.Shutdown(ctx); err != nil {
		a.logger.Warn("shutdown completed but deadline exceeded", zap.Error(err))
	} else {
		a.logger.Info("graceful shutdown completed successfully")
	}

	return a.Close()
}

// Close releases the cache and database connections.
func (a *App) Close() error {
	if a.cache != nil {
		if err := a.cache.Close(); err != nil {
			a.logger.Error("cache shutdown error", zap.Error(err))
		}
	}
	if a.dbPool != nil {
		if err := a.dbPool.Close(); err != nil {
			a.logger.Error("database shutdown error", zap.Error(err))
			return err
		}
	}
	return nil
}
