package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/godilite/likert-reports/internal/repository/models"
)

var ErrRecordNotFound = errors.New("report record not found")

// timeLayout is fixed width so that text ordering matches time ordering on
// every driver.
const timeLayout = "2006-01-02T15:04:05.000000000Z"

// ReportRepository stores the report history. Queries use $n placeholders,
// accepted by both sqlite3 and pgx.
type ReportRepository struct {
	db *sql.DB
}

func NewReportRepository(db *sql.DB) *ReportRepository {
	return &ReportRepository{db: db}
}

// EnsureSchema creates the history table and index if they do not exist.
func (r *ReportRepository) EnsureSchema(ctx context.Context) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS report_history (
			id TEXT PRIMARY KEY,
			variant TEXT NOT NULL,
			subject TEXT NOT NULL,
			source_id TEXT NOT NULL,
			sheet TEXT NOT NULL,
			path TEXT NOT NULL,
			metrics INTEGER NOT NULL,
			responses INTEGER NOT NULL,
			generated_at TEXT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_report_history_subject
			ON report_history (variant, subject, generated_at)`,
	}
	for _, stmt := range stmts {
		if _, err := r.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return nil
}

// Record inserts rec, assigning an id and timestamp when they are unset.
func (r *ReportRepository) Record(ctx context.Context, rec models.ReportRecord) (models.ReportRecord, error) {
	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}
	if rec.GeneratedAt.IsZero() {
		rec.GeneratedAt = time.Now()
	}
	rec.GeneratedAt = rec.GeneratedAt.UTC()

	const query = `
		INSERT INTO report_history
			(id, variant, subject, source_id, sheet, path, metrics, responses, generated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
	_, err := r.db.ExecContext(ctx, query,
		rec.ID, rec.Variant, rec.Subject, rec.SourceID, rec.Sheet, rec.Path,
		rec.Metrics, rec.Responses, rec.GeneratedAt.Format(timeLayout))
	if err != nil {
		return models.ReportRecord{}, fmt.Errorf("insert report record: %w", err)
	}
	return rec, nil
}

// Recent returns up to limit records, newest first.
func (r *ReportRepository) Recent(ctx context.Context, limit int) ([]models.ReportRecord, error) {
	if limit <= 0 {
		limit = 20
	}

	const query = `
		SELECT id, variant, subject, source_id, sheet, path, metrics, responses, generated_at
		FROM report_history
		ORDER BY generated_at DESC, id
		LIMIT $1
	`
	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("query Recent: %w", err)
	}
	defer rows.Close()

	var out []models.ReportRecord
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("scan Recent: %w", err)
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate Recent: %w", err)
	}
	return out, nil
}

// LatestForSubject returns the newest record for a variant and subject.
func (r *ReportRepository) LatestForSubject(ctx context.Context, variant, subject string) (models.ReportRecord, error) {
	const query = `
		SELECT id, variant, subject, source_id, sheet, path, metrics, responses, generated_at
		FROM report_history
		WHERE variant = $1 AND subject = $2
		ORDER BY generated_at DESC
		LIMIT 1
	`
	rec, err := scanRecord(r.db.QueryRowContext(ctx, query, variant, subject))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.ReportRecord{}, ErrRecordNotFound
		}
		return models.ReportRecord{}, fmt.Errorf("query LatestForSubject: %w", err)
	}
	return rec, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRecord(s scanner) (models.ReportRecord, error) {
	var rec models.ReportRecord
	var generatedAt string
	err := s.Scan(&rec.ID, &rec.Variant, &rec.Subject, &rec.SourceID, &rec.Sheet, &rec.Path,
		&rec.Metrics, &rec.Responses, &generatedAt)
	if err != nil {
		return models.ReportRecord{}, err
	}
	rec.GeneratedAt, err = time.Parse(timeLayout, generatedAt)
	if err != nil {
		return models.ReportRecord{}, fmt.Errorf("parse generated_at %q: %w", generatedAt, err)
	}
	return rec, nil
}
