// Package csvfile reads a survey grid from a local CSV export. A CSV file has
// a single sheet named after the file.
package csvfile

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/godilite/likert-reports/internal/source"
)

type Reader struct {
	Dir string
}

func New(dir string) *Reader {
	return &Reader{Dir: dir}
}

// SheetName is the single sheet name of the file at sourceID.
func SheetName(sourceID string) string {
	base := filepath.Base(sourceID)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

func (r *Reader) path(sourceID string) string {
	if filepath.IsAbs(sourceID) || r.Dir == "" {
		return sourceID
	}
	return filepath.Join(r.Dir, sourceID)
}

func (r *Reader) SheetNames(ctx context.Context, sourceID string) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if _, err := os.Stat(r.path(sourceID)); err != nil {
		return nil, fmt.Errorf("open csv %s: %w", sourceID, err)
	}
	return []string{SheetName(sourceID)}, nil
}

func (r *Reader) Values(ctx context.Context, sourceID, sheet string) ([][]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if sheet != SheetName(sourceID) {
		return nil, fmt.Errorf("%w: %s", source.ErrSheetNotFound, sheet)
	}

	f, err := os.Open(r.path(sourceID))
	if err != nil {
		return nil, fmt.Errorf("open csv %s: %w", sourceID, err)
	}
	defer f.Close()

	cr := csv.NewReader(f)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true
	rows, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse csv %s: %w", sourceID, err)
	}
	if len(rows) > 0 && len(rows[0]) > 0 {
		rows[0][0] = strings.TrimPrefix(rows[0][0], "\ufeff")
	}
	return rows, nil
}
