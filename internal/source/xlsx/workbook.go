// Package xlsx reads survey grids from local .xlsx workbooks.
package xlsx

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/xuri/excelize/v2"

	"github.com/godilite/likert-reports/internal/source"
)

// Workbook resolves relative source ids against Dir.
type Workbook struct {
	Dir string
}

func New(dir string) *Workbook {
	return &Workbook{Dir: dir}
}

func (w *Workbook) path(sourceID string) string {
	if filepath.IsAbs(sourceID) || w.Dir == "" {
		return sourceID
	}
	return filepath.Join(w.Dir, sourceID)
}

func (w *Workbook) open(ctx context.Context, sourceID string) (*excelize.File, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	f, err := excelize.OpenFile(w.path(sourceID))
	if err != nil {
		return nil, fmt.Errorf("open workbook %s: %w", sourceID, err)
	}
	return f, nil
}

func (w *Workbook) SheetNames(ctx context.Context, sourceID string) ([]string, error) {
	f, err := w.open(ctx, sourceID)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return f.GetSheetList(), nil
}

func (w *Workbook) Values(ctx context.Context, sourceID, sheet string) ([][]string, error) {
	f, err := w.open(ctx, sourceID)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	rows, err := f.GetRows(sheet)
	if err != nil {
		var notExist excelize.ErrSheetNotExist
		if errors.As(err, &notExist) {
			return nil, fmt.Errorf("%w: %s", source.ErrSheetNotFound, sheet)
		}
		return nil, fmt.Errorf("read sheet %s: %w", sheet, err)
	}
	return rows, nil
}
