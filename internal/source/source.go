// Package source defines where survey grids come from. A grid is a slice of
// rows of cell text whose first row holds the column headers.
package source

import (
	"context"
	"errors"
)

var (
	ErrSheetNotFound = errors.New("sheet not found")
)

// Source lists and reads sheets of a spreadsheet identified by sourceID. The
// meaning of sourceID depends on the implementation: a Google spreadsheet id,
// or a path to a local workbook.
type Source interface {
	SheetNames(ctx context.Context, sourceID string) ([]string, error)
	Values(ctx context.Context, sourceID, sheet string) ([][]string, error)
}
