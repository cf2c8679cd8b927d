// Package sheets reads survey grids from Google Sheets.
package sheets

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"google.golang.org/api/option"
	gsheets "google.golang.org/api/sheets/v4"
)

// CellRange is the A1 range read from every sheet.
const CellRange = "A1:AAA1000"

type Client struct {
	svc    *gsheets.Service
	logger *zap.Logger
}

// New creates a read-only Sheets client. Callers pass credentials through
// opts, e.g. option.WithCredentialsFile.
func New(ctx context.Context, logger *zap.Logger, opts ...option.ClientOption) (*Client, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	opts = append([]option.ClientOption{option.WithScopes(gsheets.SpreadsheetsReadonlyScope)}, opts...)
	svc, err := gsheets.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("create sheets service: %w", err)
	}
	return &Client{svc: svc, logger: logger.Named("sheets")}, nil
}

// NewFromCredentialsFile authenticates with a service account key file.
func NewFromCredentialsFile(ctx context.Context, path string, logger *zap.Logger) (*Client, error) {
	return New(ctx, logger, option.WithCredentialsFile(path))
}

func (c *Client) SheetNames(ctx context.Context, spreadsheetID string) ([]string, error) {
	ss, err := c.svc.Spreadsheets.Get(spreadsheetID).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("get spreadsheet %s: %w", spreadsheetID, err)
	}

	names := make([]string, 0, len(ss.Sheets))
	for _, s := range ss.Sheets {
		if s.Properties != nil {
			names = append(names, s.Properties.Title)
		}
	}
	return names, nil
}

func (c *Client) Values(ctx context.Context, spreadsheetID, sheet string) ([][]string, error) {
	rng := fmt.Sprintf("'%s'!%s", sheet, CellRange)
	resp, err := c.svc.Spreadsheets.Values.Get(spreadsheetID, rng).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("read %s of %s: %w", rng, spreadsheetID, err)
	}

	grid := make([][]string, len(resp.Values))
	for i, row := range resp.Values {
		cells := make([]string, len(row))
		for j, v := range row {
			if v != nil {
				cells[j] = fmt.Sprint(v)
			}
		}
		grid[i] = cells
	}

	c.logger.Debug("sheet read",
		zap.String("spreadsheet_id", spreadsheetID),
		zap.String("sheet", sheet),
		zap.Int("rows", len(grid)))
	return grid, nil
}
