package service

import (
	"context"
	"errors"
	"strings"
)

var (
	ErrInvalidRequest    = errors.New("invalid request")
	ErrSourceUnavailable = errors.New("source unavailable")
	ErrNoDataFound       = errors.New("no data found")
	ErrSubjectNotFound   = errors.New("subject not found")
	ErrReportFailure     = errors.New("report generation failed")
)

// Describe turns an error returned by ReportService into a message for the
// person operating the tool.
func Describe(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, context.Canceled):
		return "Cancelled."
	case errors.Is(err, context.DeadlineExceeded):
		return "Timed out while talking to the data source. Please try again."
	case errors.Is(err, ErrInvalidRequest):
		return "Please check the request: " + strings.TrimPrefix(err.Error(), ErrInvalidRequest.Error()+": ")
	case errors.Is(err, ErrSourceUnavailable):
		return "Could not read the spreadsheet. Check the spreadsheet id, the sheet name and the credentials."
	case errors.Is(err, ErrNoDataFound):
		return "No data found in the selected sheet."
	case errors.Is(err, ErrSubjectNotFound):
		return "No responses found for the selected subject."
	default:
		return "Report generation failed: " + err.Error()
	}
}
