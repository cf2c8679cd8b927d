package service

import (
	"github.com/godilite/likert-reports/internal/report"
	"github.com/godilite/likert-reports/internal/repository/models"
)

// Request names one report: which spreadsheet, which sheet, which subject.
type Request struct {
	SourceID string
	Sheet    string
	Subject  string
}

// Result is a generated report and where it was written.
type Result struct {
	Report *report.Report
	Path   string
	// Record is the history entry; its ID is empty when recording failed or
	// history is disabled.
	Record models.ReportRecord
}
