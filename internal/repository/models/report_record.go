package models

import "time"

// ReportRecord is one generated report in the history registry.
type ReportRecord struct {
	ID          string
	Variant     string
	Subject     string
	SourceID    string
	Sheet       string
	Path        string
	Metrics     int
	Responses   int
	GeneratedAt time.Time
}
