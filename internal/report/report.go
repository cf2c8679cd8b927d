// Package report assembles survey distributions, a chart and comments into a
// report and persists it as a .docx document.
package report

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/godilite/likert-reports/internal/survey"
)

const (
	Caption         = "Figure 1: Likert Scale Response Count Distribution"
	SummaryHeading  = "Response Summary"
	CommentsHeading = "Comments"
	NoComments      = "No comments available."

	headerFill = "DDDDDD"
	headerSize = 10 // points
	chartWidth = 6.5 // inches
)

var (
	ErrInvalidInput = errors.New("invalid report input")
)

// Input is everything a report is built from.
type Input struct {
	Variant       Variant
	Subject       string
	Scale         survey.Scale
	Distributions survey.Distributions
	Comments      []string
	Chart         []byte
}

// Report is an assembled report. It is not modified after Assemble.
type Report struct {
	Variant  Variant
	Subject  string
	Title    string
	Chart    []byte
	Table    [][]string
	Comments []string

	Metrics   int
	Responses int
}

// Assemble validates the input and lays out the summary table: a header row
// (label column plus the scale in order) followed by one row per metric.
// Counts are always written, zero included.
func Assemble(in Input) (*Report, error) {
	if !in.Variant.Valid() {
		return nil, fmt.Errorf("%w: unknown variant %q", ErrInvalidInput, in.Variant)
	}
	if strings.TrimSpace(in.Subject) == "" {
		return nil, fmt.Errorf("%w: empty subject", ErrInvalidInput)
	}
	if len(in.Scale) == 0 {
		return nil, fmt.Errorf("%w: empty scale", ErrInvalidInput)
	}
	if len(in.Distributions) == 0 {
		return nil, fmt.Errorf("%w: no metrics", ErrInvalidInput)
	}
	if len(in.Chart) == 0 {
		return nil, fmt.Errorf("%w: missing chart", ErrInvalidInput)
	}

	table := make([][]string, 0, len(in.Distributions)+1)
	table = append(table, append([]string{in.Variant.LabelHeader()}, in.Scale.Labels()...))
	for _, d := range in.Distributions {
		row := make([]string, 0, len(in.Scale)+1)
		row = append(row, d.Metric)
		for _, c := range d.Counts.Counts(in.Scale) {
			row = append(row, strconv.Itoa(c))
		}
		table = append(table, row)
	}

	var comments []string
	if in.Variant.HasComments() {
		for _, c := range in.Comments {
			if c = strings.TrimSpace(c); c != "" {
				comments = append(comments, c)
			}
		}
	}

	return &Report{
		Variant:   in.Variant,
		Subject:   in.Subject,
		Title:     in.Variant.Title(in.Subject),
		Chart:     in.Chart,
		Table:     table,
		Comments:  comments,
		Metrics:   len(in.Distributions),
		Responses: in.Distributions.Responses(),
	}, nil
}

// FileName is the output file name of the report.
func (r *Report) FileName() string {
	return FileName(r.Variant, r.Subject)
}
