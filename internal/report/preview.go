package report

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

var markdown = goldmark.New(goldmark.WithExtensions(extension.Table))

// Markdown renders the report text (everything but the chart) as Markdown.
func (r *Report) Markdown() string {
	var sb strings.Builder
	sb.WriteString("# " + r.Title + "\n\n")
	sb.WriteString("*" + Caption + "*\n\n")
	sb.WriteString("## " + SummaryHeading + "\n\n")

	for i, row := range r.Table {
		cells := make([]string, len(row))
		for j, c := range row {
			cells[j] = escapeCell(c)
		}
		sb.WriteString("| " + strings.Join(cells, " | ") + " |\n")
		if i == 0 {
			sb.WriteString("|" + strings.Repeat(" :---: |", len(row)) + "\n")
		}
	}

	if r.Variant.HasComments() {
		sb.WriteString("\n## " + CommentsHeading + "\n\n")
		if len(r.Comments) == 0 {
			sb.WriteString(NoComments + "\n")
		}
		for _, c := range r.Comments {
			sb.WriteString("- " + strings.ReplaceAll(c, "\n", " ") + "\n")
		}
	}
	return sb.String()
}

// HTML converts Markdown to an HTML fragment.
func (r *Report) HTML() (string, error) {
	var buf bytes.Buffer
	if err := markdown.Convert([]byte(r.Markdown()), &buf); err != nil {
		return "", fmt.Errorf("render html preview: %w", err)
	}
	return buf.String(), nil
}

func escapeCell(s string) string {
	s = strings.ReplaceAll(s, "|", `\|`)
	return strings.ReplaceAll(s, "\n", " ")
}
