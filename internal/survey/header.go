package survey

import (
	"regexp"
	"strings"
)

// MetricSeparator joins a subject name and a metric in a normalized header.
const MetricSeparator = " - "

var bracketHeader = regexp.MustCompile(`^(.*?)\s*\[(.*?)\]`)

// NormalizeHeader rewrites "Name [Category]" into "Name - Category". Labels
// without an opening bracket followed by a closing one are returned unchanged.
func NormalizeHeader(label string) string {
	m := bracketHeader.FindStringSubmatch(label)
	if m == nil {
		return label
	}
	return strings.TrimSpace(m[1]) + MetricSeparator + strings.TrimSpace(m[2])
}

// NormalizeHeaders applies NormalizeHeader to every label, keeping order and length.
func NormalizeHeaders(labels []string) []string {
	out := make([]string, len(labels))
	for i, l := range labels {
		out[i] = NormalizeHeader(l)
	}
	return out
}

// MetricName returns the text after the last separator of a normalized label,
// or the whole label when it has none.
func MetricName(label string) string {
	if i := strings.LastIndex(label, MetricSeparator); i >= 0 {
		return label[i+len(MetricSeparator):]
	}
	return label
}

// SubjectName returns the text before the last separator of a normalized
// label and whether the label had one.
func SubjectName(label string) (string, bool) {
	i := strings.LastIndex(label, MetricSeparator)
	if i < 0 {
		return "", false
	}
	return label[:i], true
}
