package survey

import "strings"

// Selector binds a metric to the table column holding its responses.
type Selector struct {
	Metric string
	Column int
}

// SelectorStrategy decides which columns of a table feed which metrics.
type SelectorStrategy interface {
	Select(t *Table) []Selector
}

// SubjectColumns selects every column whose normalized label contains Subject.
// The metric name is the text after the last " - " of the label.
type SubjectColumns struct {
	Subject string
}

func (s SubjectColumns) Select(t *Table) []Selector {
	if s.Subject == "" {
		return nil
	}
	var out []Selector
	for i, h := range t.Headers {
		if strings.Contains(h, s.Subject) {
			out = append(out, Selector{Metric: MetricName(h), Column: i})
		}
	}
	return out
}

// Question is a predefined questionnaire column and its human-readable label.
type Question struct {
	Column string `toml:"column"`
	Label  string `toml:"label"`
}

// FixedQuestions selects the predefined questions in order. A question whose
// column is absent still yields a metric, with Column set to -1.
type FixedQuestions struct {
	Questions []Question
}

func (f FixedQuestions) Select(t *Table) []Selector {
	out := make([]Selector, 0, len(f.Questions))
	for _, q := range f.Questions {
		label := q.Label
		if label == "" {
			label = q.Column
		}
		out = append(out, Selector{Metric: label, Column: t.ColumnIndex(q.Column)})
	}
	return out
}

// Missing returns the question columns absent from t.
func (f FixedQuestions) Missing(t *Table) []string {
	var out []string
	for _, q := range f.Questions {
		if t.ColumnIndex(q.Column) < 0 {
			out = append(out, q.Column)
		}
	}
	return out
}

// ComputeDistributions counts, for every selected column, the cells matching a
// scale value. Cells matching no value are skipped. Metrics keep the order of
// their first selector; when two selectors share a metric name the later
// column's counts replace the earlier ones. No selected column yields an empty
// result.
func ComputeDistributions(t *Table, strategy SelectorStrategy, scale Scale) Distributions {
	var out Distributions
	index := make(map[string]int)

	for _, sel := range strategy.Select(t) {
		counts := NewDistribution(scale)
		for _, cell := range t.Column(sel.Column) {
			if r, ok := scale.Match(cell); ok {
				counts[r]++
			}
		}

		if i, ok := index[sel.Metric]; ok {
			out[i].Counts = counts
			continue
		}
		index[sel.Metric] = len(out)
		out = append(out, MetricDistribution{Metric: sel.Metric, Counts: counts})
	}
	return out
}

// StaffSubjects returns the distinct subject names found in normalized
// "Name - Metric" labels, in column order.
func StaffSubjects(headers []string) []string {
	var out []string
	seen := make(map[string]bool)
	for _, h := range headers {
		name, ok := SubjectName(h)
		if !ok || name == "" || seen[name] {
			continue
		}
		seen[name] = true
		out = append(out, name)
	}
	return out
}

// MatchedSubjects returns the distinct subject names of the labels that
// contain subject. More than one name means the substring is ambiguous.
func MatchedSubjects(headers []string, subject string) []string {
	var matched []string
	for _, h := range headers {
		if subject != "" && strings.Contains(h, subject) {
			matched = append(matched, h)
		}
	}
	return StaffSubjects(matched)
}
