package survey

import "strings"

// Questionnaire describes the fixed-question survey shape: one row per
// respondent, the subject named in IdentityColumn and free text in
// CommentsColumn.
type Questionnaire struct {
	IdentityColumn string     `toml:"identity_column"`
	CommentsColumn string     `toml:"comments_column"`
	Questions      []Question `toml:"questions"`
}

const campusRepPrompt = "For each statement below, please select the option that best represents your opinion"

// DefaultQuestionnaire is the campus representative evaluation form.
func DefaultQuestionnaire() Questionnaire {
	q := func(statement, label string) Question {
		return Question{Column: campusRepPrompt + " [" + statement + "]", Label: label}
	}
	return Questionnaire{
		IdentityColumn: "Name of Campus Representative",
		CommentsColumn: "Comments on Campus Representative Support",
		Questions: []Question{
			q("My Campus Rep is accessible, respectful, and responsive to my needs for support.", "Accessible & Responsive"),
			q("I have received regular, clear communication from my Campus Rep.", "Clear Communication"),
			q("Reflection sessions (during Saturday trainings, as well as on-campus) with my Campus Rep have been useful.", "Useful Reflection Sessions"),
			q("I would have liked more time to reflect upon my JusticeCorps experiences with my peers.", "More Peer Reflection Time"),
			q("My Campus Rep has been a good resource.", "Good Resource"),
		},
	}
}

// Strategy returns the selector strategy for the questionnaire's questions.
func (q Questionnaire) Strategy() FixedQuestions {
	return FixedQuestions{Questions: q.Questions}
}

// Comments returns the non-blank comments of t in row order.
func (q Questionnaire) Comments(t *Table) []string {
	var out []string
	for _, c := range t.Values(q.CommentsColumn) {
		if strings.TrimSpace(c) != "" {
			out = append(out, c)
		}
	}
	return out
}
