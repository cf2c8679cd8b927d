package survey

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func staffTable() *Table {
	raw := NewTable([][]string{
		{"Timestamp", "Alice [Communication]", "Alice [Punctuality]", "Bob [Communication]"},
		{"t1", "Strongly Agree", "Neutral", "Agree"},
		{"t2", "Agree", "", "Disagree"},
		{"t3", "Strongly Agree", "n/a", "Agree"},
	})
	return raw.WithHeaders(NormalizeHeaders(raw.Headers))
}

func TestComputeDistributions_SubjectColumns(t *testing.T) {
	tbl := staffTable()

	assert.Equal(t, []string{"Timestamp", "Alice - Communication", "Alice - Punctuality", "Bob - Communication"}, tbl.Headers)

	got := ComputeDistributions(tbl, SubjectColumns{Subject: "Alice"}, LikertScale)

	want := Distributions{
		{Metric: "Communication", Counts: Distribution{StronglyAgree: 2, Agree: 1, Neutral: 0, Disagree: 0, StronglyDisagree: 0}},
		{Metric: "Punctuality", Counts: Distribution{StronglyAgree: 0, Agree: 0, Neutral: 1, Disagree: 0, StronglyDisagree: 0}},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("distributions mismatch (-want +got):\n%s", diff)
	}
}

func TestComputeDistributions_NoMatchingSubject(t *testing.T) {
	got := ComputeDistributions(staffTable(), SubjectColumns{Subject: "Jordan"}, LikertScale)
	assert.Empty(t, got)

	got = ComputeDistributions(staffTable(), SubjectColumns{}, LikertScale)
	assert.Empty(t, got)

	got = ComputeDistributions(NewTable(nil), SubjectColumns{Subject: "Alice"}, LikertScale)
	assert.Empty(t, got)
}

func TestComputeDistributions_StrictMatch(t *testing.T) {
	tbl := NewTable([][]string{
		{"Alice - Communication"},
		{" agree "},
		{"  Agree  "},
		{"AGREE"},
		{"Agree."},
	})

	got := ComputeDistributions(tbl, SubjectColumns{Subject: "Alice"}, LikertScale)

	require.Len(t, got, 1)
	assert.Equal(t, 1, got[0].Counts[Agree], "only the trimmed exact match counts")
	assert.Equal(t, 1, got[0].Counts.Total())
}

func TestComputeDistributions_TotalsEqualValidResponses(t *testing.T) {
	cells := []string{"Agree", "Neutral", "", "junk", "Strongly Disagree", " Disagree", "Strongly Agree", "agree"}
	grid := [][]string{{"Q"}}
	for _, c := range cells {
		grid = append(grid, []string{c})
	}
	tbl := NewTable(grid)

	got := ComputeDistributions(tbl, FixedQuestions{Questions: []Question{{Column: "Q", Label: "Question"}}}, LikertScale)

	require.Len(t, got, 1)
	valid := 0
	for _, c := range cells {
		if _, ok := LikertScale.Match(c); ok {
			valid++
		}
	}
	assert.Equal(t, 5, valid)
	assert.Equal(t, valid, got[0].Counts.Total())
	assert.Len(t, got[0].Counts, len(LikertScale), "every scale value is present")
}

func TestComputeDistributions_FixedQuestions(t *testing.T) {
	q := DefaultQuestionnaire()
	header := []string{"Timestamp", q.IdentityColumn}
	for _, question := range q.Questions[:4] {
		header = append(header, question.Column)
	}
	header = append(header, q.CommentsColumn)

	tbl := NewTable([][]string{
		header,
		{"t1", "Jordan", "Agree", "Agree", "Neutral", "Disagree", "Great support"},
		{"t2", "Casey", "Strongly Agree", "Agree", "Agree", "Agree", ""},
		{"t3", "Jordan", "Strongly Agree", "", "Neutral", "Strongly Disagree", "  "},
	})

	jordan := tbl.Filter(q.IdentityColumn, "Jordan")
	strategy := q.Strategy()
	got := ComputeDistributions(jordan, strategy, LikertScale)

	require.Len(t, got, len(q.Questions))
	assert.Equal(t, []string{
		"Accessible & Responsive",
		"Clear Communication",
		"Useful Reflection Sessions",
		"More Peer Reflection Time",
		"Good Resource",
	}, got.Metrics())

	first, ok := got.Get("Accessible & Responsive")
	require.True(t, ok)
	assert.Equal(t, []int{1, 1, 0, 0, 0}, first.Counts(LikertScale))

	missing, ok := got.Get("Good Resource")
	require.True(t, ok)
	assert.Equal(t, 0, missing.Total())
	assert.Equal(t, []string{q.Questions[4].Column}, strategy.Missing(tbl))

	assert.Equal(t, []string{"Great support"}, q.Comments(jordan))
	assert.Equal(t, 7, got.Responses())
}

func TestComputeDistributions_DuplicateMetricKeepsFirstPosition(t *testing.T) {
	tbl := NewTable([][]string{
		{"Ann - Teamwork", "Ann - Focus", "Anna - Teamwork"},
		{"Agree", "Agree", "Disagree"},
	})

	got := ComputeDistributions(tbl, SubjectColumns{Subject: "Ann"}, LikertScale)

	require.Len(t, got, 2)
	assert.Equal(t, []string{"Teamwork", "Focus"}, got.Metrics())
	assert.Equal(t, 1, got[0].Counts[Disagree])
	assert.Equal(t, 0, got[0].Counts[Agree])
}

func TestStaffSubjects(t *testing.T) {
	headers := []string{"Timestamp", "Alice - Communication", "Alice - Punctuality", "Bob - Communication", "Ann - Focus", "Anna - Focus"}

	assert.Equal(t, []string{"Alice", "Bob", "Ann", "Anna"}, StaffSubjects(headers))
	assert.Equal(t, []string{"Ann", "Anna"}, MatchedSubjects(headers, "Ann"))
	assert.Equal(t, []string{"Alice"}, MatchedSubjects(headers, "Alice"))
	assert.Empty(t, MatchedSubjects(headers, ""))
}

func TestComputeDistributions_BothStrategiesTrimCells(t *testing.T) {
	q := DefaultQuestionnaire()
	column := q.Questions[0].Column
	tbl := NewTable([][]string{
		{q.IdentityColumn, column, "Jordan [Teamwork]"},
		{"Jordan", " Agree", "Agree "},
		{"Jordan", "agree", " agree"},
	})

	fixed := ComputeDistributions(tbl, FixedQuestions{Questions: q.Questions[:1]}, LikertScale)
	byName := ComputeDistributions(tbl.WithHeaders(NormalizeHeaders(tbl.Headers)), SubjectColumns{Subject: "Jordan"}, LikertScale)

	want := []int{0, 1, 0, 0, 0}
	assert.Equal(t, want, fixed[0].Counts.Counts(LikertScale))
	require.Len(t, byName, 1)
	assert.Equal(t, want, byName[0].Counts.Counts(LikertScale))
}
