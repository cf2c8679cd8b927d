package report

import (
	"archive/zip"
	"bytes"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/godilite/likert-reports/internal/survey"
)

func chartPNG(t *testing.T) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 70, 40))))
	return buf.Bytes()
}

func distributions(metrics ...string) survey.Distributions {
	ds := make(survey.Distributions, 0, len(metrics))
	for i, m := range metrics {
		d := survey.NewDistribution(survey.LikertScale)
		d[survey.Agree] = i + 1
		ds = append(ds, survey.MetricDistribution{Metric: m, Counts: d})
	}
	return ds
}

func staffInput(t *testing.T) Input {
	return Input{
		Variant:       Staff,
		Subject:       "Alice Smith",
		Scale:         survey.LikertScale,
		Distributions: distributions("Communication", "Punctuality"),
		Chart:         chartPNG(t),
	}
}

func documentXML(t *testing.T, path string) string {
	t.Helper()
	b, err := os.ReadFile(path)
	require.NoError(t, err)
	return packagePart(t, b, "word/document.xml")
}

func packagePart(t *testing.T, pkg []byte, name string) string {
	t.Helper()
	zr, err := zip.NewReader(bytes.NewReader(pkg), int64(len(pkg)))
	require.NoError(t, err)
	for _, f := range zr.File {
		if f.Name == name {
			rc, err := f.Open()
			require.NoError(t, err)
			defer rc.Close()
			b, err := io.ReadAll(rc)
			require.NoError(t, err)
			return string(b)
		}
	}
	t.Fatalf("%s missing from package", name)
	return ""
}

func encode(t *testing.T, r *Report) []byte {
	t.Helper()
	doc, err := r.Document()
	require.NoError(t, err)
	var buf bytes.Buffer
	require.NoError(t, doc.Write(&buf))
	return buf.Bytes()
}

func TestAssemble_TableShape(t *testing.T) {
	r, err := Assemble(staffInput(t))
	require.NoError(t, err)

	require.Len(t, r.Table, 3)
	assert.Equal(t, []string{"Skill Category", "Strongly Agree", "Agree", "Neutral", "Disagree", "Strongly Disagree"}, r.Table[0])
	assert.Equal(t, []string{"Communication", "0", "1", "0", "0", "0"}, r.Table[1])
	assert.Equal(t, []string{"Punctuality", "0", "2", "0", "0", "0"}, r.Table[2])
	for _, row := range r.Table {
		assert.Len(t, row, len(survey.LikertScale)+1)
		for _, cell := range row {
			assert.NotEmpty(t, cell)
		}
	}
	assert.Equal(t, "Staff Report: Alice Smith", r.Title)
	assert.Equal(t, 2, r.Metrics)
	assert.Equal(t, 3, r.Responses)
	assert.Nil(t, r.Comments)
}

func TestAssemble_CampusRepKeepsNonEmptyComments(t *testing.T) {
	in := staffInput(t)
	in.Variant = CampusRep
	in.Subject = "Jordan"
	in.Comments = []string{"Very helpful", "  ", "", " Always on time "}

	r, err := Assemble(in)
	require.NoError(t, err)
	assert.Equal(t, "Question", r.Table[0][0])
	assert.Equal(t, []string{"Very helpful", "Always on time"}, r.Comments)
}

func TestAssemble_InvalidInput(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Input)
	}{
		{"unknown variant", func(in *Input) { in.Variant = "manager" }},
		{"blank subject", func(in *Input) { in.Subject = "  " }},
		{"empty scale", func(in *Input) { in.Scale = nil }},
		{"no metrics", func(in *Input) { in.Distributions = nil }},
		{"no chart", func(in *Input) { in.Chart = nil }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := staffInput(t)
			tt.mutate(&in)
			_, err := Assemble(in)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestFileName(t *testing.T) {
	tests := []struct {
		variant Variant
		subject string
		want    string
	}{
		{Staff, "Alice Smith", "Alice_Smith_Report.docx"},
		{Staff, "Anne-Marie", "Anne-Marie_Report.docx"},
		{Staff, "A/B", "A_B_Report.docx"},
		{Staff, "../x", "___x_Report.docx"},
		{Staff, `C:\temp`, "C__temp_Report.docx"},
		{CampusRep, "Jordan O'Neil", "campus_rep_report_JordanONeil.docx"},
		{CampusRep, "Mary_Ann", "campus_rep_report_Mary_Ann.docx"},
		{CampusRep, "../x", "campus_rep_report_x.docx"},
	}
	for _, tt := range tests {
		t.Run(tt.subject, func(t *testing.T) {
			got := FileName(tt.variant, tt.subject)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, got, filepath.Base(got))
		})
	}
}

func TestWriter_PathStaysInDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "reports")
	w := NewWriter(dir)
	for _, subject := range []string{"../escape", "Pre/Post", "..", "a/../../b"} {
		in := staffInput(t)
		in.Subject = subject
		r, err := Assemble(in)
		require.NoError(t, err)

		path, err := w.Path(r)
		require.NoError(t, err, subject)
		assert.Equal(t, dir, filepath.Dir(path), subject)
	}
}

func TestParseVariant(t *testing.T) {
	v, err := ParseVariant("campus-rep")
	require.NoError(t, err)
	assert.Equal(t, CampusRep, v)

	v, err = ParseVariant(" Staff ")
	require.NoError(t, err)
	assert.Equal(t, Staff, v)

	_, err = ParseVariant("manager")
	assert.Error(t, err)
}

func TestWriter_SaveStaff(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "reports")
	r, err := Assemble(staffInput(t))
	require.NoError(t, err)

	path, err := NewWriter(dir).Save(r)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "Alice_Smith_Report.docx"), path)

	doc := documentXML(t, path)
	assert.Contains(t, doc, "Staff Report: Alice Smith")
	assert.Contains(t, doc, Caption)
	assert.Contains(t, doc, SummaryHeading)
	assert.NotContains(t, doc, CommentsHeading)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temporary files are cleaned up")
}

func TestWriter_SaveCampusRepWithoutComments(t *testing.T) {
	in := staffInput(t)
	in.Variant = CampusRep
	in.Subject = "Jordan"
	r, err := Assemble(in)
	require.NoError(t, err)

	path, err := NewWriter(t.TempDir()).Save(r)
	require.NoError(t, err)

	doc := documentXML(t, path)
	assert.Contains(t, doc, "Campus Rep Report: Jordan")
	assert.Contains(t, doc, CommentsHeading)
	assert.Contains(t, doc, NoComments)
}

func TestWriter_ReportIsWorldReadable(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("unix permissions")
	}
	r, err := Assemble(staffInput(t))
	require.NoError(t, err)

	path, err := NewWriter(t.TempDir()).Save(r)
	require.NoError(t, err)
	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o644), info.Mode().Perm())
}

func TestDocument_Layout(t *testing.T) {
	in := staffInput(t)
	in.Variant = CampusRep
	in.Subject = "Jordan"
	in.Comments = []string{"Very helpful", "Always <on> time"}
	r, err := Assemble(in)
	require.NoError(t, err)

	pkg := encode(t, r)
	doc := packagePart(t, pkg, "word/document.xml")

	order := []string{"Campus Rep Report: Jordan", "<w:drawing>", Caption, SummaryHeading, "Strongly Disagree", CommentsHeading, "Very helpful"}
	last := -1
	for _, s := range order {
		i := strings.Index(doc, s)
		require.GreaterOrEqual(t, i, 0, s)
		assert.Greater(t, i, last, "%q out of order", s)
		last = i
	}

	assert.Contains(t, doc, `w:fill="DDDDDD"`)
	assert.Contains(t, doc, `cx="5943600"`, "chart is 6.5in wide")
	assert.Contains(t, doc, `w:val="ListBullet"`)
	assert.Contains(t, doc, `w:val="Caption"`)
	assert.Contains(t, doc, "Always &lt;on&gt; time")
	assert.Equal(t, 3, strings.Count(doc, "<w:tr>"), "header plus one row per metric")
	assert.NotContains(t, doc, NoComments)

	media := packagePart(t, pkg, "word/media/image1.png")
	assert.Equal(t, string(in.Chart), media)
}

func TestDocument_Deterministic(t *testing.T) {
	r, err := Assemble(staffInput(t))
	require.NoError(t, err)
	assert.Equal(t, encode(t, r), encode(t, r))
}

func TestWriter_SaveOverwrites(t *testing.T) {
	dir := t.TempDir()
	w := NewWriter(dir)
	r, err := Assemble(staffInput(t))
	require.NoError(t, err)

	first, err := w.Save(r)
	require.NoError(t, err)
	second, err := w.Save(r)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestWriter_BadChartWritesNothing(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "reports")
	in := staffInput(t)
	in.Chart = []byte("not an image")
	r, err := Assemble(in)
	require.NoError(t, err)

	_, err = NewWriter(dir).Save(r)
	require.Error(t, err)
	_, statErr := os.Stat(dir)
	assert.True(t, os.IsNotExist(statErr))
}

func TestReport_Previews(t *testing.T) {
	in := staffInput(t)
	in.Variant = CampusRep
	in.Subject = "Jordan"
	in.Comments = []string{"Great | support"}
	r, err := Assemble(in)
	require.NoError(t, err)

	md := r.Markdown()
	assert.Contains(t, md, "# Campus Rep Report: Jordan")
	assert.Contains(t, md, "| Question | Strongly Agree | Agree | Neutral | Disagree | Strongly Disagree |")
	assert.Contains(t, md, "| Communication | 0 | 1 | 0 | 0 | 0 |")
	assert.Contains(t, md, "- Great | support")

	html, err := r.HTML()
	require.NoError(t, err)
	assert.Contains(t, html, "<h1>Campus Rep Report: Jordan</h1>")
	assert.Contains(t, html, "<table>")
	assert.Contains(t, html, "<li>Great | support</li>")
}
