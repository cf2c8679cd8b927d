package tui

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/godilite/likert-reports/internal/config"
	"github.com/godilite/likert-reports/internal/grpc/mocks"
	"github.com/godilite/likert-reports/internal/report"
	"github.com/godilite/likert-reports/internal/service"
)

var (
	enter = tea.KeyMsg{Type: tea.KeyEnter}
	down  = tea.KeyMsg{Type: tea.KeyDown}
	esc   = tea.KeyMsg{Type: tea.KeyEsc}
)

func send(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	model, ok := next.(Model)
	require.True(t, ok)
	return model, cmd
}

func typeText(t *testing.T, m Model, text string) Model {
	t.Helper()
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(text)})
	return m
}

type generateCall struct {
	variant report.Variant
	req     service.Request
}

func newService(calls *[]generateCall, genErr error) *mocks.MockReportGenerator {
	return &mocks.MockReportGenerator{
		ListSheetsFunc: func(ctx context.Context, sourceID string) ([]string, error) {
			return []string{"Form Responses 1", "Archive"}, nil
		},
		ListSubjectsFunc: func(ctx context.Context, variant report.Variant, sourceID, sheet string) ([]string, error) {
			return []string{"Sam", "Riley"}, nil
		},
		GenerateFunc: func(ctx context.Context, variant report.Variant, req service.Request) (service.Result, error) {
			*calls = append(*calls, generateCall{variant: variant, req: req})
			if genErr != nil {
				return service.Result{}, genErr
			}
			return service.Result{
				Report: &report.Report{
					Variant: variant,
					Subject: req.Subject,
					Title:   variant.Title(req.Subject),
					Table:   [][]string{{variant.LabelHeader(), "Agree"}, {"Q1", "2"}},
				},
				Path: filepath.Join("reports", report.FileName(variant, req.Subject)),
			}, nil
		},
	}
}

func TestModel_CampusRepFlow(t *testing.T) {
	var calls []generateCall
	m := New(context.Background(), newService(&calls, nil), Options{SourceID: "sheet-123"})

	m, cmd := send(t, m, enter)
	require.NotNil(t, cmd)
	assert.True(t, m.loading)
	assert.Equal(t, "sheet-123", m.sourceID)

	m, _ = send(t, m, m.loadSheets()())
	assert.Equal(t, stepVariant, m.step)
	assert.False(t, m.loading)

	m, _ = send(t, m, down)
	m, _ = send(t, m, enter)
	assert.Equal(t, report.CampusRep, m.variant)
	assert.Equal(t, stepSheet, m.step)
	assert.Contains(t, m.View(), "Form Responses 1")

	m, cmd = send(t, m, enter)
	require.NotNil(t, cmd)
	assert.Equal(t, "Form Responses 1", m.sheet)

	m, _ = send(t, m, m.loadSubjects()())
	assert.Equal(t, stepSubject, m.step)
	assert.Contains(t, m.View(), "Riley")

	m, _ = send(t, m, down)
	m, cmd = send(t, m, enter)
	require.NotNil(t, cmd)
	assert.Equal(t, stepGenerating, m.step)

	m, _ = send(t, m, m.generate("Riley")())
	assert.Equal(t, stepResult, m.step)
	require.Len(t, calls, 1)
	assert.Equal(t, report.CampusRep, calls[0].variant)
	assert.Equal(t, service.Request{SourceID: "sheet-123", Sheet: "Form Responses 1", Subject: "Riley"}, calls[0].req)

	view := m.View()
	assert.Contains(t, view, filepath.Join("reports", "campus_rep_report_Riley.docx"))
	assert.Contains(t, view, "Campus Rep Report: Riley")

	_, cmd = send(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestModel_StaffSubjectNotFound(t *testing.T) {
	var calls []generateCall
	notFound := fmt.Errorf("%w: Jordan", service.ErrSubjectNotFound)
	m := New(context.Background(), newService(&calls, notFound), Options{SourceID: "sheet-123"})

	m, _ = send(t, m, enter)
	m, _ = send(t, m, m.loadSheets()())
	m, _ = send(t, m, enter)
	assert.Equal(t, report.Staff, m.variant)

	m, _ = send(t, m, enter)
	assert.Equal(t, stepSubject, m.step)
	assert.Empty(t, m.input.Value())

	m = typeText(t, m, "Jordan")
	m, cmd := send(t, m, enter)
	require.NotNil(t, cmd)

	m, _ = send(t, m, m.generate("Jordan")())
	assert.Equal(t, stepSubject, m.step)
	assert.Equal(t, "Jordan", m.input.Value())
	assert.Contains(t, m.View(), "No responses found for the selected subject.")
	require.Len(t, calls, 1)
	assert.Equal(t, report.Staff, calls[0].variant)

	m, _ = send(t, m, esc)
	assert.Equal(t, stepSheet, m.step)
	assert.Nil(t, m.err)
}

func TestModel_EmptySourceID(t *testing.T) {
	m := New(context.Background(), &mocks.MockReportGenerator{}, Options{})

	m, cmd := send(t, m, enter)
	assert.Nil(t, cmd)
	assert.Equal(t, stepSource, m.step)
	assert.Contains(t, m.View(), "enter a spreadsheet id")
}

func TestModel_SourceUnavailable(t *testing.T) {
	m := New(context.Background(), &mocks.MockReportGenerator{}, Options{SourceID: "nope"})

	m, _ = send(t, m, sheetsMsg{err: fmt.Errorf("%w: 404", service.ErrSourceUnavailable)})
	assert.Equal(t, stepSource, m.step)
	assert.Contains(t, m.View(), "Could not read the spreadsheet")
}

func TestModel_SavePreferences(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	m := New(context.Background(), &mocks.MockReportGenerator{}, Options{PreferencesFile: path})

	m = typeText(t, m, "sheet-456")
	m, cmd := send(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})
	require.NotNil(t, cmd)

	m, _ = send(t, m, cmd())
	assert.Nil(t, m.err)
	assert.Contains(t, m.View(), "Spreadsheet id saved.")
	assert.Equal(t, "sheet-456", config.LoadPreferences(path).SpreadsheetID)
}

func TestModel_KeysIgnoredWhileLoading(t *testing.T) {
	m := New(context.Background(), &mocks.MockReportGenerator{}, Options{SourceID: "sheet-123"})
	m, _ = send(t, m, enter)
	require.True(t, m.loading)

	m, cmd := send(t, m, esc)
	assert.Nil(t, cmd)
	assert.Equal(t, stepSource, m.step)

	_, cmd = send(t, m, tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestModel_BackToSource(t *testing.T) {
	m := New(context.Background(), &mocks.MockReportGenerator{}, Options{SourceID: "sheet-123"})
	m, _ = send(t, m, sheetsMsg{sheets: []string{"A"}})
	m.sourceID = "sheet-123"
	require.Equal(t, stepVariant, m.step)

	m, _ = send(t, m, esc)
	assert.Equal(t, stepSource, m.step)
	assert.Equal(t, "sheet-123", m.input.Value())
}
