// Package tui is the interactive report form: pick a spreadsheet, a report
// type, a sheet and a subject, then generate.
package tui

import (
	"context"
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/godilite/likert-reports/internal/config"
	"github.com/godilite/likert-reports/internal/report"
	"github.com/godilite/likert-reports/internal/service"
)

// Service is what the form needs from the report service.
type Service interface {
	ListSheets(ctx context.Context, sourceID string) ([]string, error)
	ListSubjects(ctx context.Context, variant report.Variant, sourceID, sheet string) ([]string, error)
	Generate(ctx context.Context, variant report.Variant, req service.Request) (service.Result, error)
}

type Options struct {
	// SourceID pre-fills the first step.
	SourceID string
	// PreferencesFile is where ctrl+s remembers the source id.
	PreferencesFile string
	// Render turns report Markdown into terminal output. Nil shows it raw.
	Render func(string) (string, error)
}

type step int

const (
	stepSource step = iota
	stepVariant
	stepSheet
	stepSubject
	stepGenerating
	stepResult
)

type (
	sheetsMsg struct {
		sheets []string
		err    error
	}
	subjectsMsg struct {
		subjects []string
		err      error
	}
	generatedMsg struct {
		res service.Result
		err error
	}
	savedMsg struct {
		err error
	}
)

var variants = []report.Variant{report.Staff, report.CampusRep}

type Model struct {
	ctx    context.Context
	svc    Service
	opts   Options
	styles styles

	step    step
	input   textinput.Model
	spinner spinner.Model
	loading bool
	cursor  int

	sourceID string
	variant  report.Variant
	sheets   []string
	sheet    string
	subjects []string

	result  *service.Result
	preview string
	status  string
	err     error
}

func New(ctx context.Context, svc Service, opts Options) Model {
	in := textinput.New()
	in.Placeholder = "spreadsheet id"
	in.SetValue(opts.SourceID)
	in.Focus()

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	return Model{
		ctx:     ctx,
		svc:     svc,
		opts:    opts,
		styles:  defaultStyles(),
		input:   in,
		spinner: sp,
	}
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) loadSheets() tea.Cmd {
	ctx, svc, id := m.ctx, m.svc, m.sourceID
	return func() tea.Msg {
		sheets, err := svc.ListSheets(ctx, id)
		return sheetsMsg{sheets: sheets, err: err}
	}
}

func (m Model) loadSubjects() tea.Cmd {
	ctx, svc, v, id, sheet := m.ctx, m.svc, m.variant, m.sourceID, m.sheet
	return func() tea.Msg {
		subjects, err := svc.ListSubjects(ctx, v, id, sheet)
		return subjectsMsg{subjects: subjects, err: err}
	}
}

func (m Model) generate(subject string) tea.Cmd {
	ctx, svc, v := m.ctx, m.svc, m.variant
	req := service.Request{SourceID: m.sourceID, Sheet: m.sheet, Subject: subject}
	return func() tea.Msg {
		res, err := svc.Generate(ctx, v, req)
		return generatedMsg{res: res, err: err}
	}
}

func (m Model) savePreferences() tea.Cmd {
	path, id := m.opts.PreferencesFile, strings.TrimSpace(m.input.Value())
	return func() tea.Msg {
		return savedMsg{err: config.SavePreferences(path, config.Preferences{SpreadsheetID: id})}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case savedMsg:
		if msg.err != nil {
			m.err = msg.err
		} else {
			m.status = "Spreadsheet id saved."
		}
		return m, nil

	case sheetsMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.sheets = msg.sheets
		m.step = stepVariant
		m.cursor = 0
		return m, nil

	case subjectsMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.subjects = msg.subjects
		m.enterSubjectStep()
		return m, nil

	case generatedMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			m.step = stepSubject
			return m, nil
		}
		res := msg.res
		m.result = &res
		m.preview = m.renderPreview(res.Report)
		m.step = stepResult
		return m, nil
	}

	if m.usesInput() {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *Model) enterSubjectStep() {
	m.step = stepSubject
	m.cursor = 0
	if m.variant == report.Staff {
		m.input.SetValue("")
		m.input.Placeholder = "staff member name"
		m.input.Focus()
	}
}

func (m Model) usesInput() bool {
	return m.step == stepSource || (m.step == stepSubject && m.variant == report.Staff)
}

func (m Model) renderPreview(r *report.Report) string {
	md := r.Markdown()
	if m.opts.Render == nil {
		return md
	}
	out, err := m.opts.Render(md)
	if err != nil {
		return md
	}
	return out
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		return m, tea.Quit
	}
	if m.loading {
		return m, nil
	}

	switch msg.Type {
	case tea.KeyEsc:
		m.back()
		return m, nil
	case tea.KeyCtrlS:
		if m.step == stepSource && m.opts.PreferencesFile != "" {
			return m, m.savePreferences()
		}
	case tea.KeyUp:
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil
	case tea.KeyDown:
		if m.cursor < len(m.options())-1 {
			m.cursor++
		}
		return m, nil
	case tea.KeyEnter:
		return m.submit()
	}

	if m.step == stepResult && msg.String() == "q" {
		return m, tea.Quit
	}
	if m.usesInput() {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

// options are the menu entries of the current step.
func (m Model) options() []string {
	switch m.step {
	case stepVariant:
		return []string{"Staff report", "Campus rep report"}
	case stepSheet:
		return m.sheets
	case stepSubject:
		if m.variant == report.CampusRep {
			return m.subjects
		}
	}
	return nil
}

func (m Model) submit() (tea.Model, tea.Cmd) {
	m.err = nil
	m.status = ""

	switch m.step {
	case stepSource:
		id := strings.TrimSpace(m.input.Value())
		if id == "" {
			m.err = errors.New("enter a spreadsheet id")
			return m, nil
		}
		m.sourceID = id
		m.loading = true
		return m, tea.Batch(m.spinner.Tick, m.loadSheets())

	case stepVariant:
		m.variant = variants[m.cursor]
		m.step = stepSheet
		m.cursor = 0
		return m, nil

	case stepSheet:
		if len(m.sheets) == 0 {
			return m, nil
		}
		m.sheet = m.sheets[m.cursor]
		if m.variant == report.Staff {
			m.enterSubjectStep()
			return m, textinput.Blink
		}
		m.loading = true
		return m, tea.Batch(m.spinner.Tick, m.loadSubjects())

	case stepSubject:
		var subject string
		if m.variant == report.Staff {
			subject = strings.TrimSpace(m.input.Value())
		} else if len(m.subjects) > 0 {
			subject = m.subjects[m.cursor]
		}
		if subject == "" {
			m.err = errors.New("choose a subject")
			return m, nil
		}
		m.step = stepGenerating
		m.loading = true
		return m, tea.Batch(m.spinner.Tick, m.generate(subject))

	case stepResult:
		m.result = nil
		m.preview = ""
		m.enterSubjectStep()
		return m, nil
	}
	return m, nil
}

func (m *Model) back() {
	m.err = nil
	m.status = ""
	m.cursor = 0
	switch m.step {
	case stepVariant:
		m.step = stepSource
		m.input.SetValue(m.sourceID)
		m.input.Placeholder = "spreadsheet id"
		m.input.Focus()
	case stepSheet:
		m.step = stepVariant
	case stepSubject:
		m.step = stepSheet
	case stepResult:
		m.enterSubjectStep()
	}
}
