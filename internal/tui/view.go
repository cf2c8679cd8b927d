package tui

import (
	"fmt"
	"strings"

	"github.com/godilite/likert-reports/internal/report"
	"github.com/godilite/likert-reports/internal/service"
)

func (m Model) View() string {
	var b strings.Builder
	b.WriteString(m.styles.title.Render("Likert Survey Reports"))
	b.WriteString("\n")

	switch m.step {
	case stepSource:
		b.WriteString(m.styles.label.Render("Spreadsheet") + "\n")
		b.WriteString(m.input.View() + "\n")
		b.WriteString(m.styles.muted.Render("enter: load sheets • ctrl+s: remember id • ctrl+c: quit") + "\n")

	case stepVariant:
		b.WriteString(m.styles.label.Render("Report type") + "\n")
		b.WriteString(m.menu())

	case stepSheet:
		b.WriteString(m.styles.label.Render("Sheet") + "\n")
		if len(m.sheets) == 0 {
			b.WriteString(m.styles.muted.Render("no sheets found") + "\n")
		}
		b.WriteString(m.menu())

	case stepSubject:
		if m.variant == report.CampusRep {
			b.WriteString(m.styles.label.Render("Campus representative") + "\n")
			if len(m.subjects) == 0 {
				b.WriteString(m.styles.muted.Render("no representatives in this sheet") + "\n")
			}
			b.WriteString(m.menu())
		} else {
			b.WriteString(m.styles.label.Render("Staff member") + "\n")
			b.WriteString(m.input.View() + "\n")
		}

	case stepGenerating:
		b.WriteString("Generating report...\n")

	case stepResult:
		b.WriteString(m.styles.ok.Render("Report saved to "+m.result.Path) + "\n\n")
		b.WriteString(m.preview)
		b.WriteString("\n" + m.styles.muted.Render("enter: another subject • esc: back • q: quit") + "\n")
	}

	if m.loading {
		b.WriteString("\n" + m.spinner.View() + " working...\n")
	}
	if m.status != "" {
		b.WriteString("\n" + m.styles.ok.Render(m.status) + "\n")
	}
	if m.err != nil {
		b.WriteString("\n" + m.styles.err.Render(describe(m.err)) + "\n")
	}
	if m.step != stepSource && m.step != stepResult && !m.loading {
		b.WriteString(m.styles.muted.Render("↑/↓: move • enter: select • esc: back") + "\n")
	}
	return b.String()
}

func (m Model) menu() string {
	var b strings.Builder
	for i, opt := range m.options() {
		if i == m.cursor {
			b.WriteString(m.styles.selected.Render(fmt.Sprintf("> %s", opt)) + "\n")
		} else {
			b.WriteString(fmt.Sprintf("  %s\n", opt))
		}
	}
	return b.String()
}

func describe(err error) string {
	msg := service.Describe(err)
	if msg == "" || strings.HasPrefix(msg, "Report generation failed") {
		return err.Error()
	}
	return msg
}
