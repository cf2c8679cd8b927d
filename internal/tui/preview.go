package tui

import "github.com/charmbracelet/glamour"

// GlamourRenderer renders report Markdown for the terminal, wrapped at width.
func GlamourRenderer(width int) func(string) (string, error) {
	return func(md string) (string, error) {
		r, err := glamour.NewTermRenderer(
			glamour.WithAutoStyle(),
			glamour.WithWordWrap(width),
		)
		if err != nil {
			return "", err
		}
		return r.Render(md)
	}
}
