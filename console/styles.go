package console

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

// Styles holds the lipgloss styles used to render results.
type Styles struct {
	Title    lipgloss.Style
	Section  lipgloss.Style
	Label    lipgloss.Style
	Value    lipgloss.Style
	Muted    lipgloss.Style
	Error    lipgloss.Style
	Emphasis lipgloss.Style
}

// NewStyles returns coloured styles, or plain ones when color is false.
func NewStyles(color bool) *Styles {
	if !color {
		plain := lipgloss.NewStyle()
		return &Styles{
			Title:    plain,
			Section:  plain,
			Label:    plain,
			Value:    plain,
			Muted:    plain,
			Error:    plain,
			Emphasis: plain,
		}
	}

	return &Styles{
		Title:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7C3AED")),
		Section:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#06B6D4")),
		Label:    lipgloss.NewStyle().Foreground(lipgloss.Color("#6C7086")),
		Value:    lipgloss.NewStyle().Foreground(lipgloss.Color("#CDD6F4")),
		Muted:    lipgloss.NewStyle().Foreground(lipgloss.Color("#6C7086")).Italic(true),
		Error:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#F38BA8")),
		Emphasis: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#A6E3A1")),
	}
}

// IsTerminal reports whether f is attached to a terminal.
func IsTerminal(f *os.File) bool {
	return f != nil && term.IsTerminal(int(f.Fd()))
}
