package ui

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

var ErrorStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(lipgloss.Color("#de613e"))

var SuccessStyle = lipgloss.NewStyle().
	Foreground(lipgloss.AdaptiveColor{Light: "#51bd73", Dark: "#51bd73"})

var WarningStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("#F0A868"))

// IsTerminal reports whether w is a file attached to a terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(interface{ Fd() uintptr })
	return ok && term.IsTerminal(int(f.Fd()))
}

// Render applies style only when w is a terminal, so piped output stays plain.
func Render(w io.Writer, style lipgloss.Style, s string) string {
	if !IsTerminal(w) {
		return s
	}
	return style.Render(s)
}
