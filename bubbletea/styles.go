package bubbletea

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/redsepro/knacks"
)

// Styles holds the lipgloss styles of the browser.
type Styles struct {
	Pane        lipgloss.Style
	FocusedPane lipgloss.Style
	Title       lipgloss.Style
	Selected    lipgloss.Style
	Active      lipgloss.Style
	Dim         lipgloss.Style
	Error       lipgloss.Style
	Status      lipgloss.Style
}

// NewStyles builds the styles for theme.
func NewStyles(theme knacks.Theme) Styles {
	accent := lipgloss.Color(theme.Accent)
	dim := lipgloss.Color(theme.Dim)

	pane := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(dim).
		Padding(0, 1)

	return Styles{
		Pane:        pane,
		FocusedPane: pane.BorderForeground(accent),
		Title:       lipgloss.NewStyle().Bold(true).Foreground(accent),
		Selected:    lipgloss.NewStyle().Bold(true).Foreground(accent),
		Active:      lipgloss.NewStyle().Underline(true),
		Dim:         lipgloss.NewStyle().Foreground(dim),
		Error:       lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(theme.Error)),
		Status:      lipgloss.NewStyle().Foreground(dim),
	}
}

// plain drops control characters so that text from the index or the
// catalog cannot drive the terminal.
func plain(s string) string {
	return strings.Map(func(r rune) rune {
		if r == '\t' {
			return ' '
		}
		if r < 0x20 || r == 0x7f || (r >= 0x80 && r < 0xa0) {
			return -1
		}
		return r
	}, s)
}

// truncate shortens s to at most width runes.
func truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	r := []rune(s)
	if len(r) <= width {
		return s
	}
	if width == 1 {
		return "…"
	}
	return string(r[:width-1]) + "…"
}
