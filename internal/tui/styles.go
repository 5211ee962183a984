package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/idilsaglam/todomvc/internal/ui"
)

// ------- styles derived from the shared ui palette -------
var (
	titleStyle   lipgloss.Style
	successStyle lipgloss.Style
	pendingStyle lipgloss.Style
	accentStyle  lipgloss.Style
	mutedStyle   lipgloss.Style
	errorStyle   lipgloss.Style

	selectedStyle = lipgloss.NewStyle().Bold(true).Reverse(true)
	doneStyle     = lipgloss.NewStyle().Faint(true).Strikethrough(true)
	helpStyle     = lipgloss.NewStyle().Faint(true)

	theme ui.Theme
)

func init() { loadTheme() }

// SetTheme switches the shared palette (classic, neon or mono) and
// reloads the view's styles from it.
func SetTheme(name string) {
	ui.SetTheme(name)
	loadTheme()
}

func loadTheme() {
	theme = ui.Current()
	titleStyle = theme.Title
	successStyle = theme.Success
	pendingStyle = theme.Pending
	accentStyle = theme.Accent
	mutedStyle = theme.Muted
	errorStyle = theme.Error
}

func panelString(inner string) string {
	border := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.BorderColor).
		Padding(0, 1)
	return border.Render(inner)
}
