package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// twoColumnWidth is the terminal width at which cards are laid out in two
// columns.
const twoColumnWidth = 80

var (
	accentColor = lipgloss.AdaptiveColor{Light: "4", Dark: "12"}
	dimColor    = lipgloss.AdaptiveColor{Light: "240", Dark: "245"}
	errorColor  = lipgloss.AdaptiveColor{Light: "1", Dark: "9"}
	okColor     = lipgloss.AdaptiveColor{Light: "2", Dark: "10"}

	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(accentColor)
	labelStyle  = lipgloss.NewStyle().Bold(true)
	dimStyle    = lipgloss.NewStyle().Foreground(dimColor)
	errorStyle  = lipgloss.NewStyle().Foreground(errorColor)
	flashStyle  = lipgloss.NewStyle().Bold(true).Foreground(okColor)
	nameStyle   = lipgloss.NewStyle().Bold(true)
	buttonStyle = lipgloss.NewStyle().Padding(0, 1).Bold(true).
			Foreground(lipgloss.AdaptiveColor{Light: "15", Dark: "0"}).
			Background(accentColor)
	disabledButtonStyle = lipgloss.NewStyle().Padding(0, 1).
				Foreground(dimColor)
)

// FocusedBorder returns a lipgloss style with an accent-colored rounded border.
func FocusedBorder() lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(accentColor).
		Padding(0, 1)
}

// UnfocusedBorder returns a lipgloss style with a dim rounded border.
func UnfocusedBorder() lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.AdaptiveColor{Light: "240", Dark: "240"}).
		Padding(0, 1)
}

// CardColumns returns how many card columns fit in totalWidth.
func CardColumns(totalWidth int) int {
	if totalWidth >= twoColumnWidth {
		return 2
	}
	return 1
}

// CardWidth returns the outer width of one card for the given terminal
// width and column count.
func CardWidth(totalWidth, columns int) int {
	if totalWidth <= 0 || columns <= 0 {
		return 0
	}
	return totalWidth / columns
}
