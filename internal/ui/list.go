package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/KrishTanna28/CollEdge-Internship-Assignment/pkg/contact"
)

// hyperlink wraps text in an OSC 8 link to uri.
func hyperlink(uri, text string) string {
	return ansi.SetHyperlink(uri) + text + ansi.ResetHyperlink()
}

// renderCard renders one contact card of the given outer width.
func renderCard(c contact.Contact, width int, selected bool) string {
	lines := []string{
		nameStyle.Render(c.Name),
		"✉ " + hyperlink("mailto:"+c.Email, c.Email),
		"☎ " + hyperlink("tel:"+c.Phone, c.Phone),
	}
	if c.Message != "" {
		lines = append(lines, "", c.Message)
	}
	lines = append(lines, "", dimStyle.Render("Added "+contact.FormatDate(c.CreatedAt)))

	style := UnfocusedBorder()
	if selected {
		style = FocusedBorder()
	}
	// Border takes one column on each side.
	if width > 2 {
		style = style.Width(width - 2)
	}
	return style.Render(strings.Join(lines, "\n"))
}

// renderList renders the contact list header and cards. cursor is the
// selected card, or -1 when the list does not have focus.
func renderList(contacts []contact.Contact, mode contact.SortMode, cursor, width int) string {
	var b strings.Builder

	header := titleStyle.Render(fmt.Sprintf("Contacts (%d)", len(contacts)))
	hint := dimStyle.Render("[s] Sort by " + mode.Label())
	b.WriteString(header + "  " + hint)
	b.WriteString("\n\n")

	if len(contacts) == 0 {
		b.WriteString("No contacts yet\n")
		b.WriteString(dimStyle.Render("Add your first contact using the form"))
		return b.String()
	}

	columns := CardColumns(width)
	cardWidth := CardWidth(width, columns)

	var rows []string
	for start := 0; start < len(contacts); start += columns {
		end := start + columns
		if end > len(contacts) {
			end = len(contacts)
		}
		cards := make([]string, 0, columns)
		for i := start; i < end; i++ {
			cards = append(cards, renderCard(contacts[i], cardWidth, i == cursor))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cards...))
	}
	b.WriteString(lipgloss.JoinVertical(lipgloss.Left, rows...))
	return b.String()
}
