package tui

import (
	"github.com/charmbracelet/lipgloss"

	"tablero/internal/config"
)

const (
	columnWidth = 32
	cardWidth   = columnWidth - 4
)

// Styles holds the lipgloss styles derived from the configured theme.
type Styles struct {
	theme config.Theme

	AppTitle     lipgloss.Style
	Column       lipgloss.Style
	ColumnActive lipgloss.Style
	ColumnHeader lipgloss.Style
	Card         lipgloss.Style
	CardSelected lipgloss.Style
	CardGrabbed  lipgloss.Style
	CardTitle    lipgloss.Style
	Subtle       lipgloss.Style
	Error        lipgloss.Style
	StatusBar    lipgloss.Style
	Overlay      lipgloss.Style
}

// NewStyles builds the style set for a theme.
func NewStyles(theme config.Theme) Styles {
	column := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(theme.ColumnBorder)).
		Width(columnWidth).
		Padding(0, 1)

	card := lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color(theme.ColumnBorder)).
		Width(cardWidth).
		Padding(0, 1)

	return Styles{
		theme: theme,

		AppTitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(theme.Accent)),
		Column:       column,
		ColumnActive: column.BorderForeground(lipgloss.Color(theme.SelectedBorder)),
		ColumnHeader: lipgloss.NewStyle().Bold(true),
		Card:         card,
		CardSelected: card.BorderForeground(lipgloss.Color(theme.SelectedBorder)),
		CardGrabbed:  card.BorderForeground(lipgloss.Color(theme.GrabbedBorder)),
		CardTitle:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(theme.Normal)),
		Subtle:       lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Subtle)),
		Error:        lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Error)),
		StatusBar:    lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Subtle)),
		Overlay: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(theme.Accent)).
			Padding(1, 2),
	}
}

// StatusHeader renders a column header in the column's color.
func (s Styles) StatusHeader(status string, label string) string {
	return s.ColumnHeader.
		Foreground(lipgloss.Color(s.theme.StatusColor(status))).
		Render(label)
}

// PriorityBadge renders a priority marker in the priority's color.
func (s Styles) PriorityBadge(priority string) string {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(s.theme.PriorityColor(priority))).
		Render("● " + priority)
}
