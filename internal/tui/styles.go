package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/MKhiriev/go-key-keeper/models"
)

var (
	appStyle        = lipgloss.NewStyle().Padding(1, 2)
	titleStyle      = lipgloss.NewStyle().Bold(true)
	helpStyle       = lipgloss.NewStyle().Faint(true)
	errorStyle      = lipgloss.NewStyle().Bold(true)
	overlayBoxStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(1, 2)

	availableStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Bold(true)
	checkedOutStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	deletedStyle    = lipgloss.NewStyle().Faint(true).Strikethrough(true)
	overdueStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)
	selectedStyle   = lipgloss.NewStyle().Reverse(true)
)

var keyColorStyles = map[models.KeyColor]lipgloss.Style{
	models.KeyColorGreen:  lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	models.KeyColorBlue:   lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
	models.KeyColorYellow: lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	models.KeyColorRed:    lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
}

// colorDot renders the ring color marker of a key.
func colorDot(color models.KeyColor) string {
	style, ok := keyColorStyles[color]
	if !ok {
		return "○"
	}
	return style.Render("●")
}
