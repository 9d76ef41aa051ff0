package tui

import (
	catppuccin "github.com/catppuccin/go"
	"github.com/charmbracelet/lipgloss"
)

// Catppuccin Mocha palette.
var flavor = catppuccin.Mocha

var (
	colorBase     = lipgloss.Color(flavor.Base().Hex)
	colorSurface1 = lipgloss.Color(flavor.Surface1().Hex)
	colorText     = lipgloss.Color(flavor.Text().Hex)
	colorSubtext0 = lipgloss.Color(flavor.Subtext0().Hex)
	colorBlue     = lipgloss.Color(flavor.Blue().Hex)
	colorGreen    = lipgloss.Color(flavor.Green().Hex)
	colorRed      = lipgloss.Color(flavor.Red().Hex)
	colorYellow   = lipgloss.Color(flavor.Yellow().Hex)
	colorMauve    = lipgloss.Color(flavor.Mauve().Hex)
	colorOverlay0 = lipgloss.Color(flavor.Overlay0().Hex)
)

var (
	// TitleStyle renders the instance name above the component list.
	TitleStyle = lipgloss.NewStyle().
			Foreground(colorBase).
			Background(colorBlue).
			Padding(0, 1).
			Bold(true)

	// HeaderStyle renders table headers.
	HeaderStyle = lipgloss.NewStyle().
			Foreground(colorMauve).
			Bold(true).
			Padding(0, 1)

	// CellStyle renders ordinary table cells.
	CellStyle = lipgloss.NewStyle().
			Foreground(colorText).
			Padding(0, 1)

	// BorderStyle colors table borders.
	BorderStyle = lipgloss.NewStyle().Foreground(colorOverlay0)

	// SelectedStyle highlights the row under the cursor.
	SelectedStyle = lipgloss.NewStyle().
			Foreground(colorBlue).
			Background(colorSurface1).
			Bold(true)

	// CustomStyle marks customized components.
	CustomStyle = lipgloss.NewStyle().Foreground(colorYellow)

	// HelpStyle renders key hints.
	HelpStyle = lipgloss.NewStyle().Foreground(colorSubtext0)

	// SuccessStyle renders confirmations.
	SuccessStyle = lipgloss.NewStyle().Foreground(colorGreen)

	// ErrorStyle renders failures.
	ErrorStyle = lipgloss.NewStyle().Foreground(colorRed)

	warningStyle = lipgloss.NewStyle().Foreground(colorYellow).Bold(true)
	errorMark    = lipgloss.NewStyle().Foreground(colorRed).Bold(true)
)

// Decoration renders a row decoration ("warning", "error" or "").
func Decoration(decoration string) string {
	switch decoration {
	case "warning":
		return warningStyle.Render("! warning")
	case "error":
		return errorMark.Render("x error")
	default:
		return ""
	}
}
