package tui

import "github.com/charmbracelet/lipgloss"

// Palisade Color Palette
var (
	ColorAmber = lipgloss.Color("#F4A259") // Warm accent
	ColorStone = lipgloss.Color("#6B705C") // Muted secondary text
	ColorDark  = lipgloss.Color("#2B2D2F") // Dark background elements
	ColorText  = lipgloss.Color("#E8E8E4") // Primary text
	ColorAlert = lipgloss.Color("#E63946") // Red for deny/errors
	ColorGood  = lipgloss.Color("#80B918") // Green for allow/active
	ColorWarn  = lipgloss.Color("#F9C74F") // Yellow for limit/warnings
	ColorMuted = lipgloss.Color("#6c757d") // Muted text
)

// Styles
var (
	StyleBase = lipgloss.NewStyle().Foreground(ColorText)

	StyleHeader = lipgloss.NewStyle().
			Foreground(ColorAmber).
			Bold(true).
			Border(lipgloss.NormalBorder(), false, false, true, false).
			BorderForeground(ColorStone).
			Padding(0, 1)

	StyleTitle = lipgloss.NewStyle().
			Foreground(ColorAmber).
			Bold(true)

	StyleSubtitle = lipgloss.NewStyle().
			Foreground(ColorStone).
			Italic(true)

	StyleStatusGood = lipgloss.NewStyle().Foreground(ColorGood).Bold(true)
	StyleStatusBad  = lipgloss.NewStyle().Foreground(ColorAlert).Bold(true)
	StyleStatusWarn = lipgloss.NewStyle().Foreground(ColorWarn).Bold(true)

	StyleCard = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorStone).
			Padding(0, 1).
			Margin(0, 1)

	StyleActiveCard = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorAmber).
			Padding(0, 1).
			Margin(0, 1)

	StyleErrorBar = lipgloss.NewStyle().
			Foreground(ColorAlert).
			Padding(0, 1)

	// App container
	StyleApp = lipgloss.NewStyle().Margin(1, 2)

	// Top Bar / Menu Styles
	StyleTopBar = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, false, true, false).
			BorderForeground(ColorStone).
			Padding(0, 1).
			MarginBottom(1)

	StyleMenuItem = lipgloss.NewStyle().
			Foreground(ColorStone).
			Padding(0, 1)

	StyleMenuItemActive = lipgloss.NewStyle().
				Foreground(ColorDark).
				Background(ColorAmber).
				Bold(true).
				Padding(0, 1)

	StyleMenuKey = lipgloss.NewStyle().
			Foreground(ColorMuted).
			Faint(true)
)