package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/muurk/witui/internal/network"
	"github.com/muurk/witui/internal/version"
)

// Application branding constants
const (
	AppName = "WITUI"
	AppDesc = "Wi-Fi access points"
)

// Layout constants for responsive terminal width
const (
	MinTerminalWidth = 40 // Below this the table columns collapse
	signalColWidth   = 11 // "▂▄▆█ 100%"
	securityColWidth = 14
	rateColWidth     = 12
	markerColWidth   = 2
)

// Color palette
var (
	PrimaryColor   = lipgloss.Color("#7D56F4") // Purple
	SecondaryColor = lipgloss.Color("#43BF6D") // Green
	WarningColor   = lipgloss.Color("#FFA500") // Orange
	ErrorColor     = lipgloss.Color("#FF5555") // Red

	TextColor   = lipgloss.Color("#FFFFFF") // White
	SubtleColor = lipgloss.Color("#626262") // Gray
	BorderColor = lipgloss.Color("#7D56F4") // Purple (same as primary)
)

var (
	// Column header row
	ColumnHeaderStyle = lipgloss.NewStyle().
				Foreground(SubtleColor).
				Bold(true)

	RowStyle = lipgloss.NewStyle().
			Foreground(TextColor)

	// Highlighted row
	SelectedRowStyle = lipgloss.NewStyle().
				Foreground(TextColor).
				Background(PrimaryColor).
				Bold(true)

	ConnectedStyle = lipgloss.NewStyle().
			Foreground(SecondaryColor).
			Bold(true)

	StatusStyle = lipgloss.NewStyle().
			Foreground(SubtleColor)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ErrorColor).
			Bold(true)

	SpinnerStyle = lipgloss.NewStyle().
			Foreground(PrimaryColor)

	EmptyStyle = lipgloss.NewStyle().
			Foreground(SubtleColor).
			Italic(true).
			PaddingLeft(2)

	// Signal strength styles
	SignalExcellentStyle = lipgloss.NewStyle().Foreground(SecondaryColor)
	SignalGoodStyle      = lipgloss.NewStyle().Foreground(WarningColor)
	SignalWeakStyle      = lipgloss.NewStyle().Foreground(ErrorColor)
	SignalNoneStyle      = lipgloss.NewStyle().Foreground(SubtleColor)
)

// SignalStyle returns the colour for a signal level.
func SignalStyle(level network.Level) lipgloss.Style {
	switch level {
	case network.LevelExcellent:
		return SignalExcellentStyle
	case network.LevelGood:
		return SignalGoodStyle
	case network.LevelWeak:
		return SignalWeakStyle
	default:
		return SignalNoneStyle
	}
}

// BuildHeaderContent creates header content with app name and version
func BuildHeaderContent() string {
	left := lipgloss.NewStyle().
		Foreground(TextColor).
		Bold(true).
		Render(AppName + " " + version.Version)

	right := lipgloss.NewStyle().
		Foreground(SubtleColor).
		Render(AppDesc)

	return lipgloss.JoinHorizontal(lipgloss.Top, left, "  ", right)
}

// RenderApplicationContainer wraps content in the full-screen frame: a
// bordered panel with a header line on top and the footer pinned below.
// It occupies exactly terminalHeight rows.
func RenderApplicationContainer(content string, footerText string, terminalWidth int, terminalHeight int) string {
	innerWidth := max(terminalWidth-4, 0)

	headerStyle := lipgloss.NewStyle().
		BorderStyle(lipgloss.Border{Bottom: "─"}).
		BorderBottom(true).
		BorderForeground(BorderColor).
		Width(innerWidth).
		Padding(0, 1)

	footerStyle := lipgloss.NewStyle().
		BorderStyle(lipgloss.Border{Top: "─"}).
		BorderTop(true).
		BorderForeground(BorderColor).
		Foreground(SubtleColor).
		Width(innerWidth).
		Padding(0, 1)

	styledHeader := headerStyle.Render(BuildHeaderContent())
	styledFooter := footerStyle.Render(footerText)

	contentHeight := max(terminalHeight-2-lipgloss.Height(styledHeader)-lipgloss.Height(styledFooter), 0)
	styledContent := lipgloss.NewStyle().
		Width(innerWidth).
		Height(contentHeight).
		MaxHeight(contentHeight).
		Render(content)

	innerContent := lipgloss.JoinVertical(
		lipgloss.Left,
		styledHeader,
		styledContent,
		styledFooter,
	)

	borderStyle := lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(BorderColor).
		Width(max(terminalWidth-2, 0)).
		AlignVertical(lipgloss.Top)

	return lipgloss.Place(
		terminalWidth,
		terminalHeight,
		lipgloss.Left,
		lipgloss.Top,
		borderStyle.Render(innerContent),
	)
}
