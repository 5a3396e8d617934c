package ui

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/muurk/witui/internal/network"
)

// Color palette for command output
var (
	PrimaryColor = lipgloss.Color("#7D56F4") // Purple - headers, borders
	SuccessColor = lipgloss.Color("#43BF6D") // Green - strong signal, connected
	ErrorColor   = lipgloss.Color("#FF5555") // Red - errors, weak signal
	WarningColor = lipgloss.Color("#FFA500") // Orange - fair signal
	MutedColor   = lipgloss.Color("#626262") // Gray - secondary info
	TextColor    = lipgloss.Color("#FFFFFF") // White - main content
)

// Layout constants
const (
	MinTerminalWidth = 60  // Minimum supported terminal width
	MaxContentWidth  = 100 // Maximum content width before capping
)

var (
	// HeaderTitleStyle is for the main command title
	HeaderTitleStyle = lipgloss.NewStyle().
				Foreground(TextColor).
				Bold(true).
				PaddingLeft(2)

	// HeaderCommandStyle is for the command path (e.g., "witui scan")
	HeaderCommandStyle = lipgloss.NewStyle().
				Foreground(MutedColor).
				PaddingLeft(2)

	// HeaderParamKeyStyle is for parameter keys (e.g., "Interface:")
	HeaderParamKeyStyle = lipgloss.NewStyle().
				Foreground(MutedColor).
				PaddingLeft(2)

	// HeaderParamValueStyle is for parameter values
	HeaderParamValueStyle = lipgloss.NewStyle().
				Foreground(TextColor)

	// TableHeaderStyle is for column titles
	TableHeaderStyle = lipgloss.NewStyle().
				Foreground(MutedColor).
				Bold(true)

	// ConnectedStyle marks the associated network
	ConnectedStyle = lipgloss.NewStyle().
			Foreground(SuccessColor).
			Bold(true)

	// SummaryStyle is for the line under the table
	SummaryStyle = lipgloss.NewStyle().
			Foreground(MutedColor).
			Italic(true)

	ErrorTitleStyle = lipgloss.NewStyle().
			Foreground(ErrorColor).
			Bold(true)

	ErrorMessageStyle = lipgloss.NewStyle().
				Foreground(ErrorColor)

	TroubleshootingTitleStyle = lipgloss.NewStyle().
					Foreground(MutedColor).
					Bold(true)

	TroubleshootingItemStyle = lipgloss.NewStyle().
					Foreground(MutedColor)
)

// Markers
const (
	ConnectedMarker = "*"
	FailureMarker   = "✗"
)

// SignalStyle colours a signal by level.
func SignalStyle(level network.Level) lipgloss.Style {
	switch level {
	case network.LevelExcellent:
		return lipgloss.NewStyle().Foreground(SuccessColor)
	case network.LevelGood:
		return lipgloss.NewStyle().Foreground(WarningColor)
	case network.LevelWeak:
		return lipgloss.NewStyle().Foreground(ErrorColor)
	default:
		return lipgloss.NewStyle().Foreground(MutedColor)
	}
}

// IsTerminal reports whether stdout is a terminal.
func IsTerminal() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// GetTerminalWidth returns the current terminal width, with fallback
func GetTerminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width < MinTerminalWidth {
		return MinTerminalWidth
	}
	if width > MaxContentWidth {
		return MaxContentWidth
	}
	return width
}
