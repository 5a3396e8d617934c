package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/x/ansi"

	"github.com/muurk/witui/internal/network"
)

// Fixed column widths; SSID takes the rest.
const (
	markerWidth   = 2
	signalWidth   = 6
	barsWidth     = 5
	securityWidth = 16
	rateWidth     = 12
)

// RenderTable renders the inventory as an aligned table, strongest first,
// followed by a one-line summary.
func RenderTable(networks []network.AccessPoint, width int) string {
	width = max(width, MinTerminalWidth)
	ssidWidth := max(width-markerWidth-signalWidth-barsWidth-securityWidth-rateWidth-4, 8)

	var b strings.Builder
	b.WriteString(TableHeaderStyle.Render(strings.Join([]string{
		padRight("", markerWidth) + padRight("SSID", ssidWidth),
		padLeft("SIGNAL", signalWidth),
		padRight("BARS", barsWidth),
		padRight("SECURITY", securityWidth),
		padRight("RATE", rateWidth),
	}, " ")))
	b.WriteString("\n")

	for _, ap := range networks {
		marker := padRight("", markerWidth)
		if ap.Connected {
			marker = ConnectedStyle.Render(padRight(ConnectedMarker, markerWidth))
		}
		security := ap.Security
		if ap.IsOpen() {
			security = "open"
		}
		bars := ap.Bars
		if bars == "" {
			bars = network.BarsFor(ap.Signal)
		}

		signalStyle := SignalStyle(ap.Level())
		b.WriteString(strings.Join([]string{
			marker + padRight(ap.SSID, ssidWidth),
			signalStyle.Render(padLeft(fmt.Sprintf("%d%%", ap.Signal), signalWidth)),
			signalStyle.Render(padRight(bars, barsWidth)),
			padRight(security, securityWidth),
			padRight(ap.Rate, rateWidth),
		}, " "))
		b.WriteString("\n")
	}

	b.WriteString(SummaryStyle.Render(Summary(networks)))
	return b.String()
}

// Summary describes the inventory in one line, e.g. "3 networks, connected to Home".
func Summary(networks []network.AccessPoint) string {
	noun := "networks"
	if len(networks) == 1 {
		noun = "network"
	}
	summary := fmt.Sprintf("%d %s", len(networks), noun)
	for _, ap := range networks {
		if ap.Connected {
			return summary + ", connected to " + ap.SSID
		}
	}
	return summary
}

// padRight truncates or pads s on the right to width cells.
func padRight(s string, width int) string {
	if ansi.StringWidth(s) > width {
		s = ansi.Truncate(s, width, "…")
	}
	return s + strings.Repeat(" ", max(width-ansi.StringWidth(s), 0))
}

// padLeft pads s on the left to width cells.
func padLeft(s string, width int) string {
	return strings.Repeat(" ", max(width-ansi.StringWidth(s), 0)) + s
}
