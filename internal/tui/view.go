package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/x/ansi"

	"github.com/muurk/witui/internal/network"
)

// columns holds the table column widths for one terminal width.
type columns struct {
	ssid     int
	security int // 0 hides the column
	rate     int // 0 hides the column
}

// layoutColumns gives the SSID column whatever the fixed columns leave,
// dropping rate and then security when the terminal is narrow.
func layoutColumns(width int) columns {
	c := columns{security: securityColWidth, rate: rateColWidth}
	fixed := func() int {
		n := markerColWidth + signalColWidth + 1
		if c.security > 0 {
			n += c.security + 1
		}
		if c.rate > 0 {
			n += c.rate + 1
		}
		return n
	}

	const minSSID = 12
	if width-fixed() < minSSID {
		c.rate = 0
	}
	if width-fixed() < minSSID {
		c.security = 0
	}
	c.ssid = max(width-fixed(), 1)
	return c
}

// View renders the dashboard
func (m Model) View() string {
	if m.Width == 0 || m.Height == 0 {
		return ""
	}

	width := max(m.Width-4, MinTerminalWidth)
	cols := layoutColumns(width)

	var b strings.Builder
	b.WriteString(m.renderColumnHeader(cols))
	b.WriteString("\n")

	rows := m.state.VisibleRows()
	drawn := 0
	if m.state.Len() == 0 {
		msg := "No access points found. Press " + m.Keys.Refresh.Help().Key + " to rescan."
		if m.state.Refreshing() {
			msg = "Scanning for access points..."
		}
		if rows > 0 {
			b.WriteString(EmptyStyle.Render(msg))
			b.WriteString("\n")
			drawn = 1
		}
	} else {
		networks := m.state.Networks()
		selected, _ := m.state.Selected()
		start, end := m.state.Window()
		for i := start; i < end; i++ {
			b.WriteString(renderRow(networks[i], cols, i == selected))
			b.WriteString("\n")
			drawn++
		}
	}
	for ; drawn < rows; drawn++ {
		b.WriteString("\n")
	}

	b.WriteString(m.renderStatus())

	return RenderApplicationContainer(b.String(), m.Help.View(m.Keys), m.Width, m.Height)
}

func (m Model) renderColumnHeader(cols columns) string {
	cells := []string{
		pad("", markerColWidth) + pad("SSID", cols.ssid),
		pad("SIGNAL", signalColWidth),
	}
	if cols.security > 0 {
		cells = append(cells, pad("SECURITY", cols.security))
	}
	if cols.rate > 0 {
		cells = append(cells, pad("RATE", cols.rate))
	}
	return ColumnHeaderStyle.Render(strings.Join(cells, " "))
}

// renderRow renders one access point. The selected row is drawn as a single
// highlighted block so cell colours do not break the background.
func renderRow(ap network.AccessPoint, cols columns, selected bool) string {
	marker := pad("", markerColWidth)
	if ap.Connected {
		marker = pad("●", markerColWidth)
	}
	ssid := pad(displaySSID(ap.SSID), cols.ssid)
	signal := pad(signalCell(ap), signalColWidth)

	var rest []string
	if cols.security > 0 {
		security := ap.Security
		if ap.IsOpen() {
			security = "open"
		}
		rest = append(rest, pad(security, cols.security))
	}
	if cols.rate > 0 {
		rest = append(rest, pad(ap.Rate, cols.rate))
	}

	if selected {
		line := strings.Join(append([]string{marker + ssid, signal}, rest...), " ")
		return SelectedRowStyle.Render(line)
	}

	if ap.Connected {
		marker = ConnectedStyle.Render(marker)
	}
	cells := append([]string{
		marker + RowStyle.Render(ssid),
		SignalStyle(ap.Level()).Render(signal),
	}, rest...)
	return strings.Join(cells, " ")
}

func (m Model) renderStatus() string {
	status := m.status
	switch {
	case m.state.Refreshing():
		return m.Spinner.View() + " " + StatusStyle.Render(status)
	case m.state.LastError() != nil:
		return ErrorStyle.Render("✗ " + firstLine(status))
	case status == "":
		return ""
	default:
		return StatusStyle.Render(status)
	}
}

// signalCell renders the bars and the percentage, e.g. "▂▄▆_  72%".
func signalCell(ap network.AccessPoint) string {
	bars := ap.Bars
	if bars == "" {
		bars = network.BarsFor(ap.Signal)
	}
	return fmt.Sprintf("%s %4s", pad(bars, 4), fmt.Sprintf("%d%%", ap.Signal))
}

// displaySSID replaces control characters, which SSIDs may legally contain.
func displaySSID(ssid string) string {
	return strings.Map(func(r rune) rune {
		if r < 32 || r == 127 {
			return '?'
		}
		return r
	}, ssid)
}

// pad truncates or space-pads s to exactly width terminal cells.
func pad(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if ansi.StringWidth(s) > width {
		s = ansi.Truncate(s, width, "…")
	}
	return s + strings.Repeat(" ", max(width-ansi.StringWidth(s), 0))
}

func firstLine(s string) string {
	line, _, _ := strings.Cut(s, "\n")
	return line
}
