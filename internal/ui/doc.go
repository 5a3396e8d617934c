// Package ui renders non-interactive terminal output for witui commands.
//
// Unlike the dashboard in internal/tui, these components follow a "run once
// and exit" pattern: `witui scan` prints a header, the ranked inventory as a
// table, and a failure box when the scan source is unavailable.
//
//	fmt.Println(ui.RenderCommandHeader(ui.HeaderConfig{
//	    Title:   "Access point scan",
//	    Command: "witui scan",
//	    Params:  []ui.Param{{"Interface", "wlan0"}},
//	}))
//	fmt.Println(ui.RenderTable(networks, ui.GetTerminalWidth()))
//
// Output width follows the terminal (golang.org/x/term) and falls back to
// MinTerminalWidth when stdout is not a terminal.
package ui
