// Package tui implements the interactive access point dashboard.
//
// The dashboard is a Bubble Tea program wrapped around an *app.State. The
// model translates terminal events into app.Keys and never edits the
// inventory or the selection itself:
//
//   - tea.WindowSizeMsg sets the viewport height through State.OnFrame
//   - tea.KeyMsg is resolved against a configurable KeyMap
//   - a periodic tick drives auto-refresh and notices a quit request
//
// Refreshes run the scan in a tea.Cmd so the screen stays responsive. The
// model calls State.BeginRefresh before dispatching the scan and
// State.FinishRefresh when the result message arrives, so the inventory is
// swapped in a single Update.
//
// # Usage Example
//
//	model := tui.New(state, tui.Options{Keys: cfg.Keys})
//	program := tea.NewProgram(model, tea.WithAltScreen())
//	if _, err := program.Run(); err != nil {
//	    return err
//	}
package tui
