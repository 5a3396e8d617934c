// Package app holds the application state of witui: the reconciled access
// point inventory, the selection and scroll window over it, and the running
// flag that ends the event loop.
//
// State is owned by a single event loop and is not safe for concurrent use.
// The only I/O it performs is calling its Source during a refresh.
//
// # Refresh
//
// A refresh asks the Source for raw scan lines, normalizes and reconciles
// them into a signal-ranked inventory, looks up the connected network if the
// Source also implements ActiveSource, and then replaces the inventory
// wholesale:
//
//	state := app.New(nmcli.NewClient(cfg, logger), app.WithLogger(logger))
//	if err := state.Refresh(ctx); err != nil {
//	    // inventory is unchanged; err wraps the Source failure
//	}
//
// Event loops that must not block while the Source runs split the same work
// in three steps: BeginRefresh on the loop, Collect off the loop, and
// FinishRefresh back on the loop.
//
// # Failure model
//
// Nothing in this package is fatal. A failing Source leaves the previous
// inventory intact and is reported as a *SourceError. Malformed lines are
// dropped silently. An undeterminable connected network is logged once at
// info level and every entry is shown as not connected.
package app
