// Package logging provides structured logging for witui.
//
// This package wraps a package-level zap logger. Logging is silent unless a
// level is requested with --log-level or the WITUI_LOG_LEVEL environment
// variable. The dashboard owns the terminal, so log output goes to a file
// (or stderr for non-interactive commands), never stdout.
//
// # Log Levels
//
//   - Debug: Detailed debugging info (nmcli arguments, key events, scan sizes)
//   - Info: Notable conditions (connected network could not be determined)
//   - Warn: Non-fatal failures (nmcli missing or failing)
//   - Error: Startup failures
//
// # Configuration
//
//	if err := logging.Initialize("debug", "witui-debug.log"); err != nil {
//	    return err
//	}
//	defer logging.Sync()
//
// Components take a *zap.Logger explicitly; pass logging.GetLogger().
package logging
