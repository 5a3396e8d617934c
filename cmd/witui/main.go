// Witui is a terminal dashboard for nearby Wi-Fi access points.
//
// It scans through NetworkManager's nmcli, keeps one entry per SSID at its
// strongest signal, and lists the result strongest first with a movable
// selection.
//
// Usage:
//
//	witui [command] [flags]
//
// Running without arguments launches the interactive dashboard.
// See 'witui --help' for available commands.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/muurk/witui/internal/logging"
	"github.com/muurk/witui/internal/version"
)

// errReported is returned by commands that already printed their failure.
var errReported = errors.New("failure already reported")

func main() {
	err := rootCmd.Execute()
	logging.Sync()
	if err != nil {
		if !errors.Is(err, errReported) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "witui",
	Short: "Wi-Fi access point dashboard",
	Long: `A terminal dashboard for nearby Wi-Fi access points.

Scans with nmcli, keeps the strongest report of each SSID and lists the
networks strongest first. Use the arrow keys (or j/k) to move, r to rescan
and q to quit.

If no command is specified, the interactive dashboard launches.`,
	Version:       version.Version,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initLogging(cmd)
	},
	RunE: runDashboard,
}

func init() {
	// Disable automatic completion command generation
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("witui %s\n", version.Full())
	},
}
