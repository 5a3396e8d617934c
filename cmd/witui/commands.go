package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/muurk/witui/internal/app"
	"github.com/muurk/witui/internal/config"
	"github.com/muurk/witui/internal/logging"
	"github.com/muurk/witui/internal/nmcli"
	"github.com/muurk/witui/internal/tui"
	"github.com/muurk/witui/internal/ui"
)

// Command flags
var (
	scanFormat  string
	forceConfig bool
)

func init() {
	rootCmd.AddCommand(scanCmd)
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configPathCmd)
}

var scanTroubleshooting = []string{
	"Check that NetworkManager is running: systemctl status NetworkManager",
	"Check that Wi-Fi is enabled: nmcli radio wifi",
	"Point --nmcli at the binary if it is not on PATH",
	"Raise --timeout if scans are slow on this adapter",
}

func runDashboard(cmd *cobra.Command, args []string) error {
	if !ui.IsTerminal() {
		return errors.New("the dashboard needs a terminal; use 'witui scan' for plain output")
	}

	cfg, err := settings.load(cmd)
	if err != nil {
		return err
	}

	logger := logging.GetLogger()
	client := nmcli.NewClient(nmcliConfig(cfg), logger.Named("nmcli"))
	if err := client.Validate(cmd.Context()); err != nil {
		return err
	}
	state := app.New(client,
		app.WithLogger(logger.Named("app")),
		app.WithMinRefreshInterval(cfg.UI.MinRefreshInterval),
	)

	model := tui.New(cmd.Context(), state, tui.Options{
		TickInterval: cfg.UI.TickInterval,
		AutoRefresh:  cfg.UI.AutoRefresh,
		Keys:         cfg.Keys,
		Logger:       logger.Named("tui"),
	})

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(cmd.Context()))
	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return fmt.Errorf("dashboard error: %w", err)
	}

	return nil
}

// scanCmd prints one reconciled scan
var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "Scan once and print the access points",
	Long: `Run a single scan and print the reconciled inventory: one entry per
SSID at its strongest signal, strongest first. The connected network is
marked with *.`,
	Example: `  # Table output
  witui scan

  # Only one adapter, forcing a fresh scan
  witui scan --ifname wlan0 --rescan yes

  # JSON for scripting
  witui scan --format json`,
	RunE: runScan,
}

func init() {
	scanCmd.Flags().StringVar(&scanFormat, "format", "table", "Output format (table, json)")
}

func runScan(cmd *cobra.Command, args []string) error {
	if scanFormat != "table" && scanFormat != "json" {
		return fmt.Errorf("unknown format %q (expected table or json)", scanFormat)
	}

	cfg, err := settings.load(cmd)
	if err != nil {
		return err
	}

	logger := logging.GetLogger()
	client := nmcli.NewClient(nmcliConfig(cfg), logger.Named("nmcli"))
	state := app.New(client, app.WithLogger(logger.Named("app")))

	interactive := scanFormat == "table" && ui.IsTerminal()
	if interactive {
		iface := cfg.NMCLI.Interface
		if iface == "" {
			iface = "all"
		}
		fmt.Println(ui.RenderCommandHeader(ui.HeaderConfig{
			Title:   "Access point scan",
			Command: "witui scan",
			Params: []ui.Param{
				{Key: "Interface", Value: iface},
				{Key: "Rescan", Value: cfg.NMCLI.Rescan},
				{Key: "Timeout", Value: cfg.NMCLI.Timeout.String()},
			},
		}))
		fmt.Println()
	}

	if err := state.Refresh(cmd.Context()); err != nil {
		if interactive {
			fmt.Fprintln(os.Stderr, ui.RenderFailure("Scan failed", err, scanTroubleshooting))
			return errReported
		}
		return fmt.Errorf("scan failed: %w", err)
	}

	networks := state.Networks()
	logging.Debug("scan command complete", zap.Int("networks", len(networks)))

	if scanFormat == "json" {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(networks); err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		return nil
	}

	width := ui.MaxContentWidth
	if interactive {
		width = ui.GetTerminalWidth()
	}
	fmt.Println(ui.RenderTable(networks, width))
	return nil
}

// configCmd groups config file helpers
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the configuration file",
	Long: `The configuration file is optional. Without it the built-in defaults
apply. Command line flags override values from the file.`,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a configuration file with the default values",
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := configFilePath()
		if err != nil {
			return err
		}
		if err := config.WriteDefault(path, forceConfig); err != nil {
			return err
		}
		fmt.Printf("Wrote %s\n", path)
		return nil
	},
}

func init() {
	configInitCmd.Flags().BoolVar(&forceConfig, "force", false, "Overwrite an existing file")
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the configuration file location",
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := configFilePath()
		if err != nil {
			return err
		}
		fmt.Println(path)
		return nil
	},
}

func configFilePath() (string, error) {
	if settings.configPath != "" {
		return settings.configPath, nil
	}
	return config.GetConfigPath()
}
