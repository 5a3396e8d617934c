package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/muurk/witui/internal/config"
	"github.com/muurk/witui/internal/logging"
	"github.com/muurk/witui/internal/nmcli"
)

// defaultLogFile receives log output from the dashboard, which owns the
// terminal. Other commands log to stderr.
const defaultLogFile = "witui-debug.log"

// settingsFlags are the command line overrides for the config file.
type settingsFlags struct {
	configPath  string
	nmcliPath   string
	ifname      string
	rescan      string
	timeout     time.Duration
	autoRefresh time.Duration
	logLevel    string
	logFile     string
}

var settings settingsFlags

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&settings.configPath, "config", "", "Config file (default: "+defaultConfigHint()+")")
	flags.StringVar(&settings.nmcliPath, "nmcli", "", "Path to the nmcli binary")
	flags.StringVar(&settings.ifname, "ifname", "", "Wireless interface to scan (default: all)")
	flags.StringVar(&settings.rescan, "rescan", "", "Ask nmcli to rescan: auto, yes or no")
	flags.DurationVar(&settings.timeout, "timeout", 0, "Upper bound for each nmcli call (e.g. 15s)")
	flags.StringVar(&settings.logLevel, "log-level", "", "Log level: debug, info, warn, error (default: $"+logging.LogLevelEnvVar+" or silent)")
	flags.StringVar(&settings.logFile, "log-file", "", "Log file (default: "+defaultLogFile+" for the dashboard, stderr otherwise)")

	rootCmd.Flags().DurationVar(&settings.autoRefresh, "auto-refresh", 0, "Rescan periodically, e.g. 30s (default: off)")
}

func defaultConfigHint() string {
	path, err := config.GetConfigPath()
	if err != nil {
		return "platform config dir"
	}
	return path
}

// load reads the config file and applies every flag the user set.
func (s *settingsFlags) load(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load(s.configPath)
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("nmcli") {
		cfg.NMCLI.Path = s.nmcliPath
	}
	if flags.Changed("ifname") {
		cfg.NMCLI.Interface = s.ifname
	}
	if flags.Changed("rescan") {
		cfg.NMCLI.Rescan = s.rescan
	}
	if flags.Changed("timeout") {
		cfg.NMCLI.Timeout = s.timeout
	}
	if flags.Changed("auto-refresh") {
		cfg.UI.AutoRefresh = s.autoRefresh
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid settings: %w", err)
	}
	return cfg, nil
}

func initLogging(cmd *cobra.Command) error {
	path := settings.logFile
	if path == "" && cmd == rootCmd {
		path = defaultLogFile
	}
	return logging.Initialize(settings.logLevel, path)
}

func nmcliConfig(cfg *config.Config) nmcli.Config {
	return nmcli.Config{
		Path:      cfg.NMCLI.Path,
		Interface: cfg.NMCLI.Interface,
		Rescan:    cfg.NMCLI.Rescan,
		Timeout:   cfg.NMCLI.Timeout,
	}
}
