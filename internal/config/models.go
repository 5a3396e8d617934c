package config

import (
	"errors"
	"fmt"
	"time"
)

// CurrentVersion is the only configuration format version understood.
const CurrentVersion = 1

// Config represents the entire user configuration file.
type Config struct {
	Version int         `yaml:"version"`
	NMCLI   NMCLIConfig `yaml:"nmcli"`
	UI      UIConfig    `yaml:"ui"`
	Keys    KeyBindings `yaml:"keys"`
}

// NMCLIConfig controls how the scan collaborator is invoked.
type NMCLIConfig struct {
	Path      string        `yaml:"path"`                // Binary name or path
	Interface string        `yaml:"interface,omitempty"` // Wireless device, empty for all
	Rescan    string        `yaml:"rescan"`              // auto, yes or no
	Timeout   time.Duration `yaml:"timeout"`             // Upper bound per nmcli call
}

// UIConfig controls the event loop.
type UIConfig struct {
	TickInterval       time.Duration `yaml:"tick_interval"`        // Event poll interval
	AutoRefresh        time.Duration `yaml:"auto_refresh"`         // Periodic rescan, 0 disables
	MinRefreshInterval time.Duration `yaml:"min_refresh_interval"` // Refresh throttle, 0 disables
}

// KeyBindings maps actions to key names as reported by the terminal
// (for example "q", "ctrl+c", "up").
type KeyBindings struct {
	Quit    []string `yaml:"quit"`
	Refresh []string `yaml:"refresh"`
	Up      []string `yaml:"up"`
	Down    []string `yaml:"down"`
}

// Default returns a Config with default values.
func Default() *Config {
	return &Config{
		Version: CurrentVersion,
		NMCLI: NMCLIConfig{
			Path:    "nmcli",
			Rescan:  "auto",
			Timeout: 15 * time.Second,
		},
		UI: UIConfig{
			TickInterval: 250 * time.Millisecond,
		},
		Keys: KeyBindings{
			Quit:    []string{"q", "ctrl+c"},
			Refresh: []string{"r"},
			Up:      []string{"up", "k"},
			Down:    []string{"down", "j"},
		},
	}
}

// Validate reports every problem found in the configuration.
func (c *Config) Validate() error {
	var errs []error

	if c.Version != CurrentVersion {
		errs = append(errs, fmt.Errorf("unsupported config version: %d (expected %d)", c.Version, CurrentVersion))
	}

	if c.NMCLI.Path == "" {
		errs = append(errs, errors.New("nmcli.path must not be empty"))
	}
	switch c.NMCLI.Rescan {
	case "auto", "yes", "no":
	default:
		errs = append(errs, fmt.Errorf("nmcli.rescan must be auto, yes or no, got %q", c.NMCLI.Rescan))
	}
	if c.NMCLI.Timeout <= 0 {
		errs = append(errs, fmt.Errorf("nmcli.timeout must be positive, got %s", c.NMCLI.Timeout))
	}

	if c.UI.TickInterval <= 0 {
		errs = append(errs, fmt.Errorf("ui.tick_interval must be positive, got %s", c.UI.TickInterval))
	}
	if c.UI.AutoRefresh < 0 {
		errs = append(errs, fmt.Errorf("ui.auto_refresh must not be negative, got %s", c.UI.AutoRefresh))
	}
	if c.UI.MinRefreshInterval < 0 {
		errs = append(errs, fmt.Errorf("ui.min_refresh_interval must not be negative, got %s", c.UI.MinRefreshInterval))
	}

	for name, keys := range map[string][]string{
		"quit":    c.Keys.Quit,
		"refresh": c.Keys.Refresh,
		"up":      c.Keys.Up,
		"down":    c.Keys.Down,
	} {
		if len(keys) == 0 {
			errs = append(errs, fmt.Errorf("keys.%s must list at least one key", name))
		}
	}

	return errors.Join(errs...)
}
