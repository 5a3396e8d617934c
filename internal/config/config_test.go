package config

import (
	"os"
	"path/filepath"
	"runtime"
	"slices"
	"strings"
	"testing"
	"time"
)

func TestGetConfigDir(t *testing.T) {
	if runtime.GOOS != "linux" {
		t.Skip("XDG_CONFIG_HOME only applies on Linux")
	}

	t.Run("XDG_CONFIG_HOME", func(t *testing.T) {
		xdg := t.TempDir()
		t.Setenv("XDG_CONFIG_HOME", xdg)

		configDir, err := GetConfigDir()
		if err != nil {
			t.Fatalf("GetConfigDir() error = %v", err)
		}
		if want := filepath.Join(xdg, "witui"); configDir != want {
			t.Errorf("GetConfigDir() = %v, want %v", configDir, want)
		}
	})

	t.Run("HOME fallback", func(t *testing.T) {
		home := t.TempDir()
		t.Setenv("XDG_CONFIG_HOME", "")
		t.Setenv("HOME", home)

		configDir, err := GetConfigDir()
		if err != nil {
			t.Fatalf("GetConfigDir() error = %v", err)
		}
		if want := filepath.Join(home, ".config", "witui"); configDir != want {
			t.Errorf("GetConfigDir() = %v, want %v", configDir, want)
		}
	})
}

func TestGetConfigPath(t *testing.T) {
	configPath, err := GetConfigPath()
	if err != nil {
		t.Fatalf("GetConfigPath() error = %v", err)
	}

	if filepath.Base(configPath) != "config.yaml" {
		t.Errorf("GetConfigPath() should end with 'config.yaml', got: %v", configPath)
	}
}

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Version != 1 {
		t.Errorf("Default().Version = %v, want 1", cfg.Version)
	}
	if cfg.NMCLI.Path != "nmcli" {
		t.Errorf("Default().NMCLI.Path = %q, want nmcli", cfg.NMCLI.Path)
	}
	if cfg.NMCLI.Timeout != 15*time.Second {
		t.Errorf("Default().NMCLI.Timeout = %v, want 15s", cfg.NMCLI.Timeout)
	}
	if cfg.UI.TickInterval != 250*time.Millisecond {
		t.Errorf("Default().UI.TickInterval = %v, want 250ms", cfg.UI.TickInterval)
	}
	if cfg.UI.AutoRefresh != 0 {
		t.Errorf("Default().UI.AutoRefresh = %v, want 0", cfg.UI.AutoRefresh)
	}
	if cfg.UI.MinRefreshInterval != 0 {
		t.Errorf("Default().UI.MinRefreshInterval = %v, want 0 (no throttle)", cfg.UI.MinRefreshInterval)
	}
	if !slices.Equal(cfg.Keys.Quit, []string{"q", "ctrl+c"}) {
		t.Errorf("Default().Keys.Quit = %v", cfg.Keys.Quit)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Default().Validate() error = %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"default", func(*Config) {}, ""},
		{"bad version", func(c *Config) { c.Version = 2 }, "unsupported config version"},
		{"empty path", func(c *Config) { c.NMCLI.Path = "" }, "nmcli.path"},
		{"bad rescan", func(c *Config) { c.NMCLI.Rescan = "always" }, "nmcli.rescan"},
		{"zero timeout", func(c *Config) { c.NMCLI.Timeout = 0 }, "nmcli.timeout"},
		{"zero tick", func(c *Config) { c.UI.TickInterval = 0 }, "ui.tick_interval"},
		{"negative auto refresh", func(c *Config) { c.UI.AutoRefresh = -time.Second }, "ui.auto_refresh"},
		{"negative throttle", func(c *Config) { c.UI.MinRefreshInterval = -1 }, "ui.min_refresh_interval"},
		{"no quit key", func(c *Config) { c.Keys.Quit = nil }, "keys.quit"},
		{"zero throttle ok", func(c *Config) { c.UI.MinRefreshInterval = 0 }, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()

			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("Validate() error = %v, want nil", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() error = %v, want mention of %q", err, tt.wantErr)
			}
		})
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		check   func(t *testing.T, cfg *Config)
		wantErr bool
	}{
		{
			name: "partial file keeps defaults",
			yaml: "version: 1\nnmcli:\n  interface: wlan0\n",
			check: func(t *testing.T, cfg *Config) {
				if cfg.NMCLI.Interface != "wlan0" {
					t.Errorf("Interface = %q, want wlan0", cfg.NMCLI.Interface)
				}
				if cfg.NMCLI.Path != "nmcli" {
					t.Errorf("Path = %q, want default nmcli", cfg.NMCLI.Path)
				}
				if cfg.UI.TickInterval != 250*time.Millisecond {
					t.Errorf("TickInterval = %v, want default", cfg.UI.TickInterval)
				}
			},
		},
		{
			name: "durations and keys",
			yaml: "ui:\n  tick_interval: 100ms\n  auto_refresh: 30s\nkeys:\n  refresh: [r, f5]\n",
			check: func(t *testing.T, cfg *Config) {
				if cfg.UI.TickInterval != 100*time.Millisecond {
					t.Errorf("TickInterval = %v, want 100ms", cfg.UI.TickInterval)
				}
				if cfg.UI.AutoRefresh != 30*time.Second {
					t.Errorf("AutoRefresh = %v, want 30s", cfg.UI.AutoRefresh)
				}
				if !slices.Equal(cfg.Keys.Refresh, []string{"r", "f5"}) {
					t.Errorf("Keys.Refresh = %v, want [r f5]", cfg.Keys.Refresh)
				}
				if !slices.Equal(cfg.Keys.Up, []string{"up", "k"}) {
					t.Errorf("Keys.Up = %v, want default", cfg.Keys.Up)
				}
			},
		},
		{name: "empty file", yaml: "", check: func(t *testing.T, cfg *Config) {
			if cfg.Version != 1 {
				t.Errorf("Version = %d, want 1", cfg.Version)
			}
		}},
		{name: "malformed", yaml: "nmcli: [", wantErr: true},
		{name: "invalid value", yaml: "nmcli:\n  rescan: sometimes\n", wantErr: true},
		{name: "bad duration", yaml: "ui:\n  tick_interval: soon\n", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Parse([]byte(tt.yaml))
			if tt.wantErr {
				if err == nil {
					t.Error("Parse() expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("Parse() error = %v", err)
			}
			tt.check(t, cfg)
		})
	}
}

func TestLoad_MissingDefaultFile(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("HOME", t.TempDir())
	t.Setenv("LOCALAPPDATA", t.TempDir())

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") error = %v", err)
	}
	if cfg.NMCLI.Path != "nmcli" {
		t.Errorf("Load(\"\") did not return defaults: %+v", cfg)
	}

	path, _ := GetConfigPath()
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("Load should not create a config file")
	}
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Error("Load() of a missing explicit path should fail")
	}
}

func TestSaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "config.yaml")

	cfg := Default()
	cfg.NMCLI.Interface = "wlp3s0"
	cfg.UI.AutoRefresh = 45 * time.Second
	cfg.Keys.Quit = []string{"x"}

	if err := cfg.Save(path); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	if _, err := os.Stat(path + ".tmp"); !os.IsNotExist(err) {
		t.Error("temporary file left behind after Save")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read saved file: %v", err)
	}
	if !strings.HasPrefix(string(data), "# witui configuration file") {
		t.Error("saved file is missing the header comment")
	}
	if !strings.Contains(string(data), "auto_refresh: 45s") {
		t.Errorf("durations should be written in Go syntax:\n%s", data)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if loaded.NMCLI.Interface != "wlp3s0" {
		t.Errorf("Interface = %q, want wlp3s0", loaded.NMCLI.Interface)
	}
	if loaded.UI.AutoRefresh != 45*time.Second {
		t.Errorf("AutoRefresh = %v, want 45s", loaded.UI.AutoRefresh)
	}
	if !slices.Equal(loaded.Keys.Quit, []string{"x"}) {
		t.Errorf("Keys.Quit = %v, want [x]", loaded.Keys.Quit)
	}
}

func TestWriteDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	if err := WriteDefault(path, false); err != nil {
		t.Fatalf("WriteDefault() error = %v", err)
	}
	if err := WriteDefault(path, false); err == nil {
		t.Error("WriteDefault() should refuse to overwrite without force")
	}
	if err := WriteDefault(path, true); err != nil {
		t.Errorf("WriteDefault(force) error = %v", err)
	}

	if _, err := Load(path); err != nil {
		t.Errorf("written default does not load: %v", err)
	}
}
