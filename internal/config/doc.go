// Package config provides user configuration for witui.
//
// The configuration is an optional YAML file. When it does not exist the
// built-in defaults apply and nothing is written; `witui config init`
// creates a commented file to start from.
//
// # Configuration File Location
//
// The configuration file is stored in platform-appropriate locations:
//   - Linux: $XDG_CONFIG_HOME/witui/config.yaml or $HOME/.config/witui/config.yaml
//   - macOS: $HOME/.config/witui/config.yaml
//   - Windows: %LOCALAPPDATA%\witui\config.yaml
//
// # Example
//
//	version: 1
//	nmcli:
//	  path: nmcli
//	  interface: wlan0
//	  rescan: auto
//	  timeout: 15s
//	ui:
//	  tick_interval: 250ms
//	  auto_refresh: 30s
//	  min_refresh_interval: 1s
//	keys:
//	  quit: [q, ctrl+c]
//	  refresh: [r]
//	  up: [up, k]
//	  down: [down, j]
//
// Fields missing from the file keep their default values.
package config
