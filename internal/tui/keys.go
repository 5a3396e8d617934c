package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/muurk/witui/internal/app"
	"github.com/muurk/witui/internal/config"
)

// KeyMap defines the dashboard key bindings
type KeyMap struct {
	Quit     key.Binding
	Refresh  key.Binding
	Up       key.Binding
	Down     key.Binding
	Top      key.Binding
	Bottom   key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	Help     key.Binding
}

// NewKeyMap builds the key map. Quit, refresh and the arrow moves come from
// the configuration; the rest are fixed.
func NewKeyMap(bindings config.KeyBindings) KeyMap {
	return KeyMap{
		Quit: key.NewBinding(
			key.WithKeys(bindings.Quit...),
			key.WithHelp(helpKeys(bindings.Quit), "quit"),
		),
		Refresh: key.NewBinding(
			key.WithKeys(bindings.Refresh...),
			key.WithHelp(helpKeys(bindings.Refresh), "rescan"),
		),
		Up: key.NewBinding(
			key.WithKeys(bindings.Up...),
			key.WithHelp(helpKeys(bindings.Up), "up"),
		),
		Down: key.NewBinding(
			key.WithKeys(bindings.Down...),
			key.WithHelp(helpKeys(bindings.Down), "down"),
		),
		Top: key.NewBinding(
			key.WithKeys("home", "g"),
			key.WithHelp("home/g", "first"),
		),
		Bottom: key.NewBinding(
			key.WithKeys("end", "G"),
			key.WithHelp("end/G", "last"),
		),
		PageUp: key.NewBinding(
			key.WithKeys("pgup"),
			key.WithHelp("pgup", "page up"),
		),
		PageDown: key.NewBinding(
			key.WithKeys("pgdown"),
			key.WithHelp("pgdn", "page down"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more keys"),
		),
	}
}

// ShortHelp returns keybindings to be shown in the mini help view
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Refresh, k.Help, k.Quit}
}

// FullHelp returns keybindings for the expanded help view
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.PageUp, k.PageDown},
		{k.Top, k.Bottom},
		{k.Refresh, k.Help, k.Quit},
	}
}

// Resolve maps a key press to an application key. Quit wins over every
// other binding.
func (k KeyMap) Resolve(msg tea.KeyMsg) app.Key {
	switch {
	case key.Matches(msg, k.Quit):
		return app.KeyQuit
	case key.Matches(msg, k.Refresh):
		return app.KeyRefresh
	case key.Matches(msg, k.Up):
		return app.KeyUp
	case key.Matches(msg, k.Down):
		return app.KeyDown
	case key.Matches(msg, k.Top):
		return app.KeyTop
	case key.Matches(msg, k.Bottom):
		return app.KeyBottom
	case key.Matches(msg, k.PageUp):
		return app.KeyPageUp
	case key.Matches(msg, k.PageDown):
		return app.KeyPageDown
	default:
		return app.KeyNone
	}
}

// helpKeys renders a key list for the help footer.
func helpKeys(keys []string) string {
	labels := make([]string, len(keys))
	for i, k := range keys {
		switch k {
		case "up":
			labels[i] = "↑"
		case "down":
			labels[i] = "↓"
		default:
			labels[i] = k
		}
	}
	return strings.Join(labels, "/")
}
