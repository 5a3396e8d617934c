package network

import "fmt"

// Signal strength thresholds, in percent.
const (
	SignalExcellent = 70
	SignalGood      = 40
)

// Level is a coarse bucket of signal strength used for display.
type Level int

const (
	LevelNone Level = iota
	LevelWeak
	LevelGood
	LevelExcellent
)

// String returns a human-readable name for the level
func (l Level) String() string {
	switch l {
	case LevelNone:
		return "none"
	case LevelWeak:
		return "weak"
	case LevelGood:
		return "good"
	case LevelExcellent:
		return "excellent"
	default:
		return fmt.Sprintf("Level(%d)", int(l))
	}
}

// AccessPoint is one normalized Wi-Fi network observed by a scan.
// SSID is the identity key within an inventory.
type AccessPoint struct {
	// SSID is the advertised network name. Never empty once parsed.
	SSID string `json:"ssid"`

	// Signal is the signal strength in percent (0-100).
	Signal int `json:"signal"`

	// Security is the nmcli security descriptor (e.g. "WPA2", "WPA1 WPA2", "").
	Security string `json:"security"`

	// Rate is the nominal link rate as reported (e.g. "54 Mbit/s").
	Rate string `json:"rate"`

	// Bars is the signal-bars glyph reported by nmcli (e.g. "▂▄▆_").
	Bars string `json:"bars"`

	// Connected is true if this is the interface's currently associated network.
	Connected bool `json:"connected"`
}

// Level buckets the signal strength.
func (ap AccessPoint) Level() Level {
	switch {
	case ap.Signal >= SignalExcellent:
		return LevelExcellent
	case ap.Signal >= SignalGood:
		return LevelGood
	case ap.Signal > 0:
		return LevelWeak
	default:
		return LevelNone
	}
}

// IsOpen reports whether the network advertises no security.
func (ap AccessPoint) IsOpen() bool {
	return ap.Security == "" || ap.Security == "--"
}

// String returns a human-readable string representation of the access point
func (ap AccessPoint) String() string {
	return fmt.Sprintf("%s (%d%%, %s)", ap.SSID, ap.Signal, ap.securityLabel())
}

func (ap AccessPoint) securityLabel() string {
	if ap.IsOpen() {
		return "open"
	}
	return ap.Security
}

// BarsFor draws a four-step bars glyph for a signal the way nmcli does,
// for records that arrive without one.
func BarsFor(signal int) string {
	switch {
	case signal > 80:
		return "▂▄▆█"
	case signal > 55:
		return "▂▄▆_"
	case signal > 30:
		return "▂▄__"
	case signal > 5:
		return "▂___"
	default:
		return "____"
	}
}
