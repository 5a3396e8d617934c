package network

import (
	"iter"
	"strconv"
	"strings"
)

// RecordFields is the minimum number of terse fields an access point line carries.
const RecordFields = 5

// SplitTerse splits one line of nmcli terse output into its fields,
// honouring backslash escapes of ':' and '\'.
func SplitTerse(line string) []string {
	var (
		fields []string
		b      strings.Builder
	)
	for i := 0; i < len(line); i++ {
		c := line[i]
		switch {
		case c == '\\' && i+1 < len(line) && (line[i+1] == ':' || line[i+1] == '\\'):
			b.WriteByte(line[i+1])
			i++
		case c == ':':
			fields = append(fields, b.String())
			b.Reset()
		default:
			b.WriteByte(c)
		}
	}
	return append(fields, b.String())
}

// ParseSignal converts a textual signal value into a percentage.
// Unparsable input yields 0; values are clamped to 0-100.
func ParseSignal(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0
	}
	return min(max(n, 0), 100)
}

// ParseRecord normalizes one SSID:SIGNAL:SECURITY:RATE:BARS line.
// It returns false if the line has fewer than RecordFields fields or an empty SSID.
func ParseRecord(line string) (AccessPoint, bool) {
	fields := SplitTerse(line)
	if len(fields) < RecordFields || fields[0] == "" {
		return AccessPoint{}, false
	}

	return AccessPoint{
		SSID:     fields[0],
		Signal:   ParseSignal(fields[1]),
		Security: strings.TrimSpace(fields[2]),
		Rate:     strings.TrimSpace(fields[3]),
		Bars:     strings.TrimRight(fields[4], " "),
	}, true
}

// ParseRecords lazily normalizes a sequence of raw lines, skipping rejected ones.
func ParseRecords(lines iter.Seq[string]) iter.Seq[AccessPoint] {
	return func(yield func(AccessPoint) bool) {
		for line := range lines {
			ap, ok := ParseRecord(line)
			if !ok {
				continue
			}
			if !yield(ap) {
				return
			}
		}
	}
}

// ParseActiveSSID finds the connected network in SSID:ACTIVE lines.
// It returns false when no line is active, or when more than one distinct
// SSID claims to be active.
func ParseActiveSSID(lines []string) (string, bool) {
	var active string
	for _, line := range lines {
		fields := SplitTerse(line)
		if len(fields) < 2 || fields[0] == "" {
			continue
		}
		switch strings.ToLower(strings.TrimSpace(fields[1])) {
		case "yes", "*":
		default:
			continue
		}
		if active != "" && active != fields[0] {
			return "", false
		}
		active = fields[0]
	}
	return active, active != ""
}
