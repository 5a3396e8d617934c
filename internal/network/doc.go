// Package network turns raw nmcli scan output into the access point inventory
// shown by witui.
//
// # Records
//
// nmcli is invoked in terse mode (-t), which prints one access point per line
// with colon-separated fields:
//
//	SSID:SIGNAL:SECURITY:RATE:BARS
//
// Colons and backslashes inside a value are escaped with a backslash, so an
// SSID such as "Cafe:Guest" arrives as "Cafe\:Guest". SplitTerse undoes that
// escaping before ParseRecord builds an AccessPoint.
//
// Lines with fewer than five fields or an empty SSID are rejected. Hidden
// networks are dropped rather than shown as blank rows. Signal is parsed to an
// integer at this boundary; anything unparsable ranks as 0.
//
// # Reconciliation
//
// A scan can report the same SSID several times (one line per BSSID, or across
// rescans). Reconcile keeps one entry per SSID, the one with the strictly
// highest signal (first seen wins on a tie), and returns the survivors ordered
// by signal descending with SSID ascending as a tie breaker:
//
//	records := network.ParseRecords(slices.Values(lines))
//	inventory := network.Reconcile(records)
//	if ssid, ok := network.ParseActiveSSID(activeLines); ok {
//	    network.MarkConnected(inventory, ssid)
//	}
//
// The package performs no I/O.
package network
