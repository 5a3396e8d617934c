// Package nmcli runs the NetworkManager command line client to obtain
// raw Wi-Fi scan results.
//
// Every invocation uses terse mode (-t) with an explicit field list, so each
// output line is one colon-separated record that internal/network can parse:
//
//	nmcli -t -f SSID,SIGNAL,SECURITY,RATE,BARS device wifi list
//	nmcli -t -f SSID,ACTIVE device wifi list --rescan no
//
// Calls are bounded by Config.Timeout. Failures are reported as
// *NotFoundError, *ExecutionError or *TimeoutError.
//
// Usage:
//
//	client := nmcli.NewClient(nmcli.DefaultConfig(), logger)
//	lines, err := client.ListAccessPoints(ctx)
package nmcli
