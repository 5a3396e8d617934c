package network

import (
	"cmp"
	"iter"
	"slices"
)

// Reconcile merges access point records into a deduplicated inventory.
//
// One entry per SSID survives: a later record replaces the retained one only
// if its signal is strictly greater. The result is sorted by signal descending,
// then SSID ascending, so equal input multisets always produce the same order.
// An empty input yields an empty, non-nil slice.
func Reconcile(records iter.Seq[AccessPoint]) []AccessPoint {
	best := make(map[string]AccessPoint)
	for ap := range records {
		if seen, ok := best[ap.SSID]; ok && ap.Signal <= seen.Signal {
			continue
		}
		best[ap.SSID] = ap
	}

	inventory := make([]AccessPoint, 0, len(best))
	for _, ap := range best {
		inventory = append(inventory, ap)
	}
	slices.SortFunc(inventory, compareRank)
	return inventory
}

// compareRank orders by signal descending, then SSID ascending.
func compareRank(a, b AccessPoint) int {
	if c := cmp.Compare(b.Signal, a.Signal); c != 0 {
		return c
	}
	return cmp.Compare(a.SSID, b.SSID)
}

// MarkConnected flags the entry whose SSID equals ssid as connected and
// clears the flag on every other entry. It reports whether a match was found.
func MarkConnected(inventory []AccessPoint, ssid string) bool {
	found := false
	for i := range inventory {
		inventory[i].Connected = ssid != "" && inventory[i].SSID == ssid
		if inventory[i].Connected {
			found = true
		}
	}
	return found
}
