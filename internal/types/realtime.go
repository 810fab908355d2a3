// Copyright 2026 GharSwitch Authors
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"fmt"
)

// SwitchTargets returns the fixed channel identifiers for a device with the
// given channel count: s1..sN.
func SwitchTargets(channels int) []string {
	targets := make([]string, 0, channels)
	for i := 1; i <= channels; i++ {
		targets = append(targets, fmt.Sprintf("s%d", i))
	}
	return targets
}

// ValidTarget reports whether target names one of the device's channels.
func ValidTarget(target string, channels int) bool {
	for _, t := range SwitchTargets(channels) {
		if t == target {
			return true
		}
	}
	return false
}

// Diagnostics is the optional health block a device attaches to its state
// reports.
type Diagnostics struct {
	RSSI   int   `json:"rssi"`
	Heap   int64 `json:"heap"`
	Uptime int64 `json:"uptime"`
}

// DeviceState is the device-owned last-known state record in the realtime
// tree. Mutated only by the device's own reports, never by user actions.
type DeviceState struct {
	Switches    map[string]bool `json:"switches"`
	Diagnostics *Diagnostics    `json:"diagnostics,omitempty"`
	LastUpdated int64           `json:"last_updated"`
}

// PendingCommand is one issued, not-yet-applied switch instruction.
// Timestamp is epoch milliseconds of issuance.
type PendingCommand struct {
	Action    bool   `json:"action"`
	Target    string `json:"target"`
	Timestamp int64  `json:"timestamp"`
	IssuedBy  string `json:"issued_by,omitempty"`
}

// Presence is the heartbeat record written by the device gateway. Liveness
// is always derived from LastSeen at read time, never stored.
type Presence struct {
	Online   bool  `json:"online"`
	LastSeen int64 `json:"last_seen"`
}
