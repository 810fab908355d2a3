// Copyright 2026 GharSwitch Authors
// SPDX-License-Identifier: AGPL-3.0

// Package devicestate reads device-owned state and derives presence. This
// side only reads the realtime tree; state and heartbeats are written by the
// devices themselves through the gateway.
package devicestate

import (
	"time"

	"github.com/ketan14/GharSwitch/internal/types"
)

// LivenessThreshold absorbs one missed 10-minute heartbeat plus clock and
// network skew.
const LivenessThreshold = 12 * time.Minute

// StatusFromLastSeen derives ONLINE/OFFLINE from a last-seen timestamp in
// epoch milliseconds. It is a pure function of its inputs and must be
// recomputed on every read; a stored status boolean would go stale without a
// corresponding write.
func StatusFromLastSeen(lastSeenMillis int64, now time.Time) string {
	if lastSeenMillis <= 0 {
		return types.StatusOffline
	}
	if now.Sub(time.UnixMilli(lastSeenMillis)) < LivenessThreshold {
		return types.StatusOnline
	}
	return types.StatusOffline
}

// StatusFromPresence derives status from a heartbeat record. A missing
// record, an explicit offline mark, or a stale heartbeat all read OFFLINE.
func StatusFromPresence(p *types.Presence, now time.Time) string {
	if p == nil || !p.Online {
		return types.StatusOffline
	}
	return StatusFromLastSeen(p.LastSeen, now)
}
