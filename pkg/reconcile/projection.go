// Copyright 2026 GharSwitch Authors
// SPDX-License-Identifier: AGPL-3.0

// Package reconcile merges last-known switch state, in-flight pending
// commands, and local optimistic intent into one display projection per
// channel. It holds no mutation rights over any backend record.
package reconcile

import (
	"time"

	"github.com/ketan14/GharSwitch/internal/types"
)

type Projection string

const (
	ProjectionOn         Projection = "ON"
	ProjectionOff        Projection = "OFF"
	ProjectionTurningOn  Projection = "turning on"
	ProjectionTurningOff Projection = "turning off"
)

// PendingVisibilityTimeout bounds how long a pending entry keeps a control
// in its transitional state. Expiry only stops the label; the underlying
// command stays queued for the device.
const PendingVisibilityTimeout = 15 * time.Second

// Project computes the display projection for one channel. It is a pure
// function of its inputs and tolerates any arrival interleaving of the three
// asynchronous sources.
//
// Precedence: a live pending command targeting the channel wins and shows
// the transitional label for its desired action; any pending entry suffices,
// so ties between several go to the most recently issued one. With no live
// pending entry, an outstanding local intent shows the inversion of the
// last-known state. Otherwise the last-known boolean projects directly, with
// a missing state record reading as off.
func Project(target string, state *types.DeviceState, pending map[string]types.PendingCommand, intentAt time.Time, now time.Time) Projection {
	if cmd, ok := latestLivePending(target, pending, now); ok {
		if cmd.Action {
			return ProjectionTurningOn
		}
		return ProjectionTurningOff
	}

	last := false
	if state != nil {
		last = state.Switches[target]
	}

	if !intentAt.IsZero() && now.Sub(intentAt) < PendingVisibilityTimeout {
		if last {
			return ProjectionTurningOff
		}
		return ProjectionTurningOn
	}

	if last {
		return ProjectionOn
	}
	return ProjectionOff
}

func latestLivePending(target string, pending map[string]types.PendingCommand, now time.Time) (types.PendingCommand, bool) {
	var latest types.PendingCommand
	found := false
	for _, cmd := range pending {
		if cmd.Target != target {
			continue
		}
		if now.Sub(time.UnixMilli(cmd.Timestamp)) >= PendingVisibilityTimeout {
			continue
		}
		if !found || cmd.Timestamp > latest.Timestamp {
			latest = cmd
			found = true
		}
	}
	return latest, found
}
