// Copyright 2026 GharSwitch Authors
// SPDX-License-Identifier: AGPL-3.0

package reconcile

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/ketan14/GharSwitch/internal/logging"
	"github.com/ketan14/GharSwitch/internal/monitoring"
	"github.com/ketan14/GharSwitch/internal/rtdb"
	"github.com/ketan14/GharSwitch/internal/tracing"
	"github.com/ketan14/GharSwitch/internal/types"
)

// TickInterval drives recomputation when no new data arrives, purely so
// expired pending entries age out of the projection.
const TickInterval = time.Second

type TreeInterface interface {
	Subscribe(ctx context.Context, path string, handler func(payload []byte)) (rtdb.SubscriptionInterface, error)
}

// Viewer tracks one device's state and pending-command paths and keeps a
// per-channel projection current. The three inputs (state notifications,
// pending notifications, timer ticks) plus local intent may interleave in
// any order; every event recomputes the full projection from scratch through
// the pure function rather than applying deltas.
type Viewer struct {
	tree     TreeInterface
	tenantID string
	deviceID string
	channels int
	onUpdate func(map[string]Projection)

	mu      sync.Mutex
	state   *types.DeviceState
	pending map[string]types.PendingCommand
	intents map[string]time.Time
	current map[string]Projection

	stateSub   rtdb.SubscriptionInterface
	pendingSub rtdb.SubscriptionInterface
	cancel     context.CancelFunc
	done       chan struct{}

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewViewer(
	tree TreeInterface,
	tenantID, deviceID string,
	channels int,
	onUpdate func(map[string]Projection),
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Viewer {
	return &Viewer{
		tree:     tree,
		tenantID: tenantID,
		deviceID: deviceID,
		channels: channels,
		onUpdate: onUpdate,
		pending:  map[string]types.PendingCommand{},
		intents:  map[string]time.Time{},
		current:  map[string]Projection{},
		tracer:   tracer,
		monitor:  monitor,
		logger:   logger,
	}
}

// Start subscribes to both tree paths and starts the aging ticker.
func (v *Viewer) Start(ctx context.Context) error {
	ctx, span := v.tracer.Start(ctx, "reconcile.Viewer.Start")
	defer span.End()

	stateSub, err := v.tree.Subscribe(ctx, rtdb.StatePath(v.tenantID, v.deviceID), v.onStatePayload)
	if err != nil {
		return fmt.Errorf("failed to subscribe to state: %w", err)
	}
	v.stateSub = stateSub

	pendingSub, err := v.tree.Subscribe(ctx, rtdb.PendingPath(v.tenantID, v.deviceID), v.onPendingPayload)
	if err != nil {
		_ = stateSub.Cancel()
		return fmt.Errorf("failed to subscribe to pending queue: %w", err)
	}
	v.pendingSub = pendingSub

	tickCtx, cancel := context.WithCancel(context.Background())
	v.cancel = cancel
	v.done = make(chan struct{})
	go v.tick(tickCtx)

	v.recompute()
	return nil
}

// Stop cancels both subscriptions and the ticker.
func (v *Viewer) Stop() error {
	if v.cancel != nil {
		v.cancel()
		<-v.done
	}

	var err error
	if v.stateSub != nil {
		err = v.stateSub.Cancel()
	}
	if v.pendingSub != nil {
		if cErr := v.pendingSub.Cancel(); err == nil {
			err = cErr
		}
	}
	return err
}

// SetIntent records a locally-initiated toggle that has not yet been
// reflected upstream, keeping the control transitional through the network
// round-trip.
func (v *Viewer) SetIntent(target string) {
	v.mu.Lock()
	v.intents[target] = time.Now()
	v.mu.Unlock()
	v.recompute()
}

// Projections returns the latest computed projection per channel target.
func (v *Viewer) Projections() map[string]Projection {
	v.mu.Lock()
	defer v.mu.Unlock()

	out := make(map[string]Projection, len(v.current))
	for target, p := range v.current {
		out[target] = p
	}
	return out
}

func (v *Viewer) onStatePayload(payload []byte) {
	var state *types.DeviceState
	if err := json.Unmarshal(payload, &state); err != nil {
		v.logger.Warnf("ignoring undecodable state notification: %v", err)
		return
	}

	v.mu.Lock()
	v.state = state
	// A state report answers any outstanding intent for its channels.
	if state != nil {
		for target := range state.Switches {
			delete(v.intents, target)
		}
	}
	v.mu.Unlock()

	v.recompute()
}

func (v *Viewer) onPendingPayload(payload []byte) {
	var pending map[string]types.PendingCommand
	if err := json.Unmarshal(payload, &pending); err != nil {
		v.logger.Warnf("ignoring undecodable pending notification: %v", err)
		return
	}
	if pending == nil {
		pending = map[string]types.PendingCommand{}
	}

	v.mu.Lock()
	v.pending = pending
	// Once the command is visible upstream the pending entry carries the
	// transitional label; the local intent has served its purpose.
	for _, cmd := range pending {
		delete(v.intents, cmd.Target)
	}
	v.mu.Unlock()

	v.recompute()
}

func (v *Viewer) tick(ctx context.Context) {
	defer close(v.done)

	ticker := time.NewTicker(TickInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			v.recompute()
		}
	}
}

func (v *Viewer) recompute() {
	now := time.Now()

	v.mu.Lock()
	next := make(map[string]Projection, v.channels)
	for _, target := range types.SwitchTargets(v.channels) {
		next[target] = Project(target, v.state, v.pending, v.intents[target], now)
	}
	v.current = next
	v.mu.Unlock()

	// Callback runs outside the lock so it may call back into the viewer.
	if v.onUpdate != nil {
		v.onUpdate(next)
	}
}
