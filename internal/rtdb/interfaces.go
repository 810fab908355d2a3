// Copyright 2026 GharSwitch Authors
// SPDX-License-Identifier: AGPL-3.0

package rtdb

import (
	"context"

	"github.com/ketan14/GharSwitch/internal/types"
)

// TreeInterface is the replicated realtime tree: path-addressed values with
// point writes, point reads, deletion, and path-scoped subscriptions that
// deliver the full current value at the path on every change. There is no
// query language beyond direct path addressing.
type TreeInterface interface {
	SetValue(ctx context.Context, path string, value interface{}) error
	// GetValue reports found=false when nothing exists at the path.
	GetValue(ctx context.Context, path string, dest interface{}) (bool, error)
	DeleteValue(ctx context.Context, path string) error

	// Pending-command queue operations, keyed by command id under the
	// device's pending path.
	PutPending(ctx context.Context, tenantID, deviceID, commandID string, cmd *types.PendingCommand) error
	GetPending(ctx context.Context, tenantID, deviceID string) (map[string]types.PendingCommand, error)
	ClearPending(ctx context.Context, tenantID, deviceID, commandID string) error

	// Subscribe registers handler for the path. Every notification carries
	// the full serialized value currently at the path. The returned handle
	// must be canceled by the subscriber; teardown is deterministic.
	Subscribe(ctx context.Context, path string, handler func(payload []byte)) (SubscriptionInterface, error)

	// SubscribePattern registers handler for every path matching a glob
	// pattern. The handler receives the concrete path alongside the
	// payload so it can tell matching paths apart.
	SubscribePattern(ctx context.Context, pattern string, handler func(path string, payload []byte)) (SubscriptionInterface, error)
}

// SubscriptionInterface is an independently cancelable registration on one
// tree path.
type SubscriptionInterface interface {
	Cancel() error
}
