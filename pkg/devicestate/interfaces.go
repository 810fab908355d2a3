// Copyright 2026 GharSwitch Authors
// SPDX-License-Identifier: AGPL-3.0

package devicestate

import (
	"context"

	"github.com/ketan14/GharSwitch/internal/types"
	"github.com/ketan14/GharSwitch/pkg/authentication"
)

// DeviceView is a tenant device with its presence-derived status attached.
type DeviceView struct {
	*types.Device
	Targets []string `json:"targets"`
}

// StateSnapshot is one coherent read of a device's realtime records.
type StateSnapshot struct {
	DeviceID string                          `json:"device_id"`
	State    *types.DeviceState              `json:"state,omitempty"`
	Pending  map[string]types.PendingCommand `json:"pending"`
	Status   string                          `json:"status"`
	LastSeen int64                           `json:"last_seen,omitempty"`
}

type ServiceInterface interface {
	// ListDevices returns the caller's visible devices: all tenant devices
	// for admin tiers, only assigned devices for plain users. Status is
	// derived at read time.
	ListDevices(ctx context.Context, principal *authentication.Principal) ([]*DeviceView, error)
	// GetState reads state, pending queue, and presence for one device.
	GetState(ctx context.Context, principal *authentication.Principal, deviceID string) (*StateSnapshot, error)
}

type StorageInterface interface {
	GetDevice(ctx context.Context, tenantID, deviceID string) (*types.Device, error)
	ListDevicesByTenant(ctx context.Context, tenantID string) ([]*types.Device, error)
}

type TreeInterface interface {
	GetValue(ctx context.Context, path string, dest interface{}) (bool, error)
	GetPending(ctx context.Context, tenantID, deviceID string) (map[string]types.PendingCommand, error)
}
