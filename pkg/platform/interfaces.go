// Copyright 2026 GharSwitch Authors
// SPDX-License-Identifier: AGPL-3.0

package platform

import (
	"context"

	"github.com/ketan14/GharSwitch/internal/types"
	"github.com/ketan14/GharSwitch/pkg/authentication"
)

// ServiceInterface is the super-admin control plane. Every operation requires
// the platform role; tenant-scoped claims never reach it.
type ServiceInterface interface {
	ListTenants(ctx context.Context, principal *authentication.Principal) ([]*types.Tenant, error)
	// SetTenantStatus suspends or resumes a tenant. Suspension blocks every
	// command for the tenant at the authorization gate; it does not touch
	// tenant data.
	SetTenantStatus(ctx context.Context, principal *authentication.Principal, tenantID string, active bool, reason string) error
	// SetMaintenanceMode toggles the platform-wide kill switch checked
	// before any other authorization step.
	SetMaintenanceMode(ctx context.Context, principal *authentication.Principal, enabled bool) error
	// CreateGlobalDevice seeds a registry entry for a piece of hardware.
	// The claim code is stored as a hash; the plaintext ships with the
	// hardware and is never persisted.
	CreateGlobalDevice(ctx context.Context, principal *authentication.Principal, deviceID, model, claimCode string) (*types.GlobalDevice, error)
	// SetGlobalDeviceStatus retires or reactivates a device platform-wide,
	// independent of any tenant claim.
	SetGlobalDeviceStatus(ctx context.Context, principal *authentication.Principal, deviceID string, active bool) error
	ListGlobalDevices(ctx context.Context, principal *authentication.Principal) ([]*types.GlobalDevice, error)
}

type StorageInterface interface {
	ListTenants(ctx context.Context) ([]*types.Tenant, error)
	SetTenantStatus(ctx context.Context, id string, active bool, reason string) error
	SetMaintenanceMode(ctx context.Context, enabled bool) error
	CreateGlobalDevice(ctx context.Context, gd *types.GlobalDevice) error
	SetGlobalDeviceStatus(ctx context.Context, id string, active bool) error
	ListGlobalDevices(ctx context.Context) ([]*types.GlobalDevice, error)
}
