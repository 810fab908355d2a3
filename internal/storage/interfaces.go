// Copyright 2026 GharSwitch Authors
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"time"

	"github.com/ketan14/GharSwitch/internal/types"
)

type StorageInterface interface {
	// Tenants
	CreateTenant(ctx context.Context, t *types.Tenant) (*types.Tenant, error)
	GetTenantByID(ctx context.Context, id string) (*types.Tenant, error)
	// LockTenantByID reads the tenant with a row lock; inside db.WithTx this
	// serializes concurrent quota-sensitive writes against the same tenant.
	LockTenantByID(ctx context.Context, id string) (*types.Tenant, error)
	ListTenants(ctx context.Context) ([]*types.Tenant, error)
	SetTenantStatus(ctx context.Context, id string, active bool, reason string) error

	// Memberships
	AddMember(ctx context.Context, tenantID, userID string, role types.Role) (string, error)
	GetMembership(ctx context.Context, tenantID, userID string) (*types.Membership, error)
	ListMembersByTenantID(ctx context.Context, tenantID string) ([]*types.Membership, error)
	CountMembers(ctx context.Context, tenantID string) (int, error)
	UpdateMemberRole(ctx context.Context, tenantID, userID string, role types.Role) error

	// Platform settings
	GetPlatformSettings(ctx context.Context) (*types.PlatformSettings, error)
	SetMaintenanceMode(ctx context.Context, enabled bool) error

	// Global device registry
	CreateGlobalDevice(ctx context.Context, gd *types.GlobalDevice) error
	GetGlobalDevice(ctx context.Context, id string) (*types.GlobalDevice, error)
	ListGlobalDevices(ctx context.Context) ([]*types.GlobalDevice, error)
	ClaimGlobalDevice(ctx context.Context, id, tenantID string) error
	SetGlobalDeviceStatus(ctx context.Context, id string, active bool) error

	// Tenant devices
	CreateDevice(ctx context.Context, d *types.Device) (*types.Device, error)
	GetDevice(ctx context.Context, tenantID, deviceID string) (*types.Device, error)
	ListDevicesByTenant(ctx context.Context, tenantID string) ([]*types.Device, error)
	CountDevices(ctx context.Context, tenantID string) (int, error)
	UpdateDevicePresence(ctx context.Context, tenantID, deviceID, status string, lastSeen time.Time) error

	// Assignment index
	AddAssignment(ctx context.Context, tenantID, deviceID, userID string) error
	RemoveAssignment(ctx context.Context, tenantID, deviceID, userID string) error
	GetDeviceGroup(ctx context.Context, tenantID, groupID string) (*types.DeviceGroup, error)
	SumAssignedChannels(ctx context.Context, tenantID, userID string) (devices int, switches int, err error)
	UpsertUserSummary(ctx context.Context, s *types.UserSummary) error
	GetUserSummary(ctx context.Context, userID string) (*types.UserSummary, error)
}
