// Copyright 2026 GharSwitch Authors
// SPDX-License-Identifier: AGPL-3.0

package authorization

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/ketan14/GharSwitch/internal/kinds"
	"github.com/ketan14/GharSwitch/internal/logging"
	"github.com/ketan14/GharSwitch/internal/monitoring"
	"github.com/ketan14/GharSwitch/internal/storage"
	"github.com/ketan14/GharSwitch/internal/tracing"
	"github.com/ketan14/GharSwitch/internal/types"
	"github.com/ketan14/GharSwitch/pkg/authentication"
)

//go:generate mockgen -build_flags=--mod=mod -package authorization -destination ./mock_storage.go -source=./interfaces.go

func newGate(s StorageInterface) *Gate {
	return NewGate(s, tracing.NewNoopTracer(), monitoring.NewNoopMonitor(), logging.NewNoopLogger())
}

func principal(role types.Role) *authentication.Principal {
	return &authentication.Principal{UserID: "user-1", Role: role, TenantID: "tenant-1"}
}

func activeTenant() *types.Tenant {
	return &types.Tenant{ID: "tenant-1", Name: "Acme", Tier: types.TierBasic, Active: true}
}

func membership(role types.Role) *types.Membership {
	return &types.Membership{TenantID: "tenant-1", UserID: "user-1", Role: role}
}

func activeDevice(assigned ...string) *types.Device {
	return &types.Device{
		ID:            "device-1",
		TenantID:      "tenant-1",
		Name:          "Hall switch",
		Channels:      4,
		Active:        true,
		AssignedUsers: assigned,
	}
}

// The decision sequence short-circuits on the first failing check; mock
// expectations double as the assertion that later lookups never run.
func TestGate_CheckCommand(t *testing.T) {
	tests := []struct {
		name         string
		principal    *authentication.Principal
		setupMocks   func(*MockStorageInterface)
		expectedKind kinds.Kind
	}{
		{
			name:      "Maintenance mode - unavailable",
			principal: principal(types.RoleTenantAdmin),
			setupMocks: func(s *MockStorageInterface) {
				s.EXPECT().GetPlatformSettings(gomock.Any()).Return(&types.PlatformSettings{MaintenanceMode: true}, nil)
			},
			expectedKind: kinds.Unavailable,
		},
		{
			name:      "Tenant missing - permission denied",
			principal: principal(types.RoleTenantAdmin),
			setupMocks: func(s *MockStorageInterface) {
				s.EXPECT().GetPlatformSettings(gomock.Any()).Return(&types.PlatformSettings{}, nil)
				s.EXPECT().GetTenantByID(gomock.Any(), "tenant-1").Return(nil, storage.ErrNotFound)
			},
			expectedKind: kinds.PermissionDenied,
		},
		{
			name:      "Tenant suspended - permission denied",
			principal: principal(types.RoleTenantAdmin),
			setupMocks: func(s *MockStorageInterface) {
				s.EXPECT().GetPlatformSettings(gomock.Any()).Return(&types.PlatformSettings{}, nil)
				tenant := activeTenant()
				tenant.Active = false
				s.EXPECT().GetTenantByID(gomock.Any(), "tenant-1").Return(tenant, nil)
			},
			expectedKind: kinds.PermissionDenied,
		},
		{
			name:      "No membership - permission denied",
			principal: principal(types.RoleTenantAdmin),
			setupMocks: func(s *MockStorageInterface) {
				s.EXPECT().GetPlatformSettings(gomock.Any()).Return(&types.PlatformSettings{}, nil)
				s.EXPECT().GetTenantByID(gomock.Any(), "tenant-1").Return(activeTenant(), nil)
				s.EXPECT().GetMembership(gomock.Any(), "tenant-1", "user-1").Return(nil, storage.ErrNotFound)
			},
			expectedKind: kinds.PermissionDenied,
		},
		{
			name:      "Unknown role fails closed before device lookup",
			principal: principal(types.RoleUnknown),
			setupMocks: func(s *MockStorageInterface) {
				s.EXPECT().GetPlatformSettings(gomock.Any()).Return(&types.PlatformSettings{}, nil)
				s.EXPECT().GetTenantByID(gomock.Any(), "tenant-1").Return(activeTenant(), nil)
				s.EXPECT().GetMembership(gomock.Any(), "tenant-1", "user-1").Return(membership(types.RoleUser), nil)
			},
			expectedKind: kinds.PermissionDenied,
		},
		{
			name:      "Device missing - not found",
			principal: principal(types.RoleUser),
			setupMocks: func(s *MockStorageInterface) {
				s.EXPECT().GetPlatformSettings(gomock.Any()).Return(&types.PlatformSettings{}, nil)
				s.EXPECT().GetTenantByID(gomock.Any(), "tenant-1").Return(activeTenant(), nil)
				s.EXPECT().GetMembership(gomock.Any(), "tenant-1", "user-1").Return(membership(types.RoleUser), nil)
				s.EXPECT().GetDevice(gomock.Any(), "tenant-1", "device-1").Return(nil, storage.ErrNotFound)
			},
			expectedKind: kinds.NotFound,
		},
		{
			name:      "Device deactivated - permission denied",
			principal: principal(types.RoleUser),
			setupMocks: func(s *MockStorageInterface) {
				s.EXPECT().GetPlatformSettings(gomock.Any()).Return(&types.PlatformSettings{}, nil)
				s.EXPECT().GetTenantByID(gomock.Any(), "tenant-1").Return(activeTenant(), nil)
				s.EXPECT().GetMembership(gomock.Any(), "tenant-1", "user-1").Return(membership(types.RoleUser), nil)
				device := activeDevice("user-1")
				device.Active = false
				s.EXPECT().GetDevice(gomock.Any(), "tenant-1", "device-1").Return(device, nil)
			},
			expectedKind: kinds.PermissionDenied,
		},
		{
			name:      "Plain user not assigned - permission denied",
			principal: principal(types.RoleUser),
			setupMocks: func(s *MockStorageInterface) {
				s.EXPECT().GetPlatformSettings(gomock.Any()).Return(&types.PlatformSettings{}, nil)
				s.EXPECT().GetTenantByID(gomock.Any(), "tenant-1").Return(activeTenant(), nil)
				s.EXPECT().GetMembership(gomock.Any(), "tenant-1", "user-1").Return(membership(types.RoleUser), nil)
				s.EXPECT().GetDevice(gomock.Any(), "tenant-1", "device-1").Return(activeDevice("someone-else"), nil)
			},
			expectedKind: kinds.PermissionDenied,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockStorage := NewMockStorageInterface(ctrl)
			tt.setupMocks(mockStorage)

			device, err := newGate(mockStorage).CheckCommand(context.Background(), tt.principal, "device-1")

			assert.Nil(t, device)
			require.Error(t, err)
			assert.Equal(t, tt.expectedKind, kinds.KindOf(err))
		})
	}
}

func TestGate_CheckCommand_PermitsAssignedUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStorage := NewMockStorageInterface(ctrl)
	mockStorage.EXPECT().GetPlatformSettings(gomock.Any()).Return(&types.PlatformSettings{}, nil)
	mockStorage.EXPECT().GetTenantByID(gomock.Any(), "tenant-1").Return(activeTenant(), nil)
	mockStorage.EXPECT().GetMembership(gomock.Any(), "tenant-1", "user-1").Return(membership(types.RoleUser), nil)
	mockStorage.EXPECT().GetDevice(gomock.Any(), "tenant-1", "device-1").Return(activeDevice("user-2", "user-1"), nil)

	device, err := newGate(mockStorage).CheckCommand(context.Background(), principal(types.RoleUser), "device-1")

	require.NoError(t, err)
	assert.Equal(t, "device-1", device.ID)
}

// Admin tiers bypass the per-device assignment check.
func TestGate_CheckCommand_AdminBypassesAssignment(t *testing.T) {
	for _, role := range []types.Role{types.RoleSuperAdmin, types.RoleTenantAdmin, types.RoleAdmin} {
		t.Run(role.String(), func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockStorage := NewMockStorageInterface(ctrl)
			mockStorage.EXPECT().GetPlatformSettings(gomock.Any()).Return(&types.PlatformSettings{}, nil)
			mockStorage.EXPECT().GetTenantByID(gomock.Any(), "tenant-1").Return(activeTenant(), nil)
			mockStorage.EXPECT().GetMembership(gomock.Any(), "tenant-1", "user-1").Return(membership(role), nil)
			mockStorage.EXPECT().GetDevice(gomock.Any(), "tenant-1", "device-1").Return(activeDevice(), nil)

			device, err := newGate(mockStorage).CheckCommand(context.Background(), principal(role), "device-1")

			require.NoError(t, err)
			assert.Equal(t, "device-1", device.ID)
		})
	}
}

// Assignment is the only difference between a denial and a permit for a
// plain user; granting it flips the decision with no other input changing.
func TestGate_CheckCommand_AssignmentFlipsDecision(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStorage := NewMockStorageInterface(ctrl)
	mockStorage.EXPECT().GetPlatformSettings(gomock.Any()).Return(&types.PlatformSettings{}, nil).Times(2)
	mockStorage.EXPECT().GetTenantByID(gomock.Any(), "tenant-1").Return(activeTenant(), nil).Times(2)
	mockStorage.EXPECT().GetMembership(gomock.Any(), "tenant-1", "user-1").Return(membership(types.RoleUser), nil).Times(2)

	gomock.InOrder(
		mockStorage.EXPECT().GetDevice(gomock.Any(), "tenant-1", "device-1").Return(activeDevice(), nil),
		mockStorage.EXPECT().GetDevice(gomock.Any(), "tenant-1", "device-1").Return(activeDevice("user-1"), nil),
	)

	gate := newGate(mockStorage)

	_, err := gate.CheckCommand(context.Background(), principal(types.RoleUser), "device-1")
	assert.Equal(t, kinds.PermissionDenied, kinds.KindOf(err))

	device, err := gate.CheckCommand(context.Background(), principal(types.RoleUser), "device-1")
	require.NoError(t, err)
	assert.Equal(t, "device-1", device.ID)
}
