// Copyright 2026 GharSwitch Authors
// SPDX-License-Identifier: AGPL-3.0

package platform

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"

	"github.com/ketan14/GharSwitch/internal/kinds"
	"github.com/ketan14/GharSwitch/internal/logging"
	"github.com/ketan14/GharSwitch/internal/monitoring"
	"github.com/ketan14/GharSwitch/internal/storage"
	"github.com/ketan14/GharSwitch/internal/tracing"
	"github.com/ketan14/GharSwitch/internal/types"
	"github.com/ketan14/GharSwitch/pkg/authentication"
)

//go:generate mockgen -build_flags=--mod=mod -package platform -destination ./mock_interfaces.go -source=./interfaces.go

func newService(s StorageInterface) *Service {
	return NewService(s, tracing.NewNoopTracer(), monitoring.NewNoopMonitor(), logging.NewNoopLogger())
}

func superAdmin() *authentication.Principal {
	return &authentication.Principal{UserID: "root-1", Role: types.RoleSuperAdmin}
}

func TestEveryOperationRequiresSuperAdmin(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := newService(NewMockStorageInterface(ctrl))
	admin := &authentication.Principal{UserID: "admin-1", Role: types.RoleTenantAdmin, TenantID: "tenant-1"}

	tests := []struct {
		name string
		call func() error
	}{
		{"ListTenants", func() error { _, err := svc.ListTenants(context.Background(), admin); return err }},
		{"SetTenantStatus", func() error { return svc.SetTenantStatus(context.Background(), admin, "tenant-2", false, "abuse") }},
		{"SetMaintenanceMode", func() error { return svc.SetMaintenanceMode(context.Background(), admin, true) }},
		{"CreateGlobalDevice", func() error {
			_, err := svc.CreateGlobalDevice(context.Background(), admin, "device-1", "gs-4ch", "code-123456")
			return err
		}},
		{"SetGlobalDeviceStatus", func() error { return svc.SetGlobalDeviceStatus(context.Background(), admin, "device-1", false) }},
		{"ListGlobalDevices", func() error { _, err := svc.ListGlobalDevices(context.Background(), admin); return err }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, kinds.PermissionDenied, kinds.KindOf(tt.call()))
		})
	}
}

func TestSetTenantStatus_SuspendAndResume(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStorage := NewMockStorageInterface(ctrl)
	svc := newService(mockStorage)

	mockStorage.EXPECT().SetTenantStatus(gomock.Any(), "tenant-2", false, "payment overdue").Return(nil)
	require.NoError(t, svc.SetTenantStatus(context.Background(), superAdmin(), "tenant-2", false, "payment overdue"))

	// Resuming clears any stored reason.
	mockStorage.EXPECT().SetTenantStatus(gomock.Any(), "tenant-2", true, "").Return(nil)
	require.NoError(t, svc.SetTenantStatus(context.Background(), superAdmin(), "tenant-2", true, "stale reason"))
}

func TestSetTenantStatus_SuspensionNeedsReason(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := newService(NewMockStorageInterface(ctrl))

	err := svc.SetTenantStatus(context.Background(), superAdmin(), "tenant-2", false, "")
	assert.Equal(t, kinds.InvalidArgument, kinds.KindOf(err))
}

func TestSetTenantStatus_UnknownTenant(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStorage := NewMockStorageInterface(ctrl)
	mockStorage.EXPECT().SetTenantStatus(gomock.Any(), "ghost", false, "abuse").Return(storage.ErrNotFound)

	err := newService(mockStorage).SetTenantStatus(context.Background(), superAdmin(), "ghost", false, "abuse")
	assert.Equal(t, kinds.NotFound, kinds.KindOf(err))
}

func TestCreateGlobalDevice_HashesClaimCode(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStorage := NewMockStorageInterface(ctrl)
	mockStorage.EXPECT().CreateGlobalDevice(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, gd *types.GlobalDevice) error {
			assert.NotEqual(t, "code-123456", gd.SecretHash)
			assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(gd.SecretHash), []byte("code-123456")))
			assert.True(t, gd.Active)
			assert.Nil(t, gd.ClaimedBy)
			return nil
		})

	device, err := newService(mockStorage).
		CreateGlobalDevice(context.Background(), superAdmin(), "device-1", "gs-4ch", "code-123456")

	require.NoError(t, err)
	assert.Equal(t, "device-1", device.ID)
}

func TestCreateGlobalDevice_ShortClaimCode(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	_, err := newService(NewMockStorageInterface(ctrl)).
		CreateGlobalDevice(context.Background(), superAdmin(), "device-1", "gs-4ch", "short")

	assert.Equal(t, kinds.InvalidArgument, kinds.KindOf(err))
}

func TestCreateGlobalDevice_DuplicateID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStorage := NewMockStorageInterface(ctrl)
	mockStorage.EXPECT().CreateGlobalDevice(gomock.Any(), gomock.Any()).Return(storage.ErrDuplicateKey)

	_, err := newService(mockStorage).
		CreateGlobalDevice(context.Background(), superAdmin(), "device-1", "gs-4ch", "code-123456")

	assert.Equal(t, kinds.AlreadyExists, kinds.KindOf(err))
}

func TestSetMaintenanceMode(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStorage := NewMockStorageInterface(ctrl)
	mockStorage.EXPECT().SetMaintenanceMode(gomock.Any(), true).Return(nil)

	assert.NoError(t, newService(mockStorage).SetMaintenanceMode(context.Background(), superAdmin(), true))
}

func TestListTenants(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStorage := NewMockStorageInterface(ctrl)
	mockStorage.EXPECT().ListTenants(gomock.Any()).
		Return([]*types.Tenant{{ID: "tenant-1"}, {ID: "tenant-2", Active: false}}, nil)

	tenants, err := newService(mockStorage).ListTenants(context.Background(), superAdmin())
	require.NoError(t, err)
	assert.Len(t, tenants, 2)
}
