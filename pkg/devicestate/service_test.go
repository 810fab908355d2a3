// Copyright 2026 GharSwitch Authors
// SPDX-License-Identifier: AGPL-3.0

package devicestate

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/ketan14/GharSwitch/internal/kinds"
	"github.com/ketan14/GharSwitch/internal/logging"
	"github.com/ketan14/GharSwitch/internal/monitoring"
	"github.com/ketan14/GharSwitch/internal/rtdb"
	"github.com/ketan14/GharSwitch/internal/storage"
	"github.com/ketan14/GharSwitch/internal/tracing"
	"github.com/ketan14/GharSwitch/internal/types"
	"github.com/ketan14/GharSwitch/pkg/authentication"
)

//go:generate mockgen -build_flags=--mod=mod -package devicestate -destination ./mock_interfaces.go -source=./interfaces.go

func newService(s StorageInterface, tree TreeInterface) *Service {
	return NewService(s, tree, tracing.NewNoopTracer(), monitoring.NewNoopMonitor(), logging.NewNoopLogger())
}

func admin() *authentication.Principal {
	return &authentication.Principal{UserID: "admin-1", Role: types.RoleTenantAdmin, TenantID: "tenant-1"}
}

func plainUser() *authentication.Principal {
	return &authentication.Principal{UserID: "user-1", Role: types.RoleUser, TenantID: "tenant-1"}
}

func tenantDevices(now time.Time) []*types.Device {
	fresh := now.Add(-time.Minute)
	stale := now.Add(-time.Hour)
	return []*types.Device{
		{ID: "device-1", TenantID: "tenant-1", Channels: 4, Active: true, AssignedUsers: []string{"user-1"}, LastSeen: &fresh},
		{ID: "device-2", TenantID: "tenant-1", Channels: 2, Active: true, AssignedUsers: []string{"user-2"}, LastSeen: &stale},
		{ID: "device-3", TenantID: "tenant-1", Channels: 1, Active: true},
	}
}

func TestListDevices_AdminSeesAllWithDerivedStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStorage := NewMockStorageInterface(ctrl)
	mockTree := NewMockTreeInterface(ctrl)

	now := time.Now()
	mockStorage.EXPECT().ListDevicesByTenant(gomock.Any(), "tenant-1").Return(tenantDevices(now), nil)

	views, err := newService(mockStorage, mockTree).ListDevices(context.Background(), admin())

	require.NoError(t, err)
	require.Len(t, views, 3)
	assert.Equal(t, types.StatusOnline, views[0].Status)
	assert.Equal(t, types.StatusOffline, views[1].Status)
	assert.Equal(t, types.StatusOffline, views[2].Status)
	assert.Equal(t, []string{"s1", "s2", "s3", "s4"}, views[0].Targets)
}

func TestListDevices_PlainUserSeesOnlyAssigned(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStorage := NewMockStorageInterface(ctrl)
	mockTree := NewMockTreeInterface(ctrl)

	mockStorage.EXPECT().ListDevicesByTenant(gomock.Any(), "tenant-1").Return(tenantDevices(time.Now()), nil)

	views, err := newService(mockStorage, mockTree).ListDevices(context.Background(), plainUser())

	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, "device-1", views[0].ID)
}

func TestGetState_ReturnsSnapshot(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStorage := NewMockStorageInterface(ctrl)
	mockTree := NewMockTreeInterface(ctrl)

	mockStorage.EXPECT().GetDevice(gomock.Any(), "tenant-1", "device-1").
		Return(&types.Device{ID: "device-1", TenantID: "tenant-1", Channels: 4, Active: true, AssignedUsers: []string{"user-1"}}, nil)

	now := time.Now()
	mockTree.EXPECT().GetValue(gomock.Any(), rtdb.StatePath("tenant-1", "device-1"), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, dest interface{}) (bool, error) {
			*dest.(*types.DeviceState) = types.DeviceState{
				Switches:    map[string]bool{"s1": true, "s2": false},
				LastUpdated: now.UnixMilli(),
			}
			return true, nil
		})
	mockTree.EXPECT().GetPending(gomock.Any(), "tenant-1", "device-1").
		Return(map[string]types.PendingCommand{
			"123-abc": {Action: true, Target: "s2", Timestamp: now.UnixMilli()},
		}, nil)
	mockTree.EXPECT().GetValue(gomock.Any(), rtdb.PresencePath("tenant-1", "device-1"), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, dest interface{}) (bool, error) {
			*dest.(*types.Presence) = types.Presence{Online: true, LastSeen: now.UnixMilli()}
			return true, nil
		})

	snapshot, err := newService(mockStorage, mockTree).GetState(context.Background(), plainUser(), "device-1")

	require.NoError(t, err)
	require.NotNil(t, snapshot.State)
	assert.True(t, snapshot.State.Switches["s1"])
	assert.Len(t, snapshot.Pending, 1)
	assert.Equal(t, types.StatusOnline, snapshot.Status)
	assert.Equal(t, now.UnixMilli(), snapshot.LastSeen)
}

func TestGetState_NoRecordsReadsOffline(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStorage := NewMockStorageInterface(ctrl)
	mockTree := NewMockTreeInterface(ctrl)

	mockStorage.EXPECT().GetDevice(gomock.Any(), "tenant-1", "device-1").
		Return(&types.Device{ID: "device-1", TenantID: "tenant-1", Channels: 4, Active: true, AssignedUsers: []string{"user-1"}}, nil)
	mockTree.EXPECT().GetValue(gomock.Any(), gomock.Any(), gomock.Any()).Return(false, nil).Times(2)
	mockTree.EXPECT().GetPending(gomock.Any(), "tenant-1", "device-1").Return(map[string]types.PendingCommand{}, nil)

	snapshot, err := newService(mockStorage, mockTree).GetState(context.Background(), plainUser(), "device-1")

	require.NoError(t, err)
	assert.Nil(t, snapshot.State)
	assert.Empty(t, snapshot.Pending)
	assert.Equal(t, types.StatusOffline, snapshot.Status)
}

func TestGetState_Denials(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStorage := NewMockStorageInterface(ctrl)
	mockTree := NewMockTreeInterface(ctrl)
	svc := newService(mockStorage, mockTree)

	mockStorage.EXPECT().GetDevice(gomock.Any(), "tenant-1", "missing").Return(nil, storage.ErrNotFound)
	_, err := svc.GetState(context.Background(), plainUser(), "missing")
	assert.Equal(t, kinds.NotFound, kinds.KindOf(err))

	mockStorage.EXPECT().GetDevice(gomock.Any(), "tenant-1", "device-2").
		Return(&types.Device{ID: "device-2", TenantID: "tenant-1", AssignedUsers: []string{"user-2"}}, nil)
	_, err = svc.GetState(context.Background(), plainUser(), "device-2")
	assert.Equal(t, kinds.PermissionDenied, kinds.KindOf(err))
}
