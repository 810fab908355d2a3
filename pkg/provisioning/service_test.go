// Copyright 2026 GharSwitch Authors
// SPDX-License-Identifier: AGPL-3.0

package provisioning

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

//go:generate mockgen -build_flags=--mod=mod -package provisioning -destination ./mock_interfaces.go -source=./interfaces.go

type passthroughTx struct{}

func (passthroughTx) WithTx(ctx context.Context, fn func(context.Context) error) error {
	return fn(ctx)
}

func newService(s StorageInterface, issuer authentication.TokenIssuerInterface) *Service {
	return NewService(s, passthroughTx{}, issuer, tracing.NewNoopTracer(), monitoring.NewNoopMonitor(), logging.NewNoopLogger())
}

func superAdmin() *authentication.Principal {
	return &authentication.Principal{UserID: "root-1", Role: types.RoleSuperAdmin}
}

func tenantAdmin() *authentication.Principal {
	return &authentication.Principal{UserID: "admin-1", Role: types.RoleTenantAdmin, TenantID: "tenant-1"}
}

func basicTenant() *types.Tenant {
	return &types.Tenant{ID: "tenant-1", Tier: types.TierBasic, Quota: types.QuotaForTier(types.TierBasic), Active: true}
}

func claimCodeHash(t *testing.T, code string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(code), bcrypt.MinCost)
	require.NoError(t, err)
	return string(hash)
}

func TestCreateTenant_ProvisionsTenantAndFirstAdmin(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStorage := NewMockStorageInterface(ctrl)
	mockIssuer := authentication.NewMockTokenIssuerInterface(ctrl)

	mockStorage.EXPECT().CreateTenant(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, tenant *types.Tenant) (*types.Tenant, error) {
			// The id is assigned on insert, never by the caller.
			assert.Empty(t, tenant.ID)
			assert.Equal(t, types.TierPro, tenant.Tier)
			assert.Equal(t, 50, tenant.Quota.MaxDevices)
			assert.Equal(t, 20, tenant.Quota.MaxUsers)
			assert.True(t, tenant.Active)
			created := *tenant
			created.ID = "tenant-7"
			return &created, nil
		})
	mockStorage.EXPECT().AddMember(gomock.Any(), "tenant-7", "admin-9", types.RoleTenantAdmin).
		Return("membership-1", nil)
	mockIssuer.EXPECT().IssueToken(gomock.Any(), "admin-9", types.RoleTenantAdmin, "tenant-7").
		Return("token-abc", nil)

	provision, err := newService(mockStorage, mockIssuer).
		CreateTenant(context.Background(), superAdmin(), "Sharma Residence", "pro", "admin-9")

	require.NoError(t, err)
	assert.Equal(t, "tenant-7", provision.Tenant.ID)
	assert.Equal(t, "Sharma Residence", provision.Tenant.Name)
	assert.Equal(t, "token-abc", provision.AdminToken)
}

func TestCreateTenant_RequiresSuperAdmin(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStorage := NewMockStorageInterface(ctrl)
	mockIssuer := authentication.NewMockTokenIssuerInterface(ctrl)

	_, err := newService(mockStorage, mockIssuer).
		CreateTenant(context.Background(), tenantAdmin(), "Another Home", "BASIC", "admin-9")

	assert.Equal(t, kinds.PermissionDenied, kinds.KindOf(err))
}

func TestCreateTenant_RejectsUnknownTier(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStorage := NewMockStorageInterface(ctrl)
	mockIssuer := authentication.NewMockTokenIssuerInterface(ctrl)

	_, err := newService(mockStorage, mockIssuer).
		CreateTenant(context.Background(), superAdmin(), "Another Home", "PLATINUM", "admin-9")

	assert.Equal(t, kinds.InvalidArgument, kinds.KindOf(err))
}

func TestRegisterDevice_ClaimsAndCreates(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStorage := NewMockStorageInterface(ctrl)
	mockIssuer := authentication.NewMockTokenIssuerInterface(ctrl)

	mockStorage.EXPECT().GetGlobalDevice(gomock.Any(), "device-1").
		Return(&types.GlobalDevice{ID: "device-1", Active: true, SecretHash: claimCodeHash(t, "code-123")}, nil)
	mockStorage.EXPECT().LockTenantByID(gomock.Any(), "tenant-1").Return(basicTenant(), nil)
	mockStorage.EXPECT().CountDevices(gomock.Any(), "tenant-1").Return(3, nil)
	mockStorage.EXPECT().ClaimGlobalDevice(gomock.Any(), "device-1", "tenant-1").Return(nil)
	mockStorage.EXPECT().CreateDevice(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, d *types.Device) (*types.Device, error) {
			assert.Equal(t, "device-1", d.ID)
			assert.Equal(t, "tenant-1", d.TenantID)
			assert.Equal(t, 4, d.Channels)
			assert.True(t, d.Active)
			assert.Empty(t, d.AssignedUsers)
			assert.Equal(t, types.StatusOffline, d.Status)
			return d, nil
		})

	device, err := newService(mockStorage, mockIssuer).
		RegisterDevice(context.Background(), tenantAdmin(), &DeviceRegistration{
			DeviceID: "device-1", ClaimCode: "code-123", Name: "Living Room", Type: "switch", Channels: 4,
		})

	require.NoError(t, err)
	assert.Equal(t, "device-1", device.ID)
}

func TestRegisterDevice_InvalidClaimCode(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStorage := NewMockStorageInterface(ctrl)
	mockIssuer := authentication.NewMockTokenIssuerInterface(ctrl)

	mockStorage.EXPECT().GetGlobalDevice(gomock.Any(), "device-1").
		Return(&types.GlobalDevice{ID: "device-1", Active: true, SecretHash: claimCodeHash(t, "code-123")}, nil)

	_, err := newService(mockStorage, mockIssuer).
		RegisterDevice(context.Background(), tenantAdmin(), &DeviceRegistration{
			DeviceID: "device-1", ClaimCode: "wrong-code", Name: "Living Room", Channels: 4,
		})

	assert.Equal(t, kinds.PermissionDenied, kinds.KindOf(err))
}

// The quota count and the claim happen inside the same locked transaction;
// a tenant at its cap never reaches the claim step.
func TestRegisterDevice_QuotaReached(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStorage := NewMockStorageInterface(ctrl)
	mockIssuer := authentication.NewMockTokenIssuerInterface(ctrl)

	mockStorage.EXPECT().GetGlobalDevice(gomock.Any(), "device-1").
		Return(&types.GlobalDevice{ID: "device-1", Active: true, SecretHash: claimCodeHash(t, "code-123")}, nil)
	mockStorage.EXPECT().LockTenantByID(gomock.Any(), "tenant-1").Return(basicTenant(), nil)
	mockStorage.EXPECT().CountDevices(gomock.Any(), "tenant-1").Return(10, nil)

	_, err := newService(mockStorage, mockIssuer).
		RegisterDevice(context.Background(), tenantAdmin(), &DeviceRegistration{
			DeviceID: "device-1", ClaimCode: "code-123", Name: "Living Room", Channels: 4,
		})

	assert.Equal(t, kinds.ResourceExhausted, kinds.KindOf(err))
}

func TestRegisterDevice_AlreadyClaimed(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStorage := NewMockStorageInterface(ctrl)
	mockIssuer := authentication.NewMockTokenIssuerInterface(ctrl)

	mockStorage.EXPECT().GetGlobalDevice(gomock.Any(), "device-1").
		Return(&types.GlobalDevice{ID: "device-1", Active: true, SecretHash: claimCodeHash(t, "code-123")}, nil)
	mockStorage.EXPECT().LockTenantByID(gomock.Any(), "tenant-1").Return(basicTenant(), nil)
	mockStorage.EXPECT().CountDevices(gomock.Any(), "tenant-1").Return(3, nil)
	mockStorage.EXPECT().ClaimGlobalDevice(gomock.Any(), "device-1", "tenant-1").
		Return(storage.ErrAlreadyClaimed)

	_, err := newService(mockStorage, mockIssuer).
		RegisterDevice(context.Background(), tenantAdmin(), &DeviceRegistration{
			DeviceID: "device-1", ClaimCode: "code-123", Name: "Living Room", Channels: 4,
		})

	assert.Equal(t, kinds.AlreadyExists, kinds.KindOf(err))
}

func TestRegisterDevice_SuspendedTenant(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStorage := NewMockStorageInterface(ctrl)
	mockIssuer := authentication.NewMockTokenIssuerInterface(ctrl)

	suspended := basicTenant()
	suspended.Active = false

	mockStorage.EXPECT().GetGlobalDevice(gomock.Any(), "device-1").
		Return(&types.GlobalDevice{ID: "device-1", Active: true, SecretHash: claimCodeHash(t, "code-123")}, nil)
	mockStorage.EXPECT().LockTenantByID(gomock.Any(), "tenant-1").Return(suspended, nil)

	_, err := newService(mockStorage, mockIssuer).
		RegisterDevice(context.Background(), tenantAdmin(), &DeviceRegistration{
			DeviceID: "device-1", ClaimCode: "code-123", Name: "Living Room", Channels: 4,
		})

	assert.Equal(t, kinds.PermissionDenied, kinds.KindOf(err))
}

func TestInviteMember_AddsMemberAndReissuesClaims(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStorage := NewMockStorageInterface(ctrl)
	mockIssuer := authentication.NewMockTokenIssuerInterface(ctrl)

	mockStorage.EXPECT().LockTenantByID(gomock.Any(), "tenant-1").Return(basicTenant(), nil)
	mockStorage.EXPECT().CountMembers(gomock.Any(), "tenant-1").Return(2, nil)
	mockStorage.EXPECT().AddMember(gomock.Any(), "tenant-1", "user-5", types.RoleUser).
		Return("membership-5", nil)
	mockIssuer.EXPECT().IssueToken(gomock.Any(), "user-5", types.RoleUser, "tenant-1").
		Return("token-xyz", nil)

	invitation, err := newService(mockStorage, mockIssuer).
		InviteMember(context.Background(), tenantAdmin(), "user-5", types.RoleUser)

	require.NoError(t, err)
	assert.Equal(t, "membership-5", invitation.MembershipID)
	assert.Equal(t, "token-xyz", invitation.Token)
}

func TestInviteMember_QuotaReached(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStorage := NewMockStorageInterface(ctrl)
	mockIssuer := authentication.NewMockTokenIssuerInterface(ctrl)

	mockStorage.EXPECT().LockTenantByID(gomock.Any(), "tenant-1").Return(basicTenant(), nil)
	mockStorage.EXPECT().CountMembers(gomock.Any(), "tenant-1").Return(5, nil)

	_, err := newService(mockStorage, mockIssuer).
		InviteMember(context.Background(), tenantAdmin(), "user-5", types.RoleUser)

	assert.Equal(t, kinds.ResourceExhausted, kinds.KindOf(err))
}

func TestInviteMember_DuplicateMember(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStorage := NewMockStorageInterface(ctrl)
	mockIssuer := authentication.NewMockTokenIssuerInterface(ctrl)

	mockStorage.EXPECT().LockTenantByID(gomock.Any(), "tenant-1").Return(basicTenant(), nil)
	mockStorage.EXPECT().CountMembers(gomock.Any(), "tenant-1").Return(2, nil)
	mockStorage.EXPECT().AddMember(gomock.Any(), "tenant-1", "user-5", types.RoleUser).
		Return("", storage.ErrDuplicateKey)

	_, err := newService(mockStorage, mockIssuer).
		InviteMember(context.Background(), tenantAdmin(), "user-5", types.RoleUser)

	assert.Equal(t, kinds.AlreadyExists, kinds.KindOf(err))
}

func TestInviteMember_RoleGrants(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStorage := NewMockStorageInterface(ctrl)
	mockIssuer := authentication.NewMockTokenIssuerInterface(ctrl)
	svc := newService(mockStorage, mockIssuer)

	admin := &authentication.Principal{UserID: "admin-2", Role: types.RoleAdmin, TenantID: "tenant-1"}

	_, err := svc.InviteMember(context.Background(), admin, "user-5", types.RoleTenantAdmin)
	assert.Equal(t, kinds.PermissionDenied, kinds.KindOf(err))

	_, err = svc.InviteMember(context.Background(), admin, "user-5", types.RoleSuperAdmin)
	assert.Equal(t, kinds.InvalidArgument, kinds.KindOf(err))
}

func TestUpdateMemberRole_RebuildsSummaryAndReissuesToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStorage := NewMockStorageInterface(ctrl)
	mockIssuer := authentication.NewMockTokenIssuerInterface(ctrl)
	svc := newService(mockStorage, mockIssuer)

	mockStorage.EXPECT().UpdateMemberRole(gomock.Any(), "tenant-1", "user-5", types.RoleAdmin).Return(nil)
	mockStorage.EXPECT().SumAssignedChannels(gomock.Any(), "tenant-1", "user-5").Return(3, 9, nil)
	mockStorage.EXPECT().UpsertUserSummary(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, summary *types.UserSummary) error {
			assert.Equal(t, types.RoleAdmin, summary.Role)
			assert.Equal(t, 3, summary.DeviceCount)
			assert.Equal(t, 9, summary.SwitchCount)
			return nil
		})
	mockIssuer.EXPECT().IssueToken(gomock.Any(), "user-5", types.RoleAdmin, "tenant-1").Return("token-new", nil)

	token, err := svc.UpdateMemberRole(context.Background(), tenantAdmin(), "user-5", types.RoleAdmin)
	require.NoError(t, err)
	assert.Equal(t, "token-new", token)
}

func TestUpdateMemberRole_UnknownMember(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStorage := NewMockStorageInterface(ctrl)
	mockIssuer := authentication.NewMockTokenIssuerInterface(ctrl)
	svc := newService(mockStorage, mockIssuer)

	mockStorage.EXPECT().UpdateMemberRole(gomock.Any(), "tenant-1", "ghost", types.RoleUser).
		Return(storage.ErrNotFound)

	_, err := svc.UpdateMemberRole(context.Background(), tenantAdmin(), "ghost", types.RoleUser)
	assert.Equal(t, kinds.NotFound, kinds.KindOf(err))
}

func TestUpdateMemberRole_GrantRestrictions(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStorage := NewMockStorageInterface(ctrl)
	mockIssuer := authentication.NewMockTokenIssuerInterface(ctrl)
	svc := newService(mockStorage, mockIssuer)

	admin := &authentication.Principal{UserID: "admin-2", Role: types.RoleAdmin, TenantID: "tenant-1"}

	_, err := svc.UpdateMemberRole(context.Background(), admin, "user-5", types.RoleTenantAdmin)
	assert.Equal(t, kinds.PermissionDenied, kinds.KindOf(err))

	plain := &authentication.Principal{UserID: "user-1", Role: types.RoleUser, TenantID: "tenant-1"}
	_, err = svc.UpdateMemberRole(context.Background(), plain, "user-5", types.RoleUser)
	assert.Equal(t, kinds.PermissionDenied, kinds.KindOf(err))
}

func TestListMembers_AdminOnly(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStorage := NewMockStorageInterface(ctrl)
	mockIssuer := authentication.NewMockTokenIssuerInterface(ctrl)
	svc := newService(mockStorage, mockIssuer)

	mockStorage.EXPECT().ListMembersByTenantID(gomock.Any(), "tenant-1").
		Return([]*types.Membership{{UserID: "user-1"}, {UserID: "user-2"}}, nil)

	members, err := svc.ListMembers(context.Background(), tenantAdmin())
	require.NoError(t, err)
	assert.Len(t, members, 2)

	plain := &authentication.Principal{UserID: "user-1", Role: types.RoleUser, TenantID: "tenant-1"}
	_, err = svc.ListMembers(context.Background(), plain)
	assert.Equal(t, kinds.PermissionDenied, kinds.KindOf(err))
}
