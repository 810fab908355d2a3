// Copyright 2026 GharSwitch Authors
// SPDX-License-Identifier: AGPL-3.0

package provisioning

import (
	"context"

	"github.com/ketan14/GharSwitch/internal/types"
	"github.com/ketan14/GharSwitch/pkg/authentication"
)

// DeviceRegistration carries everything needed to claim a device from the
// global registry into a tenant.
type DeviceRegistration struct {
	DeviceID  string
	ClaimCode string
	Name      string
	Type      string
	Channels  int
}

// TenantProvision is the result of creating a tenant: the record itself plus
// a freshly minted token for its first admin.
type TenantProvision struct {
	Tenant     *types.Tenant `json:"tenant"`
	AdminToken string        `json:"admin_token"`
}

// Invitation is the result of adding a member: the membership id plus a token
// carrying the new role and tenant claims.
type Invitation struct {
	MembershipID string `json:"membership_id"`
	Token        string `json:"token"`
}

type ServiceInterface interface {
	// CreateTenant provisions a tenant with tier-derived quotas and its
	// first admin membership in one transaction. Super admins only.
	CreateTenant(ctx context.Context, principal *authentication.Principal, name, tier, adminUserID string) (*TenantProvision, error)
	// RegisterDevice claims a registry device into the caller's tenant.
	// The claim transition and the device-quota count happen in the same
	// transaction, so concurrent registrations cannot exceed the quota or
	// double-claim a device id.
	RegisterDevice(ctx context.Context, principal *authentication.Principal, reg *DeviceRegistration) (*types.Device, error)
	// InviteMember adds a member under the tenant's user quota and re-issues
	// claims for the invited user.
	InviteMember(ctx context.Context, principal *authentication.Principal, userID string, role types.Role) (*Invitation, error)
	// UpdateMemberRole changes an existing member's role, rebuilds the user's
	// summary row, and re-issues claims carrying the new role.
	UpdateMemberRole(ctx context.Context, principal *authentication.Principal, userID string, role types.Role) (string, error)
	ListMembers(ctx context.Context, principal *authentication.Principal) ([]*types.Membership, error)
}

type StorageInterface interface {
	CreateTenant(ctx context.Context, t *types.Tenant) (*types.Tenant, error)
	LockTenantByID(ctx context.Context, id string) (*types.Tenant, error)
	AddMember(ctx context.Context, tenantID, userID string, role types.Role) (string, error)
	UpdateMemberRole(ctx context.Context, tenantID, userID string, role types.Role) error
	CountMembers(ctx context.Context, tenantID string) (int, error)
	SumAssignedChannels(ctx context.Context, tenantID, userID string) (devices int, switches int, err error)
	UpsertUserSummary(ctx context.Context, s *types.UserSummary) error
	ListMembersByTenantID(ctx context.Context, tenantID string) ([]*types.Membership, error)
	GetGlobalDevice(ctx context.Context, id string) (*types.GlobalDevice, error)
	ClaimGlobalDevice(ctx context.Context, id, tenantID string) error
	CreateDevice(ctx context.Context, d *types.Device) (*types.Device, error)
	CountDevices(ctx context.Context, tenantID string) (int, error)
}

type TxRunnerInterface interface {
	WithTx(ctx context.Context, fn func(ctx context.Context) error) error
}
