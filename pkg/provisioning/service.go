// Copyright 2026 GharSwitch Authors
// SPDX-License-Identifier: AGPL-3.0

// Package provisioning handles tenant creation, device claiming, and member
// invitations, enforcing the tier quotas on every write.
package provisioning

import (
	"context"
	"errors"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/ketan14/GharSwitch/internal/kinds"
	"github.com/ketan14/GharSwitch/internal/logging"
	"github.com/ketan14/GharSwitch/internal/monitoring"
	"github.com/ketan14/GharSwitch/internal/storage"
	"github.com/ketan14/GharSwitch/internal/tracing"
	"github.com/ketan14/GharSwitch/internal/types"
	"github.com/ketan14/GharSwitch/pkg/authentication"
)

var _ ServiceInterface = (*Service)(nil)

type Service struct {
	storage StorageInterface
	db      TxRunnerInterface
	issuer  authentication.TokenIssuerInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (s *Service) CreateTenant(ctx context.Context, principal *authentication.Principal, name, tier, adminUserID string) (*TenantProvision, error) {
	ctx, span := s.tracer.Start(ctx, "provisioning.Service.CreateTenant")
	defer span.End()

	if principal.Role != types.RoleSuperAdmin {
		s.logger.Security().AuthzFailure(principal.UserID, "create_tenant")
		return nil, kinds.New(kinds.PermissionDenied, "only super admins create tenants")
	}

	tier = strings.ToUpper(strings.TrimSpace(tier))
	if tier != types.TierBasic && tier != types.TierPro {
		return nil, kinds.New(kinds.InvalidArgument, "tier must be BASIC or PRO")
	}

	// Storage assigns the tenant id on insert.
	tenant := &types.Tenant{
		Name:      name,
		Tier:      tier,
		Quota:     types.QuotaForTier(tier),
		Active:    true,
		CreatedAt: time.Now(),
	}

	// Tenant and first admin membership commit together; a tenant with no
	// admin would be unreachable.
	err := s.db.WithTx(ctx, func(ctx context.Context) error {
		created, err := s.storage.CreateTenant(ctx, tenant)
		if err != nil {
			return err
		}
		tenant = created

		_, err = s.storage.AddMember(ctx, tenant.ID, adminUserID, types.RoleTenantAdmin)
		return err
	})
	if err != nil {
		if errors.Is(err, storage.ErrDuplicateKey) {
			return nil, kinds.New(kinds.AlreadyExists, "tenant already exists")
		}
		return nil, kinds.Wrap(kinds.Internal, "failed to create tenant", err)
	}

	// Minting has no side effects, so a failure here leaves a valid tenant
	// whose admin can still obtain claims through the normal token flow.
	token, err := s.issuer.IssueToken(ctx, adminUserID, types.RoleTenantAdmin, tenant.ID)
	if err != nil {
		return nil, kinds.Wrap(kinds.Internal, "tenant created but admin token issuance failed", err)
	}

	s.logger.Infof("tenant %s created on tier %s", tenant.ID, tier)
	return &TenantProvision{Tenant: tenant, AdminToken: token}, nil
}

func (s *Service) RegisterDevice(ctx context.Context, principal *authentication.Principal, reg *DeviceRegistration) (*types.Device, error) {
	ctx, span := s.tracer.Start(ctx, "provisioning.Service.RegisterDevice")
	defer span.End()

	if !principal.Role.AdminTier() {
		s.logger.Security().AuthzFailure(principal.UserID, "register_device")
		return nil, kinds.New(kinds.PermissionDenied, "only admins register devices")
	}

	global, err := s.storage.GetGlobalDevice(ctx, reg.DeviceID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, kinds.New(kinds.NotFound, "unknown device id")
		}
		return nil, kinds.Wrap(kinds.Internal, "failed to load device registry entry", err)
	}
	if !global.Active {
		return nil, kinds.New(kinds.PermissionDenied, "device is deactivated")
	}
	if bcrypt.CompareHashAndPassword([]byte(global.SecretHash), []byte(reg.ClaimCode)) != nil {
		s.logger.Security().AuthzFailure(principal.UserID, "claim_device")
		return nil, kinds.New(kinds.PermissionDenied, "invalid claim code")
	}

	var device *types.Device
	err = s.db.WithTx(ctx, func(ctx context.Context) error {
		// The row lock serializes registrations per tenant, so the count
		// below cannot race past the quota.
		tenant, err := s.storage.LockTenantByID(ctx, principal.TenantID)
		if err != nil {
			return err
		}
		if !tenant.Active {
			return kinds.New(kinds.PermissionDenied, "tenant is suspended")
		}

		count, err := s.storage.CountDevices(ctx, tenant.ID)
		if err != nil {
			return err
		}
		if count >= tenant.Quota.MaxDevices {
			return kinds.New(kinds.ResourceExhausted, "device quota reached for this tenant")
		}

		// Conditional update: fails if another tenant claimed the id first.
		if err := s.storage.ClaimGlobalDevice(ctx, reg.DeviceID, tenant.ID); err != nil {
			if errors.Is(err, storage.ErrAlreadyClaimed) {
				return kinds.New(kinds.AlreadyExists, "device is already claimed")
			}
			return err
		}

		device, err = s.storage.CreateDevice(ctx, &types.Device{
			ID:            reg.DeviceID,
			TenantID:      tenant.ID,
			Name:          reg.Name,
			Type:          reg.Type,
			Channels:      reg.Channels,
			Active:        true,
			AssignedUsers: []string{},
			Status:        types.StatusOffline,
			RegisteredAt:  time.Now(),
		})
		return err
	})
	if err != nil {
		return nil, coerce(err, "failed to register device")
	}

	s.logger.Infof("device %s registered to tenant %s", device.ID, device.TenantID)
	return device, nil
}

func (s *Service) InviteMember(ctx context.Context, principal *authentication.Principal, userID string, role types.Role) (*Invitation, error) {
	ctx, span := s.tracer.Start(ctx, "provisioning.Service.InviteMember")
	defer span.End()

	if !principal.Role.AdminTier() {
		s.logger.Security().AuthzFailure(principal.UserID, "invite_member")
		return nil, kinds.New(kinds.PermissionDenied, "only admins invite members")
	}
	if err := grantable(principal.Role, role); err != nil {
		return nil, err
	}

	var membershipID string
	err := s.db.WithTx(ctx, func(ctx context.Context) error {
		tenant, err := s.storage.LockTenantByID(ctx, principal.TenantID)
		if err != nil {
			return err
		}
		if !tenant.Active {
			return kinds.New(kinds.PermissionDenied, "tenant is suspended")
		}

		count, err := s.storage.CountMembers(ctx, tenant.ID)
		if err != nil {
			return err
		}
		if count >= tenant.Quota.MaxUsers {
			return kinds.New(kinds.ResourceExhausted, "member quota reached for this tenant")
		}

		membershipID, err = s.storage.AddMember(ctx, tenant.ID, userID, role)
		if errors.Is(err, storage.ErrDuplicateKey) {
			return kinds.New(kinds.AlreadyExists, "user is already a member")
		}
		return err
	})
	if err != nil {
		return nil, coerce(err, "failed to invite member")
	}

	// Membership changes invalidate prior claims; the fresh token carries
	// the new role and tenant.
	token, err := s.issuer.IssueToken(ctx, userID, role, principal.TenantID)
	if err != nil {
		return nil, kinds.Wrap(kinds.Internal, "member added but token issuance failed", err)
	}

	return &Invitation{MembershipID: membershipID, Token: token}, nil
}

func (s *Service) UpdateMemberRole(ctx context.Context, principal *authentication.Principal, userID string, role types.Role) (string, error) {
	ctx, span := s.tracer.Start(ctx, "provisioning.Service.UpdateMemberRole")
	defer span.End()

	if !principal.Role.AdminTier() {
		s.logger.Security().AuthzFailure(principal.UserID, "update_member_role")
		return "", kinds.New(kinds.PermissionDenied, "only admins change member roles")
	}
	if err := grantable(principal.Role, role); err != nil {
		return "", err
	}

	err := s.db.WithTx(ctx, func(ctx context.Context) error {
		if err := s.storage.UpdateMemberRole(ctx, principal.TenantID, userID, role); err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				return kinds.New(kinds.NotFound, "no such member")
			}
			return err
		}

		// Summary rows denormalize the role, so the change rebuilds them in
		// the same transaction.
		devices, switches, err := s.storage.SumAssignedChannels(ctx, principal.TenantID, userID)
		if err != nil {
			return err
		}
		return s.storage.UpsertUserSummary(ctx, &types.UserSummary{
			UserID:      userID,
			TenantID:    principal.TenantID,
			Role:        role,
			Active:      true,
			DeviceCount: devices,
			SwitchCount: switches,
			UpdatedAt:   time.Now(),
		})
	})
	if err != nil {
		return "", coerce(err, "failed to update member role")
	}

	// Stale claims age out on their own; the fresh token carries the new role
	// immediately.
	token, err := s.issuer.IssueToken(ctx, userID, role, principal.TenantID)
	if err != nil {
		return "", kinds.Wrap(kinds.Internal, "role updated but token issuance failed", err)
	}
	return token, nil
}

func (s *Service) ListMembers(ctx context.Context, principal *authentication.Principal) ([]*types.Membership, error) {
	ctx, span := s.tracer.Start(ctx, "provisioning.Service.ListMembers")
	defer span.End()

	if !principal.Role.AdminTier() {
		return nil, kinds.New(kinds.PermissionDenied, "only admins list members")
	}

	members, err := s.storage.ListMembersByTenantID(ctx, principal.TenantID)
	if err != nil {
		return nil, kinds.Wrap(kinds.Internal, "failed to list members", err)
	}
	return members, nil
}

// grantable restricts which roles a caller may hand out. Tenant admin grants
// need a tenant admin or above; the platform role is never a membership.
func grantable(caller, granted types.Role) error {
	switch granted {
	case types.RoleUser, types.RoleAdmin:
		return nil
	case types.RoleTenantAdmin:
		if caller == types.RoleTenantAdmin || caller == types.RoleSuperAdmin {
			return nil
		}
		return kinds.New(kinds.PermissionDenied, "cannot grant tenant_admin")
	}
	return kinds.New(kinds.InvalidArgument, "role is not grantable")
}

// coerce passes taxonomy errors through unchanged and wraps everything else
// as internal.
func coerce(err error, message string) error {
	var kindErr *kinds.Error
	if errors.As(err, &kindErr) {
		return err
	}
	return kinds.Wrap(kinds.Internal, message, err)
}

func NewService(
	storage StorageInterface,
	db TxRunnerInterface,
	issuer authentication.TokenIssuerInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	return &Service{
		storage: storage,
		db:      db,
		issuer:  issuer,
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}
