// Copyright 2026 GharSwitch Authors
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/ketan14/GharSwitch/internal/db"
	"github.com/ketan14/GharSwitch/internal/logging"
	"github.com/ketan14/GharSwitch/internal/monitoring"
	"github.com/ketan14/GharSwitch/internal/tracing"
	"github.com/ketan14/GharSwitch/internal/types"
)

var _ StorageInterface = (*Storage)(nil)

type Storage struct {
	db db.DBClientInterface

	logger  logging.LoggerInterface
	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
}

func NewStorage(c db.DBClientInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Storage {
	s := new(Storage)

	s.db = c

	s.logger = logger
	s.tracer = tracer
	s.monitor = monitor

	return s
}

const tenantColumns = "id, name, tier, max_devices, max_users, active, suspended_reason, created_at"

func (s *Storage) scanTenant(scan func(...interface{}) error) (*types.Tenant, error) {
	var t types.Tenant
	err := scan(&t.ID, &t.Name, &t.Tier, &t.Quota.MaxDevices, &t.Quota.MaxUsers, &t.Active, &t.SuspendedReason, &t.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) || errors.Is(err, errNoRowsSQL) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to scan tenant: %w", err)
	}
	return &t, nil
}

func (s *Storage) CreateTenant(ctx context.Context, t *types.Tenant) (*types.Tenant, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateTenant")
	defer span.End()

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate tenant ID: %w", err)
	}

	row := s.db.Statement(ctx).
		Insert("tenants").
		Columns("id", "name", "tier", "max_devices", "max_users", "active", "suspended_reason").
		Values(id.String(), t.Name, t.Tier, t.Quota.MaxDevices, t.Quota.MaxUsers, t.Active, t.SuspendedReason).
		Suffix("RETURNING " + tenantColumns).
		QueryRowContext(ctx)

	created, err := s.scanTenant(row.Scan)
	if err != nil {
		return nil, fmt.Errorf("failed to insert tenant: %w", err)
	}

	return created, nil
}

func (s *Storage) GetTenantByID(ctx context.Context, id string) (*types.Tenant, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetTenantByID")
	defer span.End()

	row := s.db.Statement(ctx).
		Select(tenantColumns).
		From("tenants").
		Where(sq.Eq{"id": id}).
		QueryRowContext(ctx)

	return s.scanTenant(row.Scan)
}

// LockTenantByID is GetTenantByID plus FOR UPDATE. Callers must be inside
// db.WithTx; the lock holds until that transaction ends, closing the window
// between a quota count and the write that depends on it.
func (s *Storage) LockTenantByID(ctx context.Context, id string) (*types.Tenant, error) {
	ctx, span := s.tracer.Start(ctx, "storage.LockTenantByID")
	defer span.End()

	row := s.db.Statement(ctx).
		Select(tenantColumns).
		From("tenants").
		Where(sq.Eq{"id": id}).
		Suffix("FOR UPDATE").
		QueryRowContext(ctx)

	return s.scanTenant(row.Scan)
}

func (s *Storage) ListTenants(ctx context.Context) ([]*types.Tenant, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListTenants")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select(tenantColumns).
		From("tenants").
		OrderBy("created_at").
		QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list tenants: %w", err)
	}
	defer rows.Close()

	var tenants []*types.Tenant
	for rows.Next() {
		t, err := s.scanTenant(rows.Scan)
		if err != nil {
			return nil, err
		}
		tenants = append(tenants, t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating tenant rows: %w", err)
	}

	return tenants, nil
}

func (s *Storage) SetTenantStatus(ctx context.Context, id string, active bool, reason string) error {
	ctx, span := s.tracer.Start(ctx, "storage.SetTenantStatus")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Update("tenants").
		Set("active", active).
		Set("suspended_reason", reason).
		Where(sq.Eq{"id": id}).
		ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("failed to update tenant status: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check rows affected: %w", err)
	}
	if rows == 0 {
		return ErrNotFound
	}

	return nil
}

func (s *Storage) AddMember(ctx context.Context, tenantID, userID string, role types.Role) (string, error) {
	ctx, span := s.tracer.Start(ctx, "storage.AddMember")
	defer span.End()

	id, err := uuid.NewV7()
	if err != nil {
		return "", fmt.Errorf("failed to generate membership ID: %w", err)
	}

	_, err = s.db.Statement(ctx).
		Insert("memberships").
		Columns("id", "tenant_id", "user_id", "role").
		Values(id.String(), tenantID, userID, role.String()).
		ExecContext(ctx)

	if err != nil {
		if IsDuplicateKeyError(err) {
			return "", ErrDuplicateKey
		}
		if IsForeignKeyViolation(err) {
			return "", ErrForeignKeyViolation
		}
		return "", fmt.Errorf("failed to add member: %w", err)
	}

	return id.String(), nil
}

func (s *Storage) GetMembership(ctx context.Context, tenantID, userID string) (*types.Membership, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetMembership")
	defer span.End()

	var m types.Membership
	var role string
	err := s.db.Statement(ctx).
		Select("id", "tenant_id", "user_id", "role", "created_at").
		From("memberships").
		Where(sq.Eq{"tenant_id": tenantID, "user_id": userID}).
		QueryRowContext(ctx).
		Scan(&m.ID, &m.TenantID, &m.UserID, &role, &m.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) || errors.Is(err, errNoRowsSQL) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get membership: %w", err)
	}

	// Stored roles were normalized on the way in; an unparseable value still
	// fails closed to RoleUnknown.
	m.Role, _ = types.ParseRole(role)
	return &m, nil
}

func (s *Storage) ListMembersByTenantID(ctx context.Context, tenantID string) ([]*types.Membership, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListMembersByTenantID")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select("id", "tenant_id", "user_id", "role", "created_at").
		From("memberships").
		Where(sq.Eq{"tenant_id": tenantID}).
		QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list members: %w", err)
	}
	defer rows.Close()

	var members []*types.Membership
	for rows.Next() {
		var m types.Membership
		var role string
		if err := rows.Scan(&m.ID, &m.TenantID, &m.UserID, &role, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan member: %w", err)
		}
		m.Role, _ = types.ParseRole(role)
		members = append(members, &m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return members, nil
}

func (s *Storage) CountMembers(ctx context.Context, tenantID string) (int, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CountMembers")
	defer span.End()

	var count int
	err := s.db.Statement(ctx).
		Select("COUNT(*)").
		From("memberships").
		Where(sq.Eq{"tenant_id": tenantID}).
		QueryRowContext(ctx).
		Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count members: %w", err)
	}

	return count, nil
}

func (s *Storage) UpdateMemberRole(ctx context.Context, tenantID, userID string, role types.Role) error {
	ctx, span := s.tracer.Start(ctx, "storage.UpdateMemberRole")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Update("memberships").
		Set("role", role.String()).
		Where(sq.Eq{
			"tenant_id": tenantID,
			"user_id":   userID,
		}).
		ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("failed to update member: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check rows affected: %w", err)
	}
	if rows == 0 {
		return ErrNotFound
	}

	return nil
}

func (s *Storage) GetPlatformSettings(ctx context.Context) (*types.PlatformSettings, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetPlatformSettings")
	defer span.End()

	var p types.PlatformSettings
	err := s.db.Statement(ctx).
		Select("maintenance_mode", "updated_at").
		From("platform_settings").
		Where(sq.Eq{"singleton": true}).
		QueryRowContext(ctx).
		Scan(&p.MaintenanceMode, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) || errors.Is(err, errNoRowsSQL) {
			// Settings row is seeded by migrations; absence means defaults.
			return &types.PlatformSettings{}, nil
		}
		return nil, fmt.Errorf("failed to get platform settings: %w", err)
	}

	return &p, nil
}

func (s *Storage) SetMaintenanceMode(ctx context.Context, enabled bool) error {
	ctx, span := s.tracer.Start(ctx, "storage.SetMaintenanceMode")
	defer span.End()

	_, err := s.db.Statement(ctx).
		Update("platform_settings").
		Set("maintenance_mode", enabled).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"singleton": true}).
		ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("failed to set maintenance mode: %w", err)
	}

	return nil
}
