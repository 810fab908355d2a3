// Copyright 2026 GharSwitch Authors
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/ketan14/GharSwitch/internal/types"
)

// AddAssignment writes both halves of the bidirectional index: the mapping
// row and the device's assigned_users set. Callers wrap this in db.WithTx so
// the two statements commit or roll back together.
func (s *Storage) AddAssignment(ctx context.Context, tenantID, deviceID, userID string) error {
	ctx, span := s.tracer.Start(ctx, "storage.AddAssignment")
	defer span.End()

	id, err := uuid.NewV7()
	if err != nil {
		return fmt.Errorf("failed to generate assignment ID: %w", err)
	}

	_, err = s.db.Statement(ctx).
		Insert("device_users").
		Columns("id", "tenant_id", "device_id", "user_id").
		Values(id.String(), tenantID, deviceID, userID).
		ExecContext(ctx)
	if err != nil {
		if IsDuplicateKeyError(err) {
			return ErrDuplicateKey
		}
		if IsForeignKeyViolation(err) {
			return ErrForeignKeyViolation
		}
		return fmt.Errorf("failed to insert assignment: %w", err)
	}

	res, err := s.db.Statement(ctx).
		Update("devices").
		Set("assigned_users", sq.Expr("array_append(assigned_users, ?)", userID)).
		Where(sq.Eq{"tenant_id": tenantID, "id": deviceID}).
		Where(sq.Expr("NOT (? = ANY(assigned_users))", userID)).
		ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("failed to update assigned users: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check rows affected: %w", err)
	}
	if rows == 0 {
		// Index row inserted but the set already held the user; the unique
		// constraint on device_users makes this unreachable unless the two
		// representations diverged outside this path.
		return fmt.Errorf("assignment index and assigned_users set out of sync for device %s", deviceID)
	}

	return nil
}

// RemoveAssignment deletes the mapping row and removes the user from the
// device's assigned_users set, as one transactional unit under db.WithTx.
func (s *Storage) RemoveAssignment(ctx context.Context, tenantID, deviceID, userID string) error {
	ctx, span := s.tracer.Start(ctx, "storage.RemoveAssignment")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Delete("device_users").
		Where(sq.Eq{"tenant_id": tenantID, "device_id": deviceID, "user_id": userID}).
		ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete assignment: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check rows affected: %w", err)
	}
	if rows == 0 {
		return ErrNotFound
	}

	_, err = s.db.Statement(ctx).
		Update("devices").
		Set("assigned_users", sq.Expr("array_remove(assigned_users, ?)", userID)).
		Where(sq.Eq{"tenant_id": tenantID, "id": deviceID}).
		ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("failed to update assigned users: %w", err)
	}

	return nil
}

func (s *Storage) GetDeviceGroup(ctx context.Context, tenantID, groupID string) (*types.DeviceGroup, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetDeviceGroup")
	defer span.End()

	var g types.DeviceGroup
	var deviceIDs string
	err := s.db.Statement(ctx).
		Select("id", "tenant_id", "name", "array_to_string(device_ids, ',')").
		From("device_groups").
		Where(sq.Eq{"tenant_id": tenantID, "id": groupID}).
		QueryRowContext(ctx).
		Scan(&g.ID, &g.TenantID, &g.Name, &deviceIDs)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) || errors.Is(err, errNoRowsSQL) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get device group: %w", err)
	}
	if deviceIDs != "" {
		g.DeviceIDs = strings.Split(deviceIDs, ",")
	}

	return &g, nil
}

// SumAssignedChannels reads the authoritative assignment index joined to
// devices, returning how many devices and switch channels the user controls.
func (s *Storage) SumAssignedChannels(ctx context.Context, tenantID, userID string) (int, int, error) {
	ctx, span := s.tracer.Start(ctx, "storage.SumAssignedChannels")
	defer span.End()

	var devices, switches int
	err := s.db.Statement(ctx).
		Select("COUNT(*)", "COALESCE(SUM(d.channels), 0)").
		From("device_users du").
		Join("devices d ON d.tenant_id = du.tenant_id AND d.id = du.device_id").
		Where(sq.Eq{"du.tenant_id": tenantID, "du.user_id": userID}).
		QueryRowContext(ctx).
		Scan(&devices, &switches)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to sum assigned channels: %w", err)
	}

	return devices, switches, nil
}

// UpsertUserSummary overwrites the derived summary record. Safe to re-run on
// every relevant change; it carries no deltas, only current state.
func (s *Storage) UpsertUserSummary(ctx context.Context, summary *types.UserSummary) error {
	ctx, span := s.tracer.Start(ctx, "storage.UpsertUserSummary")
	defer span.End()

	_, err := s.db.Statement(ctx).
		Insert("user_summaries").
		Columns("user_id", "tenant_id", "role", "active", "device_count", "switch_count", "updated_at").
		Values(summary.UserID, summary.TenantID, summary.Role.String(), summary.Active, summary.DeviceCount, summary.SwitchCount, sq.Expr("now()")).
		Suffix("ON CONFLICT (user_id) DO UPDATE SET tenant_id = EXCLUDED.tenant_id, role = EXCLUDED.role, active = EXCLUDED.active, device_count = EXCLUDED.device_count, switch_count = EXCLUDED.switch_count, updated_at = now()").
		ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("failed to upsert user summary: %w", err)
	}

	return nil
}

func (s *Storage) GetUserSummary(ctx context.Context, userID string) (*types.UserSummary, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetUserSummary")
	defer span.End()

	var u types.UserSummary
	var role string
	err := s.db.Statement(ctx).
		Select("user_id", "tenant_id", "role", "active", "device_count", "switch_count", "updated_at").
		From("user_summaries").
		Where(sq.Eq{"user_id": userID}).
		QueryRowContext(ctx).
		Scan(&u.UserID, &u.TenantID, &role, &u.Active, &u.DeviceCount, &u.SwitchCount, &u.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) || errors.Is(err, errNoRowsSQL) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get user summary: %w", err)
	}

	u.Role, _ = types.ParseRole(role)
	return &u, nil
}
