// Copyright 2026 GharSwitch Authors
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/ketan14/GharSwitch/internal/types"
)

func (s *Storage) CreateGlobalDevice(ctx context.Context, gd *types.GlobalDevice) error {
	ctx, span := s.tracer.Start(ctx, "storage.CreateGlobalDevice")
	defer span.End()

	_, err := s.db.Statement(ctx).
		Insert("global_devices").
		Columns("id", "model", "secret_hash", "active").
		Values(gd.ID, gd.Model, gd.SecretHash, gd.Active).
		ExecContext(ctx)
	if err != nil {
		if IsDuplicateKeyError(err) {
			return ErrDuplicateKey
		}
		return fmt.Errorf("failed to insert global device: %w", err)
	}

	return nil
}

func (s *Storage) GetGlobalDevice(ctx context.Context, id string) (*types.GlobalDevice, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetGlobalDevice")
	defer span.End()

	var gd types.GlobalDevice
	err := s.db.Statement(ctx).
		Select("id", "model", "secret_hash", "active", "claimed_by").
		From("global_devices").
		Where(sq.Eq{"id": id}).
		QueryRowContext(ctx).
		Scan(&gd.ID, &gd.Model, &gd.SecretHash, &gd.Active, &gd.ClaimedBy)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) || errors.Is(err, errNoRowsSQL) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get global device: %w", err)
	}

	return &gd, nil
}

func (s *Storage) ListGlobalDevices(ctx context.Context) ([]*types.GlobalDevice, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListGlobalDevices")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select("id", "model", "secret_hash", "active", "claimed_by").
		From("global_devices").
		OrderBy("id").
		QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list global devices: %w", err)
	}
	defer rows.Close()

	var devices []*types.GlobalDevice
	for rows.Next() {
		var gd types.GlobalDevice
		if err := rows.Scan(&gd.ID, &gd.Model, &gd.SecretHash, &gd.Active, &gd.ClaimedBy); err != nil {
			return nil, fmt.Errorf("failed to scan global device: %w", err)
		}
		devices = append(devices, &gd)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return devices, nil
}

// ClaimGlobalDevice binds hardware to a tenant. The claimed_by IS NULL guard
// makes concurrent claims race on the row update: exactly one wins, the rest
// get ErrAlreadyClaimed.
func (s *Storage) ClaimGlobalDevice(ctx context.Context, id, tenantID string) error {
	ctx, span := s.tracer.Start(ctx, "storage.ClaimGlobalDevice")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Update("global_devices").
		Set("claimed_by", tenantID).
		Where(sq.Eq{"id": id}).
		Where("claimed_by IS NULL").
		ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("failed to claim global device: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check rows affected: %w", err)
	}
	if rows == 0 {
		return ErrAlreadyClaimed
	}

	return nil
}

// SetGlobalDeviceStatus toggles the global kill-switch and mirrors it onto
// the claimed tenant's device record so the authorization path needs a
// single read.
func (s *Storage) SetGlobalDeviceStatus(ctx context.Context, id string, active bool) error {
	ctx, span := s.tracer.Start(ctx, "storage.SetGlobalDeviceStatus")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Update("global_devices").
		Set("active", active).
		Where(sq.Eq{"id": id}).
		ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("failed to update global device status: %w", err)
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
		Set("active", active).
		Where(sq.Eq{"id": id}).
		ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("failed to mirror device status: %w", err)
	}

	return nil
}

const deviceColumns = "id, tenant_id, name, type, channels, active, array_to_string(assigned_users, ','), status, last_seen, registered_at"

func (s *Storage) scanDevice(scan func(...interface{}) error) (*types.Device, error) {
	var d types.Device
	var assigned string
	err := scan(&d.ID, &d.TenantID, &d.Name, &d.Type, &d.Channels, &d.Active, &assigned, &d.Status, &d.LastSeen, &d.RegisteredAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) || errors.Is(err, errNoRowsSQL) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to scan device: %w", err)
	}
	if assigned != "" {
		d.AssignedUsers = strings.Split(assigned, ",")
	}
	return &d, nil
}

func (s *Storage) CreateDevice(ctx context.Context, d *types.Device) (*types.Device, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateDevice")
	defer span.End()

	row := s.db.Statement(ctx).
		Insert("devices").
		Columns("id", "tenant_id", "name", "type", "channels", "active", "assigned_users", "status").
		Values(d.ID, d.TenantID, d.Name, d.Type, d.Channels, d.Active, sq.Expr("'{}'::text[]"), types.StatusOffline).
		Suffix("RETURNING " + deviceColumns).
		QueryRowContext(ctx)

	created, err := s.scanDevice(row.Scan)
	if err != nil {
		return nil, fmt.Errorf("failed to insert device: %w", err)
	}

	return created, nil
}

func (s *Storage) GetDevice(ctx context.Context, tenantID, deviceID string) (*types.Device, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetDevice")
	defer span.End()

	row := s.db.Statement(ctx).
		Select(deviceColumns).
		From("devices").
		Where(sq.Eq{"tenant_id": tenantID, "id": deviceID}).
		QueryRowContext(ctx)

	return s.scanDevice(row.Scan)
}

func (s *Storage) ListDevicesByTenant(ctx context.Context, tenantID string) ([]*types.Device, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListDevicesByTenant")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select(deviceColumns).
		From("devices").
		Where(sq.Eq{"tenant_id": tenantID}).
		OrderBy("registered_at").
		QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list devices: %w", err)
	}
	defer rows.Close()

	var devices []*types.Device
	for rows.Next() {
		d, err := s.scanDevice(rows.Scan)
		if err != nil {
			return nil, err
		}
		devices = append(devices, d)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return devices, nil
}

func (s *Storage) CountDevices(ctx context.Context, tenantID string) (int, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CountDevices")
	defer span.End()

	var count int
	err := s.db.Statement(ctx).
		Select("COUNT(*)").
		From("devices").
		Where(sq.Eq{"tenant_id": tenantID}).
		QueryRowContext(ctx).
		Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count devices: %w", err)
	}

	return count, nil
}

func (s *Storage) UpdateDevicePresence(ctx context.Context, tenantID, deviceID, status string, lastSeen time.Time) error {
	ctx, span := s.tracer.Start(ctx, "storage.UpdateDevicePresence")
	defer span.End()

	_, err := s.db.Statement(ctx).
		Update("devices").
		Set("status", status).
		Set("last_seen", lastSeen).
		Where(sq.Eq{"tenant_id": tenantID, "id": deviceID}).
		ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("failed to update device presence: %w", err)
	}

	return nil
}
