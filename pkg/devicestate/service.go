// Copyright 2026 GharSwitch Authors
// SPDX-License-Identifier: AGPL-3.0

package devicestate

import (
	"context"
	"errors"
	"slices"
	"time"

	"github.com/ketan14/GharSwitch/internal/kinds"
	"github.com/ketan14/GharSwitch/internal/logging"
	"github.com/ketan14/GharSwitch/internal/monitoring"
	"github.com/ketan14/GharSwitch/internal/rtdb"
	"github.com/ketan14/GharSwitch/internal/storage"
	"github.com/ketan14/GharSwitch/internal/tracing"
	"github.com/ketan14/GharSwitch/internal/types"
	"github.com/ketan14/GharSwitch/pkg/authentication"
)

var _ ServiceInterface = (*Service)(nil)

type Service struct {
	storage StorageInterface
	tree    TreeInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (s *Service) ListDevices(ctx context.Context, principal *authentication.Principal) ([]*DeviceView, error) {
	ctx, span := s.tracer.Start(ctx, "devicestate.Service.ListDevices")
	defer span.End()

	devices, err := s.storage.ListDevicesByTenant(ctx, principal.TenantID)
	if err != nil {
		return nil, kinds.Wrap(kinds.Internal, "failed to list devices", err)
	}

	now := time.Now()
	views := make([]*DeviceView, 0, len(devices))
	for _, d := range devices {
		if !principal.Role.AdminTier() && !slices.Contains(d.AssignedUsers, principal.UserID) {
			continue
		}
		views = append(views, s.view(d, now))
	}

	return views, nil
}

func (s *Service) GetState(ctx context.Context, principal *authentication.Principal, deviceID string) (*StateSnapshot, error) {
	ctx, span := s.tracer.Start(ctx, "devicestate.Service.GetState")
	defer span.End()

	device, err := s.storage.GetDevice(ctx, principal.TenantID, deviceID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, kinds.New(kinds.NotFound, "device not found")
		}
		return nil, kinds.Wrap(kinds.Internal, "failed to load device", err)
	}

	if !principal.Role.AdminTier() && !slices.Contains(device.AssignedUsers, principal.UserID) {
		return nil, kinds.New(kinds.PermissionDenied, "caller is not assigned to this device")
	}

	snapshot := &StateSnapshot{DeviceID: deviceID}

	var state types.DeviceState
	found, err := s.tree.GetValue(ctx, rtdb.StatePath(principal.TenantID, deviceID), &state)
	if err != nil {
		return nil, kinds.Wrap(kinds.Internal, "failed to read device state", err)
	}
	if found {
		snapshot.State = &state
	}

	pending, err := s.tree.GetPending(ctx, principal.TenantID, deviceID)
	if err != nil {
		return nil, kinds.Wrap(kinds.Internal, "failed to read pending commands", err)
	}
	snapshot.Pending = pending

	var presence types.Presence
	found, err = s.tree.GetValue(ctx, rtdb.PresencePath(principal.TenantID, deviceID), &presence)
	if err != nil {
		return nil, kinds.Wrap(kinds.Internal, "failed to read presence", err)
	}

	now := time.Now()
	if found {
		snapshot.Status = StatusFromPresence(&presence, now)
		snapshot.LastSeen = presence.LastSeen
	} else {
		snapshot.Status = types.StatusOffline
	}

	return snapshot, nil
}

// view attaches derived status and channel targets. The stored status column
// is ignored on purpose; only last-seen participates in the derivation.
func (s *Service) view(d *types.Device, now time.Time) *DeviceView {
	var lastSeen int64
	if d.LastSeen != nil {
		lastSeen = d.LastSeen.UnixMilli()
	}
	d.Status = StatusFromLastSeen(lastSeen, now)

	return &DeviceView{
		Device:  d,
		Targets: types.SwitchTargets(d.Channels),
	}
}

func NewService(
	storage StorageInterface,
	tree TreeInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	return &Service{
		storage: storage,
		tree:    tree,
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}
