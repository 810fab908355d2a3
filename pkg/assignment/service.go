// Copyright 2026 GharSwitch Authors
// SPDX-License-Identifier: AGPL-3.0

// Package assignment maintains the bidirectional device/user control index
// and the derived per-user summary view.
package assignment

import (
	"context"
	"errors"
	"time"

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

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (s *Service) Assign(ctx context.Context, principal *authentication.Principal, deviceID, userID string) error {
	ctx, span := s.tracer.Start(ctx, "assignment.Service.Assign")
	defer span.End()

	if err := s.authorize(ctx, principal, userID); err != nil {
		return err
	}

	if _, err := s.storage.GetDevice(ctx, principal.TenantID, deviceID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return kinds.New(kinds.NotFound, "device not found")
		}
		return kinds.Wrap(kinds.Internal, "failed to load device", err)
	}

	// Index record and assigned-users set change together or not at all.
	err := s.db.WithTx(ctx, func(ctx context.Context) error {
		return s.storage.AddAssignment(ctx, principal.TenantID, deviceID, userID)
	})
	if err != nil {
		if errors.Is(err, storage.ErrDuplicateKey) {
			return kinds.New(kinds.AlreadyExists, "user is already assigned to this device")
		}
		return kinds.Wrap(kinds.Internal, "failed to assign device", err)
	}

	s.recomputeSummary(ctx, principal.TenantID, userID)
	return nil
}

func (s *Service) Revoke(ctx context.Context, principal *authentication.Principal, deviceID, userID string) error {
	ctx, span := s.tracer.Start(ctx, "assignment.Service.Revoke")
	defer span.End()

	if err := s.authorize(ctx, principal, userID); err != nil {
		return err
	}

	err := s.db.WithTx(ctx, func(ctx context.Context) error {
		return s.storage.RemoveAssignment(ctx, principal.TenantID, deviceID, userID)
	})
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return kinds.New(kinds.NotFound, "assignment not found")
		}
		return kinds.Wrap(kinds.Internal, "failed to revoke assignment", err)
	}

	s.recomputeSummary(ctx, principal.TenantID, userID)
	return nil
}

// AssignGroup cascades an assignment over every device in the group. Devices
// already assigned are skipped rather than failing the cascade, so re-running
// a partially applied group assignment converges.
func (s *Service) AssignGroup(ctx context.Context, principal *authentication.Principal, groupID, userID string) error {
	ctx, span := s.tracer.Start(ctx, "assignment.Service.AssignGroup")
	defer span.End()

	if err := s.authorize(ctx, principal, userID); err != nil {
		return err
	}

	group, err := s.storage.GetDeviceGroup(ctx, principal.TenantID, groupID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return kinds.New(kinds.NotFound, "device group not found")
		}
		return kinds.Wrap(kinds.Internal, "failed to load device group", err)
	}

	err = s.db.WithTx(ctx, func(ctx context.Context) error {
		for _, deviceID := range group.DeviceIDs {
			if err := s.storage.AddAssignment(ctx, principal.TenantID, deviceID, userID); err != nil {
				if errors.Is(err, storage.ErrDuplicateKey) {
					continue
				}
				return err
			}
		}
		return nil
	})
	if err != nil {
		return kinds.Wrap(kinds.Internal, "failed to assign device group", err)
	}

	s.recomputeSummary(ctx, principal.TenantID, userID)
	return nil
}

func (s *Service) GetUserSummary(ctx context.Context, principal *authentication.Principal, userID string) (*types.UserSummary, error) {
	ctx, span := s.tracer.Start(ctx, "assignment.Service.GetUserSummary")
	defer span.End()

	if userID != principal.UserID && !principal.Role.AdminTier() {
		return nil, kinds.New(kinds.PermissionDenied, "cannot read another user's summary")
	}

	summary, err := s.storage.GetUserSummary(ctx, userID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, kinds.New(kinds.NotFound, "user summary not found")
		}
		return nil, kinds.Wrap(kinds.Internal, "failed to load user summary", err)
	}

	return summary, nil
}

func (s *Service) authorize(ctx context.Context, principal *authentication.Principal, userID string) error {
	if !principal.Role.AdminTier() {
		s.logger.Security().AuthzFailure(principal.UserID, "manage_assignments")
		return kinds.New(kinds.PermissionDenied, "only admins manage assignments")
	}

	if _, err := s.storage.GetMembership(ctx, principal.TenantID, userID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return kinds.New(kinds.InvalidArgument, "target user is not a member of this tenant")
		}
		return kinds.Wrap(kinds.Internal, "failed to load target membership", err)
	}

	return nil
}

// recomputeSummary rebuilds the derived summary from authoritative state.
// It is idempotent and re-runs on every relevant change, so a failure here
// only delays convergence until the next change.
func (s *Service) recomputeSummary(ctx context.Context, tenantID, userID string) {
	membership, err := s.storage.GetMembership(ctx, tenantID, userID)
	if err != nil {
		s.logger.Warnf("summary recompute skipped for %s: %v", userID, err)
		return
	}

	devices, switches, err := s.storage.SumAssignedChannels(ctx, tenantID, userID)
	if err != nil {
		s.logger.Warnf("summary recompute skipped for %s: %v", userID, err)
		return
	}

	summary := &types.UserSummary{
		UserID:      userID,
		TenantID:    tenantID,
		Role:        membership.Role,
		Active:      true,
		DeviceCount: devices,
		SwitchCount: switches,
		UpdatedAt:   time.Now(),
	}

	if err := s.storage.UpsertUserSummary(ctx, summary); err != nil {
		s.logger.Warnf("failed to persist summary for %s: %v", userID, err)
	}
}

func NewService(
	storage StorageInterface,
	db TxRunnerInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	return &Service{
		storage: storage,
		db:      db,
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}
