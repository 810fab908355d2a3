// Copyright 2026 GharSwitch Authors
// SPDX-License-Identifier: AGPL-3.0

package authorization

import (
	"context"
	"errors"
	"slices"

	"github.com/ketan14/GharSwitch/internal/kinds"
	"github.com/ketan14/GharSwitch/internal/logging"
	"github.com/ketan14/GharSwitch/internal/monitoring"
	"github.com/ketan14/GharSwitch/internal/storage"
	"github.com/ketan14/GharSwitch/internal/tracing"
	"github.com/ketan14/GharSwitch/internal/types"
	"github.com/ketan14/GharSwitch/pkg/authentication"
)

var _ GateInterface = (*Gate)(nil)

type Gate struct {
	storage StorageInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

// CheckCommand runs the decision sequence for one command request and short
// circuits on the first failing check. Platform-wide and tenant-wide checks
// run before any per-device lookup, so rejections during an incident stay
// cheap. The target tenant is always the caller's own; cross-tenant command
// issuance is not expressible here.
func (g *Gate) CheckCommand(ctx context.Context, principal *authentication.Principal, deviceID string) (*types.Device, error) {
	ctx, span := g.tracer.Start(ctx, "authorization.Gate.CheckCommand")
	defer span.End()

	settings, err := g.storage.GetPlatformSettings(ctx)
	if err != nil {
		return nil, kinds.Wrap(kinds.Internal, "failed to load platform settings", err)
	}
	if settings.MaintenanceMode {
		return nil, g.deny(principal, kinds.New(kinds.Unavailable, "platform is under maintenance"))
	}

	tenant, err := g.storage.GetTenantByID(ctx, principal.TenantID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, g.deny(principal, kinds.New(kinds.PermissionDenied, "tenant is suspended or does not exist"))
		}
		return nil, kinds.Wrap(kinds.Internal, "failed to load tenant", err)
	}
	if !tenant.Active {
		return nil, g.deny(principal, kinds.New(kinds.PermissionDenied, "tenant is suspended"))
	}

	if _, err := g.storage.GetMembership(ctx, principal.TenantID, principal.UserID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, g.deny(principal, kinds.New(kinds.PermissionDenied, "caller is not a member of this tenant"))
		}
		return nil, kinds.Wrap(kinds.Internal, "failed to load membership", err)
	}

	if !principal.Role.CanControl() {
		return nil, g.deny(principal, kinds.New(kinds.PermissionDenied, "role cannot issue commands"))
	}

	device, err := g.storage.GetDevice(ctx, principal.TenantID, deviceID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, g.deny(principal, kinds.New(kinds.NotFound, "device not found"))
		}
		return nil, kinds.Wrap(kinds.Internal, "failed to load device", err)
	}

	if !device.Active {
		return nil, g.deny(principal, kinds.New(kinds.PermissionDenied, "device is deactivated"))
	}

	if !principal.Role.AdminTier() && !slices.Contains(device.AssignedUsers, principal.UserID) {
		return nil, g.deny(principal, kinds.New(kinds.PermissionDenied, "caller is not assigned to this device"))
	}

	return device, nil
}

func (g *Gate) deny(principal *authentication.Principal, err *kinds.Error) error {
	g.logger.Security().AuthzFailure(principal.UserID, "issue_command")
	g.logger.Debugf("command denied for %s: %s", principal.UserID, err.Message)
	return err
}

func NewGate(storage StorageInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Gate {
	return &Gate{
		storage: storage,
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}
