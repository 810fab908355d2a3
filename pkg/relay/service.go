// Copyright 2026 GharSwitch Authors
// SPDX-License-Identifier: AGPL-3.0

// Package relay accepts authorized switch-command intents and publishes them
// to the per-device pending queue.
package relay

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/ketan14/GharSwitch/internal/kinds"
	"github.com/ketan14/GharSwitch/internal/logging"
	"github.com/ketan14/GharSwitch/internal/monitoring"
	"github.com/ketan14/GharSwitch/internal/tracing"
	"github.com/ketan14/GharSwitch/internal/types"
	"github.com/ketan14/GharSwitch/pkg/authentication"
	"github.com/ketan14/GharSwitch/pkg/authorization"
)

var _ ServiceInterface = (*Service)(nil)

type Service struct {
	gate authorization.GateInterface
	tree TreeInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

// IssueCommand runs the authorization gate, validates the target channel,
// and writes the pending entry. The write is durable before success is
// returned; delivery to the device is asynchronous. Issuance is deliberately
// not idempotent: a retry after a transient failure becomes a second,
// independently-applied command.
func (s *Service) IssueCommand(ctx context.Context, principal *authentication.Principal, deviceID, target string, action bool) (string, error) {
	ctx, span := s.tracer.Start(ctx, "relay.Service.IssueCommand")
	defer span.End()

	device, err := s.gate.CheckCommand(ctx, principal, deviceID)
	if err != nil {
		return "", err
	}

	if !types.ValidTarget(target, device.Channels) {
		return "", kinds.New(kinds.InvalidArgument, fmt.Sprintf("target %q is not a channel of this device", target))
	}

	now := time.Now()
	commandID := newCommandID(now)

	cmd := &types.PendingCommand{
		Action:    action,
		Target:    target,
		Timestamp: now.UnixMilli(),
		IssuedBy:  principal.UserID,
	}

	if err := s.tree.PutPending(ctx, principal.TenantID, deviceID, commandID, cmd); err != nil {
		s.logger.Errorf("failed to queue command %s for device %s: %v", commandID, deviceID, err)
		return "", kinds.Wrap(kinds.Internal, "failed to queue command", err)
	}

	s.logger.Security().CommandIssued(principal.UserID, principal.TenantID, deviceID, target)

	return commandID, nil
}

// newCommandID builds a time-prefixed identifier with a random suffix, so
// ids sort roughly by issue time and cannot collide within a queue.
func newCommandID(now time.Time) string {
	return fmt.Sprintf("%d-%s", now.UnixMilli(), uuid.NewString())
}

func NewService(
	gate authorization.GateInterface,
	tree TreeInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	return &Service{
		gate:    gate,
		tree:    tree,
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}
