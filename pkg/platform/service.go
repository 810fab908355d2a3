// Copyright 2026 GharSwitch Authors
// SPDX-License-Identifier: AGPL-3.0

// Package platform is the super-admin plane: tenant suspension, global
// device lifecycle, and the platform maintenance switch.
package platform

import (
	"context"
	"errors"

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

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (s *Service) ListTenants(ctx context.Context, principal *authentication.Principal) ([]*types.Tenant, error) {
	ctx, span := s.tracer.Start(ctx, "platform.Service.ListTenants")
	defer span.End()

	if err := s.authorize(principal, "list_tenants"); err != nil {
		return nil, err
	}

	tenants, err := s.storage.ListTenants(ctx)
	if err != nil {
		return nil, kinds.Wrap(kinds.Internal, "failed to list tenants", err)
	}
	return tenants, nil
}

func (s *Service) SetTenantStatus(ctx context.Context, principal *authentication.Principal, tenantID string, active bool, reason string) error {
	ctx, span := s.tracer.Start(ctx, "platform.Service.SetTenantStatus")
	defer span.End()

	if err := s.authorize(principal, "set_tenant_status"); err != nil {
		return err
	}
	if !active && reason == "" {
		return kinds.New(kinds.InvalidArgument, "suspension requires a reason")
	}
	if active {
		reason = ""
	}

	if err := s.storage.SetTenantStatus(ctx, tenantID, active, reason); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return kinds.New(kinds.NotFound, "tenant not found")
		}
		return kinds.Wrap(kinds.Internal, "failed to update tenant status", err)
	}

	s.logger.Infof("tenant %s active=%t", tenantID, active)
	return nil
}

func (s *Service) SetMaintenanceMode(ctx context.Context, principal *authentication.Principal, enabled bool) error {
	ctx, span := s.tracer.Start(ctx, "platform.Service.SetMaintenanceMode")
	defer span.End()

	if err := s.authorize(principal, "set_maintenance_mode"); err != nil {
		return err
	}

	if err := s.storage.SetMaintenanceMode(ctx, enabled); err != nil {
		return kinds.Wrap(kinds.Internal, "failed to update maintenance mode", err)
	}

	s.logger.Warnf("maintenance mode set to %t by %s", enabled, principal.UserID)
	return nil
}

func (s *Service) CreateGlobalDevice(ctx context.Context, principal *authentication.Principal, deviceID, model, claimCode string) (*types.GlobalDevice, error) {
	ctx, span := s.tracer.Start(ctx, "platform.Service.CreateGlobalDevice")
	defer span.End()

	if err := s.authorize(principal, "create_global_device"); err != nil {
		return nil, err
	}
	if len(claimCode) < 8 {
		return nil, kinds.New(kinds.InvalidArgument, "claim code must be at least 8 characters")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(claimCode), bcrypt.DefaultCost)
	if err != nil {
		return nil, kinds.Wrap(kinds.Internal, "failed to hash claim code", err)
	}

	device := &types.GlobalDevice{
		ID:         deviceID,
		Model:      model,
		SecretHash: string(hash),
		Active:     true,
	}
	if err := s.storage.CreateGlobalDevice(ctx, device); err != nil {
		if errors.Is(err, storage.ErrDuplicateKey) {
			return nil, kinds.New(kinds.AlreadyExists, "device id already registered")
		}
		return nil, kinds.Wrap(kinds.Internal, "failed to create registry entry", err)
	}

	return device, nil
}

func (s *Service) SetGlobalDeviceStatus(ctx context.Context, principal *authentication.Principal, deviceID string, active bool) error {
	ctx, span := s.tracer.Start(ctx, "platform.Service.SetGlobalDeviceStatus")
	defer span.End()

	if err := s.authorize(principal, "set_global_device_status"); err != nil {
		return err
	}

	if err := s.storage.SetGlobalDeviceStatus(ctx, deviceID, active); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return kinds.New(kinds.NotFound, "device not found")
		}
		return kinds.Wrap(kinds.Internal, "failed to update device status", err)
	}

	s.logger.Infof("global device %s active=%t", deviceID, active)
	return nil
}

func (s *Service) ListGlobalDevices(ctx context.Context, principal *authentication.Principal) ([]*types.GlobalDevice, error) {
	ctx, span := s.tracer.Start(ctx, "platform.Service.ListGlobalDevices")
	defer span.End()

	if err := s.authorize(principal, "list_global_devices"); err != nil {
		return nil, err
	}

	devices, err := s.storage.ListGlobalDevices(ctx)
	if err != nil {
		return nil, kinds.Wrap(kinds.Internal, "failed to list registry entries", err)
	}
	return devices, nil
}

func (s *Service) authorize(principal *authentication.Principal, action string) error {
	if principal.Role != types.RoleSuperAdmin {
		s.logger.Security().AuthzFailure(principal.UserID, action)
		return kinds.New(kinds.PermissionDenied, "super admin only")
	}
	return nil
}

func NewService(
	storage StorageInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	return &Service{
		storage: storage,
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}
