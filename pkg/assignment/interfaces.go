// Copyright 2026 GharSwitch Authors
// SPDX-License-Identifier: AGPL-3.0

package assignment

import (
	"context"

	"github.com/ketan14/GharSwitch/internal/types"
	"github.com/ketan14/GharSwitch/pkg/authentication"
)

type ServiceInterface interface {
	// Assign grants userID control over deviceID; Revoke removes it. Both
	// update the device's assigned-users set and the index record in one
	// transaction and recompute the user's summary afterwards.
	Assign(ctx context.Context, principal *authentication.Principal, deviceID, userID string) error
	Revoke(ctx context.Context, principal *authentication.Principal, deviceID, userID string) error
	// AssignGroup applies Assign across every device in the group.
	AssignGroup(ctx context.Context, principal *authentication.Principal, groupID, userID string) error
	GetUserSummary(ctx context.Context, principal *authentication.Principal, userID string) (*types.UserSummary, error)
}

type StorageInterface interface {
	GetDevice(ctx context.Context, tenantID, deviceID string) (*types.Device, error)
	AddAssignment(ctx context.Context, tenantID, deviceID, userID string) error
	RemoveAssignment(ctx context.Context, tenantID, deviceID, userID string) error
	GetDeviceGroup(ctx context.Context, tenantID, groupID string) (*types.DeviceGroup, error)
	GetMembership(ctx context.Context, tenantID, userID string) (*types.Membership, error)
	SumAssignedChannels(ctx context.Context, tenantID, userID string) (devices int, switches int, err error)
	UpsertUserSummary(ctx context.Context, s *types.UserSummary) error
	GetUserSummary(ctx context.Context, userID string) (*types.UserSummary, error)
}

type TxRunnerInterface interface {
	WithTx(ctx context.Context, fn func(ctx context.Context) error) error
}
