// Copyright 2026 GharSwitch Authors
// SPDX-License-Identifier: AGPL-3.0

package authorization

import (
	"context"

	"github.com/ketan14/GharSwitch/internal/types"
	"github.com/ketan14/GharSwitch/pkg/authentication"
)

// GateInterface produces a single permit/deny decision for a command-issuance
// request. A permit returns the target device so the caller can validate the
// channel without a second lookup; a deny returns a taxonomy error carrying
// the specific denial reason.
type GateInterface interface {
	CheckCommand(ctx context.Context, principal *authentication.Principal, deviceID string) (*types.Device, error)
}

type StorageInterface interface {
	GetPlatformSettings(ctx context.Context) (*types.PlatformSettings, error)
	GetTenantByID(ctx context.Context, id string) (*types.Tenant, error)
	GetMembership(ctx context.Context, tenantID, userID string) (*types.Membership, error)
	GetDevice(ctx context.Context, tenantID, deviceID string) (*types.Device, error)
}
