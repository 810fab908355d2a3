// Copyright 2026 GharSwitch Authors
// SPDX-License-Identifier: AGPL-3.0

package relay

import (
	"context"

	"github.com/ketan14/GharSwitch/internal/types"
	"github.com/ketan14/GharSwitch/pkg/authentication"
)

type ServiceInterface interface {
	// IssueCommand validates and durably queues one switch command, returning
	// the generated command id.
	IssueCommand(ctx context.Context, principal *authentication.Principal, deviceID, target string, action bool) (string, error)
}

type TreeInterface interface {
	PutPending(ctx context.Context, tenantID, deviceID, commandID string, cmd *types.PendingCommand) error
}
