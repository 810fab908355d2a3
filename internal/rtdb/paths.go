// Copyright 2026 GharSwitch Authors
// SPDX-License-Identifier: AGPL-3.0

package rtdb

import (
	"fmt"
	"strings"
)

// Tree paths mirror the portal's layout: everything is scoped by tenant,
// then device, so path-level access control lines up with tenancy.

func StatePath(tenantID, deviceID string) string {
	return fmt.Sprintf("tenants/%s/device_states/%s", tenantID, deviceID)
}

func PresencePath(tenantID, deviceID string) string {
	return fmt.Sprintf("tenants/%s/presence/%s", tenantID, deviceID)
}

func PendingPath(tenantID, deviceID string) string {
	return fmt.Sprintf("tenants/%s/device_commands/%s/pending", tenantID, deviceID)
}

// PendingPathPattern matches every device's pending queue, for pattern
// subscriptions that fan commands out regardless of tenant.
func PendingPathPattern() string {
	return "tenants/*/device_commands/*/pending"
}

// ParsePendingPath extracts the tenant and device ids from a concrete
// pending-queue path. ok is false for any other path shape.
func ParsePendingPath(path string) (tenantID, deviceID string, ok bool) {
	parts := strings.Split(path, "/")
	if len(parts) != 5 || parts[0] != "tenants" || parts[2] != "device_commands" || parts[4] != "pending" {
		return "", "", false
	}
	return parts[1], parts[3], true
}

// channelFor maps a tree path to its pub/sub notification channel.
func channelFor(path string) string {
	return "rtdb:" + path
}

// pathFor inverts channelFor for messages arriving off the wire.
func pathFor(channel string) string {
	return strings.TrimPrefix(channel, "rtdb:")
}
