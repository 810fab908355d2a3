// Copyright 2026 GharSwitch Authors
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"fmt"
	"strings"
)

// Role is the closed set of caller roles. Raw role strings are normalized
// exactly once, at the claims boundary; everything past that point works
// with this type.
type Role string

const (
	RoleSuperAdmin  Role = "super_admin"
	RoleTenantAdmin Role = "tenant_admin"
	RoleAdmin       Role = "admin"
	RoleUser        Role = "user"
	RoleUnknown     Role = ""
)

// ParseRole normalizes a raw role string. Matching is case-insensitive and
// treats hyphens and underscores as equivalent. An unrecognized or empty
// value yields RoleUnknown, which fails closed everywhere it is checked.
func ParseRole(raw string) (Role, error) {
	normalized := strings.ToLower(strings.TrimSpace(raw))
	normalized = strings.ReplaceAll(normalized, "-", "_")

	switch Role(normalized) {
	case RoleSuperAdmin, RoleTenantAdmin, RoleAdmin, RoleUser:
		return Role(normalized), nil
	}
	return RoleUnknown, fmt.Errorf("unknown role %q", raw)
}

// CanControl reports whether the role may issue switch commands at all.
func (r Role) CanControl() bool {
	switch r {
	case RoleSuperAdmin, RoleTenantAdmin, RoleAdmin, RoleUser:
		return true
	}
	return false
}

// AdminTier reports whether the role bypasses per-device assignment checks.
func (r Role) AdminTier() bool {
	switch r {
	case RoleSuperAdmin, RoleTenantAdmin, RoleAdmin:
		return true
	}
	return false
}

func (r Role) String() string {
	return string(r)
}
