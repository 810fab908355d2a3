// Copyright 2026 GharSwitch Authors
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"time"
)

// Subscription tiers and the quotas they grant.
const (
	TierBasic = "BASIC"
	TierPro   = "PRO"
)

// QuotaForTier returns the device/user caps attached to a subscription tier.
// Unknown tiers get the BASIC quota.
func QuotaForTier(tier string) Quota {
	if tier == TierPro {
		return Quota{MaxDevices: 50, MaxUsers: 20}
	}
	return Quota{MaxDevices: 10, MaxUsers: 5}
}

type Quota struct {
	MaxDevices int `db:"max_devices" json:"max_devices"`
	MaxUsers   int `db:"max_users" json:"max_users"`
}

// Tenant is the isolation boundary. All device and member records are scoped
// under exactly one tenant.
type Tenant struct {
	ID              string    `db:"id" json:"id"`
	Name            string    `db:"name" json:"name"`
	Tier            string    `db:"tier" json:"tier"`
	Quota           Quota     `json:"quota"`
	Active          bool      `db:"active" json:"active"`
	SuspendedReason string    `db:"suspended_reason" json:"suspended_reason,omitempty"`
	CreatedAt       time.Time `db:"created_at" json:"created_at"`
}

type Membership struct {
	ID        string    `db:"id" json:"id"`
	TenantID  string    `db:"tenant_id" json:"tenant_id"`
	UserID    string    `db:"user_id" json:"user_id"`
	Role      Role      `db:"role" json:"role"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// GlobalDevice is the pre-provisioning registry entry for a piece of
// hardware. ClaimedBy holds the owning tenant once claimed; a device id is
// claimed by at most one tenant at a time.
type GlobalDevice struct {
	ID         string  `db:"id" json:"id"`
	Model      string  `db:"model" json:"model"`
	SecretHash string  `db:"secret_hash" json:"-"`
	Active     bool    `db:"active" json:"active"`
	ClaimedBy  *string `db:"claimed_by" json:"claimed_by,omitempty"`
}

// Device is a tenant-scoped controller. Status is derived from presence, not
// authoritative here.
type Device struct {
	ID            string     `db:"id" json:"id"`
	TenantID      string     `db:"tenant_id" json:"tenant_id"`
	Name          string     `db:"name" json:"name"`
	Type          string     `db:"type" json:"type"`
	Channels      int        `db:"channels" json:"channels"`
	Active        bool       `db:"active" json:"active"`
	AssignedUsers []string   `db:"assigned_users" json:"assigned_users"`
	Status        string     `db:"status" json:"status"`
	LastSeen      *time.Time `db:"last_seen" json:"last_seen,omitempty"`
	RegisteredAt  time.Time  `db:"registered_at" json:"registered_at"`
}

// Assignment is one entry of the bidirectional device/user control index.
// Its existence must always agree with membership of UserID in the device's
// AssignedUsers set; both are written in the same transaction.
type Assignment struct {
	ID         string    `db:"id" json:"id"`
	TenantID   string    `db:"tenant_id" json:"tenant_id"`
	DeviceID   string    `db:"device_id" json:"device_id"`
	UserID     string    `db:"user_id" json:"user_id"`
	AssignedAt time.Time `db:"assigned_at" json:"assigned_at"`
}

type DeviceGroup struct {
	ID        string   `db:"id" json:"id"`
	TenantID  string   `db:"tenant_id" json:"tenant_id"`
	Name      string   `db:"name" json:"name"`
	DeviceIDs []string `db:"device_ids" json:"device_ids"`
}

// UserSummary is the derived per-user materialized view. It is recomputed
// from authoritative state on every relevant change; recomputation is
// idempotent.
type UserSummary struct {
	UserID      string    `db:"user_id" json:"user_id"`
	TenantID    string    `db:"tenant_id" json:"tenant_id"`
	Role        Role      `db:"role" json:"role"`
	Active      bool      `db:"active" json:"active"`
	DeviceCount int       `db:"device_count" json:"device_count"`
	SwitchCount int       `db:"switch_count" json:"switch_count"`
	UpdatedAt   time.Time `db:"updated_at" json:"updated_at"`
}

// PlatformSettings is the single-row platform configuration record.
type PlatformSettings struct {
	MaintenanceMode bool      `db:"maintenance_mode" json:"maintenance_mode"`
	UpdatedAt       time.Time `db:"updated_at" json:"updated_at"`
}

// Derived device status values.
const (
	StatusOnline  = "ONLINE"
	StatusOffline = "OFFLINE"
)
