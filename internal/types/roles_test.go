// Copyright 2026 GharSwitch Authors
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"testing"
)

func TestParseRole(t *testing.T) {
	testCases := []struct {
		name     string
		raw      string
		expected Role
		wantErr  bool
	}{
		{name: "plain", raw: "user", expected: RoleUser},
		{name: "uppercase", raw: "SUPER_ADMIN", expected: RoleSuperAdmin},
		{name: "hyphenated", raw: "tenant-admin", expected: RoleTenantAdmin},
		{name: "mixed case hyphen", raw: "Super-Admin", expected: RoleSuperAdmin},
		{name: "surrounding space", raw: " admin ", expected: RoleAdmin},
		{name: "empty fails closed", raw: "", expected: RoleUnknown, wantErr: true},
		{name: "unknown fails closed", raw: "viewer", expected: RoleUnknown, wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			role, err := ParseRole(tc.raw)
			if tc.wantErr && err == nil {
				t.Errorf("expected error for %q", tc.raw)
			}
			if !tc.wantErr && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
			if role != tc.expected {
				t.Errorf("expected role %q, got %q", tc.expected, role)
			}
		})
	}
}

func TestRoleTiers(t *testing.T) {
	if !RoleUser.CanControl() {
		t.Error("user role must be control-capable")
	}
	if RoleUser.AdminTier() {
		t.Error("user role must not be admin tier")
	}
	if !RoleTenantAdmin.AdminTier() {
		t.Error("tenant_admin must be admin tier")
	}
	if RoleUnknown.CanControl() {
		t.Error("unset role must fail closed")
	}
}

func TestQuotaForTier(t *testing.T) {
	pro := QuotaForTier(TierPro)
	if pro.MaxDevices != 50 || pro.MaxUsers != 20 {
		t.Errorf("unexpected PRO quota: %+v", pro)
	}
	basic := QuotaForTier(TierBasic)
	if basic.MaxDevices != 10 || basic.MaxUsers != 5 {
		t.Errorf("unexpected BASIC quota: %+v", basic)
	}
	if QuotaForTier("unset") != basic {
		t.Error("unknown tier must fall back to BASIC quota")
	}
}
