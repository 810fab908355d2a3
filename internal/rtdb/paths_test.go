// Copyright 2026 GharSwitch Authors
// SPDX-License-Identifier: AGPL-3.0

package rtdb

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTreePaths(t *testing.T) {
	assert.Equal(t, "tenants/t1/device_states/d1", StatePath("t1", "d1"))
	assert.Equal(t, "tenants/t1/presence/d1", PresencePath("t1", "d1"))
	assert.Equal(t, "tenants/t1/device_commands/d1/pending", PendingPath("t1", "d1"))
}

func TestChannelFor(t *testing.T) {
	assert.Equal(t, "rtdb:tenants/t1/presence/d1", channelFor(PresencePath("t1", "d1")))
	assert.Equal(t, "tenants/t1/presence/d1", pathFor("rtdb:tenants/t1/presence/d1"))
}

func TestParsePendingPath(t *testing.T) {
	tenantID, deviceID, ok := ParsePendingPath(PendingPath("t1", "d1"))
	assert.True(t, ok)
	assert.Equal(t, "t1", tenantID)
	assert.Equal(t, "d1", deviceID)

	_, _, ok = ParsePendingPath(StatePath("t1", "d1"))
	assert.False(t, ok)

	_, _, ok = ParsePendingPath("tenants/t1/device_commands/d1")
	assert.False(t, ok)
}
