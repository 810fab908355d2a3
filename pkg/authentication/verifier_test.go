// Copyright 2026 GharSwitch Authors
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ketan14/GharSwitch/internal/logging"
	"github.com/ketan14/GharSwitch/internal/monitoring"
	"github.com/ketan14/GharSwitch/internal/tracing"
	"github.com/ketan14/GharSwitch/internal/types"
)

const testSecret = "unit-test-signing-secret"

func newTestIssuer(ttl time.Duration) *JWTIssuer {
	return NewJWTIssuer(testSecret, ttl, tracing.NewNoopTracer(), monitoring.NewNoopMonitor(), logging.NewNoopLogger())
}

func newTestVerifier(secret string) *JWTVerifier {
	return NewJWTVerifier(secret, tracing.NewNoopTracer(), monitoring.NewNoopMonitor(), logging.NewNoopLogger())
}

func TestIssueAndVerifyRoundTrip(t *testing.T) {
	ctx := context.Background()

	token, err := newTestIssuer(time.Hour).IssueToken(ctx, "user-1", types.RoleTenantAdmin, "tenant-1")
	require.NoError(t, err)

	principal, err := newTestVerifier(testSecret).VerifyToken(ctx, token)
	require.NoError(t, err)

	assert.Equal(t, "user-1", principal.UserID)
	assert.Equal(t, types.RoleTenantAdmin, principal.Role)
	assert.Equal(t, "tenant-1", principal.TenantID)
}

func TestVerifyToken_WrongSecret(t *testing.T) {
	ctx := context.Background()

	token, err := newTestIssuer(time.Hour).IssueToken(ctx, "user-1", types.RoleUser, "tenant-1")
	require.NoError(t, err)

	_, err = newTestVerifier("a-different-secret").VerifyToken(ctx, token)
	assert.Error(t, err)
}

func TestVerifyToken_Expired(t *testing.T) {
	ctx := context.Background()

	token, err := newTestIssuer(-time.Minute).IssueToken(ctx, "user-1", types.RoleUser, "tenant-1")
	require.NoError(t, err)

	_, err = newTestVerifier(testSecret).VerifyToken(ctx, token)
	assert.Error(t, err)
}

func TestVerifyToken_Garbage(t *testing.T) {
	_, err := newTestVerifier(testSecret).VerifyToken(context.Background(), "not-a-jwt")
	assert.Error(t, err)
}

// A token whose role claim is not in the closed role set still authenticates,
// but resolves to the unknown role so permission checks fail closed.
func TestVerifyToken_UnknownRoleFailsClosed(t *testing.T) {
	ctx := context.Background()

	issuer := newTestIssuer(time.Hour)
	token, err := issuer.IssueToken(ctx, "user-1", types.Role("owner"), "tenant-1")
	require.NoError(t, err)

	principal, err := newTestVerifier(testSecret).VerifyToken(ctx, token)
	require.NoError(t, err)

	assert.Equal(t, types.RoleUnknown, principal.Role)
	assert.False(t, principal.Role.CanControl())
}

func TestIssueToken_RequiresUserID(t *testing.T) {
	_, err := newTestIssuer(time.Hour).IssueToken(context.Background(), "", types.RoleUser, "tenant-1")
	assert.Error(t, err)
}
