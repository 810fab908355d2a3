// Copyright 2026 GharSwitch Authors
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"context"

	"github.com/ketan14/GharSwitch/internal/types"
)

// Principal is the resolved caller identity for one request: who they are,
// what they may do, and which tenant they belong to. It is built exactly once
// per request, from verified token claims, and is immutable afterwards.
type Principal struct {
	UserID   string
	Role     types.Role
	TenantID string
}

// Define a private custom type to avoid collisions
type contextKey struct{}

var principalContextKey = contextKey{}

// WithPrincipal returns a new context carrying the resolved caller identity.
func WithPrincipal(ctx context.Context, p *Principal) context.Context {
	return context.WithValue(ctx, principalContextKey, p)
}

// PrincipalFromContext retrieves the caller identity from the context.
// Returns nil and false if no principal is present.
func PrincipalFromContext(ctx context.Context) (*Principal, bool) {
	p, ok := ctx.Value(principalContextKey).(*Principal)
	return p, ok
}
