// Copyright 2026 GharSwitch Authors
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"context"

	"github.com/ketan14/GharSwitch/internal/types"
)

type TokenVerifierInterface interface {
	// VerifyToken verifies a raw JWT string and resolves the embedded claims.
	// Returns the caller principal if the token is valid, otherwise an error.
	VerifyToken(ctx context.Context, rawToken string) (*Principal, error)
}

type TokenIssuerInterface interface {
	// IssueToken mints a signed token embedding the caller's role and tenant.
	// Called on login and again whenever a membership change invalidates the
	// previously embedded claims.
	IssueToken(ctx context.Context, userID string, role types.Role, tenantID string) (string, error)
}
