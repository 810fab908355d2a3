// Copyright 2026 GharSwitch Authors
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"context"
	"strings"

	"github.com/ketan14/GharSwitch/internal/types"
)

type NoopVerifier struct{}

// NewNoopVerifier returns a no-op token verifier that allows all requests.
func NewNoopVerifier() *NoopVerifier {
	return &NoopVerifier{}
}

// VerifyToken treats the token as "userID:role:tenantID" for development
// purposes. Missing segments resolve to an unknown role and empty tenant.
func (n *NoopVerifier) VerifyToken(ctx context.Context, rawToken string) (*Principal, error) {
	parts := strings.SplitN(rawToken, ":", 3)

	p := &Principal{UserID: parts[0]}
	if len(parts) > 1 {
		p.Role, _ = types.ParseRole(parts[1])
	}
	if len(parts) > 2 {
		p.TenantID = parts[2]
	}

	return p, nil
}
