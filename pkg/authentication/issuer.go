// Copyright 2026 GharSwitch Authors
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"context"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt"

	"github.com/ketan14/GharSwitch/internal/logging"
	"github.com/ketan14/GharSwitch/internal/monitoring"
	"github.com/ketan14/GharSwitch/internal/tracing"
	"github.com/ketan14/GharSwitch/internal/types"
)

type JWTIssuer struct {
	secret []byte
	ttl    time.Duration

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

// IssueToken mints a signed HS256 token embedding the caller's role and
// tenant. Tokens reflect the membership state at mint time; services that
// change a user's role or tenant re-issue through this method so the caller's
// next request carries fresh claims.
func (i *JWTIssuer) IssueToken(ctx context.Context, userID string, role types.Role, tenantID string) (string, error) {
	_, span := i.tracer.Start(ctx, "authentication.JWTIssuer.IssueToken")
	defer span.End()

	if userID == "" {
		return "", fmt.Errorf("user id is required")
	}

	now := time.Now()
	claims := jwt.MapClaims{
		"sub":      userID,
		"role":     role.String(),
		"tenantId": tenantID,
		"iat":      now.Unix(),
		"exp":      now.Add(i.ttl).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(i.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return signed, nil
}

func NewJWTIssuer(
	secret string,
	ttl time.Duration,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *JWTIssuer {
	return &JWTIssuer{
		secret:  []byte(secret),
		ttl:     ttl,
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}
