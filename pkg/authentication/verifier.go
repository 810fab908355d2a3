// Copyright 2026 GharSwitch Authors
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"context"
	"fmt"

	"github.com/golang-jwt/jwt"

	"github.com/ketan14/GharSwitch/internal/logging"
	"github.com/ketan14/GharSwitch/internal/monitoring"
	"github.com/ketan14/GharSwitch/internal/tracing"
	"github.com/ketan14/GharSwitch/internal/types"
)

type JWTVerifier struct {
	secret []byte

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

// VerifyToken checks the signature and expiry of rawToken and resolves its
// claims into a Principal. An unrecognized role claim does not reject the
// token; it resolves to an unknown role, which every downstream permission
// check denies.
func (v *JWTVerifier) VerifyToken(ctx context.Context, rawToken string) (*Principal, error) {
	ctx, span := v.tracer.Start(ctx, "authentication.JWTVerifier.VerifyToken")
	defer span.End()

	token, err := jwt.Parse(rawToken, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return v.secret, nil
	})
	if err != nil {
		return nil, err
	}

	if !token.Valid {
		return nil, fmt.Errorf("token is not valid")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, fmt.Errorf("claims of unexpected type")
	}

	subject, _ := claims["sub"].(string)
	if subject == "" {
		return nil, fmt.Errorf("token has no subject")
	}

	rawRole, _ := claims["role"].(string)
	role, err := types.ParseRole(rawRole)
	if err != nil {
		// Fail closed on the role, not the identity. The caller stays
		// authenticated but can pass no permission check.
		v.logger.Debugf("token for %s carries unrecognized role %q", subject, rawRole)
	}

	tenantID, _ := claims["tenantId"].(string)

	return &Principal{
		UserID:   subject,
		Role:     role,
		TenantID: tenantID,
	}, nil
}

func NewJWTVerifier(
	secret string,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *JWTVerifier {
	return &JWTVerifier{
		secret:  []byte(secret),
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}
