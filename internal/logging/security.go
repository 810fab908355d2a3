// Copyright 2026 GharSwitch Authors
// SPDX-License-Identifier: AGPL-3.0

package logging

import (
	"go.uber.org/zap"
)

var _ SecurityLoggerInterface = (*SecurityLogger)(nil)

// SecurityLogger emits structured audit events on a dedicated named logger
// so they can be routed independently of application logs.
type SecurityLogger struct {
	l *zap.Logger
}

func (s *SecurityLogger) AuthzFailure(subject, action string) {
	s.l.Warn("authorization failure",
		zap.String("event", "authz_failure"),
		zap.String("subject", subject),
		zap.String("action", action),
	)
}

func (s *SecurityLogger) CommandIssued(subject, tenantID, deviceID, target string) {
	s.l.Info("command issued",
		zap.String("event", "command_issued"),
		zap.String("subject", subject),
		zap.String("tenant_id", tenantID),
		zap.String("device_id", deviceID),
		zap.String("target", target),
	)
}

func (s *SecurityLogger) SystemStartup() {
	s.l.Info("system startup", zap.String("event", "startup"))
}

func (s *SecurityLogger) SystemShutdown() {
	s.l.Info("system shutdown", zap.String("event", "shutdown"))
}
