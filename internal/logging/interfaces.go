// Copyright 2026 GharSwitch Authors
// SPDX-License-Identifier: AGPL-3.0

package logging

type LoggerInterface interface {
	Debug(args ...interface{})
	Info(args ...interface{})
	Warn(args ...interface{})
	Error(args ...interface{})
	Debugf(format string, args ...interface{})
	Infof(format string, args ...interface{})
	Warnf(format string, args ...interface{})
	Errorf(format string, args ...interface{})
	Fatalf(format string, args ...interface{})
	Security() SecurityLoggerInterface
	Sync() error
}

// SecurityLoggerInterface is the audit-oriented channel for authn/authz and
// lifecycle events.
type SecurityLoggerInterface interface {
	AuthzFailure(subject, action string)
	CommandIssued(subject, tenantID, deviceID, target string)
	SystemStartup()
	SystemShutdown()
}
