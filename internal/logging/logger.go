// Copyright 2026 GharSwitch Authors
// SPDX-License-Identifier: AGPL-3.0

package logging

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var _ LoggerInterface = (*Logger)(nil)

type Logger struct {
	*zap.SugaredLogger
	security *SecurityLogger
}

func (l *Logger) Security() SecurityLoggerInterface {
	return l.security
}

// NewLogger creates a production zap logger at the given level. An invalid
// level falls back to info so a misconfigured deployment still logs.
func NewLogger(level string) *Logger {
	lvl, err := zapcore.ParseLevel(strings.ToLower(level))
	if err != nil {
		lvl = zapcore.InfoLevel
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.EncoderConfig.TimeKey = "ts"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	base, err := cfg.Build(zap.AddCallerSkip(1))
	if err != nil {
		panic(fmt.Errorf("failed to build logger: %w", err))
	}

	return &Logger{
		SugaredLogger: base.Sugar(),
		security:      &SecurityLogger{l: base.Named("security")},
	}
}
