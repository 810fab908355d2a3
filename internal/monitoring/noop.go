// Copyright 2026 GharSwitch Authors
// SPDX-License-Identifier: AGPL-3.0

package monitoring

type NoopMonitor struct{}

// NewNoopMonitor returns a monitor that discards every metric. Used in tests
// and when metrics are disabled.
func NewNoopMonitor() *NoopMonitor {
	return &NoopMonitor{}
}

func (m *NoopMonitor) GetService() string {
	return "noop"
}

func (m *NoopMonitor) SetResponseTimeMetric(map[string]string, float64) error {
	return nil
}

func (m *NoopMonitor) SetDependencyAvailability(map[string]string, float64) error {
	return nil
}
