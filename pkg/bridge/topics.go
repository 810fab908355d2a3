// Copyright 2026 GharSwitch Authors
// SPDX-License-Identifier: AGPL-3.0

package bridge

import (
	"fmt"
	"strings"
)

// Topic layout: gharswitch/{tenantID}/{deviceID}/{kind}. Devices publish
// state, heartbeat, and ack; the bridge publishes command.
const (
	topicKindState     = "state"
	topicKindHeartbeat = "heartbeat"
	topicKindAck       = "ack"
	topicKindCommand   = "command"
)

func stateFilter() string     { return "gharswitch/+/+/" + topicKindState }
func heartbeatFilter() string { return "gharswitch/+/+/" + topicKindHeartbeat }
func ackFilter() string       { return "gharswitch/+/+/" + topicKindAck }

func commandTopic(tenantID, deviceID string) string {
	return fmt.Sprintf("gharswitch/%s/%s/%s", tenantID, deviceID, topicKindCommand)
}

// parseDeviceTopic extracts the tenant and device ids from an inbound topic.
// ok is false for topics outside the bridge's namespace.
func parseDeviceTopic(topic string) (tenantID, deviceID, kind string, ok bool) {
	parts := strings.Split(topic, "/")
	if len(parts) != 4 || parts[0] != "gharswitch" || parts[1] == "" || parts[2] == "" {
		return "", "", "", false
	}
	return parts[1], parts[2], parts[3], true
}
