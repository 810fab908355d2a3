// Copyright 2026 GharSwitch Authors
// SPDX-License-Identifier: AGPL-3.0

package bridge

import (
	"context"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"

	"github.com/ketan14/GharSwitch/internal/rtdb"
	"github.com/ketan14/GharSwitch/internal/types"
)

// TreeInterface is the slice of the realtime tree the bridge touches.
type TreeInterface interface {
	SetValue(ctx context.Context, path string, value interface{}) error
	ClearPending(ctx context.Context, tenantID, deviceID, commandID string) error
	SubscribePattern(ctx context.Context, pattern string, handler func(path string, payload []byte)) (rtdb.SubscriptionInterface, error)
}

// StorageInterface mirrors presence into the device document so list views
// see liveness without a tree read.
type StorageInterface interface {
	UpdateDevicePresence(ctx context.Context, tenantID, deviceID, status string, lastSeen time.Time) error
}

// MQTTClientInterface is the subset of the paho client the bridge uses.
// mqtt.Client satisfies it.
type MQTTClientInterface interface {
	Connect() mqtt.Token
	Subscribe(topic string, qos byte, callback mqtt.MessageHandler) mqtt.Token
	Publish(topic string, qos byte, retained bool, payload interface{}) mqtt.Token
	Disconnect(quiesce uint)
}

// CommandMessage is the wire form of a fanned-out command, the pending entry
// plus its id so the device can ack it.
type CommandMessage struct {
	CommandID string `json:"command_id"`
	Target    string `json:"target"`
	Action    bool   `json:"action"`
	Timestamp int64  `json:"timestamp"`
}

// AckMessage is the device's receipt for one consumed command.
type AckMessage struct {
	CommandID string `json:"command_id"`
}

// StateMessage is the device's full state report.
type StateMessage struct {
	Switches    map[string]bool    `json:"switches"`
	Diagnostics *types.Diagnostics `json:"diagnostics,omitempty"`
}
