// Copyright 2026 GharSwitch Authors
// SPDX-License-Identifier: AGPL-3.0

// Package bridge is the MQTT edge: it ingests device state reports and
// heartbeats into the realtime tree, fans pending commands out to devices,
// and clears queue entries on acknowledgement.
package bridge

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"

	"github.com/ketan14/GharSwitch/internal/logging"
	"github.com/ketan14/GharSwitch/internal/monitoring"
	"github.com/ketan14/GharSwitch/internal/rtdb"
	"github.com/ketan14/GharSwitch/internal/tracing"
	"github.com/ketan14/GharSwitch/internal/types"
)

const commandQoS = 1

type Bridge struct {
	mqtt    MQTTClientInterface
	tree    TreeInterface
	storage StorageInterface

	ctx        context.Context
	pendingSub rtdb.SubscriptionInterface

	mu sync.Mutex
	// published tracks fanned-out command ids per device, so repeated queue
	// snapshots do not republish. Entries drop out when the id leaves the
	// queue.
	published map[string]map[string]struct{}

	now func() time.Time

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

// Start connects to the broker, subscribes to the device topics, and begins
// watching pending queues for fan-out.
func (b *Bridge) Start(ctx context.Context) error {
	b.ctx = ctx

	if token := b.mqtt.Connect(); token.Wait() && token.Error() != nil {
		return fmt.Errorf("failed to connect to broker: %w", token.Error())
	}

	subscriptions := map[string]mqtt.MessageHandler{
		stateFilter():     b.onStateMessage,
		heartbeatFilter(): b.onHeartbeatMessage,
		ackFilter():       b.onAckMessage,
	}
	for filter, handler := range subscriptions {
		if token := b.mqtt.Subscribe(filter, commandQoS, handler); token.Wait() && token.Error() != nil {
			return fmt.Errorf("failed to subscribe to %s: %w", filter, token.Error())
		}
	}

	sub, err := b.tree.SubscribePattern(ctx, rtdb.PendingPathPattern(), b.onPendingChange)
	if err != nil {
		return fmt.Errorf("failed to watch pending queues: %w", err)
	}
	b.pendingSub = sub

	b.logger.Infof("mqtt bridge started")
	return nil
}

func (b *Bridge) Stop() {
	if b.pendingSub != nil {
		if err := b.pendingSub.Cancel(); err != nil {
			b.logger.Warnf("failed to cancel pending watch: %v", err)
		}
	}
	b.mqtt.Disconnect(250)
}

func (b *Bridge) onStateMessage(_ mqtt.Client, msg mqtt.Message) {
	tenantID, deviceID, _, ok := parseDeviceTopic(msg.Topic())
	if !ok {
		return
	}

	var report StateMessage
	if err := json.Unmarshal(msg.Payload(), &report); err != nil {
		b.logger.Warnf("dropping undecodable state report on %s: %v", msg.Topic(), err)
		return
	}

	state := &types.DeviceState{
		Switches:    report.Switches,
		Diagnostics: report.Diagnostics,
		LastUpdated: b.now().UnixMilli(),
	}
	if err := b.tree.SetValue(b.ctx, rtdb.StatePath(tenantID, deviceID), state); err != nil {
		b.logger.Errorf("failed to store state report for %s: %v", deviceID, err)
		return
	}

	// A state report proves the device is alive.
	b.markSeen(tenantID, deviceID)
}

func (b *Bridge) onHeartbeatMessage(_ mqtt.Client, msg mqtt.Message) {
	tenantID, deviceID, _, ok := parseDeviceTopic(msg.Topic())
	if !ok {
		return
	}
	b.markSeen(tenantID, deviceID)
}

func (b *Bridge) onAckMessage(_ mqtt.Client, msg mqtt.Message) {
	tenantID, deviceID, _, ok := parseDeviceTopic(msg.Topic())
	if !ok {
		return
	}

	var ack AckMessage
	if err := json.Unmarshal(msg.Payload(), &ack); err != nil || ack.CommandID == "" {
		b.logger.Warnf("dropping undecodable ack on %s", msg.Topic())
		return
	}

	if err := b.tree.ClearPending(b.ctx, tenantID, deviceID, ack.CommandID); err != nil {
		b.logger.Errorf("failed to clear command %s: %v", ack.CommandID, err)
		return
	}

	b.mu.Lock()
	delete(b.published[deviceKey(tenantID, deviceID)], ack.CommandID)
	b.mu.Unlock()
}

// onPendingChange receives the full pending queue for one device and
// publishes every entry not already fanned out. Failed publishes stay
// unmarked and retry on the next snapshot.
func (b *Bridge) onPendingChange(path string, payload []byte) {
	tenantID, deviceID, ok := rtdb.ParsePendingPath(path)
	if !ok {
		return
	}

	var pending map[string]types.PendingCommand
	if err := json.Unmarshal(payload, &pending); err != nil {
		b.logger.Warnf("dropping undecodable pending snapshot for %s: %v", deviceID, err)
		return
	}

	key := deviceKey(tenantID, deviceID)

	b.mu.Lock()
	if b.published[key] == nil {
		b.published[key] = make(map[string]struct{})
	}
	seen := b.published[key]

	var fanout []CommandMessage
	for id, cmd := range pending {
		if _, done := seen[id]; done {
			continue
		}
		fanout = append(fanout, CommandMessage{
			CommandID: id,
			Target:    cmd.Target,
			Action:    cmd.Action,
			Timestamp: cmd.Timestamp,
		})
	}
	for id := range seen {
		if _, still := pending[id]; !still {
			delete(seen, id)
		}
	}
	b.mu.Unlock()

	for _, cmd := range fanout {
		body, err := json.Marshal(cmd)
		if err != nil {
			b.logger.Errorf("failed to encode command %s: %v", cmd.CommandID, err)
			continue
		}
		if token := b.mqtt.Publish(commandTopic(tenantID, deviceID), commandQoS, false, body); token.Wait() && token.Error() != nil {
			b.logger.Errorf("failed to publish command %s: %v", cmd.CommandID, token.Error())
			continue
		}

		b.mu.Lock()
		seen[cmd.CommandID] = struct{}{}
		b.mu.Unlock()
	}
}

// markSeen writes the presence record and mirrors it into the device
// document. The tree write is authoritative; the mirror is best effort.
func (b *Bridge) markSeen(tenantID, deviceID string) {
	now := b.now()

	presence := &types.Presence{Online: true, LastSeen: now.UnixMilli()}
	if err := b.tree.SetValue(b.ctx, rtdb.PresencePath(tenantID, deviceID), presence); err != nil {
		b.logger.Errorf("failed to store presence for %s: %v", deviceID, err)
		return
	}

	if err := b.storage.UpdateDevicePresence(b.ctx, tenantID, deviceID, types.StatusOnline, now); err != nil {
		b.logger.Warnf("failed to mirror presence for %s: %v", deviceID, err)
	}
}

func deviceKey(tenantID, deviceID string) string {
	return tenantID + "/" + deviceID
}

func NewBridge(
	client MQTTClientInterface,
	tree TreeInterface,
	storage StorageInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Bridge {
	return &Bridge{
		mqtt:      client,
		tree:      tree,
		storage:   storage,
		published: make(map[string]map[string]struct{}),
		now:       time.Now,
		tracer:    tracer,
		monitor:   monitor,
		logger:    logger,
	}
}

// NewMQTTClient builds a paho client with the bridge's connection defaults.
func NewMQTTClient(broker, clientID, username, password string) mqtt.Client {
	opts := mqtt.NewClientOptions().
		AddBroker(broker).
		SetClientID(clientID).
		SetUsername(username).
		SetPassword(password).
		SetAutoReconnect(true).
		SetConnectRetry(true).
		SetOrderMatters(false)
	return mqtt.NewClient(opts)
}
