// Copyright 2026 GharSwitch Authors
// SPDX-License-Identifier: AGPL-3.0

package rtdb

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/go-redis/redis/v8"

	"github.com/ketan14/GharSwitch/internal/logging"
	"github.com/ketan14/GharSwitch/internal/monitoring"
	"github.com/ketan14/GharSwitch/internal/tracing"
	"github.com/ketan14/GharSwitch/internal/types"
)

var _ TreeInterface = (*Client)(nil)

type Config struct {
	Addr     string
	Password string
	DB       int
}

type Client struct {
	rdb *redis.Client

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewClient(cfg Config, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) (*Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	if err := rdb.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	c := new(Client)
	c.rdb = rdb
	c.tracer = tracer
	c.monitor = monitor
	c.logger = logger

	return c, nil
}

func (c *Client) Close() error {
	return c.rdb.Close()
}

// SetValue stores the JSON-encoded value at path and notifies subscribers
// with the new value. Last write wins per path.
func (c *Client) SetValue(ctx context.Context, path string, value interface{}) error {
	ctx, span := c.tracer.Start(ctx, "rtdb.Client.SetValue")
	defer span.End()

	payload, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to encode value for %s: %w", path, err)
	}

	if err := c.rdb.Set(ctx, path, payload, 0).Err(); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	c.notify(ctx, path, payload)
	return nil
}

func (c *Client) GetValue(ctx context.Context, path string, dest interface{}) (bool, error) {
	ctx, span := c.tracer.Start(ctx, "rtdb.Client.GetValue")
	defer span.End()

	payload, err := c.rdb.Get(ctx, path).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		return false, fmt.Errorf("failed to read %s: %w", path, err)
	}

	if err := json.Unmarshal(payload, dest); err != nil {
		return false, fmt.Errorf("failed to decode value at %s: %w", path, err)
	}

	return true, nil
}

func (c *Client) DeleteValue(ctx context.Context, path string) error {
	ctx, span := c.tracer.Start(ctx, "rtdb.Client.DeleteValue")
	defer span.End()

	if err := c.rdb.Del(ctx, path).Err(); err != nil {
		return fmt.Errorf("failed to delete %s: %w", path, err)
	}

	c.notify(ctx, path, []byte("null"))
	return nil
}

// PutPending appends one command to the device's pending queue. Entries for
// the same channel coexist; nothing here deduplicates or supersedes.
func (c *Client) PutPending(ctx context.Context, tenantID, deviceID, commandID string, cmd *types.PendingCommand) error {
	ctx, span := c.tracer.Start(ctx, "rtdb.Client.PutPending")
	defer span.End()

	path := PendingPath(tenantID, deviceID)

	payload, err := json.Marshal(cmd)
	if err != nil {
		return fmt.Errorf("failed to encode command: %w", err)
	}

	if err := c.rdb.HSet(ctx, path, commandID, payload).Err(); err != nil {
		return fmt.Errorf("failed to queue command %s: %w", commandID, err)
	}

	c.notifyPending(ctx, tenantID, deviceID)
	return nil
}

func (c *Client) GetPending(ctx context.Context, tenantID, deviceID string) (map[string]types.PendingCommand, error) {
	ctx, span := c.tracer.Start(ctx, "rtdb.Client.GetPending")
	defer span.End()

	entries, err := c.rdb.HGetAll(ctx, PendingPath(tenantID, deviceID)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read pending queue: %w", err)
	}

	pending := make(map[string]types.PendingCommand, len(entries))
	for id, raw := range entries {
		var cmd types.PendingCommand
		if err := json.Unmarshal([]byte(raw), &cmd); err != nil {
			c.logger.Warnf("skipping undecodable pending entry %s: %v", id, err)
			continue
		}
		pending[id] = cmd
	}

	return pending, nil
}

// ClearPending removes one consumed entry. Only the device-side agent (via
// the gateway) calls this; clients never delete another actor's command.
func (c *Client) ClearPending(ctx context.Context, tenantID, deviceID, commandID string) error {
	ctx, span := c.tracer.Start(ctx, "rtdb.Client.ClearPending")
	defer span.End()

	if err := c.rdb.HDel(ctx, PendingPath(tenantID, deviceID), commandID).Err(); err != nil {
		return fmt.Errorf("failed to clear command %s: %w", commandID, err)
	}

	c.notifyPending(ctx, tenantID, deviceID)
	return nil
}

// notifyPending publishes the full current queue so subscribers always see
// a complete snapshot, never a delta.
func (c *Client) notifyPending(ctx context.Context, tenantID, deviceID string) {
	pending, err := c.GetPending(ctx, tenantID, deviceID)
	if err != nil {
		c.logger.Errorf("failed to snapshot pending queue for notify: %v", err)
		return
	}

	payload, err := json.Marshal(pending)
	if err != nil {
		c.logger.Errorf("failed to encode pending snapshot: %v", err)
		return
	}

	c.notify(ctx, PendingPath(tenantID, deviceID), payload)
}

func (c *Client) notify(ctx context.Context, path string, payload []byte) {
	if err := c.rdb.Publish(ctx, channelFor(path), payload).Err(); err != nil {
		// Subscribers fall back to their next read; the durable write
		// already happened.
		c.logger.Errorf("failed to publish change on %s: %v", path, err)
	}
}

func (c *Client) Subscribe(ctx context.Context, path string, handler func(payload []byte)) (SubscriptionInterface, error) {
	ctx, span := c.tracer.Start(ctx, "rtdb.Client.Subscribe")
	defer span.End()

	pubsub := c.rdb.Subscribe(ctx, channelFor(path))
	if _, err := pubsub.Receive(ctx); err != nil {
		_ = pubsub.Close()
		return nil, fmt.Errorf("failed to subscribe to %s: %w", path, err)
	}

	sub := &subscription{pubsub: pubsub, done: make(chan struct{})}

	go func() {
		defer close(sub.done)
		for msg := range pubsub.Channel() {
			handler([]byte(msg.Payload))
		}
	}()

	return sub, nil
}

func (c *Client) SubscribePattern(ctx context.Context, pattern string, handler func(path string, payload []byte)) (SubscriptionInterface, error) {
	ctx, span := c.tracer.Start(ctx, "rtdb.Client.SubscribePattern")
	defer span.End()

	pubsub := c.rdb.PSubscribe(ctx, channelFor(pattern))
	if _, err := pubsub.Receive(ctx); err != nil {
		_ = pubsub.Close()
		return nil, fmt.Errorf("failed to subscribe to pattern %s: %w", pattern, err)
	}

	sub := &subscription{pubsub: pubsub, done: make(chan struct{})}

	go func() {
		defer close(sub.done)
		for msg := range pubsub.Channel() {
			handler(pathFor(msg.Channel), []byte(msg.Payload))
		}
	}()

	return sub, nil
}

type subscription struct {
	pubsub *redis.PubSub
	done   chan struct{}
}

// Cancel tears the registration down and waits for the delivery goroutine
// to drain, so no handler call can race past cancellation.
func (s *subscription) Cancel() error {
	err := s.pubsub.Close()
	<-s.done
	return err
}
