// Copyright 2026 GharSwitch Authors
// SPDX-License-Identifier: AGPL-3.0

package config

import (
	"time"
)

// EnvSpec is the environment configuration needed for the app to start.
type EnvSpec struct {
	OtelGRPCEndpoint string `envconfig:"otel_grpc_endpoint"`
	OtelHTTPEndpoint string `envconfig:"otel_http_endpoint"`
	TracingEnabled   bool   `envconfig:"tracing_enabled" default:"false"`

	LogLevel string `envconfig:"log_level" default:"error"`
	Debug    bool   `envconfig:"debug" default:"false"`

	Port int `envconfig:"port" default:"8080"`

	DSN string `envconfig:"DSN" required:"true"`

	DBMaxConns        int32         `envconfig:"db_max_conns" default:"25"`
	DBMinConns        int32         `envconfig:"db_min_conns" default:"2"`
	DBMaxConnLifetime time.Duration `envconfig:"db_max_conn_lifetime" default:"1h"`
	DBMaxConnIdleTime time.Duration `envconfig:"db_max_conn_idle_time" default:"30m"`

	RedisAddr     string `envconfig:"redis_addr" required:"true"`
	RedisPassword string `envconfig:"redis_password" default:""`
	RedisDB       int    `envconfig:"redis_db" default:"0"`

	MQTTEnabled  bool   `envconfig:"mqtt_enabled" default:"false"`
	MQTTBroker   string `envconfig:"mqtt_broker" default:"tcp://localhost:1883"`
	MQTTClientID string `envconfig:"mqtt_client_id" default:"gharswitch-bridge"`
	MQTTUsername string `envconfig:"mqtt_username" default:""`
	MQTTPassword string `envconfig:"mqtt_password" default:""`

	JWTSigningSecret string        `envconfig:"jwt_signing_secret" required:"true"`
	JWTTokenTTL      time.Duration `envconfig:"jwt_token_ttl" default:"1h"`
}
