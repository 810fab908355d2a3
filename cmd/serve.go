// Copyright 2026 GharSwitch Authors
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/spf13/cobra"

	"github.com/ketan14/GharSwitch/internal/config"
	"github.com/ketan14/GharSwitch/internal/db"
	"github.com/ketan14/GharSwitch/internal/logging"
	"github.com/ketan14/GharSwitch/internal/monitoring/prometheus"
	"github.com/ketan14/GharSwitch/internal/rtdb"
	"github.com/ketan14/GharSwitch/internal/storage"
	"github.com/ketan14/GharSwitch/internal/tracing"
	"github.com/ketan14/GharSwitch/pkg/authentication"
	"github.com/ketan14/GharSwitch/pkg/bridge"
	"github.com/ketan14/GharSwitch/pkg/web"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "serve starts the web server",
	Long:  `Launch the web application, list of environment variables is available in the readme`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := serve(); err != nil {
			fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func serve() error {
	specs := new(config.EnvSpec)
	if err := envconfig.Process("", specs); err != nil {
		panic(fmt.Errorf("issues with environment sourcing: %s", err))
	}

	logger := logging.NewLogger(specs.LogLevel)
	defer logger.Sync()

	monitor := prometheus.NewMonitor("gharswitch", logger)
	tracer := tracing.NewTracer(tracing.NewConfig(specs.TracingEnabled, specs.OtelGRPCEndpoint, specs.OtelHTTPEndpoint, logger))

	dbConfig := db.Config{
		DSN:             specs.DSN,
		MaxConns:        specs.DBMaxConns,
		MinConns:        specs.DBMinConns,
		MaxConnLifetime: specs.DBMaxConnLifetime,
		MaxConnIdleTime: specs.DBMaxConnIdleTime,
		TracingEnabled:  specs.TracingEnabled,
	}
	dbClient, err := db.NewDBClient(dbConfig, tracer, monitor, logger)
	if err != nil {
		return fmt.Errorf("failed to create database client: %v", err)
	}
	defer dbClient.Close()
	s := storage.NewStorage(dbClient, tracer, monitor, logger)

	tree, err := rtdb.NewClient(rtdb.Config{
		Addr:     specs.RedisAddr,
		Password: specs.RedisPassword,
		DB:       specs.RedisDB,
	}, tracer, monitor, logger)
	if err != nil {
		return fmt.Errorf("failed to create realtime tree client: %v", err)
	}
	defer tree.Close()

	verifier := authentication.NewJWTVerifier(specs.JWTSigningSecret, tracer, monitor, logger)
	issuer := authentication.NewJWTIssuer(specs.JWTSigningSecret, specs.JWTTokenTTL, tracer, monitor, logger)

	if specs.MQTTEnabled {
		mqttClient := bridge.NewMQTTClient(specs.MQTTBroker, specs.MQTTClientID, specs.MQTTUsername, specs.MQTTPassword)
		deviceBridge := bridge.NewBridge(mqttClient, tree, s, tracer, monitor, logger)
		if err := deviceBridge.Start(context.Background()); err != nil {
			return fmt.Errorf("failed to start mqtt bridge: %v", err)
		}
		defer deviceBridge.Stop()
	}

	router := web.NewRouter(
		s,
		dbClient,
		tree,
		verifier,
		issuer,
		tracer,
		monitor,
		logger,
	)
	logger.Infof("Starting HTTP server on port %v", specs.Port)

	srv := &http.Server{
		Addr:         fmt.Sprintf("0.0.0.0:%v", specs.Port),
		WriteTimeout: time.Second * 60,
		ReadTimeout:  time.Second * 15,
		IdleTimeout:  time.Second * 60,
		Handler:      router,
	}

	var serverError error
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Security().SystemStartup()
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverError = fmt.Errorf("server error: %w", err)
			c <- os.Interrupt
		}
	}()

	<-c

	// Create a deadline to wait for.
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	logger.Security().SystemShutdown()
	if err := srv.Shutdown(ctx); err != nil {
		serverError = fmt.Errorf("server shutdown error: %w", err)
	}

	return serverError
}
