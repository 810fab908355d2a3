// Copyright 2026 GharSwitch Authors
// SPDX-License-Identifier: AGPL-3.0

package web

import (
	"net/http"

	chi "github.com/go-chi/chi/v5"
	middleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/ketan14/GharSwitch/internal/db"
	"github.com/ketan14/GharSwitch/internal/logging"
	"github.com/ketan14/GharSwitch/internal/monitoring"
	"github.com/ketan14/GharSwitch/internal/rtdb"
	"github.com/ketan14/GharSwitch/internal/storage"
	"github.com/ketan14/GharSwitch/internal/tracing"
	"github.com/ketan14/GharSwitch/pkg/assignment"
	"github.com/ketan14/GharSwitch/pkg/authentication"
	"github.com/ketan14/GharSwitch/pkg/authorization"
	"github.com/ketan14/GharSwitch/pkg/devicestate"
	"github.com/ketan14/GharSwitch/pkg/metrics"
	"github.com/ketan14/GharSwitch/pkg/platform"
	"github.com/ketan14/GharSwitch/pkg/provisioning"
	"github.com/ketan14/GharSwitch/pkg/relay"
	"github.com/ketan14/GharSwitch/pkg/status"
)

func NewRouter(
	s storage.StorageInterface,
	dbClient db.DBClientInterface,
	tree rtdb.TreeInterface,
	verifier authentication.TokenVerifierInterface,
	issuer authentication.TokenIssuerInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) http.Handler {
	router := chi.NewMux()

	router.Use(
		middleware.RequestID,
		monitoring.NewMiddleware(monitor, logger).ResponseTime(),
		cors.Handler(cors.Options{
			AllowedOrigins: []string{"*"},
			AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
			AllowedHeaders: []string{"Authorization", "Content-Type"},
		}),
	)

	// Scrape and liveness endpoints stay outside authentication.
	metrics.NewAPI(logger).RegisterEndpoints(router)
	status.NewAPI(tracer, monitor, logger).RegisterEndpoints(router)

	api := chi.NewMux()
	api.Use(
		authentication.NewMiddleware(verifier, tracer, monitor, logger).Authenticate(),
		db.TransactionMiddleware(dbClient, logger),
	)

	gate := authorization.NewGate(s, tracer, monitor, logger)

	relay.NewAPI(
		relay.NewService(gate, tree, tracer, monitor, logger),
		tracer, monitor, logger,
	).RegisterEndpoints(api)
	devicestate.NewAPI(
		devicestate.NewService(s, tree, tracer, monitor, logger),
		tracer, monitor, logger,
	).RegisterEndpoints(api)
	assignment.NewAPI(
		assignment.NewService(s, dbClient, tracer, monitor, logger),
		tracer, monitor, logger,
	).RegisterEndpoints(api)
	provisioning.NewAPI(
		provisioning.NewService(s, dbClient, issuer, tracer, monitor, logger),
		tracer, monitor, logger,
	).RegisterEndpoints(api)
	platform.NewAPI(
		platform.NewService(s, tracer, monitor, logger),
		tracer, monitor, logger,
	).RegisterEndpoints(api)

	router.Mount("/", api)

	return tracing.NewMiddleware(monitor, logger).OpenTelemetry(router)
}
