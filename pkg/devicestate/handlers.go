// Copyright 2026 GharSwitch Authors
// SPDX-License-Identifier: AGPL-3.0

package devicestate

import (
	"net/http"

	chi "github.com/go-chi/chi/v5"

	httptypes "github.com/ketan14/GharSwitch/internal/http/types"
	"github.com/ketan14/GharSwitch/internal/kinds"
	"github.com/ketan14/GharSwitch/internal/logging"
	"github.com/ketan14/GharSwitch/internal/monitoring"
	"github.com/ketan14/GharSwitch/internal/tracing"
	"github.com/ketan14/GharSwitch/pkg/authentication"
)

type ListDevicesResponse struct {
	Devices []*DeviceView `json:"devices"`
}

type API struct {
	service ServiceInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (a *API) RegisterEndpoints(mux *chi.Mux) {
	mux.Get("/api/v0/devices", a.handleListDevices)
	mux.Get("/api/v0/devices/{id}/state", a.handleGetState)
}

func (a *API) handleListDevices(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "devicestate.API.handleListDevices")
	defer span.End()

	principal, ok := authentication.PrincipalFromContext(ctx)
	if !ok {
		httptypes.WriteError(w, kinds.New(kinds.Unauthenticated, "unauthenticated"))
		return
	}

	devices, err := a.service.ListDevices(ctx, principal)
	if err != nil {
		httptypes.WriteError(w, err)
		return
	}

	httptypes.WriteJSON(w, http.StatusOK, ListDevicesResponse{Devices: devices})
}

func (a *API) handleGetState(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "devicestate.API.handleGetState")
	defer span.End()

	principal, ok := authentication.PrincipalFromContext(ctx)
	if !ok {
		httptypes.WriteError(w, kinds.New(kinds.Unauthenticated, "unauthenticated"))
		return
	}

	snapshot, err := a.service.GetState(ctx, principal, chi.URLParam(r, "id"))
	if err != nil {
		httptypes.WriteError(w, err)
		return
	}

	httptypes.WriteJSON(w, http.StatusOK, snapshot)
}

func NewAPI(service ServiceInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *API {
	return &API{
		service: service,
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}
