// Copyright 2026 GharSwitch Authors
// SPDX-License-Identifier: AGPL-3.0

package platform

import (
	"encoding/json"
	"net/http"

	chi "github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	httptypes "github.com/ketan14/GharSwitch/internal/http/types"
	"github.com/ketan14/GharSwitch/internal/kinds"
	"github.com/ketan14/GharSwitch/internal/logging"
	"github.com/ketan14/GharSwitch/internal/monitoring"
	"github.com/ketan14/GharSwitch/internal/tracing"
	"github.com/ketan14/GharSwitch/internal/types"
	"github.com/ketan14/GharSwitch/pkg/authentication"
)

type SetStatusRequest struct {
	Active *bool  `json:"active" validate:"required"`
	Reason string `json:"reason"`
}

type SetMaintenanceRequest struct {
	Enabled *bool `json:"enabled" validate:"required"`
}

type CreateGlobalDeviceRequest struct {
	DeviceID  string `json:"device_id" validate:"required"`
	Model     string `json:"model" validate:"required"`
	ClaimCode string `json:"claim_code" validate:"required,min=8"`
}

type ListTenantsResponse struct {
	Tenants []*types.Tenant `json:"tenants"`
}

type ListGlobalDevicesResponse struct {
	Devices []*types.GlobalDevice `json:"devices"`
}

type StatusResponse struct {
	Status string `json:"status"`
}

type API struct {
	service  ServiceInterface
	validate *validator.Validate

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (a *API) RegisterEndpoints(mux *chi.Mux) {
	mux.Get("/api/v0/admin/tenants", a.handleListTenants)
	mux.Put("/api/v0/admin/tenants/{id}/status", a.handleSetTenantStatus)
	mux.Put("/api/v0/admin/devices/{id}/status", a.handleSetDeviceStatus)
	mux.Put("/api/v0/admin/maintenance", a.handleSetMaintenance)
	mux.Post("/api/v0/admin/global-devices", a.handleCreateGlobalDevice)
	mux.Get("/api/v0/admin/global-devices", a.handleListGlobalDevices)
}

func (a *API) handleListTenants(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "platform.API.handleListTenants")
	defer span.End()

	principal, ok := authentication.PrincipalFromContext(ctx)
	if !ok {
		httptypes.WriteError(w, kinds.New(kinds.Unauthenticated, "unauthenticated"))
		return
	}

	tenants, err := a.service.ListTenants(ctx, principal)
	if err != nil {
		httptypes.WriteError(w, err)
		return
	}

	httptypes.WriteJSON(w, http.StatusOK, ListTenantsResponse{Tenants: tenants})
}

func (a *API) handleSetTenantStatus(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "platform.API.handleSetTenantStatus")
	defer span.End()

	principal, ok := authentication.PrincipalFromContext(ctx)
	if !ok {
		httptypes.WriteError(w, kinds.New(kinds.Unauthenticated, "unauthenticated"))
		return
	}

	var req SetStatusRequest
	if err := a.decode(r, &req); err != nil {
		httptypes.WriteError(w, err)
		return
	}

	if err := a.service.SetTenantStatus(ctx, principal, chi.URLParam(r, "id"), *req.Active, req.Reason); err != nil {
		httptypes.WriteError(w, err)
		return
	}

	httptypes.WriteJSON(w, http.StatusOK, StatusResponse{Status: "updated"})
}

func (a *API) handleSetDeviceStatus(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "platform.API.handleSetDeviceStatus")
	defer span.End()

	principal, ok := authentication.PrincipalFromContext(ctx)
	if !ok {
		httptypes.WriteError(w, kinds.New(kinds.Unauthenticated, "unauthenticated"))
		return
	}

	var req SetStatusRequest
	if err := a.decode(r, &req); err != nil {
		httptypes.WriteError(w, err)
		return
	}

	if err := a.service.SetGlobalDeviceStatus(ctx, principal, chi.URLParam(r, "id"), *req.Active); err != nil {
		httptypes.WriteError(w, err)
		return
	}

	httptypes.WriteJSON(w, http.StatusOK, StatusResponse{Status: "updated"})
}

func (a *API) handleSetMaintenance(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "platform.API.handleSetMaintenance")
	defer span.End()

	principal, ok := authentication.PrincipalFromContext(ctx)
	if !ok {
		httptypes.WriteError(w, kinds.New(kinds.Unauthenticated, "unauthenticated"))
		return
	}

	var req SetMaintenanceRequest
	if err := a.decode(r, &req); err != nil {
		httptypes.WriteError(w, err)
		return
	}

	if err := a.service.SetMaintenanceMode(ctx, principal, *req.Enabled); err != nil {
		httptypes.WriteError(w, err)
		return
	}

	httptypes.WriteJSON(w, http.StatusOK, StatusResponse{Status: "updated"})
}

func (a *API) handleCreateGlobalDevice(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "platform.API.handleCreateGlobalDevice")
	defer span.End()

	principal, ok := authentication.PrincipalFromContext(ctx)
	if !ok {
		httptypes.WriteError(w, kinds.New(kinds.Unauthenticated, "unauthenticated"))
		return
	}

	var req CreateGlobalDeviceRequest
	if err := a.decode(r, &req); err != nil {
		httptypes.WriteError(w, err)
		return
	}

	device, err := a.service.CreateGlobalDevice(ctx, principal, req.DeviceID, req.Model, req.ClaimCode)
	if err != nil {
		httptypes.WriteError(w, err)
		return
	}

	httptypes.WriteJSON(w, http.StatusCreated, device)
}

func (a *API) handleListGlobalDevices(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "platform.API.handleListGlobalDevices")
	defer span.End()

	principal, ok := authentication.PrincipalFromContext(ctx)
	if !ok {
		httptypes.WriteError(w, kinds.New(kinds.Unauthenticated, "unauthenticated"))
		return
	}

	devices, err := a.service.ListGlobalDevices(ctx, principal)
	if err != nil {
		httptypes.WriteError(w, err)
		return
	}

	httptypes.WriteJSON(w, http.StatusOK, ListGlobalDevicesResponse{Devices: devices})
}

func (a *API) decode(r *http.Request, dest interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(dest); err != nil {
		return kinds.New(kinds.InvalidArgument, "invalid request body")
	}
	if err := a.validate.Struct(dest); err != nil {
		return kinds.New(kinds.InvalidArgument, "missing or invalid fields")
	}
	return nil
}

func NewAPI(service ServiceInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *API {
	return &API{
		service:  service,
		validate: validator.New(),
		tracer:   tracer,
		monitor:  monitor,
		logger:   logger,
	}
}
