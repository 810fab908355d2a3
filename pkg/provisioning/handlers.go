// Copyright 2026 GharSwitch Authors
// SPDX-License-Identifier: AGPL-3.0

package provisioning

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

type CreateTenantRequest struct {
	Name        string `json:"name" validate:"required"`
	Tier        string `json:"tier" validate:"required"`
	AdminUserID string `json:"admin_user_id" validate:"required"`
}

type RegisterDeviceRequest struct {
	DeviceID  string `json:"device_id" validate:"required"`
	ClaimCode string `json:"claim_code" validate:"required"`
	Name      string `json:"name" validate:"required"`
	Type      string `json:"type"`
	Channels  int    `json:"channels" validate:"required,min=1,max=16"`
}

type InviteMemberRequest struct {
	UserID string `json:"user_id" validate:"required"`
	Role   string `json:"role" validate:"required"`
}

type UpdateMemberRoleRequest struct {
	Role string `json:"role" validate:"required"`
}

type UpdateMemberRoleResponse struct {
	Token string `json:"token"`
}

type ListMembersResponse struct {
	Members []*types.Membership `json:"members"`
}

type API struct {
	service  ServiceInterface
	validate *validator.Validate

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (a *API) RegisterEndpoints(mux *chi.Mux) {
	mux.Post("/api/v0/tenants", a.handleCreateTenant)
	mux.Post("/api/v0/devices", a.handleRegisterDevice)
	mux.Post("/api/v0/members", a.handleInviteMember)
	mux.Put("/api/v0/members/{id}/role", a.handleUpdateMemberRole)
	mux.Get("/api/v0/members", a.handleListMembers)
}

func (a *API) handleCreateTenant(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "provisioning.API.handleCreateTenant")
	defer span.End()

	principal, ok := authentication.PrincipalFromContext(ctx)
	if !ok {
		httptypes.WriteError(w, kinds.New(kinds.Unauthenticated, "unauthenticated"))
		return
	}

	var req CreateTenantRequest
	if err := a.decode(r, &req); err != nil {
		httptypes.WriteError(w, err)
		return
	}

	provision, err := a.service.CreateTenant(ctx, principal, req.Name, req.Tier, req.AdminUserID)
	if err != nil {
		httptypes.WriteError(w, err)
		return
	}

	httptypes.WriteJSON(w, http.StatusCreated, provision)
}

func (a *API) handleRegisterDevice(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "provisioning.API.handleRegisterDevice")
	defer span.End()

	principal, ok := authentication.PrincipalFromContext(ctx)
	if !ok {
		httptypes.WriteError(w, kinds.New(kinds.Unauthenticated, "unauthenticated"))
		return
	}

	var req RegisterDeviceRequest
	if err := a.decode(r, &req); err != nil {
		httptypes.WriteError(w, err)
		return
	}

	device, err := a.service.RegisterDevice(ctx, principal, &DeviceRegistration{
		DeviceID:  req.DeviceID,
		ClaimCode: req.ClaimCode,
		Name:      req.Name,
		Type:      req.Type,
		Channels:  req.Channels,
	})
	if err != nil {
		httptypes.WriteError(w, err)
		return
	}

	httptypes.WriteJSON(w, http.StatusCreated, device)
}

func (a *API) handleInviteMember(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "provisioning.API.handleInviteMember")
	defer span.End()

	principal, ok := authentication.PrincipalFromContext(ctx)
	if !ok {
		httptypes.WriteError(w, kinds.New(kinds.Unauthenticated, "unauthenticated"))
		return
	}

	var req InviteMemberRequest
	if err := a.decode(r, &req); err != nil {
		httptypes.WriteError(w, err)
		return
	}

	role, err := types.ParseRole(req.Role)
	if err != nil {
		httptypes.WriteError(w, kinds.New(kinds.InvalidArgument, "unknown role"))
		return
	}

	invitation, err := a.service.InviteMember(ctx, principal, req.UserID, role)
	if err != nil {
		httptypes.WriteError(w, err)
		return
	}

	httptypes.WriteJSON(w, http.StatusCreated, invitation)
}

func (a *API) handleUpdateMemberRole(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "provisioning.API.handleUpdateMemberRole")
	defer span.End()

	principal, ok := authentication.PrincipalFromContext(ctx)
	if !ok {
		httptypes.WriteError(w, kinds.New(kinds.Unauthenticated, "unauthenticated"))
		return
	}

	var req UpdateMemberRoleRequest
	if err := a.decode(r, &req); err != nil {
		httptypes.WriteError(w, err)
		return
	}

	role, err := types.ParseRole(req.Role)
	if err != nil {
		httptypes.WriteError(w, kinds.New(kinds.InvalidArgument, "unknown role"))
		return
	}

	token, err := a.service.UpdateMemberRole(ctx, principal, chi.URLParam(r, "id"), role)
	if err != nil {
		httptypes.WriteError(w, err)
		return
	}

	httptypes.WriteJSON(w, http.StatusOK, UpdateMemberRoleResponse{Token: token})
}

func (a *API) handleListMembers(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "provisioning.API.handleListMembers")
	defer span.End()

	principal, ok := authentication.PrincipalFromContext(ctx)
	if !ok {
		httptypes.WriteError(w, kinds.New(kinds.Unauthenticated, "unauthenticated"))
		return
	}

	members, err := a.service.ListMembers(ctx, principal)
	if err != nil {
		httptypes.WriteError(w, err)
		return
	}

	httptypes.WriteJSON(w, http.StatusOK, ListMembersResponse{Members: members})
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
