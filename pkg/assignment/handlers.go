// Copyright 2026 GharSwitch Authors
// SPDX-License-Identifier: AGPL-3.0

package assignment

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
	"github.com/ketan14/GharSwitch/pkg/authentication"
)

type AssignRequest struct {
	UserID string `json:"user_id" validate:"required"`
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
	mux.Post("/api/v0/devices/{id}/assignments", a.handleAssign)
	mux.Delete("/api/v0/devices/{id}/assignments/{userId}", a.handleRevoke)
	mux.Post("/api/v0/groups/{id}/assignments", a.handleAssignGroup)
	mux.Get("/api/v0/users/{id}/summary", a.handleGetSummary)
}

func (a *API) handleAssign(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "assignment.API.handleAssign")
	defer span.End()

	principal, ok := authentication.PrincipalFromContext(ctx)
	if !ok {
		httptypes.WriteError(w, kinds.New(kinds.Unauthenticated, "unauthenticated"))
		return
	}

	req, err := a.decodeAssign(r)
	if err != nil {
		httptypes.WriteError(w, err)
		return
	}

	if err := a.service.Assign(ctx, principal, chi.URLParam(r, "id"), req.UserID); err != nil {
		httptypes.WriteError(w, err)
		return
	}

	httptypes.WriteJSON(w, http.StatusOK, StatusResponse{Status: "assigned"})
}

func (a *API) handleRevoke(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "assignment.API.handleRevoke")
	defer span.End()

	principal, ok := authentication.PrincipalFromContext(ctx)
	if !ok {
		httptypes.WriteError(w, kinds.New(kinds.Unauthenticated, "unauthenticated"))
		return
	}

	if err := a.service.Revoke(ctx, principal, chi.URLParam(r, "id"), chi.URLParam(r, "userId")); err != nil {
		httptypes.WriteError(w, err)
		return
	}

	httptypes.WriteJSON(w, http.StatusOK, StatusResponse{Status: "revoked"})
}

func (a *API) handleAssignGroup(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "assignment.API.handleAssignGroup")
	defer span.End()

	principal, ok := authentication.PrincipalFromContext(ctx)
	if !ok {
		httptypes.WriteError(w, kinds.New(kinds.Unauthenticated, "unauthenticated"))
		return
	}

	req, err := a.decodeAssign(r)
	if err != nil {
		httptypes.WriteError(w, err)
		return
	}

	if err := a.service.AssignGroup(ctx, principal, chi.URLParam(r, "id"), req.UserID); err != nil {
		httptypes.WriteError(w, err)
		return
	}

	httptypes.WriteJSON(w, http.StatusOK, StatusResponse{Status: "assigned"})
}

func (a *API) handleGetSummary(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "assignment.API.handleGetSummary")
	defer span.End()

	principal, ok := authentication.PrincipalFromContext(ctx)
	if !ok {
		httptypes.WriteError(w, kinds.New(kinds.Unauthenticated, "unauthenticated"))
		return
	}

	summary, err := a.service.GetUserSummary(ctx, principal, chi.URLParam(r, "id"))
	if err != nil {
		httptypes.WriteError(w, err)
		return
	}

	httptypes.WriteJSON(w, http.StatusOK, summary)
}

func (a *API) decodeAssign(r *http.Request) (*AssignRequest, error) {
	var req AssignRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return nil, kinds.New(kinds.InvalidArgument, "invalid request body")
	}
	if err := a.validate.Struct(req); err != nil {
		return nil, kinds.New(kinds.InvalidArgument, "user_id is required")
	}
	return &req, nil
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
