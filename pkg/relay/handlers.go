// Copyright 2026 GharSwitch Authors
// SPDX-License-Identifier: AGPL-3.0

package relay

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

type IssueCommandRequest struct {
	DeviceID string `json:"device_id" validate:"required"`
	Target   string `json:"target" validate:"required"`
	Action   *bool  `json:"action" validate:"required"`
}

type IssueCommandResponse struct {
	Success   bool   `json:"success"`
	CommandID string `json:"command_id"`
}

type API struct {
	service  ServiceInterface
	validate *validator.Validate

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (a *API) RegisterEndpoints(mux *chi.Mux) {
	mux.Post("/api/v0/commands", a.handleIssueCommand)
}

func (a *API) handleIssueCommand(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "relay.API.handleIssueCommand")
	defer span.End()

	principal, ok := authentication.PrincipalFromContext(ctx)
	if !ok {
		httptypes.WriteError(w, kinds.New(kinds.Unauthenticated, "unauthenticated"))
		return
	}

	var req IssueCommandRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httptypes.WriteError(w, kinds.New(kinds.InvalidArgument, "invalid request body"))
		return
	}

	if err := a.validate.Struct(req); err != nil {
		httptypes.WriteError(w, kinds.New(kinds.InvalidArgument, "device_id, target and action are required"))
		return
	}

	commandID, err := a.service.IssueCommand(ctx, principal, req.DeviceID, req.Target, *req.Action)
	if err != nil {
		httptypes.WriteError(w, err)
		return
	}

	httptypes.WriteJSON(w, http.StatusOK, IssueCommandResponse{
		Success:   true,
		CommandID: commandID,
	})
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
