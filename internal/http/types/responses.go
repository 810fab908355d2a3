// Copyright 2026 GharSwitch Authors
// SPDX-License-Identifier: AGPL-3.0

// Package types holds the JSON response envelope shared by every HTTP
// handler: success payloads are written as-is, failures as the error
// taxonomy kind plus a caller-safe message.
package types

import (
	"encoding/json"
	"net/http"

	"github.com/ketan14/GharSwitch/internal/kinds"
)

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// WriteJSON writes payload with the given status. Encoding failures are
// unrecoverable at this point; the header has already been sent.
func WriteJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

// WriteError maps err's kind to an HTTP status and writes the error
// envelope. Non-taxonomy errors surface as a generic internal error so no
// internal detail leaks to the caller.
func WriteError(w http.ResponseWriter, err error) {
	kind := kinds.KindOf(err)
	WriteJSON(w, kinds.HTTPStatus(kind), ErrorResponse{
		Error:   string(kind),
		Message: kinds.MessageOf(err),
	})
}
