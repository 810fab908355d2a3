// Copyright 2026 GharSwitch Authors
// SPDX-License-Identifier: AGPL-3.0

// Package kinds carries the service-wide error taxonomy. Every user-visible
// failure is one of these kinds plus a human-readable message; internal
// causes stay server-side.
package kinds

import (
	"errors"
	"net/http"
)

type Kind string

const (
	Unauthenticated   Kind = "unauthenticated"
	Unavailable       Kind = "unavailable"
	PermissionDenied  Kind = "permission-denied"
	InvalidArgument   Kind = "invalid-argument"
	NotFound          Kind = "not-found"
	AlreadyExists     Kind = "already-exists"
	ResourceExhausted Kind = "resource-exhausted"
	Internal          Kind = "internal"
)

type Error struct {
	Kind    Kind
	Message string
	cause   error
}

func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Wrap attaches an internal cause that is logged but never surfaced.
func Wrap(kind Kind, message string, cause error) *Error {
	return &Error{Kind: kind, Message: message, cause: cause}
}

func (e *Error) Error() string {
	return string(e.Kind) + ": " + e.Message
}

func (e *Error) Unwrap() error {
	return e.cause
}

// Is lets errors.Is match two kind errors by kind alone, so callers can use
// sentinel instances as targets.
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return e.Kind == t.Kind
}

// KindOf extracts the kind from err, defaulting to Internal for anything
// that is not a taxonomy error.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return Internal
}

// MessageOf returns the caller-safe message for err. Non-taxonomy errors get
// a generic message so internal detail never leaks.
func MessageOf(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return "internal error"
}

// HTTPStatus maps a kind to its HTTP status code.
func HTTPStatus(kind Kind) int {
	switch kind {
	case Unauthenticated:
		return http.StatusUnauthorized
	case Unavailable:
		return http.StatusServiceUnavailable
	case PermissionDenied:
		return http.StatusForbidden
	case InvalidArgument:
		return http.StatusBadRequest
	case NotFound:
		return http.StatusNotFound
	case AlreadyExists:
		return http.StatusConflict
	case ResourceExhausted:
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}
