// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-user-accounts/internal/logger"
	"github.com/MKhiriev/go-user-accounts/internal/service"
	"github.com/MKhiriev/go-user-accounts/internal/utils"
)

var errorStatusMap = map[error]int{
	service.ErrValidation:         http.StatusBadRequest,
	service.ErrDuplicateEmail:     http.StatusConflict,
	service.ErrInvalidCredentials: http.StatusUnauthorized,
	service.ErrTokenInvalid:       http.StatusUnauthorized,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// messageFromError returns the client facing message for err. Validation
// failures name the offending field, anything unexpected collapses into a
// generic message.
func messageFromError(err error) string {
	switch statusFromError(err) {
	case http.StatusBadRequest:
		return strings.TrimPrefix(err.Error(), service.ErrValidation.Error()+": ")
	case http.StatusConflict:
		return msgEmailAlreadyExists
	case http.StatusUnauthorized:
		if errors.Is(err, service.ErrInvalidCredentials) {
			return msgInvalidCredentials
		}
		return msgUnauthorized
	default:
		return msgInternalServerError
	}
}

// writeServiceError logs err and answers with the mapped status and message.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error, action string) {
	log := logger.FromRequest(r)
	status := statusFromError(err)

	event := log.Warn()
	if status >= http.StatusInternalServerError {
		event = log.Error()
	}
	event.Err(err).Int("status", status).Msg(action + " failed")

	_, _ = utils.WriteError(w, messageFromError(err), status)
}

func notFound(w http.ResponseWriter, _ *http.Request) {
	_, _ = utils.WriteError(w, http.StatusText(http.StatusNotFound), http.StatusNotFound)
}
