// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/go-user-accounts/internal/logger"
	"github.com/MKhiriev/go-user-accounts/internal/utils"
	"github.com/MKhiriev/go-user-accounts/models"
)

// maxRequestBodyBytes bounds the JSON bodies of the account endpoints.
const maxRequestBodyBytes = 1 << 20

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.RegisterRequest
	if err := decodeJSON(w, r, &req); err != nil {
		log.Err(err).Msg(msgInvalidJSON)
		_, _ = utils.WriteError(w, msgInvalidJSON, http.StatusBadRequest)
		return
	}

	log.Debug().Object("request", req).Msg("registering user")

	user, err := h.services.AuthService.Register(ctx, req)
	if err != nil {
		writeServiceError(w, r, err, "user registration")
		return
	}

	log.Info().Str("user_id", user.ID).Msg("user registered")

	if _, err = utils.WriteJSON(w, user, http.StatusCreated); err != nil {
		log.Err(err).Msg("writing registration response failed")
	}
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var creds models.Credentials
	if err := decodeJSON(w, r, &creds); err != nil {
		log.Err(err).Msg(msgInvalidJSON)
		_, _ = utils.WriteError(w, msgInvalidJSON, http.StatusBadRequest)
		return
	}

	log.Debug().Object("credentials", creds).Msg("logging user in")

	token, err := h.services.AuthService.Login(ctx, creds)
	if err != nil {
		writeServiceError(w, r, err, "user login")
		return
	}

	log.Info().Str("user_id", token.Claims.UserID()).Msg("user logged in")

	w.Header().Set("Authorization", utils.BearerHeader(token.SignedString))
	if _, err = utils.WriteJSON(w, models.LoginResponse{Token: token.SignedString}, http.StatusOK); err != nil {
		log.Err(err).Msg("writing login response failed")
	}
}

// me returns the identity of the caller as established by the auth
// middleware.
func (h *Handler) me(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	claims, ok := utils.ClaimsFromContext(r.Context())
	if !ok {
		log.Error().Msg("no claims in context of an authorized route")
		_, _ = utils.WriteError(w, msgUnauthorized, http.StatusUnauthorized)
		return
	}

	if _, err := utils.WriteJSON(w, models.NewIdentity(claims), http.StatusOK); err != nil {
		log.Err(err).Msg("writing identity response failed")
	}
}

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	if _, err := utils.WriteJSON(w, models.HealthResponse{Status: "ok"}, http.StatusOK); err != nil {
		logger.FromRequest(r).Err(err).Msg("writing health response failed")
	}
}

func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	decoder := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxRequestBodyBytes))
	return decoder.Decode(dst)
}
