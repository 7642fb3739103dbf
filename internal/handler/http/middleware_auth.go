// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-user-accounts/internal/logger"
	"github.com/MKhiriev/go-user-accounts/internal/service"
	"github.com/MKhiriev/go-user-accounts/internal/utils"
)

// auth guards the routes behind it with a bearer token.
//
// The "Authorization" header must be "Bearer <token>" and the token must pass
// [service.TokenService.Verify]. On success the verified claims are stored in
// the request context (see [utils.ClaimsFromContext]).
//
// Every rejection gets the same 401 {"message":"Unauthorized"} reply. The
// actual reason (missing or malformed header, expired token, bad signature,
// malformed token) is only logged and counted.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		tokenString, err := utils.ParseBearerToken(r.Header.Get("Authorization"))
		if err != nil {
			h.reject(w, r, err, headerRejectionReason(err))
			return
		}

		claims, err := h.services.TokenService.Verify(r.Context(), tokenString)
		if err != nil {
			h.reject(w, r, err, tokenRejectionReason(err))
			return
		}

		log.Debug().Str("user_id", claims.UserID()).Msg("request authorized")

		next.ServeHTTP(w, r.WithContext(utils.WithClaims(r.Context(), claims)))
	})
}

func (h *Handler) reject(w http.ResponseWriter, r *http.Request, err error, reason string) {
	logger.FromRequest(r).Warn().Err(err).Str("reason", reason).Msg("request unauthorized")
	h.recordAuthRejection(reason)

	_, _ = utils.WriteError(w, msgUnauthorized, http.StatusUnauthorized)
}

func headerRejectionReason(err error) string {
	if errors.Is(err, utils.ErrMissingAuthHeader) {
		return reasonMissingHeader
	}
	return reasonMalformedHeader
}

func tokenRejectionReason(err error) string {
	switch {
	case errors.Is(err, service.ErrTokenExpired):
		return reasonExpired
	case errors.Is(err, service.ErrTokenInvalidSignature):
		return reasonInvalidSignature
	default:
		return reasonMalformedToken
	}
}
