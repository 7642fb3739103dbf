// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"errors"
	"strings"

	"github.com/MKhiriev/go-user-accounts/models"
	"github.com/golang-jwt/jwt/v5"
)

// BearerPrefix is the case-sensitive scheme prefix of an Authorization
// header carrying a session token.
const BearerPrefix = "Bearer "

var (
	// ErrMissingAuthHeader is returned when the Authorization header is empty.
	ErrMissingAuthHeader = errors.New("missing authorization header")
	// ErrInvalidAuthHeader is returned when the header does not have the
	// exact form "Bearer <token>".
	ErrInvalidAuthHeader = errors.New("invalid authorization header")
)

// ParseBearerToken extracts the token from an Authorization header value.
//
// The header must be exactly "Bearer " followed by a non-empty token that
// contains no further spaces. Lowercase "bearer" or other schemes are
// rejected.
func ParseBearerToken(authorizationHeader string) (string, error) {
	if authorizationHeader == "" {
		return "", ErrMissingAuthHeader
	}

	token, found := strings.CutPrefix(authorizationHeader, BearerPrefix)
	if !found || token == "" || strings.ContainsAny(token, " \t") {
		return "", ErrInvalidAuthHeader
	}

	return token, nil
}

// BearerHeader formats a token as an Authorization header value.
func BearerHeader(token string) string {
	return BearerPrefix + token
}

// ParseClaimsUnverified decodes the claims of a token without checking its
// signature or expiry. It is only suitable for displaying a token the
// caller already trusts, such as the one the CLI just received on login.
func ParseClaimsUnverified(tokenString string) (models.Claims, error) {
	var claims models.Claims
	if _, _, err := jwt.NewParser().ParseUnverified(tokenString, &claims); err != nil {
		return models.Claims{}, err
	}
	return claims, nil
}
