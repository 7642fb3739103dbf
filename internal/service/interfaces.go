// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-user-accounts/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// AuthService orchestrates account registration and login.
type AuthService interface {
	// Register hashes the password and persists a new user.
	// Returns ErrDuplicateEmail when the email is already taken.
	Register(ctx context.Context, request models.RegisterRequest) (models.User, error)

	// Login checks the credentials and issues a session token.
	// Returns ErrInvalidCredentials both for an unknown email and for a
	// wrong password.
	Login(ctx context.Context, credentials models.Credentials) (models.Token, error)
}

// TokenService issues and verifies signed session tokens.
type TokenService interface {
	// Issue signs claims into a token valid for ttl. A ttl of zero or less
	// means the configured default lifetime. Issuer, issued-at and expiry
	// are set by the service and override anything in claims.
	Issue(ctx context.Context, claims models.Claims, ttl time.Duration) (models.Token, error)

	// Verify checks the signature and expiry of token and returns its
	// claims. Failures wrap ErrTokenInvalid together with exactly one of
	// ErrTokenMalformed, ErrTokenInvalidSignature or ErrTokenExpired.
	Verify(ctx context.Context, token string) (models.Claims, error)
}

// AppInfoService exposes build metadata of the running binary.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) models.VersionResponse
}
