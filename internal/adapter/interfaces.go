// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter is the client side of the accounts HTTP API.
//
// [ServerAdapter] hides the transport from callers such as the CLI. The
// HTTP implementation ([NewHTTPServerAdapter]) maps error statuses to the
// sentinel errors of this package, so callers match them with [errors.Is]
// (e.g. [ErrConflict] for 409, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-user-accounts/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter talks to the accounts server on behalf of one client.
// A successful Login stores the session token, which is then sent with
// every authenticated call.
type ServerAdapter interface {
	// SetToken stores the bearer token for subsequent authenticated calls.
	SetToken(token string)

	// Token returns the stored bearer token or "".
	Token() string

	// Register creates an account and returns the stored user.
	Register(ctx context.Context, req models.RegisterRequest) (models.User, error)

	// Login exchanges credentials for a session token and stores it.
	Login(ctx context.Context, creds models.Credentials) (models.Token, error)

	// Me returns the identity the server associates with the stored token.
	Me(ctx context.Context) (models.Identity, error)

	// ServerVersion returns the build information of the server.
	ServerVersion(ctx context.Context) (models.VersionResponse, error)
}
