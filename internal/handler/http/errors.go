// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

// Messages of the {"message": ...} error bodies. They are the only error
// text a client ever sees.
const (
	msgInvalidJSON         = "Invalid JSON was passed"
	msgUnauthorized        = "Unauthorized"
	msgInvalidCredentials  = "Invalid credentials"
	msgEmailAlreadyExists  = "Email already registered"
	msgInternalServerError = "Internal server error"
)

// Reasons the auth middleware turns a request away. They label logs and the
// rejection counter and never reach the client.
const (
	reasonMissingHeader    = "missing_header"
	reasonMalformedHeader  = "malformed_header"
	reasonExpired          = "expired"
	reasonInvalidSignature = "invalid_signature"
	reasonMalformedToken   = "malformed_token"
)
