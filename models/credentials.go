// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "github.com/rs/zerolog"

// Credentials is the transient email/password pair received on login.
// It lives only for the duration of a request and must never be persisted
// or logged in cleartext.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// MarshalZerologObject implements [zerolog.LogObjectMarshaler] and only
// emits the email, so passing Credentials to a log event is safe.
func (c Credentials) MarshalZerologObject(e *zerolog.Event) {
	e.Str("email", c.Email)
}

// RegisterRequest is the body of a registration request.
type RegisterRequest struct {
	Email    string  `json:"email"`
	Name     *string `json:"name,omitempty"`
	Password string  `json:"password"`
}

// MarshalZerologObject implements [zerolog.LogObjectMarshaler]; the raw
// password is never emitted.
func (r RegisterRequest) MarshalZerologObject(e *zerolog.Event) {
	e.Str("email", r.Email)
	if r.Name != nil {
		e.Str("name", *r.Name)
	}
}
