// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"time"

	"github.com/rs/zerolog"
)

// User represents a registered account.
// PasswordHash is the bcrypt output for the user's password and is never
// serialized into responses.
type User struct {
	// ID is the opaque unique identifier assigned at registration (UUIDv7).
	ID string `json:"id"`

	// Email is the unique login identifier. Stored and compared as given,
	// case-sensitive.
	Email string `json:"email"`

	// Name is the optional display name.
	Name *string `json:"name"`

	// PasswordHash is the salted one-way hash of the password.
	// It is never empty for a persisted user.
	PasswordHash string `json:"-"`

	// CreatedAt is the timestamp when the account was created.
	CreatedAt time.Time `json:"created_at"`

	// UpdatedAt is the timestamp of the last modification of the record.
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// MarshalZerologObject implements [zerolog.LogObjectMarshaler].
// The password hash is deliberately left out.
func (u User) MarshalZerologObject(e *zerolog.Event) {
	e.Str("id", u.ID).Str("email", u.Email)
	if u.Name != nil {
		e.Str("name", *u.Name)
	}
}
