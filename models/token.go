// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"github.com/golang-jwt/jwt/v5"
)

// Claims is the identity carried inside a session token.
//
// The user ID travels in the standard "sub" claim and the email in a private
// "email" claim. Issued-at and expiry are the standard "iat" and "exp"
// claims of the embedded [jwt.RegisteredClaims].
type Claims struct {
	// Email is the address the user logged in with.
	Email string `json:"email"`

	jwt.RegisteredClaims
}

// UserID returns the user identifier stored in the "sub" claim.
func (c Claims) UserID() string {
	return c.Subject
}

// Token is a freshly issued session token.
type Token struct {
	// SignedString is the compact JWS representation
	// (base64url-encoded header.payload.signature).
	SignedString string `json:"token"`

	// Claims are the claims that were signed into SignedString.
	Claims Claims `json:"-"`
}

// String returns the compact serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t Token) String() string {
	return t.SignedString
}

// Identity is the public representation of an authenticated caller,
// returned by the "who am I" endpoint.
type Identity struct {
	UserID    string `json:"id"`
	Email     string `json:"email"`
	IssuedAt  int64  `json:"issued_at"`
	ExpiresAt int64  `json:"expires_at"`
}

// NewIdentity builds an [Identity] from verified claims.
func NewIdentity(c Claims) Identity {
	identity := Identity{UserID: c.UserID(), Email: c.Email}
	if c.IssuedAt != nil {
		identity.IssuedAt = c.IssuedAt.Unix()
	}
	if c.ExpiresAt != nil {
		identity.ExpiresAt = c.ExpiresAt.Unix()
	}
	return identity
}
