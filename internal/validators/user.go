// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

// Field names accepted by [UserValidator].
const (
	// FieldEmail checks the address is a bare RFC 5322 address with a
	// dotted domain.
	FieldEmail = "email"

	// FieldPassword checks the registration password length.
	FieldPassword = "password"

	// FieldName checks the optional display name length.
	FieldName = "name"
)

const (
	MinPasswordLength = 6
	MaxPasswordBytes  = 72
	MaxEmailLength    = 254
	MaxNameLength     = 100
)
