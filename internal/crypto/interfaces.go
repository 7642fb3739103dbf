// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package crypto holds the credential manager: slow, salted password hashing
// and verification.
package crypto

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mock/password_hasher_mock.go -package=mock

// PasswordHasher hashes and verifies user passwords.
//
// Hash embeds a fresh random salt and the work factor in its output, so two
// calls with the same password return different strings that both verify.
type PasswordHasher interface {
	// Hash returns the encoded salted hash of password.
	// It fails only on an internal error or when ctx is done before a
	// hashing slot becomes free.
	Hash(ctx context.Context, password string) (string, error)

	// Verify reports whether password matches storedHash.
	// A wrong password yields (false, nil); a storedHash that cannot be
	// parsed yields (false, ErrMalformedHash).
	Verify(ctx context.Context, password, storedHash string) (bool, error)
}
