// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import "errors"

var (
	// ErrMalformedHash is returned by Verify when the stored hash is not a
	// valid encoded bcrypt hash. It is distinct from a wrong password.
	ErrMalformedHash = errors.New("malformed password hash")

	// ErrPasswordTooLong is returned by Hash when the password exceeds the
	// 72 byte input limit of bcrypt.
	ErrPasswordTooLong = errors.New("password exceeds 72 bytes")

	// ErrHashingFailed wraps unexpected failures of the hashing primitive.
	ErrHashingFailed = errors.New("password hashing failed")
)
