// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"
)

var (
	// ErrValidation wraps input that failed validation before any work
	// was done.
	ErrValidation = errors.New("validation failed")

	// ErrDuplicateEmail is returned by Register when the email is taken.
	ErrDuplicateEmail = errors.New("email already registered")

	// ErrInvalidCredentials is returned by Login for an unknown email and
	// for a wrong password alike.
	ErrInvalidCredentials = errors.New("invalid credentials")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)

// Token failures. Each kind wraps ErrTokenInvalid so callers that do not
// care about the reason can match on it alone.
var (
	ErrTokenInvalid          = errors.New("invalid token")
	ErrTokenMalformed        = fmt.Errorf("%w: malformed", ErrTokenInvalid)
	ErrTokenInvalidSignature = fmt.Errorf("%w: signature is invalid", ErrTokenInvalid)
	ErrTokenExpired          = fmt.Errorf("%w: expired", ErrTokenInvalid)

	ErrEmptySignKey        = errors.New("token sign key is empty")
	ErrTokenCreationFailed = errors.New("token creation failed")
)
