// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

// Validation errors returned when the merged configuration is incomplete or
// invalid. All of them are fatal at startup.
var (
	// ErrMissingTokenSignKey indicates that no token signing secret was
	// provided. The server must not start without it.
	ErrMissingTokenSignKey = errors.New("token sign key is required")
	// ErrInvalidAppConfigs indicates invalid application-level settings
	// (for example, a non-positive token duration or bcrypt cost out of range).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidStorageConfigs indicates invalid storage settings
	// (for example, empty DSN or unsupported driver).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidAdapterConfigs indicates invalid client adapter settings
	// (for example, missing HTTP address or request timeout).
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
)
