// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks request input before it reaches the account
// flows.
//
// A [Validator] receives a value and an optional list of field names; with
// no names every field of the value is checked. Unknown types yield
// [ErrUnsupportedType] and unknown field names [ErrUnknownField].
package validators

import "context"

// Validator defines a generic validation interface for arbitrary input values.
type Validator interface {

	// Validate validates the provided input and optionally
	// restricts validation to specific named fields.
	Validate(context.Context, any, ...string) error
}
