// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the HTTP transport of the accounts service.
//
// It wires the chi router, the account handlers (register, login, me) and
// the middleware chain: panic recovery, request timeout, trace id, access
// logging, Prometheus metrics and the bearer token gate in front of the
// authorized routes. Errors from the service layer are mapped to statuses
// in errors_mapper.go and always answered with a {"message": ...} body.
package http
