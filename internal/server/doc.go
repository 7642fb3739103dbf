// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package server runs the HTTP server of the accounts service.
//
// It owns the server lifecycle: startup, waiting for a termination signal
// or a cancelled context, and graceful shutdown bounded by the configured
// shutdown timeout.
package server
