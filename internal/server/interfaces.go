// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "context"

// Server is the lifecycle contract of the process transport.
type Server interface {
	// RunServer serves requests until ctx is cancelled or the process
	// receives SIGINT, SIGTERM or SIGQUIT, then shuts down gracefully.
	// It returns nil after a clean shutdown.
	RunServer(ctx context.Context) error
}
