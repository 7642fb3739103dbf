// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store is the persistence layer for user accounts. It supports
// PostgreSQL through pgx and SQLite through go-sqlite3 behind the same
// [UserRepository].
package store

import (
	"context"

	"github.com/MKhiriev/go-user-accounts/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository stores and looks up user accounts.
type UserRepository interface {
	// CreateUser inserts user and returns the stored record with its
	// generated ID and timestamps. Returns ErrEmailAlreadyExists when the
	// email is taken; the check is atomic in the database.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByEmail returns the user with exactly this email
	// (case-sensitive). Returns ErrUserNotFound when there is none.
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
}

// ErrorClassificator decides whether a failed database call may succeed if
// repeated.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
