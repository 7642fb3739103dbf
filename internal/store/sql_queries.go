// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"fmt"

	"github.com/MKhiriev/go-user-accounts/models"
	sq "github.com/Masterminds/squirrel"
)

var userColumns = []string{"id", "email", "name", "password_hash", "created_at", "updated_at"}

// buildCreateUserQuery builds the INSERT for user, returning every column
// of the stored row.
func buildCreateUserQuery(builder sq.StatementBuilderType, user models.User) (string, []any, error) {
	query, args, err := builder.
		Insert(user.TableName()).
		Columns(userColumns...).
		Values(user.ID, user.Email, user.Name, user.PasswordHash, user.CreatedAt, user.UpdatedAt).
		Suffix("RETURNING id, email, name, password_hash, created_at, updated_at").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

// buildFindUserByEmailQuery builds the exact-match lookup by email.
func buildFindUserByEmailQuery(builder sq.StatementBuilderType, email string) (string, []any, error) {
	query, args, err := builder.
		Select(userColumns...).
		From(models.User{}.TableName()).
		Where(sq.Eq{"email": email}).
		Limit(1).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}
