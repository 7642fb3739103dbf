// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-user-accounts/internal/crypto"
	"github.com/MKhiriev/go-user-accounts/internal/logger"
	"github.com/MKhiriev/go-user-accounts/internal/store"
	"github.com/MKhiriev/go-user-accounts/models"
)

// authService is the concrete implementation of AuthService.
// It hashes passwords with a crypto.PasswordHasher, persists users through a
// store.UserRepository and issues session tokens through a TokenService.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// hasher hashes new passwords and verifies login attempts.
	hasher crypto.PasswordHasher

	// tokenService issues the session token returned by Login.
	tokenService TokenService

	// dummyHash is verified against on unknown emails so both failed login
	// paths cost one bcrypt comparison.
	dummyHash string

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(userRepository store.UserRepository, hasher crypto.PasswordHasher, tokenService TokenService, logger *logger.Logger) AuthService {
	dummyHash, err := hasher.Hash(context.Background(), dummyPassword)
	if err != nil {
		logger.Err(err).Msg("dummy password hash failed, unknown emails will skip verification")
	}

	return &authService{
		userRepository: userRepository,
		hasher:         hasher,
		tokenService:   tokenService,
		dummyHash:      dummyHash,
		logger:         logger,
	}
}

const dummyPassword = "user-accounts-dummy-password"

// Register hashes the password and stores a new user with the hash.
//
// Returns the persisted user or:
//   - ErrDuplicateEmail if the store reports the email as taken.
//   - A wrapped error if hashing or the store call fails.
func (a *authService) Register(ctx context.Context, request models.RegisterRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	hash, err := a.hasher.Hash(ctx, request.Password)
	if err != nil {
		log.Err(err).Object("request", request).Msg("password hashing failed")
		return models.User{}, fmt.Errorf("password hashing failed: %w", err)
	}

	user, err := a.userRepository.CreateUser(ctx, models.User{
		Email:        request.Email,
		Name:         request.Name,
		PasswordHash: hash,
	})
	if err != nil {
		if errors.Is(err, store.ErrEmailAlreadyExists) {
			log.Info().Object("request", request).Msg("email is already registered")
			return models.User{}, ErrDuplicateEmail
		}
		log.Err(err).Object("request", request).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	log.Info().Object("user", user).Msg("user registered")
	return user, nil
}

// Login authenticates an existing user and issues a token carrying the
// user's id and email with the default lifetime.
//
// Returns the token or:
//   - ErrInvalidCredentials if the email is unknown or the password is wrong.
//   - A wrapped error on store failures, an unreadable stored hash, or a
//     token signing failure.
func (a *authService) Login(ctx context.Context, credentials models.Credentials) (models.Token, error) {
	log := logger.FromContext(ctx)

	user, err := a.userRepository.FindUserByEmail(ctx, credentials.Email)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			a.verifyDummy(ctx, credentials.Password)
			log.Info().Object("credentials", credentials).Msg("login failed")
			return models.Token{}, ErrInvalidCredentials
		}
		log.Err(err).Object("credentials", credentials).Msg("user search by email failed")
		return models.Token{}, fmt.Errorf("user search by email failed: %w", err)
	}

	ok, err := a.hasher.Verify(ctx, credentials.Password, user.PasswordHash)
	if err != nil {
		log.Err(err).Str("user_id", user.ID).Msg("password verification failed")
		return models.Token{}, fmt.Errorf("password verification failed: %w", err)
	}
	if !ok {
		// same message as the unknown email branch
		log.Info().Object("credentials", credentials).Msg("login failed")
		return models.Token{}, ErrInvalidCredentials
	}

	claims := models.Claims{Email: user.Email}
	claims.Subject = user.ID

	token, err := a.tokenService.Issue(ctx, claims, 0)
	if err != nil {
		log.Err(err).Str("user_id", user.ID).Msg("token issue failed")
		return models.Token{}, fmt.Errorf("token issue failed: %w", err)
	}

	log.Info().Str("user_id", user.ID).Msg("user logged in")
	return token, nil
}

// verifyDummy spends the same bcrypt work as a real password check. The
// result is discarded.
func (a *authService) verifyDummy(ctx context.Context, password string) {
	if a.dummyHash == "" {
		return
	}
	_, _ = a.hasher.Verify(ctx, password, a.dummyHash)
}
