// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-user-accounts/internal/config"
	"github.com/MKhiriev/go-user-accounts/internal/logger"
	"github.com/MKhiriev/go-user-accounts/models"
	"github.com/golang-jwt/jwt/v5"
)

// tokenService signs session tokens with HMAC-SHA256.
//
// All fields are read-only after construction, so a single instance is safe
// for concurrent use.
type tokenService struct {
	signKey    []byte
	issuer     string
	defaultTTL time.Duration

	// now is the clock used for iat/exp and for expiry checks.
	now func() time.Time

	logger *logger.Logger
}

// NewTokenService builds a TokenService from the app configuration.
// It returns ErrEmptySignKey when no signing key is configured.
func NewTokenService(cfg config.App, logger *logger.Logger) (TokenService, error) {
	if cfg.TokenSignKey == "" {
		return nil, ErrEmptySignKey
	}

	ttl := cfg.TokenDuration
	if ttl <= 0 {
		ttl = config.DefaultTokenDuration
	}
	issuer := cfg.TokenIssuer
	if issuer == "" {
		issuer = config.DefaultTokenIssuer
	}

	return &tokenService{
		signKey:    []byte(cfg.TokenSignKey),
		issuer:     issuer,
		defaultTTL: ttl,
		now:        time.Now,
		logger:     logger,
	}, nil
}

func (s *tokenService) Issue(ctx context.Context, claims models.Claims, ttl time.Duration) (models.Token, error) {
	if claims.Subject == "" {
		return models.Token{}, fmt.Errorf("%w: empty subject", ErrTokenCreationFailed)
	}
	if ttl <= 0 {
		ttl = s.defaultTTL
	}

	now := s.now()
	claims.Issuer = s.issuer
	claims.IssuedAt = jwt.NewNumericDate(now)
	claims.ExpiresAt = jwt.NewNumericDate(now.Add(ttl))

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.signKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return models.Token{SignedString: signed, Claims: claims}, nil
}

func (s *tokenService) Verify(ctx context.Context, token string) (models.Claims, error) {
	var claims models.Claims

	_, err := jwt.ParseWithClaims(token, &claims, func(*jwt.Token) (any, error) {
		return s.signKey, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(s.issuer),
		jwt.WithExpirationRequired(),
		jwt.WithIssuedAt(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return models.Claims{}, fmt.Errorf("%w: %w", classifyTokenError(err), err)
	}

	if claims.Subject == "" {
		return models.Claims{}, fmt.Errorf("%w: empty subject", ErrTokenMalformed)
	}

	return claims, nil
}

// classifyTokenError maps a jwt parse error to one of the three token
// failure kinds. The signature is checked before the claims, so an expired
// token signed with a foreign key is reported as a signature failure.
func classifyTokenError(err error) error {
	switch {
	case errors.Is(err, jwt.ErrTokenMalformed):
		return ErrTokenMalformed
	case errors.Is(err, jwt.ErrTokenSignatureInvalid), errors.Is(err, jwt.ErrTokenUnverifiable):
		return ErrTokenInvalidSignature
	case errors.Is(err, jwt.ErrTokenExpired):
		return ErrTokenExpired
	default:
		// wrong issuer, iat in the future, missing exp
		return ErrTokenMalformed
	}
}
