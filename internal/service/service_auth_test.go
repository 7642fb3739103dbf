// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/go-user-accounts/internal/config"
	"github.com/MKhiriev/go-user-accounts/internal/crypto"
	"github.com/MKhiriev/go-user-accounts/internal/logger"
	"github.com/MKhiriev/go-user-accounts/internal/mock"
	"github.com/MKhiriev/go-user-accounts/internal/store"
	"github.com/MKhiriev/go-user-accounts/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

// newTestAuthSvc builds an authService with mocked collaborators.
func newTestAuthSvc(
	t *testing.T,
	ctrl *gomock.Controller,
) (
	AuthService,
	*mock.MockUserRepository,
	*mock.MockPasswordHasher,
	*mock.MockTokenService,
) {
	t.Helper()
	mockRepo := mock.NewMockUserRepository(ctrl)
	mockHasher := mock.NewMockPasswordHasher(ctrl)
	mockTokens := mock.NewMockTokenService(ctrl)

	mockHasher.EXPECT().Hash(gomock.Any(), dummyPassword).Return(testDummyHash, nil)
	svc := NewAuthService(mockRepo, mockHasher, mockTokens, logger.Nop())

	return svc, mockRepo, mockHasher, mockTokens
}

var errDB = errors.New("db is down")

const testDummyHash = "$2a$10$dummy"

// ── Register ─────────────────────────────────────────────────────────────────

func TestAuthService_Register_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockRepo, mockHasher, _ := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	name := "Alice"
	request := models.RegisterRequest{Email: "a@b.com", Name: &name, Password: "secret1"}
	created := models.User{ID: "u-1", Email: "a@b.com", Name: &name, PasswordHash: "$2a$10$hash"}

	gomock.InOrder(
		mockHasher.EXPECT().Hash(ctx, "secret1").Return("$2a$10$hash", nil),
		mockRepo.EXPECT().CreateUser(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, u models.User) (models.User, error) {
				assert.Equal(t, "a@b.com", u.Email)
				assert.Equal(t, &name, u.Name)
				assert.Equal(t, "$2a$10$hash", u.PasswordHash)
				return created, nil
			},
		),
	)

	user, err := svc.Register(ctx, request)
	require.NoError(t, err)
	assert.Equal(t, created, user)
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockRepo, mockHasher, _ := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	mockHasher.EXPECT().Hash(ctx, "secret1").Return("hash", nil)
	mockRepo.EXPECT().CreateUser(ctx, gomock.Any()).
		Return(models.User{}, store.ErrEmailAlreadyExists)

	_, err := svc.Register(ctx, models.RegisterRequest{Email: "a@b.com", Password: "secret1"})
	assert.ErrorIs(t, err, ErrDuplicateEmail)
}

func TestAuthService_Register_StoreError(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockRepo, mockHasher, _ := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	mockHasher.EXPECT().Hash(ctx, gomock.Any()).Return("hash", nil)
	mockRepo.EXPECT().CreateUser(ctx, gomock.Any()).Return(models.User{}, errDB)

	_, err := svc.Register(ctx, models.RegisterRequest{Email: "a@b.com", Password: "secret1"})
	assert.ErrorIs(t, err, errDB)
	assert.NotErrorIs(t, err, ErrDuplicateEmail)
}

func TestAuthService_Register_HashError(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _, mockHasher, _ := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	mockHasher.EXPECT().Hash(ctx, gomock.Any()).Return("", crypto.ErrHashingFailed)

	_, err := svc.Register(ctx, models.RegisterRequest{Email: "a@b.com", Password: "secret1"})
	assert.ErrorIs(t, err, crypto.ErrHashingFailed)
}

// ── Login ────────────────────────────────────────────────────────────────────

func TestAuthService_Login_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockRepo, mockHasher, mockTokens := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	stored := models.User{ID: "u-1", Email: "a@b.com", PasswordHash: "hash"}
	issued := models.Token{SignedString: "signed"}

	gomock.InOrder(
		mockRepo.EXPECT().FindUserByEmail(ctx, "a@b.com").Return(stored, nil),
		mockHasher.EXPECT().Verify(ctx, "secret1", "hash").Return(true, nil),
		mockTokens.EXPECT().Issue(ctx, gomock.Any(), time.Duration(0)).DoAndReturn(
			func(_ context.Context, c models.Claims, _ time.Duration) (models.Token, error) {
				assert.Equal(t, "u-1", c.UserID())
				assert.Equal(t, "a@b.com", c.Email)
				return issued, nil
			},
		),
	)

	token, err := svc.Login(ctx, models.Credentials{Email: "a@b.com", Password: "secret1"})
	require.NoError(t, err)
	assert.Equal(t, "signed", token.SignedString)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockRepo, mockHasher, _ := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	mockRepo.EXPECT().FindUserByEmail(ctx, "a@b.com").
		Return(models.User{ID: "u-1", Email: "a@b.com", PasswordHash: "hash"}, nil)
	mockHasher.EXPECT().Verify(ctx, "wrong", "hash").Return(false, nil)

	token, err := svc.Login(ctx, models.Credentials{Email: "a@b.com", Password: "wrong"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	assert.Empty(t, token.SignedString)
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockRepo, mockHasher, _ := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	gomock.InOrder(
		mockRepo.EXPECT().FindUserByEmail(ctx, "nobody@b.com").
			Return(models.User{}, store.ErrUserNotFound),
		mockHasher.EXPECT().Verify(ctx, "secret1", testDummyHash).Return(false, nil),
	)

	token, err := svc.Login(ctx, models.Credentials{Email: "nobody@b.com", Password: "secret1"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	assert.Empty(t, token.SignedString)
}

func TestAuthService_Login_UnknownEmailAndWrongPasswordLookTheSame(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockRepo, mockHasher, _ := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	mockRepo.EXPECT().FindUserByEmail(ctx, "nobody@b.com").
		Return(models.User{}, store.ErrUserNotFound)
	mockHasher.EXPECT().Verify(ctx, "wrong", testDummyHash).Return(false, nil)
	mockRepo.EXPECT().FindUserByEmail(ctx, "a@b.com").
		Return(models.User{ID: "u-1", Email: "a@b.com", PasswordHash: "hash"}, nil)
	mockHasher.EXPECT().Verify(ctx, "wrong", "hash").Return(false, nil)

	_, unknownErr := svc.Login(ctx, models.Credentials{Email: "nobody@b.com", Password: "wrong"})
	_, wrongErr := svc.Login(ctx, models.Credentials{Email: "a@b.com", Password: "wrong"})

	assert.Equal(t, unknownErr, wrongErr)
	assert.Equal(t, unknownErr.Error(), wrongErr.Error())
}

func TestAuthService_Login_UnknownEmailIgnoresDummyVerifyError(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockRepo, mockHasher, _ := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	mockRepo.EXPECT().FindUserByEmail(ctx, gomock.Any()).Return(models.User{}, store.ErrUserNotFound)
	mockHasher.EXPECT().Verify(ctx, gomock.Any(), testDummyHash).Return(false, context.Canceled)

	_, err := svc.Login(ctx, models.Credentials{Email: "nobody@b.com", Password: "secret1"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthService_Login_UnknownEmailSkipsVerifyWithoutDummyHash(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockRepo := mock.NewMockUserRepository(ctrl)
	mockHasher := mock.NewMockPasswordHasher(ctrl)
	ctx := context.Background()

	mockHasher.EXPECT().Hash(gomock.Any(), dummyPassword).Return("", crypto.ErrHashingFailed)
	svc := NewAuthService(mockRepo, mockHasher, mock.NewMockTokenService(ctrl), logger.Nop())

	mockRepo.EXPECT().FindUserByEmail(ctx, gomock.Any()).Return(models.User{}, store.ErrUserNotFound)

	_, err := svc.Login(ctx, models.Credentials{Email: "nobody@b.com", Password: "secret1"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

// TestAuthService_Login_UnknownEmailCostsABcryptCompare checks with the real
// hasher that an unknown email is not answered much faster than a wrong
// password.
func TestAuthService_Login_UnknownEmailCostsABcryptCompare(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockRepo := mock.NewMockUserRepository(ctrl)
	ctx := context.Background()

	const cost = 10
	hasher := crypto.NewBcryptHasher(cost, 1)
	hash, err := bcrypt.GenerateFromPassword([]byte("secret1"), cost)
	require.NoError(t, err)

	svc := NewAuthService(mockRepo, hasher, mock.NewMockTokenService(ctrl), logger.Nop())

	mockRepo.EXPECT().FindUserByEmail(ctx, "a@b.com").
		Return(models.User{ID: "u-1", Email: "a@b.com", PasswordHash: string(hash)}, nil)
	mockRepo.EXPECT().FindUserByEmail(ctx, "nobody@b.com").
		Return(models.User{}, store.ErrUserNotFound)

	start := time.Now()
	_, err = svc.Login(ctx, models.Credentials{Email: "a@b.com", Password: "wrong-password"})
	wrongPassword := time.Since(start)
	require.ErrorIs(t, err, ErrInvalidCredentials)

	start = time.Now()
	_, err = svc.Login(ctx, models.Credentials{Email: "nobody@b.com", Password: "wrong-password"})
	unknownEmail := time.Since(start)
	require.ErrorIs(t, err, ErrInvalidCredentials)

	assert.Greater(t, unknownEmail, wrongPassword/4)
}

func TestAuthService_Login_StoreError(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockRepo, _, _ := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	mockRepo.EXPECT().FindUserByEmail(ctx, gomock.Any()).Return(models.User{}, errDB)

	_, err := svc.Login(ctx, models.Credentials{Email: "a@b.com", Password: "secret1"})
	assert.ErrorIs(t, err, errDB)
	assert.NotErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthService_Login_MalformedStoredHash(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockRepo, mockHasher, _ := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	mockRepo.EXPECT().FindUserByEmail(ctx, gomock.Any()).
		Return(models.User{ID: "u-1", Email: "a@b.com", PasswordHash: "garbage"}, nil)
	mockHasher.EXPECT().Verify(ctx, "secret1", "garbage").Return(false, crypto.ErrMalformedHash)

	_, err := svc.Login(ctx, models.Credentials{Email: "a@b.com", Password: "secret1"})
	assert.ErrorIs(t, err, crypto.ErrMalformedHash)
	assert.NotErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthService_Login_TokenError(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockRepo, mockHasher, mockTokens := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	mockRepo.EXPECT().FindUserByEmail(ctx, gomock.Any()).
		Return(models.User{ID: "u-1", Email: "a@b.com", PasswordHash: "hash"}, nil)
	mockHasher.EXPECT().Verify(ctx, gomock.Any(), gomock.Any()).Return(true, nil)
	mockTokens.EXPECT().Issue(ctx, gomock.Any(), gomock.Any()).
		Return(models.Token{}, ErrTokenCreationFailed)

	_, err := svc.Login(ctx, models.Credentials{Email: "a@b.com", Password: "secret1"})
	assert.ErrorIs(t, err, ErrTokenCreationFailed)
}

// ── Real collaborators ───────────────────────────────────────────────────────

// TestAuthService_RegisterThenLogin runs the flow with the real hasher and
// token service over a mocked store that keeps the created record.
func TestAuthService_RegisterThenLogin(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockRepo := mock.NewMockUserRepository(ctrl)
	ctx := context.Background()

	tokens, err := NewTokenService(config.App{TokenSignKey: "secret"}, logger.Nop())
	require.NoError(t, err)
	hasher := crypto.NewBcryptHasher(bcrypt.MinCost, 2)

	svc := NewAuthValidationService().Wrap(NewAuthService(mockRepo, hasher, tokens, logger.Nop()))

	var stored models.User
	mockRepo.EXPECT().CreateUser(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, u models.User) (models.User, error) {
			u.ID = "u-1"
			stored = u
			return u, nil
		},
	)
	mockRepo.EXPECT().FindUserByEmail(ctx, "a@b.com").DoAndReturn(
		func(context.Context, string) (models.User, error) { return stored, nil },
	).Times(2)

	user, err := svc.Register(ctx, models.RegisterRequest{Email: "a@b.com", Password: "secret1"})
	require.NoError(t, err)
	assert.NotEqual(t, "secret1", stored.PasswordHash)
	assert.NotEmpty(t, stored.PasswordHash)
	assert.Equal(t, "u-1", user.ID)

	token, err := svc.Login(ctx, models.Credentials{Email: "a@b.com", Password: "secret1"})
	require.NoError(t, err)
	assert.NotEmpty(t, token.SignedString)

	claims, err := tokens.Verify(ctx, token.SignedString)
	require.NoError(t, err)
	assert.Equal(t, "u-1", claims.UserID())
	assert.Equal(t, "a@b.com", claims.Email)

	_, err = svc.Login(ctx, models.Credentials{Email: "a@b.com", Password: "wrong-password"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
