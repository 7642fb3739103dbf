// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/go-user-accounts/internal/service"
	"github.com/MKhiriev/go-user-accounts/models"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func serve(router http.Handler, method, path, body, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

func TestInit_PublicRoutes(t *testing.T) {
	h, m := newTestHandlerWithMocks(t)
	m.auth.EXPECT().Register(gomock.Any(), gomock.Any()).Return(models.User{ID: "user-1", Email: "ann@example.com"}, nil)
	m.auth.EXPECT().Login(gomock.Any(), gomock.Any()).Return(models.Token{SignedString: "a.b.c"}, nil)
	m.appInfo.EXPECT().GetAppVersion(gomock.Any()).Return(models.VersionResponse{Version: "v1.0.0"})

	router := h.Init()

	assert.Equal(t, http.StatusCreated,
		serve(router, http.MethodPost, "/api/users/register", `{"email":"ann@example.com","password":"secret1"}`, "").Code)
	assert.Equal(t, http.StatusOK,
		serve(router, http.MethodPost, "/api/users/login", `{"email":"ann@example.com","password":"secret1"}`, "").Code)
	assert.Equal(t, http.StatusOK, serve(router, http.MethodGet, "/health", "", "").Code)
	assert.Equal(t, http.StatusOK, serve(router, http.MethodGet, "/api/version", "", "").Code)
	assert.Equal(t, http.StatusOK, serve(router, http.MethodGet, "/metrics", "", "").Code)
}

func TestInit_MeRequiresAuth(t *testing.T) {
	h, m := newTestHandlerWithMocks(t)
	m.tokens.EXPECT().Verify(gomock.Any(), "bad.token.sig").Return(models.Claims{}, service.ErrTokenInvalidSignature)

	router := h.Init()

	rr := serve(router, http.MethodGet, "/api/users/me", "", "")
	assert.Equal(t, http.StatusUnauthorized, rr.Code)

	rr = serve(router, http.MethodGet, "/api/users/me", "", "Bearer bad.token.sig")
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.JSONEq(t, `{"message":"Unauthorized"}`, rr.Body.String())
}

func TestInit_MeWithValidToken(t *testing.T) {
	h, m := newTestHandlerWithMocks(t)
	m.tokens.EXPECT().Verify(gomock.Any(), "good.token.sig").Return(models.Claims{
		Email:            "ann@example.com",
		RegisteredClaims: jwt.RegisteredClaims{Subject: "user-1"},
	}, nil)

	rr := serve(h.Init(), http.MethodGet, "/api/users/me", "", "Bearer good.token.sig")

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"id":"user-1"`)
	assert.Contains(t, rr.Body.String(), `"email":"ann@example.com"`)
}

func TestInit_UnknownRoutesReturn404(t *testing.T) {
	h, _ := newTestHandlerWithMocks(t)
	router := h.Init()

	for _, path := range []string{"/", "/api/users", "/api/user/login", "/api/users/me/extra"} {
		rr := serve(router, http.MethodGet, path, "", "")
		assert.Equal(t, http.StatusNotFound, rr.Code, path)
		assert.JSONEq(t, `{"message":"Not Found"}`, rr.Body.String(), path)
	}
}

func TestInit_WrongMethodReturns404(t *testing.T) {
	h, _ := newTestHandlerWithMocks(t)
	router := h.Init()

	tests := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/api/users/register"},
		{http.MethodGet, "/api/users/login"},
		{http.MethodPost, "/api/users/me"},
		{http.MethodDelete, "/health"},
		{http.MethodPost, "/metrics"},
	}

	for _, tt := range tests {
		rr := serve(router, tt.method, tt.path, "", "")
		assert.Equal(t, http.StatusNotFound, rr.Code, tt.method+" "+tt.path)
	}
}

func TestInit_TraceIDHeader(t *testing.T) {
	h, _ := newTestHandlerWithMocks(t)
	router := h.Init()

	rr := serve(router, http.MethodGet, "/health", "", "")
	assert.NotEmpty(t, rr.Header().Get(traceIDHeader))

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set(traceIDHeader, "trace-from-caller")
	rr = httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	assert.Equal(t, "trace-from-caller", rr.Header().Get(traceIDHeader))
}

func TestInit_RecoversFromPanics(t *testing.T) {
	h, m := newTestHandlerWithMocks(t)
	m.auth.EXPECT().Login(gomock.Any(), gomock.Any()).DoAndReturn(
		func(context.Context, models.Credentials) (models.Token, error) {
			panic("unexpected")
		})

	rr := serve(h.Init(), http.MethodPost, "/api/users/login", `{"email":"ann@example.com","password":"x"}`, "")
	assert.Equal(t, http.StatusInternalServerError, rr.Code)
}
