// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-key-keeper/internal/app"
	"github.com/MKhiriev/go-key-keeper/models"
)

// ─────────────────────────────────────────────
// login
// ─────────────────────────────────────────────

func TestLogin_Success(t *testing.T) {
	api := newTestAPI(t)

	rec := api.do(http.MethodPost, "/api/user/login", models.LoginRequest{Username: "admin", Password: "adminpassword"}, "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.HasPrefix(rec.Header().Get("Authorization"), "Bearer "))

	account := decodeBody[models.User](t, rec)
	assert.Equal(t, "admin", account.Username)
	assert.Equal(t, models.RoleAdmin, account.Role)
	assert.Empty(t, account.SecretHash, "credential material must not leave the server")
	assert.NotContains(t, rec.Body.String(), "passwordHash")
}

func TestLogin_Failures(t *testing.T) {
	api := newTestAPI(t)

	tests := []struct {
		name       string
		body       any
		wantStatus int
		wantCode   string
	}{
		{name: "wrong password", body: models.LoginRequest{Username: "admin", Password: "nope"}, wantStatus: http.StatusUnauthorized, wantCode: app.CodeInvalidCredentials},
		{name: "unknown user", body: models.LoginRequest{Username: "ghost", Password: "adminpassword"}, wantStatus: http.StatusUnauthorized, wantCode: app.CodeInvalidCredentials},
		{name: "empty fields", body: models.LoginRequest{}, wantStatus: http.StatusUnauthorized, wantCode: app.CodeInvalidCredentials},
		{name: "invalid json", body: "{not json", wantStatus: http.StatusBadRequest, wantCode: app.CodeInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := api.do(http.MethodPost, "/api/user/login", tt.body, "")

			assertErrorCode(t, rec, tt.wantStatus, tt.wantCode)
			assert.Empty(t, rec.Header().Get("Authorization"))
		})
	}
}

func TestLogin_WrongPasswordMessage(t *testing.T) {
	api := newTestAPI(t)

	rec := api.do(http.MethodPost, "/api/user/login", models.LoginRequest{Username: "user", Password: "bad"}, "")

	body := decodeBody[models.ErrorResponse](t, rec)
	assert.Equal(t, app.MsgInvalidLoginPassword, body.Message)
}

// ─────────────────────────────────────────────
// me
// ─────────────────────────────────────────────

func TestMe(t *testing.T) {
	api := newTestAPI(t)

	rec := api.do(http.MethodGet, "/api/user/me", nil, api.userToken())

	require.Equal(t, http.StatusOK, rec.Code)
	account := decodeBody[models.User](t, rec)
	assert.Equal(t, "user", account.Username)
	assert.Equal(t, "5491122222222", account.Phone)
	assert.Empty(t, account.SecretHash)
}
