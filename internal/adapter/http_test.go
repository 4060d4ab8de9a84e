// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-key-keeper/internal/app"
	"github.com/MKhiriev/go-key-keeper/internal/config"
	"github.com/MKhiriev/go-key-keeper/internal/logger"
	"github.com/MKhiriev/go-key-keeper/models"
)

// newTestAdapter creates an httpServerAdapter pointed at the test server.
func newTestAdapter(t *testing.T, serverURL string) *httpServerAdapter {
	t.Helper()

	a, err := NewHTTPServerAdapter(config.ClientAdapter{HTTPAddress: serverURL}, logger.Nop())
	require.NoError(t, err)
	return a.(*httpServerAdapter)
}

func writeJSON(t *testing.T, w http.ResponseWriter, status int, body any) {
	t.Helper()

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	assert.NoError(t, json.NewEncoder(w).Encode(body))
}

// ── Constructor ─────────────────────────────────────────────────────────────

func TestNewHTTPServerAdapter_Address(t *testing.T) {
	tests := []struct {
		name    string
		address string
		wantErr bool
	}{
		{name: "with scheme", address: "http://localhost:8080/"},
		{name: "without scheme", address: "localhost:8080"},
		{name: "empty", address: "  ", wantErr: true},
		{name: "no host", address: "http://", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewHTTPServerAdapter(config.ClientAdapter{HTTPAddress: tt.address}, logger.Nop())
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}

// ── Login ───────────────────────────────────────────────────────────────────

func TestLogin_Success(t *testing.T) {
	want := models.User{ID: "u1", Username: "admin", Role: models.RoleAdmin}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/user/login", r.URL.Path)

		var req models.LoginRequest
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, models.LoginRequest{Username: "admin", Password: "adminpassword"}, req)

		w.Header().Set("Authorization", "Bearer signed.jwt.token")
		writeJSON(t, w, http.StatusOK, want)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	got, err := a.Login(context.Background(), models.LoginRequest{Username: "admin", Password: "adminpassword"})

	require.NoError(t, err)
	assert.Equal(t, want, got)
	assert.Equal(t, "signed.jwt.token", a.Token())
}

func TestLogin_InvalidCredentials(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusUnauthorized, models.ErrorResponse{Code: app.CodeInvalidCredentials, Message: app.MsgInvalidLoginPassword})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.Login(context.Background(), models.LoginRequest{Username: "admin", Password: "x"})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnauthorized)

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, app.CodeInvalidCredentials, apiErr.Code)
	assert.Equal(t, http.StatusUnauthorized, apiErr.Status)
	assert.Empty(t, a.Token())
}

func TestLogin_MissingBearer(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusOK, models.User{ID: "u1"})
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL).Login(context.Background(), models.LoginRequest{Username: "a", Password: "b"})
	assert.Error(t, err)
}

// ── Authenticated calls ────────────────────────────────────────────────────

func TestListKeys_SendsToken(t *testing.T) {
	keys := []models.Key{{ID: "k1", VisibleCode: "A1", Status: models.KeyStatusAvailable, History: []models.CheckoutRecord{}}}

	for _, all := range []bool{false, true} {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "Bearer tkn", r.Header.Get("Authorization"))
			if all {
				assert.Equal(t, "/api/keys/all", r.URL.Path)
			} else {
				assert.Equal(t, "/api/keys", r.URL.Path)
			}
			writeJSON(t, w, http.StatusOK, keys)
		}))

		a := newTestAdapter(t, srv.URL)
		a.SetToken("  tkn ")
		got, err := a.ListKeys(context.Background(), all)
		srv.Close()

		require.NoError(t, err)
		assert.Equal(t, keys, got)
	}
}

func TestCheckoutKey(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/keys/k1/checkout", r.URL.Path)

		var req models.CheckoutRequest
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, models.CheckoutOther, req.Mode)
		assert.Equal(t, "Jane", req.HolderName)

		writeJSON(t, w, http.StatusOK, models.Key{ID: "k1", Status: models.KeyStatusCheckedOut})
	}))
	defer srv.Close()

	got, err := newTestAdapter(t, srv.URL).CheckoutKey(context.Background(), "k1", models.CheckoutRequest{
		Mode:        models.CheckoutOther,
		HolderName:  "Jane",
		HolderPhone: "5491122223333",
	})
	require.NoError(t, err)
	assert.Equal(t, models.KeyStatusCheckedOut, got.Status)
}

func TestCheckoutKey_Conflict(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusConflict, models.ErrorResponse{Code: app.CodeInvalidState, Message: "key is already checked out"})
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL).CheckoutKey(context.Background(), "k1", models.CheckoutRequest{Mode: models.CheckoutSelf})

	assert.ErrorIs(t, err, ErrConflict)
	assert.Contains(t, err.Error(), app.CodeInvalidState)
}

func TestRenameAndDelete_Methods(t *testing.T) {
	var methods []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		methods = append(methods, r.Method+" "+r.URL.Path)
		writeJSON(t, w, http.StatusOK, models.Key{ID: "k1"})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	ctx := context.Background()

	_, err := a.RenameKey(ctx, "k1", models.RenameKeyRequest{VisibleCode: "B1"})
	require.NoError(t, err)
	_, err = a.ReturnKey(ctx, "k1")
	require.NoError(t, err)
	_, err = a.DeleteKey(ctx, "k1", models.DeleteKeyRequest{Reason: "Sold"})
	require.NoError(t, err)

	assert.Equal(t, []string{
		"PATCH /api/keys/k1",
		"POST /api/keys/k1/return",
		"DELETE /api/keys/k1",
	}, methods)
}

func TestSuggestCode(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/keys/suggest-code", r.URL.Path)
		writeJSON(t, w, http.StatusOK, models.SuggestCodeResponse{VisibleCode: "B2"})
	}))
	defer srv.Close()

	code, err := newTestAdapter(t, srv.URL).SuggestCode(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "B2", code)
}

func TestVersion(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		_, _ = w.Write([]byte("1.4.0\n"))
	}))
	defer srv.Close()

	version, err := newTestAdapter(t, srv.URL).Version(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "1.4.0", version)
}

// ── Export ──────────────────────────────────────────────────────────────────

func TestExportAuditLog(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/audit-log/export", r.URL.Path)
		w.Header().Set("Content-Disposition", `attachment; filename="historial_llaves_2026-05-10.json"`)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte("[]"))
	}))
	defer srv.Close()

	export, err := newTestAdapter(t, srv.URL).ExportAuditLog(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "historial_llaves_2026-05-10.json", export.FileName)
	assert.Equal(t, "[]", string(export.Content))
}

func TestExportAuditLog_NoFileName(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("[]"))
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL).ExportAuditLog(context.Background())
	assert.ErrorIs(t, err, ErrNoFileName)
}

// ── Error mapping ───────────────────────────────────────────────────────────

func TestMapHTTPError_PlainBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("upstream down"))
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL).Me(context.Background())
	require.Error(t, err)

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusBadGateway, apiErr.Status)
	assert.Empty(t, apiErr.Code)
	assert.Equal(t, "upstream down", apiErr.Message)
	assert.Contains(t, err.Error(), "http 502")
}

func TestMapHTTPError_Statuses(t *testing.T) {
	for status, sentinel := range statusErrors {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(status)
		}))

		_, err := newTestAdapter(t, srv.URL).ListAccounts(context.Background())
		srv.Close()

		assert.ErrorIs(t, err, sentinel, "status %d", status)
	}
}
