package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-key-keeper/internal/config"
	"github.com/MKhiriev/go-key-keeper/internal/logger"
	"github.com/MKhiriev/go-key-keeper/models"
)

func testAppConfig() config.App {
	return config.App{
		TokenSignKey:  "test-sign-key",
		TokenIssuer:   "go-key-keeper-test",
		TokenDuration: time.Hour,
	}
}

func newTestAuth(t *testing.T) (AuthService, models.User) {
	t.Helper()

	directory, _ := newTestDirectory(t)
	user, err := directory.AddAccount(context.Background(), "user", "userpassword", "5491122222222", models.RoleUser)
	require.NoError(t, err)

	return NewAuthService(directory, testAppConfig(), logger.Nop()), user
}

// ─────────────────────────────────────────────
// Login
// ─────────────────────────────────────────────

func TestAuthService_Login(t *testing.T) {
	auth, user := newTestAuth(t)
	ctx := context.Background()

	tests := []struct {
		name    string
		request models.LoginRequest
		wantErr error
	}{
		{name: "valid", request: models.LoginRequest{Username: "user", Password: "userpassword"}},
		{name: "empty username", request: models.LoginRequest{Password: "userpassword"}, wantErr: ErrInvalidCredentials},
		{name: "empty password", request: models.LoginRequest{Username: "user"}, wantErr: ErrInvalidCredentials},
		{name: "wrong password", request: models.LoginRequest{Username: "user", Password: "x"}, wantErr: ErrInvalidCredentials},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := auth.Login(ctx, tt.request)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, user, got)
		})
	}
}

// ─────────────────────────────────────────────
// CreateToken / ParseToken
// ─────────────────────────────────────────────

func TestAuthService_TokenRoundTrip(t *testing.T) {
	auth, user := newTestAuth(t)
	ctx := context.Background()

	token, err := auth.CreateToken(ctx, user)
	require.NoError(t, err)
	require.NotEmpty(t, token.String())

	parsed, err := auth.ParseToken(ctx, token.String())
	require.NoError(t, err)
	assert.Equal(t, user.ID, parsed.Subject)
	assert.Equal(t, models.User{ID: user.ID, Username: "user", Role: models.RoleUser}, parsed.Caller())
}

func TestAuthService_CreateToken_NoID(t *testing.T) {
	auth, _ := newTestAuth(t)

	_, err := auth.CreateToken(context.Background(), models.User{Username: "ghost"})
	assert.ErrorIs(t, err, ErrTokenCreationFailed)
}

func TestAuthService_ParseToken_Rejects(t *testing.T) {
	auth, user := newTestAuth(t)
	ctx := context.Background()

	otherCfg := testAppConfig()
	otherCfg.TokenIssuer = "someone-else"
	other := NewAuthService(nil, otherCfg, logger.Nop())
	foreign, err := other.CreateToken(ctx, user)
	require.NoError(t, err)

	expiredCfg := testAppConfig()
	expiredCfg.TokenDuration = -time.Minute
	expired, err := NewAuthService(nil, expiredCfg, logger.Nop()).CreateToken(ctx, user)
	require.NoError(t, err)

	for name, raw := range map[string]string{
		"garbage":      "not-a-token",
		"empty":        "",
		"wrong issuer": foreign.String(),
		"expired":      expired.String(),
	} {
		t.Run(name, func(t *testing.T) {
			_, err := auth.ParseToken(ctx, raw)
			assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
		})
	}
}
