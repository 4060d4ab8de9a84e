package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-key-keeper/internal/logger"
	"github.com/MKhiriev/go-key-keeper/internal/store"
	"github.com/MKhiriev/go-key-keeper/internal/utils"
	"github.com/MKhiriev/go-key-keeper/models"
)

func newTestDirectory(t *testing.T) (UserDirectory, *State) {
	t.Helper()

	state := newLoadedState(t, store.NewMemoryStateRepository())
	return NewUserDirectory(state, &seqIDs{}, logger.Nop()), state
}

func TestUserDirectory_AddAccount(t *testing.T) {
	directory, state := newTestDirectory(t)
	ctx := context.Background()

	account, err := directory.AddAccount(ctx, "maria", "s3cret", "5491100000000", models.RoleUser)
	require.NoError(t, err)

	assert.NotEmpty(t, account.ID)
	assert.Equal(t, "maria", account.Username)
	assert.Equal(t, models.RoleUser, account.Role)
	assert.Empty(t, account.SecretHash, "credential material must not leave the directory")

	stored := state.Snapshot().Accounts
	require.Len(t, stored, 1)
	assert.NotEqual(t, "s3cret", stored[0].SecretHash)
	assert.True(t, utils.CompareSecret(stored[0].SecretHash, "s3cret"))

	// accounts do not touch the audit log
	assert.Empty(t, state.Snapshot().AuditLog)
}

func TestUserDirectory_AddAccount_EmptySecret(t *testing.T) {
	directory, state := newTestDirectory(t)

	_, err := directory.AddAccount(context.Background(), "maria", "", "", models.RoleUser)
	assert.ErrorIs(t, err, utils.ErrEmptySecret)
	assert.Empty(t, state.Snapshot().Accounts)
}

func TestUserDirectory_Authenticate(t *testing.T) {
	directory, _ := newTestDirectory(t)
	ctx := context.Background()

	admin, err := directory.AddAccount(ctx, "admin", "adminpassword", "", models.RoleAdmin)
	require.NoError(t, err)

	t.Run("valid", func(t *testing.T) {
		got, err := directory.Authenticate(ctx, "admin", "adminpassword")
		require.NoError(t, err)
		assert.Equal(t, admin, got)
		assert.Empty(t, got.SecretHash)
	})

	t.Run("wrong secret", func(t *testing.T) {
		_, err := directory.Authenticate(ctx, "admin", "nope")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("unknown username", func(t *testing.T) {
		_, err := directory.Authenticate(ctx, "ghost", "adminpassword")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("username is case sensitive", func(t *testing.T) {
		_, err := directory.Authenticate(ctx, "Admin", "adminpassword")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})
}

func TestUserDirectory_DuplicateUsernames(t *testing.T) {
	directory, _ := newTestDirectory(t)
	ctx := context.Background()

	first, err := directory.AddAccount(ctx, "pat", "one", "", models.RoleUser)
	require.NoError(t, err)
	second, err := directory.AddAccount(ctx, "pat", "two", "", models.RoleAdmin)
	require.NoError(t, err)

	got, err := directory.Authenticate(ctx, "pat", "one")
	require.NoError(t, err)
	assert.Equal(t, first.ID, got.ID)

	got, err = directory.Authenticate(ctx, "pat", "two")
	require.NoError(t, err)
	assert.Equal(t, second.ID, got.ID)
}

func TestUserDirectory_GetAndList(t *testing.T) {
	directory, _ := newTestDirectory(t)
	ctx := context.Background()

	assert.Empty(t, directory.ListAccounts(ctx))

	a, err := directory.AddAccount(ctx, "a", "pa", "", models.RoleAdmin)
	require.NoError(t, err)
	b, err := directory.AddAccount(ctx, "b", "pb", "", models.RoleUser)
	require.NoError(t, err)

	got, err := directory.GetAccount(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, b, got)

	_, err = directory.GetAccount(ctx, "missing")
	assert.ErrorIs(t, err, ErrAccountNotFound)

	list := directory.ListAccounts(ctx)
	assert.Equal(t, []models.User{a, b}, list)
	for _, account := range list {
		assert.Empty(t, account.SecretHash)
	}
}
