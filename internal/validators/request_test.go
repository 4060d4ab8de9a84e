// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-key-keeper/models"
)

func TestNewRequestValidator(t *testing.T) {
	v := NewRequestValidator()
	require.NotNil(t, v)
}

func TestValidate_UnsupportedType(t *testing.T) {
	err := NewRequestValidator().Validate(context.Background(), 42)
	assert.ErrorIs(t, err, ErrUnsupportedType)
}

func TestIsVisibleCode(t *testing.T) {
	for _, code := range []string{"A1", "Z6", "M3"} {
		assert.True(t, IsVisibleCode(code), code)
	}
	for _, code := range []string{"", "a1", "A0", "A7", "AA", "A12", "1A", " A1"} {
		assert.False(t, IsVisibleCode(code), code)
	}
}

func TestValidate_CreateKey(t *testing.T) {
	v := NewRequestValidator()
	ctx := context.Background()

	tests := []struct {
		name    string
		request models.CreateKeyRequest
		wantErr error
	}{
		{
			name:    "valid",
			request: models.CreateKeyRequest{VisibleCode: "A1", Address: "Main St 1", Color: models.KeyColorGreen},
		},
		{
			name:    "bad code",
			request: models.CreateKeyRequest{VisibleCode: "a1", Address: "Main St 1", Color: models.KeyColorGreen},
			wantErr: ErrInvalidVisibleCode,
		},
		{
			name:    "blank address",
			request: models.CreateKeyRequest{VisibleCode: "A1", Address: "   ", Color: models.KeyColorGreen},
			wantErr: ErrEmptyAddress,
		},
		{
			name:    "unknown color",
			request: models.CreateKeyRequest{VisibleCode: "A1", Address: "Main St 1", Color: "PURPLE"},
			wantErr: ErrInvalidColor,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(ctx, tt.request)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}

	// pointer form and field scoping
	assert.NoError(t, v.Validate(ctx, &models.CreateKeyRequest{VisibleCode: "B2"}, FieldVisibleCode))
	assert.ErrorIs(t, v.Validate(ctx, models.CreateKeyRequest{}, "nope"), ErrUnknownField)
}

func TestValidate_Checkout(t *testing.T) {
	v := NewRequestValidator()
	ctx := context.Background()

	assert.NoError(t, v.Validate(ctx, models.CheckoutRequest{Mode: models.CheckoutSelf}))
	assert.NoError(t, v.Validate(ctx, models.CheckoutRequest{
		Mode: models.CheckoutOther, HolderName: "Jane", HolderPhone: "+54 9 11 2222-3333",
	}))

	assert.ErrorIs(t, v.Validate(ctx, models.CheckoutRequest{Mode: "borrow"}), ErrInvalidMode)
	assert.ErrorIs(t, v.Validate(ctx, models.CheckoutRequest{Mode: models.CheckoutOther, HolderPhone: "5491122223333"}), ErrEmptyHolderName)
	assert.ErrorIs(t, v.Validate(ctx, &models.CheckoutRequest{Mode: models.CheckoutOther, HolderName: "Jane"}), ErrInvalidHolderPhone)
}

func TestValidate_RenameDeleteAccountLogin(t *testing.T) {
	v := NewRequestValidator()
	ctx := context.Background()

	assert.NoError(t, v.Validate(ctx, models.RenameKeyRequest{VisibleCode: "C4"}))
	assert.ErrorIs(t, v.Validate(ctx, models.RenameKeyRequest{VisibleCode: "C9"}), ErrInvalidVisibleCode)

	assert.NoError(t, v.Validate(ctx, models.DeleteKeyRequest{Reason: "Sold"}))
	assert.ErrorIs(t, v.Validate(ctx, models.DeleteKeyRequest{Reason: " "}), ErrEmptyReason)

	assert.NoError(t, v.Validate(ctx, models.AddAccountRequest{Username: "ana", Password: "pw", Role: models.RoleUser}))
	assert.ErrorIs(t, v.Validate(ctx, models.AddAccountRequest{Password: "pw", Role: models.RoleUser}), ErrEmptyUsername)
	assert.ErrorIs(t, v.Validate(ctx, models.AddAccountRequest{Username: "ana", Role: models.RoleUser}), ErrEmptyPassword)
	assert.ErrorIs(t, v.Validate(ctx, models.AddAccountRequest{Username: "ana", Password: "pw", Role: "ROOT"}), ErrInvalidRole)

	assert.NoError(t, v.Validate(ctx, models.LoginRequest{Username: "admin", Password: "adminpassword"}))
	assert.ErrorIs(t, v.Validate(ctx, models.LoginRequest{Username: "admin"}), ErrEmptyPassword)
}
