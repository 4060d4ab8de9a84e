// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-key-keeper/models"
)

func TestContextKeyString(t *testing.T) {
	key := contextKey("testKey")
	if key.String() != "testKey" {
		t.Errorf("expected 'testKey', got '%s'", key.String())
	}
}

func TestCallerCtxKey(t *testing.T) {
	if CallerCtxKey.String() != "caller" {
		t.Errorf("expected 'caller', got '%s'", CallerCtxKey.String())
	}
}

func TestGetCallerFromContext_Success(t *testing.T) {
	caller := models.User{ID: "u-1", Username: "admin", Role: models.RoleAdmin}
	ctx := WithCaller(context.Background(), caller)

	got, ok := GetCallerFromContext(ctx)

	if !ok {
		t.Fatal("expected ok=true, got false")
	}
	if got != caller {
		t.Errorf("expected %+v, got %+v", caller, got)
	}
}

func TestGetCallerFromContext_Missing(t *testing.T) {
	got, ok := GetCallerFromContext(context.Background())

	if ok {
		t.Fatal("expected ok=false, got true")
	}
	if got != (models.User{}) {
		t.Errorf("expected zero user, got %+v", got)
	}
}

func TestGetCallerFromContext_WrongType(t *testing.T) {
	ctx := context.WithValue(context.Background(), CallerCtxKey, "admin")

	_, ok := GetCallerFromContext(ctx)

	if ok {
		t.Fatal("expected ok=false for wrong type, got true")
	}
}

func TestGetCallerFromContext_DifferentKey(t *testing.T) {
	otherKey := contextKey("otherKey")
	ctx := context.WithValue(context.Background(), otherKey, models.User{ID: "u-1"})

	_, ok := GetCallerFromContext(ctx)

	if ok {
		t.Fatal("expected ok=false for different key, got true")
	}
}
