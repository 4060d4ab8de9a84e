// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"errors"
	"testing"
)

func TestHashSecret_RoundTrip(t *testing.T) {
	hash, err := HashSecret("userpassword")
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if hash == "userpassword" {
		t.Fatal("hash must not equal the plain secret")
	}

	if !CompareSecret(hash, "userpassword") {
		t.Error("expected secret to match its own hash")
	}
	if CompareSecret(hash, "UserPassword") {
		t.Error("expected comparison to be case-sensitive")
	}
}

func TestHashSecret_Salted(t *testing.T) {
	first, err := HashSecret("same")
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	second, err := HashSecret("same")
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	if first == second {
		t.Error("expected two hashes of the same secret to differ")
	}
}

func TestHashSecret_Empty(t *testing.T) {
	_, err := HashSecret("")
	if !errors.Is(err, ErrEmptySecret) {
		t.Fatalf("expected ErrEmptySecret, got %v", err)
	}
}

func TestCompareSecret_MalformedHash(t *testing.T) {
	if CompareSecret("not-a-bcrypt-hash", "secret") {
		t.Error("malformed hash must never match")
	}
}
