// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"errors"
	"net/http/httptest"
	"testing"
	"time"
)

const testSecret = "test-secret"

func TestTokenRoundTrip(t *testing.T) {
	token, err := CreateAccessToken(testSecret, "bob", "USER", time.Hour)
	if err != nil {
		t.Fatalf("CreateAccessToken failed: %v", err)
	}

	claims, err := ParseToken(testSecret, token)
	if err != nil {
		t.Fatalf("ParseToken failed: %v", err)
	}

	if claims.Identity != "bob" {
		t.Errorf("Expected identity bob, got %q", claims.Identity)
	}
	// Role is normalized to lower case
	if claims.Role != "user" {
		t.Errorf("Expected role user, got %q", claims.Role)
	}
	if claims.IsAdmin() {
		t.Error("Expected non-admin claims")
	}
}

func TestAdminClaims(t *testing.T) {
	token, err := CreateAccessToken(testSecret, "admin", "admin", time.Hour)
	if err != nil {
		t.Fatalf("CreateAccessToken failed: %v", err)
	}

	claims, err := ParseToken(testSecret, token)
	if err != nil {
		t.Fatalf("ParseToken failed: %v", err)
	}
	if !claims.IsAdmin() {
		t.Error("Expected admin claims")
	}
}

func TestParseTokenFailures(t *testing.T) {
	valid, err := CreateAccessToken(testSecret, "bob", "user", time.Hour)
	if err != nil {
		t.Fatalf("CreateAccessToken failed: %v", err)
	}

	expired, err := CreateAccessToken(testSecret, "bob", "user", -time.Minute)
	if err != nil {
		t.Fatalf("CreateAccessToken failed: %v", err)
	}

	tests := []struct {
		name   string
		secret string
		token  string
	}{
		{"wrong secret", "other-secret", valid},
		{"expired token", testSecret, expired},
		{"garbage token", testSecret, "not.a.jwt"},
		{"empty token", testSecret, ""},
		{"tampered token", testSecret, valid + "x"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseToken(tt.secret, tt.token)
			if !errors.Is(err, ErrInvalidToken) {
				t.Errorf("Expected ErrInvalidToken, got %v", err)
			}
		})
	}
}

func TestTokensAreUnique(t *testing.T) {
	// Each token carries a fresh jti
	a, err := CreateAccessToken(testSecret, "bob", "user", time.Hour)
	if err != nil {
		t.Fatalf("CreateAccessToken failed: %v", err)
	}
	b, err := CreateAccessToken(testSecret, "bob", "user", time.Hour)
	if err != nil {
		t.Fatalf("CreateAccessToken failed: %v", err)
	}
	if a == b {
		t.Error("Expected distinct tokens for repeated issuance")
	}
}

func TestBearerToken(t *testing.T) {
	tests := []struct {
		name   string
		header string
		want   string
	}{
		{"valid bearer", "Bearer abc123", "abc123"},
		{"case-insensitive scheme", "bearer abc123", "abc123"},
		{"missing header", "", ""},
		{"wrong scheme", "Basic abc123", ""},
		{"bare scheme", "Bearer ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest("GET", "/", nil)
			if tt.header != "" {
				r.Header.Set("Authorization", tt.header)
			}
			if got := BearerToken(r); got != tt.want {
				t.Errorf("Expected %q, got %q", tt.want, got)
			}
		})
	}
}
