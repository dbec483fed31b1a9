package adapters

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const testSecret = "test-secret"

func signToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("failed to sign token: %v", err)
	}
	return signed
}

func TestIdentityService_DisplayName(t *testing.T) {
	service := NewIdentityService(testSecret)
	ctx := context.Background()

	t.Run("returns the name claim", func(t *testing.T) {
		token := signToken(t, testSecret, jwt.MapClaims{
			"name": "Alex",
			"sub":  "user-1",
			"exp":  time.Now().Add(time.Hour).Unix(),
		})

		name, err := service.DisplayName(ctx, token)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if name != "Alex" {
			t.Errorf("expected Alex, got %q", name)
		}
	})

	t.Run("falls back to the subject", func(t *testing.T) {
		token := signToken(t, testSecret, jwt.MapClaims{
			"sub": "user-1",
			"exp": time.Now().Add(time.Hour).Unix(),
		})

		name, err := service.DisplayName(ctx, token)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if name != "user-1" {
			t.Errorf("expected user-1, got %q", name)
		}
	})

	t.Run("rejects a token signed with another secret", func(t *testing.T) {
		token := signToken(t, "other-secret", jwt.MapClaims{"name": "Mallory"})

		_, err := service.DisplayName(ctx, token)
		if !errors.Is(err, ErrInvalidIdentityToken) {
			t.Errorf("expected invalid token error, got %v", err)
		}
	})

	t.Run("rejects an expired token", func(t *testing.T) {
		token := signToken(t, testSecret, jwt.MapClaims{
			"name": "Alex",
			"exp":  time.Now().Add(-time.Hour).Unix(),
		})

		_, err := service.DisplayName(ctx, token)
		if !errors.Is(err, ErrInvalidIdentityToken) {
			t.Errorf("expected invalid token error, got %v", err)
		}
	})

	t.Run("rejects garbage", func(t *testing.T) {
		_, err := service.DisplayName(ctx, "not.a.token")
		if !errors.Is(err, ErrInvalidIdentityToken) {
			t.Errorf("expected invalid token error, got %v", err)
		}
	})

	t.Run("rejects a token without identity claims", func(t *testing.T) {
		token := signToken(t, testSecret, jwt.MapClaims{
			"exp": time.Now().Add(time.Hour).Unix(),
		})

		_, err := service.DisplayName(ctx, token)
		if !errors.Is(err, ErrInvalidIdentityToken) {
			t.Errorf("expected invalid token error, got %v", err)
		}
	})
}
