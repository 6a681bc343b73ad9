package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"brightcover/internal/auth"
	"brightcover/internal/config"
)

func testAuthConfig(t *testing.T) config.AuthConfig {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret-pass"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}
	return config.AuthConfig{
		JWTSecret:         "test-signing-secret",
		TokenTTL:          time.Hour,
		AdminEmail:        "admin@brightcover.in",
		AdminPasswordHash: string(hash),
	}
}

func TestAuthUseCase_Login(t *testing.T) {
	t.Run("issues token for valid credentials", func(t *testing.T) {
		uc := NewAuthUseCase(testAuthConfig(t))

		token, expiresAt, err := uc.Login(context.Background(), "admin@brightcover.in", "s3cret-pass")
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if token == "" {
			t.Fatal("expected a token")
		}
		if !expiresAt.After(time.Now()) {
			t.Fatal("expected expiry in the future")
		}

		claims, err := auth.ValidateToken(token, "test-signing-secret")
		if err != nil {
			t.Fatalf("expected issued token to validate, got %v", err)
		}
		if claims.Email != "admin@brightcover.in" {
			t.Fatalf("unexpected claims email %q", claims.Email)
		}
	})

	t.Run("email match is case insensitive", func(t *testing.T) {
		uc := NewAuthUseCase(testAuthConfig(t))

		if _, _, err := uc.Login(context.Background(), "  Admin@BrightCover.IN ", "s3cret-pass"); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
	})

	t.Run("rejects wrong password", func(t *testing.T) {
		uc := NewAuthUseCase(testAuthConfig(t))

		_, _, err := uc.Login(context.Background(), "admin@brightcover.in", "wrong")
		if !errors.Is(err, ErrInvalidCredentials) {
			t.Fatalf("expected ErrInvalidCredentials, got %v", err)
		}
	})

	t.Run("rejects unknown email", func(t *testing.T) {
		uc := NewAuthUseCase(testAuthConfig(t))

		_, _, err := uc.Login(context.Background(), "intruder@example.com", "s3cret-pass")
		if !errors.Is(err, ErrInvalidCredentials) {
			t.Fatalf("expected ErrInvalidCredentials, got %v", err)
		}
	})

	t.Run("fails closed when admin account is not configured", func(t *testing.T) {
		uc := NewAuthUseCase(config.AuthConfig{JWTSecret: "x", TokenTTL: time.Hour})

		_, _, err := uc.Login(context.Background(), "admin@brightcover.in", "s3cret-pass")
		if !errors.Is(err, ErrLoginDisabled) {
			t.Fatalf("expected ErrLoginDisabled, got %v", err)
		}
	})
}
