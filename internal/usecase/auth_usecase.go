package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"brightcover/internal/auth"
	"brightcover/internal/config"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrLoginDisabled      = errors.New("admin login not configured")
)

// IAuthUseCase issues admin bearer tokens. There is a single env-configured
// admin principal; staff account management is out of scope.

type IAuthUseCase interface {
	Login(ctx context.Context, email, password string) (string, time.Time, error)
}

type AuthUseCase struct {
	cfg config.AuthConfig
}

var _ IAuthUseCase = (*AuthUseCase)(nil)

func NewAuthUseCase(cfg config.AuthConfig) *AuthUseCase {
	return &AuthUseCase{cfg: cfg}
}

func (u *AuthUseCase) Login(ctx context.Context, email, password string) (string, time.Time, error) {
	if u.cfg.AdminEmail == "" || u.cfg.AdminPasswordHash == "" {
		return "", time.Time{}, ErrLoginDisabled
	}

	email = strings.ToLower(strings.TrimSpace(email))
	if email != strings.ToLower(u.cfg.AdminEmail) {
		return "", time.Time{}, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.cfg.AdminPasswordHash), []byte(password)); err != nil {
		return "", time.Time{}, ErrInvalidCredentials
	}

	token, expiresAt, err := auth.GenerateToken(email, u.cfg.JWTSecret, u.cfg.TokenTTL)
	if err != nil {
		return "", time.Time{}, err
	}
	log.Printf("[auth][usecase] admin login email=%s", email)
	return token, expiresAt, nil
}
