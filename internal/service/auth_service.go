package service

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"product-api/internal/auth"
)

// ErrInvalidCredentials indicates that provided login credentials are incorrect.
var ErrInvalidCredentials = errors.New("invalid credentials")

// AdminRole is the role label carried by every issued token.
const AdminRole = "admin"

// AuthService verifies credentials and issues bearer tokens.
type AuthService interface {
	Login(ctx context.Context, username, password string) (string, error)
}

// authService checks logins against a single configured principal.
// The password is bcrypt-hashed at construction so the comparison
// path is the same one a user-store-backed implementation would use.
type authService struct {
	username     string
	passwordHash []byte
	tokens       *auth.TokenManager
}

func NewAuthService(tokens *auth.TokenManager, username, password string) (AuthService, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, errors.New("admin username is required")
	}
	if password == "" {
		return nil, errors.New("admin password is required")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash admin password: %w", err)
	}

	return &authService{
		username:     username,
		passwordHash: hash,
		tokens:       tokens,
	}, nil
}

func (s *authService) Login(ctx context.Context, username, password string) (string, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return "", ErrInvalidCredentials
	}

	if subtle.ConstantTimeCompare([]byte(username), []byte(s.username)) != 1 {
		return "", ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword(s.passwordHash, []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(username, AdminRole)
	if err != nil {
		return "", fmt.Errorf("issue token: %w", err)
	}
	return token, nil
}
