package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"product-api/internal/auth"
)

func newAuthService(t *testing.T) (AuthService, *auth.TokenManager) {
	t.Helper()
	tokens := auth.NewTokenManager("test-secret", time.Hour)
	svc, err := NewAuthService(tokens, "admin", "password")
	require.NoError(t, err)
	return svc, tokens
}

func TestAuthService_LoginIssuesVerifiableToken(t *testing.T) {
	svc, tokens := newAuthService(t)

	token, err := svc.Login(context.Background(), "admin", "password")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	principal, err := tokens.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "admin", principal.Username)
	assert.Equal(t, AdminRole, principal.Role)
}

func TestAuthService_LoginWrongPassword(t *testing.T) {
	svc, _ := newAuthService(t)

	_, err := svc.Login(context.Background(), "admin", "letmein")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthService_LoginUnknownUser(t *testing.T) {
	svc, _ := newAuthService(t)

	_, err := svc.Login(context.Background(), "root", "password")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthService_LoginEmptyCredentials(t *testing.T) {
	svc, _ := newAuthService(t)

	_, err := svc.Login(context.Background(), "", "")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestNewAuthService_RequiresCredentials(t *testing.T) {
	tokens := auth.NewTokenManager("test-secret", time.Hour)

	_, err := NewAuthService(tokens, "", "password")
	assert.Error(t, err)

	_, err = NewAuthService(tokens, "admin", "")
	assert.Error(t, err)
}
