package service_test

import (
	"testing"

	"github.com/ciclofit/ciclofit-server/internal/service"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterHashesPassword(t *testing.T) {
	env := newTestEnv(t)

	user, err := env.auth.Register(&service.RegisterRequest{
		Name:     "Maria",
		Email:    "maria@example.com",
		Password: "plaintext-password",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, user.PasswordHash)
	assert.NotEqual(t, "plaintext-password", user.PasswordHash)
	assert.False(t, user.Active, "accounts start inactive")
}

func TestRegisterDuplicateEmail(t *testing.T) {
	env := newTestEnv(t)
	env.registerUser(t, "dup@example.com")

	_, err := env.auth.Register(&service.RegisterRequest{
		Name:     "Other",
		Email:    "dup@example.com",
		Password: "secret123",
	})
	assert.ErrorIs(t, err, service.ErrEmailTaken)
}

func TestLoginWrongPassword(t *testing.T) {
	env := newTestEnv(t)
	env.registerUser(t, "login@example.com")

	_, err := env.auth.Login(&service.LoginRequest{
		Email:    "login@example.com",
		Password: "wrong-password",
	})
	assert.ErrorIs(t, err, service.ErrInvalidCredentials)
}

func TestLoginUnknownEmail(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.auth.Login(&service.LoginRequest{
		Email:    "nobody@example.com",
		Password: "secret123",
	})
	assert.ErrorIs(t, err, service.ErrInvalidCredentials)
}

func TestLoginReturnsDecodableToken(t *testing.T) {
	env := newTestEnv(t)
	user := env.registerUser(t, "token@example.com")

	token, err := env.auth.Login(&service.LoginRequest{
		Email:    "token@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)
	require.NotEmpty(t, token.AccessToken)
	assert.Equal(t, "Bearer", token.TokenType)
	require.NotNil(t, token.User)

	claims, err := env.auth.ValidateToken(token.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID())
	assert.Equal(t, "token@example.com", claims.Email)
	assert.False(t, claims.Admin)
}

func TestValidateTokenRejectsDeletedUser(t *testing.T) {
	env := newTestEnv(t)
	user := env.registerUser(t, "gone@example.com")

	token, err := env.auth.Login(&service.LoginRequest{
		Email:    "gone@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)

	require.NoError(t, env.users.DeleteUser(user.ID))

	_, err = env.auth.ValidateToken(token.AccessToken)
	assert.ErrorIs(t, err, service.ErrInvalidToken)
}

func TestValidateTokenRejectsWrongSecret(t *testing.T) {
	env := newTestEnv(t)
	env.registerUser(t, "forged@example.com")

	forged := jwt.NewWithClaims(jwt.SigningMethodHS256, &service.JWTClaims{
		Email: "forged@example.com",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject: "1",
		},
	})
	tokenString, err := forged.SignedString([]byte("another-secret"))
	require.NoError(t, err)

	_, err = env.auth.ValidateToken(tokenString)
	assert.Error(t, err)
}

func TestRegisterEmailOfDeletedUser(t *testing.T) {
	env := newTestEnv(t)
	user := env.registerUser(t, "recycled@example.com")

	// Soft delete keeps the row under the email unique index
	require.NoError(t, env.users.DeleteUser(user.ID))

	_, err := env.auth.Register(&service.RegisterRequest{
		Name:     "Test User",
		Email:    "recycled@example.com",
		Password: "secret123",
	})
	assert.ErrorIs(t, err, service.ErrEmailTaken)
}
